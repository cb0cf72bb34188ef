// Package valkey caches the delivery zone list in Valkey.
package valkey

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/zone"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/metrics"

	"github.com/valkey-io/valkey-go"
)

// ZonesKey holds the JSON-encoded ordered zone list.
const ZonesKey = "storefront:zones:v1"

var _ ports.ZoneSource = (*ZoneCache)(nil)

// Connect opens a client to a single Valkey node.
func Connect(addr string) (valkey.Client, error) {
	client, err := valkey.NewClient(valkey.ClientOption{
		InitAddress:  []string{addr},
		DisableCache: true,
	})
	if err != nil {
		return nil, fmt.Errorf("valkey connect: %w", err)
	}
	return client, nil
}

// ZoneCache is a read-through cache in front of the zone repository. When
// Valkey is unreachable it serves straight from the source.
type ZoneCache struct {
	client valkey.Client
	source ports.ZoneSource
	ttl    time.Duration
	logger *slog.Logger
}

func NewZoneCache(client valkey.Client, source ports.ZoneSource, ttl time.Duration, logger *slog.Logger) *ZoneCache {
	return &ZoneCache{
		client: client,
		source: source,
		ttl:    ttl,
		logger: logger.With("component", "zone_cache"),
	}
}

func (c *ZoneCache) GetAll(ctx context.Context) ([]*zone.Zone, error) {
	zones, err := c.read(ctx)
	switch {
	case err == nil:
		metrics.ZoneCacheRequests.WithLabelValues(metrics.CacheHit).Inc()
		return zones, nil
	case valkey.IsValkeyNil(err):
		metrics.ZoneCacheRequests.WithLabelValues(metrics.CacheMiss).Inc()
	default:
		metrics.ZoneCacheRequests.WithLabelValues(metrics.CacheError).Inc()
		c.logger.WarnContext(ctx, "zone cache read failed", "error", err)
	}

	zones, err = c.source.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if err = c.write(ctx, zones); err != nil {
		c.logger.WarnContext(ctx, "zone cache write failed", "error", err)
	}
	return zones, nil
}

// Refresh reloads the zones from the source and overwrites the cached copy.
func (c *ZoneCache) Refresh(ctx context.Context) (int, error) {
	zones, err := c.source.GetAll(ctx)
	if err != nil {
		return 0, err
	}
	if err = c.write(ctx, zones); err != nil {
		return 0, err
	}
	return len(zones), nil
}

// Invalidate drops the cached copy.
func (c *ZoneCache) Invalidate(ctx context.Context) error {
	return c.client.Do(ctx, c.client.B().Del().Key(ZonesKey).Build()).Error()
}

// Ping reports whether Valkey answers.
func (c *ZoneCache) Ping(ctx context.Context) error {
	return c.client.Do(ctx, c.client.B().Ping().Build()).Error()
}

func (c *ZoneCache) read(ctx context.Context) ([]*zone.Zone, error) {
	raw, err := c.client.Do(ctx, c.client.B().Get().Key(ZonesKey).Build()).AsBytes()
	if err != nil {
		return nil, err
	}
	return decodeZones(raw)
}

func (c *ZoneCache) write(ctx context.Context, zones []*zone.Zone) error {
	raw, err := encodeZones(zones)
	if err != nil {
		return err
	}
	set := c.client.B().Set().Key(ZonesKey).Value(valkey.BinaryString(raw))
	if c.ttl > 0 {
		return c.client.Do(ctx, set.Ex(c.ttl).Build()).Error()
	}
	return c.client.Do(ctx, set.Build()).Error()
}

type cachedZone struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Price    int64        `json:"price"`
	Color    string       `json:"color"`
	Boundary [][2]float64 `json:"boundary"`
}

func encodeZones(zones []*zone.Zone) ([]byte, error) {
	out := make([]cachedZone, 0, len(zones))
	for _, z := range zones {
		boundary := z.Boundary()
		points := make([][2]float64, 0, len(boundary))
		for _, p := range boundary {
			points = append(points, [2]float64{p.Lat(), p.Lng()})
		}
		out = append(out, cachedZone{
			ID:       z.ID().String(),
			Name:     z.Name(),
			Price:    z.Price(),
			Color:    z.Color(),
			Boundary: points,
		})
	}
	return json.Marshal(out)
}

func decodeZones(raw []byte) ([]*zone.Zone, error) {
	var cached []cachedZone
	if err := json.Unmarshal(raw, &cached); err != nil {
		return nil, fmt.Errorf("decode cached zones: %w", err)
	}

	zones := make([]*zone.Zone, 0, len(cached))
	for _, cz := range cached {
		id, err := kernel.UUIDFromString(cz.ID)
		if err != nil {
			return nil, err
		}

		boundary := make([]kernel.Coordinate, 0, len(cz.Boundary))
		for _, p := range cz.Boundary {
			pt, pErr := kernel.NewCoordinate(p[0], p[1])
			if pErr != nil {
				return nil, errors.Join(fmt.Errorf("cached zone %s", cz.Name), pErr)
			}
			boundary = append(boundary, pt)
		}

		z, err := zone.NewZone(id, cz.Name, cz.Price, boundary, cz.Color)
		if err != nil {
			return nil, err
		}
		zones = append(zones, z)
	}
	return zones, nil
}
