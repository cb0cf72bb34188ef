// Package metrics declares the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersPlaced = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: "checkout",
		Name:      "orders_placed_total",
		Help:      "Total orders persisted and handed off",
	})

	OrderPersistenceFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: "checkout",
		Name:      "order_persistence_failures_total",
		Help:      "Total confirm attempts that failed to persist the order",
	})

	ConfirmValidationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: "checkout",
		Name:      "confirm_validation_failures_total",
		Help:      "Confirm attempts rejected for a missing field",
	}, []string{"field"})

	ZoneLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: "geofence",
		Name:      "lookups_total",
		Help:      "Coordinate lookups against delivery zones",
	}, []string{"result"})

	ActiveSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "storefront",
		Subsystem: "checkout",
		Name:      "active_sessions",
		Help:      "Checkout sessions currently held in the session store",
	})

	ZoneCacheRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: "cache",
		Name:      "zone_requests_total",
		Help:      "Zone snapshot cache requests",
	}, []string{"result"})

	EventPublishFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: "events",
		Name:      "publish_failures_total",
		Help:      "Events that could not be published",
	}, []string{"subject"})
)

// ZoneLookup result labels.
const (
	ZoneLookupMatched = "matched"
	ZoneLookupMissed  = "missed"
)

// ZoneCacheRequests result labels.
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)
