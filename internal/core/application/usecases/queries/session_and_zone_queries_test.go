package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/checkout"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/zone"
	"storefront/internal/core/domain/services"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockZoneSource struct{ mock.Mock }

func (m *MockZoneSource) GetAll(ctx context.Context) ([]*zone.Zone, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*zone.Zone), args.Error(1)
}

type singleSessionStore struct {
	session *checkout.Session
}

func (s singleSessionStore) Add(context.Context, *checkout.Session) error { return nil }

func (s singleSessionStore) Update(ctx context.Context, id kernel.UUID, fn func(*checkout.Session) error) error {
	return s.View(ctx, id, fn)
}

func (s singleSessionStore) View(_ context.Context, id kernel.UUID, fn func(*checkout.Session) error) error {
	if s.session == nil || !s.session.ID().IsEqual(id) {
		return errs.NewObjectNotFoundError("checkout session", id.String())
	}
	return fn(s.session)
}

func (s singleSessionStore) Delete(context.Context, kernel.UUID) error { return nil }

func (s singleSessionStore) DeleteIdleSince(context.Context, time.Time) (int, error) { return 0, nil }

func square(t *testing.T, name string, price int64, minLat, minLng, size float64) *zone.Zone {
	t.Helper()
	var boundary []kernel.Coordinate
	for _, p := range [][2]float64{{minLat, minLng}, {minLat, minLng + size}, {minLat + size, minLng + size}, {minLat + size, minLng}} {
		c, err := kernel.NewCoordinate(p[0], p[1])
		require.NoError(t, err)
		boundary = append(boundary, c)
	}
	z, err := zone.NewZone(kernel.NewUUID(), name, price, boundary, "")
	require.NoError(t, err)
	return z
}

func TestGetCheckoutSessionQueryHandler_Handle(t *testing.T) {
	// Given
	ctx := t.Context()
	c := cart.NewCart()
	line, err := cart.NewLine(kernel.NewUUID(), kernel.NewUUID(), "Snapback", 35000, 2, "", "cap.webp")
	require.NoError(t, err)
	_, err = c.Add(line)
	require.NoError(t, err)
	s, err := checkout.NewSession(kernel.NewUUID(), c, []*zone.Zone{square(t, "Centro", 25000, 0, 0, 1)}, services.NewGeofence())
	require.NoError(t, err)
	require.NoError(t, s.Proceed())
	require.NoError(t, s.UpdateCustomerField(checkout.FieldFirstName, "Ana"))
	p, _ := kernel.NewCoordinate(0.5, 0.5)
	require.NoError(t, s.SelectLocation(p))

	query, err := queries.NewGetCheckoutSessionQuery(s.ID())
	require.NoError(t, err)

	// When
	resp, err := queries.NewGetCheckoutSessionQueryHandler(singleSessionStore{session: s}).Handle(ctx, query)

	// Then
	require.NoError(t, err)
	assert.Equal(t, "CONFIRMING", resp.Step)
	assert.Equal(t, "Ana", resp.FirstName)
	assert.Equal(t, "Centro", resp.ZoneName)
	assert.False(t, resp.ShippingToBeArranged)
	assert.Equal(t, int64(70000), resp.Subtotal)
	assert.Equal(t, int64(95000), resp.Total)
	assert.Equal(t, 2, resp.ItemCount)
	require.Len(t, resp.Lines, 1)
	assert.True(t, resp.Lines[0].SingleSize)
	assert.Equal(t, int64(70000), resp.Lines[0].Total)
	require.NotNil(t, resp.Location)
}

func TestGetCheckoutSessionQueryHandler_Handle_NotFound(t *testing.T) {
	query, _ := queries.NewGetCheckoutSessionQuery(kernel.NewUUID())

	_, err := queries.NewGetCheckoutSessionQueryHandler(singleSessionStore{}).Handle(t.Context(), query)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestGetDeliveryZonesQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	z1 := square(t, "Z1", 10000, 0, 0, 2)
	z2 := square(t, "Z2", 20000, 1, 1, 2)
	source := new(MockZoneSource)
	source.On("GetAll", ctx).Return([]*zone.Zone{z1, z2}, nil).Once()

	resp, err := queries.NewGetDeliveryZonesQueryHandler(source).Handle(ctx, queries.NewGetDeliveryZonesQuery())

	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.Equal(t, "Z1", resp[0].Name)
	assert.Equal(t, zone.DefaultColor, resp[0].Color)
	assert.Len(t, resp[1].Boundary, 4)
	source.AssertExpectations(t)
}

func TestLocateZoneQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	z1 := square(t, "Z1", 10000, 0, 0, 2)
	z2 := square(t, "Z2", 20000, 1, 1, 2)

	tests := []struct {
		name     string
		lat, lng float64
		want     queries.LocateZoneQueryResponse
	}{
		{name: "overlap resolves to first zone", lat: 1.5, lng: 1.5, want: queries.LocateZoneQueryResponse{Matched: true, ZoneID: z1.ID(), ZoneName: "Z1", Price: 10000}},
		{name: "only second zone", lat: 2.5, lng: 2.5, want: queries.LocateZoneQueryResponse{Matched: true, ZoneID: z2.ID(), ZoneName: "Z2", Price: 20000}},
		{name: "outside every zone", lat: -5, lng: -5, want: queries.LocateZoneQueryResponse{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := new(MockZoneSource)
			source.On("GetAll", ctx).Return([]*zone.Zone{z1, z2}, nil).Once()
			query, err := queries.NewLocateZoneQuery(tt.lat, tt.lng)
			require.NoError(t, err)

			got, err := queries.NewLocateZoneQueryHandler(source).Handle(ctx, query)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLocateZoneQueryHandler_Handle_SourceError(t *testing.T) {
	ctx := t.Context()
	source := new(MockZoneSource)
	source.On("GetAll", ctx).Return(nil, errors.New("cache down")).Once()
	query, _ := queries.NewLocateZoneQuery(0, 0)

	_, err := queries.NewLocateZoneQueryHandler(source).Handle(ctx, query)

	require.EqualError(t, err, "cache down")
}

func TestNewLocateZoneQuery_OutOfRange(t *testing.T) {
	_, err := queries.NewLocateZoneQuery(0, 181)

	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}
