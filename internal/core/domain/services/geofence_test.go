package services_test

import (
	"testing"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/zone"
	"storefront/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func point(t *testing.T, lat, lng float64) kernel.Coordinate {
	t.Helper()
	p, err := kernel.NewCoordinate(lat, lng)
	require.NoError(t, err)
	return p
}

func square(t *testing.T, name string, price int64, minLat, minLng, size float64) *zone.Zone {
	t.Helper()
	z, err := zone.NewZone(kernel.NewUUID(), name, price, []kernel.Coordinate{
		point(t, minLat, minLng),
		point(t, minLat, minLng+size),
		point(t, minLat+size, minLng+size),
		point(t, minLat+size, minLng),
	}, "")
	require.NoError(t, err)
	return z
}

func TestGeofence_Locate(t *testing.T) {
	geofence := services.NewGeofence()

	t.Run("point inside unit square", func(t *testing.T) {
		unit := square(t, "Unit", 5000, 0, 0, 1)

		got := geofence.Locate(point(t, 0.5, 0.5), []*zone.Zone{unit})

		require.NotNil(t, got)
		assert.True(t, got.IsEqual(unit))
	})

	t.Run("point outside unit square", func(t *testing.T) {
		unit := square(t, "Unit", 5000, 0, 0, 1)

		assert.Nil(t, geofence.Locate(point(t, 2, 2), []*zone.Zone{unit}))
	})

	t.Run("empty zone list", func(t *testing.T) {
		assert.Nil(t, geofence.Locate(point(t, 0.5, 0.5), nil))
		assert.Nil(t, geofence.Locate(point(t, 0.5, 0.5), []*zone.Zone{}))
	})

	t.Run("first matching zone wins", func(t *testing.T) {
		z1 := square(t, "Z1", 10000, 0, 0, 2)
		z2 := square(t, "Z2", 20000, 1, 1, 2)
		p := point(t, 1.5, 1.5)
		zones := []*zone.Zone{z1, z2}

		for range 50 {
			got := geofence.Locate(p, zones)
			require.NotNil(t, got)
			assert.True(t, got.IsEqual(z1))
			assert.Equal(t, int64(10000), got.Price())
		}

		reversed := geofence.Locate(p, []*zone.Zone{z2, z1})
		require.NotNil(t, reversed)
		assert.True(t, reversed.IsEqual(z2))
	})

	t.Run("later zone matches when earlier ones do not", func(t *testing.T) {
		north := square(t, "North", 9000, 10, 10, 1)
		south := square(t, "South", 7000, -10, -10, 1)

		got := geofence.Locate(point(t, -9.5, -9.5), []*zone.Zone{north, south})

		require.NotNil(t, got)
		assert.Equal(t, "South", got.Name())
	})

	t.Run("skips nil and unconstructed zones", func(t *testing.T) {
		unit := square(t, "Unit", 5000, 0, 0, 1)

		got := geofence.Locate(point(t, 0.5, 0.5), []*zone.Zone{nil, {}, unit})

		require.NotNil(t, got)
		assert.True(t, got.IsEqual(unit))
	})

	t.Run("unconstructed point matches nothing", func(t *testing.T) {
		unit := square(t, "Unit", 5000, -1, -1, 2)

		assert.Nil(t, geofence.Locate(kernel.Coordinate{}, []*zone.Zone{unit}))
	})

	t.Run("realistic city polygon", func(t *testing.T) {
		chapinero, err := zone.NewZone(kernel.NewUUID(), "Chapinero", 12000, []kernel.Coordinate{
			point(t, 4.6280, -74.0720),
			point(t, 4.6690, -74.0650),
			point(t, 4.6710, -74.0420),
			point(t, 4.6300, -74.0500),
		}, "#22aa66")
		require.NoError(t, err)

		assert.NotNil(t, geofence.Locate(point(t, 4.6500, -74.0570), []*zone.Zone{chapinero}))
		assert.Nil(t, geofence.Locate(point(t, 4.6000, -74.0570), []*zone.Zone{chapinero}))
	})
}
