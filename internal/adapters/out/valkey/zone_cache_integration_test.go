package valkey_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	zonecache "storefront/internal/adapters/out/valkey"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/zone"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/valkey-io/valkey-go"
)

type MockZoneSource struct{ mock.Mock }

func (m *MockZoneSource) GetAll(ctx context.Context) ([]*zone.Zone, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*zone.Zone), args.Error(1)
}

type ZoneCacheIntegrationTestSuite struct {
	suite.Suite
	container testcontainers.Container
	client    valkey.Client
	zones     []*zone.Zone
}

func TestZoneCacheIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(ZoneCacheIntegrationTestSuite))
}

func (suite *ZoneCacheIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "valkey/valkey:8-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	suite.Require().NoError(err)
	suite.container = container

	addr, err := container.Endpoint(ctx, "")
	suite.Require().NoError(err)
	suite.client, err = zonecache.Connect(addr)
	suite.Require().NoError(err)

	var boundary []kernel.Coordinate
	for _, p := range [][2]float64{{0, 0}, {0, 1}, {1, 1}, {1, 0}} {
		c, cErr := kernel.NewCoordinate(p[0], p[1])
		suite.Require().NoError(cErr)
		boundary = append(boundary, c)
	}
	z1, err := zone.NewZone(kernel.NewUUID(), "Centro", 25000, boundary, "")
	suite.Require().NoError(err)
	z2, err := zone.NewZone(kernel.NewUUID(), "Norte", 30000, boundary, "")
	suite.Require().NoError(err)
	suite.zones = []*zone.Zone{z1, z2}
}

func (suite *ZoneCacheIntegrationTestSuite) SetupTest() {
	ctx := context.Background()
	suite.Require().NoError(suite.client.Do(ctx, suite.client.B().Flushall().Build()).Error())
}

func (suite *ZoneCacheIntegrationTestSuite) TearDownSuite() {
	if suite.client != nil {
		suite.client.Close()
	}
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ZoneCacheIntegrationTestSuite) newCache(source *MockZoneSource, ttl time.Duration) *zonecache.ZoneCache {
	return zonecache.NewZoneCache(suite.client, source, ttl, slog.New(slog.DiscardHandler))
}

func (suite *ZoneCacheIntegrationTestSuite) TestGetAll_MissThenHit() {
	ctx := context.Background()

	// Given
	source := new(MockZoneSource)
	source.On("GetAll", ctx).Return(suite.zones, nil).Once()
	cache := suite.newCache(source, time.Minute)

	// When
	first, err := cache.GetAll(ctx)
	suite.Require().NoError(err)
	second, err := cache.GetAll(ctx)
	suite.Require().NoError(err)

	// Then the source is read once and order survives the round trip
	source.AssertExpectations(suite.T())
	suite.Require().Len(second, 2)
	suite.True(first[0].IsEqual(second[0]))
	suite.Equal("Norte", second[1].Name())
}

func (suite *ZoneCacheIntegrationTestSuite) TestGetAll_SetsTTL() {
	ctx := context.Background()
	source := new(MockZoneSource)
	source.On("GetAll", ctx).Return(suite.zones, nil).Once()

	_, err := suite.newCache(source, time.Minute).GetAll(ctx)
	suite.Require().NoError(err)

	ttl, err := suite.client.Do(ctx, suite.client.B().Ttl().Key(zonecache.ZonesKey).Build()).AsInt64()
	suite.Require().NoError(err)
	suite.Positive(ttl)
	suite.LessOrEqual(ttl, int64(60))
}

func (suite *ZoneCacheIntegrationTestSuite) TestGetAll_SourceError() {
	ctx := context.Background()
	source := new(MockZoneSource)
	source.On("GetAll", ctx).Return(nil, errors.New("db down")).Once()

	_, err := suite.newCache(source, time.Minute).GetAll(ctx)

	suite.Require().EqualError(err, "db down")
}

func (suite *ZoneCacheIntegrationTestSuite) TestRefresh_OverwritesCachedCopy() {
	ctx := context.Background()

	// Given a cache holding only the first zone
	source := new(MockZoneSource)
	source.On("GetAll", ctx).Return(suite.zones[:1], nil).Once()
	cache := suite.newCache(source, time.Minute)
	_, err := cache.GetAll(ctx)
	suite.Require().NoError(err)

	// When
	source.On("GetAll", ctx).Return(suite.zones, nil).Once()
	n, err := cache.Refresh(ctx)

	// Then
	suite.Require().NoError(err)
	suite.Equal(2, n)
	got, err := cache.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Len(got, 2)
	source.AssertExpectations(suite.T())
}

func (suite *ZoneCacheIntegrationTestSuite) TestInvalidateAndPing() {
	ctx := context.Background()
	source := new(MockZoneSource)
	source.On("GetAll", ctx).Return(suite.zones, nil).Twice()
	cache := suite.newCache(source, 0)

	suite.Require().NoError(cache.Ping(ctx))
	_, err := cache.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Require().NoError(cache.Invalidate(ctx))
	_, err = cache.GetAll(ctx)
	suite.Require().NoError(err)

	source.AssertExpectations(suite.T())
}
