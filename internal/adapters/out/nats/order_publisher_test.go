package natsadapter_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	natsadapter "storefront/internal/adapters/out/nats"
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func placedOrder(t require.TestingT, location *kernel.Coordinate) *order.Order {
	hoodie, err := cart.NewLine(kernel.NewUUID(), kernel.NewUUID(), "Boxy Hoodie", 180000, 1, "L", "")
	require.NoError(t, err)
	socks, err := cart.NewLine(kernel.NewUUID(), kernel.NewUUID(), "Crew Socks", 35000, 2, "", "")
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), "004211", order.Customer{FirstName: "Ana", LastName: "Gómez"},
		[]cart.Line{hoodie, socks}, location, order.Shipping{ZoneName: "Centro", Cost: 25000},
		time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return o
}

func TestNewOrderEvent(t *testing.T) {
	// Given
	loc, err := kernel.NewCoordinate(4.65, -74.05)
	require.NoError(t, err)
	o := placedOrder(t, &loc)
	at := time.Date(2026, 5, 1, 12, 0, 1, 0, time.UTC)

	// When
	ev := natsadapter.NewOrderEvent(o, true, at)

	// Then
	assert.Equal(t, o.ID().String(), ev.OrderID)
	assert.Equal(t, "Pending", ev.Status)
	assert.Equal(t, "Ana Gómez", ev.CustomerName)
	assert.Equal(t, int64(250000), ev.Subtotal)
	assert.Equal(t, int64(275000), ev.Total)
	require.NotNil(t, ev.Location)
	assert.InDelta(t, 4.65, ev.Location.Lat, 1e-9)
	require.Len(t, ev.Lines, 2)
	assert.Equal(t, cart.SingleSize, ev.Lines[1].Size)
	assert.Equal(t, at, ev.OccurredAt)
}

func TestNewOrderEvent_WithoutLinesOrLocation(t *testing.T) {
	ev := natsadapter.NewOrderEvent(placedOrder(t, nil), false, time.Now())

	raw, err := json.Marshal(ev)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), `"lines"`)
	assert.NotContains(t, string(raw), `"location"`)
}

type OrderPublisherIntegrationTestSuite struct {
	suite.Suite
	container testcontainers.Container
	url       string
	publisher *natsadapter.OrderPublisher
}

func TestOrderPublisherIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(OrderPublisherIntegrationTestSuite))
}

func (suite *OrderPublisherIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "nats:2.10-alpine",
			Cmd:          []string{"-js"},
			ExposedPorts: []string{"4222/tcp"},
			WaitingFor:   wait.ForLog("Server is ready").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	suite.Require().NoError(err)
	suite.container = container

	endpoint, err := container.PortEndpoint(ctx, "4222/tcp", "nats")
	suite.Require().NoError(err)
	suite.url = endpoint

	suite.publisher, err = natsadapter.NewOrderPublisher(suite.url)
	suite.Require().NoError(err)
}

func (suite *OrderPublisherIntegrationTestSuite) TearDownSuite() {
	if suite.publisher != nil {
		suite.publisher.Close()
	}
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderPublisherIntegrationTestSuite) TestPublishOrderPlaced_StoredInStream() {
	ctx := context.Background()
	o := placedOrder(suite.T(), nil)

	// When
	suite.Require().NoError(suite.publisher.PublishOrderPlaced(ctx, o))

	// Then
	conn, err := nats.Connect(suite.url)
	suite.Require().NoError(err)
	defer conn.Close()
	js, err := conn.JetStream()
	suite.Require().NoError(err)

	msg, err := js.GetLastMsg(natsadapter.StreamName, natsadapter.SubjectOrderPlaced)
	suite.Require().NoError(err)

	var ev natsadapter.OrderEvent
	suite.Require().NoError(json.Unmarshal(msg.Data, &ev))
	suite.Equal(o.ID().String(), ev.OrderID)
	suite.Len(ev.Lines, 2)
	suite.True(suite.publisher.IsConnected())
}

func (suite *OrderPublisherIntegrationTestSuite) TestPublishOrderStatusChanged() {
	ctx := context.Background()
	o := placedOrder(suite.T(), nil)
	suite.Require().NoError(o.ChangeStatus(order.Confirmed))

	suite.Require().NoError(suite.publisher.PublishOrderStatusChanged(ctx, o))

	conn, err := nats.Connect(suite.url)
	suite.Require().NoError(err)
	defer conn.Close()
	js, err := conn.JetStream()
	suite.Require().NoError(err)
	msg, err := js.GetLastMsg(natsadapter.StreamName, natsadapter.SubjectOrderStatusChanged)
	suite.Require().NoError(err)

	var ev natsadapter.OrderEvent
	suite.Require().NoError(json.Unmarshal(msg.Data, &ev))
	suite.Equal("Confirmed", ev.Status)
	suite.Empty(ev.Lines)
}

func (suite *OrderPublisherIntegrationTestSuite) TestPublish_RejectsUnconstructedOrder() {
	err := suite.publisher.PublishOrderPlaced(context.Background(), &order.Order{})

	suite.Require().ErrorIs(err, order.ErrOrderIsNotConstructed)
}
