package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/checkout"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/domain/model/zone"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

type MockZoneSource struct{ mock.Mock }

func (m *MockZoneSource) GetAll(ctx context.Context) ([]*zone.Zone, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*zone.Zone), args.Error(1)
}

type MockMessenger struct{ mock.Mock }

func (m *MockMessenger) Handoff(ctx context.Context, message string) (string, error) {
	args := m.Called(ctx, message)
	return args.String(0), args.Error(1)
}

type MockComposer struct{ mock.Mock }

func (m *MockComposer) Compose(o *order.Order) (string, error) {
	args := m.Called(o)
	return args.String(0), args.Error(1)
}

type MockOrderEventPublisher struct{ mock.Mock }

func (m *MockOrderEventPublisher) PublishOrderPlaced(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderEventPublisher) PublishOrderStatusChanged(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

type MockZoneRefresher struct{ mock.Mock }

func (m *MockZoneRefresher) Refresh(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// fakeSessionStore keeps sessions in a map. The handlers' closures run
// against the real aggregate, which makes state assertions straightforward.
type fakeSessionStore struct {
	mu       sync.Mutex
	sessions map[kernel.UUID]*checkout.Session
	cutoff   time.Time
	removed  int
}

func newFakeSessionStore(sessions ...*checkout.Session) *fakeSessionStore {
	f := &fakeSessionStore{sessions: make(map[kernel.UUID]*checkout.Session)}
	for _, s := range sessions {
		f.sessions[s.ID()] = s
	}
	return f
}

func (f *fakeSessionStore) Add(_ context.Context, s *checkout.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions[s.ID()] = s
	return nil
}

// Update releases the map lock before running fn so that fn may call Delete.
func (f *fakeSessionStore) Update(_ context.Context, id kernel.UUID, fn func(*checkout.Session) error) error {
	f.mu.Lock()
	s, ok := f.sessions[id]
	f.mu.Unlock()
	if !ok {
		return errs.NewObjectNotFoundError("checkout session", id.String())
	}
	return fn(s)
}

func (f *fakeSessionStore) View(ctx context.Context, id kernel.UUID, fn func(*checkout.Session) error) error {
	return f.Update(ctx, id, fn)
}

func (f *fakeSessionStore) Delete(_ context.Context, id kernel.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.sessions, id)
	return nil
}

func (f *fakeSessionStore) DeleteIdleSince(_ context.Context, cutoff time.Time) (int, error) {
	f.cutoff = cutoff
	return f.removed, nil
}

func (f *fakeSessionStore) has(id kernel.UUID) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.sessions[id]
	return ok
}

func point(t *testing.T, lat, lng float64) kernel.Coordinate {
	t.Helper()
	p, err := kernel.NewCoordinate(lat, lng)
	require.NoError(t, err)
	return p
}

func unitSquareZone(t *testing.T, name string, price int64) *zone.Zone {
	t.Helper()
	z, err := zone.NewZone(kernel.NewUUID(), name, price, []kernel.Coordinate{
		point(t, 0, 0), point(t, 0, 1), point(t, 1, 1), point(t, 1, 0),
	}, "")
	require.NoError(t, err)
	return z
}

func newProduct(t *testing.T, price int64, sizes ...string) *product.Product {
	t.Helper()
	p, err := product.NewProduct(kernel.NewUUID(), "Boxy Hoodie", price, sizes, "hoodie.webp", true)
	require.NoError(t, err)
	return p
}

// sessionWithCart returns a reviewing session whose cart holds one line
// worth subtotal.
func sessionWithCart(t *testing.T, subtotal int64, zones ...*zone.Zone) *checkout.Session {
	t.Helper()
	c := cart.NewCart()
	if subtotal > 0 {
		line, err := cart.NewLine(kernel.NewUUID(), kernel.NewUUID(), "Boxy Hoodie", subtotal, 1, "M", "")
		require.NoError(t, err)
		_, err = c.Add(line)
		require.NoError(t, err)
	}
	s, err := checkout.NewSession(kernel.NewUUID(), c, zones, services.NewGeofence())
	require.NoError(t, err)
	return s
}

// readySession returns a confirming session with every field filled in.
func readySession(t *testing.T) *checkout.Session {
	t.Helper()
	s := sessionWithCart(t, 250000, unitSquareZone(t, "Centro", 25000))
	require.NoError(t, s.Proceed())
	require.NoError(t, s.UpdateCustomerField(checkout.FieldFirstName, "Ana"))
	require.NoError(t, s.UpdateCustomerField(checkout.FieldLastName, "Gómez"))
	require.NoError(t, s.SelectLocation(point(t, 0.5, 0.5)))
	return s
}
