package cmd

import (
	"fmt"
	"log/slog"

	"storefront/internal/adapters/in/http"
	"storefront/internal/adapters/out/memory"
	natsadapter "storefront/internal/adapters/out/nats"
	"storefront/internal/adapters/out/postgres"
	"storefront/internal/adapters/out/postgres/productrepo"
	"storefront/internal/adapters/out/postgres/zonerepo"
	"storefront/internal/adapters/out/valkey"
	"storefront/internal/adapters/out/whatsapp"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"
	"storefront/internal/jobs"
	"storefront/internal/pkg/clock"

	"golang.org/x/text/language"
	"gorm.io/gorm"
)

// CompositionRoot owns the adapters and builds handlers on demand.
type CompositionRoot struct {
	cfg    Config
	logger *slog.Logger
	clock  clock.Clock

	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	products   ports.ProductRepository
	zones      ports.ZoneSource
	zoneCache  *valkey.ZoneCache
	sessions   *memory.SessionStore
	publisher  *natsadapter.OrderPublisher
	messenger  *whatsapp.Messenger
	composer   services.HandoffComposer

	closers []func()
}

// NewCompositionRoot wires the adapters. Valkey and NATS are optional: when
// they are not configured or unreachable the service runs without them.
func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	messenger, err := whatsapp.NewMessenger(cfg.WhatsAppNumber)
	if err != nil {
		return nil, err
	}
	locale, err := language.Parse(cfg.Locale)
	if err != nil {
		return nil, fmt.Errorf("locale: %w", err)
	}

	clk := clock.NewSystem()
	root := &CompositionRoot{
		cfg:        cfg,
		logger:     logger,
		clock:      clk,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		products:   productrepo.NewGormProductRepository(gormDB),
		zones:      zonerepo.NewGormZoneRepository(gormDB),
		sessions:   memory.NewSessionStore(clk, cfg.SessionTTL),
		messenger:  messenger,
		composer:   services.NewHandoffComposer(locale, cfg.CurrencySymbol),
	}

	if cfg.ValkeyAddr != "" {
		client, cErr := valkey.Connect(cfg.ValkeyAddr)
		if cErr != nil {
			logger.Warn("valkey unavailable, zone cache disabled", "error", cErr)
		} else {
			root.zoneCache = valkey.NewZoneCache(client, root.zones, cfg.ZoneCacheTTL, logger)
			root.zones = root.zoneCache
			root.closers = append(root.closers, client.Close)
		}
	}

	if cfg.NATSURL != "" {
		publisher, pErr := natsadapter.NewOrderPublisher(cfg.NATSURL)
		if pErr != nil {
			logger.Warn("nats unavailable, order events disabled", "error", pErr)
		} else {
			root.publisher = publisher
			root.closers = append(root.closers, publisher.Close)
		}
	}

	return root, nil
}

// Close releases the optional connections in reverse order.
func (c *CompositionRoot) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

// eventPublisher returns a nil interface when NATS is disabled, so handlers
// can skip publishing.
func (c *CompositionRoot) eventPublisher() ports.OrderEventPublisher {
	if c.publisher == nil {
		return nil
	}
	return c.publisher
}

func (c *CompositionRoot) CreateStartCheckoutCommandHandler() commands.StartCheckoutCommandHandler {
	return commands.NewStartCheckoutCommandHandler(c.zones, c.sessions)
}

func (c *CompositionRoot) CreateAddCartLineCommandHandler() commands.AddCartLineCommandHandler {
	return commands.NewAddCartLineCommandHandler(c.products, c.sessions)
}

func (c *CompositionRoot) CreateChangeCartLineCommandHandler() commands.ChangeCartLineCommandHandler {
	return commands.NewChangeCartLineCommandHandler(c.products, c.sessions)
}

func (c *CompositionRoot) CreateRemoveCartLineCommandHandler() commands.RemoveCartLineCommandHandler {
	return commands.NewRemoveCartLineCommandHandler(c.sessions)
}

func (c *CompositionRoot) CreateChangeCheckoutStepCommandHandler() commands.ChangeCheckoutStepCommandHandler {
	return commands.NewChangeCheckoutStepCommandHandler(c.sessions)
}

func (c *CompositionRoot) CreateUpdateCustomerCommandHandler() commands.UpdateCustomerCommandHandler {
	return commands.NewUpdateCustomerCommandHandler(c.sessions)
}

func (c *CompositionRoot) CreateSelectLocationCommandHandler() commands.SelectLocationCommandHandler {
	return commands.NewSelectLocationCommandHandler(c.sessions)
}

func (c *CompositionRoot) CreateConfirmCheckoutCommandHandler() commands.ConfirmCheckoutCommandHandler {
	return commands.NewConfirmCheckoutCommandHandler(
		c.sessions,
		c.orderUoWFactory(),
		c.composer,
		c.messenger,
		c.eventPublisher(),
		c.clock,
		c.logger,
	)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory(), c.eventPublisher(), c.logger)
}

func (c *CompositionRoot) CreateExpireSessionsCommandHandler() commands.ExpireSessionsCommandHandler {
	return commands.NewExpireSessionsCommandHandler(c.sessions, c.cfg.SessionTTL, c.clock)
}

func (c *CompositionRoot) CreateGetCheckoutSessionQueryHandler() queries.GetCheckoutSessionQueryHandler {
	return queries.NewGetCheckoutSessionQueryHandler(c.sessions)
}

func (c *CompositionRoot) CreateGetDeliveryZonesQueryHandler() queries.GetDeliveryZonesQueryHandler {
	return queries.NewGetDeliveryZonesQueryHandler(c.zones)
}

func (c *CompositionRoot) CreateLocateZoneQueryHandler() queries.LocateZoneQueryHandler {
	return queries.NewLocateZoneQueryHandler(c.zones)
}

func (c *CompositionRoot) CreateGetPendingOrdersQueryHandler() queries.GetPendingOrdersQueryHandler {
	return queries.NewGetPendingOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

// CreateServer builds the HTTP adapter with every handler.
func (c *CompositionRoot) CreateServer() *http.Server {
	return http.NewServer(http.Handlers{
		StartCheckout:      c.CreateStartCheckoutCommandHandler(),
		AddCartLine:        c.CreateAddCartLineCommandHandler(),
		ChangeCartLine:     c.CreateChangeCartLineCommandHandler(),
		RemoveCartLine:     c.CreateRemoveCartLineCommandHandler(),
		ChangeCheckoutStep: c.CreateChangeCheckoutStepCommandHandler(),
		UpdateCustomer:     c.CreateUpdateCustomerCommandHandler(),
		SelectLocation:     c.CreateSelectLocationCommandHandler(),
		ConfirmCheckout:    c.CreateConfirmCheckoutCommandHandler(),
		ChangeOrderStatus:  c.CreateChangeOrderStatusCommandHandler(),
		GetCheckoutSession: c.CreateGetCheckoutSessionQueryHandler(),
		GetDeliveryZones:   c.CreateGetDeliveryZonesQueryHandler(),
		LocateZone:         c.CreateLocateZoneQueryHandler(),
		GetPendingOrders:   c.CreateGetPendingOrdersQueryHandler(),
		GetOrder:           c.CreateGetOrderQueryHandler(),
	}, c.logger)
}

// CreateJobManager builds the sweeper and, with a zone cache, the warmup job.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	sweeper := jobs.NewSessionSweeperJob(c.CreateExpireSessionsCommandHandler(), c.cfg.SessionSweepSchedule, c.logger)

	var warmup *jobs.ZoneCacheWarmupJob
	if c.zoneCache != nil {
		warmup = jobs.NewZoneCacheWarmupJob(
			commands.NewRefreshZonesCommandHandler(c.zoneCache), c.cfg.ZoneWarmupSchedule, c.logger)
	}

	return jobs.NewJobManager(sweeper, warmup)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
