package cmd

import (
	"log/slog"

	"orderflow/internal/adapters/in/http"
	"orderflow/internal/adapters/out/identity"
	"orderflow/internal/adapters/out/postgres"
	"orderflow/internal/adapters/out/postgres/profilerepo"
	"orderflow/internal/core/application/sessions"
	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/core/application/views"
	"orderflow/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters, use cases, and views into the running
// application. All construction happens here; nothing else in the codebase
// knows concrete adapter types.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
}

// NewCompositionRoot creates the composition root over an open database
// connection.
func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	return commands.NewAcceptOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateStartDeliveryCommandHandler() commands.StartDeliveryCommandHandler {
	return commands.NewStartDeliveryCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPlacedOrdersQueryHandler() queries.GetPlacedOrdersQueryHandler {
	return queries.NewGetPlacedOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveryTasksQueryHandler() queries.GetDeliveryTasksQueryHandler {
	return queries.NewGetDeliveryTasksQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCustomerView() views.CustomerView {
	return views.NewCustomerView(
		c.CreatePlaceOrderCommandHandler(),
		c.CreateGetCustomerOrdersQueryHandler(),
	)
}

func (c *CompositionRoot) CreateVendorView() views.VendorView {
	return views.NewVendorView(
		c.CreateGetPlacedOrdersQueryHandler(),
		c.CreateAcceptOrderCommandHandler(),
	)
}

func (c *CompositionRoot) CreateDeliveryView() views.DeliveryView {
	return views.NewDeliveryView(
		c.CreateGetDeliveryTasksQueryHandler(),
		c.CreateStartDeliveryCommandHandler(),
		c.CreateCompleteOrderCommandHandler(),
	)
}

func (c *CompositionRoot) CreateSessionResolver() (sessions.Resolver, error) {
	verifier, err := identity.NewJWTVerifier(c.config.JWTSecret, c.config.JWTIssuer)
	if err != nil {
		return sessions.Resolver{}, err
	}

	profiles := profilerepo.NewGormProfileRepository(c.gormDB)
	return sessions.NewResolver(verifier, profiles), nil
}

func (c *CompositionRoot) CreateHTTPServer() (*http.Server, error) {
	resolver, err := c.CreateSessionResolver()
	if err != nil {
		return nil, err
	}

	return http.NewServer(
		resolver,
		c.CreateCustomerView(),
		c.CreateVendorView(),
		c.CreateDeliveryView(),
	), nil
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetPlacedOrdersQueryHandler(),
		c.CreateGetDeliveryTasksQueryHandler(),
		logger,
	)
}

// FuncOrderUoWFactory adapts a closure to the commands.OrderUoWFactory interface.
type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
