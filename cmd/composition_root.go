package cmd

import (
	"log/slog"

	"github.com/likecate/sky-take-out/internal/adapters/in/ws"
	"github.com/likecate/sky-take-out/internal/adapters/out/postgres"
	"github.com/likecate/sky-take-out/internal/adapters/out/postgres/customerrepo"
	"github.com/likecate/sky-take-out/internal/adapters/out/routing"
	"github.com/likecate/sky-take-out/internal/core/application/usecases/commands"
	"github.com/likecate/sky-take-out/internal/core/application/usecases/queries"
	"github.com/likecate/sky-take-out/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into the application's command and query
// handlers. One instance lives for the whole process.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	hub        *ws.Hub
	numbers    *order.NumberGenerator
	logger     *slog.Logger
}

// NewCompositionRoot creates the root with all process-wide collaborators.
func NewCompositionRoot(config Config, gormDB *gorm.DB, hub *ws.Hub, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		hub:        hub,
		numbers:    order.NewNumberGenerator(),
		logger:     logger,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fullUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateSubmitOrderCommandHandler() commands.SubmitOrderCommandHandler {
	return commands.NewSubmitOrderCommandHandler(
		c.fullUoWFactory(),
		customerrepo.NewGormAddressBook(c.gormDB),
		routing.NewClient(c.config.RoutingBaseURL, c.config.RoutingAPIKey),
		c.numbers,
		c.config.ShopAddress,
		c.config.MaxDeliveryDistance,
	)
}

func (c *CompositionRoot) CreatePayOrderCommandHandler() commands.PayOrderCommandHandler {
	return commands.NewPayOrderCommandHandler(c.orderUoWFactory(), c.hub)
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	return commands.NewAcceptOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRejectOrderCommandHandler() commands.RejectOrderCommandHandler {
	return commands.NewRejectOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUserCancelOrderCommandHandler() commands.UserCancelOrderCommandHandler {
	return commands.NewUserCancelOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAdminCancelOrderCommandHandler() commands.AdminCancelOrderCommandHandler {
	return commands.NewAdminCancelOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDispatchOrderCommandHandler() commands.DispatchOrderCommandHandler {
	return commands.NewDispatchOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRemindOrderCommandHandler() commands.RemindOrderCommandHandler {
	return commands.NewRemindOrderCommandHandler(c.orderUoWFactory(), c.hub)
}

func (c *CompositionRoot) CreateRepeatOrderCommandHandler() commands.RepeatOrderCommandHandler {
	return commands.NewRepeatOrderCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateProcessPaymentTimeoutsCommandHandler() commands.ProcessPaymentTimeoutsCommandHandler {
	return commands.NewProcessPaymentTimeoutsCommandHandler(
		c.orderUoWFactory(),
		c.config.PaymentWindow,
		c.logger,
	)
}

func (c *CompositionRoot) CreateProcessDeliveryTimeoutsCommandHandler() commands.ProcessDeliveryTimeoutsCommandHandler {
	return commands.NewProcessDeliveryTimeoutsCommandHandler(
		c.orderUoWFactory(),
		c.config.DeliveryWindow,
		c.logger,
	)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderStatisticsQueryHandler() queries.GetOrderStatisticsQueryHandler {
	return queries.NewGetOrderStatisticsQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
