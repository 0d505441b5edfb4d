package commands_test

import (
	"testing"

	"github.com/likecate/sky-take-out/internal/core/application/usecases/commands"
	"github.com/likecate/sky-take-out/internal/core/domain/model/customer"
	"github.com/likecate/sky-take-out/internal/core/domain/model/kernel"
	"github.com/likecate/sky-take-out/internal/core/domain/model/order"
	"github.com/likecate/sky-take-out/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRemindOrderCommandHandler_Handle_BroadcastsWithoutPersisting(t *testing.T) {
	ctx := t.Context()
	o := orderInStatus(t, order.ToBeConfirmed, order.Paid)
	cmd, err := commands.NewRemindOrderCommand(o.ID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("GetByID", ctx, o.ID()).Return(o, nil).Once()

	uow := new(MockOrderUoW)
	uow.On("OrderRepository").Return(repo).Once()

	notifier := new(MockNotifier)
	notifier.On("Broadcast", mock.MatchedBy(func(e order.Event) bool {
		return e.Type == order.EventReminder && e.OrderID == o.ID().String()
	})).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRemindOrderCommandHandler(factory, notifier)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.ToBeConfirmed, o.Status())
	uow.AssertNotCalled(t, "Begin", mock.Anything)
	repo.AssertNotCalled(t, "UpdateIfStatus", mock.Anything, mock.Anything, mock.Anything)
	notifier.AssertExpectations(t)
}

func TestRemindOrderCommandHandler_Handle_UnknownOrder(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewRemindOrderCommand(id)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("GetByID", ctx, id).Return(nil, errs.NewObjectNotFoundError("order", id.String())).Once()

	uow := new(MockOrderUoW)
	uow.On("OrderRepository").Return(repo).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)

	h := commands.NewRemindOrderCommandHandler(factory, notifier)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	notifier.AssertNotCalled(t, "Broadcast", mock.Anything)
}

func TestRepeatOrderCommandHandler_Handle_CopiesDetailsIntoCart(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	cmd, err := commands.NewRepeatOrderCommand(orderID, customerID)
	require.NoError(t, err)

	price, _ := kernel.NewMoneyFromCents(1200)
	detail, err := order.NewDetail(kernel.NewUUID(), kernel.NewUUID(), "Kung Pao Chicken", "kungpao.png", 2, price)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	cart := new(MockCart)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetDetails", ctx, orderID).Return([]order.Detail{detail}, nil).Once(),
		uow.On("Cart").Return(cart).Once(),
		cart.On("AddItems", ctx, mock.MatchedBy(func(lines []customer.CartLine) bool {
			return len(lines) == 1 &&
				lines[0].CustomerID.IsEqual(customerID) &&
				lines[0].ItemID.IsEqual(detail.ItemID()) &&
				lines[0].Quantity == 2
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRepeatOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	cart.AssertExpectations(t)
	uow.AssertExpectations(t)
}
