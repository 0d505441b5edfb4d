package commands_test

import (
	"testing"

	"github.com/likecate/sky-take-out/internal/core/application/usecases/commands"
	"github.com/likecate/sky-take-out/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPayOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	o := orderInStatus(t, order.PendingPayment, order.Unpaid)
	cmd, err := commands.NewPayOrderCommand(o.Number())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetByNumber", ctx, o.Number()).Return(o, nil).Once(),
		repo.On("UpdateIfStatus", ctx, o, order.PendingPayment).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	notifier := new(MockNotifier)
	notifier.On("Broadcast", mock.MatchedBy(func(e order.Event) bool {
		return e.Type == order.EventNewOrder && e.OrderID == o.ID().String()
	})).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPayOrderCommandHandler(factory, notifier)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.ToBeConfirmed, o.Status())
	assert.Equal(t, order.Paid, o.Payment())
	assert.NotNil(t, o.CheckoutTime())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestPayOrderCommandHandler_Handle_StatusConflict_NoBroadcast(t *testing.T) {
	ctx := t.Context()
	o := orderInStatus(t, order.PendingPayment, order.Unpaid)
	cmd, err := commands.NewPayOrderCommand(o.Number())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetByNumber", ctx, o.Number()).Return(o, nil).Once(),
		// The reaper cancelled the order between the read and the write.
		repo.On("UpdateIfStatus", ctx, o, order.PendingPayment).Return(order.ErrStatusConflict).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	notifier := new(MockNotifier)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPayOrderCommandHandler(factory, notifier)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrStatusConflict)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	notifier.AssertNotCalled(t, "Broadcast", mock.Anything)
}

func TestPayOrderCommandHandler_Handle_AlreadyPaid(t *testing.T) {
	ctx := t.Context()
	o := orderInStatus(t, order.ToBeConfirmed, order.Paid)
	cmd, err := commands.NewPayOrderCommand(o.Number())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetByNumber", ctx, o.Number()).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	notifier := new(MockNotifier)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPayOrderCommandHandler(factory, notifier)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrInvalidTransition)
	repo.AssertNotCalled(t, "UpdateIfStatus", mock.Anything, mock.Anything, mock.Anything)
	notifier.AssertNotCalled(t, "Broadcast", mock.Anything)
}

func TestPayOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.PayOrderCommand{} // not constructed properly

	h := commands.NewPayOrderCommandHandler(new(MockOrderUoWFactory), new(MockNotifier))
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
}
