package commands_test

import (
	"errors"
	"testing"

	"github.com/likecate/sky-take-out/internal/core/application/usecases/commands"
	"github.com/likecate/sky-take-out/internal/core/domain/model/customer"
	"github.com/likecate/sky-take-out/internal/core/domain/model/kernel"
	"github.com/likecate/sky-take-out/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testShopAddress = "BeijingHaidian2 Shop Road"
	testMaxDistance = 5000
)

func newSubmitHandler(
	factory *MockUoWFactory,
	addressBook *MockAddressBook,
	planner *MockRoutePlanner,
) commands.SubmitOrderCommandHandler {
	return commands.NewSubmitOrderCommandHandler(
		factory,
		addressBook,
		planner,
		order.NewNumberGenerator(),
		testShopAddress,
		testMaxDistance,
	)
}

func TestSubmitOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	addressID := kernel.NewUUID()
	cmd, err := commands.NewSubmitOrderCommand(customerID, addressID)
	require.NoError(t, err)

	addressBook := new(MockAddressBook)
	addressBook.On("GetAddressByID", ctx, addressID).Return(testAddress(customerID), nil).Once()

	planner := new(MockRoutePlanner)
	planner.On("DrivingDistance", ctx, testShopAddress, "BeijingHaidian1 Main Street").
		Return(3200, nil).Once()

	repo := new(MockOrderRepository)
	cart := new(MockCart)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("Cart").Return(cart).Once(),
		cart.On("ListItems", ctx, customerID).Return(testCartLines(customerID), nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		repo.On("AddDetails", mock.Anything, mock.AnythingOfType("kernel.UUID"), mock.AnythingOfType("[]order.Detail")).Return(nil).Once(),
		cart.On("Clear", ctx, customerID).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newSubmitHandler(factory, addressBook, planner)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.NotEmpty(t, result.Number)
	// 2 * 12.00 + 1 * 6.50
	assert.Equal(t, int64(3050), result.Amount.Cents())
	repo.AssertExpectations(t)
	cart.AssertExpectations(t)
	uow.AssertExpectations(t)
	addressBook.AssertExpectations(t)
	planner.AssertExpectations(t)
}

func TestSubmitOrderCommandHandler_Handle_EmptyCart_NothingPersisted(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	addressID := kernel.NewUUID()
	cmd, err := commands.NewSubmitOrderCommand(customerID, addressID)
	require.NoError(t, err)

	addressBook := new(MockAddressBook)
	addressBook.On("GetAddressByID", ctx, addressID).Return(testAddress(customerID), nil).Once()

	cart := new(MockCart)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("Cart").Return(cart).Once(),
		cart.On("ListItems", ctx, customerID).Return([]customer.CartLine{}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	planner := new(MockRoutePlanner)

	h := newSubmitHandler(factory, addressBook, planner)
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrShoppingCartIsEmpty)
	uow.AssertExpectations(t)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	planner.AssertNotCalled(t, "DrivingDistance", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitOrderCommandHandler_Handle_OutOfRange(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	addressID := kernel.NewUUID()
	cmd, err := commands.NewSubmitOrderCommand(customerID, addressID)
	require.NoError(t, err)

	addressBook := new(MockAddressBook)
	addressBook.On("GetAddressByID", ctx, addressID).Return(testAddress(customerID), nil).Once()

	planner := new(MockRoutePlanner)
	planner.On("DrivingDistance", ctx, testShopAddress, mock.Anything).
		Return(testMaxDistance+1, nil).Once()

	cart := new(MockCart)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("Cart").Return(cart).Once(),
		cart.On("ListItems", ctx, customerID).Return(testCartLines(customerID), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newSubmitHandler(factory, addressBook, planner)
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrOutOfDeliveryRange)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertNotCalled(t, "OrderRepository")
}

func TestSubmitOrderCommandHandler_Handle_RoutePlanningFailure(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	addressID := kernel.NewUUID()
	cmd, err := commands.NewSubmitOrderCommand(customerID, addressID)
	require.NoError(t, err)

	addressBook := new(MockAddressBook)
	addressBook.On("GetAddressByID", ctx, addressID).Return(testAddress(customerID), nil).Once()

	planner := new(MockRoutePlanner)
	planner.On("DrivingDistance", ctx, testShopAddress, mock.Anything).
		Return(0, errors.New("provider timeout")).Once()

	cart := new(MockCart)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("Cart").Return(cart).Once(),
		cart.On("ListItems", ctx, customerID).Return(testCartLines(customerID), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newSubmitHandler(factory, addressBook, planner)
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrRoutePlanning)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestSubmitOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.SubmitOrderCommand{} // not constructed properly

	h := newSubmitHandler(new(MockUoWFactory), new(MockAddressBook), new(MockRoutePlanner))
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
}
