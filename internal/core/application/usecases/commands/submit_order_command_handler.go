package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/likecate/sky-take-out/internal/core/domain/model/kernel"
	"github.com/likecate/sky-take-out/internal/core/domain/model/order"
	"github.com/likecate/sky-take-out/internal/core/ports"
)

var (
	// ErrShoppingCartIsEmpty blocks submission when the customer has
	// nothing in their cart.
	ErrShoppingCartIsEmpty = errors.New("shopping cart is empty")

	// ErrOutOfDeliveryRange blocks submission when the delivery address is
	// farther from the shop than the configured threshold.
	ErrOutOfDeliveryRange = errors.New("delivery address is out of delivery range")

	// ErrRoutePlanning blocks submission when the routing collaborator
	// fails or times out. No partial order is persisted.
	ErrRoutePlanning = errors.New("route planning failed")
)

// SubmitOrderResult carries the data the customer sees right after placing an
// order.
type SubmitOrderResult struct {
	OrderID   kernel.UUID
	Number    string
	Amount    kernel.Money
	OrderTime time.Time
}

// SubmitOrderCommandHandler places a new order: it snapshots the delivery
// address and the cart lines, guards the delivery distance, and persists the
// order, its details and the cart clear in a single transaction.
type SubmitOrderCommandHandler struct {
	uowFactory   UoWFactory
	addressBook  ports.AddressBook
	routePlanner ports.RoutePlanner
	numbers      *order.NumberGenerator
	shopAddress  string
	maxDistance  int
}

// NewSubmitOrderCommandHandler creates a handler for order submission.
// maxDistance is the delivery radius in meters; shopAddress is the origin fed
// to the route planner.
func NewSubmitOrderCommandHandler(
	uowFactory UoWFactory,
	addressBook ports.AddressBook,
	routePlanner ports.RoutePlanner,
	numbers *order.NumberGenerator,
	shopAddress string,
	maxDistance int,
) SubmitOrderCommandHandler {
	return SubmitOrderCommandHandler{
		uowFactory:   uowFactory,
		addressBook:  addressBook,
		routePlanner: routePlanner,
		numbers:      numbers,
		shopAddress:  shopAddress,
		maxDistance:  maxDistance,
	}
}

// Handle processes the submission. Prerequisite failures (missing address,
// empty cart, distance guard) surface before anything is written, so a
// rejected submission leaves the store untouched.
func (h SubmitOrderCommandHandler) Handle(
	ctx context.Context,
	cmd SubmitOrderCommand,
) (SubmitOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return SubmitOrderResult{}, err
	}

	address, err := h.addressBook.GetAddressByID(ctx, cmd.AddressID())
	if err != nil {
		return SubmitOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return SubmitOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cart := uow.Cart()
	lines, err := cart.ListItems(ctx, cmd.CustomerID())
	if err != nil {
		return SubmitOrderResult{}, err
	}
	if len(lines) == 0 {
		return SubmitOrderResult{}, ErrShoppingCartIsEmpty
	}

	distance, err := h.routePlanner.DrivingDistance(ctx, h.shopAddress, address.FullText())
	if err != nil {
		return SubmitOrderResult{}, fmt.Errorf("%w: %w", ErrRoutePlanning, err)
	}
	if distance > h.maxDistance {
		return SubmitOrderResult{}, fmt.Errorf("%w: %d meters exceeds %d", ErrOutOfDeliveryRange, distance, h.maxDistance)
	}

	recipient, err := order.NewRecipient(address.Consignee, address.Phone, address.FullText())
	if err != nil {
		return SubmitOrderResult{}, err
	}

	details := make([]order.Detail, 0, len(lines))
	amount := kernel.Money{}
	for _, line := range lines {
		detail, detailErr := order.NewDetail(
			kernel.NewUUID(), line.ItemID, line.Name, line.Image, line.Quantity, line.UnitPrice,
		)
		if detailErr != nil {
			return SubmitOrderResult{}, detailErr
		}
		details = append(details, detail)
		amount = amount.Add(detail.Subtotal())
	}

	now := time.Now()
	newOrder, err := order.NewOrder(
		kernel.NewUUID(), h.numbers.Next(now), cmd.CustomerID(), amount, recipient, now,
	)
	if err != nil {
		return SubmitOrderResult{}, err
	}

	orderRepo := uow.OrderRepository()
	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return SubmitOrderResult{}, err
	}
	if err = orderRepo.AddDetails(ctx, newOrder.ID(), details); err != nil {
		return SubmitOrderResult{}, err
	}
	if err = cart.Clear(ctx, cmd.CustomerID()); err != nil {
		return SubmitOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return SubmitOrderResult{}, err
	}

	return SubmitOrderResult{
		OrderID:   newOrder.ID(),
		Number:    newOrder.Number(),
		Amount:    newOrder.Amount(),
		OrderTime: newOrder.OrderTime(),
	}, nil
}
