package order

import (
	"errors"
	"fmt"
	"time"

	"github.com/likecate/sky-take-out/internal/core/domain/model/kernel"
	"github.com/likecate/sky-take-out/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrStatusConflict is returned by the persistence layer when a
	// check-and-set update finds the order's status changed by a concurrent
	// actor. Exactly one of the racing transitions wins; the loser gets this.
	ErrStatusConflict = errors.New("order status was changed concurrently")

	// ErrConsigneeIsRequired, ErrPhoneIsRequired and ErrAddressIsRequired
	// reject incomplete delivery snapshots at submission.
	ErrConsigneeIsRequired = errors.New("consignee is required")
	ErrPhoneIsRequired     = errors.New("phone is required")
	ErrAddressIsRequired   = errors.New("address is required")
)

// Recipient is the delivery address snapshot captured from the address book at
// submission. It is immutable afterward: editing the address book never
// changes a submitted order.
type Recipient struct {
	consignee string
	phone     string
	address   string
}

// NewRecipient creates a delivery snapshot. All three fields are required.
func NewRecipient(consignee, phone, address string) (Recipient, error) {
	if consignee == "" {
		return Recipient{}, ErrConsigneeIsRequired
	}
	if phone == "" {
		return Recipient{}, ErrPhoneIsRequired
	}
	if address == "" {
		return Recipient{}, ErrAddressIsRequired
	}
	return Recipient{consignee: consignee, phone: phone, address: address}, nil
}

// Consignee returns the receiver's name.
func (r Recipient) Consignee() string { return r.consignee }

// Phone returns the receiver's phone number.
func (r Recipient) Phone() string { return r.phone }

// Address returns the full delivery address text.
func (r Recipient) Address() string { return r.address }

// Order is the aggregate root of the lifecycle engine. It is created at
// submission, mutated only through Apply with a validator-issued Transition,
// and never physically deleted: removal is one of the terminal statuses.
//
// Invariants:
//   - status only moves along the edges encoded in Decide
//   - checkoutTime, cancelTime and deliveryTime are each set exactly once,
//     at the transition that produces them
//   - the recipient snapshot never changes after construction
type Order struct {
	id         kernel.UUID
	number     string
	customerID kernel.UUID

	status  Status
	payment PaymentStatus

	amount    kernel.Money
	recipient Recipient

	cancelReason string

	orderTime    time.Time
	checkoutTime *time.Time
	cancelTime   *time.Time
	deliveryTime *time.Time

	isConstructed bool
}

// NewOrder creates a freshly submitted order in PendingPayment/Unpaid with the
// given placement time. The order number must already be generated.
func NewOrder(
	id kernel.UUID,
	number string,
	customerID kernel.UUID,
	amount kernel.Money,
	recipient Recipient,
	orderTime time.Time,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := customerID.Validate(); err != nil {
		return nil, err
	}
	if number == "" {
		return nil, errs.NewValueIsRequiredError("order number")
	}
	if recipient == (Recipient{}) {
		return nil, errs.NewValueIsRequiredError("recipient")
	}

	return &Order{
		id:            id,
		number:        number,
		customerID:    customerID,
		status:        PendingPayment,
		payment:       Unpaid,
		amount:        amount,
		recipient:     recipient,
		orderTime:     orderTime,
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an order from persistence. Unlike NewOrder it
// accepts any valid status/payment combination and the recorded timestamps.
func RestoreOrder(
	id kernel.UUID,
	number string,
	customerID kernel.UUID,
	status Status,
	payment PaymentStatus,
	amount kernel.Money,
	recipient Recipient,
	cancelReason string,
	orderTime time.Time,
	checkoutTime, cancelTime, deliveryTime *time.Time,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := customerID.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := payment.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		number:        number,
		customerID:    customerID,
		status:        status,
		payment:       payment,
		amount:        amount,
		recipient:     recipient,
		cancelReason:  cancelReason,
		orderTime:     orderTime,
		checkoutTime:  checkoutTime,
		cancelTime:    cancelTime,
		deliveryTime:  deliveryTime,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order was built through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the internal order identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// Number returns the external order number shown to customers and merchants.
func (o *Order) Number() string { return o.number }

// CustomerID returns the owning customer's identifier.
func (o *Order) CustomerID() kernel.UUID { return o.customerID }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// Payment returns the current payment status.
func (o *Order) Payment() PaymentStatus { return o.payment }

// Amount returns the order total.
func (o *Order) Amount() kernel.Money { return o.amount }

// Recipient returns the immutable delivery snapshot.
func (o *Order) Recipient() Recipient { return o.recipient }

// CancelReason returns the cancellation or rejection reason, if any.
func (o *Order) CancelReason() string { return o.cancelReason }

// OrderTime returns the placement time.
func (o *Order) OrderTime() time.Time { return o.orderTime }

// CheckoutTime returns the payment-confirmed time, nil until payment.
func (o *Order) CheckoutTime() *time.Time { return o.checkoutTime }

// CancelTime returns the cancellation time, nil unless cancelled.
func (o *Order) CancelTime() *time.Time { return o.cancelTime }

// DeliveryTime returns the completion time, nil until completed.
func (o *Order) DeliveryTime() *time.Time { return o.deliveryTime }

// Apply moves the order along a validator-issued transition, executing the
// timestamp effects at the given instant. The reason is recorded only on
// cancelling transitions. Timestamps are write-once: an effect that would
// overwrite one fails the whole application.
func (o *Order) Apply(t Transition, reason string, now time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := t.Next.Validate(); err != nil {
		return err
	}
	if err := t.NextPayment.Validate(); err != nil {
		return err
	}

	for _, effect := range t.Effects {
		switch effect {
		case EffectSetCheckoutTime:
			if o.checkoutTime != nil {
				return errs.NewValueIsInvalidErrorWithCause("checkout time",
					fmt.Errorf("already set to %s", o.checkoutTime))
			}
		case EffectSetCancelTime:
			if o.cancelTime != nil {
				return errs.NewValueIsInvalidErrorWithCause("cancel time",
					fmt.Errorf("already set to %s", o.cancelTime))
			}
		case EffectSetDeliveryTime:
			if o.deliveryTime != nil {
				return errs.NewValueIsInvalidErrorWithCause("delivery time",
					fmt.Errorf("already set to %s", o.deliveryTime))
			}
		case EffectRefund, EffectNotifyNewOrder, EffectNotifyReminder:
			// Executed outside the aggregate.
		}
	}

	o.status = t.Next
	o.payment = t.NextPayment

	for _, effect := range t.Effects {
		switch effect {
		case EffectSetCheckoutTime:
			ts := now
			o.checkoutTime = &ts
		case EffectSetCancelTime:
			ts := now
			o.cancelTime = &ts
			if reason != "" {
				o.cancelReason = reason
			}
		case EffectSetDeliveryTime:
			ts := now
			o.deliveryTime = &ts
		case EffectRefund, EffectNotifyNewOrder, EffectNotifyReminder:
			// Executed outside the aggregate.
		}
	}

	return nil
}
