package order

import (
	"fmt"

	"github.com/likecate/sky-take-out/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. The numeric value doubles
// as the progress rank: a higher value means the order is further along, with
// Cancelled as a parallel terminal state reachable from ranks 1-4.
//
// State transitions:
//
//	PendingPayment ──> ToBeConfirmed ──> Confirmed ──> DeliveryInProgress ──> Completed
//	       │                 │               │                  │
//	       └─────────────────┴───────┬───────┴──────────────────┘
//	                                 v
//	                             Cancelled
//
// Which edge an actor may take is decided by Decide in transition.go.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// PendingPayment is the initial status; the order waits for payment
	// and is auto-cancelled once the payment window elapses.
	PendingPayment

	// ToBeConfirmed means payment succeeded and the merchant has not yet
	// accepted or rejected the order.
	ToBeConfirmed

	// Confirmed means the merchant accepted the order and it awaits dispatch.
	Confirmed

	// DeliveryInProgress means the order has been handed to delivery.
	DeliveryInProgress

	// Completed is the successful terminal state.
	Completed

	// Cancelled is the unsuccessful terminal state, reached by customer or
	// merchant cancellation, rejection, or payment timeout.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:            "Unknown",
		PendingPayment:     "PendingPayment",
		ToBeConfirmed:      "ToBeConfirmed",
		Confirmed:          "Confirmed",
		DeliveryInProgress: "DeliveryInProgress",
		Completed:          "Completed",
		Cancelled:          "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		PendingPayment:     "PendingPayment",
		ToBeConfirmed:      "ToBeConfirmed",
		Confirmed:          "Confirmed",
		DeliveryInProgress: "DeliveryInProgress",
		Completed:          "Completed",
		Cancelled:          "Cancelled",
	}
}

// Validate checks that the Status holds one of the six lifecycle values.
// Used when reconstructing orders from persistence or parsing requests.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String implements fmt.Stringer and is safe on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions leave this status.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// PaymentStatus is the payment axis of an order, independent from Status but
// jointly constrained: a cancelled order that was paid must end up Refunded.
type PaymentStatus int

const (
	// Unpaid is the initial payment status.
	Unpaid PaymentStatus = iota

	// Paid means the payment succeeded and checkout time was recorded.
	Paid

	// Refunded means a previously paid order was cancelled or rejected and
	// the payment returned. Refunds are simulated as always succeeding.
	Refunded
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		Unpaid:   "Unpaid",
		Paid:     "Paid",
		Refunded: "Refunded",
	}
}

// Validate checks that the PaymentStatus holds one of the three values.
func (p PaymentStatus) Validate() error {
	if _, ok := getPaymentStatusStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("payment status",
			fmt.Errorf("%d is not a valid payment status", p))
	}
	return nil
}

// String implements fmt.Stringer and is safe on any value.
func (p PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[p]; ok {
		return str
	}
	return "Unknown"
}
