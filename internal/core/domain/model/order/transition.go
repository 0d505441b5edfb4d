package order

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is the wrap target for every transition rejection.
// Callers classify business-rule failures with errors.Is against this value.
var ErrInvalidTransition = errors.New("invalid order transition")

// InvalidTransitionError reports why an action was rejected for an order in a
// given status. The reason is user-visible.
type InvalidTransitionError struct {
	From   Status
	Action Action
	Reason string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: cannot %s an order in status %s: %s",
		ErrInvalidTransition, e.Action, e.From, e.Reason)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

func rejected(from Status, action Action, reason string) (Transition, error) {
	return Transition{}, &InvalidTransitionError{From: from, Action: action, Reason: reason}
}

// Action identifies a lifecycle operation requested on an existing order.
// Order submission is not an Action; it creates the aggregate.
type Action int

const (
	// ActionPay confirms payment for a pending order.
	ActionPay Action = iota + 1

	// ActionAccept is the merchant accepting a paid order.
	ActionAccept

	// ActionReject is the merchant rejecting a paid order with a reason.
	ActionReject

	// ActionUserCancel is the customer cancelling before dispatch.
	ActionUserCancel

	// ActionAdminCancel is the merchant-side cancellation with a reason.
	ActionAdminCancel

	// ActionDispatch hands a confirmed order to delivery.
	ActionDispatch

	// ActionComplete marks a delivery as finished.
	ActionComplete

	// ActionRemind asks the merchant to hurry; it never changes state.
	ActionRemind

	// ActionPaymentTimeout is the reaper force-cancelling an order whose
	// payment window elapsed.
	ActionPaymentTimeout

	// ActionDeliveryTimeout is the reaper force-completing an order stuck
	// in delivery past the delivery window.
	ActionDeliveryTimeout
)

func (a Action) String() string {
	switch a {
	case ActionPay:
		return "pay"
	case ActionAccept:
		return "accept"
	case ActionReject:
		return "reject"
	case ActionUserCancel:
		return "cancel"
	case ActionAdminCancel:
		return "admin-cancel"
	case ActionDispatch:
		return "dispatch"
	case ActionComplete:
		return "complete"
	case ActionRemind:
		return "remind"
	case ActionPaymentTimeout:
		return "payment-timeout"
	case ActionDeliveryTimeout:
		return "delivery-timeout"
	default:
		return "unknown"
	}
}

// Role is the actor requesting an action. Transitions are gated by role so a
// customer cannot, for example, accept their own order.
type Role int

const (
	// RoleCustomer is the ordering customer.
	RoleCustomer Role = iota + 1

	// RoleMerchant covers merchant and admin-side staff.
	RoleMerchant

	// RoleSystem is the background reaper.
	RoleSystem
)

func (r Role) String() string {
	switch r {
	case RoleCustomer:
		return "customer"
	case RoleMerchant:
		return "merchant"
	case RoleSystem:
		return "system"
	default:
		return "unknown"
	}
}

// Effect is a side effect the engine must perform when persisting a transition.
// The validator lists effects; it never executes them.
type Effect int

const (
	// EffectSetCheckoutTime records the payment-confirmed time.
	EffectSetCheckoutTime Effect = iota + 1

	// EffectSetCancelTime records the cancellation time.
	EffectSetCancelTime

	// EffectSetDeliveryTime records the completion time.
	EffectSetDeliveryTime

	// EffectRefund triggers the (simulated, always succeeding) refund.
	EffectRefund

	// EffectNotifyNewOrder broadcasts a new-order event to merchant observers.
	EffectNotifyNewOrder

	// EffectNotifyReminder broadcasts a reminder event to merchant observers.
	EffectNotifyReminder
)

// Transition is the validator's verdict: the statuses to move to and the side
// effects the engine must carry out. It carries exactly the fields the
// transition changes; NextPayment equals the current payment status when the
// payment axis is untouched.
type Transition struct {
	Next        Status
	NextPayment PaymentStatus
	Effects     []Effect
}

// HasEffect reports whether the transition requires the given side effect.
func (t Transition) HasEffect(effect Effect) bool {
	for _, e := range t.Effects {
		if e == effect {
			return true
		}
	}
	return false
}

// Decide is the transition validator: a pure mapping from (current status,
// payment status, action, actor role) to the transition to apply, or a
// rejection. It performs no I/O and never mutates the order.
func Decide(current Status, payment PaymentStatus, action Action, role Role) (Transition, error) {
	if err := current.Validate(); err != nil {
		return Transition{}, err
	}
	if err := payment.Validate(); err != nil {
		return Transition{}, err
	}

	switch action {
	case ActionPay:
		if role != RoleCustomer {
			return rejected(current, action, fmt.Sprintf("only a customer may pay, not %s", role))
		}
		if current != PendingPayment {
			return rejected(current, action, "order is not awaiting payment")
		}
		return Transition{
			Next:        ToBeConfirmed,
			NextPayment: Paid,
			Effects:     []Effect{EffectSetCheckoutTime, EffectNotifyNewOrder},
		}, nil

	case ActionAccept:
		if role != RoleMerchant {
			return rejected(current, action, fmt.Sprintf("only a merchant may accept, not %s", role))
		}
		if current != ToBeConfirmed {
			return rejected(current, action, "order is not awaiting confirmation")
		}
		return Transition{Next: Confirmed, NextPayment: payment}, nil

	case ActionReject:
		if role != RoleMerchant {
			return rejected(current, action, fmt.Sprintf("only a merchant may reject, not %s", role))
		}
		if current != ToBeConfirmed {
			return rejected(current, action, "order is not awaiting confirmation")
		}
		t := Transition{Next: Cancelled, NextPayment: payment, Effects: []Effect{EffectSetCancelTime}}
		if payment == Paid {
			t.NextPayment = Refunded
			t.Effects = append(t.Effects, EffectRefund)
		}
		return t, nil

	case ActionUserCancel:
		if role != RoleCustomer {
			return rejected(current, action, fmt.Sprintf("only a customer may cancel, not %s", role))
		}
		// Any status past ToBeConfirmed is a hard rejection: customers
		// cannot cancel once the merchant has taken the order.
		if current > ToBeConfirmed {
			return rejected(current, action, "order has already been taken by the merchant")
		}
		t := Transition{Next: Cancelled, NextPayment: payment, Effects: []Effect{EffectSetCancelTime}}
		if current == ToBeConfirmed {
			t.NextPayment = Refunded
			t.Effects = append(t.Effects, EffectRefund)
		}
		return t, nil

	case ActionAdminCancel:
		if role != RoleMerchant {
			return rejected(current, action, fmt.Sprintf("only a merchant may cancel here, not %s", role))
		}
		// Mirrors the merchant-side rule set: only ToBeConfirmed (use
		// reject instead) and Cancelled are excluded. That leaves
		// Completed cancellable, which looks like a guard gap but is the
		// established business rule; do not tighten it here.
		if current == ToBeConfirmed || current == Cancelled {
			return rejected(current, action, "use reject for unconfirmed orders; cancelled orders stay cancelled")
		}
		t := Transition{Next: Cancelled, NextPayment: payment, Effects: []Effect{EffectSetCancelTime}}
		if payment == Paid {
			t.NextPayment = Refunded
			t.Effects = append(t.Effects, EffectRefund)
		}
		return t, nil

	case ActionDispatch:
		if role != RoleMerchant {
			return rejected(current, action, fmt.Sprintf("only a merchant may dispatch, not %s", role))
		}
		if current != Confirmed {
			return rejected(current, action, "order is not awaiting dispatch")
		}
		return Transition{Next: DeliveryInProgress, NextPayment: payment}, nil

	case ActionComplete:
		if role != RoleMerchant {
			return rejected(current, action, fmt.Sprintf("only a merchant may complete, not %s", role))
		}
		if current != DeliveryInProgress {
			return rejected(current, action, "order is not in delivery")
		}
		return Transition{
			Next:        Completed,
			NextPayment: payment,
			Effects:     []Effect{EffectSetDeliveryTime},
		}, nil

	case ActionRemind:
		if role != RoleCustomer {
			return rejected(current, action, fmt.Sprintf("only a customer may send reminders, not %s", role))
		}
		// Pure notification: status and payment stay as they are.
		return Transition{
			Next:        current,
			NextPayment: payment,
			Effects:     []Effect{EffectNotifyReminder},
		}, nil

	case ActionPaymentTimeout:
		if role != RoleSystem {
			return rejected(current, action, fmt.Sprintf("only the system may force a timeout, not %s", role))
		}
		if current != PendingPayment {
			return rejected(current, action, "order is not awaiting payment")
		}
		// The order was never paid, so the payment axis stays Unpaid.
		return Transition{
			Next:        Cancelled,
			NextPayment: payment,
			Effects:     []Effect{EffectSetCancelTime},
		}, nil

	case ActionDeliveryTimeout:
		if role != RoleSystem {
			return rejected(current, action, fmt.Sprintf("only the system may force a timeout, not %s", role))
		}
		if current != DeliveryInProgress {
			return rejected(current, action, "order is not in delivery")
		}
		// Delivery is assumed successful after too long in transit. The
		// order completes without a delivery time or refund; this is a
		// deliberate business policy, not an oversight.
		return Transition{Next: Completed, NextPayment: payment}, nil

	default:
		return rejected(current, action, "unknown action")
	}
}
