package order_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/likecate/sky-take-out/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecide_Pay(t *testing.T) {
	t.Run("customer pays a pending order", func(t *testing.T) {
		tr, err := order.Decide(order.PendingPayment, order.Unpaid, order.ActionPay, order.RoleCustomer)

		require.NoError(t, err)
		assert.Equal(t, order.ToBeConfirmed, tr.Next)
		assert.Equal(t, order.Paid, tr.NextPayment)
		assert.True(t, tr.HasEffect(order.EffectSetCheckoutTime))
		assert.True(t, tr.HasEffect(order.EffectNotifyNewOrder))
	})

	t.Run("paying is customer-only", func(t *testing.T) {
		for _, role := range []order.Role{order.RoleMerchant, order.RoleSystem} {
			_, err := order.Decide(order.PendingPayment, order.Unpaid, order.ActionPay, role)

			require.Error(t, err)
			assert.ErrorIs(t, err, order.ErrInvalidTransition)
		}
	})

	t.Run("paying any other status is rejected", func(t *testing.T) {
		for _, status := range []order.Status{
			order.ToBeConfirmed,
			order.Confirmed,
			order.DeliveryInProgress,
			order.Completed,
			order.Cancelled,
		} {
			_, err := order.Decide(status, order.Paid, order.ActionPay, order.RoleCustomer)

			require.Error(t, err, "status %s", status)
			assert.ErrorIs(t, err, order.ErrInvalidTransition)
		}
	})
}

func TestDecide_AcceptAndReject(t *testing.T) {
	t.Run("merchant accepts a paid order", func(t *testing.T) {
		tr, err := order.Decide(order.ToBeConfirmed, order.Paid, order.ActionAccept, order.RoleMerchant)

		require.NoError(t, err)
		assert.Equal(t, order.Confirmed, tr.Next)
		assert.Equal(t, order.Paid, tr.NextPayment)
		assert.Empty(t, tr.Effects)
	})

	t.Run("merchant rejects a paid order with refund", func(t *testing.T) {
		tr, err := order.Decide(order.ToBeConfirmed, order.Paid, order.ActionReject, order.RoleMerchant)

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, tr.Next)
		assert.Equal(t, order.Refunded, tr.NextPayment)
		assert.True(t, tr.HasEffect(order.EffectSetCancelTime))
		assert.True(t, tr.HasEffect(order.EffectRefund))
	})

	t.Run("accept and reject are merchant-only", func(t *testing.T) {
		for _, action := range []order.Action{order.ActionAccept, order.ActionReject} {
			_, err := order.Decide(order.ToBeConfirmed, order.Paid, action, order.RoleCustomer)

			require.Error(t, err)
			assert.ErrorIs(t, err, order.ErrInvalidTransition)
		}
	})

	t.Run("accepting outside ToBeConfirmed is rejected", func(t *testing.T) {
		for _, status := range []order.Status{
			order.PendingPayment,
			order.Confirmed,
			order.DeliveryInProgress,
			order.Completed,
			order.Cancelled,
		} {
			_, err := order.Decide(status, order.Paid, order.ActionAccept, order.RoleMerchant)

			require.Error(t, err, "status %s", status)
		}
	})
}

func TestDecide_UserCancel(t *testing.T) {
	t.Run("customer cancels before paying without refund", func(t *testing.T) {
		tr, err := order.Decide(order.PendingPayment, order.Unpaid, order.ActionUserCancel, order.RoleCustomer)

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, tr.Next)
		assert.Equal(t, order.Unpaid, tr.NextPayment)
		assert.True(t, tr.HasEffect(order.EffectSetCancelTime))
		assert.False(t, tr.HasEffect(order.EffectRefund))
	})

	t.Run("customer cancels a paid unconfirmed order with refund", func(t *testing.T) {
		tr, err := order.Decide(order.ToBeConfirmed, order.Paid, order.ActionUserCancel, order.RoleCustomer)

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, tr.Next)
		assert.Equal(t, order.Refunded, tr.NextPayment)
		assert.True(t, tr.HasEffect(order.EffectRefund))
	})

	t.Run("cancelling after the merchant took the order is rejected", func(t *testing.T) {
		for _, status := range []order.Status{
			order.Confirmed,
			order.DeliveryInProgress,
			order.Completed,
			order.Cancelled,
		} {
			t.Run(fmt.Sprintf("from %s", status), func(t *testing.T) {
				_, err := order.Decide(status, order.Paid, order.ActionUserCancel, order.RoleCustomer)

				require.Error(t, err)
				assert.ErrorIs(t, err, order.ErrInvalidTransition)

				var transitionErr *order.InvalidTransitionError
				require.True(t, errors.As(err, &transitionErr))
				assert.Equal(t, status, transitionErr.From)
			})
		}
	})
}

func TestDecide_AdminCancel(t *testing.T) {
	t.Run("cancellable from every status except ToBeConfirmed and Cancelled", func(t *testing.T) {
		for _, status := range []order.Status{
			order.PendingPayment,
			order.Confirmed,
			order.DeliveryInProgress,
			order.Completed,
		} {
			tr, err := order.Decide(status, order.Unpaid, order.ActionAdminCancel, order.RoleMerchant)

			require.NoError(t, err, "status %s", status)
			assert.Equal(t, order.Cancelled, tr.Next)
			assert.True(t, tr.HasEffect(order.EffectSetCancelTime))
		}
	})

	t.Run("refunds when the order was paid", func(t *testing.T) {
		tr, err := order.Decide(order.Confirmed, order.Paid, order.ActionAdminCancel, order.RoleMerchant)

		require.NoError(t, err)
		assert.Equal(t, order.Refunded, tr.NextPayment)
		assert.True(t, tr.HasEffect(order.EffectRefund))
	})

	t.Run("excluded statuses are rejected", func(t *testing.T) {
		for _, status := range []order.Status{order.ToBeConfirmed, order.Cancelled} {
			_, err := order.Decide(status, order.Paid, order.ActionAdminCancel, order.RoleMerchant)

			require.Error(t, err, "status %s", status)
			assert.ErrorIs(t, err, order.ErrInvalidTransition)
		}
	})
}

func TestDecide_DispatchAndComplete(t *testing.T) {
	t.Run("dispatch moves a confirmed order into delivery", func(t *testing.T) {
		tr, err := order.Decide(order.Confirmed, order.Paid, order.ActionDispatch, order.RoleMerchant)

		require.NoError(t, err)
		assert.Equal(t, order.DeliveryInProgress, tr.Next)
		assert.Empty(t, tr.Effects)
	})

	t.Run("complete finishes a delivery and records the time", func(t *testing.T) {
		tr, err := order.Decide(order.DeliveryInProgress, order.Paid, order.ActionComplete, order.RoleMerchant)

		require.NoError(t, err)
		assert.Equal(t, order.Completed, tr.Next)
		assert.True(t, tr.HasEffect(order.EffectSetDeliveryTime))
	})

	t.Run("completing outside delivery is rejected", func(t *testing.T) {
		_, err := order.Decide(order.Confirmed, order.Paid, order.ActionComplete, order.RoleMerchant)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrInvalidTransition)
	})
}

func TestDecide_Remind(t *testing.T) {
	t.Run("reminder keeps status and payment untouched", func(t *testing.T) {
		tr, err := order.Decide(order.ToBeConfirmed, order.Paid, order.ActionRemind, order.RoleCustomer)

		require.NoError(t, err)
		assert.Equal(t, order.ToBeConfirmed, tr.Next)
		assert.Equal(t, order.Paid, tr.NextPayment)
		assert.True(t, tr.HasEffect(order.EffectNotifyReminder))
	})

	t.Run("reminders are customer-only", func(t *testing.T) {
		_, err := order.Decide(order.ToBeConfirmed, order.Paid, order.ActionRemind, order.RoleMerchant)

		require.Error(t, err)
	})
}

func TestDecide_Timeouts(t *testing.T) {
	t.Run("payment timeout cancels an unpaid order", func(t *testing.T) {
		tr, err := order.Decide(order.PendingPayment, order.Unpaid, order.ActionPaymentTimeout, order.RoleSystem)

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, tr.Next)
		assert.Equal(t, order.Unpaid, tr.NextPayment)
		assert.True(t, tr.HasEffect(order.EffectSetCancelTime))
		assert.False(t, tr.HasEffect(order.EffectRefund))
	})

	t.Run("delivery timeout completes without a delivery time", func(t *testing.T) {
		tr, err := order.Decide(order.DeliveryInProgress, order.Paid, order.ActionDeliveryTimeout, order.RoleSystem)

		require.NoError(t, err)
		assert.Equal(t, order.Completed, tr.Next)
		assert.Equal(t, order.Paid, tr.NextPayment)
		assert.False(t, tr.HasEffect(order.EffectSetDeliveryTime))
	})

	t.Run("timeouts are system-only", func(t *testing.T) {
		for _, role := range []order.Role{order.RoleCustomer, order.RoleMerchant} {
			_, err := order.Decide(order.PendingPayment, order.Unpaid, order.ActionPaymentTimeout, role)
			require.Error(t, err)

			_, err = order.Decide(order.DeliveryInProgress, order.Paid, order.ActionDeliveryTimeout, role)
			require.Error(t, err)
		}
	})

	t.Run("payment timeout on an already paid order is rejected", func(t *testing.T) {
		_, err := order.Decide(order.ToBeConfirmed, order.Paid, order.ActionPaymentTimeout, order.RoleSystem)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrInvalidTransition)
	})
}

func TestDecide_InvalidInputs(t *testing.T) {
	t.Run("unknown status is rejected before any rule runs", func(t *testing.T) {
		_, err := order.Decide(order.Unknown, order.Unpaid, order.ActionPay, order.RoleCustomer)
		require.Error(t, err)
	})

	t.Run("invalid payment status is rejected", func(t *testing.T) {
		_, err := order.Decide(order.PendingPayment, order.PaymentStatus(7), order.ActionPay, order.RoleCustomer)
		require.Error(t, err)
	})

	t.Run("unknown action is rejected", func(t *testing.T) {
		_, err := order.Decide(order.PendingPayment, order.Unpaid, order.Action(99), order.RoleCustomer)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrInvalidTransition)
	})
}

func TestDecide_TerminalStatesHaveNoOutgoingTransitions(t *testing.T) {
	// Remind is excluded (it never changes state) and so is admin cancel
	// from Completed, which is an established merchant-side rule.
	actions := []struct {
		action order.Action
		role   order.Role
	}{
		{order.ActionPay, order.RoleCustomer},
		{order.ActionAccept, order.RoleMerchant},
		{order.ActionReject, order.RoleMerchant},
		{order.ActionUserCancel, order.RoleCustomer},
		{order.ActionDispatch, order.RoleMerchant},
		{order.ActionComplete, order.RoleMerchant},
		{order.ActionPaymentTimeout, order.RoleSystem},
		{order.ActionDeliveryTimeout, order.RoleSystem},
	}

	for _, tc := range actions {
		_, err := order.Decide(order.Cancelled, order.Refunded, tc.action, tc.role)
		require.Error(t, err, "action %s from Cancelled", tc.action)

		_, err = order.Decide(order.Completed, order.Paid, tc.action, tc.role)
		require.Error(t, err, "action %s from Completed", tc.action)
	}
}
