package commands_test

import (
	"testing"
	"time"

	"github.com/likecate/sky-take-out/internal/core/domain/model/customer"
	"github.com/likecate/sky-take-out/internal/core/domain/model/kernel"
	"github.com/likecate/sky-take-out/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func orderInStatus(t *testing.T, status order.Status, payment order.PaymentStatus) *order.Order {
	t.Helper()

	recipient, err := order.NewRecipient("Zhang San", "13800000000", "1 Main Street")
	require.NoError(t, err)

	amount, err := kernel.NewMoneyFromCents(2500)
	require.NoError(t, err)

	o, err := order.RestoreOrder(
		kernel.NewUUID(),
		"1693526400000000",
		kernel.NewUUID(),
		status,
		payment,
		amount,
		recipient,
		"",
		time.Now().Add(-30*time.Minute),
		nil, nil, nil,
	)
	require.NoError(t, err)
	return o
}

func testAddress(customerID kernel.UUID) *customer.Address {
	return &customer.Address{
		ID:         kernel.NewUUID(),
		CustomerID: customerID,
		Consignee:  "Zhang San",
		Phone:      "13800000000",
		City:       "Beijing",
		District:   "Haidian",
		Detail:     "1 Main Street",
	}
}

func testCartLines(customerID kernel.UUID) []customer.CartLine {
	priceA, _ := kernel.NewMoneyFromCents(1200)
	priceB, _ := kernel.NewMoneyFromCents(650)

	return []customer.CartLine{
		{
			ID:         kernel.NewUUID(),
			CustomerID: customerID,
			ItemID:     kernel.NewUUID(),
			Name:       "Kung Pao Chicken",
			Image:      "kungpao.png",
			Quantity:   2,
			UnitPrice:  priceA,
		},
		{
			ID:         kernel.NewUUID(),
			CustomerID: customerID,
			ItemID:     kernel.NewUUID(),
			Name:       "Rice",
			Image:      "rice.png",
			Quantity:   1,
			UnitPrice:  priceB,
		},
	}
}
