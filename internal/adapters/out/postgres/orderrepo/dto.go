// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"github.com/likecate/sky-take-out/internal/core/domain/model/kernel"
	"github.com/likecate/sky-take-out/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status and pay status are stored as plain integers; the status index serves
// the reaper scans and the dashboard counters.
type OrderDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number     string    `gorm:"uniqueIndex"`
	CustomerID uuid.UUID `gorm:"type:uuid;index"`

	Status    int `gorm:"index"`
	PayStatus int

	AmountCents int64

	Consignee string
	Phone     string
	Address   string

	CancelReason string

	OrderTime    time.Time `gorm:"index"`
	CheckoutTime *time.Time
	CancelTime   *time.Time
	DeliveryTime *time.Time
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// DetailDTO represents one persisted order line item. Rows are written once
// per order, in the submission transaction, and never updated.
type DetailDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID uuid.UUID `gorm:"type:uuid;index"`
	ItemID  uuid.UUID `gorm:"type:uuid"`

	Name           string
	Image          string
	Quantity       int
	UnitPriceCents int64
}

// TableName overrides GORM's default naming to use "order_details".
func (DetailDTO) TableName() string {
	return "order_details"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		Number:       aggregate.Number(),
		CustomerID:   aggregate.CustomerID().Bytes(),
		Status:       int(aggregate.Status()),
		PayStatus:    int(aggregate.Payment()),
		AmountCents:  aggregate.Amount().Cents(),
		Consignee:    aggregate.Recipient().Consignee(),
		Phone:        aggregate.Recipient().Phone(),
		Address:      aggregate.Recipient().Address(),
		CancelReason: aggregate.CancelReason(),
		OrderTime:    aggregate.OrderTime(),
		CheckoutTime: aggregate.CheckoutTime(),
		CancelTime:   aggregate.CancelTime(),
		DeliveryTime: aggregate.DeliveryTime(),
	}
}

// toDomain converts a database row back into an order aggregate via
// RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	amount, err := kernel.NewMoneyFromCents(dto.AmountCents)
	if err != nil {
		return nil, err
	}

	recipient, err := order.NewRecipient(dto.Consignee, dto.Phone, dto.Address)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.Number,
		customerID,
		order.Status(dto.Status),
		order.PaymentStatus(dto.PayStatus),
		amount,
		recipient,
		dto.CancelReason,
		dto.OrderTime,
		dto.CheckoutTime,
		dto.CancelTime,
		dto.DeliveryTime,
	)
}

// detailFromDomain converts a line item to its database representation.
func detailFromDomain(orderID kernel.UUID, detail order.Detail) DetailDTO {
	return DetailDTO{
		ID:             detail.ID().Bytes(),
		OrderID:        orderID.Bytes(),
		ItemID:         detail.ItemID().Bytes(),
		Name:           detail.Name(),
		Image:          detail.Image(),
		Quantity:       detail.Quantity(),
		UnitPriceCents: detail.UnitPrice().Cents(),
	}
}

// detailToDomain converts a database row back into a line item.
func detailToDomain(dto DetailDTO) (order.Detail, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.Detail{}, err
	}

	itemID, err := kernel.UUIDFromBytes(dto.ItemID[:])
	if err != nil {
		return order.Detail{}, err
	}

	unitPrice, err := kernel.NewMoneyFromCents(dto.UnitPriceCents)
	if err != nil {
		return order.Detail{}, err
	}

	return order.NewDetail(id, itemID, dto.Name, dto.Image, dto.Quantity, unitPrice)
}
