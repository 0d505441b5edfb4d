// Package customerrepo persists the customer-facing read models the lifecycle
// engine touches: address book entries and shopping cart lines.
package customerrepo

import (
	"github.com/likecate/sky-take-out/internal/core/domain/model/customer"
	"github.com/likecate/sky-take-out/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AddressDTO represents one address book row.
type AddressDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID `gorm:"type:uuid;index"`

	Consignee string
	Phone     string
	City      string
	District  string
	Detail    string
}

// TableName overrides GORM's default naming to use "address_book".
func (AddressDTO) TableName() string {
	return "address_book"
}

// CartLineDTO represents one shopping cart row.
type CartLineDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID `gorm:"type:uuid;index"`
	ItemID     uuid.UUID `gorm:"type:uuid"`

	Name           string
	Image          string
	Quantity       int
	UnitPriceCents int64
}

// TableName overrides GORM's default naming to use "shopping_cart".
func (CartLineDTO) TableName() string {
	return "shopping_cart"
}

func addressToDomain(dto AddressDTO) (*customer.Address, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	return &customer.Address{
		ID:         id,
		CustomerID: customerID,
		Consignee:  dto.Consignee,
		Phone:      dto.Phone,
		City:       dto.City,
		District:   dto.District,
		Detail:     dto.Detail,
	}, nil
}

func cartLineToDomain(dto CartLineDTO) (customer.CartLine, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return customer.CartLine{}, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return customer.CartLine{}, err
	}

	itemID, err := kernel.UUIDFromBytes(dto.ItemID[:])
	if err != nil {
		return customer.CartLine{}, err
	}

	unitPrice, err := kernel.NewMoneyFromCents(dto.UnitPriceCents)
	if err != nil {
		return customer.CartLine{}, err
	}

	return customer.CartLine{
		ID:         id,
		CustomerID: customerID,
		ItemID:     itemID,
		Name:       dto.Name,
		Image:      dto.Image,
		Quantity:   dto.Quantity,
		UnitPrice:  unitPrice,
	}, nil
}

func cartLineFromDomain(line customer.CartLine) CartLineDTO {
	return CartLineDTO{
		ID:             line.ID.Bytes(),
		CustomerID:     line.CustomerID.Bytes(),
		ItemID:         line.ItemID.Bytes(),
		Name:           line.Name,
		Image:          line.Image,
		Quantity:       line.Quantity,
		UnitPriceCents: line.UnitPrice.Cents(),
	}
}
