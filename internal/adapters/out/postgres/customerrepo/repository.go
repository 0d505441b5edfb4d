package customerrepo

import (
	"context"
	"errors"

	"github.com/likecate/sky-take-out/internal/core/domain/model/customer"
	"github.com/likecate/sky-take-out/internal/core/domain/model/kernel"
	"github.com/likecate/sky-take-out/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAddressBook implements ports.AddressBook using GORM. The address book
// is read-only from the engine's side.
type GormAddressBook struct {
	db *gorm.DB
}

// NewGormAddressBook creates a new GORM address book reader.
func NewGormAddressBook(db *gorm.DB) *GormAddressBook {
	return &GormAddressBook{db: db}
}

// GetAddressByID retrieves one address book entry.
func (r *GormAddressBook) GetAddressByID(ctx context.Context, id kernel.UUID) (*customer.Address, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AddressDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("address", id.String())
		}
		return nil, err
	}

	return addressToDomain(dto)
}

// GormCart implements ports.Cart using GORM.
type GormCart struct {
	db *gorm.DB
}

// NewGormCart creates a new GORM shopping cart adapter.
func NewGormCart(db *gorm.DB) *GormCart {
	return &GormCart{db: db}
}

// ListItems retrieves the customer's current cart lines.
func (r *GormCart) ListItems(ctx context.Context, customerID kernel.UUID) ([]customer.CartLine, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []CartLineDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "customer_id = ?", customerID.Bytes()).Error; err != nil {
		return nil, err
	}

	lines := make([]customer.CartLine, 0, len(dtos))
	for _, dto := range dtos {
		line, err := cartLineToDomain(dto)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return lines, nil
}

// Clear removes all of the customer's cart lines.
func (r *GormCart) Clear(ctx context.Context, customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Where("customer_id = ?", customerID.Bytes()).
		Delete(&CartLineDTO{}).Error
}

// AddItems inserts cart lines in one batch.
func (r *GormCart) AddItems(ctx context.Context, lines []customer.CartLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("lines")
	}

	dtos := make([]CartLineDTO, 0, len(lines))
	for _, line := range lines {
		dtos = append(dtos, cartLineFromDomain(line))
	}

	return r.db.WithContext(ctx).Create(&dtos).Error
}
