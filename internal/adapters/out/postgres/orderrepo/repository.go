package orderrepo

import (
	"context"
	"errors"
	"time"

	"github.com/likecate/sky-take-out/internal/core/domain/model/kernel"
	"github.com/likecate/sky-take-out/internal/core/domain/model/order"
	"github.com/likecate/sky-take-out/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// AddDetails saves the order's line items in one batch insert.
func (r *GormOrderRepository) AddDetails(ctx context.Context, orderID kernel.UUID, details []order.Detail) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if len(details) == 0 {
		return errs.NewValueIsRequiredError("details")
	}

	dtos := make([]DetailDTO, 0, len(details))
	for _, d := range details {
		if err := d.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, detailFromDomain(orderID, d))
	}

	return r.db.WithContext(ctx).Create(&dtos).Error
}

// Update saves an existing order unconditionally.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Updates(updateColumns(dto))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateIfStatus saves an order only if its stored status still equals
// expected. The WHERE clause on status makes the write a check-and-set: when
// a concurrent transition already moved the order, zero rows match and
// order.ErrStatusConflict is returned.
func (r *GormOrderRepository) UpdateIfStatus(
	ctx context.Context,
	aggregate *order.Order,
	expected order.Status,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status = ?", dto.ID, int(expected)).
		Updates(updateColumns(dto))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return order.ErrStatusConflict
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByID retrieves an order by its internal identifier.
func (r *GormOrderRepository) GetByID(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByNumber retrieves an order by its external order number.
func (r *GormOrderRepository) GetByNumber(ctx context.Context, number string) (*order.Order, error) {
	if number == "" {
		return nil, errs.NewValueIsRequiredError("number")
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "number = ?", number).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", number)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetDetails retrieves the order's line items.
func (r *GormOrderRepository) GetDetails(ctx context.Context, orderID kernel.UUID) ([]order.Detail, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []DetailDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "order_id = ?", orderID.Bytes()).Error; err != nil {
		return nil, err
	}

	details := make([]order.Detail, 0, len(dtos))
	for _, dto := range dtos {
		d, err := detailToDomain(dto)
		if err != nil {
			return nil, err
		}
		details = append(details, d)
	}

	return details, nil
}

// FindByStatusOlderThan retrieves orders in the given status placed before
// the cutoff, oldest first. This is the reaper's scan query.
func (r *GormOrderRepository) FindByStatusOlderThan(
	ctx context.Context,
	status order.Status,
	cutoff time.Time,
) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("status = ? AND order_time < ?", int(status), cutoff).
		Order("order_time").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// CountByStatus counts orders currently in the given status.
func (r *GormOrderRepository) CountByStatus(ctx context.Context, status order.Status) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("status = ?", int(status)).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

// updateColumns builds an explicit column map for updates. GORM's struct
// updates skip zero values, which would silently drop a cleared field or a
// zero pay status.
func updateColumns(dto OrderDTO) map[string]any {
	return map[string]any{
		"status":        dto.Status,
		"pay_status":    dto.PayStatus,
		"cancel_reason": dto.CancelReason,
		"checkout_time": dto.CheckoutTime,
		"cancel_time":   dto.CancelTime,
		"delivery_time": dto.DeliveryTime,
	}
}
