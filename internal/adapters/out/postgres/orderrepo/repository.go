package orderrepo

import (
	"context"
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"

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

// Add saves a freshly placed order to the database.
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

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
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

// UpdateIf saves a transitioned order, guarded by the status the record held
// before the transition. The status predicate rides on the UPDATE itself, so
// the database evaluates it atomically; claim transitions additionally
// require the claim column to still be NULL. Zero affected rows means the
// guard failed, and a follow-up read classifies why: the order is gone
// (ErrObjectNotFound) or a competing actor committed first (ErrAlreadyClaimed).
func (r *GormOrderRepository) UpdateIf(
	ctx context.Context,
	aggregate *order.Order,
	expected order.Status,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	tx := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND status = ?", dto.ID, expected.String())

	switch expected {
	case order.Placed:
		tx = tx.Where("vendor_id IS NULL")
	case order.Accepted:
		tx = tx.Where("delivery_id IS NULL")
	}

	result := tx.Updates(map[string]any{
		"status":      dto.Status,
		"vendor_id":   dto.VendorID,
		"delivery_id": dto.DeliveryID,
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var current OrderDTO
		if err := r.db.WithContext(ctx).First(&current, "id = ?", dto.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NewObjectNotFoundError("order", aggregate.ID().String())
			}
			return err
		}

		return errs.NewAlreadyClaimedError(aggregate.ID().String(), expected.String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetAllByCustomer retrieves all orders placed by the customer, newest first.
func (r *GormOrderRepository) GetAllByCustomer(
	ctx context.Context,
	customerID kernel.UUID,
) ([]*order.Order, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&dtos, "customer_id = ?", customerID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllInStatuses retrieves all orders in any of the given statuses, oldest first.
func (r *GormOrderRepository) GetAllInStatuses(
	ctx context.Context,
	statuses ...order.Status,
) ([]*order.Order, error) {
	names := make([]string, 0, len(statuses))
	for _, s := range statuses {
		if err := s.Validate(); err != nil {
			return nil, err
		}
		names = append(names, s.String())
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Order("created_at").
		Find(&dtos, "status IN ?", names).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []OrderDTO) ([]*order.Order, error) {
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
