// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, including the conditional update that arbitrates claim races.
package orderrepo

import (
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status is stored as its wire name so board queries and guarded updates can
// filter on readable values. Vendor and delivery columns stay NULL until the
// corresponding claim commits.
type OrderDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID  `gorm:"type:uuid;index"`
	VendorID   *uuid.UUID `gorm:"type:uuid;index"`
	DeliveryID *uuid.UUID `gorm:"type:uuid;index"`
	Status     string     `gorm:"type:text;index"`
	CreatedAt  time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var vendorID *uuid.UUID
	if id := aggregate.Vendor(); id != nil {
		raw := id.Bytes()
		vendorID = &raw
	}

	var deliveryID *uuid.UUID
	if id := aggregate.DeliveryWorker(); id != nil {
		raw := id.Bytes()
		deliveryID = &raw
	}

	return OrderDTO{
		ID:         aggregate.ID().Bytes(),
		CustomerID: aggregate.Customer().Bytes(),
		VendorID:   vendorID,
		DeliveryID: deliveryID,
		Status:     aggregate.Status().String(),
		CreatedAt:  aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including claim identities using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var vendorID *kernel.UUID
	if dto.VendorID != nil {
		vID, vendorErr := kernel.UUIDFromBytes((*dto.VendorID)[:])
		if vendorErr != nil {
			return nil, vendorErr
		}

		vendorID = &vID
	}

	var deliveryID *kernel.UUID
	if dto.DeliveryID != nil {
		dID, deliveryErr := kernel.UUIDFromBytes((*dto.DeliveryID)[:])
		if deliveryErr != nil {
			return nil, deliveryErr
		}

		deliveryID = &dID
	}

	return order.RestoreOrder(id, customerID, status, vendorID, deliveryID, dto.CreatedAt)
}
