package profilerepo

import (
	"context"
	"errors"

	"orderflow/internal/core/domain/model/account"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProfileRepository implements ports.ProfileStore using GORM.
type GormProfileRepository struct {
	db *gorm.DB
}

// NewGormProfileRepository creates a new GORM profile repository.
func NewGormProfileRepository(db *gorm.DB) *GormProfileRepository {
	return &GormProfileRepository{db: db}
}

// GetRole retrieves the role recorded for the given identity.
// Returns an error wrapping errs.ErrObjectNotFound when no profile exists;
// an unrecognized role value in the table is reported as invalid, not mapped
// to a default.
func (r *GormProfileRepository) GetRole(ctx context.Context, identity kernel.UUID) (account.Role, error) {
	if err := identity.Validate(); err != nil {
		return account.RoleUnknown, err
	}

	var dto ProfileDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", identity.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return account.RoleUnknown, errs.NewObjectNotFoundError("profile", identity.String())
		}
		return account.RoleUnknown, err
	}

	return account.RoleFromString(dto.Role)
}

// Add saves a profile for the given identity and role.
func (r *GormProfileRepository) Add(ctx context.Context, identity kernel.UUID, role account.Role) error {
	if err := identity.Validate(); err != nil {
		return err
	}
	if err := role.Validate(); err != nil {
		return err
	}

	dto := ProfileDTO{
		ID:   identity.Bytes(),
		Role: role.String(),
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}
