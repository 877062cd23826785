// Package profilerepo persists account profiles. A profile binds an
// authenticated identity to exactly one workflow role; the session resolver
// reads it on every request.
package profilerepo

import (
	"github.com/google/uuid"
)

// ProfileDTO represents the database structure for account profiles.
// Role holds the wire name of the account's single role.
type ProfileDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Role string    `gorm:"type:text"`
}

// TableName specifies the database table name for profile entities.
func (ProfileDTO) TableName() string {
	return "profiles"
}
