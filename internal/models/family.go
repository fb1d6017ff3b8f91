package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Family is a shared ownership group. Accounts may belong to a family
// instead of an individual user.
type Family struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`

	Members  []User    `gorm:"foreignKey:FamilyID" json:"-"`
	Accounts []Account `gorm:"foreignKey:FamilyID" json:"-"`
}

func (f *Family) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}

	now := time.Now()
	if f.CreatedAt.IsZero() {
		f.CreatedAt = now
	}
	if f.UpdatedAt.IsZero() {
		f.UpdatedAt = now
	}

	if f.Name == "" {
		return errors.New("family name is required")
	}

	return nil
}

func (f *Family) TableName() string {
	return "families"
}
