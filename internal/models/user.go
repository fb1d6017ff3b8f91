package models

import (
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// User is a registered member. Authentication itself is handled upstream;
// the lifecycle core only needs identity, role, and family membership.
type User struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Email     string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	FirstName string     `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName  string     `gorm:"type:varchar(100);not null" json:"last_name"`
	Role      string     `gorm:"type:varchar(20);not null;default:'member'" json:"role"`
	FamilyID  *uuid.UUID `gorm:"type:uuid;index" json:"family_id,omitempty"`
	CreatedAt time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time  `gorm:"not null" json:"updated_at"`

	Family    *Family    `gorm:"foreignKey:FamilyID" json:"-"`
	AuditLogs []AuditLog `gorm:"foreignKey:ActorID" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}

	if u.Role == "" {
		u.Role = RoleMember
	}

	now := time.Now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	if u.UpdatedAt.IsZero() {
		u.UpdatedAt = now
	}

	return u.Validate()
}

func (u *User) BeforeUpdate(tx *gorm.DB) error {
	u.UpdatedAt = time.Now()
	return u.Validate()
}

func (u *User) Validate() error {
	if !emailRegex.MatchString(u.Email) {
		return errors.New("invalid email address")
	}

	if u.Role != RoleMember && u.Role != RoleAdmin {
		return errors.New("invalid role")
	}

	return nil
}

// IsAdmin returns true for users with global access.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Actor builds the authorization descriptor for operations performed by
// this user under their individual scope.
func (u *User) Actor() Actor {
	id := u.ID
	return Actor{UserID: &id, Role: u.Role}
}

// FamilyActor builds the authorization descriptor for operations performed
// by this user against their shared family scope.
func (u *User) FamilyActor() Actor {
	return Actor{FamilyID: u.FamilyID, Role: u.Role}
}

func (u *User) TableName() string {
	return "users"
}
