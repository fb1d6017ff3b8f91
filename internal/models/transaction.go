package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransferRoleSource      = "source"
	TransferRoleDestination = "destination"
)

var (
	ErrInvalidTransferRole = errors.New("invalid transfer role")
)

// Transaction is a single ledger entry against an account. The lifecycle
// core only reads transactions to detect transfer linkage: the two legs of
// an inter-account transfer share a TransferGroupID.
type Transaction struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	AccountID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"account_id"`
	Amount          decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Date            time.Time       `gorm:"not null;index" json:"date"`
	Description     string          `gorm:"type:text" json:"description"`
	Category        string          `gorm:"type:varchar(50)" json:"category,omitempty"`
	TransferGroupID *uuid.UUID      `gorm:"type:uuid;index" json:"transfer_group_id,omitempty"`
	TransferRole    string          `gorm:"type:varchar(20)" json:"transfer_role,omitempty"`
	CreatedAt       time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"not null" json:"updated_at"`

	// Associations
	Account Account `gorm:"foreignKey:AccountID" json:"-"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	now := time.Now()
	if t.Date.IsZero() {
		t.Date = now
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	return t.Validate()
}

// BeforeUpdate hook for Transaction
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.AccountID == uuid.Nil {
		return errors.New("account ID is required")
	}

	if t.TransferGroupID != nil && !IsValidTransferRole(t.TransferRole) {
		return ErrInvalidTransferRole
	}

	if t.TransferGroupID == nil && t.TransferRole != "" {
		return errors.New("transfer role requires a transfer group")
	}

	return nil
}

// IsTransferLeg returns true when the transaction is one side of an
// inter-account transfer.
func (t *Transaction) IsTransferLeg() bool {
	return t.TransferGroupID != nil
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// IsValidTransferRole checks if the transfer role is valid
func IsValidTransferRole(role string) bool {
	switch role {
	case TransferRoleSource, TransferRoleDestination:
		return true
	default:
		return false
	}
}
