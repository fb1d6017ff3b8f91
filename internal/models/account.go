package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	AccountTypeChecking   = "checking"
	AccountTypeSavings    = "savings"
	AccountTypeCreditCard = "credit_card"
	AccountTypeLoan       = "loan"
	AccountTypeMortgage   = "mortgage"
	AccountTypeInvestment = "investment"
	AccountTypeOther      = "other"

	AccountStatusActive   = "active"
	AccountStatusInactive = "inactive"
	AccountStatusClosed   = "closed"
	AccountStatusHidden   = "hidden"

	AccountSourceManual   = "manual"
	AccountSourcePlaid    = "plaid"
	AccountSourceSaltEdge = "saltedge"

	DefaultCurrency = "USD"

	// Provider-linked accounts are considered stale after this interval.
	SyncStaleAfter = 24 * time.Hour
)

var (
	ErrInvalidAccountType   = errors.New("invalid account type")
	ErrInvalidAccountStatus = errors.New("invalid account status")
	ErrInvalidAccountSource = errors.New("invalid account source")
	ErrInvalidCurrency      = errors.New("currency must be a 3-letter ISO code")
	ErrOwnerRequired        = errors.New("exactly one of user or family owner must be set")
	ErrAccountAlreadyHidden = errors.New("account is already hidden")
	ErrAccountNotHidden     = errors.New("only hidden accounts can be restored")
)

// Account represents a financial account owned by either an individual user
// or a shared family, never both. Raw balances keep the provider-reported
// sign; normalization happens at read time.
type Account struct {
	ID                 uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	UserID             *uuid.UUID       `gorm:"type:uuid;index" json:"user_id,omitempty"`
	FamilyID           *uuid.UUID       `gorm:"type:uuid;index" json:"family_id,omitempty"`
	Name               string           `gorm:"type:varchar(255);not null" json:"name"`
	AccountType        string           `gorm:"type:varchar(20);not null" json:"account_type"`
	Status             string           `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	Source             string           `gorm:"type:varchar(20);not null;default:'manual'" json:"source"`
	CurrentBalance     decimal.Decimal  `gorm:"type:decimal(15,2);not null;default:0" json:"current_balance"`
	AvailableBalance   *decimal.Decimal `gorm:"type:decimal(15,2)" json:"available_balance,omitempty"`
	CreditLimit        *decimal.Decimal `gorm:"type:decimal(15,2)" json:"credit_limit,omitempty"`
	Currency           string           `gorm:"type:varchar(3);not null;default:'USD'" json:"currency"`
	InstitutionName    string           `gorm:"type:varchar(255)" json:"institution_name,omitempty"`
	AccountNumberLast4 string           `gorm:"type:varchar(4)" json:"-"`
	IsActive           bool             `gorm:"not null;default:true" json:"is_active"`
	SyncEnabled        bool             `gorm:"not null;default:true" json:"sync_enabled"`
	LastSyncAt         *time.Time       `json:"last_sync_at,omitempty"`
	SyncError          *string          `gorm:"type:text" json:"sync_error,omitempty"`
	Settings           JSONBMap         `gorm:"type:jsonb" json:"settings,omitempty"`
	CreatedAt          time.Time        `gorm:"not null" json:"created_at"`
	UpdatedAt          time.Time        `gorm:"not null" json:"updated_at"`

	// Associations
	Transactions []Transaction `gorm:"foreignKey:AccountID" json:"-"`
}

// BeforeCreate hook for Account
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	if a.Status == "" {
		a.Status = AccountStatusActive
	}

	if a.Source == "" {
		a.Source = AccountSourceManual
	}

	if a.Currency == "" {
		a.Currency = DefaultCurrency
	}

	// Set timestamps if not already set (for tests)
	now := time.Now()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = now
	}

	return a.Validate()
}

// BeforeUpdate hook for Account
func (a *Account) BeforeUpdate(tx *gorm.DB) error {
	// Map-based updates touch specific columns only; skip struct validation
	if tx != nil && tx.Statement != nil && tx.Statement.Dest != nil {
		if _, ok := tx.Statement.Dest.(map[string]interface{}); ok {
			return nil
		}
	}

	a.UpdatedAt = time.Now()
	return a.Validate()
}

// Validate validates the account fields, including the ownership XOR invariant.
func (a *Account) Validate() error {
	if (a.UserID == nil) == (a.FamilyID == nil) {
		return ErrOwnerRequired
	}

	if a.Name == "" {
		return errors.New("account name is required")
	}

	if !IsValidAccountType(a.AccountType) {
		return ErrInvalidAccountType
	}

	if !IsValidAccountStatus(a.Status) {
		return ErrInvalidAccountStatus
	}

	if !IsValidAccountSource(a.Source) {
		return ErrInvalidAccountSource
	}

	if len(a.Currency) != 3 {
		return ErrInvalidCurrency
	}

	if a.AccountNumberLast4 != "" && len(a.AccountNumberLast4) != 4 {
		return errors.New("account number mask must be the last 4 digits")
	}

	return nil
}

// Owner returns the account's owner as a sum type.
func (a *Account) Owner() Owner {
	if a.UserID != nil {
		return Owner{Kind: OwnerUser, ID: *a.UserID}
	}
	if a.FamilyID != nil {
		return Owner{Kind: OwnerFamily, ID: *a.FamilyID}
	}
	return Owner{}
}

// SetOwner assigns ownership from an Owner value, clearing the other column.
func (a *Account) SetOwner(owner Owner) {
	id := owner.ID
	switch owner.Kind {
	case OwnerUser:
		a.UserID = &id
		a.FamilyID = nil
	case OwnerFamily:
		a.FamilyID = &id
		a.UserID = nil
	}
}

// IsHidden returns true if the account has been soft deleted
func (a *Account) IsHidden() bool {
	return a.Status == AccountStatusHidden
}

// Hide soft deletes the account by moving it to the hidden status
func (a *Account) Hide() error {
	if a.IsHidden() {
		return ErrAccountAlreadyHidden
	}

	a.Status = AccountStatusHidden
	return nil
}

// Restore brings a hidden account back to the active status
func (a *Account) Restore() error {
	if !a.IsHidden() {
		return ErrAccountNotHidden
	}

	a.Status = AccountStatusActive
	return nil
}

// IsManualSource returns true for accounts without a provider connection
func (a *Account) IsManualSource() bool {
	return a.Source == AccountSourceManual
}

// IsPlaidSource returns true for Plaid-linked accounts
func (a *Account) IsPlaidSource() bool {
	return a.Source == AccountSourcePlaid
}

// IsSyncable returns true when the account can be refreshed from a provider
func (a *Account) IsSyncable() bool {
	return !a.IsManualSource() && a.SyncEnabled
}

// NeedsSync reports whether a syncable account has gone stale using the
// default staleness window.
func (a *Account) NeedsSync() bool {
	return a.NeedsSyncAfter(SyncStaleAfter)
}

// NeedsSyncAfter reports whether a syncable account has gone unsynced for
// longer than the given window.
func (a *Account) NeedsSyncAfter(staleAfter time.Duration) bool {
	if !a.IsSyncable() {
		return false
	}
	if a.LastSyncAt == nil {
		return true
	}
	return time.Since(*a.LastSyncAt) > staleAfter
}

// DisplayName derives the user-facing name, prefixed with the institution
// when one is known.
func (a *Account) DisplayName() string {
	if a.InstitutionName != "" {
		return fmt.Sprintf("%s - %s", a.InstitutionName, a.Name)
	}
	return a.Name
}

// MaskedAccountNumber returns the masked last-4 representation, or empty
// when no account number was captured.
func (a *Account) MaskedAccountNumber() string {
	if a.AccountNumberLast4 == "" {
		return ""
	}
	return "****" + a.AccountNumberLast4
}

// TableName returns the table name for Account
func (a *Account) TableName() string {
	return "accounts"
}

// Helper functions

// IsValidAccountType checks if the account type is valid
func IsValidAccountType(accountType string) bool {
	switch accountType {
	case AccountTypeChecking, AccountTypeSavings, AccountTypeCreditCard,
		AccountTypeLoan, AccountTypeMortgage, AccountTypeInvestment, AccountTypeOther:
		return true
	default:
		return false
	}
}

// IsValidAccountStatus checks if the account status is valid
func IsValidAccountStatus(status string) bool {
	switch status {
	case AccountStatusActive, AccountStatusInactive, AccountStatusClosed, AccountStatusHidden:
		return true
	default:
		return false
	}
}

// IsValidAccountSource checks if the account source is valid
func IsValidAccountSource(source string) bool {
	switch source {
	case AccountSourceManual, AccountSourcePlaid, AccountSourceSaltEdge:
		return true
	default:
		return false
	}
}

// AccountTypes returns every supported account type.
func AccountTypes() []string {
	return []string{
		AccountTypeChecking,
		AccountTypeSavings,
		AccountTypeCreditCard,
		AccountTypeLoan,
		AccountTypeMortgage,
		AccountTypeInvestment,
		AccountTypeOther,
	}
}
