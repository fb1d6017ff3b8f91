package repositories

import (
	"walletwise/internal/models"

	"github.com/google/uuid"
)

// AccountRepositoryInterface defines the persistent-store contract the
// lifecycle service requires for accounts.
type AccountRepositoryInterface interface {
	Create(account *models.Account) error
	GetByID(id uuid.UUID) (*models.Account, error)
	ListByScope(scope models.Scope, filters models.AccountFilters) ([]*models.Account, error)
	Update(account *models.Account) error
	// Delete removes the record permanently. Soft deletion is a status
	// transition, not a row delete.
	Delete(id uuid.UUID) error
}

// TransactionRepositoryInterface defines the read contract used for
// transfer-linkage detection, plus creation for seeding.
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	CreateBatch(transactions []models.Transaction) error
	// GetTransferLegs returns the account's transactions that carry a
	// transfer group.
	GetTransferLegs(accountID uuid.UUID) ([]*models.Transaction, error)
	// GetLinkedLegs returns transactions in the given transfer groups that
	// belong to a different account, with the owning account preloaded.
	GetLinkedLegs(groupIDs []uuid.UUID, excludeAccountID uuid.UUID) ([]*models.Transaction, error)
}

// UserRepositoryInterface defines the user store operations demo seeding
// needs to fabricate account owners.
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
}

// FamilyRepositoryInterface defines family lookups for shared ownership.
type FamilyRepositoryInterface interface {
	Create(family *models.Family) error
	GetByID(id uuid.UUID) (*models.Family, error)
}

// AuditLogRepositoryInterface defines the audit-trail store contract.
type AuditLogRepositoryInterface interface {
	Create(log *models.AuditLog) error
	GetByResourceID(resourceID string, offset, limit int) ([]*models.AuditLog, int64, error)
}
