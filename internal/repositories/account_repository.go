package repositories

import (
	"errors"
	"fmt"

	"walletwise/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrAccountNotFound = errors.New("account not found")
)

// accountRepository implements AccountRepositoryInterface on GORM
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) AccountRepositoryInterface {
	return &accountRepository{
		db: db,
	}
}

// Create creates a new account
func (r *accountRepository) Create(account *models.Account) error {
	if err := r.db.Create(account).Error; err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// GetByID retrieves an account by ID
func (r *accountRepository) GetByID(id uuid.UUID) (*models.Account, error) {
	var account models.Account
	if err := r.db.Where("id = ?", id).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}

// ListByScope retrieves accounts visible to the resolved scope, applying
// the hidden-status and activity filters.
func (r *accountRepository) ListByScope(scope models.Scope, filters models.AccountFilters) ([]*models.Account, error) {
	query := r.db.Model(&models.Account{})

	switch {
	case scope.UserID != nil:
		query = query.Where("user_id = ?", *scope.UserID)
	case scope.FamilyID != nil:
		query = query.Where("family_id = ?", *scope.FamilyID)
	case !scope.Global:
		return nil, models.ErrScopeViolation
	}

	if !filters.IncludeHidden {
		query = query.Where("status != ?", models.AccountStatusHidden)
	}
	if filters.OnlyActive {
		query = query.Where("is_active = ?", true)
	}
	if filters.AccountType != "" {
		query = query.Where("account_type = ?", filters.AccountType)
	}
	if filters.Source != "" {
		query = query.Where("source = ?", filters.Source)
	}

	var accounts []*models.Account
	if err := query.Order("created_at DESC").Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// Update updates an account
func (r *accountRepository) Update(account *models.Account) error {
	if err := r.db.Save(account).Error; err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}
	return nil
}

// Delete permanently removes an account
func (r *accountRepository) Delete(id uuid.UUID) error {
	result := r.db.Where("id = ?", id).Delete(&models.Account{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete account: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}
