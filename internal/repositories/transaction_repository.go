package repositories

import (
	"errors"
	"fmt"

	"walletwise/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
)

// transactionRepository implements TransactionRepositoryInterface on GORM
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction
func (r *transactionRepository) Create(transaction *models.Transaction) error {
	if err := r.db.Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// CreateBatch creates transactions in a single insert
func (r *transactionRepository) CreateBatch(transactions []models.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}
	if err := r.db.Create(&transactions).Error; err != nil {
		return fmt.Errorf("failed to create transactions: %w", err)
	}
	return nil
}

// GetTransferLegs retrieves the account's transactions that are part of a
// transfer group, oldest first.
func (r *transactionRepository) GetTransferLegs(accountID uuid.UUID) ([]*models.Transaction, error) {
	var transactions []*models.Transaction
	if err := r.db.Where("account_id = ? AND transfer_group_id IS NOT NULL", accountID).
		Order("date ASC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transfer legs: %w", err)
	}
	return transactions, nil
}

// GetLinkedLegs retrieves the opposite legs of the given transfer groups,
// excluding the originating account. The owning account is preloaded so
// callers can surface its name.
func (r *transactionRepository) GetLinkedLegs(groupIDs []uuid.UUID, excludeAccountID uuid.UUID) ([]*models.Transaction, error) {
	if len(groupIDs) == 0 {
		return nil, nil
	}

	var transactions []*models.Transaction
	if err := r.db.Preload("Account").
		Where("transfer_group_id IN ? AND account_id != ?", groupIDs, excludeAccountID).
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get linked transfer legs: %w", err)
	}
	return transactions, nil
}
