package services

import (
	"time"

	"walletwise/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountServiceInterface defines the account lifecycle operations. Every
// method takes the acting caller so authorization happens in one place.
type AccountServiceInterface interface {
	Create(actor models.Actor, params models.CreateAccountParams) (*models.Account, error)
	List(actor models.Actor, filters models.AccountFilters) ([]*models.Account, error)
	Get(actor models.Actor, accountID uuid.UUID) (*models.Account, error)
	GetBalance(actor models.Actor, accountID uuid.UUID) (*models.AccountBalance, error)
	Update(actor models.Actor, accountID uuid.UUID, params models.UpdateAccountParams) (*models.Account, error)
	Remove(actor models.Actor, accountID uuid.UUID) error
	Hide(actor models.Actor, accountID uuid.UUID) (*models.Account, error)
	Restore(actor models.Actor, accountID uuid.UUID) (*models.Account, error)
	Sync(actor models.Actor, accountID uuid.UUID) (*models.Account, error)
	CheckDeletionEligibility(actor models.Actor, accountID uuid.UUID) (*models.DeletionEligibility, error)
	CheckRestoreEligibility(actor models.Actor, accountID uuid.UUID) (*models.RestoreEligibility, error)
	GetSummary(actor models.Actor) (*models.AccountSummary, error)
	GetFinancialSummary(actor models.Actor) (*models.FinancialSummary, error)
}

// BalanceNormalizerInterface converts a raw provider-signed balance into a
// sign-consistent asset/liability view for aggregation.
type BalanceNormalizerInterface interface {
	Normalize(accountType string, balance decimal.Decimal, creditLimit *decimal.Decimal) models.NormalizedBalance
}

// ConnectionServiceInterface reports the health of an account's provider
// connection. Manual accounts always report healthy.
type ConnectionServiceInterface interface {
	Status(account *models.Account) (string, error)
}

// CircuitBreakerInterface guards repeated provider-status failures
type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() CircuitBreakerState
	Reset()
}

// AuditRecorderInterface writes lifecycle events to the audit trail.
// Implementations must never fail the audited operation.
type AuditRecorderInterface interface {
	RecordAccountEvent(actor models.Actor, action string, accountID uuid.UUID, metadata models.JSONBMap)
}

// MetricsRecorderInterface collects operational metrics for account
// lifecycle operations.
type MetricsRecorderInterface interface {
	RecordAccountOperation(operation, status string)
	RecordDeletionBlocked(blockerCount int)
	RecordSync(source, status string)
	ObserveSummaryDuration(kind string, duration time.Duration)
}

// TokenServiceInterface issues and validates the actor tokens consumed by
// the auth middleware.
type TokenServiceInterface interface {
	GenerateToken(actor models.Actor, subject string) (string, error)
	ValidateToken(token string) (*ActorClaims, error)
	ExtractTokenFromHeader(header string) (string, error)
}

// SampleDataServiceInterface seeds demo accounts and transfer pairs for
// non-production environments.
type SampleDataServiceInterface interface {
	SeedDemoData(owner models.Owner) ([]*models.Account, error)
}
