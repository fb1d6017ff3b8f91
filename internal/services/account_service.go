package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"walletwise/internal/models"
	"walletwise/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrAccountNotFound  = errors.New("account not found")
	ErrAccessDenied     = errors.New("access denied to account")
	ErrSyncNotSupported = errors.New("sync requires a bank-linked account")
	ErrRelinkRequired   = errors.New("bank connection was revoked; the account must be re-linked before restore")
)

// DeletionBlockedError is returned when a permanent delete is refused
// because linked transfers reference the account. It carries the full
// eligibility payload so callers can drive a UI decision.
type DeletionBlockedError struct {
	Eligibility *models.DeletionEligibility
}

func (e *DeletionBlockedError) Error() string {
	count := e.Eligibility.LinkedTransferCount
	unit := "transfer"
	if count != 1 {
		unit = "transfers"
	}
	return fmt.Sprintf("cannot delete account with %d %s linked to other accounts; hide the account or remove the transfers first", count, unit)
}

// accountService implements AccountServiceInterface
type accountService struct {
	accountRepo     repositories.AccountRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	normalizer      BalanceNormalizerInterface
	connections     ConnectionServiceInterface
	audit           AuditRecorderInterface
	metrics         MetricsRecorderInterface
	syncStaleAfter  time.Duration
	logger          *slog.Logger
}

// NewAccountService creates the account lifecycle service. A non-positive
// syncStaleAfter falls back to the default staleness window.
func NewAccountService(
	accountRepo repositories.AccountRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	normalizer BalanceNormalizerInterface,
	connections ConnectionServiceInterface,
	audit AuditRecorderInterface,
	metrics MetricsRecorderInterface,
	syncStaleAfter time.Duration,
	logger *slog.Logger,
) AccountServiceInterface {
	if syncStaleAfter <= 0 {
		syncStaleAfter = models.SyncStaleAfter
	}
	return &accountService{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		normalizer:      normalizer,
		connections:     connections,
		audit:           audit,
		metrics:         metrics,
		syncStaleAfter:  syncStaleAfter,
		logger:          logger,
	}
}

// Create creates an account owned by the actor's resolved scope. Defaults:
// active status, sync enabled, USD currency, isActive true.
func (s *accountService) Create(actor models.Actor, params models.CreateAccountParams) (*models.Account, error) {
	owner, err := actor.OwnerScope()
	if err != nil {
		return nil, err
	}

	account := &models.Account{
		Name:               params.Name,
		AccountType:        params.AccountType,
		Source:             params.Source,
		CurrentBalance:     params.CurrentBalance,
		AvailableBalance:   params.AvailableBalance,
		CreditLimit:        params.CreditLimit,
		Currency:           params.Currency,
		InstitutionName:    params.InstitutionName,
		AccountNumberLast4: params.AccountNumberLast4,
		Status:             models.AccountStatusActive,
		IsActive:           true,
		SyncEnabled:        true,
		Settings:           params.Settings,
	}
	account.SetOwner(owner)

	if params.SyncEnabled != nil {
		account.SyncEnabled = *params.SyncEnabled
	}

	if err := s.accountRepo.Create(account); err != nil {
		s.metrics.RecordAccountOperation("create", "error")
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.audit.RecordAccountEvent(actor, models.AuditActionAccountCreated, account.ID, models.JSONBMap{
		"account_type": account.AccountType,
		"source":       account.Source,
	})
	s.metrics.RecordAccountOperation("create", "ok")

	s.logger.Info("account created",
		"account_id", account.ID,
		"account_type", account.AccountType,
		"source", account.Source)

	return account, nil
}

// List returns the accounts visible to the actor's scope. Hidden accounts
// are excluded unless the filter explicitly includes them.
func (s *accountService) List(actor models.Actor, filters models.AccountFilters) ([]*models.Account, error) {
	scope, err := actor.ResolveScope()
	if err != nil {
		return nil, err
	}

	accounts, err := s.accountRepo.ListByScope(scope, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// Get returns a single account after the ownership check.
func (s *accountService) Get(actor models.Actor, accountID uuid.UUID) (*models.Account, error) {
	return s.getAuthorized(actor, accountID)
}

// GetBalance returns the balance view of a single account. An absent
// available balance stays nil so it serializes as null.
func (s *accountService) GetBalance(actor models.Actor, accountID uuid.UUID) (*models.AccountBalance, error) {
	account, err := s.getAuthorized(actor, accountID)
	if err != nil {
		return nil, err
	}

	return &models.AccountBalance{
		AccountID:        account.ID,
		CurrentBalance:   account.CurrentBalance,
		AvailableBalance: account.AvailableBalance,
		CreditLimit:      account.CreditLimit,
		Currency:         account.Currency,
	}, nil
}

// Update applies a partial update: nil params are untouched, provided ones
// overwrite. Status only changes when the caller sets one explicitly.
func (s *accountService) Update(actor models.Actor, accountID uuid.UUID, params models.UpdateAccountParams) (*models.Account, error) {
	account, err := s.getAuthorized(actor, accountID)
	if err != nil {
		return nil, err
	}

	applyUpdate(account, params)

	if err := s.accountRepo.Update(account); err != nil {
		s.metrics.RecordAccountOperation("update", "error")
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	s.audit.RecordAccountEvent(actor, models.AuditActionAccountUpdated, account.ID, nil)
	s.metrics.RecordAccountOperation("update", "ok")

	return account, nil
}

func applyUpdate(account *models.Account, params models.UpdateAccountParams) {
	if params.Name != nil {
		account.Name = *params.Name
	}
	if params.AccountType != nil {
		account.AccountType = *params.AccountType
	}
	if params.Status != nil {
		account.Status = *params.Status
	}
	if params.CurrentBalance != nil {
		account.CurrentBalance = *params.CurrentBalance
	}
	if params.AvailableBalance != nil {
		account.AvailableBalance = params.AvailableBalance
	}
	if params.CreditLimit != nil {
		account.CreditLimit = params.CreditLimit
	}
	if params.Currency != nil {
		account.Currency = *params.Currency
	}
	if params.InstitutionName != nil {
		account.InstitutionName = *params.InstitutionName
	}
	if params.IsActive != nil {
		account.IsActive = *params.IsActive
	}
	if params.SyncEnabled != nil {
		account.SyncEnabled = *params.SyncEnabled
	}
	if params.Settings != nil {
		// Shallow replace: only the provided keys survive. Callers must
		// resupply keys they want to keep.
		account.Settings = params.Settings
	}
}

// Remove permanently deletes the account unless linked transfers block it.
func (s *accountService) Remove(actor models.Actor, accountID uuid.UUID) error {
	account, err := s.getAuthorized(actor, accountID)
	if err != nil {
		return err
	}

	eligibility, err := s.deletionEligibility(account)
	if err != nil {
		return err
	}

	if !eligibility.CanDelete {
		s.audit.RecordAccountEvent(actor, models.AuditActionDeletionBlocked, account.ID, models.JSONBMap{
			"linked_transfer_count": eligibility.LinkedTransferCount,
		})
		s.metrics.RecordDeletionBlocked(eligibility.LinkedTransferCount)
		return &DeletionBlockedError{Eligibility: eligibility}
	}

	if err := s.accountRepo.Delete(account.ID); err != nil {
		s.metrics.RecordAccountOperation("delete", "error")
		return fmt.Errorf("failed to delete account: %w", err)
	}

	s.audit.RecordAccountEvent(actor, models.AuditActionAccountDeleted, account.ID, models.JSONBMap{
		"account_name": account.Name,
	})
	s.metrics.RecordAccountOperation("delete", "ok")

	s.logger.Info("account permanently deleted", "account_id", account.ID)

	return nil
}

// Hide soft deletes an account. Hiding an already-hidden account fails.
func (s *accountService) Hide(actor models.Actor, accountID uuid.UUID) (*models.Account, error) {
	account, err := s.getAuthorized(actor, accountID)
	if err != nil {
		return nil, err
	}

	if err := account.Hide(); err != nil {
		return nil, err
	}

	if err := s.accountRepo.Update(account); err != nil {
		s.metrics.RecordAccountOperation("hide", "error")
		return nil, fmt.Errorf("failed to hide account: %w", err)
	}

	s.audit.RecordAccountEvent(actor, models.AuditActionAccountHidden, account.ID, nil)
	s.metrics.RecordAccountOperation("hide", "ok")

	return account, nil
}

// Restore brings a hidden account back. Provider-linked accounts require a
// valid connection; a revoked one demands re-linking instead.
func (s *accountService) Restore(actor models.Actor, accountID uuid.UUID) (*models.Account, error) {
	account, err := s.getAuthorized(actor, accountID)
	if err != nil {
		return nil, err
	}

	if !account.IsHidden() {
		return nil, models.ErrAccountNotHidden
	}

	if !account.IsManualSource() {
		status, err := s.connections.Status(account)
		if err != nil {
			return nil, err
		}
		if status == models.ConnectionStatusRevoked {
			return nil, ErrRelinkRequired
		}
	}

	if err := account.Restore(); err != nil {
		return nil, err
	}

	if err := s.accountRepo.Update(account); err != nil {
		s.metrics.RecordAccountOperation("restore", "error")
		return nil, fmt.Errorf("failed to restore account: %w", err)
	}

	s.audit.RecordAccountEvent(actor, models.AuditActionAccountRestored, account.ID, nil)
	s.metrics.RecordAccountOperation("restore", "ok")

	return account, nil
}

// Sync marks a provider-linked account as freshly synced. The provider
// round-trip itself happens elsewhere; this flips the bookkeeping.
func (s *accountService) Sync(actor models.Actor, accountID uuid.UUID) (*models.Account, error) {
	account, err := s.getAuthorized(actor, accountID)
	if err != nil {
		return nil, err
	}

	if account.IsManualSource() {
		s.metrics.RecordSync(account.Source, "rejected")
		return nil, ErrSyncNotSupported
	}

	now := time.Now()
	account.LastSyncAt = &now
	account.SyncError = nil

	if err := s.accountRepo.Update(account); err != nil {
		s.metrics.RecordSync(account.Source, "error")
		return nil, fmt.Errorf("failed to record sync: %w", err)
	}

	s.audit.RecordAccountEvent(actor, models.AuditActionAccountSynced, account.ID, models.JSONBMap{
		"source": account.Source,
	})
	s.metrics.RecordSync(account.Source, "ok")

	return account, nil
}

// CheckDeletionEligibility runs the transfer-linkage detection without
// attempting deletion.
func (s *accountService) CheckDeletionEligibility(actor models.Actor, accountID uuid.UUID) (*models.DeletionEligibility, error) {
	account, err := s.getAuthorized(actor, accountID)
	if err != nil {
		return nil, err
	}

	return s.deletionEligibility(account)
}

// CheckRestoreEligibility reports whether a hidden account can be restored
// directly or needs its provider connection re-linked.
func (s *accountService) CheckRestoreEligibility(actor models.Actor, accountID uuid.UUID) (*models.RestoreEligibility, error) {
	account, err := s.getAuthorized(actor, accountID)
	if err != nil {
		return nil, err
	}

	if !account.IsHidden() {
		return &models.RestoreEligibility{
			CanRestore: false,
			Reason:     "only hidden accounts can be restored",
		}, nil
	}

	if account.IsManualSource() {
		return &models.RestoreEligibility{CanRestore: true}, nil
	}

	status, err := s.connections.Status(account)
	if err != nil {
		return nil, err
	}

	if status == models.ConnectionStatusRevoked {
		return &models.RestoreEligibility{
			CanRestore:       false,
			RequiresRelink:   true,
			ConnectionStatus: status,
			Reason:           "bank connection was revoked and must be re-linked",
		}, nil
	}

	return &models.RestoreEligibility{
		CanRestore:       true,
		ConnectionStatus: status,
	}, nil
}

// GetSummary computes the raw per-scope rollup over active, non-hidden
// accounts. Balances are summed as stored; no normalization.
func (s *accountService) GetSummary(actor models.Actor) (*models.AccountSummary, error) {
	started := time.Now()

	accounts, err := s.summaryAccounts(actor)
	if err != nil {
		return nil, err
	}

	summary := &models.AccountSummary{
		TotalBalance: decimal.Zero,
		ByType:       make(map[string]models.TypeBreakdown),
	}

	for _, account := range accounts {
		summary.TotalAccounts++
		summary.TotalBalance = summary.TotalBalance.Add(account.CurrentBalance)

		if account.Status == models.AccountStatusActive {
			summary.ActiveAccounts++
		}
		if account.NeedsSyncAfter(s.syncStaleAfter) {
			summary.AccountsNeedingSync++
		}

		breakdown := summary.ByType[account.AccountType]
		breakdown.Count++
		breakdown.TotalBalance = breakdown.TotalBalance.Add(account.CurrentBalance)
		summary.ByType[account.AccountType] = breakdown
	}

	s.metrics.ObserveSummaryDuration("summary", time.Since(started))

	return summary, nil
}

// GetFinancialSummary computes the normalized rollup: assets, liabilities,
// net worth, and available credit, plus the per-account detail list.
func (s *accountService) GetFinancialSummary(actor models.Actor) (*models.FinancialSummary, error) {
	started := time.Now()

	accounts, err := s.summaryAccounts(actor)
	if err != nil {
		return nil, err
	}

	summary := &models.FinancialSummary{
		TotalAssets:          decimal.Zero,
		TotalLiabilities:     decimal.Zero,
		NetWorth:             decimal.Zero,
		TotalAvailableCredit: decimal.Zero,
		Accounts:             make([]models.NormalizedAccount, 0, len(accounts)),
	}

	for i, account := range accounts {
		normalized := s.normalizer.Normalize(account.AccountType, account.CurrentBalance, account.CreditLimit)

		summary.TotalAssets = summary.TotalAssets.Add(normalized.AssetContribution)
		summary.TotalLiabilities = summary.TotalLiabilities.Add(normalized.LiabilityContribution)
		summary.TotalAvailableCredit = summary.TotalAvailableCredit.Add(normalized.AvailableCredit)

		// Currency of the first account wins; mixed-currency scopes are
		// aggregated without conversion.
		if i == 0 {
			summary.Currency = account.Currency
		}

		summary.Accounts = append(summary.Accounts, models.NormalizedAccount{
			AccountID:         account.ID,
			Name:              account.Name,
			AccountType:       account.AccountType,
			Currency:          account.Currency,
			NormalizedBalance: normalized,
		})
	}

	summary.NetWorth = summary.TotalAssets.Sub(summary.TotalLiabilities)

	s.metrics.ObserveSummaryDuration("financial_summary", time.Since(started))

	s.logger.Info("financial summary generated",
		"account_count", len(accounts),
		"net_worth", summary.NetWorth.String())

	return summary, nil
}

// getAuthorized loads an account and enforces the ownership check.
// Not-found is reported before any authorization decision.
func (s *accountService) getAuthorized(actor models.Actor, accountID uuid.UUID) (*models.Account, error) {
	account, err := s.accountRepo.GetByID(accountID)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	if !actor.CanAccess(account) {
		s.logger.Warn("account access denied",
			"account_id", accountID,
			"actor_role", actor.Role)
		return nil, ErrAccessDenied
	}

	return account, nil
}

func (s *accountService) summaryAccounts(actor models.Actor) ([]*models.Account, error) {
	scope, err := actor.ResolveScope()
	if err != nil {
		return nil, err
	}

	accounts, err := s.accountRepo.ListByScope(scope, models.SummaryFilters())
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts for summary: %w", err)
	}
	return accounts, nil
}

// deletionEligibility builds the blocker list: the account's transfer legs
// whose groups have a leg on a different account.
func (s *accountService) deletionEligibility(account *models.Account) (*models.DeletionEligibility, error) {
	legs, err := s.transactionRepo.GetTransferLegs(account.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to detect linked transfers: %w", err)
	}

	eligibility := &models.DeletionEligibility{
		CanDelete: true,
		CanHide:   true,
		Blockers:  []models.TransferBlocker{},
	}

	if len(legs) == 0 {
		return eligibility, nil
	}

	groupIDs := make([]uuid.UUID, 0, len(legs))
	for _, leg := range legs {
		groupIDs = append(groupIDs, *leg.TransferGroupID)
	}

	linked, err := s.transactionRepo.GetLinkedLegs(groupIDs, account.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve linked transfer legs: %w", err)
	}

	linkedByGroup := make(map[uuid.UUID]*models.Transaction, len(linked))
	for _, other := range linked {
		linkedByGroup[*other.TransferGroupID] = other
	}

	for _, leg := range legs {
		other, ok := linkedByGroup[*leg.TransferGroupID]
		if !ok {
			// Orphaned leg: no counterpart on another account, so it does
			// not block deletion.
			continue
		}

		eligibility.Blockers = append(eligibility.Blockers, models.TransferBlocker{
			TransactionID:     leg.ID,
			TransferGroupID:   *leg.TransferGroupID,
			LinkedAccountID:   other.AccountID,
			LinkedAccountName: other.Account.Name,
			Amount:            leg.Amount,
			TransferRole:      leg.TransferRole,
			Date:              leg.Date,
			Description:       leg.Description,
		})
	}

	eligibility.LinkedTransferCount = len(eligibility.Blockers)
	eligibility.CanDelete = eligibility.LinkedTransferCount == 0

	return eligibility, nil
}
