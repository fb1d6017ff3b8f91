package dto

import (
	"time"

	"walletwise/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BalanceResponse exposes the balance fields of a single account.
// AvailableBalance serializes as null when the provider never reported one.
type BalanceResponse struct {
	AccountID        uuid.UUID        `json:"account_id"`
	CurrentBalance   decimal.Decimal  `json:"current_balance"`
	AvailableBalance *decimal.Decimal `json:"available_balance"`
	CreditLimit      *decimal.Decimal `json:"credit_limit,omitempty"`
	Currency         string           `json:"currency"`
}

func NewBalanceResponse(balance *models.AccountBalance) *BalanceResponse {
	return &BalanceResponse{
		AccountID:        balance.AccountID,
		CurrentBalance:   balance.CurrentBalance,
		AvailableBalance: balance.AvailableBalance,
		CreditLimit:      balance.CreditLimit,
		Currency:         balance.Currency,
	}
}

// TypeBreakdownResponse is one row of the per-type summary grouping.
type TypeBreakdownResponse struct {
	Count        int             `json:"count"`
	TotalBalance decimal.Decimal `json:"total_balance"`
}

// SummaryResponse is the operational account summary.
type SummaryResponse struct {
	TotalAccounts       int                              `json:"total_accounts"`
	TotalBalance        decimal.Decimal                  `json:"total_balance"`
	ActiveAccounts      int                              `json:"active_accounts"`
	AccountsNeedingSync int                              `json:"accounts_needing_sync"`
	ByType              map[string]TypeBreakdownResponse `json:"by_type"`
}

func NewSummaryResponse(summary *models.AccountSummary) *SummaryResponse {
	byType := make(map[string]TypeBreakdownResponse, len(summary.ByType))
	for accountType, breakdown := range summary.ByType {
		byType[accountType] = TypeBreakdownResponse{
			Count:        breakdown.Count,
			TotalBalance: breakdown.TotalBalance,
		}
	}
	return &SummaryResponse{
		TotalAccounts:       summary.TotalAccounts,
		TotalBalance:        summary.TotalBalance,
		ActiveAccounts:      summary.ActiveAccounts,
		AccountsNeedingSync: summary.AccountsNeedingSync,
		ByType:              byType,
	}
}

// NormalizedAccountResponse is one account viewed through the asset and
// liability lens of the financial summary.
type NormalizedAccountResponse struct {
	AccountID      uuid.UUID       `json:"account_id"`
	Name           string          `json:"name"`
	AccountType    string          `json:"account_type"`
	Nature         string          `json:"nature"`
	DisplayAmount  decimal.Decimal `json:"display_amount"`
	DisplayLabel   string          `json:"display_label"`
	NetWorthEffect string          `json:"net_worth_effect"`
	Currency       string          `json:"currency"`
}

// FinancialSummaryResponse is the net-worth rollup across visible accounts.
type FinancialSummaryResponse struct {
	TotalAssets          decimal.Decimal             `json:"total_assets"`
	TotalLiabilities     decimal.Decimal             `json:"total_liabilities"`
	NetWorth             decimal.Decimal             `json:"net_worth"`
	TotalAvailableCredit decimal.Decimal             `json:"total_available_credit"`
	Currency             string                      `json:"currency"`
	Accounts             []NormalizedAccountResponse `json:"accounts"`
}

func NewFinancialSummaryResponse(summary *models.FinancialSummary) *FinancialSummaryResponse {
	accounts := make([]NormalizedAccountResponse, 0, len(summary.Accounts))
	for _, account := range summary.Accounts {
		accounts = append(accounts, NormalizedAccountResponse{
			AccountID:      account.AccountID,
			Name:           account.Name,
			AccountType:    account.AccountType,
			Nature:         account.Nature,
			DisplayAmount:  account.DisplayAmount,
			DisplayLabel:   account.DisplayLabel,
			NetWorthEffect: account.NetWorthEffect,
			Currency:       account.Currency,
		})
	}
	return &FinancialSummaryResponse{
		TotalAssets:          summary.TotalAssets,
		TotalLiabilities:     summary.TotalLiabilities,
		NetWorth:             summary.NetWorth,
		TotalAvailableCredit: summary.TotalAvailableCredit,
		Currency:             summary.Currency,
		Accounts:             accounts,
	}
}

// TransferBlockerResponse describes one transfer leg preventing deletion.
type TransferBlockerResponse struct {
	TransactionID     uuid.UUID       `json:"transaction_id"`
	TransferGroupID   uuid.UUID       `json:"transfer_group_id"`
	LinkedAccountID   uuid.UUID       `json:"linked_account_id"`
	LinkedAccountName string          `json:"linked_account_name,omitempty"`
	Amount            decimal.Decimal `json:"amount"`
	TransferRole      string          `json:"transfer_role"`
	Date              time.Time       `json:"date"`
	Description       string          `json:"description,omitempty"`
}

// DeletionEligibilityResponse reports whether an account can be deleted
// and, when it cannot, which transfers stand in the way.
type DeletionEligibilityResponse struct {
	CanDelete           bool                      `json:"can_delete"`
	CanHide             bool                      `json:"can_hide"`
	LinkedTransferCount int                       `json:"linked_transfer_count"`
	Blockers            []TransferBlockerResponse `json:"blockers"`
}

func NewDeletionEligibilityResponse(eligibility *models.DeletionEligibility) *DeletionEligibilityResponse {
	blockers := make([]TransferBlockerResponse, 0, len(eligibility.Blockers))
	for _, blocker := range eligibility.Blockers {
		blockers = append(blockers, TransferBlockerResponse{
			TransactionID:     blocker.TransactionID,
			TransferGroupID:   blocker.TransferGroupID,
			LinkedAccountID:   blocker.LinkedAccountID,
			LinkedAccountName: blocker.LinkedAccountName,
			Amount:            blocker.Amount,
			TransferRole:      blocker.TransferRole,
			Date:              blocker.Date,
			Description:       blocker.Description,
		})
	}
	return &DeletionEligibilityResponse{
		CanDelete:           eligibility.CanDelete,
		CanHide:             eligibility.CanHide,
		LinkedTransferCount: eligibility.LinkedTransferCount,
		Blockers:            blockers,
	}
}

// RestoreEligibilityResponse reports whether a hidden account can come back
// and whether its bank connection needs to be re-established first.
type RestoreEligibilityResponse struct {
	CanRestore       bool   `json:"can_restore"`
	RequiresRelink   bool   `json:"requires_relink"`
	ConnectionStatus string `json:"connection_status"`
	Reason           string `json:"reason,omitempty"`
}

func NewRestoreEligibilityResponse(eligibility *models.RestoreEligibility) *RestoreEligibilityResponse {
	return &RestoreEligibilityResponse{
		CanRestore:       eligibility.CanRestore,
		RequiresRelink:   eligibility.RequiresRelink,
		ConnectionStatus: eligibility.ConnectionStatus,
		Reason:           eligibility.Reason,
	}
}
