package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TypeBreakdown aggregates accounts of a single type.
type TypeBreakdown struct {
	Count        int             `json:"count"`
	TotalBalance decimal.Decimal `json:"total_balance"`
}

// AccountSummary is the raw per-scope rollup: balances are summed as stored,
// without normalization. Net-worth math lives in FinancialSummary.
type AccountSummary struct {
	TotalAccounts       int                      `json:"total_accounts"`
	TotalBalance        decimal.Decimal          `json:"total_balance"`
	ActiveAccounts      int                      `json:"active_accounts"`
	AccountsNeedingSync int                      `json:"accounts_needing_sync"`
	ByType              map[string]TypeBreakdown `json:"by_type"`
}

// AccountBalance is the balance view for a single account. AvailableBalance
// stays a pointer so an absent value serializes as null, not zero.
type AccountBalance struct {
	AccountID        uuid.UUID        `json:"account_id"`
	CurrentBalance   decimal.Decimal  `json:"current_balance"`
	AvailableBalance *decimal.Decimal `json:"available_balance"`
	CreditLimit      *decimal.Decimal `json:"credit_limit,omitempty"`
	Currency         string           `json:"currency"`
}
