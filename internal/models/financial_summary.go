package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	AccountNatureAsset     = "asset"
	AccountNatureLiability = "liability"

	NetWorthEffectPositive = "positive"
	NetWorthEffectNegative = "negative"
	NetWorthEffectNeutral  = "neutral"

	BalanceLabelAvailable = "Available"
	BalanceLabelOverdrawn = "Overdrawn"
	BalanceLabelOwed      = "Owed"
	BalanceLabelPaidOff   = "Paid Off"
)

// NormalizedBalance is the sign-consistent view of one raw balance:
// a non-negative display amount, the asset/liability classification, and
// the account's contributions to the aggregate totals.
type NormalizedBalance struct {
	Nature                string          `json:"nature"`
	DisplayAmount         decimal.Decimal `json:"display_amount"`
	DisplayLabel          string          `json:"display_label"`
	NetWorthEffect        string          `json:"net_worth_effect"`
	AssetContribution     decimal.Decimal `json:"-"`
	LiabilityContribution decimal.Decimal `json:"-"`
	AvailableCredit       decimal.Decimal `json:"-"`
}

// NormalizedAccount pairs an account's identity with its normalized balance
// for the financial-summary detail list.
type NormalizedAccount struct {
	AccountID   uuid.UUID `json:"account_id"`
	Name        string    `json:"name"`
	AccountType string    `json:"account_type"`
	Currency    string    `json:"currency"`
	NormalizedBalance
}

// FinancialSummary is the normalized per-scope rollup. Currency is taken
// from the first account in scope; mixed-currency scopes are not converted.
type FinancialSummary struct {
	TotalAssets          decimal.Decimal     `json:"total_assets"`
	TotalLiabilities     decimal.Decimal     `json:"total_liabilities"`
	NetWorth             decimal.Decimal     `json:"net_worth"`
	TotalAvailableCredit decimal.Decimal     `json:"total_available_credit"`
	Currency             string              `json:"currency"`
	Accounts             []NormalizedAccount `json:"accounts"`
}
