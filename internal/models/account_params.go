package models

import "github.com/shopspring/decimal"

// CreateAccountParams carries the caller-supplied fields for account
// creation. Ownership comes from the actor, not from here.
type CreateAccountParams struct {
	Name               string
	AccountType        string
	Source             string
	CurrentBalance     decimal.Decimal
	AvailableBalance   *decimal.Decimal
	CreditLimit        *decimal.Decimal
	Currency           string
	InstitutionName    string
	AccountNumberLast4 string
	SyncEnabled        *bool
	Settings           JSONBMap
}

// UpdateAccountParams carries a partial update: nil fields are untouched,
// non-nil fields overwrite. Settings, when non-nil, replaces the stored map
// with exactly the provided keys (no deep merge).
type UpdateAccountParams struct {
	Name             *string
	AccountType      *string
	Status           *string
	CurrentBalance   *decimal.Decimal
	AvailableBalance *decimal.Decimal
	CreditLimit      *decimal.Decimal
	Currency         *string
	InstitutionName  *string
	IsActive         *bool
	SyncEnabled      *bool
	Settings         JSONBMap
}
