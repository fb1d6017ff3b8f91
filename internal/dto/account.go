package dto

import (
	"fmt"
	"time"

	"walletwise/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account Request DTOs

// CreateAccountRequest represents the request payload for creating a new
// account. Monetary amounts are strings so exact decimal values survive
// the wire without floating-point loss.
type CreateAccountRequest struct {
	Name               string          `json:"name" validate:"required,min=1,max=255"`
	AccountType        string          `json:"account_type" validate:"required,account_type"`
	Source             string          `json:"source" validate:"omitempty,account_source"`
	CurrentBalance     string          `json:"current_balance" validate:"omitempty,decimal_amount"`
	AvailableBalance   string          `json:"available_balance" validate:"omitempty,decimal_amount"`
	CreditLimit        string          `json:"credit_limit" validate:"omitempty,positive_amount"`
	Currency           string          `json:"currency" validate:"omitempty,currency_code"`
	InstitutionName    string          `json:"institution_name" validate:"omitempty,max=255"`
	AccountNumberLast4 string          `json:"account_number_last4" validate:"omitempty,len=4,number"`
	SyncEnabled        *bool           `json:"sync_enabled"`
	Settings           models.JSONBMap `json:"settings"`
}

// Params parses the request into domain creation parameters.
func (r *CreateAccountRequest) Params() (models.CreateAccountParams, error) {
	params := models.CreateAccountParams{
		Name:               r.Name,
		AccountType:        r.AccountType,
		Source:             r.Source,
		Currency:           r.Currency,
		InstitutionName:    r.InstitutionName,
		AccountNumberLast4: r.AccountNumberLast4,
		SyncEnabled:        r.SyncEnabled,
		Settings:           r.Settings,
		CurrentBalance:     decimal.Zero,
	}

	if r.CurrentBalance != "" {
		balance, err := decimal.NewFromString(r.CurrentBalance)
		if err != nil {
			return params, fmt.Errorf("invalid current balance: %w", err)
		}
		params.CurrentBalance = balance
	}

	if r.AvailableBalance != "" {
		available, err := decimal.NewFromString(r.AvailableBalance)
		if err != nil {
			return params, fmt.Errorf("invalid available balance: %w", err)
		}
		params.AvailableBalance = &available
	}

	if r.CreditLimit != "" {
		limit, err := decimal.NewFromString(r.CreditLimit)
		if err != nil {
			return params, fmt.Errorf("invalid credit limit: %w", err)
		}
		params.CreditLimit = &limit
	}

	return params, nil
}

// UpdateAccountRequest represents a partial account update. Absent fields
// leave the stored value untouched; a provided settings map replaces the
// stored keys wholesale.
type UpdateAccountRequest struct {
	Name             *string         `json:"name" validate:"omitempty,min=1,max=255"`
	AccountType      *string         `json:"account_type" validate:"omitempty,account_type"`
	Status           *string         `json:"status" validate:"omitempty,account_status"`
	CurrentBalance   *string         `json:"current_balance" validate:"omitempty,decimal_amount"`
	AvailableBalance *string         `json:"available_balance" validate:"omitempty,decimal_amount"`
	CreditLimit      *string         `json:"credit_limit" validate:"omitempty,positive_amount"`
	Currency         *string         `json:"currency" validate:"omitempty,currency_code"`
	InstitutionName  *string         `json:"institution_name" validate:"omitempty,max=255"`
	IsActive         *bool           `json:"is_active"`
	SyncEnabled      *bool           `json:"sync_enabled"`
	Settings         models.JSONBMap `json:"settings"`
}

// Params parses the request into domain update parameters.
func (r *UpdateAccountRequest) Params() (models.UpdateAccountParams, error) {
	params := models.UpdateAccountParams{
		Name:            r.Name,
		AccountType:     r.AccountType,
		Status:          r.Status,
		Currency:        r.Currency,
		InstitutionName: r.InstitutionName,
		IsActive:        r.IsActive,
		SyncEnabled:     r.SyncEnabled,
		Settings:        r.Settings,
	}

	if r.CurrentBalance != nil {
		balance, err := decimal.NewFromString(*r.CurrentBalance)
		if err != nil {
			return params, fmt.Errorf("invalid current balance: %w", err)
		}
		params.CurrentBalance = &balance
	}

	if r.AvailableBalance != nil {
		available, err := decimal.NewFromString(*r.AvailableBalance)
		if err != nil {
			return params, fmt.Errorf("invalid available balance: %w", err)
		}
		params.AvailableBalance = &available
	}

	if r.CreditLimit != nil {
		limit, err := decimal.NewFromString(*r.CreditLimit)
		if err != nil {
			return params, fmt.Errorf("invalid credit limit: %w", err)
		}
		params.CreditLimit = &limit
	}

	return params, nil
}

// ListAccountsQuery captures list-endpoint query parameters.
type ListAccountsQuery struct {
	IncludeHidden bool   `query:"include_hidden"`
	AccountType   string `query:"account_type" validate:"omitempty,account_type"`
	Source        string `query:"source" validate:"omitempty,account_source"`
}

// Account Response DTOs

// AccountResponse is the externally visible account shape. Ownership ids
// are only reflected back for the requester's own scope; a family member
// never learns another member's user id through this payload.
type AccountResponse struct {
	ID                  uuid.UUID        `json:"id"`
	UserID              *uuid.UUID       `json:"user_id,omitempty"`
	FamilyID            *uuid.UUID       `json:"family_id,omitempty"`
	Name                string           `json:"name"`
	DisplayName         string           `json:"display_name"`
	AccountType         string           `json:"account_type"`
	Status              string           `json:"status"`
	Source              string           `json:"source"`
	CurrentBalance      decimal.Decimal  `json:"current_balance"`
	AvailableBalance    *decimal.Decimal `json:"available_balance"`
	CreditLimit         *decimal.Decimal `json:"credit_limit,omitempty"`
	Currency            string           `json:"currency"`
	InstitutionName     string           `json:"institution_name,omitempty"`
	MaskedAccountNumber string           `json:"masked_account_number,omitempty"`
	IsPlaidAccount      bool             `json:"is_plaid_account"`
	IsManualAccount     bool             `json:"is_manual_account"`
	IsSyncable          bool             `json:"is_syncable"`
	NeedsSync           bool             `json:"needs_sync"`
	IsActive            bool             `json:"is_active"`
	SyncEnabled         bool             `json:"sync_enabled"`
	LastSyncAt          *time.Time       `json:"last_sync_at,omitempty"`
	SyncError           *string          `json:"sync_error,omitempty"`
	Settings            models.JSONBMap  `json:"settings,omitempty"`
	CreatedAt           time.Time        `json:"created_at"`
	UpdatedAt           time.Time        `json:"updated_at"`
}

// NewAccountResponse maps an account to its response shape for the given
// actor. Admins see the actual owner; everyone else sees only the scope
// they share with the account.
func NewAccountResponse(account *models.Account, actor models.Actor) *AccountResponse {
	resp := &AccountResponse{
		ID:                  account.ID,
		Name:                account.Name,
		DisplayName:         account.DisplayName(),
		AccountType:         account.AccountType,
		Status:              account.Status,
		Source:              account.Source,
		CurrentBalance:      account.CurrentBalance,
		AvailableBalance:    account.AvailableBalance,
		CreditLimit:         account.CreditLimit,
		Currency:            account.Currency,
		InstitutionName:     account.InstitutionName,
		MaskedAccountNumber: account.MaskedAccountNumber(),
		IsPlaidAccount:      account.IsPlaidSource(),
		IsManualAccount:     account.IsManualSource(),
		IsSyncable:          account.IsSyncable(),
		NeedsSync:           account.NeedsSync(),
		IsActive:            account.IsActive,
		SyncEnabled:         account.SyncEnabled,
		LastSyncAt:          account.LastSyncAt,
		SyncError:           account.SyncError,
		Settings:            account.Settings,
		CreatedAt:           account.CreatedAt,
		UpdatedAt:           account.UpdatedAt,
	}

	switch {
	case actor.IsAdmin():
		resp.UserID = account.UserID
		resp.FamilyID = account.FamilyID
	case account.UserID != nil && actor.UserID != nil && *account.UserID == *actor.UserID:
		resp.UserID = account.UserID
	case account.FamilyID != nil && actor.FamilyID != nil && *account.FamilyID == *actor.FamilyID:
		resp.FamilyID = account.FamilyID
	}

	return resp
}

// NewAccountListResponse maps a slice of accounts.
func NewAccountListResponse(accounts []*models.Account, actor models.Actor) []*AccountResponse {
	responses := make([]*AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		responses = append(responses, NewAccountResponse(account, actor))
	}
	return responses
}

// MessageResponse represents a simple message response
type MessageResponse struct {
	Message string `json:"message"`
}
