package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccount_Validate(t *testing.T) {
	userID := uuid.New()
	familyID := uuid.New()

	tests := []struct {
		name    string
		account Account
		wantErr error
	}{
		{
			name: "valid user-owned checking account",
			account: Account{
				UserID:      &userID,
				Name:        "Everyday Checking",
				AccountType: AccountTypeChecking,
				Status:      AccountStatusActive,
				Source:      AccountSourceManual,
				Currency:    "USD",
			},
		},
		{
			name: "valid family-owned savings account",
			account: Account{
				FamilyID:    &familyID,
				Name:        "Household Savings",
				AccountType: AccountTypeSavings,
				Status:      AccountStatusActive,
				Source:      AccountSourceManual,
				Currency:    "EUR",
			},
		},
		{
			name: "no owner",
			account: Account{
				Name:        "Orphan",
				AccountType: AccountTypeChecking,
				Status:      AccountStatusActive,
				Source:      AccountSourceManual,
				Currency:    "USD",
			},
			wantErr: ErrOwnerRequired,
		},
		{
			name: "both owners",
			account: Account{
				UserID:      &userID,
				FamilyID:    &familyID,
				Name:        "Dual Owned",
				AccountType: AccountTypeChecking,
				Status:      AccountStatusActive,
				Source:      AccountSourceManual,
				Currency:    "USD",
			},
			wantErr: ErrOwnerRequired,
		},
		{
			name: "invalid account type",
			account: Account{
				UserID:      &userID,
				Name:        "Mystery",
				AccountType: "crypto_wallet",
				Status:      AccountStatusActive,
				Source:      AccountSourceManual,
				Currency:    "USD",
			},
			wantErr: ErrInvalidAccountType,
		},
		{
			name: "invalid status",
			account: Account{
				UserID:      &userID,
				Name:        "Checking",
				AccountType: AccountTypeChecking,
				Status:      "archived",
				Source:      AccountSourceManual,
				Currency:    "USD",
			},
			wantErr: ErrInvalidAccountStatus,
		},
		{
			name: "invalid source",
			account: Account{
				UserID:      &userID,
				Name:        "Checking",
				AccountType: AccountTypeChecking,
				Status:      AccountStatusActive,
				Source:      "yodlee",
				Currency:    "USD",
			},
			wantErr: ErrInvalidAccountSource,
		},
		{
			name: "invalid currency length",
			account: Account{
				UserID:      &userID,
				Name:        "Checking",
				AccountType: AccountTypeChecking,
				Status:      AccountStatusActive,
				Source:      AccountSourceManual,
				Currency:    "DOLLARS",
			},
			wantErr: ErrInvalidCurrency,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.account.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAccount_Validate_NameRequired(t *testing.T) {
	userID := uuid.New()
	account := Account{
		UserID:      &userID,
		AccountType: AccountTypeChecking,
		Status:      AccountStatusActive,
		Source:      AccountSourceManual,
		Currency:    "USD",
	}

	err := account.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name")
}

func TestAccount_Validate_AccountNumberMask(t *testing.T) {
	userID := uuid.New()
	account := Account{
		UserID:             &userID,
		Name:               "Checking",
		AccountType:        AccountTypeChecking,
		Status:             AccountStatusActive,
		Source:             AccountSourceManual,
		Currency:           "USD",
		AccountNumberLast4: "12345",
	}

	assert.Error(t, account.Validate())

	account.AccountNumberLast4 = "1234"
	assert.NoError(t, account.Validate())
}

func TestAccount_BeforeCreateDefaults(t *testing.T) {
	userID := uuid.New()
	account := Account{
		UserID:      &userID,
		Name:        "Everyday Checking",
		AccountType: AccountTypeChecking,
	}

	err := account.BeforeCreate(nil)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, account.ID)
	assert.Equal(t, AccountStatusActive, account.Status)
	assert.Equal(t, AccountSourceManual, account.Source)
	assert.Equal(t, DefaultCurrency, account.Currency)
	assert.False(t, account.CreatedAt.IsZero())
	assert.False(t, account.UpdatedAt.IsZero())
}

func TestAccount_OwnerRoundTrip(t *testing.T) {
	userID := uuid.New()
	familyID := uuid.New()

	account := Account{}
	account.SetOwner(NewUserOwner(userID))
	require.NotNil(t, account.UserID)
	assert.Equal(t, userID, *account.UserID)
	assert.Nil(t, account.FamilyID)
	assert.Equal(t, NewUserOwner(userID), account.Owner())

	// Switching owner clears the previous column
	account.SetOwner(NewFamilyOwner(familyID))
	require.NotNil(t, account.FamilyID)
	assert.Equal(t, familyID, *account.FamilyID)
	assert.Nil(t, account.UserID)
	assert.Equal(t, NewFamilyOwner(familyID), account.Owner())
}

func TestAccount_HideAndRestore(t *testing.T) {
	account := Account{Status: AccountStatusActive}

	require.NoError(t, account.Hide())
	assert.Equal(t, AccountStatusHidden, account.Status)
	assert.True(t, account.IsHidden())

	// Hiding twice fails
	assert.ErrorIs(t, account.Hide(), ErrAccountAlreadyHidden)

	require.NoError(t, account.Restore())
	assert.Equal(t, AccountStatusActive, account.Status)

	// Restoring a non-hidden account fails
	assert.ErrorIs(t, account.Restore(), ErrAccountNotHidden)
}

func TestAccount_RestoreFromAnyNonHiddenStatusFails(t *testing.T) {
	for _, status := range []string{AccountStatusActive, AccountStatusInactive, AccountStatusClosed} {
		account := Account{Status: status}
		assert.ErrorIs(t, account.Restore(), ErrAccountNotHidden, status)
	}
}

func TestAccount_SourceHelpers(t *testing.T) {
	manual := Account{Source: AccountSourceManual, SyncEnabled: true}
	assert.True(t, manual.IsManualSource())
	assert.False(t, manual.IsSyncable())
	assert.False(t, manual.NeedsSync())

	plaid := Account{Source: AccountSourcePlaid, SyncEnabled: true}
	assert.True(t, plaid.IsPlaidSource())
	assert.True(t, plaid.IsSyncable())

	disabled := Account{Source: AccountSourcePlaid, SyncEnabled: false}
	assert.False(t, disabled.IsSyncable())
}

func TestAccount_NeedsSync(t *testing.T) {
	plaid := Account{Source: AccountSourcePlaid, SyncEnabled: true}

	// Never synced
	assert.True(t, plaid.NeedsSync())

	recent := time.Now().Add(-time.Hour)
	plaid.LastSyncAt = &recent
	assert.False(t, plaid.NeedsSync())

	stale := time.Now().Add(-(SyncStaleAfter + time.Hour))
	plaid.LastSyncAt = &stale
	assert.True(t, plaid.NeedsSync())
}

func TestAccount_NeedsSyncAfter(t *testing.T) {
	plaid := Account{Source: AccountSourcePlaid, SyncEnabled: true}

	syncedAt := time.Now().Add(-2 * time.Hour)
	plaid.LastSyncAt = &syncedAt

	assert.True(t, plaid.NeedsSyncAfter(time.Hour))
	assert.False(t, plaid.NeedsSyncAfter(3*time.Hour))

	manual := Account{Source: AccountSourceManual, SyncEnabled: true, LastSyncAt: &syncedAt}
	assert.False(t, manual.NeedsSyncAfter(time.Hour))
}

func TestAccount_DisplayName(t *testing.T) {
	account := Account{Name: "Everyday Checking"}
	assert.Equal(t, "Everyday Checking", account.DisplayName())

	account.InstitutionName = "First National"
	assert.Equal(t, "First National - Everyday Checking", account.DisplayName())
}

func TestAccount_MaskedAccountNumber(t *testing.T) {
	account := Account{}
	assert.Empty(t, account.MaskedAccountNumber())

	account.AccountNumberLast4 = "4321"
	assert.Equal(t, "****4321", account.MaskedAccountNumber())
}
