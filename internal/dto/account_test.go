package dto

import (
	"testing"

	"walletwise/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccountResponse_OwnershipVisibility(t *testing.T) {
	userID := uuid.New()
	otherUserID := uuid.New()
	familyID := uuid.New()

	userAccount := &models.Account{ID: uuid.New(), UserID: &userID, Name: "Checking"}
	familyAccount := &models.Account{ID: uuid.New(), FamilyID: &familyID, Name: "Family Pot"}

	t.Run("owner sees own user id", func(t *testing.T) {
		actor := models.Actor{UserID: &userID, Role: models.RoleMember}
		resp := NewAccountResponse(userAccount, actor)
		require.NotNil(t, resp.UserID)
		assert.Equal(t, userID, *resp.UserID)
		assert.Nil(t, resp.FamilyID)
	})

	t.Run("family member sees family id only", func(t *testing.T) {
		actor := models.Actor{FamilyID: &familyID, Role: models.RoleMember}
		resp := NewAccountResponse(familyAccount, actor)
		require.NotNil(t, resp.FamilyID)
		assert.Equal(t, familyID, *resp.FamilyID)
		assert.Nil(t, resp.UserID)
	})

	t.Run("non-owner sees neither id", func(t *testing.T) {
		actor := models.Actor{UserID: &otherUserID, Role: models.RoleMember}
		resp := NewAccountResponse(userAccount, actor)
		assert.Nil(t, resp.UserID)
		assert.Nil(t, resp.FamilyID)
	})

	t.Run("admin sees the actual owner", func(t *testing.T) {
		actor := models.Actor{Role: models.RoleAdmin}
		resp := NewAccountResponse(userAccount, actor)
		require.NotNil(t, resp.UserID)
		assert.Equal(t, userID, *resp.UserID)
	})
}

func TestNewAccountResponse_DerivedFields(t *testing.T) {
	userID := uuid.New()
	account := &models.Account{
		ID:                 uuid.New(),
		UserID:             &userID,
		Name:               "Rewards Card",
		AccountType:        models.AccountTypeCreditCard,
		Status:             models.AccountStatusActive,
		Source:             models.AccountSourcePlaid,
		CurrentBalance:     decimal.NewFromInt(-2500),
		Currency:           "USD",
		InstitutionName:    "First National",
		AccountNumberLast4: "4321",
		SyncEnabled:        true,
	}
	actor := models.Actor{UserID: &userID, Role: models.RoleMember}

	resp := NewAccountResponse(account, actor)

	assert.Equal(t, "First National - Rewards Card", resp.DisplayName)
	assert.Equal(t, "****4321", resp.MaskedAccountNumber)
	assert.True(t, resp.IsPlaidAccount)
	assert.False(t, resp.IsManualAccount)
	assert.True(t, resp.IsSyncable)
	assert.True(t, resp.NeedsSync)
}

func TestCreateAccountRequest_Params(t *testing.T) {
	req := CreateAccountRequest{
		Name:           "Everyday Checking",
		AccountType:    "checking",
		CurrentBalance: "1234.56",
		CreditLimit:    "10000",
	}

	params, err := req.Params()
	require.NoError(t, err)
	assert.True(t, params.CurrentBalance.Equal(decimal.NewFromFloat(1234.56)))
	require.NotNil(t, params.CreditLimit)
	assert.True(t, params.CreditLimit.Equal(decimal.NewFromInt(10000)))
	assert.Nil(t, params.AvailableBalance)
}

func TestCreateAccountRequest_Params_DefaultsBalanceToZero(t *testing.T) {
	req := CreateAccountRequest{Name: "Empty", AccountType: "savings"}

	params, err := req.Params()
	require.NoError(t, err)
	assert.True(t, params.CurrentBalance.IsZero())
}

func TestCreateAccountRequest_Params_InvalidAmount(t *testing.T) {
	req := CreateAccountRequest{
		Name:           "Bad Balance",
		AccountType:    "checking",
		CurrentBalance: "one hundred",
	}

	_, err := req.Params()
	assert.Error(t, err)
}

func TestUpdateAccountRequest_Params(t *testing.T) {
	balance := "99.95"
	req := UpdateAccountRequest{CurrentBalance: &balance}

	params, err := req.Params()
	require.NoError(t, err)
	require.NotNil(t, params.CurrentBalance)
	assert.True(t, params.CurrentBalance.Equal(decimal.NewFromFloat(99.95)))
	assert.Nil(t, params.Name)
	assert.Nil(t, params.Settings)
}
