package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"walletwise/internal/dto"
	"walletwise/internal/models"
	"walletwise/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// AccountSummaryHandlerSuite defines the test suite for AccountSummaryHandler
type AccountSummaryHandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *service_mocks.MockAccountServiceInterface
	handler     *AccountSummaryHandler
	echo        *echo.Echo
	testUserID  uuid.UUID
	actor       models.Actor
}

// SetupTest runs before each test in the suite
func (s *AccountSummaryHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = service_mocks.NewMockAccountServiceInterface(s.ctrl)
	s.handler = NewAccountSummaryHandler(s.mockService)

	s.echo = echo.New()
	s.echo.Validator = NewValidator()

	s.testUserID = uuid.New()
	s.actor = models.Actor{UserID: &s.testUserID, Role: models.RoleMember}
}

// TearDownTest runs after each test in the suite
func (s *AccountSummaryHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestAccountSummaryHandlerSuite runs the test suite
func TestAccountSummaryHandlerSuite(t *testing.T) {
	suite.Run(t, new(AccountSummaryHandlerSuite))
}

func (s *AccountSummaryHandlerSuite) createContext(path string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set(ActorContextKey, s.actor)
	return c, rec
}

func (s *AccountSummaryHandlerSuite) TestGetSummary_Success() {
	s.mockService.EXPECT().
		GetSummary(s.actor).
		Return(&models.AccountSummary{
			TotalAccounts:  3,
			TotalBalance:   decimal.NewFromInt(16700),
			ActiveAccounts: 3,
			ByType: map[string]models.TypeBreakdown{
				models.AccountTypeChecking: {Count: 1, TotalBalance: decimal.NewFromInt(5000)},
				models.AccountTypeSavings:  {Count: 2, TotalBalance: decimal.NewFromInt(11700)},
			},
		}, nil)

	c, rec := s.createContext("/api/v1/accounts/summary")
	err := s.handler.GetSummary(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var response dto.SummaryResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(3, response.TotalAccounts)
	s.Equal(2, response.ByType[models.AccountTypeSavings].Count)
}

func (s *AccountSummaryHandlerSuite) TestGetSummary_ScopeViolation() {
	familyID := uuid.New()
	s.actor.FamilyID = &familyID

	s.mockService.EXPECT().
		GetSummary(s.actor).
		Return(nil, models.ErrScopeViolation)

	c, rec := s.createContext("/api/v1/accounts/summary")
	err := s.handler.GetSummary(c)

	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "ACCOUNT_003")
}

func (s *AccountSummaryHandlerSuite) TestGetFinancialSummary_Success() {
	s.mockService.EXPECT().
		GetFinancialSummary(s.actor).
		Return(&models.FinancialSummary{
			TotalAssets:          decimal.NewFromInt(15000),
			TotalLiabilities:     decimal.NewFromInt(2500),
			NetWorth:             decimal.NewFromInt(12500),
			TotalAvailableCredit: decimal.NewFromInt(7500),
			Currency:             "USD",
			Accounts: []models.NormalizedAccount{
				{
					AccountID:   uuid.New(),
					Name:        "Rewards Card",
					AccountType: models.AccountTypeCreditCard,
					Currency:    "USD",
					NormalizedBalance: models.NormalizedBalance{
						Nature:         models.AccountNatureLiability,
						DisplayAmount:  decimal.NewFromInt(2500),
						DisplayLabel:   models.BalanceLabelOwed,
						NetWorthEffect: models.NetWorthEffectNegative,
					},
				},
			},
		}, nil)

	c, rec := s.createContext("/api/v1/accounts/financial-summary")
	err := s.handler.GetFinancialSummary(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var response dto.FinancialSummaryResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.True(response.NetWorth.Equal(decimal.NewFromInt(12500)))
	s.Require().Len(response.Accounts, 1)
	s.Equal(models.AccountNatureLiability, response.Accounts[0].Nature)
	s.Equal(models.BalanceLabelOwed, response.Accounts[0].DisplayLabel)
}

func (s *AccountSummaryHandlerSuite) TestGetSummary_NoActor() {
	c, rec := s.createContext("/api/v1/accounts/summary")
	c.Set(ActorContextKey, nil)

	err := s.handler.GetSummary(c)

	s.NoError(err)
	s.Equal(http.StatusUnauthorized, rec.Code)
}
