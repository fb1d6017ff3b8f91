package handlers

import (
	"net/http"

	"walletwise/internal/dto"
	"walletwise/internal/errors"
	"walletwise/internal/models"
	"walletwise/internal/services"

	"github.com/labstack/echo/v4"
)

// AccountSummaryHandler serves the aggregated account views
type AccountSummaryHandler struct {
	accountService services.AccountServiceInterface
}

// NewAccountSummaryHandler creates a new summary handler
func NewAccountSummaryHandler(accountService services.AccountServiceInterface) *AccountSummaryHandler {
	return &AccountSummaryHandler{accountService: accountService}
}

// GetSummary returns the operational account summary
// @Summary Get account summary
// @Description Count and total the actor's visible active accounts, grouped by account type. Hidden accounts are excluded.
// @Tags Summaries
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.SummaryResponse "Account summary"
// @Failure 400 {object} errors.ErrorResponse "ACCOUNT_003 - Ambiguous ownership scope"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /accounts/summary [get]
func (h *AccountSummaryHandler) GetSummary(c echo.Context) error {
	actor, err := getActorFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	summary, err := h.accountService.GetSummary(actor)
	if err != nil {
		return h.mapSummaryErr(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewSummaryResponse(summary))
}

// GetFinancialSummary returns the asset/liability net-worth rollup
// @Summary Get financial summary
// @Description Normalize each visible account into an asset or liability and roll up total assets, liabilities, net worth, and available credit
// @Tags Summaries
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.FinancialSummaryResponse "Financial summary"
// @Failure 400 {object} errors.ErrorResponse "ACCOUNT_003 - Ambiguous ownership scope"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /accounts/financial-summary [get]
func (h *AccountSummaryHandler) GetFinancialSummary(c echo.Context) error {
	actor, err := getActorFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	summary, err := h.accountService.GetFinancialSummary(actor)
	if err != nil {
		return h.mapSummaryErr(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewFinancialSummaryResponse(summary))
}

func (h *AccountSummaryHandler) mapSummaryErr(c echo.Context, err error) error {
	switch err {
	case services.ErrAccountNotFound:
		return SendError(c, errors.AccountNotFound)
	case services.ErrAccessDenied:
		return SendError(c, errors.AccountAccessDenied)
	case models.ErrScopeViolation:
		return SendError(c, errors.AccountScopeViolation, errors.WithDetails(err.Error()))
	}
	return SendSystemError(c, err)
}
