package handlers

import (
	"net/http"

	"walletwise/internal/dto"
	"walletwise/internal/errors"
	"walletwise/internal/models"
	"walletwise/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AccountHandler handles account lifecycle HTTP requests
type AccountHandler struct {
	accountService services.AccountServiceInterface
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountService services.AccountServiceInterface) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// CreateAccount creates a new financial account for the actor's scope
// @Summary Create a new account
// @Description Create a manual or bank-linked account owned by either the acting user or their family
// @Tags Accounts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateAccountRequest true "Account creation details"
// @Success 201 {object} dto.AccountResponse "Account created successfully"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body or validation error"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /accounts [post]
func (h *AccountHandler) CreateAccount(c echo.Context) error {
	actor, err := getActorFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateAccountRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	params, err := req.Params()
	if err != nil {
		return SendError(c, errors.ValidationInvalidAmount, errors.WithDetails(err.Error()))
	}

	account, err := h.accountService.Create(actor, params)
	if err != nil {
		return h.mapAccountErr(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewAccountResponse(account, actor))
}

// ListAccounts retrieves the accounts visible to the actor's scope
// @Summary List accounts
// @Description Retrieve accounts owned by the actor's user or family scope. Hidden accounts are excluded unless include_hidden is set.
// @Tags Accounts
// @Security BearerAuth
// @Produce json
// @Param include_hidden query bool false "Include hidden accounts" default(false)
// @Param account_type query string false "Filter by account type" Enums(checking, savings, credit_card, loan, mortgage, investment, other)
// @Param source query string false "Filter by data source" Enums(manual, plaid, saltedge)
// @Success 200 {array} dto.AccountResponse "List of visible accounts"
// @Failure 400 {object} errors.ErrorResponse "ACCOUNT_003 - Ambiguous ownership scope"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /accounts [get]
func (h *AccountHandler) ListAccounts(c echo.Context) error {
	actor, err := getActorFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var query dto.ListAccountsQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}

	if err := c.Validate(query); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	filters := models.AccountFilters{
		IncludeHidden: query.IncludeHidden,
		AccountType:   query.AccountType,
		Source:        query.Source,
	}

	accounts, err := h.accountService.List(actor, filters)
	if err != nil {
		return h.mapAccountErr(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewAccountListResponse(accounts, actor))
}

// GetAccount retrieves a specific account by ID
// @Summary Get account by ID
// @Description Retrieve detailed information about an account visible to the actor
// @Tags Accounts
// @Security BearerAuth
// @Produce json
// @Param accountId path string true "Account ID (UUID)"
// @Success 200 {object} dto.AccountResponse "Account details"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid account ID format"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 403 {object} errors.ErrorResponse "ACCOUNT_002 - Account belongs to another scope"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /accounts/{accountId} [get]
func (h *AccountHandler) GetAccount(c echo.Context) error {
	actor, err := getActorFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	accountID, err := uuid.Parse(c.Param("accountId"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid account ID"))
	}

	account, err := h.accountService.Get(actor, accountID)
	if err != nil {
		return h.mapAccountErr(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewAccountResponse(account, actor))
}

// GetAccountBalance retrieves the balance fields of an account
// @Summary Get account balance
// @Description Retrieve the current balance, available balance, and credit limit of an account
// @Tags Accounts
// @Security BearerAuth
// @Produce json
// @Param accountId path string true "Account ID (UUID)"
// @Success 200 {object} dto.BalanceResponse "Account balance"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid account ID format"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 403 {object} errors.ErrorResponse "ACCOUNT_002 - Account belongs to another scope"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /accounts/{accountId}/balance [get]
func (h *AccountHandler) GetAccountBalance(c echo.Context) error {
	actor, err := getActorFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	accountID, err := uuid.Parse(c.Param("accountId"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid account ID"))
	}

	balance, err := h.accountService.GetBalance(actor, accountID)
	if err != nil {
		return h.mapAccountErr(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewBalanceResponse(balance))
}

// UpdateAccount applies a partial update to an account
// @Summary Update account
// @Description Update account fields. Absent fields are left unchanged; a provided settings object replaces the stored settings entirely.
// @Tags Accounts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param accountId path string true "Account ID (UUID)"
// @Param request body dto.UpdateAccountRequest true "Fields to update"
// @Success 200 {object} dto.AccountResponse "Updated account details"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body or account ID"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 403 {object} errors.ErrorResponse "ACCOUNT_002 - Account belongs to another scope"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /accounts/{accountId} [patch]
func (h *AccountHandler) UpdateAccount(c echo.Context) error {
	actor, err := getActorFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	accountID, err := uuid.Parse(c.Param("accountId"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid account ID"))
	}

	var req dto.UpdateAccountRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	params, err := req.Params()
	if err != nil {
		return SendError(c, errors.ValidationInvalidAmount, errors.WithDetails(err.Error()))
	}

	account, err := h.accountService.Update(actor, accountID, params)
	if err != nil {
		return h.mapAccountErr(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewAccountResponse(account, actor))
}

// DeleteAccount permanently deletes an account
// @Summary Delete account
// @Description Permanently delete an account. Refused when transactions on the account are linked to transfers in other accounts; hide the account instead.
// @Tags Accounts
// @Security BearerAuth
// @Produce json
// @Param accountId path string true "Account ID (UUID)"
// @Success 200 {object} dto.MessageResponse "Account deleted successfully"
// @Failure 400 {object} errors.ErrorResponse "ACCOUNT_006 - Deletion blocked by linked transfers"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 403 {object} errors.ErrorResponse "ACCOUNT_002 - Account belongs to another scope"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /accounts/{accountId} [delete]
func (h *AccountHandler) DeleteAccount(c echo.Context) error {
	actor, err := getActorFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	accountID, err := uuid.Parse(c.Param("accountId"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid account ID"))
	}

	if err := h.accountService.Remove(actor, accountID); err != nil {
		return h.mapAccountErr(c, err)
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Account deleted successfully"})
}

// HideAccount soft-hides an account from lists and summaries
// @Summary Hide account
// @Description Hide an account so it no longer appears in lists or summaries. History is preserved and the account can be restored later.
// @Tags Accounts
// @Security BearerAuth
// @Produce json
// @Param accountId path string true "Account ID (UUID)"
// @Success 200 {object} dto.AccountResponse "Hidden account details"
// @Failure 400 {object} errors.ErrorResponse "ACCOUNT_004 - Account is already hidden"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 403 {object} errors.ErrorResponse "ACCOUNT_002 - Account belongs to another scope"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /accounts/{accountId}/hide [post]
func (h *AccountHandler) HideAccount(c echo.Context) error {
	actor, err := getActorFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	accountID, err := uuid.Parse(c.Param("accountId"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid account ID"))
	}

	account, err := h.accountService.Hide(actor, accountID)
	if err != nil {
		return h.mapAccountErr(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewAccountResponse(account, actor))
}

// RestoreAccount brings a hidden account back into view
// @Summary Restore account
// @Description Restore a hidden account. Bank-linked accounts with a revoked connection must be re-linked before restoring.
// @Tags Accounts
// @Security BearerAuth
// @Produce json
// @Param accountId path string true "Account ID (UUID)"
// @Success 200 {object} dto.AccountResponse "Restored account details"
// @Failure 400 {object} errors.ErrorResponse "ACCOUNT_005 - Only hidden accounts can be restored"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 403 {object} errors.ErrorResponse "ACCOUNT_002 - Account belongs to another scope"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Failure 409 {object} errors.ErrorResponse "CONNECTION_001 - Bank connection must be re-linked first"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /accounts/{accountId}/restore [post]
func (h *AccountHandler) RestoreAccount(c echo.Context) error {
	actor, err := getActorFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	accountID, err := uuid.Parse(c.Param("accountId"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid account ID"))
	}

	account, err := h.accountService.Restore(actor, accountID)
	if err != nil {
		return h.mapAccountErr(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewAccountResponse(account, actor))
}

// SyncAccount triggers a provider refresh for a bank-linked account
// @Summary Sync account
// @Description Request a balance refresh from the account's provider. Manual accounts cannot be synced.
// @Tags Accounts
// @Security BearerAuth
// @Produce json
// @Param accountId path string true "Account ID (UUID)"
// @Success 200 {object} dto.AccountResponse "Account after sync"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid account ID format"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 403 {object} errors.ErrorResponse "SYNC_001 - Manual accounts cannot be synced, ACCOUNT_002 - Account belongs to another scope"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /accounts/{accountId}/sync [post]
func (h *AccountHandler) SyncAccount(c echo.Context) error {
	actor, err := getActorFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	accountID, err := uuid.Parse(c.Param("accountId"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid account ID"))
	}

	account, err := h.accountService.Sync(actor, accountID)
	if err != nil {
		return h.mapAccountErr(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewAccountResponse(account, actor))
}

// GetDeletionEligibility reports whether an account can be deleted
// @Summary Check deletion eligibility
// @Description Report whether an account can be permanently deleted and list the transfer links that would block it
// @Tags Accounts
// @Security BearerAuth
// @Produce json
// @Param accountId path string true "Account ID (UUID)"
// @Success 200 {object} dto.DeletionEligibilityResponse "Deletion eligibility"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid account ID format"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 403 {object} errors.ErrorResponse "ACCOUNT_002 - Account belongs to another scope"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /accounts/{accountId}/deletion-eligibility [get]
func (h *AccountHandler) GetDeletionEligibility(c echo.Context) error {
	actor, err := getActorFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	accountID, err := uuid.Parse(c.Param("accountId"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid account ID"))
	}

	eligibility, err := h.accountService.CheckDeletionEligibility(actor, accountID)
	if err != nil {
		return h.mapAccountErr(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewDeletionEligibilityResponse(eligibility))
}

// GetRestoreEligibility reports whether a hidden account can be restored
// @Summary Check restore eligibility
// @Description Report whether a hidden account can be restored and whether the bank connection must be re-linked first
// @Tags Accounts
// @Security BearerAuth
// @Produce json
// @Param accountId path string true "Account ID (UUID)"
// @Success 200 {object} dto.RestoreEligibilityResponse "Restore eligibility"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid account ID format"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 403 {object} errors.ErrorResponse "ACCOUNT_002 - Account belongs to another scope"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /accounts/{accountId}/restore-eligibility [get]
func (h *AccountHandler) GetRestoreEligibility(c echo.Context) error {
	actor, err := getActorFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	accountID, err := uuid.Parse(c.Param("accountId"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid account ID"))
	}

	eligibility, err := h.accountService.CheckRestoreEligibility(actor, accountID)
	if err != nil {
		return h.mapAccountErr(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewRestoreEligibilityResponse(eligibility))
}

// mapAccountErr translates service errors into standardized API responses
func (h *AccountHandler) mapAccountErr(c echo.Context, err error) error {
	if blocked, ok := err.(*services.DeletionBlockedError); ok {
		return SendError(c, errors.AccountDeletionBlocked,
			errors.WithMessage(blocked.Error()),
			errors.WithData(dto.NewDeletionEligibilityResponse(blocked.Eligibility)),
		)
	}

	switch err {
	case services.ErrAccountNotFound:
		return SendError(c, errors.AccountNotFound)
	case services.ErrAccessDenied:
		return SendError(c, errors.AccountAccessDenied)
	case services.ErrSyncNotSupported:
		return SendError(c, errors.SyncNotSupported, errors.WithDetails(err.Error()))
	case services.ErrRelinkRequired:
		return SendError(c, errors.ConnectionRelinkRequired, errors.WithDetails(err.Error()))
	case services.ErrCircuitBreakerOpen, services.ErrProviderUnavailable:
		return SendError(c, errors.ConnectionUnavailable, errors.WithDetails(err.Error()))
	case models.ErrScopeViolation, models.ErrOwnerRequired:
		return SendError(c, errors.AccountScopeViolation, errors.WithDetails(err.Error()))
	case models.ErrAccountAlreadyHidden:
		return SendError(c, errors.AccountAlreadyHidden)
	case models.ErrAccountNotHidden:
		return SendError(c, errors.AccountNotHidden)
	}

	return SendSystemError(c, err)
}
