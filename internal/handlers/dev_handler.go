package handlers

import (
	"net/http"

	"walletwise/internal/dto"
	"walletwise/internal/errors"
	"walletwise/internal/services"

	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints
// These endpoints should only be registered in non-production environments
type DevHandler struct {
	sampleData services.SampleDataServiceInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(sampleData services.SampleDataServiceInterface) *DevHandler {
	return &DevHandler{sampleData: sampleData}
}

// SeedDemoData populates the actor's scope with realistic demo accounts
//
// Method: POST /api/v1/dev/seed
// Authentication: Required
// Environment: Development only
//
// Creates one account per account type with plausible balances, plus a
// pair of linked transfer transactions so deletion gating can be
// exercised against real data.
//
// Success Response: 201 Created
//   - message: Success message
//   - accounts: The seeded accounts
//
// Error Responses:
//   - 400: Ambiguous ownership scope
//   - 401: Unauthorized
//   - 500: Internal server error
func (h *DevHandler) SeedDemoData(c echo.Context) error {
	actor, err := getActorFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	owner, err := actor.OwnerScope()
	if err != nil {
		return SendError(c, errors.AccountScopeViolation, errors.WithDetails(err.Error()))
	}

	accounts, err := h.sampleData.SeedDemoData(owner)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":  "demo data seeded successfully",
		"accounts": dto.NewAccountListResponse(accounts, actor),
	})
}
