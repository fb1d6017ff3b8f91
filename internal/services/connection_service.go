package services

import (
	"errors"
	"log/slog"
	"strings"

	"walletwise/internal/models"
)

// ErrProviderUnavailable is returned when the provider cannot answer a
// status check at all, as opposed to answering with a bad status.
var ErrProviderUnavailable = errors.New("provider status unavailable")

// Provider error markers that indicate the banking item's credentials were
// revoked and the account must be re-linked. Plaid reports
// ITEM_LOGIN_REQUIRED; SaltEdge marks the connection inactive.
var revocationMarkers = []string{
	"ITEM_LOGIN_REQUIRED",
	"ACCESS_NOT_GRANTED",
	"connection revoked",
	"connection inactive",
}

// Provider error markers that mean the status check itself failed: the
// institution or the provider is down, so connection health is unknowable
// right now. These feed the circuit breaker.
var unavailableMarkers = []string{
	"INSTITUTION_DOWN",
	"INSTITUTION_NOT_RESPONDING",
	"PLANNED_MAINTENANCE",
	"provider unavailable",
}

// connectionService implements ConnectionServiceInterface. The provider
// round-trip is stubbed: connection health is derived from the last sync
// error the provider wrote to the account. A circuit breaker guards the
// path so a wedged provider check does not get hammered.
type connectionService struct {
	breaker CircuitBreakerInterface
	logger  *slog.Logger
}

// NewConnectionService creates the provider-connection health checker
func NewConnectionService(breaker CircuitBreakerInterface, logger *slog.Logger) ConnectionServiceInterface {
	return &connectionService{
		breaker: breaker,
		logger:  logger,
	}
}

// Status reports the connection health for an account. Manual accounts
// have no connection and always report healthy.
func (s *connectionService) Status(account *models.Account) (string, error) {
	if account.IsManualSource() {
		return models.ConnectionStatusHealthy, nil
	}

	if s.breaker.IsOpen() {
		s.logger.Warn("provider status check short-circuited",
			"account_id", account.ID,
			"source", account.Source)
		return models.ConnectionStatusUnknown, ErrCircuitBreakerOpen
	}

	status, err := s.checkProvider(account)
	if err != nil {
		s.breaker.RecordFailure()
		s.logger.Warn("provider status check failed",
			"account_id", account.ID,
			"source", account.Source,
			"error", err)
		return models.ConnectionStatusUnknown, err
	}
	s.breaker.RecordSuccess()

	return status, nil
}

func (s *connectionService) checkProvider(account *models.Account) (string, error) {
	if account.SyncError == nil {
		return models.ConnectionStatusHealthy, nil
	}

	syncError := strings.ToLower(*account.SyncError)
	for _, marker := range unavailableMarkers {
		if strings.Contains(syncError, strings.ToLower(marker)) {
			return models.ConnectionStatusUnknown, ErrProviderUnavailable
		}
	}
	for _, marker := range revocationMarkers {
		if strings.Contains(syncError, strings.ToLower(marker)) {
			return models.ConnectionStatusRevoked, nil
		}
	}

	// A sync error that is not a revocation (timeouts, stale credentials
	// being refreshed) does not block restore.
	return models.ConnectionStatusHealthy, nil
}
