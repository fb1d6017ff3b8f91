package services

import (
	"log/slog"

	"walletwise/internal/models"
	"walletwise/internal/repositories"

	"github.com/google/uuid"
)

// auditRecorder persists lifecycle events. Audit failures are logged and
// swallowed; they never fail the audited operation.
type auditRecorder struct {
	auditRepo repositories.AuditLogRepositoryInterface
	logger    *slog.Logger
}

// NewAuditRecorder creates the audit-trail writer
func NewAuditRecorder(auditRepo repositories.AuditLogRepositoryInterface, logger *slog.Logger) AuditRecorderInterface {
	return &auditRecorder{
		auditRepo: auditRepo,
		logger:    logger,
	}
}

func (a *auditRecorder) RecordAccountEvent(actor models.Actor, action string, accountID uuid.UUID, metadata models.JSONBMap) {
	log := &models.AuditLog{
		ActorID:    actor.UserID,
		Action:     action,
		Resource:   "account",
		ResourceID: accountID.String(),
		Metadata:   metadata,
	}

	if actor.FamilyID != nil {
		log.SetMetadata("family_id", actor.FamilyID.String())
	}

	if err := a.auditRepo.Create(log); err != nil {
		a.logger.Error("failed to create audit log",
			"error", err,
			"action", action,
			"account_id", accountID)
	}
}
