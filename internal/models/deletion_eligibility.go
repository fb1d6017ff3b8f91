package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransferBlocker describes one linked transfer preventing permanent
// deletion: the account's own transfer leg plus the account on the other
// side of the group.
type TransferBlocker struct {
	TransactionID     uuid.UUID       `json:"transaction_id"`
	TransferGroupID   uuid.UUID       `json:"transfer_group_id"`
	LinkedAccountID   uuid.UUID       `json:"linked_account_id"`
	LinkedAccountName string          `json:"linked_account_name"`
	Amount            decimal.Decimal `json:"amount"`
	TransferRole      string          `json:"transfer_role"`
	Date              time.Time       `json:"date"`
	Description       string          `json:"description"`
}

// DeletionEligibility is the non-destructive pre-check result for permanent
// deletion. Hiding is always available.
type DeletionEligibility struct {
	CanDelete           bool              `json:"can_delete"`
	CanHide             bool              `json:"can_hide"`
	LinkedTransferCount int               `json:"linked_transfer_count"`
	Blockers            []TransferBlocker `json:"blockers"`
}

const (
	ConnectionStatusHealthy = "healthy"
	ConnectionStatusRevoked = "revoked"
	ConnectionStatusUnknown = "unknown"
)

// RestoreEligibility reports whether a hidden account can be restored
// directly or requires re-linking its provider connection first.
type RestoreEligibility struct {
	CanRestore       bool   `json:"can_restore"`
	RequiresRelink   bool   `json:"requires_relink"`
	ConnectionStatus string `json:"connection_status,omitempty"`
	Reason           string `json:"reason,omitempty"`
}
