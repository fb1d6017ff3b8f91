package models

import (
	"errors"

	"github.com/google/uuid"
)

const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

var (
	// ErrScopeViolation is returned when a caller provides both or neither of
	// the user/family scopes without admin override.
	ErrScopeViolation = errors.New("exactly one of user or family scope must be provided")
)

// OwnerKind discriminates the two legal ownership variants.
type OwnerKind int

const (
	OwnerUser OwnerKind = iota
	OwnerFamily
)

// Owner is the ownership sum type: an account belongs to exactly one user or
// exactly one family. Using a single tagged value keeps the invalid
// "both/neither" combination out of the domain entirely.
type Owner struct {
	Kind OwnerKind
	ID   uuid.UUID
}

// NewUserOwner builds an individual owner.
func NewUserOwner(userID uuid.UUID) Owner {
	return Owner{Kind: OwnerUser, ID: userID}
}

// NewFamilyOwner builds a shared family owner.
func NewFamilyOwner(familyID uuid.UUID) Owner {
	return Owner{Kind: OwnerFamily, ID: familyID}
}

// Actor describes the caller of a lifecycle operation: an optional user
// scope, an optional family scope, and a role. Authorization rules live on
// this type so services and handlers share one implementation.
type Actor struct {
	UserID   *uuid.UUID
	FamilyID *uuid.UUID
	Role     string
}

// IsAdmin returns true for actors with global access.
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// Scope captures a resolved query scope. Global is only ever true for
// admin actors that supplied no explicit owner scope.
type Scope struct {
	UserID   *uuid.UUID
	FamilyID *uuid.UUID
	Global   bool
}

// ResolveScope enforces the XOR scoping rule for list and summary
// operations: exactly one of user/family must be present, except that an
// admin with neither gets global access.
func (a Actor) ResolveScope() (Scope, error) {
	hasUser := a.UserID != nil
	hasFamily := a.FamilyID != nil

	if hasUser && hasFamily {
		return Scope{}, ErrScopeViolation
	}

	if !hasUser && !hasFamily {
		if a.IsAdmin() {
			return Scope{Global: true}, nil
		}
		return Scope{}, ErrScopeViolation
	}

	return Scope{UserID: a.UserID, FamilyID: a.FamilyID}, nil
}

// OwnerScope resolves the actor into a concrete Owner for account creation.
// Creation always needs an explicit owner; there is no global variant.
func (a Actor) OwnerScope() (Owner, error) {
	scope, err := a.ResolveScope()
	if err != nil {
		return Owner{}, err
	}

	switch {
	case scope.UserID != nil:
		return NewUserOwner(*scope.UserID), nil
	case scope.FamilyID != nil:
		return NewFamilyOwner(*scope.FamilyID), nil
	default:
		return Owner{}, ErrScopeViolation
	}
}

// CanAccess implements the single-record ownership check: the actor owns the
// account through its user or family scope, or holds the admin role.
func (a Actor) CanAccess(account *Account) bool {
	if a.IsAdmin() {
		return true
	}

	if account.UserID != nil && a.UserID != nil && *account.UserID == *a.UserID {
		return true
	}

	if account.FamilyID != nil && a.FamilyID != nil && *account.FamilyID == *a.FamilyID {
		return true
	}

	return false
}
