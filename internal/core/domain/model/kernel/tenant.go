package kernel

import (
	"errors"
	"fmt"

	"freight/internal/pkg/errs"
)

// ErrTenantContextIsNotConstructed is returned when a TenantContext was not
// created through NewTenantContext.
var ErrTenantContextIsNotConstructed = errors.New("TenantContext must be created via NewTenantContext")

// Role identifies the caller's role within a tenant. Authentication happens
// outside this system; the role arrives with the already-verified identity.
type Role int

const (
	// RoleUnknown is an invalid, uninitialized role.
	RoleUnknown Role = iota

	// RoleAdmin may perform every operation.
	RoleAdmin

	// RoleDispatcher manages loads and dispatches.
	RoleDispatcher

	// RoleAccounting manages rates and invoices.
	RoleAccounting

	// RoleViewer has read-only access.
	RoleViewer
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:    "UNKNOWN",
		RoleAdmin:      "ADMIN",
		RoleDispatcher: "DISPATCHER",
		RoleAccounting: "ACCOUNTING",
		RoleViewer:     "VIEWER",
	}
}

// RoleFromString parses the wire representation of a role.
func RoleFromString(s string) (Role, error) {
	for role, str := range getRoleStrings() {
		if role != RoleUnknown && str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

// String returns the wire representation of the role.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate reports whether the role is one of the defined values.
func (r Role) Validate() error {
	switch r {
	case RoleAdmin, RoleDispatcher, RoleAccounting, RoleViewer:
		return nil
	case RoleUnknown:
	}
	return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
}

// TenantContext carries the authenticated caller identity through every
// operation: the owning tenant, the acting user, and the user's role. It is
// passed explicitly as a value, never stored in ambient state. Every store
// access is filtered by TenantID; omitting it is the only path to
// cross-tenant leakage, so the context is required to construct any command
// or query.
type TenantContext struct {
	tenantID UUID
	userID   UUID
	role     Role

	guard bool
}

// NewTenantContext creates a validated tenant context. TenantID and UserID
// must be valid UUIDs and the role must be a defined value.
func NewTenantContext(tenantID, userID UUID, role Role) (TenantContext, error) {
	if err := errors.Join(
		tenantID.Validate(),
		userID.Validate(),
		role.Validate(),
	); err != nil {
		return TenantContext{}, err
	}

	return TenantContext{
		tenantID: tenantID,
		userID:   userID,
		role:     role,
		guard:    true,
	}, nil
}

// Validate ensures the context was created via NewTenantContext.
func (t TenantContext) Validate() error {
	if !t.guard {
		return ErrTenantContextIsNotConstructed
	}
	return nil
}

// TenantID returns the owning tenant's identifier.
func (t TenantContext) TenantID() UUID {
	return t.tenantID
}

// UserID returns the acting user's identifier.
func (t TenantContext) UserID() UUID {
	return t.userID
}

// Role returns the caller's role.
func (t TenantContext) Role() Role {
	return t.role
}
