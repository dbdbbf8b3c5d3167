package records

import (
	"fmt"

	"github.com/UnknownOlympus/hera/internal/models"
)

// The rules below are the single source of truth for who may touch
// which record stream. Handlers never compare role strings themselves.

// canReadAny reports whether the role may read records of any employee.
func canReadAny(role models.Role) bool {
	return role == models.RoleAdmin || role == models.RoleManager
}

// canDecideLeave reports whether the role may approve or reject leave.
func canDecideLeave(role models.Role) bool {
	return role == models.RoleAdmin || role == models.RoleManager
}

// canAssignTask reports whether the role may assign tasks.
func canAssignTask(role models.Role) bool {
	return role == models.RoleAdmin || role == models.RoleManager
}

// canCreatePayroll reports whether the role may issue payroll slips.
func canCreatePayroll(role models.Role) bool {
	return role == models.RoleAdmin
}

// scopeFilter resolves the effective employee filter for a list
// operation. Admins and managers read whatever they ask for; everyone
// else is pinned to their own employee id regardless of the requested
// filter. An account without a linked employee cannot read scoped
// streams at all.
func scopeFilter(identity models.Identity, requested *models.ID) (*models.ID, error) {
	if canReadAny(identity.Role) {
		return requested, nil
	}
	if identity.EmployeeID == nil {
		return nil, fmt.Errorf("%w: account has no linked employee", models.ErrForbidden)
	}
	if requested != nil && *requested != *identity.EmployeeID {
		return nil, fmt.Errorf("%w: cannot read records of another employee", models.ErrForbidden)
	}
	return identity.EmployeeID, nil
}

// requireOwnEmployee checks that a write targets the caller's own
// employee record unless the role may act on any employee.
func requireOwnEmployee(identity models.Identity, target models.ID) error {
	if canReadAny(identity.Role) {
		return nil
	}
	if identity.EmployeeID == nil || *identity.EmployeeID != target {
		return fmt.Errorf("%w: cannot write records of another employee", models.ErrForbidden)
	}
	return nil
}
