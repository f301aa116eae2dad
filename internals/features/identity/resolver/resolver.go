package resolver

import (
	"strings"

	"gymku_backend/internals/constants"
)

// Inputs are everything role resolution may look at. Pure data, no I/O;
// the service gathers these and the middleware trusts the outcome.
type Inputs struct {
	MetaRole         string // provider metadata role, already lower-cased ("" when absent)
	EmployeeExists   bool
	EmployeeElevated bool   // the wants-admin-access flag on the employee row
	CachedRole       string // role on the mirrored provider row ("" when no row)
}

// ResolveRole applies the fixed priority order. Total: every combination of
// inputs yields exactly one role, member being the unconditional default.
func ResolveRole(in Inputs) string {
	switch in.MetaRole {
	case constants.RoleSuperadmin:
		return constants.RoleSuperadmin
	case constants.RoleAdmin, constants.RoleStaff:
		return in.MetaRole
	case constants.RoleTrainer:
		return constants.RoleTrainer
	}

	if in.EmployeeExists {
		if in.EmployeeElevated {
			return constants.RoleAdmin
		}
		return constants.RoleStaff
	}

	if in.CachedRole == constants.RoleTrainer {
		return constants.RoleTrainer
	}
	if in.CachedRole != "" {
		return in.CachedRole
	}

	return constants.RoleMember
}

// NameInputs feed display-name resolution.
type NameInputs struct {
	EmployeeName string
	CachedName   string
	ProviderName string
	Email        string
}

// ResolveDisplayName picks the first non-empty candidate, falling back to
// the email local-part.
func ResolveDisplayName(in NameInputs) string {
	for _, candidate := range []string{in.EmployeeName, in.CachedName, in.ProviderName} {
		if s := strings.TrimSpace(candidate); s != "" {
			return s
		}
	}
	if at := strings.Index(in.Email, "@"); at > 0 {
		return in.Email[:at]
	}
	return in.Email
}

// NormalizeEmail lower-cases and trims; the one canonical form used for
// every email comparison in the system.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
