package constants

// Canonical role names. Order matters nowhere; priority lives in the
// identity resolver.
const (
	RoleSuperadmin = "superadmin"
	RoleAdmin      = "admin"
	RoleStaff      = "staff"
	RoleTrainer    = "trainer"
	RoleMember     = "member"
)

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleSuperadmin,
		RoleAdmin,
		RoleStaff,
		RoleTrainer,
		RoleMember,
	}

	ManagementRoles = []string{RoleSuperadmin, RoleAdmin}
	PayrollRoles    = []string{RoleStaff, RoleTrainer}
)

func IsPayrollRole(role string) bool {
	for _, r := range PayrollRoles {
		if r == role {
			return true
		}
	}
	return false
}
