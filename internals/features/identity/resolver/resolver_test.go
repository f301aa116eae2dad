package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gymku_backend/internals/constants"
)

func TestResolveRole_PriorityOrder(t *testing.T) {
	tests := []struct {
		name string
		in   Inputs
		want string
	}{
		{"meta superadmin wins over everything", Inputs{MetaRole: "superadmin", EmployeeExists: true, EmployeeElevated: false, CachedRole: "trainer"}, "superadmin"},
		{"meta admin wins over employee record", Inputs{MetaRole: "admin", EmployeeExists: true, EmployeeElevated: false}, "admin"},
		{"meta staff wins over elevated employee", Inputs{MetaRole: "staff", EmployeeExists: true, EmployeeElevated: true}, "staff"},
		{"meta trainer wins over employee record", Inputs{MetaRole: "trainer", EmployeeExists: true, EmployeeElevated: true}, "trainer"},
		{"elevated employee becomes admin", Inputs{EmployeeExists: true, EmployeeElevated: true, CachedRole: "trainer"}, "admin"},
		{"plain employee becomes staff", Inputs{EmployeeExists: true, CachedRole: "trainer"}, "staff"},
		{"cached trainer without employee", Inputs{CachedRole: "trainer"}, "trainer"},
		{"any cached role without employee", Inputs{CachedRole: "member"}, "member"},
		{"cached admin carried forward", Inputs{CachedRole: "admin"}, "admin"},
		{"nothing at all defaults to member", Inputs{}, "member"},
		{"unknown meta role falls through", Inputs{MetaRole: "janitor"}, "member"},
		{"unknown meta role with employee", Inputs{MetaRole: "janitor", EmployeeExists: true}, "staff"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ResolveRole(tc.in))
		})
	}
}

// Every combination of inputs must land on exactly one role and never panic:
// the priority order is total.
func TestResolveRole_Totality(t *testing.T) {
	metaRoles := []string{"superadmin", "admin", "staff", "trainer", "", "weird"}
	cachedRoles := []string{"trainer", "admin", "member", ""}
	bools := []bool{true, false}

	for _, meta := range metaRoles {
		for _, exists := range bools {
			for _, elevated := range bools {
				for _, cached := range cachedRoles {
					got := ResolveRole(Inputs{
						MetaRole:         meta,
						EmployeeExists:   exists,
						EmployeeElevated: elevated,
						CachedRole:       cached,
					})
					assert.Contains(t, constants.AllRoles, got,
						"meta=%q exists=%v elevated=%v cached=%q", meta, exists, elevated, cached)
				}
			}
		}
	}
}

func TestResolveDisplayName(t *testing.T) {
	tests := []struct {
		name string
		in   NameInputs
		want string
	}{
		{"employee name first", NameInputs{EmployeeName: "Asha Rao", CachedName: "A.", ProviderName: "asha", Email: "asha@gym.io"}, "Asha Rao"},
		{"cached next", NameInputs{CachedName: "A. Rao", ProviderName: "asha", Email: "asha@gym.io"}, "A. Rao"},
		{"provider next", NameInputs{ProviderName: "asha", Email: "asha@gym.io"}, "asha"},
		{"email local-part last", NameInputs{Email: "asha@gym.io"}, "asha"},
		{"whitespace-only names skipped", NameInputs{EmployeeName: "  ", Email: "asha@gym.io"}, "asha"},
		{"email without at sign", NameInputs{Email: "asha"}, "asha"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ResolveDisplayName(tc.in))
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "asha@gym.io", NormalizeEmail("  Asha@Gym.IO "))
}
