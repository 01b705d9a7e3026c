package valueobjects

import "fmt"

// Role is a global role a user may hold. Roles are toggles with history,
// not set memberships: a role is active iff the most recent toggle entry
// for it has removed == false.
type Role string

const (
	RoleAdministrator Role = "administrator"
	RoleCaseManager   Role = "case_manager"
	RoleRequester     Role = "requester"
	RoleAuthoriser    Role = "authoriser"
	RoleInvestigator  Role = "investigator"
	RoleQA            Role = "qa"
)

var validRoles = map[Role]bool{
	RoleAdministrator: true,
	RoleCaseManager:   true,
	RoleRequester:     true,
	RoleAuthoriser:    true,
	RoleInvestigator:  true,
	RoleQA:            true,
}

// String returns the string representation.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the role is a member of the closed enumeration.
func (r Role) IsValid() bool {
	return validRoles[r]
}

// ParseRole converts a string into a Role. An unknown name is a programming
// error and fails loudly.
func ParseRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", fmt.Errorf("unknown role: %q", s)
	}
	return role, nil
}

// AllRoles returns every member of the enumeration.
func AllRoles() []Role {
	return []Role{
		RoleAdministrator, RoleCaseManager, RoleRequester,
		RoleAuthoriser, RoleInvestigator, RoleQA,
	}
}
