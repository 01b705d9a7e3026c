package valueobjects

import "fmt"

// Kind distinguishes which object type a role assignment binds to.
type Kind string

const (
	KindCase Kind = "case"
	KindTask Kind = "task"
)

// String returns the string representation.
func (k Kind) String() string {
	return string(k)
}

// IsValid checks if the kind is valid.
func (k Kind) IsValid() bool {
	return k == KindCase || k == KindTask
}

// Role is a per-object role slot. Principal and secondary are independent
// single-holder slots, not a priority ordering.
type Role string

const (
	RolePrincipalCaseManager Role = "principal_case_manager"
	RoleSecondaryCaseManager Role = "secondary_case_manager"
	RoleRequester            Role = "requester"
	RoleAuthoriser           Role = "authoriser"

	RolePrincipalInvestigator Role = "principal_investigator"
	RoleSecondaryInvestigator Role = "secondary_investigator"
	RolePrincipalQA           Role = "principal_qa"
	RoleSecondaryQA           Role = "secondary_qa"
)

var caseRoles = map[Role]bool{
	RolePrincipalCaseManager: true,
	RoleSecondaryCaseManager: true,
	RoleRequester:            true,
	RoleAuthoriser:           true,
}

var taskRoles = map[Role]bool{
	RolePrincipalInvestigator: true,
	RoleSecondaryInvestigator: true,
	RolePrincipalQA:           true,
	RoleSecondaryQA:           true,
}

// String returns the string representation.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the role names a known slot of either kind.
func (r Role) IsValid() bool {
	return caseRoles[r] || taskRoles[r]
}

// ValidFor checks if the role belongs to the given object kind.
func (r Role) ValidFor(kind Kind) bool {
	switch kind {
	case KindCase:
		return caseRoles[r]
	case KindTask:
		return taskRoles[r]
	}
	return false
}

// ParseRole converts a string into a Role, validating it against the kind.
// Unknown names are programming errors and fail loudly.
func ParseRole(s string, kind Kind) (Role, error) {
	role := Role(s)
	if !role.ValidFor(kind) {
		return "", fmt.Errorf("unknown %s role: %q", kind, s)
	}
	return role, nil
}

// CaseRoles returns the case role slots.
func CaseRoles() []Role {
	return []Role{RolePrincipalCaseManager, RoleSecondaryCaseManager, RoleRequester, RoleAuthoriser}
}

// TaskRoles returns the task role slots.
func TaskRoles() []Role {
	return []Role{RolePrincipalInvestigator, RoleSecondaryInvestigator, RolePrincipalQA, RoleSecondaryQA}
}

// InvestigatorRoles returns the two investigator slots.
func InvestigatorRoles() []Role {
	return []Role{RolePrincipalInvestigator, RoleSecondaryInvestigator}
}

// QARoles returns the two QA slots.
func QARoles() []Role {
	return []Role{RolePrincipalQA, RoleSecondaryQA}
}
