package permission

import (
	"fmt"
	"sort"

	uservo "custodian/internal/domain/user/valueobjects"
	"custodian/internal/shared/errors"
)

// RuleKey identifies one rule in the table.
type RuleKey struct {
	Kind   ObjectKind
	Action Action
}

// Registry maps (object kind, action) pairs to their predicate. The table
// is built once at startup; looking up an unregistered pair is a
// programming error, not a denial.
type Registry struct {
	rules map[RuleKey]Checker
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{rules: make(map[RuleKey]Checker)}
}

// Register installs the checker for the (kind, action) pair, replacing any
// previous entry.
func (r *Registry) Register(kind ObjectKind, action Action, checker Checker) {
	r.rules[RuleKey{Kind: kind, Action: action}] = checker
}

// Lookup returns the checker for the pair. A missing entry means a
// controller invoked an action nobody registered a rule for.
func (r *Registry) Lookup(kind ObjectKind, action Action) (Checker, error) {
	checker, ok := r.rules[RuleKey{Kind: kind, Action: action}]
	if !ok {
		return nil, errors.NewInternalError(
			fmt.Sprintf("no permission rule registered for (%s, %s)", kind, action))
	}
	return checker, nil
}

// Keys returns the registered rule keys in a stable order.
func (r *Registry) Keys() []RuleKey {
	keys := make([]RuleKey, 0, len(r.rules))
	for k := range r.rules {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Kind != keys[j].Kind {
			return keys[i].Kind < keys[j].Kind
		}
		return keys[i].Action < keys[j].Action
	})
	return keys
}

// Validate asserts that every required key is present. Called at startup so
// a missing registration fails the boot, not a request.
func (r *Registry) Validate(required []RuleKey) error {
	var missing []RuleKey
	for _, key := range required {
		if _, ok := r.rules[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("permission registry is missing %d rule(s), first: (%s, %s)",
			len(missing), missing[0].Kind, missing[0].Action)
	}
	return nil
}

// RequiredRules lists every (kind, action) pair the HTTP handlers dispatch.
func RequiredRules() []RuleKey {
	return []RuleKey{
		{KindCase, ActionView}, {KindCase, ActionCreate}, {KindCase, ActionEdit},
		{KindCase, ActionDelete}, {KindCase, ActionSetStatus}, {KindCase, ActionAuthorise},
		{KindCase, ActionClose}, {KindCase, ActionArchive}, {KindCase, ActionManageRoles},

		{KindTask, ActionView}, {KindTask, ActionCreate}, {KindTask, ActionEdit},
		{KindTask, ActionSetStatus}, {KindTask, ActionAssignSelf}, {KindTask, ActionAssignOther},
		{KindTask, ActionRequestQA}, {KindTask, ActionCompleteQA}, {KindTask, ActionAddNote},

		{KindEvidence, ActionView}, {KindEvidence, ActionCreate}, {KindEvidence, ActionEdit},
		{KindEvidence, ActionSetStatus}, {KindEvidence, ActionArchive},
		{KindEvidence, ActionCheckIn}, {KindEvidence, ActionCheckOut},

		{KindUser, ActionView}, {KindUser, ActionCreate}, {KindUser, ActionEdit},
		{KindUser, ActionManageRoles},
	}
}

// DefaultRegistry builds the production rule table. The administrator role
// leads every Or clause except case authorisation, which stays with the
// case's named authoriser alone.
func DefaultRegistry(c *Checkers) *Registry {
	r := NewRegistry()

	admin := c.Admin()
	caseEditable := And(Not(c.ArchivedCase()), Not(c.RejectedCase()))

	// Case rules. Visibility splits three ways: unapproved cases are seen
	// only by their requester and authorisers; approved private cases only
	// by directly assigned people; approved non-private cases by any role
	// holder.
	r.Register(KindCase, ActionView, Or(
		admin,
		And(Not(c.ApprovedCase()), Or(c.ActiveRole(uservo.RoleAuthoriser), c.RequesterForCase())),
		And(c.ApprovedCase(), c.PrivateCase(), c.AssignedToCase()),
		And(c.ApprovedCase(), Not(c.PrivateCase()), c.AnyGlobalRole()),
	))
	r.Register(KindCase, ActionCreate, Or(
		admin,
		c.ActiveRole(uservo.RoleCaseManager),
		c.ActiveRole(uservo.RoleRequester),
	))
	r.Register(KindCase, ActionEdit, Or(admin, And(caseEditable, c.CaseManagerForCase())))
	r.Register(KindCase, ActionSetStatus, Or(admin, And(caseEditable, c.CaseManagerForCase())))
	r.Register(KindCase, ActionClose, Or(admin, And(caseEditable, c.CaseManagerForCase())))
	r.Register(KindCase, ActionArchive, Or(admin, And(c.ClosedCase(), c.CaseManagerForCase())))
	r.Register(KindCase, ActionManageRoles, Or(admin, And(caseEditable, c.CaseManagerForCase())))
	r.Register(KindCase, ActionDelete, admin)
	// Authorisation is a single-person check: no admin bypass.
	r.Register(KindCase, ActionAuthorise, And(c.PendingCase(), c.AuthoriserForCase()))

	// Task rules. Editability is derived transitively from the parent
	// case's status, never from the task's own.
	r.Register(KindTask, ActionView, Or(
		admin,
		And(c.PrivateCase(), Or(c.AssignedToTask(), c.AssignedToCase())),
		And(Not(c.PrivateCase()), c.AnyGlobalRole()),
	))
	r.Register(KindTask, ActionCreate, Or(admin, And(caseEditable, c.CaseManagerForCase())))
	r.Register(KindTask, ActionEdit, Or(
		admin,
		And(caseEditable, Or(c.CaseManagerForCase(), c.InvestigatorForTask())),
	))
	r.Register(KindTask, ActionSetStatus, Or(
		admin,
		And(caseEditable, Or(c.CaseManagerForCase(), c.InvestigatorForTask())),
	))
	r.Register(KindTask, ActionAssignSelf, Or(
		admin,
		And(c.ActiveRole(uservo.RoleInvestigator), c.NotStartedTask()),
	))
	r.Register(KindTask, ActionAssignOther, Or(admin, And(caseEditable, c.CaseManagerForCase())))
	r.Register(KindTask, ActionRequestQA, Or(admin, And(caseEditable, c.InvestigatorForTask())))
	r.Register(KindTask, ActionCompleteQA, Or(admin, c.QAForTask()))
	r.Register(KindTask, ActionAddNote, Or(
		admin,
		And(c.NotesAllowed(), Or(c.InvestigatorForTask(), c.QAForTask(), c.CaseManagerForCase())),
	))

	// Evidence rules. Unassociated evidence has no parent gate and is
	// never private.
	r.Register(KindEvidence, ActionView, Or(
		admin,
		And(c.PrivateCase(), c.AssignedToCase()),
		And(Not(c.PrivateCase()), c.AnyGlobalRole()),
	))
	r.Register(KindEvidence, ActionCreate, Or(
		admin,
		c.ActiveRole(uservo.RoleInvestigator),
		c.ActiveRole(uservo.RoleCaseManager),
	))
	evidenceMutable := And(
		c.ParentCaseEditable(),
		Or(c.CaseManagerForCase(), c.ActiveRole(uservo.RoleInvestigator)),
	)
	r.Register(KindEvidence, ActionEdit, Or(admin, evidenceMutable))
	r.Register(KindEvidence, ActionSetStatus, Or(admin, evidenceMutable))
	r.Register(KindEvidence, ActionArchive, Or(admin, evidenceMutable))
	r.Register(KindEvidence, ActionCheckIn, Or(admin, evidenceMutable))
	r.Register(KindEvidence, ActionCheckOut, Or(admin, evidenceMutable))

	// User rules.
	r.Register(KindUser, ActionView, Or(admin, c.Self(), c.ManagerOfUser()))
	r.Register(KindUser, ActionCreate, admin)
	r.Register(KindUser, ActionEdit, Or(admin, c.Self()))
	r.Register(KindUser, ActionManageRoles, admin)

	return r
}
