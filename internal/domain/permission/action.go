package permission

// ObjectKind identifies the type of object a rule applies to.
type ObjectKind string

const (
	KindCase     ObjectKind = "case"
	KindTask     ObjectKind = "task"
	KindEvidence ObjectKind = "evidence"
	KindUser     ObjectKind = "user"
)

// String returns the string representation.
func (k ObjectKind) String() string {
	return string(k)
}

// Action names a controller-level operation gated by the rule table.
type Action string

const (
	ActionView        Action = "view"
	ActionCreate      Action = "create"
	ActionEdit        Action = "edit"
	ActionDelete      Action = "delete"
	ActionSetStatus   Action = "set_status"
	ActionAuthorise   Action = "authorise"
	ActionClose       Action = "close"
	ActionArchive     Action = "archive"
	ActionAssignSelf  Action = "assign_self"
	ActionAssignOther Action = "assign_other"
	ActionRequestQA   Action = "request_qa"
	ActionCompleteQA  Action = "complete_qa"
	ActionAddNote     Action = "add_note"
	ActionCheckIn     Action = "check_in"
	ActionCheckOut    Action = "check_out"
	ActionManageRoles Action = "manage_roles"
)

// String returns the string representation.
func (a Action) String() string {
	return string(a)
}
