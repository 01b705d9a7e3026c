// Package user contains the user aggregate. Global roles are an append-only
// toggle log per role name; the active set is derived from the newest entry
// per role. Managers form a tree that the application layer keeps acyclic.
package user

import (
	"fmt"
	"strings"
	"time"

	vo "custodian/internal/domain/user/valueobjects"
)

// RoleEntry is one row of the append-only role toggle log.
type RoleEntry struct {
	Role      vo.Role
	Removed   bool
	ActorID   uint
	Timestamp time.Time
}

type User struct {
	id           uint
	username     string
	forename     string
	surname      string
	email        string
	passwordHash string
	managerID    *uint
	roleLog      []RoleEntry
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUser creates a user with no roles.
func NewUser(username, forename, surname, email, passwordHash string) (*User, error) {
	username = strings.TrimSpace(username)
	if len(username) == 0 {
		return nil, fmt.Errorf("username is required")
	}
	if len(username) > 100 {
		return nil, fmt.Errorf("username exceeds maximum length of 100 characters")
	}
	if len(email) == 0 {
		return nil, fmt.Errorf("email is required")
	}
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid email address")
	}
	if len(passwordHash) == 0 {
		return nil, fmt.Errorf("password hash is required")
	}

	now := time.Now().UTC()
	return &User{
		username:     username,
		forename:     forename,
		surname:      surname,
		email:        email,
		passwordHash: passwordHash,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructUser rebuilds a user from persistence.
func ReconstructUser(
	id uint,
	username, forename, surname, email, passwordHash string,
	managerID *uint,
	roleLog []RoleEntry,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if len(username) == 0 {
		return nil, fmt.Errorf("username is required")
	}

	return &User{
		id:           id,
		username:     username,
		forename:     forename,
		surname:      surname,
		email:        email,
		passwordHash: passwordHash,
		managerID:    managerID,
		roleLog:      roleLog,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Username() string {
	return u.username
}

func (u *User) Forename() string {
	return u.forename
}

func (u *User) Surname() string {
	return u.surname
}

// FullName returns "Forename Surname", falling back to the username.
func (u *User) FullName() string {
	name := strings.TrimSpace(u.forename + " " + u.surname)
	if name == "" {
		return u.username
	}
	return name
}

func (u *User) Email() string {
	return u.email
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) ManagerID() *uint {
	return u.managerID
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

// RoleLog returns a copy of the role toggle log, oldest first.
func (u *User) RoleLog() []RoleEntry {
	log := make([]RoleEntry, len(u.roleLog))
	copy(log, u.roleLog)
	return log
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// HasActiveRole reports whether the newest toggle entry for the role has
// removed == false. A user with no entries for a role is inactive.
func (u *User) HasActiveRole(role vo.Role) bool {
	for i := len(u.roleLog) - 1; i >= 0; i-- {
		if u.roleLog[i].Role == role {
			return !u.roleLog[i].Removed
		}
	}
	return false
}

// ActiveRoles returns the roles currently active on the user.
func (u *User) ActiveRoles() []vo.Role {
	var active []vo.Role
	for _, role := range vo.AllRoles() {
		if u.HasActiveRole(role) {
			active = append(active, role)
		}
	}
	return active
}

// GrantRole appends a granting toggle entry. Granting an already-active
// role makes no change; the return value reports whether an entry was
// appended.
func (u *User) GrantRole(role vo.Role, actorID uint) (bool, error) {
	if !role.IsValid() {
		return false, fmt.Errorf("unknown role: %q", role)
	}
	if u.HasActiveRole(role) {
		return false, nil
	}

	now := time.Now().UTC()
	u.roleLog = append(u.roleLog, RoleEntry{
		Role:      role,
		Removed:   false,
		ActorID:   actorID,
		Timestamp: now,
	})
	u.updatedAt = now
	return true, nil
}

// RevokeRole appends a removing toggle entry. Revoking an inactive role
// makes no change.
func (u *User) RevokeRole(role vo.Role, actorID uint) (bool, error) {
	if !role.IsValid() {
		return false, fmt.Errorf("unknown role: %q", role)
	}
	if !u.HasActiveRole(role) {
		return false, nil
	}

	now := time.Now().UTC()
	u.roleLog = append(u.roleLog, RoleEntry{
		Role:      role,
		Removed:   true,
		ActorID:   actorID,
		Timestamp: now,
	})
	u.updatedAt = now
	return true, nil
}

// SetManager assigns the user's manager. Cycle detection over the manager
// chain is the application layer's job; the aggregate only rejects
// self-management.
func (u *User) SetManager(managerID *uint) error {
	if managerID != nil && *managerID == u.id {
		return fmt.Errorf("a user cannot be their own manager")
	}
	u.managerID = managerID
	u.updatedAt = time.Now().UTC()
	return nil
}

// UpdateDetails edits the describable fields.
func (u *User) UpdateDetails(forename, surname, email string) error {
	if len(email) == 0 {
		return fmt.Errorf("email is required")
	}
	if !strings.Contains(email, "@") {
		return fmt.Errorf("invalid email address")
	}

	u.forename = forename
	u.surname = surname
	u.email = email
	u.updatedAt = time.Now().UTC()
	return nil
}

// ChangePasswordHash replaces the stored password hash.
func (u *User) ChangePasswordHash(hash string) error {
	if len(hash) == 0 {
		return fmt.Errorf("password hash is required")
	}
	u.passwordHash = hash
	u.updatedAt = time.Now().UTC()
	return nil
}
