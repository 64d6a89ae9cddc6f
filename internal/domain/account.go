package domain

import "time"

type Account struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type Role string

const (
	RoleNone     Role = ""
	RoleAdmin    Role = "admin"
	RoleAlumni   Role = "alumni"
	RoleEmployer Role = "employer"
)

// OrDefault maps a missing assignment to alumni.
func (r Role) OrDefault() Role {
	if r == RoleNone {
		return RoleAlumni
	}
	return r
}

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleAlumni, RoleEmployer:
		return true
	default:
		return false
	}
}

// RoleAssignment is one entry of the append-only role log. The most recent
// entry for an account is its effective role.
type RoleAssignment struct {
	ID         int64     `json:"id"`
	AccountID  string    `json:"account_id"`
	Role       Role      `json:"role"`
	AssignedBy string    `json:"assigned_by"`
	AssignedAt time.Time `json:"assigned_at"`
}

// SystemActor is recorded as AssignedBy for the default role given at sign-up.
const SystemActor = "system"
