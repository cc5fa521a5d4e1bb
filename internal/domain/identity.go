package domain

import "time"

// Role enumerates account privilege levels. The set is closed: every
// identity holds exactly one of these three values.
type Role string

const (
	RoleUser         Role = "USER"
	RoleSupportAgent Role = "SUPPORT_AGENT"
	RoleAdmin        Role = "ADMIN"
)

// Valid reports whether the role is one of the three known values.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleSupportAgent, RoleAdmin:
		return true
	}
	return false
}

// IsSupport reports whether the role may be assigned tickets.
func (r Role) IsSupport() bool {
	return r == RoleSupportAgent || r == RoleAdmin
}

// Identity is an authenticated account record.
type Identity struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// FullName joins first and last name for display.
func (i Identity) FullName() string {
	if i.FirstName == "" {
		return i.LastName
	}
	if i.LastName == "" {
		return i.FirstName
	}
	return i.FirstName + " " + i.LastName
}
