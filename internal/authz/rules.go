// Package authz centralizes the capability rules that gate every ticket
// and user action. The predicates are pure: no I/O, no errors, and a nil
// identity always yields false. Callers use them to hide or disable
// actions up front; the backend re-checks every mutation, so a passing
// local check is UX gating, not security.
package authz

import "github.com/utpal5/Ticketingsystem/internal/domain"

// Scope is the breadth of tickets a view requests.
type Scope string

const (
	ScopeOwn      Scope = "OWN"
	ScopeAssigned Scope = "ASSIGNED"
	ScopeAll      Scope = "ALL"
)

// HasAnyRole reports whether the identity is present and holds one of
// the allowed roles.
func HasAnyRole(identity *domain.Identity, allowed ...domain.Role) bool {
	if identity == nil {
		return false
	}
	for _, role := range allowed {
		if identity.Role == role {
			return true
		}
	}
	return false
}

// CanView reports whether the identity may request the given ticket
// scope. Every authenticated identity sees its own tickets; assigned
// tickets require a support role; the full listing is admin-only.
func CanView(identity *domain.Identity, scope Scope) bool {
	if identity == nil {
		return false
	}
	switch scope {
	case ScopeOwn:
		return true
	case ScopeAssigned:
		return identity.Role == domain.RoleSupportAgent || identity.Role == domain.RoleAdmin
	case ScopeAll:
		return identity.Role == domain.RoleAdmin
	}
	return false
}

// CanChangeStatus reports whether the identity may change the ticket's
// status: admins always, support agents only on tickets assigned to
// them. An unassigned ticket never satisfies the agent branch.
func CanChangeStatus(identity *domain.Identity, ticket *domain.Ticket) bool {
	if identity == nil || ticket == nil {
		return false
	}
	if identity.Role == domain.RoleAdmin {
		return true
	}
	return identity.Role == domain.RoleSupportAgent &&
		ticket.AssignedTo != nil && ticket.AssignedTo.ID == identity.ID
}

// CanAssign reports whether the identity may set the ticket's assignee.
func CanAssign(identity *domain.Identity, ticket *domain.Ticket) bool {
	if identity == nil || ticket == nil {
		return false
	}
	return identity.Role == domain.RoleAdmin
}

// CanComment reports whether the identity may comment on the ticket.
// Creators keep comment rights on their own tickets regardless of who
// the ticket is assigned to.
func CanComment(identity *domain.Identity, ticket *domain.Ticket) bool {
	if identity == nil || ticket == nil {
		return false
	}
	if identity.Role == domain.RoleAdmin {
		return true
	}
	if identity.Role == domain.RoleSupportAgent &&
		ticket.AssignedTo != nil && ticket.AssignedTo.ID == identity.ID {
		return true
	}
	return ticket.CreatedBy.ID == identity.ID
}

// CanManageUsers reports whether the identity may create, re-role, or
// delete accounts.
func CanManageUsers(identity *domain.Identity) bool {
	return identity != nil && identity.Role == domain.RoleAdmin
}
