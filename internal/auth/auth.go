package auth

import "errors"

// ErrForbidden is returned by usecases when the acting user lacks the
// capability for an operation. Adapters map it to 403.
var ErrForbidden = errors.New("forbidden")

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleLender  Role = "lender"
	RoleAdvisor Role = "advisor"
	RoleGP      Role = "gp"
	// RoleSystem is reserved for in-process callers (scheduler); it is never
	// accepted from request headers.
	RoleSystem Role = "system"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleLender, RoleAdvisor, RoleGP:
		return true
	}
	return false
}

// Actor is the authorization context for one operation. It is built once at
// the edge (actor middleware, or System for scheduled jobs) and passed as an
// explicit value into every usecase call — never read from ambient state.
type Actor struct {
	UserID string
	Role   Role
}

// System returns the actor used by in-process callers such as the
// due-check scheduler.
func System() Actor { return Actor{UserID: "system", Role: RoleSystem} }

func (a Actor) IsSystem() bool { return a.Role == RoleSystem }

func (a Actor) is(roles ...Role) bool {
	for _, r := range roles {
		if a.Role == r {
			return true
		}
	}
	return false
}

// CanOriginate reports whether the actor may create facilities.
func (a Actor) CanOriginate() bool { return a.is(RoleAdmin, RoleLender, RoleAdvisor) }

// CanManageCovenants reports whether the actor may attach or amend covenants.
func (a Actor) CanManageCovenants() bool { return a.is(RoleAdmin, RoleLender) }

// CanRunChecks reports whether the actor may trigger compliance checks.
func (a Actor) CanRunChecks() bool { return a.is(RoleAdmin, RoleLender, RoleSystem) }

// CanDecideDraws reports whether the actor may approve or reject draw requests.
func (a Actor) CanDecideDraws() bool { return a.is(RoleAdmin, RoleLender) }
