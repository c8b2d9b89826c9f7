// Package authgate decides which call-to-action set a view renders for the
// current authentication state, and resolves the display name shown next to
// it. It is a pure decision table over an injected read model; credential
// handling belongs to the auth provider.
package authgate

import (
	"strings"

	"auditor/pkg/domain"
)

// Action is a call-to-action a view may render.
type Action string

const (
	ActionTryDemo        Action = "try-demo"
	ActionLogin          Action = "login"
	ActionSignUp         Action = "sign-up"
	ActionStartAnalyzing Action = "start-analyzing"
	ActionViewDashboard  Action = "view-dashboard"
)

// State is the auth read model the gate decides on. Loading is true while the
// provider is still resolving the initial session.
type State struct {
	Loading bool
	User    *domain.User
}

// DecideCallToAction maps an auth state to the actions to render.
// While the session is still loading nothing is rendered, so the user never
// sees a flash of the wrong call-to-action set.
func DecideCallToAction(s State) []Action {
	switch {
	case s.Loading:
		return nil
	case s.User == nil:
		return []Action{ActionTryDemo, ActionLogin, ActionSignUp}
	default:
		return []Action{ActionStartAnalyzing, ActionViewDashboard}
	}
}

// DisplayName resolves the name greeting a signed-in user: full name, then
// the local part of the email address, then the literal "User". The chain is
// part of the product contract and must not be reordered.
func DisplayName(u *domain.User) string {
	if u == nil {
		return "User"
	}
	if name := strings.TrimSpace(u.FullName); name != "" {
		return name
	}
	if u.Email != "" {
		if local, _, ok := strings.Cut(u.Email, "@"); ok && local != "" {
			return local
		}
	}

	return "User"
}
