// Package auth defines the authentication provider contract: account
// creation, credential sign-in and bearer-token verification.
package auth

import (
	"context"

	"auditor/pkg/domain"
)

//go:generate mockgen -package mockauth -source=interface.go -destination=mock/mockauth.go *

// Session is an authenticated session: the signed bearer token plus the
// account it belongs to.
type Session struct {
	// Token is the signed bearer token to present on subsequent requests.
	Token string `json:"token"`
	// User is the authenticated account.
	User *domain.User `json:"user"`
}

// Provider implements account management and token verification.
type Provider interface {
	// SignUp creates a new account and returns a fresh session. Returns a
	// conflict error when the email is already registered.
	SignUp(ctx context.Context, email string, password string, fullName string) (*Session, error)
	// SignIn verifies the credentials and returns a fresh session. Returns an
	// unauthorized error for unknown emails and wrong passwords alike.
	SignIn(ctx context.Context, email string, password string) (*Session, error)
	// Verify checks a bearer token and resolves the account it was issued for.
	// Any invalid, expired or unresolvable token yields an unauthorized error.
	Verify(ctx context.Context, token string) (*domain.User, error)
}
