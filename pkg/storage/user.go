package storage

import (
	"context"

	"auditor/pkg/domain"
)

// UserStorage defines account persistence operations. Emails are matched
// case-insensitively by implementations.
type UserStorage interface {
	// StoreUser inserts a user and returns the stored row. Implementations
	// must fail on duplicate emails rather than upsert.
	StoreUser(ctx context.Context, user domain.User) (*domain.User, error)
	// UserByEmail fetches a user by email. Returns nil when not found.
	UserByEmail(ctx context.Context, email string) (*domain.User, error)
	// UserByID fetches a user by ID. Returns nil when not found.
	UserByID(ctx context.Context, ID domain.UserID) (*domain.User, error)
}
