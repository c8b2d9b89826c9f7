package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserID uniquely identifies a user within the system.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type UserID uuid.UUID

// String returns the canonical UUID form.
func (id UserID) String() string { return uuid.UUID(id).String() }

// MarshalText implements encoding.TextMarshaler so IDs serialize as UUID
// strings rather than byte arrays.
func (id UserID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *UserID) UnmarshalText(text []byte) error {
	parsed, err := uuid.Parse(string(text))
	if err != nil {
		return err
	}
	*id = UserID(parsed)

	return nil
}

// User is the account read model exposed by the auth provider.
type User struct {
	// ID is the unique identifier of the user.
	ID UserID `json:"id"`
	// Email is the sign-in address, unique per account.
	Email string `json:"email"`
	// FullName is the optional display name supplied at sign-up.
	FullName string `json:"full_name,omitempty"`

	// PasswordHash is the bcrypt hash of the user's password. Never serialized.
	PasswordHash string `json:"-"`

	// CreatedAt is the account creation time.
	CreatedAt time.Time `json:"createdAt"`
}
