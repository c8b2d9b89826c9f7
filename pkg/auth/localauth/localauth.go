// Package localauth is the database-backed auth.Provider: bcrypt password
// hashes stored next to the account and RS256-signed bearer tokens.
package localauth

import (
	"context"
	"crypto/rsa"
	"errors"
	"fmt"
	"strings"
	"time"

	"auditor/pkg/auth"
	"auditor/pkg/domain"
	"auditor/pkg/serrors"
	"auditor/pkg/storage"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// minPasswordLength is the shortest password accepted at sign-up.
const minPasswordLength = 8

// Options configures the local auth provider.
type Options struct {
	// PrivateKey is the PEM-encoded RSA private key used to sign tokens.
	PrivateKey string
	// PublicKey is the PEM-encoded RSA public key used to verify tokens.
	PublicKey string
	// TokenTTL is how long issued tokens stay valid.
	TokenTTL time.Duration
}

// LocalAuth implements auth.Provider on top of the user storage.
type LocalAuth struct {
	storage    storage.UserStorage
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
	tokenTTL   time.Duration
}

// Ensure interface compliance.
var _ auth.Provider = (*LocalAuth)(nil)

// New creates a local auth provider. Fails when either PEM key cannot be
// parsed.
func New(st storage.UserStorage, options Options) (*LocalAuth, error) {
	privateKey, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(options.PrivateKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA private key: %w", err)
	}

	publicKey, err := jwt.ParseRSAPublicKeyFromPEM([]byte(options.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}

	return &LocalAuth{
		storage:    st,
		privateKey: privateKey,
		publicKey:  publicKey,
		tokenTTL:   options.TokenTTL,
	}, nil
}

// SignUp implements auth.Provider.
func (l *LocalAuth) SignUp(
	ctx context.Context,
	email string,
	password string,
	fullName string) (*auth.Session, error) {
	email = strings.TrimSpace(email)
	if err := validateCredentials(email, password); err != nil {
		return nil, err
	}

	existing, err := l.storage.UserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("could not check existing user: %w", err)
	}
	if existing != nil {
		return nil, serrors.With(serrors.ErrConflict, "an account with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("could not hash password: %w", err)
	}

	user, err := l.storage.StoreUser(ctx, domain.User{
		ID:           domain.UserID(uuid.New()),
		Email:        email,
		FullName:     strings.TrimSpace(fullName),
		PasswordHash: string(hash),
	})
	if err != nil {
		// two overlapping sign-ups both pass the pre-check; the loser hits the
		// unique email index and still gets a conflict, not an internal error
		if errors.Is(err, storage.ErrDuplicateUser) {
			return nil, serrors.With(serrors.ErrConflict, "an account with this email already exists")
		}

		return nil, fmt.Errorf("could not store user: %w", err)
	}

	return l.newSession(user)
}

// SignIn implements auth.Provider.
func (l *LocalAuth) SignIn(ctx context.Context, email string, password string) (*auth.Session, error) {
	user, err := l.storage.UserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, fmt.Errorf("could not fetch user: %w", err)
	}
	// same failure for unknown email and wrong password, so sign-in does not
	// leak which emails are registered
	if user == nil {
		return nil, serrors.With(serrors.ErrUnauthorized, "invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, serrors.With(serrors.ErrUnauthorized, "invalid email or password")
	}

	return l.newSession(user)
}

// Verify implements auth.Provider.
func (l *LocalAuth) Verify(ctx context.Context, token string) (*domain.User, error) {
	var claims jwt.RegisteredClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}

		return l.publicKey, nil
	})
	if err != nil || !parsed.Valid {
		return nil, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token subject")
	}

	user, err := l.storage.UserByID(ctx, domain.UserID(userID))
	if err != nil {
		return nil, fmt.Errorf("could not fetch user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrUnauthorized, "unknown user")
	}

	return user, nil
}

func (l *LocalAuth) newSession(user *domain.User) (*auth.Session, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   uuid.UUID(user.ID).String(),
		ExpiresAt: jwt.NewNumericDate(now.Add(l.tokenTTL)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(l.privateKey)
	if err != nil {
		return nil, fmt.Errorf("could not sign token: %w", err)
	}

	return &auth.Session{Token: signed, User: user}, nil
}

func validateCredentials(email string, password string) error {
	local, host, found := strings.Cut(email, "@")
	if !found || local == "" || host == "" {
		return serrors.With(serrors.ErrBadRequest, "invalid email address")
	}
	if len(password) < minPasswordLength {
		return serrors.With(serrors.ErrBadRequest,
			"password must be at least %d characters", minPasswordLength)
	}

	return nil
}
