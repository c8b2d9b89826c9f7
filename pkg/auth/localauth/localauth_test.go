package localauth_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"testing"
	"time"

	"auditor/pkg/auth/localauth"
	"auditor/pkg/domain"
	"auditor/pkg/serrors"
	"auditor/pkg/storage"
	mockstorage "auditor/pkg/storage/mock"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const (
	testEmail    = "jane@example.com"
	testPassword = "correct horse battery staple"
)

// helper to generate an RSA key pair and return the private key plus both PEM
// encodings.
func genRSAKeys(tb testing.TB) (*rsa.PrivateKey, string, string) {
	tb.Helper()

	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(tb, err, "failed to generate RSA key")

	privPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(priv),
	})

	pubASN1, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(tb, err, "failed to marshal public key")
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubASN1})

	return priv, string(privPEM), string(pubPEM)
}

func newTestProvider(t *testing.T) (*rsa.PrivateKey, *mockstorage.MockStorage, *localauth.LocalAuth) {
	t.Helper()

	priv, privPEM, pubPEM := genRSAKeys(t)

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)

	provider, err := localauth.New(st, localauth.Options{
		PrivateKey: privPEM,
		PublicKey:  pubPEM,
		TokenTTL:   time.Hour,
	})
	require.NoError(t, err)

	return priv, st, provider
}

func TestNew_InvalidKeys(t *testing.T) {
	_, privPEM, pubPEM := genRSAKeys(t)

	_, err := localauth.New(nil, localauth.Options{PrivateKey: "garbage", PublicKey: pubPEM})
	require.Error(t, err)

	_, err = localauth.New(nil, localauth.Options{PrivateKey: privPEM, PublicKey: "garbage"})
	require.Error(t, err)
}

func TestSignUp_StoresHashAndIssuesToken(t *testing.T) {
	_, st, provider := newTestProvider(t)

	var stored domain.User
	st.EXPECT().UserByEmail(gomock.Any(), testEmail).Return(nil, nil)
	st.EXPECT().StoreUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, user domain.User) (*domain.User, error) {
			require.Equal(t, testEmail, user.Email)
			require.Equal(t, "Jane Doe", user.FullName)
			require.NotEqual(t, testPassword, user.PasswordHash, "password must never be stored in clear")
			require.NoError(t,
				bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(testPassword)))

			stored = user

			return &user, nil
		},
	)

	session, err := provider.SignUp(context.Background(), " jane@example.com ", testPassword, " Jane Doe ")
	require.NoError(t, err)
	require.NotEmpty(t, session.Token)
	require.Equal(t, testEmail, session.User.Email)

	// the issued token resolves back to the stored account
	st.EXPECT().UserByID(gomock.Any(), stored.ID).Return(&stored, nil)
	user, err := provider.Verify(context.Background(), session.Token)
	require.NoError(t, err)
	require.Equal(t, stored.ID, user.ID)
}

func TestSignUp_DuplicateEmail(t *testing.T) {
	_, st, provider := newTestProvider(t)

	st.EXPECT().UserByEmail(gomock.Any(), testEmail).Return(&domain.User{Email: testEmail}, nil)

	_, err := provider.SignUp(context.Background(), testEmail, testPassword, "")
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestSignUp_LostInsertRace(t *testing.T) {
	// a concurrent sign-up can slip in between the pre-check and the insert;
	// the unique-index failure must still surface as a conflict
	_, st, provider := newTestProvider(t)

	st.EXPECT().UserByEmail(gomock.Any(), testEmail).Return(nil, nil)
	st.EXPECT().StoreUser(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("could not store user into pg: %w", storage.ErrDuplicateUser))

	_, err := provider.SignUp(context.Background(), testEmail, testPassword, "")
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestSignUp_RejectsInvalidInput(t *testing.T) {
	testCases := []struct {
		name     string
		email    string
		password string
	}{
		{name: "empty email", email: "", password: testPassword},
		{name: "email without at sign", email: "jane.example.com", password: testPassword},
		{name: "email without local part", email: "@example.com", password: testPassword},
		{name: "email without host", email: "jane@", password: testPassword},
		{name: "short password", email: testEmail, password: "short"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			// no storage expectations, invalid input must fail before any call
			_, _, provider := newTestProvider(t)

			_, err := provider.SignUp(context.Background(), testCase.email, testCase.password, "")
			require.Error(t, err)
			require.ErrorIs(t, err, serrors.ErrBadRequest)
		})
	}
}

func TestSignIn(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	account := &domain.User{
		ID:           domain.UserID(uuid.New()),
		Email:        testEmail,
		PasswordHash: string(hash),
	}

	t.Run("valid credentials", func(t *testing.T) {
		_, st, provider := newTestProvider(t)
		st.EXPECT().UserByEmail(gomock.Any(), testEmail).Return(account, nil)

		session, err := provider.SignIn(context.Background(), testEmail, testPassword)
		require.NoError(t, err)
		require.NotEmpty(t, session.Token)
		require.Equal(t, account.ID, session.User.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, st, provider := newTestProvider(t)
		st.EXPECT().UserByEmail(gomock.Any(), testEmail).Return(account, nil)

		_, err := provider.SignIn(context.Background(), testEmail, "not the password")
		require.Error(t, err)
		require.ErrorIs(t, err, serrors.ErrUnauthorized)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, st, provider := newTestProvider(t)
		st.EXPECT().UserByEmail(gomock.Any(), "nobody@example.com").Return(nil, nil)

		_, err := provider.SignIn(context.Background(), "nobody@example.com", testPassword)
		require.Error(t, err)
		require.ErrorIs(t, err, serrors.ErrUnauthorized)
	})
}

func signTestToken(tb testing.TB, priv *rsa.PrivateKey, sub string, issuedAt time.Time, exp time.Time) string {
	tb.Helper()

	claims := jwt.RegisteredClaims{
		Subject:   sub,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(exp),
		NotBefore: jwt.NewNumericDate(issuedAt),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(priv)
	require.NoError(tb, err, "failed to sign token")

	return signed
}

func TestVerify_ExpiredToken(t *testing.T) {
	priv, _, provider := newTestProvider(t)

	now := time.Now()
	token := signTestToken(t, priv, uuid.NewString(), now.Add(-2*time.Hour), now.Add(-time.Hour))

	_, err := provider.Verify(context.Background(), token)
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestVerify_InvalidSignature(t *testing.T) {
	// token signed with a different key than the provider verifies with
	_, _, provider := newTestProvider(t)
	otherPriv, _, _ := genRSAKeys(t)

	now := time.Now()
	token := signTestToken(t, otherPriv, uuid.NewString(), now, now.Add(time.Hour))

	_, err := provider.Verify(context.Background(), token)
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestVerify_WrongAlgorithm(t *testing.T) {
	_, _, provider := newTestProvider(t)

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err, "failed to sign HS256 token")

	_, err = provider.Verify(context.Background(), token)
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestVerify_InvalidSubject(t *testing.T) {
	priv, _, provider := newTestProvider(t)

	now := time.Now()
	token := signTestToken(t, priv, "not-a-uuid", now, now.Add(time.Hour))

	_, err := provider.Verify(context.Background(), token)
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestVerify_UnknownUser(t *testing.T) {
	priv, st, provider := newTestProvider(t)

	userID := uuid.New()
	now := time.Now()
	token := signTestToken(t, priv, userID.String(), now, now.Add(time.Hour))

	st.EXPECT().UserByID(gomock.Any(), domain.UserID(userID)).Return(nil, nil)

	_, err := provider.Verify(context.Background(), token)
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}
