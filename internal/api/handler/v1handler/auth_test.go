package v1handler_test

import (
	"net/http"
	"testing"

	"auditor/pkg/auth"
	"auditor/pkg/serrors"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSignUp(t *testing.T) {
	deps, router := newTestRouter(t)

	deps.auth.EXPECT().SignUp(gomock.Any(), "jane@example.com", "correct horse battery", "Jane Doe").
		Return(&auth.Session{Token: "fresh-token", User: deps.user}, nil)

	rec := doRequest(t, router, http.MethodPost, "/auth/signup",
		`{"email":"jane@example.com","password":"correct horse battery","fullName":"Jane Doe"}`, false)
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	require.Equal(t, "fresh-token", body["token"])
	user := body["user"].(map[string]any)
	require.Equal(t, "jane@example.com", user["email"])
}

func TestSignUp_DuplicateEmail(t *testing.T) {
	deps, router := newTestRouter(t)

	deps.auth.EXPECT().SignUp(gomock.Any(), "jane@example.com", "correct horse battery", "").
		Return(nil, serrors.With(serrors.ErrConflict, "an account with this email already exists"))

	rec := doRequest(t, router, http.MethodPost, "/auth/signup",
		`{"email":"jane@example.com","password":"correct horse battery"}`, false)
	require.Equal(t, http.StatusConflict, rec.Code)
	require.Equal(t, "CONFLICT", errorCode(t, rec))
}

func TestSignUp_MalformedBody(t *testing.T) {
	_, router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/auth/signup", `{"email": 42`, false)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "BAD_REQUEST", errorCode(t, rec))
}

func TestSessionState(t *testing.T) {
	anonymousActions := []any{"try-demo", "login", "sign-up"}

	t.Run("anonymous visitor", func(t *testing.T) {
		_, router := newTestRouter(t)

		rec := doRequest(t, router, http.MethodGet, "/auth/session", "", false)
		require.Equal(t, http.StatusOK, rec.Code)

		body := decodeBody(t, rec)
		require.Equal(t, false, body["authenticated"])
		require.Equal(t, anonymousActions, body["actions"])
		require.NotContains(t, body, "displayName")
		require.NotContains(t, body, "user")
	})

	t.Run("signed in", func(t *testing.T) {
		deps, router := newTestRouter(t)
		deps.user.FullName = "Jane Doe"
		deps.expectAuth()

		rec := doRequest(t, router, http.MethodGet, "/auth/session", "", true)
		require.Equal(t, http.StatusOK, rec.Code)

		body := decodeBody(t, rec)
		require.Equal(t, true, body["authenticated"])
		require.Equal(t, []any{"start-analyzing", "view-dashboard"}, body["actions"])
		require.Equal(t, "Jane Doe", body["displayName"])
		user := body["user"].(map[string]any)
		require.Equal(t, "jane@example.com", user["email"])
	})

	t.Run("greeting falls back to the email local part", func(t *testing.T) {
		deps, router := newTestRouter(t)
		deps.expectAuth()

		rec := doRequest(t, router, http.MethodGet, "/auth/session", "", true)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "jane", decodeBody(t, rec)["displayName"])
	})

	t.Run("invalid token is treated as anonymous", func(t *testing.T) {
		deps, router := newTestRouter(t)
		deps.auth.EXPECT().Verify(gomock.Any(), testToken).
			Return(nil, serrors.With(serrors.ErrUnauthorized, "invalid token"))

		rec := doRequest(t, router, http.MethodGet, "/auth/session", "", true)
		require.Equal(t, http.StatusOK, rec.Code)

		body := decodeBody(t, rec)
		require.Equal(t, false, body["authenticated"])
		require.Equal(t, anonymousActions, body["actions"])
	})
}

func TestSignIn(t *testing.T) {
	deps, router := newTestRouter(t)

	deps.auth.EXPECT().SignIn(gomock.Any(), "jane@example.com", "correct horse battery").
		Return(&auth.Session{Token: "fresh-token", User: deps.user}, nil)

	rec := doRequest(t, router, http.MethodPost, "/auth/signin",
		`{"email":"jane@example.com","password":"correct horse battery"}`, false)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "fresh-token", decodeBody(t, rec)["token"])
}

func TestSignIn_BadCredentials(t *testing.T) {
	deps, router := newTestRouter(t)

	deps.auth.EXPECT().SignIn(gomock.Any(), "jane@example.com", "wrong").
		Return(nil, serrors.With(serrors.ErrUnauthorized, "invalid email or password"))

	rec := doRequest(t, router, http.MethodPost, "/auth/signin",
		`{"email":"jane@example.com","password":"wrong"}`, false)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	body := decodeBody(t, rec)
	errObj := body["error"].(map[string]any)
	// the message stays inline so the modal can show it next to the form
	require.Equal(t, "invalid email or password", errObj["message"])
}
