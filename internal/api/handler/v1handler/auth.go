package v1handler

import (
	"net/http"

	"auditor/internal/authgate"
	"auditor/pkg/domain"

	"github.com/go-faster/jx"
)

// decodeBufSize bounds the decoder's read buffer for request bodies.
const decodeBufSize = 4096

type credentialsRequest struct {
	email    string
	password string
	fullName string
}

func decodeCredentials(r *http.Request) (credentialsRequest, error) {
	var req credentialsRequest

	d := jx.Decode(r.Body, decodeBufSize)
	err := d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "email":
			req.email, err = d.Str()
		case "password":
			req.password, err = d.Str()
		case "fullName":
			req.fullName, err = d.Str()
		default:
			err = d.Skip()
		}

		return err
	})

	return req, err
}

// sessionStateView tells a client which call-to-action set to render and how
// to greet the visitor, before any screen-specific data loads.
type sessionStateView struct {
	Authenticated bool              `json:"authenticated"`
	DisplayName   string            `json:"displayName,omitempty"`
	Actions       []authgate.Action `json:"actions"`
	User          *domain.User      `json:"user,omitempty"`
}

// SessionState resolves the optional bearer token into the visitor's
// call-to-action set and greeting. An absent or invalid token yields the
// anonymous state rather than an error; this endpoint never rejects.
func (h *Handler) SessionState(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var user *domain.User
	if token, ok := bearerToken(r); ok {
		if u, err := h.deps.Auth.Verify(ctx, token); err == nil {
			user = u
		}
	}

	view := sessionStateView{
		Authenticated: user != nil,
		Actions:       authgate.DecideCallToAction(authgate.State{User: user}),
		User:          user,
	}
	if user != nil {
		view.DisplayName = authgate.DisplayName(user)
	}

	h.writeJSON(ctx, w, http.StatusOK, view)
}

// SignUp creates a new account and returns a fresh session token.
func (h *Handler) SignUp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, err := decodeCredentials(r)
	if err != nil {
		h.writeError(ctx, w, badBody(err))

		return
	}

	session, err := h.deps.Auth.SignUp(ctx, req.email, req.password, req.fullName)
	if err != nil {
		h.writeError(ctx, w, err)

		return
	}

	h.writeJSON(ctx, w, http.StatusCreated, session)
}

// SignIn verifies credentials and returns a fresh session token.
func (h *Handler) SignIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, err := decodeCredentials(r)
	if err != nil {
		h.writeError(ctx, w, badBody(err))

		return
	}

	session, err := h.deps.Auth.SignIn(ctx, req.email, req.password)
	if err != nil {
		h.writeError(ctx, w, err)

		return
	}

	h.writeJSON(ctx, w, http.StatusOK, session)
}
