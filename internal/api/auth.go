package api

import (
	"context"
	"net/http"

	clienterrors "github.com/fintrackhq/fintrack/client/internal/errors"
	"github.com/fintrackhq/fintrack/client/internal/types"
)

// Login authenticates with email/password and persists the returned token
// and user into the session.
func Login(ctx context.Context, d *Dispatcher, email, password string) (*types.AuthResponse, error) {
	var resp types.AuthResponse
	err := d.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Body:   types.LoginRequest{Email: email, Password: password},
	}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.Token != "" || resp.User != nil {
		if err := d.Session.Save(resp.Token, resp.User); err != nil {
			return nil, err
		}
	}
	return &resp, nil
}

// Register creates a new account. The backend response is returned verbatim;
// nothing is persisted locally.
func Register(ctx context.Context, d *Dispatcher, email, password, confirmPassword string) (*types.AuthResponse, error) {
	var resp types.AuthResponse
	err := d.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   "/auth/register",
		Body:   types.RegisterRequest{Email: email, Password: password, ConfirmPassword: confirmPassword},
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Logout notifies the backend and clears the local session. The session is
// cleared on every exit path, network failure included.
func Logout(ctx context.Context, d *Dispatcher) error {
	defer d.Session.Clear()
	return d.Do(ctx, Request{Method: http.MethodPost, Path: "/auth/logout"}, nil)
}

// CurrentUser fetches the authenticated user's profile. It fails locally,
// without issuing a request, when no token is cached.
func CurrentUser(ctx context.Context, d *Dispatcher) (*types.User, error) {
	if !d.Session.Authenticated() {
		return nil, clienterrors.ErrUnauthenticated
	}
	var u types.User
	if err := d.Do(ctx, Request{Method: http.MethodGet, Path: "/auth/me"}, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
