// Package services contains the CLI's application services. AuthService
// drives the remote API and keeps the session token on disk.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/feelflow/internal/client/client"
	"github.com/dmitrijs2005/feelflow/internal/client/repositories/token"
	"github.com/dmitrijs2005/feelflow/internal/common"
)

// ErrNotLoggedIn is returned by token-bound operations when no token is saved.
var ErrNotLoggedIn = errors.New("not logged in")

// AuthService defines authentication operations for the CLI.
//
//   - SignUp / Login: call the API and save the returned token.
//   - WhoAmI: verify the saved token and return its user.
//   - Logout: acknowledge with the API and drop the saved token.
//   - Ping: server health probe.
type AuthService interface {
	SignUp(ctx context.Context, email string, password []byte) (*client.User, error)
	Login(ctx context.Context, email string, password []byte) (*client.User, error)
	WhoAmI(ctx context.Context) (*client.User, error)
	Logout(ctx context.Context) error
	Ping(ctx context.Context) error
}

type authService struct {
	client client.Client
	tokens token.Repository
}

func NewAuthService(c client.Client, tokens token.Repository) AuthService {
	return &authService{client: c, tokens: tokens}
}

func (s *authService) SignUp(ctx context.Context, email string, password []byte) (*client.User, error) {
	res, err := s.client.SignUp(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return s.keep(ctx, res)
}

func (s *authService) Login(ctx context.Context, email string, password []byte) (*client.User, error) {
	res, err := s.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return s.keep(ctx, res)
}

func (s *authService) keep(ctx context.Context, res *client.AuthResult) (*client.User, error) {
	if err := s.tokens.Save(ctx, res.Token); err != nil {
		return nil, err
	}
	return &res.User, nil
}

// WhoAmI drops a saved token the server reports as expired or invalid.
func (s *authService) WhoAmI(ctx context.Context) (*client.User, error) {
	tok, err := s.tokens.Load(ctx)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, ErrNotLoggedIn
		}
		return nil, err
	}

	u, err := s.client.Verify(ctx, tok)
	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			if delErr := s.tokens.Delete(ctx); delErr != nil {
				return nil, fmt.Errorf("%w (also failed to drop token: %v)", err, delErr)
			}
		}
		return nil, err
	}
	return u, nil
}

// Logout removes the local token even when the server is unreachable;
// tokens are not revoked server-side anyway.
func (s *authService) Logout(ctx context.Context) error {
	apiErr := s.client.Logout(ctx)
	if err := s.tokens.Delete(ctx); err != nil {
		return err
	}
	return apiErr
}

func (s *authService) Ping(ctx context.Context) error {
	return s.client.Health(ctx)
}
