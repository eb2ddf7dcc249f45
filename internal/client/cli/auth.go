package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/feelflow/internal/client/client"
	"github.com/dmitrijs2005/feelflow/internal/cryptox"
)

type credentialsFn func(ctx context.Context, email string, password []byte) (*client.User, error)

func (a *App) askCredentials(ctx context.Context, call credentialsFn) (*client.User, error) {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return nil, err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		return nil, err
	}
	defer cryptox.WipeByteArray(password)

	return call(ctx, email, password)
}

func (a *App) SignUp(ctx context.Context) error {
	u, err := a.askCredentials(ctx, a.authService.SignUp)
	if err != nil {
		return describe(err)
	}
	printlnFn("Account created. Signed in as", u.Email)
	return nil
}

func (a *App) Login(ctx context.Context) error {
	u, err := a.askCredentials(ctx, a.authService.Login)
	if err != nil {
		return describe(err)
	}
	printlnFn("Logged in as", u.Email)
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	u, err := a.authService.WhoAmI(ctx)
	if err != nil {
		return describe(err)
	}
	printlnFn("Signed in as", u.Email, "(id "+u.UserID+")")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return describe(err)
	}
	printlnFn("Logged out")
	return nil
}

func (a *App) Health(ctx context.Context) error {
	if err := a.authService.Ping(ctx); err != nil {
		return describe(err)
	}
	printlnFn("Server is up")
	return nil
}

// describe swaps transport noise for a short hint; API errors already
// carry the server's message.
func describe(err error) error {
	if errors.Is(err, client.ErrUnavailable) {
		return fmt.Errorf("%w (is the server running? check -u)", client.ErrUnavailable)
	}
	return err
}
