// Package cli is the feelflow command-line client: an interactive REPL
// plus one-shot commands ("client login").
package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/dmitrijs2005/feelflow/internal/client/client"
	"github.com/dmitrijs2005/feelflow/internal/client/config"
	"github.com/dmitrijs2005/feelflow/internal/client/repositories/token"
	"github.com/dmitrijs2005/feelflow/internal/client/services"
)

type App struct {
	config      *config.Config
	authService services.AuthService
	reader      *bufio.Reader
	out         io.Writer
}

func NewApp(c *config.Config) *App {
	apiClient := client.NewHTTPClient(c.ServerURL, c.RequestTimeout)
	tokens := token.NewFileRepository(c.TokenDir)

	return &App{
		config:      c,
		authService: services.NewAuthService(apiClient, tokens),
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
	}
}

// Run executes args[0] as a single command when given, otherwise starts the REPL.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) > 0 {
		_, err := dispatch(ctx, a, args[0])
		return err
	}

	printlnFn("Feelflow CLI (type 'help' for commands)")
	runREPL(ctx, a, a.reader)
	return nil
}
