// Package server wires configuration, storage, the auth service and the
// HTTP API together and runs them until the process is told to stop.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/feelflow/internal/cryptox"
	"github.com/dmitrijs2005/feelflow/internal/logging"
	"github.com/dmitrijs2005/feelflow/internal/server/auth"
	"github.com/dmitrijs2005/feelflow/internal/server/config"
	"github.com/dmitrijs2005/feelflow/internal/server/httpapi"
	"github.com/dmitrijs2005/feelflow/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/feelflow/internal/server/services"
	"github.com/gin-gonic/gin"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	repos       repomanager.RepositoryManager
	userService *services.UserService
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)

	repos, err := repomanager.New(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	tokens := auth.NewTokenManager(c.SecretKey, c.TokenValidityDuration)
	hasher := cryptox.NewBcryptHasher(c.PasswordHashCost)
	us := services.NewUserService(repos.Users(), tokens, hasher)

	return &App{config: c, logger: logger, repos: repos, userService: us}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	gin.SetMode(gin.ReleaseMode)

	s := httpapi.NewHTTPServer(app.config.EndpointAddrHTTP, app.logger, app.userService)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run blocks until a termination signal arrives, ctx is cancelled or the
// HTTP server fails, then releases the storage backend.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "storage", app.config.StorageMode)

	if app.config.UsesDefaultSecret() {
		app.logger.Warn(ctx, "Using the built-in token signing secret; set SECRET_KEY before deploying")
	}

	if err := app.repos.Ping(ctx); err != nil {
		app.logger.Error(ctx, "storage is not reachable", "error", err)
		_ = app.repos.Close()
		return
	}

	if n, err := app.userService.UserCount(ctx); err == nil {
		app.logger.Info(ctx, "User store ready", "users", n)
	}

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.repos.Close(); err != nil {
		app.logger.Error(ctx, "storage close error", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
}
