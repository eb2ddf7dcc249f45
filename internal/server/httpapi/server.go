// Package httpapi exposes the auth service as a JSON API over HTTP using gin.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/feelflow/internal/logging"
	"github.com/dmitrijs2005/feelflow/internal/server/models"
	"github.com/dmitrijs2005/feelflow/internal/server/services"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const shutdownTimeout = 5 * time.Second

// AuthService is the part of services.UserService the handlers need.
type AuthService interface {
	SignUp(ctx context.Context, email, password string) (*services.AuthResult, error)
	Login(ctx context.Context, email, password string) (*services.AuthResult, error)
	VerifyToken(ctx context.Context, token string) (*models.UserView, error)
	Logout(ctx context.Context) error
}

type HTTPServer struct {
	address  string
	users    AuthService
	logger   logging.Logger
	validate *validator.Validate
	engine   *gin.Engine
}

func NewHTTPServer(address string, l logging.Logger, us AuthService) *HTTPServer {
	s := &HTTPServer{
		address:  address,
		users:    us,
		logger:   l.With("module", "http_server"),
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
	s.engine = s.newRouter()
	return s
}

// Handler returns the routed gin engine.
func (s *HTTPServer) Handler() http.Handler {
	return s.engine
}

func (s *HTTPServer) newRouter() *gin.Engine {
	r := gin.New()
	r.Use(s.recoveryMiddleware(), s.loggingMiddleware(), corsMiddleware())

	api := r.Group("/api")
	api.GET("/health", s.Health)

	authGroup := api.Group("/auth")
	authGroup.POST("/signup", s.SignUp)
	authGroup.POST("/login", s.Login)
	authGroup.POST("/verify", s.Verify)
	authGroup.POST("/logout", s.Logout)

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully. A listen
// failure is returned after the shutdown goroutine has exited.
func (s *HTTPServer) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "HTTP server shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		cancel()
		<-done
		return err
	}

	<-done
	return nil
}
