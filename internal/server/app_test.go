package server

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/feelflow/internal/cryptox"
	"github.com/dmitrijs2005/feelflow/internal/logging"
	"github.com/dmitrijs2005/feelflow/internal/server/auth"
	"github.com/dmitrijs2005/feelflow/internal/server/config"
	"github.com/dmitrijs2005/feelflow/internal/server/repositories/users"
	"github.com/dmitrijs2005/feelflow/internal/server/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	c := &config.Config{}
	c.LoadDefaults()
	c.EndpointAddrHTTP = "127.0.0.1:0"
	c.PasswordHashCost = 4
	c.LogLevel = "error"
	return c
}

func TestNewApp_Memory(t *testing.T) {
	app, err := NewApp(context.Background(), testConfig())
	require.NoError(t, err)
	assert.NotNil(t, app.userService)
	assert.NotNil(t, app.repos)
}

func TestNewApp_UnknownStorage(t *testing.T) {
	c := testConfig()
	c.StorageMode = "tape"

	_, err := NewApp(context.Background(), c)
	assert.ErrorContains(t, err, "storage init error")
}

func TestApp_RunStopsWithContext(t *testing.T) {
	app, err := NewApp(context.Background(), testConfig())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		app.Run(ctx)
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

type downRepos struct {
	users  users.Repository
	closed bool
}

func (d *downRepos) Users() users.Repository        { return d.users }
func (d *downRepos) Ping(ctx context.Context) error { return errors.New("connection refused") }
func (d *downRepos) Close() error {
	d.closed = true
	return nil
}

func TestApp_RunStopsWhenStorageIsDown(t *testing.T) {
	repos := &downRepos{users: users.NewInMemoryRepository()}
	app := &App{
		config: testConfig(),
		logger: logging.NewNopLogger(),
		repos:  repos,
		userService: services.NewUserService(repos.users,
			auth.NewTokenManager("k", time.Hour), cryptox.NewBcryptHasher(4)),
	}

	done := make(chan struct{})
	go func() {
		app.Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("Run did not return when storage ping failed")
	}
	assert.True(t, repos.closed)
}
