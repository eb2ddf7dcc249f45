// Package repomanager owns the storage backend chosen at startup and
// vends the repositories built on it.
package repomanager

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/feelflow/internal/server/config"
	"github.com/dmitrijs2005/feelflow/internal/server/repositories/users"
)

// RepositoryManager exposes the repositories of one backend and its lifecycle.
type RepositoryManager interface {
	Users() users.Repository
	Ping(ctx context.Context) error
	Close() error
}

// New builds the manager for cfg.StorageMode.
func New(ctx context.Context, cfg *config.Config) (RepositoryManager, error) {
	switch cfg.StorageMode {
	case config.StorageMemory, "":
		return NewInMemoryRepositoryManager(), nil
	case config.StoragePostgres:
		return NewPostgresRepositoryManager(ctx, cfg.DatabaseDSN)
	default:
		return nil, fmt.Errorf("unknown storage mode %q", cfg.StorageMode)
	}
}

// InMemoryRepositoryManager backs everything with process memory.
type InMemoryRepositoryManager struct {
	users *users.InMemoryRepository
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{users: users.NewInMemoryRepository()}
}

func (m *InMemoryRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *InMemoryRepositoryManager) Ping(context.Context) error {
	return nil
}

func (m *InMemoryRepositoryManager) Close() error {
	return nil
}
