// Package token persists the CLI's session token between runs.
package token

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/feelflow/internal/common"
	"github.com/dmitrijs2005/feelflow/internal/filex"
)

const fileName = "token"

type Repository interface {
	Save(ctx context.Context, token string) error
	Load(ctx context.Context) (string, error)
	Delete(ctx context.Context) error
}

// FileRepository keeps the token in <dir>/token with owner-only permissions.
type FileRepository struct {
	dir string
}

func NewFileRepository(dir string) *FileRepository {
	return &FileRepository{dir: dir}
}

func (r *FileRepository) Save(ctx context.Context, token string) error {
	dir, err := filex.EnsureDir(r.dir)
	if err != nil {
		return err
	}
	if err := filex.WritePrivateFile(filepath.Join(dir, fileName), []byte(token)); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	return nil
}

// Load returns common.ErrorNotFound when no token has been saved.
func (r *FileRepository) Load(ctx context.Context) (string, error) {
	data, err := os.ReadFile(filepath.Join(r.dir, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", common.ErrorNotFound
		}
		return "", fmt.Errorf("load token: %w", err)
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", common.ErrorNotFound
	}
	return token, nil
}

// Delete is a no-op when there is nothing saved.
func (r *FileRepository) Delete(ctx context.Context) error {
	err := os.Remove(filepath.Join(r.dir, fileName))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete token: %w", err)
	}
	return nil
}
