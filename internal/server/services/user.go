// Package services contains server-side business logic. UserService
// implements signup, login, token verification and logout on top of a
// users.Repository, a password hasher and a token manager.
package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/feelflow/internal/common"
	"github.com/dmitrijs2005/feelflow/internal/cryptox"
	"github.com/dmitrijs2005/feelflow/internal/server/models"
	"github.com/dmitrijs2005/feelflow/internal/server/repositories/users"
	"github.com/dmitrijs2005/feelflow/internal/server/validation"
	"github.com/google/uuid"
)

// TokenManager issues and verifies session tokens.
type TokenManager interface {
	Issue(userID string) (string, error)
	Verify(token string) (string, error)
}

// AuthResult is what signup and login hand back to the caller.
type AuthResult struct {
	Token string
	User  models.UserView
}

// UserService provides authentication-related operations:
// - SignUp: validate, create the user, issue a token
// - Login: verify credentials and issue a token
// - VerifyToken: resolve a token back to its user
// - Logout: acknowledge only, tokens are not tracked
type UserService struct {
	users  users.Repository
	tokens TokenManager
	hasher cryptox.PasswordHasher
	now    func() time.Time
	newID  func() string

	dummyOnce sync.Once
	dummyHash []byte
}

func NewUserService(repo users.Repository, tokens TokenManager, hasher cryptox.PasswordHasher) *UserService {
	return &UserService{
		users:  repo,
		tokens: tokens,
		hasher: hasher,
		now:    func() time.Time { return time.Now().UTC() },
		newID:  uuid.NewString,
	}
}

// SignUp registers email/password and returns a session token for the new
// user. Checks run in order and stop at the first failure: missing fields,
// email shape, password strength, email already taken.
func (s *UserService) SignUp(ctx context.Context, email, password string) (*AuthResult, error) {
	email = validation.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, common.ErrorMissingField
	}
	if err := validation.ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash([]byte(password))
	if err != nil {
		return nil, common.ErrorInternal
	}

	user, err := s.users.Create(ctx, &models.User{
		ID:           s.newID(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    s.now(),
		Entries:      []models.Entry{},
	})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorConflict
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return s.issue(user)
}

// Login checks the password of a registered email. Unknown emails and wrong
// passwords both yield common.ErrorInvalidCredentials.
func (s *UserService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = validation.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, common.ErrorMissingField
	}

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// burn a comparison so unknown emails cost as much as wrong passwords
			s.hasher.Compare(s.dummy(), []byte(password))
			return nil, common.ErrorInvalidCredentials
		}
		return nil, common.ErrorInternal
	}

	if !s.hasher.Compare(user.PasswordHash, []byte(password)) {
		return nil, common.ErrorInvalidCredentials
	}

	return s.issue(user)
}

// VerifyToken resolves a session token to the user it was issued for. The
// token is used exactly as received; surrounding whitespace makes it invalid.
func (s *UserService) VerifyToken(ctx context.Context, token string) (*models.UserView, error) {
	if token == "" {
		return nil, common.ErrorMissingField
	}

	userID, err := s.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUserNotFound
		}
		return nil, common.ErrorInternal
	}

	view := user.View()
	return &view, nil
}

// Logout only acknowledges the client's intent to drop its token. Issued
// tokens stay valid until they expire.
func (s *UserService) Logout(ctx context.Context) error {
	return nil
}

// UserCount returns the number of registered users.
func (s *UserService) UserCount(ctx context.Context) (int, error) {
	return s.users.Count(ctx)
}

func (s *UserService) issue(user *models.User) (*AuthResult, error) {
	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return &AuthResult{Token: token, User: user.View()}, nil
}

func (s *UserService) dummy() []byte {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = s.hasher.Hash([]byte(uuid.NewString()))
	})
	return s.dummyHash
}
