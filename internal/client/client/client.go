// Package client is a typed HTTP client for the feelflow auth API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"
)

// User is the public user view returned by the API.
type User struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// AuthResult is returned by signup and login.
type AuthResult struct {
	Token string
	User  User
}

// Client is the API surface the CLI services use.
type Client interface {
	SignUp(ctx context.Context, email string, password []byte) (*AuthResult, error)
	Login(ctx context.Context, email string, password []byte) (*AuthResult, error)
	Verify(ctx context.Context, token string) (*User, error)
	Logout(ctx context.Context) error
	Health(ctx context.Context) error
}

type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token"`
	User    *User  `json:"user"`
	Status  string `json:"status"`
}

type HTTPClient struct {
	baseURL      string
	http         *http.Client
	healthPolicy func() retry.Backoff
}

// NewHTTPClient targets baseURL (e.g. "http://127.0.0.1:5000").
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		healthPolicy: func() retry.Backoff {
			return retry.WithMaxRetries(2, retry.NewExponential(200*time.Millisecond))
		},
	}
}

func (c *HTTPClient) SignUp(ctx context.Context, email string, password []byte) (*AuthResult, error) {
	return c.authenticate(ctx, "/api/auth/signup", email, password)
}

func (c *HTTPClient) Login(ctx context.Context, email string, password []byte) (*AuthResult, error) {
	return c.authenticate(ctx, "/api/auth/login", email, password)
}

func (c *HTTPClient) Verify(ctx context.Context, token string) (*User, error) {
	env, err := c.post(ctx, "/api/auth/verify", map[string]string{"token": token})
	if err != nil {
		return nil, err
	}
	if env.User == nil {
		return nil, fmt.Errorf("verify: response without user")
	}
	return env.User, nil
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	_, err := c.post(ctx, "/api/auth/logout", nil)
	return err
}

// Health probes GET /api/health, retrying transport failures a couple of
// times since the server may still be starting.
func (c *HTTPClient) Health(ctx context.Context) error {
	return retry.Do(ctx, c.healthPolicy(), func(ctx context.Context) error {
		env, err := c.do(ctx, http.MethodGet, "/api/health", nil)
		if err != nil {
			if errors.Is(err, ErrUnavailable) {
				return retry.RetryableError(err)
			}
			return err
		}
		if env.Status != "OK" {
			return fmt.Errorf("health: unexpected status %q", env.Status)
		}
		return nil
	})
}

func (c *HTTPClient) authenticate(ctx context.Context, path, email string, password []byte) (*AuthResult, error) {
	env, err := c.post(ctx, path, map[string]string{"email": email, "password": string(password)})
	if err != nil {
		return nil, err
	}
	if env.Token == "" || env.User == nil {
		return nil, fmt.Errorf("%s: incomplete response", path)
	}
	return &AuthResult{Token: env.Token, User: *env.User}, nil
}

func (c *HTTPClient) post(ctx context.Context, path string, body any) (*envelope, error) {
	return c.do(ctx, http.MethodPost, path, body)
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body any) (*envelope, error) {
	var payload bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&payload).Encode(body); err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &payload)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	env := &envelope{}
	decodeErr := json.NewDecoder(resp.Body).Decode(env)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: env.Message}
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("decode response: %w", decodeErr)
	}
	return env, nil
}
