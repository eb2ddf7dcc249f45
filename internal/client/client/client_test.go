package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sethvargo/go-retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewHTTPClient(srv.URL+"/", time.Second)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestHTTPClient_SignUp(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/signup", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "a@b.co", req["email"])
		assert.Equal(t, "Password1", req["password"])

		writeJSON(w, http.StatusCreated, map[string]any{
			"success": true,
			"message": "Account created successfully",
			"token":   "tok",
			"user":    map[string]string{"user_id": "u1", "email": "a@b.co"},
		})
	})

	res, err := c.SignUp(context.Background(), "a@b.co", []byte("Password1"))
	require.NoError(t, err)
	assert.Equal(t, "tok", res.Token)
	assert.Equal(t, User{UserID: "u1", Email: "a@b.co"}, res.User)
}

func TestHTTPClient_Login_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		message string
		want    error
	}{
		{"bad request", http.StatusBadRequest, "Email and password are required", ErrBadRequest},
		{"unauthorized", http.StatusUnauthorized, "Invalid email or password", ErrUnauthorized},
		{"conflict", http.StatusConflict, "Email already registered", ErrConflict},
		{"server", http.StatusInternalServerError, "Internal server error", ErrServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, tt.status, map[string]any{"success": false, "message": tt.message})
			})

			_, err := c.Login(context.Background(), "a@b.co", []byte("x"))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.message, apiErr.Error())
		})
	}
}

func TestHTTPClient_Verify(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req["token"] != "good" {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"success": false, "message": "Invalid token"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"user":    map[string]string{"user_id": "u1", "email": "a@b.co"},
		})
	})

	u, err := c.Verify(context.Background(), "good")
	require.NoError(t, err)
	assert.Equal(t, "u1", u.UserID)

	_, err = c.Verify(context.Background(), "bad")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestHTTPClient_Logout(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/logout", r.URL.Path)
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Logged out successfully"})
	})

	assert.NoError(t, c.Logout(context.Background()))
}

func TestHTTPClient_Health(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		writeJSON(w, http.StatusOK, map[string]string{"status": "OK", "message": "Feelflow API is running"})
	})

	assert.NoError(t, c.Health(context.Background()))
}

func TestHTTPClient_Health_NotRetriedOnAPIError(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"success": false, "message": "Internal server error"})
	})

	err := c.Health(context.Background())
	assert.ErrorIs(t, err, ErrServer)
	assert.Equal(t, int32(1), calls.Load())
}

func TestHTTPClient_Health_Unavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewHTTPClient(url, 200*time.Millisecond)
	c.healthPolicy = func() retry.Backoff {
		return retry.WithMaxRetries(2, retry.NewConstant(time.Millisecond))
	}

	err := c.Health(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestHTTPClient_IncompleteAuthResponse(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"success": true})
	})

	_, err := c.Login(context.Background(), "a@b.co", []byte("Password1"))
	assert.Error(t, err)
}
