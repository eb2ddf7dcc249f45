package validation

import (
	"errors"
	"testing"

	"github.com/dmitrijs2005/feelflow/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "user@example.com", NormalizeEmail("  User@Example.COM \n"))
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		email string
		ok    bool
	}{
		{"user@example.com", true},
		{"first.last+tag@sub.example.co", true},
		{"a_b%c-d@x-y.io", true},
		{"not-an-email", false},
		{"user@example", false},
		{"user@example.c", false},
		{"@example.com", false},
		{"user@@example.com", false},
		{"us er@example.com", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, common.ErrorInvalidFormat)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		password string
		reason   string
	}{
		{"short1", "Password must be at least 8 characters long"},
		{"Short1", "Password must be at least 8 characters long"},
		{"alllowercase1", "Password must contain at least one uppercase letter"},
		{"NoDigitsHere", "Password must contain at least one number"},
		{"ValidPass1", ""},
		{"Password²", ""},
		{"Password₃", ""},
		{"Password①", ""},
		{"Password٣", ""},
		{"Password½", "Password must contain at least one number"},
		{"PasswordⅫ", "Password must contain at least one number"},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.reason == "" {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, common.ErrorWeakPassword)

			var wp *common.WeakPasswordError
			require.True(t, errors.As(err, &wp))
			assert.Equal(t, tt.reason, wp.Reason)
		})
	}
}
