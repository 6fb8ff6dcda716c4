package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		email   string
		wantErr error
	}{
		{"u1@x.com", nil},
		{"first.last@sub.example.org", nil},
		{"", ErrEmptyEmail},
		{"invalidemail", ErrInvalidEmail},
		{"@x.com", ErrInvalidEmail},
		{"u1@", ErrInvalidEmail},
		{"u1@com", ErrInvalidEmail},
		{"u1@x.", ErrInvalidEmail},
		{"u1@@x.com", ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestNewUserValidate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, NewUser{Email: "u1@x.com", PasswordHash: "hash"}.Validate())
	assert.ErrorIs(t, NewUser{Email: "u1@x.com"}.Validate(), ErrEmptyPassword)
	assert.ErrorIs(t, NewUser{PasswordHash: "hash"}.Validate(), ErrEmptyEmail)
}

func TestUserValidate(t *testing.T) {
	t.Parallel()

	u := &User{ID: 1, Email: "u1@x.com", Role: RoleUser}
	assert.NoError(t, u.Validate())

	u.ID = 0
	assert.ErrorIs(t, u.Validate(), ErrInvalidID)

	u.ID = 1
	u.CompanyID = -1
	assert.ErrorIs(t, u.Validate(), ErrNegativeNumber)
}

func TestValidatePassword(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidatePassword("pw123"))
	assert.ErrorIs(t, ValidatePassword(""), ErrEmptyPassword)
	assert.ErrorIs(t, ValidatePassword(strings.Repeat("a", MaxPasswordLength+1)), ErrPasswordTooLong)
}

func TestValidationErrorMessage(t *testing.T) {
	err := NewValidationError("email", "is required", ErrEmptyEmail)
	assert.Equal(t, "email is required", err.Error())
	assert.True(t, errors.Is(err, ErrEmptyEmail))
}
