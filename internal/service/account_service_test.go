package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/jobboard-api/internal/domain"
	"github.com/phrazzld/jobboard-api/internal/service/auth"
	"github.com/phrazzld/jobboard-api/internal/store"
)

func TestRegister(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)

	u := f.register(t, "u1@x.com")
	assert.Equal(t, domain.RoleUser, u.Role)
	assert.NotEqual(t, "pw123", u.PasswordHash)

	_, err := f.accounts.Register(ctx, "u1@x.com", "other")
	assert.ErrorIs(t, err, store.ErrEmailExists)

	_, err = f.accounts.Register(ctx, "not-an-email", "pw123")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = f.accounts.Register(ctx, "u2@x.com", "")
	assert.ErrorIs(t, err, domain.ErrEmptyPassword)
}

func TestLogin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	u := f.register(t, "u1@x.com")

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{name: "valid", email: "u1@x.com", password: "pw123"},
		{name: "wrong password", email: "u1@x.com", password: "pw124", wantErr: auth.ErrWrongPassword},
		{name: "unknown email", email: "nobody@x.com", password: "pw123", wantErr: auth.ErrWrongPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, got, err := f.accounts.Login(ctx, tt.email, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, u.ID, got.ID)

			claims, err := f.tokens.Verify(ctx, token)
			require.NoError(t, err)
			assert.Equal(t, u.ID, claims.UserID)
			assert.Equal(t, domain.RoleUser, claims.Role)
		})
	}
}

func TestLoginAfterDeleteFails(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	u := f.register(t, "u1@x.com")

	require.NoError(t, f.accounts.Delete(ctx, u.ID))
	// Deleting twice is not an error.
	require.NoError(t, f.accounts.Delete(ctx, u.ID))

	_, _, err := f.accounts.Login(ctx, "u1@x.com", "pw123")
	assert.ErrorIs(t, err, auth.ErrWrongPassword)
}

func TestUpdatePasswordAndEmail(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	u := f.register(t, "u1@x.com")
	f.register(t, "u2@x.com")

	require.NoError(t, f.accounts.UpdatePassword(ctx, u.ID, "new-password"))
	_, _, err := f.accounts.Login(ctx, "u1@x.com", "pw123")
	assert.ErrorIs(t, err, auth.ErrWrongPassword)
	_, _, err = f.accounts.Login(ctx, "u1@x.com", "new-password")
	assert.NoError(t, err)

	_, err = f.accounts.UpdateEmail(ctx, u.ID, "u2@x.com")
	assert.ErrorIs(t, err, store.ErrEmailExists)

	updated, err := f.accounts.UpdateEmail(ctx, u.ID, "renamed@x.com")
	require.NoError(t, err)
	assert.Equal(t, "renamed@x.com", updated.Email)

	assert.ErrorIs(t, f.accounts.UpdatePassword(ctx, 999, "pw"), store.ErrUserNotFound)
}

func TestSetRoleAndAssignCompany(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	u := f.register(t, "u1@x.com")
	c := f.company(t, "acme@x.com")

	got, err := f.accounts.SetRole(ctx, u.ID, domain.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, got.Role)

	_, err = f.accounts.SetRole(ctx, u.ID, domain.Role(9))
	assert.ErrorIs(t, err, store.ErrInvalidEntity)

	got, err = f.accounts.AssignCompany(ctx, u.ID, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.ID, got.CompanyID)

	_, err = f.accounts.AssignCompany(ctx, u.ID, 999)
	assert.ErrorIs(t, err, store.ErrCompanyNotFound)

	_, err = f.store.DeleteCompany(ctx, c.ID)
	require.NoError(t, err)
	_, err = f.accounts.AssignCompany(ctx, u.ID, c.ID)
	assert.ErrorIs(t, err, store.ErrCompanyNotFound)
}
