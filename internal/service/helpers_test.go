package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/phrazzld/jobboard-api/internal/domain"
	"github.com/phrazzld/jobboard-api/internal/platform/logger"
	"github.com/phrazzld/jobboard-api/internal/service/auth"
	"github.com/phrazzld/jobboard-api/internal/store/memory"
)

const testSecret = "service-test-secret-with-32-plus-characters"

type fixture struct {
	store    *memory.Store
	accounts *AccountService
	jobs     *JobService
	resumes  *ResumeService
	tokens   auth.TokenService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	log := logger.Discard()
	s := memory.New(log)
	tokens, err := auth.NewTestTokenService(testSecret, time.Hour, time.Now)
	require.NoError(t, err)
	return &fixture{
		store:    s,
		accounts: NewAccountService(s, auth.NewBcryptHasher(bcrypt.MinCost), tokens, log),
		jobs:     NewJobService(s, log),
		resumes:  NewResumeService(s, log),
		tokens:   tokens,
	}
}

func (f *fixture) register(t *testing.T, email string) *domain.User {
	t.Helper()
	u, err := f.accounts.Register(context.Background(), email, "pw123")
	require.NoError(t, err)
	return u
}

func (f *fixture) company(t *testing.T, email string) *domain.Company {
	t.Helper()
	c, err := f.store.CreateCompany(context.Background(), domain.NewCompany{Name: "Acme", Email: email})
	require.NoError(t, err)
	return c
}

// hr registers a user, promotes it to HR and attaches it to company.
func (f *fixture) hr(t *testing.T, email string, company domain.CompanyID) *domain.User {
	t.Helper()
	ctx := context.Background()
	u := f.register(t, email)
	_, err := f.accounts.SetRole(ctx, u.ID, domain.RoleHR)
	require.NoError(t, err)
	u, err = f.accounts.AssignCompany(ctx, u.ID, company)
	require.NoError(t, err)
	return u
}
