// Package storetest holds the behavioural contract every store.Store
// implementation must satisfy. Backends call Run from their own tests.
package storetest

import (
	"context"
	"fmt"
	"testing"

	"github.com/phrazzld/jobboard-api/internal/domain"
	"github.com/phrazzld/jobboard-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// Factory returns an empty store for a single subtest.
type Factory func(t *testing.T) store.Store

// Run executes the full contract against stores built by newStore.
func Run(t *testing.T, newStore Factory) {
	t.Run("UserRoundTrip", func(t *testing.T) { testUserRoundTrip(t, newStore(t)) })
	t.Run("UserValidation", func(t *testing.T) { testUserValidation(t, newStore(t)) })
	t.Run("UserEmailConflict", func(t *testing.T) { testUserEmailConflict(t, newStore(t)) })
	t.Run("UserSoftDelete", func(t *testing.T) { testUserSoftDelete(t, newStore(t)) })
	t.Run("UserPasswordAndRole", func(t *testing.T) { testUserPasswordAndRole(t, newStore(t)) })
	t.Run("NotFound", func(t *testing.T) { testNotFound(t, newStore(t)) })
	t.Run("Pagination", func(t *testing.T) { testPagination(t, newStore(t)) })
	t.Run("InvalidPage", func(t *testing.T) { testInvalidPage(t, newStore(t)) })
	t.Run("CompanyLifecycle", func(t *testing.T) { testCompanyLifecycle(t, newStore(t)) })
	t.Run("JobLifecycle", func(t *testing.T) { testJobLifecycle(t, newStore(t)) })
	t.Run("ResumeLifecycle", func(t *testing.T) { testResumeLifecycle(t, newStore(t)) })
	t.Run("Applications", func(t *testing.T) { testApplications(t, newStore(t)) })
	t.Run("ConcurrentCreateUniqueIDs", func(t *testing.T) { testConcurrentCreate(t, newStore(t)) })
	t.Run("ConcurrentDuplicateEmail", func(t *testing.T) { testConcurrentDuplicateEmail(t, newStore(t)) })
	t.Run("CanceledContext", func(t *testing.T) { testCanceledContext(t, newStore(t)) })
}

func mustUser(t *testing.T, s store.Store, email string) *domain.User {
	t.Helper()
	u, err := s.CreateUser(context.Background(), domain.NewUser{Email: email, PasswordHash: "hash:" + email})
	require.NoError(t, err)
	return u
}

func mustCompany(t *testing.T, s store.Store, name string) *domain.Company {
	t.Helper()
	c, err := s.CreateCompany(context.Background(), domain.NewCompany{
		Name:    name,
		Email:   name + "@corp.example.com",
		Address: "1 Main St",
	})
	require.NoError(t, err)
	return c
}

func mustJob(t *testing.T, s store.Store, company domain.CompanyID, name string) *domain.Job {
	t.Helper()
	j, err := s.CreateJob(context.Background(), domain.NewJob{
		Name:      name,
		CompanyID: company,
		Location:  "Remote",
		Quantity:  2,
		Salary:    1000,
		Level:     "senior",
	})
	require.NoError(t, err)
	return j
}

func mustResume(t *testing.T, s store.Store, user *domain.User) *domain.Resume {
	t.Helper()
	r, err := s.CreateResume(context.Background(), domain.NewResume{
		UserID: user.ID,
		Email:  user.Email,
		URL:    "https://cv.example.com/" + user.Email,
	})
	require.NoError(t, err)
	return r
}

func testUserRoundTrip(t *testing.T, s store.Store) {
	ctx := context.Background()

	created := mustUser(t, s, "u1@x.com")
	assert.Positive(t, int64(created.ID))
	assert.Equal(t, "u1@x.com", created.Email)
	assert.Equal(t, domain.RoleUser, created.Role)
	assert.Equal(t, domain.CompanyID(0), created.CompanyID)
	assert.False(t, created.IsDeleted)

	byID, err := s.GetUserByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, byID)

	byEmail, err := s.GetUserByEmail(ctx, "u1@x.com")
	require.NoError(t, err)
	assert.Equal(t, created, byEmail)

	company := mustCompany(t, s, "acme")
	byID.CompanyID = company.ID
	byID.Email = "u1-new@x.com"
	updated, err := s.UpdateUser(ctx, byID)
	require.NoError(t, err)
	assert.Equal(t, "u1-new@x.com", updated.Email)
	assert.Equal(t, company.ID, updated.CompanyID)

	_, err = s.GetUserByEmail(ctx, "u1@x.com")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func testUserValidation(t *testing.T, s store.Store) {
	ctx := context.Background()

	_, err := s.CreateUser(ctx, domain.NewUser{Email: "not-an-email", PasswordHash: "h"})
	assert.ErrorIs(t, err, store.ErrInvalidEntity)
	assert.ErrorIs(t, err, domain.ErrInvalidEmail)

	_, err = s.CreateUser(ctx, domain.NewUser{Email: "ok@x.com"})
	assert.ErrorIs(t, err, store.ErrInvalidEntity)

	users, err := s.ListUsers(ctx, store.All)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func testUserEmailConflict(t *testing.T, s store.Store) {
	ctx := context.Background()

	mustUser(t, s, "dup@x.com")
	_, err := s.CreateUser(ctx, domain.NewUser{Email: "dup@x.com", PasswordHash: "other"})
	assert.ErrorIs(t, err, store.ErrEmailExists)
	assert.True(t, store.IsDuplicateError(err))

	other := mustUser(t, s, "other@x.com")
	other.Email = "dup@x.com"
	_, err = s.UpdateUser(ctx, other)
	assert.ErrorIs(t, err, store.ErrEmailExists)

	// Keeping your own email is not a conflict.
	other.Email = "other@x.com"
	_, err = s.UpdateUser(ctx, other)
	assert.NoError(t, err)
}

func testUserSoftDelete(t *testing.T, s store.Store) {
	ctx := context.Background()

	keep := mustUser(t, s, "keep@x.com")
	gone := mustUser(t, s, "gone@x.com")

	ok, err := s.DeleteUser(ctx, gone.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	fetched, err := s.GetUserByID(ctx, gone.ID)
	require.NoError(t, err)
	assert.True(t, fetched.IsDeleted)

	_, err = s.GetUserByEmail(ctx, "gone@x.com")
	assert.ErrorIs(t, err, store.ErrUserNotFound)

	users, err := s.ListUsers(ctx, store.All)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, keep.ID, users[0].ID)

	ok, err = s.DeleteUser(ctx, gone.ID)
	require.NoError(t, err, "deleting twice succeeds")
	assert.True(t, ok)

	_, err = s.CreateUser(ctx, domain.NewUser{Email: "gone@x.com", PasswordHash: "h"})
	assert.ErrorIs(t, err, store.ErrEmailExists, "deleted accounts keep their email")

	_, err = s.DeleteUser(ctx, gone.ID+1000)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func testUserPasswordAndRole(t *testing.T, s store.Store) {
	ctx := context.Background()
	u := mustUser(t, s, "role@x.com")

	updated, err := s.UpdatePassword(ctx, u.ID, "new-hash")
	require.NoError(t, err)
	assert.Equal(t, "new-hash", updated.PasswordHash)

	updated, err = s.SetRole(ctx, u.ID, domain.RoleHR)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleHR, updated.Role)

	// Profile updates never touch password, role or the delete flag.
	profile := *updated
	profile.PasswordHash = "ignored"
	profile.Role = domain.RoleAdmin
	profile.IsDeleted = true
	profile.Email = "role2@x.com"
	after, err := s.UpdateUser(ctx, &profile)
	require.NoError(t, err)
	assert.Equal(t, "new-hash", after.PasswordHash)
	assert.Equal(t, domain.RoleHR, after.Role)
	assert.False(t, after.IsDeleted)
	assert.Equal(t, "role2@x.com", after.Email)

	_, err = s.SetRole(ctx, u.ID, domain.Role(9))
	assert.ErrorIs(t, err, store.ErrInvalidEntity)

	_, err = s.UpdatePassword(ctx, u.ID+1000, "h")
	assert.ErrorIs(t, err, store.ErrUserNotFound)
	_, err = s.SetRole(ctx, u.ID+1000, domain.RoleAdmin)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func testNotFound(t *testing.T, s store.Store) {
	ctx := context.Background()

	_, err := s.GetUserByID(ctx, 4242)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
	_, err = s.GetCompanyByID(ctx, 4242)
	assert.ErrorIs(t, err, store.ErrCompanyNotFound)
	_, err = s.GetCompanyByEmail(ctx, "none@x.com")
	assert.ErrorIs(t, err, store.ErrCompanyNotFound)
	_, err = s.GetJobByID(ctx, 4242)
	assert.ErrorIs(t, err, store.ErrJobNotFound)
	_, err = s.GetResumeByID(ctx, 4242)
	assert.ErrorIs(t, err, store.ErrResumeNotFound)

	_, err = s.UpdateCompany(ctx, &domain.Company{ID: 4242, Name: "n", Email: "n@x.com"})
	assert.ErrorIs(t, err, store.ErrCompanyNotFound)
	_, err = s.UpdateUser(ctx, &domain.User{ID: 4242, Email: "n@x.com"})
	assert.ErrorIs(t, err, store.ErrUserNotFound)
	_, err = s.UpdateResume(ctx, &domain.Resume{ID: 4242, UserID: 1, Email: "n@x.com", URL: "u"})
	assert.ErrorIs(t, err, store.ErrResumeNotFound)

	_, err = s.DeleteCompany(ctx, 4242)
	assert.ErrorIs(t, err, store.ErrCompanyNotFound)
	_, err = s.DeleteJob(ctx, 4242)
	assert.ErrorIs(t, err, store.ErrJobNotFound)
	_, err = s.DeleteResume(ctx, 4242)
	assert.ErrorIs(t, err, store.ErrResumeNotFound)
}

func testPagination(t *testing.T, s store.Store) {
	ctx := context.Background()

	var names []string
	for i := 1; i <= 5; i++ {
		names = append(names, mustCompany(t, s, fmt.Sprintf("c%d", i)).Name)
	}

	tests := []struct {
		name string
		page store.Page
		want []string
	}{
		{name: "unbounded", page: store.All, want: names},
		{name: "first two", page: store.NewPage(2, 0), want: names[0:2]},
		{name: "middle", page: store.NewPage(2, 2), want: names[2:4]},
		{name: "limit past end", page: store.NewPage(10, 3), want: names[3:]},
		{name: "offset only", page: store.Page{Offset: 4}, want: names[4:]},
		{name: "offset past end", page: store.NewPage(3, 9), want: []string{}},
		{name: "zero limit", page: store.NewPage(0, 0), want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.ListCompanies(ctx, tt.page)
			require.NoError(t, err)
			gotNames := make([]string, 0, len(got))
			for _, c := range got {
				gotNames = append(gotNames, c.Name)
			}
			assert.Equal(t, tt.want, gotNames)
		})
	}
}

func testInvalidPage(t *testing.T, s store.Store) {
	ctx := context.Background()

	_, err := s.ListUsers(ctx, store.Page{Offset: -1})
	assert.ErrorIs(t, err, store.ErrInvalidPage)
	_, err = s.ListJobs(ctx, store.NewPage(-5, 0))
	assert.ErrorIs(t, err, store.ErrInvalidPage)
}

func testCompanyLifecycle(t *testing.T, s store.Store) {
	ctx := context.Background()

	c := mustCompany(t, s, "globex")
	byEmail, err := s.GetCompanyByEmail(ctx, c.Email)
	require.NoError(t, err)
	assert.Equal(t, c, byEmail)

	_, err = s.CreateCompany(ctx, domain.NewCompany{Name: "copy", Email: c.Email})
	assert.ErrorIs(t, err, store.ErrEmailExists)

	c.Description = "widgets"
	c.Address = "2 Side St"
	updated, err := s.UpdateCompany(ctx, c)
	require.NoError(t, err)
	assert.Equal(t, "widgets", updated.Description)
	assert.Equal(t, "2 Side St", updated.Address)

	ok, err := s.DeleteCompany(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := s.GetCompanyByID(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, got.IsDeleted)

	_, err = s.GetCompanyByEmail(ctx, c.Email)
	assert.ErrorIs(t, err, store.ErrCompanyNotFound)

	list, err := s.ListCompanies(ctx, store.All)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func testJobLifecycle(t *testing.T, s store.Store) {
	ctx := context.Background()

	acme := mustCompany(t, s, "acme")
	initech := mustCompany(t, s, "initech")
	j1 := mustJob(t, s, acme.ID, "backend")
	j2 := mustJob(t, s, initech.ID, "frontend")
	j3 := mustJob(t, s, acme.ID, "sre")

	all, err := s.ListJobs(ctx, store.All)
	require.NoError(t, err)
	assert.Equal(t, []domain.Job{*j1, *j2, *j3}, all)

	byCompany, err := s.ListJobsByCompany(ctx, store.All, acme.ID)
	require.NoError(t, err)
	assert.Equal(t, []domain.Job{*j1, *j3}, byCompany)

	_, err = s.CreateJob(ctx, domain.NewJob{Name: "ghost", CompanyID: initech.ID + 1000})
	assert.ErrorIs(t, err, store.ErrInvalidEntity)

	_, err = s.CreateJob(ctx, domain.NewJob{Name: "", CompanyID: acme.ID})
	assert.ErrorIs(t, err, store.ErrInvalidEntity)

	j1.Salary = 2000
	j1.Quantity = 0
	updated, err := s.UpdateJob(ctx, j1)
	require.NoError(t, err)
	assert.Equal(t, 2000, updated.Salary)
	assert.Equal(t, 0, updated.Quantity)

	ok, err := s.DeleteJob(ctx, j3.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	byCompany, err = s.ListJobsByCompany(ctx, store.All, acme.ID)
	require.NoError(t, err)
	require.Len(t, byCompany, 1)
	assert.Equal(t, j1.ID, byCompany[0].ID)

	deleted, err := s.GetJobByID(ctx, j3.ID)
	require.NoError(t, err)
	assert.True(t, deleted.IsDeleted)
}

func testResumeLifecycle(t *testing.T, s store.Store) {
	ctx := context.Background()

	alice := mustUser(t, s, "alice@x.com")
	bob := mustUser(t, s, "bob@x.com")
	r1 := mustResume(t, s, alice)
	mustResume(t, s, bob)
	r3 := mustResume(t, s, alice)

	mine, err := s.ListResumesByUser(ctx, store.All, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, []domain.Resume{*r1, *r3}, mine)

	_, err = s.CreateResume(ctx, domain.NewResume{UserID: bob.ID + 1000, Email: "z@x.com", URL: "u"})
	assert.ErrorIs(t, err, store.ErrInvalidEntity)

	r1.URL = "https://cv.example.com/v2"
	r1.UserID = bob.ID
	updated, err := s.UpdateResume(ctx, r1)
	require.NoError(t, err)
	assert.Equal(t, "https://cv.example.com/v2", updated.URL)
	assert.Equal(t, alice.ID, updated.UserID, "owner is fixed at creation")

	ok, err := s.DeleteResume(ctx, r3.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	mine, err = s.ListResumesByUser(ctx, store.NewPage(10, 0), alice.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, r1.ID, mine[0].ID)
}

func testApplications(t *testing.T, s store.Store) {
	ctx := context.Background()

	company := mustCompany(t, s, "hooli")
	open := mustJob(t, s, company.ID, "open")
	closed := mustJob(t, s, company.ID, "closed")
	alice := mustUser(t, s, "alice@x.com")
	bob := mustUser(t, s, "bob@x.com")
	ra := mustResume(t, s, alice)
	rb := mustResume(t, s, bob)

	_, err := s.DeleteJob(ctx, closed.ID)
	require.NoError(t, err)

	a1, err := s.CreateApplication(ctx, ra.ID, open.ID)
	require.NoError(t, err)
	assert.Equal(t, ra.ID, a1.ResumeID)
	assert.Equal(t, open.ID, a1.JobID)

	_, err = s.CreateApplication(ctx, ra.ID, open.ID)
	assert.ErrorIs(t, err, store.ErrAlreadyApplied)
	assert.True(t, store.IsDuplicateError(err))

	_, err = s.CreateApplication(ctx, ra.ID, closed.ID)
	assert.ErrorIs(t, err, store.ErrJobClosed)

	_, err = s.CreateApplication(ctx, ra.ID, open.ID+1000)
	assert.ErrorIs(t, err, store.ErrJobNotFound)

	_, err = s.CreateApplication(ctx, rb.ID+1000, open.ID)
	assert.ErrorIs(t, err, store.ErrResumeNotFound)

	a2, err := s.CreateApplication(ctx, rb.ID, open.ID)
	require.NoError(t, err)

	_, err = s.DeleteResume(ctx, rb.ID)
	require.NoError(t, err)
	_, err = s.CreateApplication(ctx, rb.ID, open.ID)
	assert.ErrorIs(t, err, store.ErrResumeNotFound)

	byJob, err := s.ListApplicationsByJob(ctx, store.All, open.ID)
	require.NoError(t, err)
	assert.Equal(t, []domain.Application{*a1, *a2}, byJob)

	firstOnly, err := s.ListApplicationsByJob(ctx, store.NewPage(1, 1), open.ID)
	require.NoError(t, err)
	assert.Equal(t, []domain.Application{*a2}, firstOnly)

	byResume, err := s.ListApplicationsByResume(ctx, ra.ID)
	require.NoError(t, err)
	assert.Equal(t, []domain.Application{*a1}, byResume)

	none, err := s.ListApplicationsByJob(ctx, store.All, closed.ID)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func testConcurrentCreate(t *testing.T, s store.Store) {
	const n = 50
	ids := make([]domain.UserID, n)

	var g errgroup.Group
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			u, err := s.CreateUser(context.Background(), domain.NewUser{
				Email:        fmt.Sprintf("user%d@x.com", i),
				PasswordHash: "h",
			})
			if err != nil {
				return err
			}
			ids[i] = u.ID
			return nil
		})
	}
	require.NoError(t, g.Wait())

	seen := make(map[domain.UserID]bool, n)
	for _, id := range ids {
		assert.Positive(t, int64(id))
		assert.False(t, seen[id], "id %d assigned twice", id)
		seen[id] = true
	}

	users, err := s.ListUsers(context.Background(), store.All)
	require.NoError(t, err)
	assert.Len(t, users, n)
	for i := 1; i < len(users); i++ {
		assert.Less(t, users[i-1].ID, users[i].ID, "list is ordered by id")
	}
}

func testConcurrentDuplicateEmail(t *testing.T, s store.Store) {
	const n = 20
	errs := make([]error, n)

	var g errgroup.Group
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			_, errs[i] = s.CreateUser(context.Background(), domain.NewUser{
				Email:        "race@x.com",
				PasswordHash: "h",
			})
			return nil
		})
	}
	require.NoError(t, g.Wait())

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, store.ErrEmailExists)
	}
	assert.Equal(t, 1, succeeded)
}

func testCanceledContext(t *testing.T, s store.Store) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.CreateUser(ctx, domain.NewUser{Email: "late@x.com", PasswordHash: "h"})
	assert.ErrorIs(t, err, store.ErrStoreUnavailable)

	_, err = s.ListJobs(ctx, store.All)
	assert.ErrorIs(t, err, store.ErrStoreUnavailable)
}
