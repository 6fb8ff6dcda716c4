package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/jobboard-api/internal/domain"
	"github.com/phrazzld/jobboard-api/internal/store"
)

func TestJobCompanyOwnership(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	acme := f.company(t, "acme@x.com")
	globex := f.company(t, "globex@x.com")
	acmeHR := f.hr(t, "hr@acme.com", acme.ID)
	globexHR := f.hr(t, "hr@globex.com", globex.ID)
	detached := f.register(t, "loose@x.com")

	job, err := f.jobs.Create(ctx, acmeHR.ID, domain.NewJob{Name: "Gopher", Salary: 10})
	require.NoError(t, err)
	assert.Equal(t, acme.ID, job.CompanyID)

	tests := []struct {
		name    string
		run     func() error
		wantErr error
	}{
		{
			name: "create for another company",
			run: func() error {
				_, err := f.jobs.Create(ctx, acmeHR.ID, domain.NewJob{Name: "X", CompanyID: globex.ID})
				return err
			},
			wantErr: ErrNotOwned,
		},
		{
			name: "create without company",
			run: func() error {
				_, err := f.jobs.Create(ctx, detached.ID, domain.NewJob{Name: "X"})
				return err
			},
			wantErr: ErrNoCompany,
		},
		{
			name: "update from another company",
			run: func() error {
				_, err := f.jobs.Update(ctx, globexHR.ID, &domain.Job{ID: job.ID, Name: "Stolen"})
				return err
			},
			wantErr: ErrNotOwned,
		},
		{
			name: "move job to another company",
			run: func() error {
				_, err := f.jobs.Update(ctx, acmeHR.ID, &domain.Job{ID: job.ID, Name: "Moved", CompanyID: globex.ID})
				return err
			},
			wantErr: ErrNotOwned,
		},
		{
			name:    "delete from another company",
			run:     func() error { return f.jobs.Delete(ctx, globexHR.ID, job.ID) },
			wantErr: ErrNotOwned,
		},
		{
			name: "applicants from another company",
			run: func() error {
				_, err := f.jobs.Applicants(ctx, globexHR.ID, store.All, job.ID)
				return err
			},
			wantErr: ErrNotOwned,
		},
		{
			name:    "missing job",
			run:     func() error { return f.jobs.Delete(ctx, acmeHR.ID, 999) },
			wantErr: store.ErrJobNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.run(), tt.wantErr)
		})
	}

	updated, err := f.jobs.Update(ctx, acmeHR.ID, &domain.Job{ID: job.ID, Name: "Senior Gopher", Salary: 20})
	require.NoError(t, err)
	assert.Equal(t, "Senior Gopher", updated.Name)
	assert.Equal(t, acme.ID, updated.CompanyID)

	require.NoError(t, f.jobs.Delete(ctx, acmeHR.ID, job.ID))
}

func TestApplicants(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	acme := f.company(t, "acme@x.com")
	staff := f.hr(t, "hr@acme.com", acme.ID)

	job, err := f.jobs.Create(ctx, staff.ID, domain.NewJob{Name: "Gopher"})
	require.NoError(t, err)

	var want []domain.ResumeID
	for _, email := range []string{"a@x.com", "b@x.com", "c@x.com"} {
		u := f.register(t, email)
		r, err := f.resumes.Create(ctx, u.ID, domain.NewResume{Email: email, URL: "https://cv/" + email})
		require.NoError(t, err)
		_, err = f.resumes.Apply(ctx, u.ID, r.ID, job.ID)
		require.NoError(t, err)
		want = append(want, r.ID)
	}

	all, err := f.jobs.Applicants(ctx, staff.ID, store.All, job.ID)
	require.NoError(t, err)
	require.Len(t, all, 3)
	for i, r := range all {
		assert.Equal(t, want[i], r.ID)
	}

	page, err := f.jobs.Applicants(ctx, staff.ID, store.NewPage(1, 1), job.ID)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, want[1], page[0].ID)
}
