package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/jobboard-api/internal/domain"
	"github.com/phrazzld/jobboard-api/internal/store"
)

func TestResumeOwnership(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	owner := f.register(t, "u1@x.com")
	other := f.register(t, "u2@x.com")

	// The payload's owner is ignored.
	r, err := f.resumes.Create(ctx, owner.ID, domain.NewResume{UserID: other.ID, Email: "cv@x.com", URL: "https://cv"})
	require.NoError(t, err)
	assert.Equal(t, owner.ID, r.UserID)

	got, err := f.resumes.Get(ctx, owner.ID, r.ID)
	require.NoError(t, err)
	assert.Equal(t, r.URL, got.URL)

	_, err = f.resumes.Get(ctx, other.ID, r.ID)
	assert.ErrorIs(t, err, ErrNotOwned)

	_, err = f.resumes.Update(ctx, other.ID, &domain.Resume{ID: r.ID, Email: "x@x.com", URL: "https://evil"})
	assert.ErrorIs(t, err, ErrNotOwned)

	assert.ErrorIs(t, f.resumes.Delete(ctx, other.ID, r.ID), ErrNotOwned)

	_, err = f.resumes.Get(ctx, owner.ID, 999)
	assert.ErrorIs(t, err, store.ErrResumeNotFound)

	updated, err := f.resumes.Update(ctx, owner.ID, &domain.Resume{ID: r.ID, Email: "cv@x.com", URL: "https://cv2"})
	require.NoError(t, err)
	assert.Equal(t, "https://cv2", updated.URL)

	list, err := f.resumes.List(ctx, owner.ID, store.All)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, f.resumes.Delete(ctx, owner.ID, r.ID))
	list, err = f.resumes.List(ctx, owner.ID, store.All)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestApplyAndAppliedJobs(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	c := f.company(t, "acme@x.com")
	staff := f.hr(t, "hr@x.com", c.ID)
	applicant := f.register(t, "u1@x.com")
	other := f.register(t, "u2@x.com")

	job, err := f.jobs.Create(ctx, staff.ID, domain.NewJob{Name: "Gopher"})
	require.NoError(t, err)
	r, err := f.resumes.Create(ctx, applicant.ID, domain.NewResume{Email: "cv@x.com", URL: "https://cv"})
	require.NoError(t, err)

	_, err = f.resumes.Apply(ctx, other.ID, r.ID, job.ID)
	assert.ErrorIs(t, err, ErrNotOwned)

	app, err := f.resumes.Apply(ctx, applicant.ID, r.ID, job.ID)
	require.NoError(t, err)
	assert.Equal(t, job.ID, app.JobID)

	_, err = f.resumes.Apply(ctx, applicant.ID, r.ID, job.ID)
	assert.ErrorIs(t, err, store.ErrAlreadyApplied)

	jobs, err := f.resumes.AppliedJobs(ctx, applicant.ID, r.ID)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, job.ID, jobs[0].ID)

	_, err = f.resumes.AppliedJobs(ctx, other.ID, r.ID)
	assert.ErrorIs(t, err, ErrNotOwned)
}
