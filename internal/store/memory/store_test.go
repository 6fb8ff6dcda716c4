package memory_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/phrazzld/jobboard-api/internal/domain"
	"github.com/phrazzld/jobboard-api/internal/platform/logger"
	"github.com/phrazzld/jobboard-api/internal/store"
	"github.com/phrazzld/jobboard-api/internal/store/memory"
	"github.com/phrazzld/jobboard-api/internal/store/storetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreContract(t *testing.T) {
	storetest.Run(t, func(t *testing.T) store.Store {
		return memory.New(logger.Discard())
	})
}

func TestListReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := memory.New(logger.Discard())

	_, err := s.CreateCompany(ctx, domain.NewCompany{Name: "acme", Email: "acme@x.com"})
	require.NoError(t, err)

	list, err := s.ListCompanies(ctx, store.All)
	require.NoError(t, err)
	require.Len(t, list, 1)
	list[0].Name = "mutated"

	got, err := s.GetCompanyByID(ctx, list[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "acme", got.Name)
}

func TestApplyRacesJobDeletion(t *testing.T) {
	ctx := context.Background()
	s := memory.New(logger.Discard())

	company, err := s.CreateCompany(ctx, domain.NewCompany{Name: "acme", Email: "acme@x.com"})
	require.NoError(t, err)
	job, err := s.CreateJob(ctx, domain.NewJob{Name: "dev", CompanyID: company.ID})
	require.NoError(t, err)

	const n = 30
	resumes := make([]domain.ResumeID, n)
	for i := 0; i < n; i++ {
		u, err := s.CreateUser(ctx, domain.NewUser{Email: fmt.Sprintf("u%d@x.com", i), PasswordHash: "h"})
		require.NoError(t, err)
		r, err := s.CreateResume(ctx, domain.NewResume{UserID: u.ID, Email: u.Email, URL: "https://cv"})
		require.NoError(t, err)
		resumes[i] = r.ID
	}

	var wg sync.WaitGroup
	for _, rid := range resumes {
		rid := rid
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.CreateApplication(ctx, rid, job.ID)
			if err != nil {
				assert.ErrorIs(t, err, store.ErrJobClosed)
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := s.DeleteJob(ctx, job.ID)
		assert.NoError(t, err)
	}()
	wg.Wait()

	apps, err := s.ListApplicationsByJob(ctx, store.All, job.ID)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(apps), n)
	for _, a := range apps {
		assert.Equal(t, job.ID, a.JobID)
	}
}
