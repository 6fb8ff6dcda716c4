package memory

import (
	"context"
	"log/slog"

	"github.com/phrazzld/jobboard-api/internal/domain"
	"github.com/phrazzld/jobboard-api/internal/store"
)

// companyExists mirrors the relational foreign key: the company must exist,
// deleted or not.
func (s *Store) companyExists(id domain.CompanyID) bool {
	s.companies.mu.RLock()
	defer s.companies.mu.RUnlock()
	_, ok := s.companies.rows[int64(id)]
	return ok
}

// CreateJob implements store.JobStore.
func (s *Store) CreateJob(ctx context.Context, nj domain.NewJob) (*domain.Job, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	if err := nj.Validate(); err != nil {
		return nil, invalid(err)
	}
	if !s.companyExists(nj.CompanyID) {
		return nil, invalid(domain.ErrMissingCompany)
	}

	s.jobs.mu.Lock()
	defer s.jobs.mu.Unlock()

	j := s.jobs.insertLocked(func(id int64) domain.Job {
		return domain.Job{
			ID:          domain.JobID(id),
			Name:        nj.Name,
			CompanyID:   nj.CompanyID,
			Location:    nj.Location,
			Quantity:    nj.Quantity,
			Salary:      nj.Salary,
			Level:       nj.Level,
			Description: nj.Description,
		}
	})

	s.logger.Debug("job created",
		slog.Int64("job_id", int64(j.ID)),
		slog.Int64("company_id", int64(j.CompanyID)))
	return &j, nil
}

// GetJobByID implements store.JobStore.
func (s *Store) GetJobByID(ctx context.Context, id domain.JobID) (*domain.Job, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	s.jobs.mu.RLock()
	defer s.jobs.mu.RUnlock()

	j, ok := s.jobs.rows[int64(id)]
	if !ok {
		return nil, store.ErrJobNotFound
	}
	return &j, nil
}

// ListJobs implements store.JobStore.
func (s *Store) ListJobs(ctx context.Context, page store.Page) ([]domain.Job, error) {
	return s.listJobs(ctx, page, func(j domain.Job) bool { return !j.IsDeleted })
}

// ListJobsByCompany implements store.JobStore.
func (s *Store) ListJobsByCompany(ctx context.Context, page store.Page, companyID domain.CompanyID) ([]domain.Job, error) {
	return s.listJobs(ctx, page, func(j domain.Job) bool {
		return !j.IsDeleted && j.CompanyID == companyID
	})
}

func (s *Store) listJobs(ctx context.Context, page store.Page, keep func(domain.Job) bool) ([]domain.Job, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	if err := page.Validate(); err != nil {
		return nil, err
	}
	s.jobs.mu.RLock()
	defer s.jobs.mu.RUnlock()

	return s.jobs.listLocked(page, keep), nil
}

// UpdateJob implements store.JobStore.
func (s *Store) UpdateJob(ctx context.Context, job *domain.Job) (*domain.Job, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	if err := job.Validate(); err != nil {
		return nil, invalid(err)
	}
	// Companies are never removed, so checking before taking the jobs lock
	// keeps the lock order intact.
	if !s.companyExists(job.CompanyID) {
		return nil, invalid(domain.ErrMissingCompany)
	}

	s.jobs.mu.Lock()
	defer s.jobs.mu.Unlock()

	current, ok := s.jobs.rows[int64(job.ID)]
	if !ok {
		return nil, store.ErrJobNotFound
	}
	current.Name = job.Name
	current.CompanyID = job.CompanyID
	current.Location = job.Location
	current.Quantity = job.Quantity
	current.Salary = job.Salary
	current.Level = job.Level
	current.Description = job.Description
	s.jobs.rows[int64(job.ID)] = current
	return ptr(current), nil
}

// DeleteJob implements store.JobStore.
func (s *Store) DeleteJob(ctx context.Context, id domain.JobID) (bool, error) {
	if err := checkContext(ctx); err != nil {
		return false, err
	}
	s.jobs.mu.Lock()
	defer s.jobs.mu.Unlock()

	j, ok := s.jobs.rows[int64(id)]
	if !ok {
		return false, store.ErrJobNotFound
	}
	j.IsDeleted = true
	s.jobs.rows[int64(id)] = j
	return true, nil
}
