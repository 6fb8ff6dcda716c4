package memory

import (
	"context"
	"log/slog"

	"github.com/phrazzld/jobboard-api/internal/domain"
	"github.com/phrazzld/jobboard-api/internal/store"
)

// CreateApplication implements store.ApplicationStore. The job and resume
// read locks stay held while the application is inserted, so neither can be
// deleted between the check and the write.
func (s *Store) CreateApplication(ctx context.Context, resumeID domain.ResumeID, jobID domain.JobID) (*domain.Application, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	s.jobs.mu.RLock()
	defer s.jobs.mu.RUnlock()
	s.resumes.mu.RLock()
	defer s.resumes.mu.RUnlock()
	s.applications.mu.Lock()
	defer s.applications.mu.Unlock()

	job, ok := s.jobs.rows[int64(jobID)]
	if !ok {
		return nil, store.ErrJobNotFound
	}
	if job.IsDeleted {
		return nil, store.ErrJobClosed
	}
	resume, ok := s.resumes.rows[int64(resumeID)]
	if !ok || resume.IsDeleted {
		return nil, store.ErrResumeNotFound
	}
	for _, a := range s.applications.rows {
		if a.ResumeID == resumeID && a.JobID == jobID {
			return nil, store.ErrAlreadyApplied
		}
	}

	a := s.applications.insertLocked(func(id int64) domain.Application {
		return domain.Application{
			ID:       domain.ApplicationID(id),
			ResumeID: resumeID,
			JobID:    jobID,
		}
	})

	s.logger.Debug("application created",
		slog.Int64("application_id", int64(a.ID)),
		slog.Int64("resume_id", int64(resumeID)),
		slog.Int64("job_id", int64(jobID)))
	return &a, nil
}

// ListApplicationsByJob implements store.ApplicationStore.
func (s *Store) ListApplicationsByJob(ctx context.Context, page store.Page, jobID domain.JobID) ([]domain.Application, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	if err := page.Validate(); err != nil {
		return nil, err
	}
	s.applications.mu.RLock()
	defer s.applications.mu.RUnlock()

	return s.applications.listLocked(page, func(a domain.Application) bool {
		return a.JobID == jobID
	}), nil
}

// ListApplicationsByResume implements store.ApplicationStore.
func (s *Store) ListApplicationsByResume(ctx context.Context, resumeID domain.ResumeID) ([]domain.Application, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	s.applications.mu.RLock()
	defer s.applications.mu.RUnlock()

	return s.applications.listLocked(store.All, func(a domain.Application) bool {
		return a.ResumeID == resumeID
	}), nil
}
