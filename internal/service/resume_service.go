package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/jobboard-api/internal/domain"
	"github.com/phrazzld/jobboard-api/internal/store"
)

// ResumeService restricts every resume operation, and applying to jobs, to
// the resume's owner.
type ResumeService struct {
	store  store.Store
	logger *slog.Logger
}

// NewResumeService creates a new ResumeService.
func NewResumeService(s store.Store, logger *slog.Logger) *ResumeService {
	return &ResumeService{
		store:  s,
		logger: logger.With(slog.String("component", "resume_service")),
	}
}

// Create stores a resume owned by actor, whatever owner the payload names.
func (s *ResumeService) Create(ctx context.Context, actor domain.UserID, nr domain.NewResume) (*domain.Resume, error) {
	nr.UserID = actor
	r, err := s.store.CreateResume(ctx, nr)
	if err != nil {
		return nil, fmt.Errorf("failed to create resume: %w", err)
	}
	s.logger.Info("resume created",
		slog.Int64("resume_id", int64(r.ID)),
		slog.Int64("user_id", int64(actor)))
	return r, nil
}

// Get returns one of actor's resumes.
func (s *ResumeService) Get(ctx context.Context, actor domain.UserID, id domain.ResumeID) (*domain.Resume, error) {
	r, err := s.store.GetResumeByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !r.OwnedBy(actor) {
		s.logger.Debug("resume not owned by caller",
			slog.Int64("resume_id", int64(id)),
			slog.Int64("user_id", int64(actor)))
		return nil, ErrNotOwned
	}
	return r, nil
}

// List returns actor's live resumes.
func (s *ResumeService) List(ctx context.Context, actor domain.UserID, page store.Page) ([]domain.Resume, error) {
	return s.store.ListResumesByUser(ctx, page, actor)
}

// Update replaces one of actor's resumes.
func (s *ResumeService) Update(ctx context.Context, actor domain.UserID, r *domain.Resume) (*domain.Resume, error) {
	if _, err := s.Get(ctx, actor, r.ID); err != nil {
		return nil, err
	}
	r.UserID = actor
	updated, err := s.store.UpdateResume(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("failed to update resume: %w", err)
	}
	return updated, nil
}

// Delete soft-deletes one of actor's resumes.
func (s *ResumeService) Delete(ctx context.Context, actor domain.UserID, id domain.ResumeID) error {
	if _, err := s.Get(ctx, actor, id); err != nil {
		return err
	}
	if _, err := s.store.DeleteResume(ctx, id); err != nil {
		return fmt.Errorf("failed to delete resume: %w", err)
	}
	return nil
}

// Apply submits one of actor's resumes to a job.
func (s *ResumeService) Apply(ctx context.Context, actor domain.UserID, resumeID domain.ResumeID, jobID domain.JobID) (*domain.Application, error) {
	if _, err := s.Get(ctx, actor, resumeID); err != nil {
		return nil, err
	}
	app, err := s.store.CreateApplication(ctx, resumeID, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to apply: %w", err)
	}
	s.logger.Info("application created",
		slog.Int64("application_id", int64(app.ID)),
		slog.Int64("resume_id", int64(resumeID)),
		slog.Int64("job_id", int64(jobID)))
	return app, nil
}

// AppliedJobs returns the jobs one of actor's resumes has been submitted to.
func (s *ResumeService) AppliedJobs(ctx context.Context, actor domain.UserID, resumeID domain.ResumeID) ([]domain.Job, error) {
	if _, err := s.Get(ctx, actor, resumeID); err != nil {
		return nil, err
	}
	apps, err := s.store.ListApplicationsByResume(ctx, resumeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	jobs := make([]domain.Job, 0, len(apps))
	for _, a := range apps {
		j, err := s.store.GetJobByID(ctx, a.JobID)
		if err != nil {
			return nil, fmt.Errorf("failed to load job %d: %w", a.JobID, err)
		}
		jobs = append(jobs, *j)
	}
	return jobs, nil
}
