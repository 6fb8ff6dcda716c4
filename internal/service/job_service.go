package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/jobboard-api/internal/domain"
	"github.com/phrazzld/jobboard-api/internal/store"
)

// JobService applies company ownership to job mutations and to the HR view
// of a job's applicants.
type JobService struct {
	store  store.Store
	logger *slog.Logger
}

// NewJobService creates a new JobService.
func NewJobService(s store.Store, logger *slog.Logger) *JobService {
	return &JobService{
		store:  s,
		logger: logger.With(slog.String("component", "job_service")),
	}
}

// companyOf returns the company the acting user belongs to.
func (s *JobService) companyOf(ctx context.Context, actor domain.UserID) (domain.CompanyID, error) {
	user, err := s.store.GetUserByID(ctx, actor)
	if err != nil {
		return 0, fmt.Errorf("failed to retrieve acting user: %w", err)
	}
	if user.CompanyID == 0 {
		return 0, ErrNoCompany
	}
	return user.CompanyID, nil
}

// ownedJob loads a job and checks that actor's company owns it.
func (s *JobService) ownedJob(ctx context.Context, actor domain.UserID, id domain.JobID) (*domain.Job, domain.CompanyID, error) {
	company, err := s.companyOf(ctx, actor)
	if err != nil {
		return nil, 0, err
	}
	job, err := s.store.GetJobByID(ctx, id)
	if err != nil {
		return nil, 0, err
	}
	if !job.OwnedBy(company) {
		s.logger.Debug("job not owned by caller's company",
			slog.Int64("job_id", int64(id)),
			slog.Int64("user_id", int64(actor)))
		return nil, 0, ErrNotOwned
	}
	return job, company, nil
}

// Create posts a job for the caller's company. A company id in the payload
// must match it; an empty one is filled in.
func (s *JobService) Create(ctx context.Context, actor domain.UserID, nj domain.NewJob) (*domain.Job, error) {
	company, err := s.companyOf(ctx, actor)
	if err != nil {
		return nil, err
	}
	if nj.CompanyID == 0 {
		nj.CompanyID = company
	}
	if nj.CompanyID != company {
		return nil, ErrNotOwned
	}

	job, err := s.store.CreateJob(ctx, nj)
	if err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	s.logger.Info("job created",
		slog.Int64("job_id", int64(job.ID)),
		slog.Int64("company_id", int64(job.CompanyID)))
	return job, nil
}

// Update replaces a job owned by the caller's company. The job cannot be
// moved to another company.
func (s *JobService) Update(ctx context.Context, actor domain.UserID, job *domain.Job) (*domain.Job, error) {
	_, company, err := s.ownedJob(ctx, actor, job.ID)
	if err != nil {
		return nil, err
	}
	if job.CompanyID == 0 {
		job.CompanyID = company
	}
	if job.CompanyID != company {
		return nil, ErrNotOwned
	}
	updated, err := s.store.UpdateJob(ctx, job)
	if err != nil {
		return nil, fmt.Errorf("failed to update job: %w", err)
	}
	return updated, nil
}

// Delete soft-deletes a job owned by the caller's company.
func (s *JobService) Delete(ctx context.Context, actor domain.UserID, id domain.JobID) error {
	if _, _, err := s.ownedJob(ctx, actor, id); err != nil {
		return err
	}
	if _, err := s.store.DeleteJob(ctx, id); err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	return nil
}

// Applicants lists the resumes submitted to a job owned by the caller's
// company. The page applies to the applications, in submission order.
func (s *JobService) Applicants(ctx context.Context, actor domain.UserID, page store.Page, jobID domain.JobID) ([]domain.Resume, error) {
	if _, _, err := s.ownedJob(ctx, actor, jobID); err != nil {
		return nil, err
	}
	apps, err := s.store.ListApplicationsByJob(ctx, page, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}

	resumes := make([]domain.Resume, 0, len(apps))
	for _, a := range apps {
		r, err := s.store.GetResumeByID(ctx, a.ResumeID)
		if err != nil {
			return nil, fmt.Errorf("failed to load resume %d: %w", a.ResumeID, err)
		}
		resumes = append(resumes, *r)
	}
	return resumes, nil
}
