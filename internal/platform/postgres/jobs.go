package postgres

import (
	"context"
	"log/slog"

	"github.com/phrazzld/jobboard-api/internal/domain"
	"github.com/phrazzld/jobboard-api/internal/platform/logger"
	"github.com/phrazzld/jobboard-api/internal/store"
)

// CreateJob implements store.JobStore. An unknown company is reported by the
// foreign key as store.ErrInvalidEntity.
func (s *Store) CreateJob(ctx context.Context, nj domain.NewJob) (*domain.Job, error) {
	if err := nj.Validate(); err != nil {
		return nil, invalid(err)
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	j, err := scanJob(s.db.QueryRowContext(ctx, `
		INSERT INTO jobs (name, company_id, location, quantity, salary, level, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+jobColumns,
		nj.Name, nj.CompanyID, nj.Location, nj.Quantity, nj.Salary, nj.Level, nj.Description))
	if err != nil {
		return nil, MapError(err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Debug("job created",
		slog.Int64("job_id", int64(j.ID)),
		slog.Int64("company_id", int64(j.CompanyID)))
	return j, nil
}

// GetJobByID implements store.JobStore.
func (s *Store) GetJobByID(ctx context.Context, id domain.JobID) (*domain.Job, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	j, err := scanJob(s.db.QueryRowContext(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id))
	if err != nil {
		return nil, mapNotFound(err, store.ErrJobNotFound)
	}
	return j, nil
}

// ListJobs implements store.JobStore.
func (s *Store) ListJobs(ctx context.Context, page store.Page) ([]domain.Job, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return queryList(ctx, s.db, scanJob, `
		SELECT `+jobColumns+` FROM jobs
		WHERE NOT is_delete
		ORDER BY id
		LIMIT $1 OFFSET $2`,
		limitArg(page), page.Offset)
}

// ListJobsByCompany implements store.JobStore.
func (s *Store) ListJobsByCompany(ctx context.Context, page store.Page, companyID domain.CompanyID) ([]domain.Job, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return queryList(ctx, s.db, scanJob, `
		SELECT `+jobColumns+` FROM jobs
		WHERE company_id = $3 AND NOT is_delete
		ORDER BY id
		LIMIT $1 OFFSET $2`,
		limitArg(page), page.Offset, companyID)
}

// UpdateJob implements store.JobStore.
func (s *Store) UpdateJob(ctx context.Context, job *domain.Job) (*domain.Job, error) {
	if err := job.Validate(); err != nil {
		return nil, invalid(err)
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	j, err := scanJob(s.db.QueryRowContext(ctx, `
		UPDATE jobs
		SET name = $2, company_id = $3, location = $4, quantity = $5,
		    salary = $6, level = $7, description = $8
		WHERE id = $1
		RETURNING `+jobColumns,
		job.ID, job.Name, job.CompanyID, job.Location, job.Quantity,
		job.Salary, job.Level, job.Description))
	if err != nil {
		return nil, mapNotFound(err, store.ErrJobNotFound)
	}
	return j, nil
}

// DeleteJob implements store.JobStore.
func (s *Store) DeleteJob(ctx context.Context, id domain.JobID) (bool, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	res, err := s.db.ExecContext(ctx, `UPDATE jobs SET is_delete = TRUE WHERE id = $1`, id)
	if err != nil {
		return false, MapError(err)
	}
	if err := CheckRowsAffected(res, store.ErrJobNotFound); err != nil {
		return false, err
	}
	return true, nil
}
