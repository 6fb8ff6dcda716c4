package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/phrazzld/jobboard-api/internal/domain"
	"github.com/phrazzld/jobboard-api/internal/platform/logger"
	"github.com/phrazzld/jobboard-api/internal/store"
)

// CreateApplication implements store.ApplicationStore. The job and resume
// rows are share-locked for the life of the transaction so a concurrent soft
// delete waits until the application is committed.
func (s *Store) CreateApplication(ctx context.Context, resumeID domain.ResumeID, jobID domain.JobID) (*domain.Application, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var app *domain.Application
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		var jobDeleted bool
		err := tx.QueryRowContext(ctx,
			`SELECT is_delete FROM jobs WHERE id = $1 FOR SHARE`, jobID).Scan(&jobDeleted)
		if err != nil {
			return mapNotFound(err, store.ErrJobNotFound)
		}
		if jobDeleted {
			return store.ErrJobClosed
		}

		var resumeDeleted bool
		err = tx.QueryRowContext(ctx,
			`SELECT is_delete FROM resumes WHERE id = $1 FOR SHARE`, resumeID).Scan(&resumeDeleted)
		if err != nil {
			return mapNotFound(err, store.ErrResumeNotFound)
		}
		if resumeDeleted {
			return store.ErrResumeNotFound
		}

		app, err = scanApplication(tx.QueryRowContext(ctx, `
			INSERT INTO resume_job_maps (resume_id, job_id)
			VALUES ($1, $2)
			RETURNING `+applicationColumns,
			resumeID, jobID))
		return MapError(err)
	})
	if err != nil {
		return nil, MapTxError(err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Debug("application created",
		slog.Int64("application_id", int64(app.ID)),
		slog.Int64("resume_id", int64(resumeID)),
		slog.Int64("job_id", int64(jobID)))
	return app, nil
}

// ListApplicationsByJob implements store.ApplicationStore.
func (s *Store) ListApplicationsByJob(ctx context.Context, page store.Page, jobID domain.JobID) ([]domain.Application, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return queryList(ctx, s.db, scanApplication, `
		SELECT `+applicationColumns+` FROM resume_job_maps
		WHERE job_id = $3
		ORDER BY id
		LIMIT $1 OFFSET $2`,
		limitArg(page), page.Offset, jobID)
}

// ListApplicationsByResume implements store.ApplicationStore.
func (s *Store) ListApplicationsByResume(ctx context.Context, resumeID domain.ResumeID) ([]domain.Application, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return queryList(ctx, s.db, scanApplication, `
		SELECT `+applicationColumns+` FROM resume_job_maps
		WHERE resume_id = $1
		ORDER BY id`,
		resumeID)
}
