package postgres

import (
	"context"

	"github.com/phrazzld/jobboard-api/internal/domain"
	"github.com/phrazzld/jobboard-api/internal/store"
)

// CreateResume implements store.ResumeStore.
func (s *Store) CreateResume(ctx context.Context, nr domain.NewResume) (*domain.Resume, error) {
	if err := nr.Validate(); err != nil {
		return nil, invalid(err)
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	r, err := scanResume(s.db.QueryRowContext(ctx, `
		INSERT INTO resumes (user_id, email, url)
		VALUES ($1, $2, $3)
		RETURNING `+resumeColumns,
		nr.UserID, nr.Email, nr.URL))
	if err != nil {
		return nil, MapError(err)
	}
	return r, nil
}

// GetResumeByID implements store.ResumeStore.
func (s *Store) GetResumeByID(ctx context.Context, id domain.ResumeID) (*domain.Resume, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	r, err := scanResume(s.db.QueryRowContext(ctx,
		`SELECT `+resumeColumns+` FROM resumes WHERE id = $1`, id))
	if err != nil {
		return nil, mapNotFound(err, store.ErrResumeNotFound)
	}
	return r, nil
}

// ListResumesByUser implements store.ResumeStore.
func (s *Store) ListResumesByUser(ctx context.Context, page store.Page, userID domain.UserID) ([]domain.Resume, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return queryList(ctx, s.db, scanResume, `
		SELECT `+resumeColumns+` FROM resumes
		WHERE user_id = $3 AND NOT is_delete
		ORDER BY id
		LIMIT $1 OFFSET $2`,
		limitArg(page), page.Offset, userID)
}

// UpdateResume implements store.ResumeStore. The owner is not updatable.
func (s *Store) UpdateResume(ctx context.Context, resume *domain.Resume) (*domain.Resume, error) {
	if err := resume.Validate(); err != nil {
		return nil, invalid(err)
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	r, err := scanResume(s.db.QueryRowContext(ctx, `
		UPDATE resumes SET email = $2, url = $3
		WHERE id = $1
		RETURNING `+resumeColumns,
		resume.ID, resume.Email, resume.URL))
	if err != nil {
		return nil, mapNotFound(err, store.ErrResumeNotFound)
	}
	return r, nil
}

// DeleteResume implements store.ResumeStore.
func (s *Store) DeleteResume(ctx context.Context, id domain.ResumeID) (bool, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	res, err := s.db.ExecContext(ctx, `UPDATE resumes SET is_delete = TRUE WHERE id = $1`, id)
	if err != nil {
		return false, MapError(err)
	}
	if err := CheckRowsAffected(res, store.ErrResumeNotFound); err != nil {
		return false, err
	}
	return true, nil
}
