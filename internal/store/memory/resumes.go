package memory

import (
	"context"
	"log/slog"

	"github.com/phrazzld/jobboard-api/internal/domain"
	"github.com/phrazzld/jobboard-api/internal/store"
)

func (s *Store) userExists(id domain.UserID) bool {
	s.users.mu.RLock()
	defer s.users.mu.RUnlock()
	_, ok := s.users.rows[int64(id)]
	return ok
}

// CreateResume implements store.ResumeStore.
func (s *Store) CreateResume(ctx context.Context, nr domain.NewResume) (*domain.Resume, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	if err := nr.Validate(); err != nil {
		return nil, invalid(err)
	}
	if !s.userExists(nr.UserID) {
		return nil, invalid(domain.ErrMissingOwner)
	}

	s.resumes.mu.Lock()
	defer s.resumes.mu.Unlock()

	r := s.resumes.insertLocked(func(id int64) domain.Resume {
		return domain.Resume{
			ID:     domain.ResumeID(id),
			UserID: nr.UserID,
			Email:  nr.Email,
			URL:    nr.URL,
		}
	})

	s.logger.Debug("resume created",
		slog.Int64("resume_id", int64(r.ID)),
		slog.Int64("user_id", int64(r.UserID)))
	return &r, nil
}

// GetResumeByID implements store.ResumeStore.
func (s *Store) GetResumeByID(ctx context.Context, id domain.ResumeID) (*domain.Resume, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	s.resumes.mu.RLock()
	defer s.resumes.mu.RUnlock()

	r, ok := s.resumes.rows[int64(id)]
	if !ok {
		return nil, store.ErrResumeNotFound
	}
	return &r, nil
}

// ListResumesByUser implements store.ResumeStore.
func (s *Store) ListResumesByUser(ctx context.Context, page store.Page, userID domain.UserID) ([]domain.Resume, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	if err := page.Validate(); err != nil {
		return nil, err
	}
	s.resumes.mu.RLock()
	defer s.resumes.mu.RUnlock()

	return s.resumes.listLocked(page, func(r domain.Resume) bool {
		return !r.IsDeleted && r.UserID == userID
	}), nil
}

// UpdateResume implements store.ResumeStore. The owner of a resume is fixed
// at creation.
func (s *Store) UpdateResume(ctx context.Context, resume *domain.Resume) (*domain.Resume, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	if err := resume.Validate(); err != nil {
		return nil, invalid(err)
	}

	s.resumes.mu.Lock()
	defer s.resumes.mu.Unlock()

	current, ok := s.resumes.rows[int64(resume.ID)]
	if !ok {
		return nil, store.ErrResumeNotFound
	}
	current.Email = resume.Email
	current.URL = resume.URL
	s.resumes.rows[int64(resume.ID)] = current
	return ptr(current), nil
}

// DeleteResume implements store.ResumeStore.
func (s *Store) DeleteResume(ctx context.Context, id domain.ResumeID) (bool, error) {
	if err := checkContext(ctx); err != nil {
		return false, err
	}
	s.resumes.mu.Lock()
	defer s.resumes.mu.Unlock()

	r, ok := s.resumes.rows[int64(id)]
	if !ok {
		return false, store.ErrResumeNotFound
	}
	r.IsDeleted = true
	s.resumes.rows[int64(id)] = r
	return true, nil
}
