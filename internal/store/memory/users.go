package memory

import (
	"context"
	"log/slog"

	"github.com/phrazzld/jobboard-api/internal/domain"
	"github.com/phrazzld/jobboard-api/internal/store"
)

// emailTakenLocked reports whether any user other than self, deleted or not,
// uses email. The caller must hold the users lock.
func (s *Store) emailTakenLocked(email string, self domain.UserID) bool {
	for id, u := range s.users.rows {
		if u.Email == email && domain.UserID(id) != self {
			return true
		}
	}
	return false
}

// CreateUser implements store.UserStore.
func (s *Store) CreateUser(ctx context.Context, nu domain.NewUser) (*domain.User, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	if err := nu.Validate(); err != nil {
		return nil, invalid(err)
	}

	s.users.mu.Lock()
	defer s.users.mu.Unlock()

	if s.emailTakenLocked(nu.Email, 0) {
		return nil, store.ErrEmailExists
	}
	u := s.users.insertLocked(func(id int64) domain.User {
		return domain.User{
			ID:           domain.UserID(id),
			Email:        nu.Email,
			PasswordHash: nu.PasswordHash,
			Role:         domain.RoleUser,
		}
	})

	s.logger.Debug("user created", slog.Int64("user_id", int64(u.ID)))
	return &u, nil
}

// GetUserByID implements store.UserStore.
func (s *Store) GetUserByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	s.users.mu.RLock()
	defer s.users.mu.RUnlock()

	u, ok := s.users.rows[int64(id)]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return &u, nil
}

// GetUserByEmail implements store.UserStore.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	s.users.mu.RLock()
	defer s.users.mu.RUnlock()

	for _, id := range s.users.order {
		if u := s.users.rows[id]; u.Email == email && !u.IsDeleted {
			return &u, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// ListUsers implements store.UserStore.
func (s *Store) ListUsers(ctx context.Context, page store.Page) ([]domain.User, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	if err := page.Validate(); err != nil {
		return nil, err
	}
	s.users.mu.RLock()
	defer s.users.mu.RUnlock()

	return s.users.listLocked(page, func(u domain.User) bool { return !u.IsDeleted }), nil
}

// UpdateUser implements store.UserStore.
func (s *Store) UpdateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	if err := user.Validate(); err != nil {
		return nil, invalid(err)
	}

	s.users.mu.Lock()
	defer s.users.mu.Unlock()

	current, ok := s.users.rows[int64(user.ID)]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	if current.Email != user.Email && s.emailTakenLocked(user.Email, user.ID) {
		return nil, store.ErrEmailExists
	}
	current.Email = user.Email
	current.CompanyID = user.CompanyID
	s.users.rows[int64(user.ID)] = current
	return ptr(current), nil
}

// UpdatePassword implements store.UserStore.
func (s *Store) UpdatePassword(ctx context.Context, id domain.UserID, passwordHash string) (*domain.User, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	if passwordHash == "" {
		return nil, invalid(domain.NewValidationError("password", "is required", domain.ErrEmptyPassword))
	}
	return s.mutateUser(id, func(u *domain.User) { u.PasswordHash = passwordHash })
}

// SetRole implements store.UserStore.
func (s *Store) SetRole(ctx context.Context, id domain.UserID, role domain.Role) (*domain.User, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	if !role.Valid() {
		return nil, invalid(domain.ErrInvalidRole)
	}
	return s.mutateUser(id, func(u *domain.User) { u.Role = role })
}

// DeleteUser implements store.UserStore.
func (s *Store) DeleteUser(ctx context.Context, id domain.UserID) (bool, error) {
	if err := checkContext(ctx); err != nil {
		return false, err
	}
	if _, err := s.mutateUser(id, func(u *domain.User) { u.IsDeleted = true }); err != nil {
		return false, err
	}
	s.logger.Debug("user deleted", slog.Int64("user_id", int64(id)))
	return true, nil
}

func (s *Store) mutateUser(id domain.UserID, fn func(*domain.User)) (*domain.User, error) {
	s.users.mu.Lock()
	defer s.users.mu.Unlock()

	u, ok := s.users.rows[int64(id)]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	fn(&u)
	s.users.rows[int64(id)] = u
	return &u, nil
}
