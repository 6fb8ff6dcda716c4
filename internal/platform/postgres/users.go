package postgres

import (
	"context"
	"log/slog"

	"github.com/phrazzld/jobboard-api/internal/domain"
	"github.com/phrazzld/jobboard-api/internal/platform/logger"
	"github.com/phrazzld/jobboard-api/internal/store"
)

// CreateUser implements store.UserStore.
func (s *Store) CreateUser(ctx context.Context, nu domain.NewUser) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	if err := nu.Validate(); err != nil {
		return nil, invalid(err)
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	u, err := scanUser(s.db.QueryRowContext(ctx, `
		INSERT INTO users (email, password, role_id)
		VALUES ($1, $2, $3)
		RETURNING `+userColumns,
		nu.Email, nu.PasswordHash, domain.RoleUser,
	))
	if err != nil {
		err = MapError(err)
		if !store.IsDuplicateError(err) {
			log.Error("failed to create user", slog.String("error", err.Error()))
		}
		return nil, err
	}

	log.Debug("user created", slog.Int64("user_id", int64(u.ID)))
	return u, nil
}

// GetUserByID implements store.UserStore.
func (s *Store) GetUserByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	u, err := scanUser(s.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		return nil, mapNotFound(err, store.ErrUserNotFound)
	}
	return u, nil
}

// GetUserByEmail implements store.UserStore.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	u, err := scanUser(s.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1 AND NOT is_delete`, email))
	if err != nil {
		return nil, mapNotFound(err, store.ErrUserNotFound)
	}
	return u, nil
}

// ListUsers implements store.UserStore.
func (s *Store) ListUsers(ctx context.Context, page store.Page) ([]domain.User, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return queryList(ctx, s.db, scanUser, `
		SELECT `+userColumns+` FROM users
		WHERE NOT is_delete
		ORDER BY id
		LIMIT $1 OFFSET $2`,
		limitArg(page), page.Offset)
}

// UpdateUser implements store.UserStore.
func (s *Store) UpdateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	if err := user.Validate(); err != nil {
		return nil, invalid(err)
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	u, err := scanUser(s.db.QueryRowContext(ctx, `
		UPDATE users SET email = $2, company_id = $3
		WHERE id = $1
		RETURNING `+userColumns,
		user.ID, user.Email, user.CompanyID))
	if err != nil {
		return nil, mapNotFound(err, store.ErrUserNotFound)
	}
	return u, nil
}

// UpdatePassword implements store.UserStore.
func (s *Store) UpdatePassword(ctx context.Context, id domain.UserID, passwordHash string) (*domain.User, error) {
	if passwordHash == "" {
		return nil, invalid(domain.NewValidationError("password", "is required", domain.ErrEmptyPassword))
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	u, err := scanUser(s.db.QueryRowContext(ctx,
		`UPDATE users SET password = $2 WHERE id = $1 RETURNING `+userColumns,
		id, passwordHash))
	if err != nil {
		return nil, mapNotFound(err, store.ErrUserNotFound)
	}
	return u, nil
}

// SetRole implements store.UserStore.
func (s *Store) SetRole(ctx context.Context, id domain.UserID, role domain.Role) (*domain.User, error) {
	if !role.Valid() {
		return nil, invalid(domain.ErrInvalidRole)
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	u, err := scanUser(s.db.QueryRowContext(ctx,
		`UPDATE users SET role_id = $2 WHERE id = $1 RETURNING `+userColumns,
		id, role))
	if err != nil {
		return nil, mapNotFound(err, store.ErrUserNotFound)
	}
	return u, nil
}

// DeleteUser implements store.UserStore.
func (s *Store) DeleteUser(ctx context.Context, id domain.UserID) (bool, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	res, err := s.db.ExecContext(ctx, `UPDATE users SET is_delete = TRUE WHERE id = $1`, id)
	if err != nil {
		return false, MapError(err)
	}
	if err := CheckRowsAffected(res, store.ErrUserNotFound); err != nil {
		return false, err
	}
	logger.FromContextOrDefault(ctx, s.logger).Debug("user deleted", slog.Int64("user_id", int64(id)))
	return true, nil
}
