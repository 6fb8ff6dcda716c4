package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/jobboard-api/internal/domain"
	"github.com/phrazzld/jobboard-api/internal/service/auth"
	"github.com/phrazzld/jobboard-api/internal/store"
)

// AccountStore is the subset of the store used by AccountService.
type AccountStore interface {
	store.UserStore
	GetCompanyByID(ctx context.Context, id domain.CompanyID) (*domain.Company, error)
}

// AccountService manages registration, login and the caller's own account.
type AccountService struct {
	store  AccountStore
	hasher auth.PasswordHasher
	tokens auth.TokenService
	logger *slog.Logger
}

// NewAccountService creates a new AccountService.
func NewAccountService(
	s AccountStore,
	hasher auth.PasswordHasher,
	tokens auth.TokenService,
	logger *slog.Logger,
) *AccountService {
	return &AccountService{
		store:  s,
		hasher: hasher,
		tokens: tokens,
		logger: logger.With(slog.String("component", "account_service")),
	}
}

// Register creates a user with the default role. An email already in use is
// rejected before hashing; the store enforces the same rule for concurrent
// registrations.
func (s *AccountService) Register(ctx context.Context, email, password string) (*domain.User, error) {
	if err := domain.ValidateEmail(email); err != nil {
		return nil, err
	}
	if _, err := s.store.GetUserByEmail(ctx, email); err == nil {
		s.logger.Debug("attempted to register an existing email", slog.String("email", email))
		return nil, store.ErrEmailExists
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user, err := s.store.CreateUser(ctx, domain.NewUser{Email: email, PasswordHash: hash})
	if err != nil {
		if !errors.Is(err, store.ErrEmailExists) {
			s.logger.Error("failed to create user", slog.String("error", err.Error()))
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("user registered", slog.Int64("user_id", int64(user.ID)))
	return user, nil
}

// Login checks the credentials and returns a signed access token. Unknown
// emails and wrong passwords are both reported as auth.ErrWrongPassword.
func (s *AccountService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", nil, auth.ErrWrongPassword
		}
		return "", nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		s.logger.Debug("login rejected", slog.Int64("user_id", int64(user.ID)))
		return "", nil, auth.ErrWrongPassword
	}

	token, err := s.tokens.Issue(ctx, user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// UpdateEmail changes the caller's email address.
func (s *AccountService) UpdateEmail(ctx context.Context, id domain.UserID, email string) (*domain.User, error) {
	user, err := s.store.GetUserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve user for update: %w", err)
	}
	user.Email = email

	updated, err := s.store.UpdateUser(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to update user email: %w", err)
	}
	s.logger.Info("user email updated", slog.Int64("user_id", int64(id)))
	return updated, nil
}

// UpdatePassword replaces the caller's password.
func (s *AccountService) UpdatePassword(ctx context.Context, id domain.UserID, password string) error {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return err
	}
	if _, err := s.store.UpdatePassword(ctx, id, hash); err != nil {
		return fmt.Errorf("failed to update user password: %w", err)
	}
	s.logger.Info("user password updated", slog.Int64("user_id", int64(id)))
	return nil
}

// Delete soft-deletes the account. Tokens already issued remain valid until
// they expire.
func (s *AccountService) Delete(ctx context.Context, id domain.UserID) error {
	if _, err := s.store.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	s.logger.Info("user deleted", slog.Int64("user_id", int64(id)))
	return nil
}

// SetRole changes another user's role. The change is visible to the
// authorization filter once the user logs in again.
func (s *AccountService) SetRole(ctx context.Context, id domain.UserID, role domain.Role) (*domain.User, error) {
	user, err := s.store.SetRole(ctx, id, role)
	if err != nil {
		return nil, fmt.Errorf("failed to set role: %w", err)
	}
	s.logger.Info("user role changed",
		slog.Int64("user_id", int64(id)),
		slog.String("role", role.String()))
	return user, nil
}

// AssignCompany attaches a user to a company, which is what lets an HR user
// manage that company's jobs.
func (s *AccountService) AssignCompany(ctx context.Context, id domain.UserID, companyID domain.CompanyID) (*domain.User, error) {
	company, err := s.store.GetCompanyByID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve company: %w", err)
	}
	if company.IsDeleted {
		return nil, store.ErrCompanyNotFound
	}

	user, err := s.store.GetUserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve user for update: %w", err)
	}
	user.CompanyID = companyID

	updated, err := s.store.UpdateUser(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to assign company: %w", err)
	}
	s.logger.Info("user assigned to company",
		slog.Int64("user_id", int64(id)),
		slog.Int64("company_id", int64(companyID)))
	return updated, nil
}
