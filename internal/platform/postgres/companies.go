package postgres

import (
	"context"
	"log/slog"

	"github.com/phrazzld/jobboard-api/internal/domain"
	"github.com/phrazzld/jobboard-api/internal/platform/logger"
	"github.com/phrazzld/jobboard-api/internal/store"
)

// CreateCompany implements store.CompanyStore.
func (s *Store) CreateCompany(ctx context.Context, nc domain.NewCompany) (*domain.Company, error) {
	if err := nc.Validate(); err != nil {
		return nil, invalid(err)
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	c, err := scanCompany(s.db.QueryRowContext(ctx, `
		INSERT INTO companies (name, email, address, description)
		VALUES ($1, $2, $3, $4)
		RETURNING `+companyColumns,
		nc.Name, nc.Email, nc.Address, nc.Description))
	if err != nil {
		return nil, MapError(err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Debug("company created",
		slog.Int64("company_id", int64(c.ID)))
	return c, nil
}

// GetCompanyByID implements store.CompanyStore.
func (s *Store) GetCompanyByID(ctx context.Context, id domain.CompanyID) (*domain.Company, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	c, err := scanCompany(s.db.QueryRowContext(ctx,
		`SELECT `+companyColumns+` FROM companies WHERE id = $1`, id))
	if err != nil {
		return nil, mapNotFound(err, store.ErrCompanyNotFound)
	}
	return c, nil
}

// GetCompanyByEmail implements store.CompanyStore.
func (s *Store) GetCompanyByEmail(ctx context.Context, email string) (*domain.Company, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	c, err := scanCompany(s.db.QueryRowContext(ctx,
		`SELECT `+companyColumns+` FROM companies WHERE email = $1 AND NOT is_delete`, email))
	if err != nil {
		return nil, mapNotFound(err, store.ErrCompanyNotFound)
	}
	return c, nil
}

// ListCompanies implements store.CompanyStore.
func (s *Store) ListCompanies(ctx context.Context, page store.Page) ([]domain.Company, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return queryList(ctx, s.db, scanCompany, `
		SELECT `+companyColumns+` FROM companies
		WHERE NOT is_delete
		ORDER BY id
		LIMIT $1 OFFSET $2`,
		limitArg(page), page.Offset)
}

// UpdateCompany implements store.CompanyStore.
func (s *Store) UpdateCompany(ctx context.Context, company *domain.Company) (*domain.Company, error) {
	if err := company.Validate(); err != nil {
		return nil, invalid(err)
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	c, err := scanCompany(s.db.QueryRowContext(ctx, `
		UPDATE companies SET name = $2, email = $3, address = $4, description = $5
		WHERE id = $1
		RETURNING `+companyColumns,
		company.ID, company.Name, company.Email, company.Address, company.Description))
	if err != nil {
		return nil, mapNotFound(err, store.ErrCompanyNotFound)
	}
	return c, nil
}

// DeleteCompany implements store.CompanyStore.
func (s *Store) DeleteCompany(ctx context.Context, id domain.CompanyID) (bool, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	res, err := s.db.ExecContext(ctx, `UPDATE companies SET is_delete = TRUE WHERE id = $1`, id)
	if err != nil {
		return false, MapError(err)
	}
	if err := CheckRowsAffected(res, store.ErrCompanyNotFound); err != nil {
		return false, err
	}
	return true, nil
}
