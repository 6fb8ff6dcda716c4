package memory

import (
	"context"
	"log/slog"

	"github.com/phrazzld/jobboard-api/internal/domain"
	"github.com/phrazzld/jobboard-api/internal/store"
)

func (s *Store) companyEmailTakenLocked(email string, self domain.CompanyID) bool {
	for id, c := range s.companies.rows {
		if c.Email == email && domain.CompanyID(id) != self {
			return true
		}
	}
	return false
}

// CreateCompany implements store.CompanyStore.
func (s *Store) CreateCompany(ctx context.Context, nc domain.NewCompany) (*domain.Company, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	if err := nc.Validate(); err != nil {
		return nil, invalid(err)
	}

	s.companies.mu.Lock()
	defer s.companies.mu.Unlock()

	if s.companyEmailTakenLocked(nc.Email, 0) {
		return nil, store.ErrEmailExists
	}
	c := s.companies.insertLocked(func(id int64) domain.Company {
		return domain.Company{
			ID:          domain.CompanyID(id),
			Name:        nc.Name,
			Email:       nc.Email,
			Address:     nc.Address,
			Description: nc.Description,
		}
	})

	s.logger.Debug("company created", slog.Int64("company_id", int64(c.ID)))
	return &c, nil
}

// GetCompanyByID implements store.CompanyStore.
func (s *Store) GetCompanyByID(ctx context.Context, id domain.CompanyID) (*domain.Company, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	s.companies.mu.RLock()
	defer s.companies.mu.RUnlock()

	c, ok := s.companies.rows[int64(id)]
	if !ok {
		return nil, store.ErrCompanyNotFound
	}
	return &c, nil
}

// GetCompanyByEmail implements store.CompanyStore.
func (s *Store) GetCompanyByEmail(ctx context.Context, email string) (*domain.Company, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	s.companies.mu.RLock()
	defer s.companies.mu.RUnlock()

	for _, id := range s.companies.order {
		if c := s.companies.rows[id]; c.Email == email && !c.IsDeleted {
			return &c, nil
		}
	}
	return nil, store.ErrCompanyNotFound
}

// ListCompanies implements store.CompanyStore.
func (s *Store) ListCompanies(ctx context.Context, page store.Page) ([]domain.Company, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	if err := page.Validate(); err != nil {
		return nil, err
	}
	s.companies.mu.RLock()
	defer s.companies.mu.RUnlock()

	return s.companies.listLocked(page, func(c domain.Company) bool { return !c.IsDeleted }), nil
}

// UpdateCompany implements store.CompanyStore.
func (s *Store) UpdateCompany(ctx context.Context, company *domain.Company) (*domain.Company, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	if err := company.Validate(); err != nil {
		return nil, invalid(err)
	}

	s.companies.mu.Lock()
	defer s.companies.mu.Unlock()

	current, ok := s.companies.rows[int64(company.ID)]
	if !ok {
		return nil, store.ErrCompanyNotFound
	}
	if current.Email != company.Email && s.companyEmailTakenLocked(company.Email, company.ID) {
		return nil, store.ErrEmailExists
	}
	current.Name = company.Name
	current.Email = company.Email
	current.Address = company.Address
	current.Description = company.Description
	s.companies.rows[int64(company.ID)] = current
	return ptr(current), nil
}

// DeleteCompany implements store.CompanyStore.
func (s *Store) DeleteCompany(ctx context.Context, id domain.CompanyID) (bool, error) {
	if err := checkContext(ctx); err != nil {
		return false, err
	}
	s.companies.mu.Lock()
	defer s.companies.mu.Unlock()

	c, ok := s.companies.rows[int64(id)]
	if !ok {
		return false, store.ErrCompanyNotFound
	}
	c.IsDeleted = true
	s.companies.rows[int64(id)] = c
	return true, nil
}
