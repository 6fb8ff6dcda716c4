package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/jobboard-api/internal/domain"
	"github.com/phrazzld/jobboard-api/internal/store"
)

// Store implements store.Store on a pooled *sql.DB. Every operation is a
// single parameterised statement except CreateApplication, which runs in a
// transaction.
type Store struct {
	db           *sql.DB
	logger       *slog.Logger
	queryTimeout time.Duration
}

var _ store.Store = (*Store)(nil)

// New creates a Store. A zero queryTimeout leaves deadlines to the caller's
// context.
func New(db *sql.DB, logger *slog.Logger, queryTimeout time.Duration) *Store {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		db:           db,
		logger:       logger.With(slog.String("component", "postgres_store")),
		queryTimeout: queryTimeout,
	}
}

// DB returns the underlying connection pool.
func (s *Store) DB() *sql.DB {
	return s.db
}

func (s *Store) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.queryTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.queryTimeout)
}

// limitArg turns an absent limit into NULL, which PostgreSQL treats as LIMIT ALL.
func limitArg(p store.Page) any {
	if p.Limit == nil {
		return nil
	}
	return *p.Limit
}

type rowScanner interface {
	Scan(dest ...any) error
}

const userColumns = `id, email, password, company_id, role_id, is_delete`

func scanUser(row rowScanner) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CompanyID, &u.Role, &u.IsDeleted); err != nil {
		return nil, err
	}
	return &u, nil
}

const companyColumns = `id, name, email, address, description, is_delete`

func scanCompany(row rowScanner) (*domain.Company, error) {
	var c domain.Company
	if err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Address, &c.Description, &c.IsDeleted); err != nil {
		return nil, err
	}
	return &c, nil
}

const jobColumns = `id, name, company_id, location, quantity, salary, level, description, is_delete`

func scanJob(row rowScanner) (*domain.Job, error) {
	var j domain.Job
	if err := row.Scan(&j.ID, &j.Name, &j.CompanyID, &j.Location, &j.Quantity,
		&j.Salary, &j.Level, &j.Description, &j.IsDeleted); err != nil {
		return nil, err
	}
	return &j, nil
}

const resumeColumns = `id, user_id, email, url, is_delete`

func scanResume(row rowScanner) (*domain.Resume, error) {
	var r domain.Resume
	if err := row.Scan(&r.ID, &r.UserID, &r.Email, &r.URL, &r.IsDeleted); err != nil {
		return nil, err
	}
	return &r, nil
}

const applicationColumns = `id, resume_id, job_id`

func scanApplication(row rowScanner) (*domain.Application, error) {
	var a domain.Application
	if err := row.Scan(&a.ID, &a.ResumeID, &a.JobID); err != nil {
		return nil, err
	}
	return &a, nil
}

// queryList runs a multi-row query and scans every row with scan.
func queryList[T any](ctx context.Context, db store.DBTX, scan func(rowScanner) (*T, error), query string, args ...any) ([]T, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	out := []T{}
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, MapError(err)
		}
		out = append(out, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return out, nil
}

func invalid(err error) error {
	return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
}
