package store

import (
	"context"

	"github.com/phrazzld/jobboard-api/internal/domain"
)

// UserStore defines persistence for user accounts.
type UserStore interface {
	// CreateUser registers a user with RoleUser and no company.
	// Returns ErrEmailExists if the email is already taken.
	CreateUser(ctx context.Context, user domain.NewUser) (*domain.User, error)

	// GetUserByID returns the user even when it is soft-deleted.
	// Returns ErrUserNotFound if no user has this id.
	GetUserByID(ctx context.Context, id domain.UserID) (*domain.User, error)

	// GetUserByEmail ignores soft-deleted users.
	// Returns ErrUserNotFound if no live user has this email.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	ListUsers(ctx context.Context, page Page) ([]domain.User, error)

	// UpdateUser changes the profile fields (email, company). Password, role
	// and the soft-delete flag are preserved.
	// Returns ErrUserNotFound or ErrEmailExists.
	UpdateUser(ctx context.Context, user *domain.User) (*domain.User, error)

	UpdatePassword(ctx context.Context, id domain.UserID, passwordHash string) (*domain.User, error)
	SetRole(ctx context.Context, id domain.UserID, role domain.Role) (*domain.User, error)

	// DeleteUser soft-deletes the user. Deleting twice succeeds.
	// Returns ErrUserNotFound if no user has this id.
	DeleteUser(ctx context.Context, id domain.UserID) (bool, error)
}

// CompanyStore defines persistence for companies.
type CompanyStore interface {
	// CreateCompany returns ErrEmailExists if another company uses the email.
	CreateCompany(ctx context.Context, company domain.NewCompany) (*domain.Company, error)
	GetCompanyByID(ctx context.Context, id domain.CompanyID) (*domain.Company, error)
	GetCompanyByEmail(ctx context.Context, email string) (*domain.Company, error)
	ListCompanies(ctx context.Context, page Page) ([]domain.Company, error)
	UpdateCompany(ctx context.Context, company *domain.Company) (*domain.Company, error)
	DeleteCompany(ctx context.Context, id domain.CompanyID) (bool, error)
}

// JobStore defines persistence for job postings.
type JobStore interface {
	CreateJob(ctx context.Context, job domain.NewJob) (*domain.Job, error)
	GetJobByID(ctx context.Context, id domain.JobID) (*domain.Job, error)
	ListJobs(ctx context.Context, page Page) ([]domain.Job, error)
	ListJobsByCompany(ctx context.Context, page Page, companyID domain.CompanyID) ([]domain.Job, error)
	UpdateJob(ctx context.Context, job *domain.Job) (*domain.Job, error)
	DeleteJob(ctx context.Context, id domain.JobID) (bool, error)
}

// ResumeStore defines persistence for resumes. The natural key of a resume
// is its owner, so lookups by owner return a page of resumes.
type ResumeStore interface {
	CreateResume(ctx context.Context, resume domain.NewResume) (*domain.Resume, error)
	GetResumeByID(ctx context.Context, id domain.ResumeID) (*domain.Resume, error)
	ListResumesByUser(ctx context.Context, page Page, userID domain.UserID) ([]domain.Resume, error)
	UpdateResume(ctx context.Context, resume *domain.Resume) (*domain.Resume, error)
	DeleteResume(ctx context.Context, id domain.ResumeID) (bool, error)
}

// ApplicationStore defines persistence for resume-to-job applications.
type ApplicationStore interface {
	// CreateApplication validates that the resume and the job exist and are
	// not soft-deleted, and records the application, as one atomic step.
	// Returns ErrResumeNotFound, ErrJobNotFound, ErrJobClosed or ErrAlreadyApplied.
	CreateApplication(ctx context.Context, resumeID domain.ResumeID, jobID domain.JobID) (*domain.Application, error)
	ListApplicationsByJob(ctx context.Context, page Page, jobID domain.JobID) ([]domain.Application, error)
	ListApplicationsByResume(ctx context.Context, resumeID domain.ResumeID) ([]domain.Application, error)
}

// Store is the full persistence contract. A single Store value is built at
// startup and shared by all concurrent requests; implementations must be safe
// for concurrent use.
type Store interface {
	UserStore
	CompanyStore
	JobStore
	ResumeStore
	ApplicationStore
}
