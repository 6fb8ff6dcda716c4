package api

import "github.com/phrazzld/jobboard-api/internal/domain"

// CredentialsRequest is the payload of /register and /login.
type CredentialsRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,max=72"`
}

// AuthResponse is returned by /register and /login.
type AuthResponse struct {
	UserID domain.UserID `json:"user_id"`
	Token  string        `json:"token,omitempty"`
}

// UpdateEmailRequest changes the caller's email.
type UpdateEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// UpdatePasswordRequest changes the caller's password.
type UpdatePasswordRequest struct {
	Password string `json:"password" validate:"required,max=72"`
}

// UserRequest names a target user for admin operations.
type UserRequest struct {
	UserID domain.UserID `json:"user_id" validate:"required,gt=0"`
}

// AssignCompanyRequest attaches a user to a company.
type AssignCompanyRequest struct {
	UserID    domain.UserID    `json:"user_id"    validate:"required,gt=0"`
	CompanyID domain.CompanyID `json:"company_id" validate:"required,gt=0"`
}

// DeleteRequest names the record to soft-delete.
type DeleteRequest struct {
	ID int64 `json:"id" validate:"required,gt=0"`
}

// DeleteResponse reports a soft delete.
type DeleteResponse struct {
	Deleted bool `json:"deleted"`
}

// UpdateCompanyRequest replaces a company's fields.
type UpdateCompanyRequest struct {
	ID          domain.CompanyID `json:"id"    validate:"required,gt=0"`
	Name        string           `json:"name"  validate:"required"`
	Email       string           `json:"email" validate:"required,email"`
	Address     string           `json:"address"`
	Description string           `json:"description"`
}

// CreateJobRequest posts a job. CompanyID defaults to the caller's company.
type CreateJobRequest struct {
	Name        string           `json:"name"       validate:"required"`
	CompanyID   domain.CompanyID `json:"company_id" validate:"gte=0"`
	Location    string           `json:"location"`
	Quantity    int              `json:"quantity"   validate:"gte=0"`
	Salary      int              `json:"salary"     validate:"gte=0"`
	Level       string           `json:"level"`
	Description string           `json:"description"`
}

// UpdateJobRequest replaces a job's fields.
type UpdateJobRequest struct {
	ID          domain.JobID     `json:"id"         validate:"required,gt=0"`
	Name        string           `json:"name"       validate:"required"`
	CompanyID   domain.CompanyID `json:"company_id" validate:"gte=0"`
	Location    string           `json:"location"`
	Quantity    int              `json:"quantity"   validate:"gte=0"`
	Salary      int              `json:"salary"     validate:"gte=0"`
	Level       string           `json:"level"`
	Description string           `json:"description"`
}

// ApplyRequest submits a resume to a job.
type ApplyRequest struct {
	ResumeID domain.ResumeID `json:"resume_id" validate:"required,gt=0"`
	JobID    domain.JobID    `json:"job_id"    validate:"required,gt=0"`
}

// ResumeRequest creates a resume owned by the caller.
type ResumeRequest struct {
	Email string `json:"email" validate:"required,email"`
	URL   string `json:"url"   validate:"required"`
}

// UpdateResumeRequest replaces one of the caller's resumes.
type UpdateResumeRequest struct {
	ID    domain.ResumeID `json:"id"    validate:"required,gt=0"`
	Email string          `json:"email" validate:"required,email"`
	URL   string          `json:"url"   validate:"required"`
}
