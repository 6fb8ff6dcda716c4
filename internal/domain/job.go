package domain

// Job is a posting owned by a company. Only users attached to the same
// company may mutate it.
type Job struct {
	ID          JobID     `json:"id"`
	Name        string    `json:"name"`
	CompanyID   CompanyID `json:"company_id"`
	Location    string    `json:"location"`
	Quantity    int       `json:"quantity"`
	Salary      int       `json:"salary"`
	Level       string    `json:"level"`
	Description string    `json:"description"`
	IsDeleted   bool      `json:"is_delete"`
}

// NewJob is the creation payload for a Job.
type NewJob struct {
	Name        string    `json:"name" validate:"required"`
	CompanyID   CompanyID `json:"company_id" validate:"required,gt=0"`
	Location    string    `json:"location"`
	Quantity    int       `json:"quantity" validate:"gte=0"`
	Salary      int       `json:"salary" validate:"gte=0"`
	Level       string    `json:"level"`
	Description string    `json:"description"`
}

func (n NewJob) Validate() error {
	if n.Name == "" {
		return NewValidationError("name", "is required", ErrEmptyName)
	}
	if n.CompanyID <= 0 {
		return NewValidationError("company_id", "is required", ErrMissingCompany)
	}
	if n.Quantity < 0 {
		return NewValidationError("quantity", "cannot be negative", ErrNegativeNumber)
	}
	if n.Salary < 0 {
		return NewValidationError("salary", "cannot be negative", ErrNegativeNumber)
	}
	return nil
}

func (j *Job) Validate() error {
	if j.ID <= 0 {
		return NewValidationError("id", "must be positive", ErrInvalidID)
	}
	return NewJob{
		Name:      j.Name,
		CompanyID: j.CompanyID,
		Quantity:  j.Quantity,
		Salary:    j.Salary,
	}.Validate()
}

// OwnedBy reports whether a user attached to company may mutate the job.
func (j *Job) OwnedBy(company CompanyID) bool {
	return company != 0 && j.CompanyID == company
}
