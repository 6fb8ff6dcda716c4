package domain

// Company is an employer. Email is unique across all companies, including
// soft-deleted ones.
type Company struct {
	ID          CompanyID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Address     string    `json:"address"`
	Description string    `json:"description"`
	IsDeleted   bool      `json:"is_delete"`
}

// NewCompany is the creation payload for a Company.
type NewCompany struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Address     string `json:"address"`
	Description string `json:"description"`
}

func (n NewCompany) Validate() error {
	if n.Name == "" {
		return NewValidationError("name", "is required", ErrEmptyName)
	}
	return ValidateEmail(n.Email)
}

func (c *Company) Validate() error {
	if c.ID <= 0 {
		return NewValidationError("id", "must be positive", ErrInvalidID)
	}
	return NewCompany{Name: c.Name, Email: c.Email}.Validate()
}
