package domain

// Resume belongs to exactly one user; only that user may read or change it.
type Resume struct {
	ID        ResumeID `json:"id"`
	UserID    UserID   `json:"user_id"`
	Email     string   `json:"email"`
	URL       string   `json:"url"`
	IsDeleted bool     `json:"is_delete"`
}

// NewResume is the creation payload for a Resume.
type NewResume struct {
	UserID UserID `json:"user_id"`
	Email  string `json:"email"`
	URL    string `json:"url"`
}

func (n NewResume) Validate() error {
	if n.UserID <= 0 {
		return NewValidationError("user_id", "is required", ErrMissingOwner)
	}
	if err := ValidateEmail(n.Email); err != nil {
		return err
	}
	if n.URL == "" {
		return NewValidationError("url", "is required", ErrEmptyURL)
	}
	return nil
}

func (r *Resume) Validate() error {
	if r.ID <= 0 {
		return NewValidationError("id", "must be positive", ErrInvalidID)
	}
	return NewResume{UserID: r.UserID, Email: r.Email, URL: r.URL}.Validate()
}

// OwnedBy reports whether user owns the resume.
func (r *Resume) OwnedBy(user UserID) bool {
	return r.UserID == user
}
