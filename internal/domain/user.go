package domain

import "strings"

// MaxPasswordLength is bcrypt's practical input limit.
const MaxPasswordLength = 72

// User is a registered account. PasswordHash never leaves the server.
type User struct {
	ID           UserID    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CompanyID    CompanyID `json:"company_id"`
	Role         Role      `json:"role_id"`
	IsDeleted    bool      `json:"is_delete"`
}

// NewUser is the registration payload handed to the store. The store assigns
// the id, the default role (RoleUser) and no company.
type NewUser struct {
	Email        string
	PasswordHash string
}

// Validate checks the registration payload.
func (n NewUser) Validate() error {
	if err := ValidateEmail(n.Email); err != nil {
		return err
	}
	if n.PasswordHash == "" {
		return NewValidationError("password", "is required", ErrEmptyPassword)
	}
	return nil
}

// Validate checks the mutable profile fields of an existing user.
func (u *User) Validate() error {
	if u.ID <= 0 {
		return NewValidationError("id", "must be positive", ErrInvalidID)
	}
	if err := ValidateEmail(u.Email); err != nil {
		return err
	}
	if u.CompanyID < 0 {
		return NewValidationError("company_id", "cannot be negative", ErrNegativeNumber)
	}
	return nil
}

// ValidatePassword checks a plaintext password before it is hashed.
func ValidatePassword(password string) error {
	if password == "" {
		return NewValidationError("password", "is required", ErrEmptyPassword)
	}
	if len(password) > MaxPasswordLength {
		return NewValidationError("password", "is too long", ErrPasswordTooLong)
	}
	return nil
}

// ValidateEmail performs a structural check of an email address: a non-empty
// local part, an '@', and a domain containing an inner dot.
func ValidateEmail(email string) error {
	if email == "" {
		return NewValidationError("email", "is required", ErrEmptyEmail)
	}
	at := strings.IndexByte(email, '@')
	if at <= 0 || at == len(email)-1 || strings.Count(email, "@") != 1 {
		return NewValidationError("email", "has invalid format", ErrInvalidEmail)
	}
	domainPart := email[at+1:]
	dot := strings.IndexByte(domainPart, '.')
	if dot <= 0 || strings.HasSuffix(domainPart, ".") {
		return NewValidationError("email", "has invalid format", ErrInvalidEmail)
	}
	return nil
}
