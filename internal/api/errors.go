package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/phrazzld/jobboard-api/internal/api/shared"
	"github.com/phrazzld/jobboard-api/internal/domain"
	"github.com/phrazzld/jobboard-api/internal/service"
	"github.com/phrazzld/jobboard-api/internal/service/auth"
	"github.com/phrazzld/jobboard-api/internal/store"
)

var (
	// ErrMissingParameter is returned when a required query parameter is absent.
	ErrMissingParameter = errors.New("missing parameter")

	// ErrParseParameter is returned when a path or query parameter is not a
	// valid number.
	ErrParseParameter = errors.New("cannot parse parameter")

	// ErrInvalidBody is returned when the request body is not valid JSON.
	ErrInvalidBody = errors.New("invalid request body")
)

// MapErrorToStatusCode maps internal errors to HTTP status codes.
func MapErrorToStatusCode(err error) int {
	switch {
	case auth.IsRejection(err),
		errors.Is(err, auth.ErrWrongPassword):
		return http.StatusUnauthorized

	case errors.Is(err, service.ErrNotOwned),
		errors.Is(err, service.ErrNoCompany):
		return http.StatusForbidden

	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, store.ErrDuplicate),
		errors.Is(err, store.ErrJobClosed):
		return http.StatusConflict

	case errors.Is(err, ErrMissingParameter),
		errors.Is(err, ErrParseParameter),
		errors.Is(err, ErrInvalidBody),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, store.ErrInvalidPage),
		isValidatorError(err):
		return http.StatusBadRequest

	case errors.Is(err, store.ErrStoreUnavailable):
		return http.StatusServiceUnavailable

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the fixed client-facing message for err.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, auth.ErrWrongPassword):
		return "Wrong E-Mail/Password combination"
	case auth.IsRejection(err):
		return "Unauthorized"
	case errors.Is(err, service.ErrNoCompany):
		return "User is not attached to a company"
	case errors.Is(err, service.ErrNotOwned):
		return "Forbidden"
	case errors.Is(err, store.ErrNotFound):
		return "Not found"
	case errors.Is(err, store.ErrJobClosed):
		return "Job is closed"
	case errors.Is(err, store.ErrDuplicate):
		return "Request rejected, try a different value"
	case errors.Is(err, ErrMissingParameter):
		return "Missing parameters"
	case errors.Is(err, ErrParseParameter):
		return "Cannot parse parameters"
	case errors.Is(err, ErrInvalidBody):
		return "Invalid request format"
	case errors.Is(err, store.ErrInvalidPage):
		return "Invalid pagination parameters"
	case isValidatorError(err), errors.Is(err, domain.ErrValidation):
		return SanitizeValidationError(err)
	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"
	case errors.Is(err, store.ErrStoreUnavailable):
		return "Service unavailable"
	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError names the offending field without echoing the
// submitted value.
func SanitizeValidationError(err error) string {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return fmt.Sprintf("Invalid %s: %s", fe.Field(), getValidationTagMessage(fe.Tag()))
	}
	var domainErr *domain.ValidationError
	if errors.As(err, &domainErr) {
		return fmt.Sprintf("Invalid %s: %s", domainErr.Field, domainErr.Message)
	}
	return "Validation error"
}

func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "email":
		return "invalid email format"
	case "min", "gt", "gte":
		return "too small"
	case "max", "lt", "lte":
		return "too large"
	default:
		return "validation failed"
	}
}

func isValidatorError(err error) bool {
	var fieldErrs validator.ValidationErrors
	return errors.As(err, &fieldErrs)
}

// HandleAPIError writes the mapped status and safe message for err and logs
// the redacted cause.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}
