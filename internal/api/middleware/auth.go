package middleware

import (
	"net/http"

	"github.com/phrazzld/jobboard-api/internal/api/shared"
	"github.com/phrazzld/jobboard-api/internal/domain"
	"github.com/phrazzld/jobboard-api/internal/service/auth"
)

// RejectionObserver is told the reason label of every rejected request.
type RejectionObserver func(reason string)

// AuthMiddleware guards routes with the authorization filter.
type AuthMiddleware struct {
	filter   *auth.Filter
	onReject RejectionObserver
}

// NewAuthMiddleware creates an AuthMiddleware. onReject may be nil.
func NewAuthMiddleware(filter *auth.Filter, onReject RejectionObserver) *AuthMiddleware {
	return &AuthMiddleware{filter: filter, onReject: onReject}
}

// RequireRole admits requests whose token carries one of roles and stores
// the token's claims in the request context. Every rejection is a 401.
func (m *AuthMiddleware) RequireRole(roles ...domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := m.filter.Authorize(r.Context(), r.Header, roles...)
			if err != nil {
				if m.onReject != nil {
					m.onReject(auth.Reason(err))
				}
				shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized, "Unauthorized", err)
				return
			}
			next.ServeHTTP(w, r.WithContext(shared.WithClaims(r.Context(), claims)))
		})
	}
}

// GetClaims returns the claims of an authorized request.
func GetClaims(r *http.Request) (*auth.Claims, bool) {
	return shared.ClaimsFromContext(r.Context())
}
