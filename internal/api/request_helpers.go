package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/phrazzld/jobboard-api/internal/api/shared"
	"github.com/phrazzld/jobboard-api/internal/domain"
	"github.com/phrazzld/jobboard-api/internal/service/auth"
	"github.com/phrazzld/jobboard-api/internal/store"
)

// decodeAndValidate reads the JSON body into v and runs its validation tags.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v any) error {
	if err := shared.DecodeJSON(w, r, v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}
	return shared.ValidateRequest(v)
}

// pathID parses the {name} path parameter as a positive id.
func pathID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		return 0, fmt.Errorf("%w: %s", ErrMissingParameter, name)
	}
	id, err := domain.ParseID(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrParseParameter, name, err)
	}
	return id, nil
}

// queryID parses a required positive id from the query string.
func queryID(r *http.Request, name string) (int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, fmt.Errorf("%w: %s", ErrMissingParameter, name)
	}
	id, err := domain.ParseID(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrParseParameter, name, err)
	}
	return id, nil
}

// pageFromQuery reads the optional limit and offset query parameters. An
// absent limit means no limit; an absent offset means defaultOffset.
func pageFromQuery(r *http.Request, defaultOffset int) (store.Page, error) {
	q := r.URL.Query()
	page := store.Page{Offset: defaultOffset}

	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return store.Page{}, fmt.Errorf("%w: limit", ErrParseParameter)
		}
		page.Limit = &limit
	}
	if raw := q.Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil {
			return store.Page{}, fmt.Errorf("%w: offset", ErrParseParameter)
		}
		page.Offset = offset
	}
	if err := page.Validate(); err != nil {
		return store.Page{}, err
	}
	return page, nil
}

// actor returns the claims placed in the context by the auth middleware.
func actor(r *http.Request) (*auth.Claims, error) {
	claims, ok := shared.ClaimsFromContext(r.Context())
	if !ok {
		return nil, auth.ErrUnauthorized
	}
	return claims, nil
}
