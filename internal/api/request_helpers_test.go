package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/jobboard-api/internal/store"
)

func TestPageFromQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		query      string
		wantLimit  *int
		wantOffset int
		wantErr    error
	}{
		{name: "defaults", query: "", wantOffset: 3},
		{name: "limit only", query: "limit=10", wantLimit: intPtr(10), wantOffset: 3},
		{name: "limit and offset", query: "limit=5&offset=20", wantLimit: intPtr(5), wantOffset: 20},
		{name: "zero limit", query: "limit=0", wantLimit: intPtr(0), wantOffset: 3},
		{name: "bad limit", query: "limit=ten", wantErr: ErrParseParameter},
		{name: "bad offset", query: "offset=x", wantErr: ErrParseParameter},
		{name: "negative limit", query: "limit=-1", wantErr: store.ErrInvalidPage},
		{name: "negative offset", query: "offset=-1", wantErr: store.ErrInvalidPage},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, "/x?"+tt.query, nil)
			page, err := pageFromQuery(req, 3)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLimit, page.Limit)
			assert.Equal(t, tt.wantOffset, page.Offset)
		})
	}
}

func TestQueryID(t *testing.T) {
	t.Parallel()

	_, err := queryID(httptest.NewRequest(http.MethodGet, "/x", nil), "job_id")
	assert.ErrorIs(t, err, ErrMissingParameter)

	_, err = queryID(httptest.NewRequest(http.MethodGet, "/x?job_id=abc", nil), "job_id")
	assert.ErrorIs(t, err, ErrParseParameter)

	_, err = queryID(httptest.NewRequest(http.MethodGet, "/x?job_id=0", nil), "job_id")
	assert.ErrorIs(t, err, ErrParseParameter)

	id, err := queryID(httptest.NewRequest(http.MethodGet, "/x?job_id=12", nil), "job_id")
	require.NoError(t, err)
	assert.Equal(t, int64(12), id)
}

func TestPathID(t *testing.T) {
	t.Parallel()

	withParam := func(value string) *http.Request {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", value)
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}

	id, err := pathID(withParam("7"), "id")
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)

	_, err = pathID(withParam("-7"), "id")
	assert.ErrorIs(t, err, ErrParseParameter)

	_, err = pathID(httptest.NewRequest(http.MethodGet, "/x", nil), "id")
	assert.ErrorIs(t, err, ErrMissingParameter)
}

func TestActorWithoutClaims(t *testing.T) {
	t.Parallel()
	_, err := actor(httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, http.StatusUnauthorized, MapErrorToStatusCode(err))
}

func intPtr(v int) *int { return &v }
