package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/jobboard-api/internal/domain"
	"github.com/phrazzld/jobboard-api/internal/platform/logger"
	"github.com/phrazzld/jobboard-api/internal/store"
	"github.com/phrazzld/jobboard-api/internal/store/memory"
)

func TestResult(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, "ok"},
		{store.ErrUserNotFound, "not_found"},
		{store.ErrEmailExists, "conflict"},
		{store.ErrAlreadyApplied, "conflict"},
		{fmt.Errorf("%w: bad", store.ErrInvalidEntity), "invalid"},
		{store.ErrInvalidPage, "invalid"},
		{store.ErrJobClosed, "rejected"},
		{fmt.Errorf("%w: down", store.ErrStoreUnavailable), "unavailable"},
		{errors.New("other"), "error"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Result(tt.err))
		})
	}
}

func TestRegisterIsIdempotent(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New()
	require.NoError(t, m.Register(reg))
	require.NoError(t, m.Register(reg))
}

func TestInstrumentStore(t *testing.T) {
	ctx := context.Background()
	m := New()
	s := InstrumentStore(memory.New(logger.Discard()), m)

	_, err := s.CreateUser(ctx, domain.NewUser{Email: "u1@x.com", PasswordHash: "h"})
	require.NoError(t, err)
	_, err = s.CreateUser(ctx, domain.NewUser{Email: "u1@x.com", PasswordHash: "h"})
	assert.ErrorIs(t, err, store.ErrEmailExists, "errors pass through unchanged")
	_, err = s.GetUserByID(ctx, 99)
	assert.ErrorIs(t, err, store.ErrUserNotFound)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.storeOps.WithLabelValues("create_user", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.storeOps.WithLabelValues("create_user", "conflict")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.storeOps.WithLabelValues("get_user_by_id", "not_found")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.storeDuration))
}

func TestMiddlewareUsesRoutePattern(t *testing.T) {
	m := New()
	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/job/get-job/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for _, id := range []string{"1", "2", "3"} {
		req := httptest.NewRequest(http.MethodGet, "/job/get-job/"+id, nil)
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	assert.Equal(t, 3.0, testutil.ToFloat64(
		m.httpRequests.WithLabelValues(http.MethodGet, "/job/get-job/{id}", "404")))
}

func TestHandlerExposesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New()
	require.NoError(t, m.Register(reg))
	m.ObserveAuthRejection("role_not_permitted")

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(),
		`jobboard_auth_rejections_total{reason="role_not_permitted"} 1`))
}
