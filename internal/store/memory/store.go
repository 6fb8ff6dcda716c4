// Package memory implements store.Store with process-local maps. It is the
// default backend for development and for unit tests of the HTTP layer.
package memory

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/phrazzld/jobboard-api/internal/domain"
	"github.com/phrazzld/jobboard-api/internal/store"
)

// Store keeps one table per entity type, each with its own lock.
//
// Operations that read more than one table acquire locks in the fixed order
// users, companies, jobs, resumes, applications.
type Store struct {
	logger       *slog.Logger
	users        *table[domain.User]
	companies    *table[domain.Company]
	jobs         *table[domain.Job]
	resumes      *table[domain.Resume]
	applications *table[domain.Application]
}

var _ store.Store = (*Store)(nil)

// New creates an empty Store. A nil logger falls back to slog.Default().
func New(logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		logger:       logger.With(slog.String("component", "memory_store")),
		users:        newTable[domain.User](),
		companies:    newTable[domain.Company](),
		jobs:         newTable[domain.Job](),
		resumes:      newTable[domain.Resume](),
		applications: newTable[domain.Application](),
	}
}

// table is an id-keyed collection. Ids come from a counter that is only
// advanced under the write lock, in the same critical section as the insert,
// so concurrent creates never observe the same id.
type table[T any] struct {
	mu     sync.RWMutex
	rows   map[int64]T
	order  []int64 // insertion order, which is ascending id order
	nextID int64
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[int64]T)}
}

// insertLocked assigns the next id and stores the row built for it.
// The caller must hold the write lock.
func (t *table[T]) insertLocked(build func(id int64) T) T {
	t.nextID++
	row := build(t.nextID)
	t.rows[t.nextID] = row
	t.order = append(t.order, t.nextID)
	return row
}

// listLocked returns copies of the rows accepted by keep, in id order,
// windowed by page. The caller must hold at least the read lock.
func (t *table[T]) listLocked(page store.Page, keep func(T) bool) []T {
	matched := make([]T, 0, len(t.order))
	for _, id := range t.order {
		if row := t.rows[id]; keep(row) {
			matched = append(matched, row)
		}
	}
	start, end := page.Bounds(len(matched))
	out := make([]T, end-start)
	copy(out, matched[start:end])
	return out
}

func checkContext(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrStoreUnavailable, err)
	}
	return nil
}

func invalid(err error) error {
	return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
}

func ptr[T any](v T) *T {
	return &v
}
