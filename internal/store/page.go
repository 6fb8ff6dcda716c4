package store

import "fmt"

// Page is a pagination window. A nil Limit means "everything after Offset".
type Page struct {
	Limit  *int
	Offset int
}

// All is the unbounded window starting at the first record.
var All = Page{}

// NewPage builds a window with an explicit limit.
func NewPage(limit, offset int) Page {
	return Page{Limit: &limit, Offset: offset}
}

// Validate rejects negative limits and offsets.
func (p Page) Validate() error {
	if p.Offset < 0 {
		return fmt.Errorf("%w: offset %d is negative", ErrInvalidPage, p.Offset)
	}
	if p.Limit != nil && *p.Limit < 0 {
		return fmt.Errorf("%w: limit %d is negative", ErrInvalidPage, *p.Limit)
	}
	return nil
}

// Bounds returns the half-open range [start, end) of a collection of total
// records selected by the window. The result is always within [0, total].
func (p Page) Bounds(total int) (start, end int) {
	start = min(max(p.Offset, 0), total)
	remaining := total - start
	take := remaining
	if p.Limit != nil {
		take = min(max(*p.Limit, 0), remaining)
	}
	return start, start + take
}

func (p Page) String() string {
	if p.Limit == nil {
		return fmt.Sprintf("limit=all offset=%d", p.Offset)
	}
	return fmt.Sprintf("limit=%d offset=%d", *p.Limit, p.Offset)
}
