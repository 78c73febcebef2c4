// Package listing describes the list queries every collection endpoint accepts:
// free text search, equality filters, ordering and a page window.
package listing

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

type FieldKind int

const (
	Text FieldKind = iota
	Bool
	UUID
)

// Spec lists the filters and ordering fields a collection accepts.
type Spec struct {
	Filters   map[string]FieldKind
	Orderings []string
}

type Order struct {
	Field string
	Desc  bool
}

type Query struct {
	Search   string
	Filters  map[string]any
	Ordering []Order
	// Limit 0 means no limit.
	Limit  int
	Offset int
}

// With returns a copy of q with an extra equality filter.
func (q Query) With(field string, v any) Query {
	filters := make(map[string]any, len(q.Filters)+1)
	for k, val := range q.Filters {
		filters[k] = val
	}
	filters[field] = v
	q.Filters = filters
	return q
}

// ParseFilter converts a raw query value for a declared filter.
func (s Spec) ParseFilter(field, raw string) (any, error) {
	kind, ok := s.Filters[field]
	if !ok {
		return nil, fmt.Errorf("unknown filter %q", field)
	}
	switch kind {
	case Bool:
		switch strings.ToLower(raw) {
		case "true", "1", "yes", "on":
			return true, nil
		case "false", "0", "no", "off":
			return false, nil
		}
		return nil, fmt.Errorf("%q is not a valid boolean", raw)
	case UUID:
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("%q is not a valid UUID", raw)
		}
		return id, nil
	default:
		return raw, nil
	}
}

// ParseOrdering reads a comma separated ordering such as "-start_date,title".
// Fields missing from Orderings are dropped.
func (s Spec) ParseOrdering(raw string) []Order {
	allowed := make(map[string]bool, len(s.Orderings))
	for _, f := range s.Orderings {
		allowed[f] = true
	}

	var orders []Order
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		desc := strings.HasPrefix(part, "-")
		field := strings.TrimPrefix(part, "-")
		if allowed[field] {
			orders = append(orders, Order{Field: field, Desc: desc})
		}
	}
	return orders
}

// Page converts a 1-based page and a page size into a clamped limit and offset.
func Page(pageRaw, sizeRaw string) (page, size int, err error) {
	page, size = 1, DefaultPageSize
	if pageRaw != "" {
		page, err = strconv.Atoi(pageRaw)
		if err != nil || page < 1 {
			return 0, 0, fmt.Errorf("invalid page %q", pageRaw)
		}
	}
	if sizeRaw != "" {
		size, err = strconv.Atoi(sizeRaw)
		if err != nil || size < 1 {
			return 0, 0, fmt.Errorf("invalid page_size %q", sizeRaw)
		}
		if size > MaxPageSize {
			size = MaxPageSize
		}
	}
	return page, size, nil
}
