package store

// Paging limits for list operations.
const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

// ListOptions controls paging and filtering of list operations.
type ListOptions struct {
	// Skip is the number of rows to skip, ordered by primary key.
	Skip int

	// Limit is the maximum number of rows returned. Zero means DefaultLimit.
	Limit int

	// Filters maps a filter name (a column such as "artist_id") to the
	// value rows must match. Each collection accepts its own set.
	Filters map[string]int64
}

// Normalize clamps Skip and Limit into their valid ranges.
func (o ListOptions) Normalize() ListOptions {
	if o.Skip < 0 {
		o.Skip = 0
	}
	if o.Limit <= 0 {
		o.Limit = DefaultLimit
	}
	if o.Limit > MaxLimit {
		o.Limit = MaxLimit
	}
	return o
}
