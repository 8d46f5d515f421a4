package models

import "strconv"

// Pagination limits.
const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Pagination describes one page of a list response.
type Pagination struct {
	Total      int64  `json:"total"`
	Limit      int64  `json:"limit"`
	Offset     int64  `json:"offset"`
	HasMore    bool   `json:"has_more"`
	NextCursor string `json:"next_cursor,omitempty"`
}

// NewPagination derives the pagination block from the count query total,
// the effective limit/offset, and the number of rows actually returned.
// Offsets beyond total are legal: they yield an empty page with
// has_more=false, never an error.
func NewPagination(total, limit, offset, returned int64) Pagination {
	p := Pagination{
		Total:   total,
		Limit:   limit,
		Offset:  offset,
		HasMore: offset+returned < total,
	}
	if p.HasMore {
		p.NextCursor = strconv.FormatInt(offset+limit, 10)
	}
	return p
}

// ClampLimit applies the default and the hard maximum to a requested page
// size. Requesting 500 and requesting 100 behave identically.
func ClampLimit(limit int64) int64 {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}
