package domain

import "math"

// Page limits shared by every paginated listing.
const (
	DefaultPageSize = 20
	MaxPageSize     = 200

	// MaxPage keeps Offset from overflowing at any accepted limit.
	MaxPage = math.MaxInt / MaxPageSize
)

// PageRequest is a 1-indexed page selection. Zero values mean "use defaults".
type PageRequest struct {
	Page  int
	Limit int
}

// Normalize fills zero values with page 1 and the given default size.
func (p PageRequest) Normalize(defaultLimit int) PageRequest {
	if p.Page == 0 {
		p.Page = 1
	}
	if p.Limit == 0 {
		p.Limit = defaultLimit
	}
	return p
}

// FieldErrors reports out-of-range values. Zero is accepted (defaulted later).
func (p PageRequest) FieldErrors() []FieldError {
	var errs []FieldError
	if p.Page < 0 {
		errs = append(errs, FieldError{Field: "page", Message: "must be >= 1"})
	}
	if p.Page > MaxPage {
		errs = append(errs, FieldError{Field: "page", Message: "out of range"})
	}
	if p.Limit < 0 {
		errs = append(errs, FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if p.Limit > MaxPageSize {
		errs = append(errs, FieldError{Field: "limit", Message: "max 200"})
	}
	return errs
}

// Offset returns the number of rows to skip. p must be normalized.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// TotalPages returns ceil(total/limit), or 0 when limit is not positive.
func TotalPages(total, limit int) int {
	if limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
