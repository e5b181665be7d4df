package candishared

import "math"

const (
	defaultLimit = 10
	maxLimit     = 100
)

// Filter data
type Filter struct {
	Limit  int    `json:"limit" query:"limit"`
	Page   int    `json:"page" query:"page"`
	Offset int    `json:"-" query:"-"`
	Search string `json:"search,omitempty" query:"-"`
}

// Validate normalize page and limit, page must keep offset inside int range
func (f *Filter) Validate() error {
	f.normalize()
	if f.Page > f.maxPage() {
		return NewValidationError("page out of range")
	}
	return nil
}

// CalculateOffset method, also normalize page and limit. Page beyond range is clamped
func (f *Filter) CalculateOffset() int {
	f.normalize()
	if maxPage := f.maxPage(); f.Page > maxPage {
		f.Page = maxPage
	}
	f.Offset = (f.Page - 1) * f.Limit
	return f.Offset
}

func (f *Filter) normalize() {
	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}
	if f.Page <= 0 {
		f.Page = 1
	}
}

func (f *Filter) maxPage() int {
	return math.MaxInt/f.Limit + 1
}
