package dto

// PaginationQuery carries raw page/limit values from the query string.
// Bounds are enforced by the services, out-of-range values are rejected
// rather than clamped.
type PaginationQuery struct {
	Page  int `form:"page" json:"page"`
	Limit int `form:"limit" json:"limit"`
}

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 50
)

// ApplyDefaults fills zero values, leaving explicit out-of-range input
// untouched so validation can catch it.
func (p *PaginationQuery) ApplyDefaults() {
	if p.Page == 0 {
		p.Page = DefaultPage
	}
	if p.Limit == 0 {
		p.Limit = DefaultLimit
	}
}

// ListResponse is the uniform paginated envelope.
type ListResponse[T any] struct {
	Rows  []T   `json:"rows"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}
