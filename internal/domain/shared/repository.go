package shared

const (
	// DefaultPerPage is the page size used when the caller does not supply one
	DefaultPerPage = 20
	// MaxPerPage caps the page size of every list operation
	MaxPerPage = 50
)

// Paginated represents a paginated result
type Paginated[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	TotalPages int   `json:"total_pages"`
}

// NewPaginated creates a new paginated result
func NewPaginated[T any](items []T, total int64, page, perPage int) *Paginated[T] {
	totalPages := 0
	if perPage > 0 {
		totalPages = int(total) / perPage
		if int(total)%perPage > 0 {
			totalPages++
		}
	}
	if items == nil {
		items = []T{}
	}
	return &Paginated[T]{
		Items:      items,
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
	}
}

// ClampPerPage bounds perPage to MaxPerPage.
func ClampPerPage(perPage int) int {
	if perPage > MaxPerPage {
		return MaxPerPage
	}
	return perPage
}
