package domain

import "time"

// BaseModel is the common base struct for all domain models.
// It replaces gorm.Model to avoid the implicit soft delete behavior of DeletedAt.
// ID doubles as the stable row identity consumed by list clients.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PageRequest holds pagination, sorting, searching, and filtering parameters.
// Page is 1-based on the HTTP surface.
type PageRequest struct {
	Page     int
	PageSize int
	Sort     string
	Search   string
	Filter   map[string]string
}

// Offset returns the number of rows to skip for the current page.
func (r PageRequest) Offset() int {
	if r.Page <= 1 {
		return 0
	}
	return (r.Page - 1) * r.PageSize
}

// PageResult is the paginated response envelope: the request's offset and
// limit echoed back, the total number of matching rows server-side, and one
// page of data. Skip and Take echo the request so consumers can verify that
// a response matches what they asked for.
type PageResult[T any] struct {
	Skip  int   `json:"skip"`
	Take  int   `json:"take"`
	Total int64 `json:"total"`
	Data  []T   `json:"data"`
}

// Pages returns the total number of pages implied by Total and Take.
func (r *PageResult[T]) Pages() int {
	if r.Take <= 0 {
		return 0
	}
	pages := int(r.Total) / r.Take
	if int(r.Total)%r.Take != 0 {
		pages++
	}
	return pages
}
