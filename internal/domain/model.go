package domain

import "time"

// BaseModel is the common base struct for all domain models.
// It replaces gorm.Model to avoid the implicit soft delete behavior of DeletedAt.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PageRequest holds pagination, sorting, searching, and filtering parameters.
type PageRequest struct {
	Page     int
	PageSize int
	Sort     string
	Search   string
	Filter   map[string]string

	// Date filtering: a mode ("today", "yesterday", "this_week",
	// "this_month", "custom", "all_time") plus explicit bounds for custom.
	DateMode  string
	StartDate *time.Time
	EndDate   *time.Time
}

// HasFilters reports whether any search, categorical, or date filter is set.
// List endpoints with the hybrid strategy use this to decide between plain
// server pagination and full-fetch plus in-memory filtering.
func (r PageRequest) HasFilters() bool {
	if r.Search != "" {
		return true
	}
	for _, v := range r.Filter {
		if v != "" {
			return true
		}
	}
	switch r.DateMode {
	case "", "all_time":
		return false
	case "custom":
		return r.StartDate != nil && r.EndDate != nil
	default:
		return true
	}
}

// PageResult is one page of a list response.
type PageResult[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}
