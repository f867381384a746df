package pkg

import (
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tyredepot/admin/internal/domain"
	"github.com/tyredepot/admin/internal/listing"
	"gorm.io/gorm"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
	maxPageSize     = 100
	defaultSort     = "id:desc"

	dateLayout = "2006-01-02"
)

// reservedParams lists query parameter names used for pagination, sorting,
// searching, and date filtering, not for categorical filtering.
var reservedParams = map[string]bool{
	"page":       true,
	"page_size":  true,
	"sort":       true,
	"search":     true,
	"date_mode":  true,
	"start_date": true,
	"end_date":   true,
}

// validFieldName matches only alphanumeric characters and underscores.
var validFieldName = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// ParsePageRequest extracts pagination, sorting, searching, date-range, and
// filtering parameters from query params.
func ParsePageRequest(c *gin.Context) domain.PageRequest {
	page, _ := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(defaultPage)))
	if page < 1 {
		page = defaultPage
	}

	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultPageSize)))
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	sort := c.DefaultQuery("sort", defaultSort)

	filter := make(map[string]string)
	for key, values := range c.Request.URL.Query() {
		if reservedParams[key] {
			continue
		}
		if len(values) > 0 && values[0] != "" {
			filter[key] = values[0]
		}
	}

	req := domain.PageRequest{
		Page:     page,
		PageSize: pageSize,
		Sort:     sort,
		Search:   strings.TrimSpace(c.Query("search")),
		Filter:   filter,
		DateMode: string(listing.ParseDateRangeMode(c.Query("date_mode"))),
	}

	if t, err := time.ParseInLocation(dateLayout, c.Query("start_date"), time.Local); err == nil {
		req.StartDate = &t
	}
	if t, err := time.ParseInLocation(dateLayout, c.Query("end_date"), time.Local); err == nil {
		req.EndDate = &t
	}

	return req
}

// DateRange converts the request's date filter to a listing.DateRange.
func DateRange(req domain.PageRequest) listing.DateRange {
	return listing.DateRange{
		Mode:  listing.ParseDateRangeMode(req.DateMode),
		Start: req.StartDate,
		End:   req.EndDate,
	}
}

// Paginate returns a GORM scope that applies LIMIT and OFFSET based on the page request.
func Paginate(req domain.PageRequest) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		offset := (req.Page - 1) * req.PageSize
		return db.Offset(offset).Limit(req.PageSize)
	}
}

// Sort returns a GORM scope that applies ORDER BY based on the page request.
// Only field names present in the allowed list are accepted; others are silently ignored.
// Field names are validated against a strict pattern to prevent SQL injection.
func Sort(req domain.PageRequest, allowed []string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		parts := strings.SplitN(req.Sort, ":", 2)
		if len(parts) != 2 {
			return db
		}

		field := strings.TrimSpace(parts[0])
		direction := strings.TrimSpace(strings.ToLower(parts[1]))

		if direction != "asc" && direction != "desc" {
			return db
		}

		if !validFieldName.MatchString(field) {
			return db
		}

		if !isAllowed(field, allowed) {
			return db
		}

		return db.Order(field + " " + direction)
	}
}

// Filter returns a GORM scope that applies WHERE conditions based on the page request filters.
// Only filter keys present in the allowed list are applied; others are silently ignored.
// Keys ending with "__like" produce a LIKE '%value%' condition; others use exact match.
func Filter(req domain.PageRequest, allowed []string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		for key, value := range req.Filter {
			// Check for __like suffix.
			if strings.HasSuffix(key, "__like") {
				field := strings.TrimSuffix(key, "__like")
				if !validFieldName.MatchString(field) {
					continue
				}
				if !isAllowed(field, allowed) {
					continue
				}
				db = db.Where(field+" LIKE ?", "%"+value+"%")
			} else {
				if !validFieldName.MatchString(key) {
					continue
				}
				if !isAllowed(key, allowed) {
					continue
				}
				db = db.Where(key+" = ?", value)
			}
		}
		return db
	}
}

// Search returns a GORM scope that applies a LIKE condition across the given
// fields (OR semantics) when the request carries a search term. Punctuation
// normalization cannot run in SQL, so list endpoints that need it filter
// in memory with listing.TextMatch instead.
func Search(req domain.PageRequest, fields []string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		term := strings.TrimSpace(req.Search)
		if term == "" || len(fields) == 0 {
			return db
		}
		var (
			conds []string
			args  []any
		)
		for _, f := range fields {
			if !validFieldName.MatchString(f) {
				continue
			}
			conds = append(conds, f+" LIKE ?")
			args = append(args, "%"+term+"%")
		}
		if len(conds) == 0 {
			return db
		}
		return db.Where(strings.Join(conds, " OR "), args...)
	}
}

// NewPageResult creates a PageResult with computed TotalPages.
func NewPageResult[T any](items []T, total int64, req domain.PageRequest) *domain.PageResult[T] {
	totalPages := 0
	if req.PageSize > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(req.PageSize)))
	}
	if totalPages < 1 {
		totalPages = 1
	}

	if items == nil {
		items = []T{}
	}

	return &domain.PageResult[T]{
		Items:      items,
		Total:      total,
		Page:       req.Page,
		PageSize:   req.PageSize,
		TotalPages: totalPages,
	}
}

// PageLocally filters an in-memory collection with the given predicates and
// returns the requested page. Used by hybrid list endpoints when a filter is
// active: fetch everything, filter with listing predicates, paginate.
func PageLocally[T any](items []T, req domain.PageRequest, preds ...listing.Predicate[T]) *domain.PageResult[T] {
	filtered := listing.Apply(items, preds...)
	totalPages := listing.TotalPages(len(filtered), req.PageSize)
	page := listing.ClampPage(req.Page, totalPages)
	return &domain.PageResult[T]{
		Items:      listing.PageSlice(filtered, page, req.PageSize),
		Total:      int64(len(filtered)),
		Page:       page,
		PageSize:   req.PageSize,
		TotalPages: totalPages,
	}
}

// isAllowed checks if a field name is in the allowed list.
func isAllowed(field string, allowed []string) bool {
	return slices.Contains(allowed, field)
}
