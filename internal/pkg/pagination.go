package pkg

import (
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dealerdesk/dealerdesk/internal/domain"
)

const (
	defaultPage     = 1
	defaultPageSize = 20
	maxPageSize     = 100
	defaultSort     = "id:desc"
)

// reservedParams lists query parameter names used for pagination, sorting,
// and searching, not for column filtering.
var reservedParams = map[string]bool{
	"page":      true,
	"page_size": true,
	"sort":      true,
	"search":    true,
}

// validFieldName matches only alphanumeric characters and underscores.
var validFieldName = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// ParsePageRequest extracts pagination, sorting, searching, and filtering
// parameters from query params. Page and page size are clamped to sane
// values; unknown parameters become column filters.
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
	search := strings.TrimSpace(c.Query("search"))

	filter := make(map[string]string)
	for key, values := range c.Request.URL.Query() {
		if reservedParams[key] {
			continue
		}
		if len(values) > 0 && values[0] != "" {
			filter[key] = values[0]
		}
	}

	return domain.PageRequest{
		Page:     page,
		PageSize: pageSize,
		Sort:     sort,
		Search:   search,
		Filter:   filter,
	}
}

// Paginate returns a GORM scope that applies LIMIT and OFFSET based on the page request.
func Paginate(req domain.PageRequest) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(req.Offset()).Limit(req.PageSize)
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

// Search returns a GORM scope that applies a free-text search as an OR of
// LIKE conditions over the given columns. An empty search term means no
// filtering. Column names are fixed by the caller, never user input.
func Search(req domain.PageRequest, columns []string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if req.Search == "" || len(columns) == 0 {
			return db
		}
		pattern := "%" + req.Search + "%"
		conds := make([]string, 0, len(columns))
		args := make([]any, 0, len(columns))
		for _, col := range columns {
			if !validFieldName.MatchString(col) {
				continue
			}
			conds = append(conds, col+" LIKE ?")
			args = append(args, pattern)
		}
		if len(conds) == 0 {
			return db
		}
		return db.Where(strings.Join(conds, " OR "), args...)
	}
}

// PageResultFrom builds a PageResult that echoes the request's skip/take.
func PageResultFrom[T any](items []T, total int64, req domain.PageRequest) *domain.PageResult[T] {
	if items == nil {
		items = []T{}
	}

	return &domain.PageResult[T]{
		Skip:  req.Offset(),
		Take:  req.PageSize,
		Total: total,
		Data:  items,
	}
}

// isAllowed checks if a field name is in the allowed list.
func isAllowed(field string, allowed []string) bool {
	return slices.Contains(allowed, field)
}
