package v1

import (
	"fmt"

	"github.com/moneta-finance/backend/internal/types"
	"github.com/moneta-finance/backend/internal/uuid"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

type URIID struct {
	ID uuid.UUID `uri:"id" binding:"required"` // The ID of the resource
}

type URIMonth struct {
	Month types.Month `uri:"month" example:"2024-05"` // Year and month
}

type Pagination struct {
	Count  int   `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint  `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int   `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total" example:"827"` // The total number of resources matching the query
}

// page applies offset and limit to the query. The limit defaults to 50.
func page(q *gorm.DB, setFields []string, offset uint, limit int) (*gorm.DB, int) {
	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(offset))

	l := 50
	if slices.Contains(setFields, "Limit") {
		l = limit
	}

	return q.Limit(l), l
}

// likeFilter matches column against a fuzzy filter value. When the
// parameter is set, but empty, it matches the empty string.
func likeFilter(query *gorm.DB, setFields []string, field, column, value string) *gorm.DB {
	if value != "" {
		return query.Where(fmt.Sprintf("%s LIKE ?", column), fmt.Sprintf("%%%s%%", value))
	}

	if slices.Contains(setFields, field) {
		return query.Where(fmt.Sprintf("%s = ''", column))
	}

	return query
}

// searchFilter matches the search string in any of the columns.
func searchFilter(db, query *gorm.DB, search string, columns ...string) *gorm.DB {
	if search == "" || len(columns) == 0 {
		return query
	}

	pattern := fmt.Sprintf("%%%s%%", search)
	condition := db.Where(fmt.Sprintf("%s LIKE ?", columns[0]), pattern)
	for _, column := range columns[1:] {
		condition = condition.Or(fmt.Sprintf("%s LIKE ?", column), pattern)
	}

	return query.Where(condition)
}
