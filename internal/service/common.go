package service

import (
	"xgrowth-backend/internal/aggregation"
	"xgrowth-backend/internal/auth"

	"github.com/google/uuid"
)

const maxPageSize = 100

var defaultPageSize = 20

// SetDefaultPageSize changes the size used when a list request omits one.
// Out of range values are ignored.
func SetDefaultPageSize(n int) {
	if n > 0 && n <= maxPageSize {
		defaultPageSize = n
	}
}

// ListResponse is the paginated envelope returned by list operations
type ListResponse[T any] struct {
	Items    []T   `json:"items"`
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
}

// normalizePage applies the default page and size and returns the row offset
func normalizePage(page, pageSize int) (int, int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}
	return page, pageSize, aggregation.SafeOffset(page, pageSize)
}

func newList[T any](items []T, total int64, page, pageSize int) *ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return &ListResponse[T]{Items: items, Total: total, Page: page, PageSize: pageSize}
}

// actor is stored in created_by / updated_by
func actor(p auth.Principal) string {
	if p.UserID == uuid.Nil {
		return "system"
	}
	return p.UserID.String()
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
