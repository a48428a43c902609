package aggregation

import (
	"math"
	"strconv"

	"xgrowth-backend/internal/pipeline"
)

// Sort keys accepted by listing endpoints
const (
	SortNameAsc  = "name_asc"
	SortNameDesc = "name_desc"
	SortPosts    = "posts"
	SortRecent   = "recent"
)

// SortStage maps a sort key to a stage. Unknown keys sort by name ascending.
func SortStage(key string) pipeline.Sort {
	switch key {
	case SortNameDesc:
		return pipeline.Sort{Keys: []pipeline.SortKey{{Field: "name", Desc: true, Collated: true}}}
	case SortPosts:
		return pipeline.Sort{Keys: []pipeline.SortKey{{Field: "post_count", Desc: true}, {Field: "name", Collated: true}}}
	case SortRecent:
		return pipeline.Sort{Keys: []pipeline.SortKey{{Field: "created_at", Desc: true}}}
	default:
		return pipeline.Sort{Keys: []pipeline.SortKey{{Field: "name", Collated: true}}}
	}
}

// Pagination turns a 1-based page into skip/limit. A page of zero or less
// starts at the beginning; a zero size means no limit. Pages past the end of
// the int range clamp to the largest skip that fits.
func Pagination(page, pageSize int) (skip, limit int) {
	if pageSize < 0 {
		pageSize = 0
	}
	if page > 0 {
		skip = SafeOffset(page, pageSize)
	}
	return skip, pageSize
}

// SafeOffset is (page-1)*pageSize without overflow. page must be at least 1.
func SafeOffset(page, pageSize int) int {
	if pageSize > 0 && page-1 > math.MaxInt/pageSize {
		return (math.MaxInt / pageSize) * pageSize
	}
	return (page - 1) * pageSize
}

// ParsePagination reads raw query values. Values that are not numbers count
// as unset rather than failing the request.
func ParsePagination(pageStr, sizeStr string) (page, pageSize int) {
	page, err := strconv.Atoi(pageStr)
	if err != nil {
		page = 0
	}
	pageSize, err = strconv.Atoi(sizeStr)
	if err != nil {
		pageSize = 0
	}
	return page, pageSize
}
