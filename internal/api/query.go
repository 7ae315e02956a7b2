package api

import (
	"net/url"
	"strconv"
)

// Sort defaults applied when a query leaves them unset.
const (
	DefaultSortBy    = "deadline"
	DefaultSortOrder = "asc"
	DefaultPageSize  = 50
)

// ActivityQuery describes one filtered, sorted, paginated activity list
// request. The zero value is a valid query for the first page with
// default sorting. Building the wire query is a pure function of this
// value; no validation is performed and empty filters are omitted.
type ActivityQuery struct {
	Search    string
	Status    string
	Priority  string
	Category  string
	SortBy    string
	SortOrder string
	Page      int
	PageSize  int
}

// Values encodes the query as URL parameters. Empty filter fields are
// omitted entirely; sort and pagination parameters are always present,
// falling back to defaults when unset.
func (q ActivityQuery) Values() url.Values {
	v := url.Values{}

	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.Status != "" {
		v.Set("status", q.Status)
	}
	if q.Priority != "" {
		v.Set("priority", q.Priority)
	}
	if q.Category != "" {
		v.Set("category", q.Category)
	}

	sortBy := q.SortBy
	if sortBy == "" {
		sortBy = DefaultSortBy
	}
	sortOrder := q.SortOrder
	if sortOrder == "" {
		sortOrder = DefaultSortOrder
	}
	v.Set("sort_by", sortBy)
	v.Set("sort_order", sortOrder)

	page := q.Page
	if page < 1 {
		page = 1
	}
	pageSize := q.PageSize
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	v.Set("page", strconv.Itoa(page))
	v.Set("page_size", strconv.Itoa(pageSize))

	return v
}
