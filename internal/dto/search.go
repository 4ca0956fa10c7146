package dto

import "strings"

const (
	SortAscending  = "asc"
	SortDescending = "desc"

	DefaultPageSize = 15
	MaxPageSize     = 200
)

// Search is the filter+sort+page contract shared by the customer and user
// listing endpoints. Page is zero-based.
type Search struct {
	FilterText    string `json:"filter_text"`
	Page          int    `json:"page"`
	PageSize      int    `json:"page_size"`
	SortBy        string `json:"sort_by"`
	SortDirection string `json:"sort_direction"`
}

// Normalize applies defaults and clamps PageSize so a single request cannot
// ask for an unbounded page.
func (s *Search) Normalize() {
	if s.Page < 0 {
		s.Page = 0
	}
	if s.PageSize <= 0 {
		s.PageSize = DefaultPageSize
	}
	if s.PageSize > MaxPageSize {
		s.PageSize = MaxPageSize
	}
	if strings.EqualFold(s.SortDirection, SortDescending) {
		s.SortDirection = SortDescending
	} else {
		s.SortDirection = SortAscending
	}
}

func (s *Search) Descending() bool {
	return s.SortDirection == SortDescending
}

func (s *Search) Offset() int {
	return s.Page * s.PageSize
}

type SearchResponse[T any] struct {
	Results []T `json:"results"`
	Total   int `json:"total"`
}

// Sortable fields are closed sets per entity. Anything outside the set falls
// back to the entity default instead of reaching the query builder.
var customerSortColumns = map[string]string{
	"name":   "name",
	"state":  "state",
	"gender": "gender",
	"active": "active",
}

var userSortColumns = map[string]string{
	"email": "email",
}

func CustomerSortColumn(sortBy string) string {
	if col, ok := customerSortColumns[strings.ToLower(strings.TrimSpace(sortBy))]; ok {
		return col
	}
	return "name"
}

func UserSortColumn(sortBy string) string {
	if col, ok := userSortColumns[strings.ToLower(strings.TrimSpace(sortBy))]; ok {
		return col
	}
	return "email"
}
