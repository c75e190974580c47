package query

import "strings"

type PageFilter struct {
	Page     int
	PageSize int
}

func (f PageFilter) Offset() int {
	if f.Page <= 0 {
		return 0
	}
	return (f.Page - 1) * f.Limit()
}

func (f PageFilter) Limit() int {
	if f.PageSize <= 0 {
		return 10
	}
	if f.PageSize > 100 {
		return 100
	}
	return f.PageSize
}

type SortFilter struct {
	SortBy    string
	SortOrder string
}

func (f SortFilter) IsDescending() bool {
	return strings.EqualFold(f.SortOrder, "desc")
}

// OrderClause builds an ORDER BY clause. SortBy must be one of allowed,
// otherwise fallback is used so user input never reaches the SQL text.
func (f SortFilter) OrderClause(fallback string, allowed ...string) string {
	column := fallback
	for _, a := range allowed {
		if f.SortBy == a {
			column = a
			break
		}
	}
	order := "ASC"
	if f.IsDescending() || f.SortOrder == "" {
		order = "DESC"
	}
	return column + " " + order
}

// BaseFilter is embedded by every list filter in the domain packages.
type BaseFilter struct {
	PageFilter
	SortFilter
	Search string
}

type FilterOption func(*BaseFilter)

func WithPage(page, pageSize int) FilterOption {
	return func(f *BaseFilter) {
		f.Page = page
		f.PageSize = pageSize
	}
}

func WithSort(sortBy, sortOrder string) FilterOption {
	return func(f *BaseFilter) {
		f.SortBy = sortBy
		f.SortOrder = sortOrder
	}
}

func WithSearch(search string) FilterOption {
	return func(f *BaseFilter) {
		f.Search = strings.TrimSpace(search)
	}
}

func NewBaseFilter(opts ...FilterOption) BaseFilter {
	f := BaseFilter{
		PageFilter: PageFilter{
			Page:     1,
			PageSize: 10,
		},
		SortFilter: SortFilter{
			SortOrder: "DESC",
		},
	}
	for _, opt := range opts {
		opt(&f)
	}
	return f
}
