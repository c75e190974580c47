package repository

import (
	"strings"

	"gorm.io/gorm"

	"marketplace/internal/shared/query"
)

// paginate applies the page window of f to q.
func paginate(q *gorm.DB, f query.PageFilter) *gorm.DB {
	return q.Offset(f.Offset()).Limit(f.Limit())
}

// likePattern builds a case-insensitive substring pattern; callers compare against LOWER(column).
func likePattern(s string) string {
	return "%" + strings.ToLower(strings.TrimSpace(s)) + "%"
}
