package service

import "roofing-site-be/internal/dto"

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// paginate clamps page/limit and returns the offset to query with.
func paginate(page, limit int) (int, int, int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit, (page - 1) * limit
}

// contactedFilter maps "true"/"false" to a pointer; anything else means all rows.
func contactedFilter(value string) *bool {
	switch value {
	case "true":
		v := true
		return &v
	case "false":
		v := false
		return &v
	default:
		return nil
	}
}

func newPage[T any](items []T, page, limit int, total int64) *dto.PaginatedResponse[T] {
	if items == nil {
		items = []T{}
	}
	return &dto.PaginatedResponse[T]{
		Items: items,
		Meta: dto.PaginationMeta{
			Page:  page,
			Limit: limit,
			Total: total,
		},
	}
}
