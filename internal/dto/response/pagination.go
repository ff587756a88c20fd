package response

import "movie-catalog/pkg/utils"

type PaginatedResponse[T any] struct {
	Data []T            `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

type PaginationMeta struct {
	TotalItems  int64 `json:"totalItems"`
	TotalPages  int   `json:"totalPages"`
	CurrentPage int   `json:"currentPage"`
	PageSize    int   `json:"pageSize"`
}

// NewPaginatedResponse wraps one page of data. total is the size of the
// filtered set before slicing; a nil data slice is rendered as [].
func NewPaginatedResponse[T any](data []T, page, pageSize int, total int64) *PaginatedResponse[T] {
	if data == nil {
		data = []T{}
	}

	return &PaginatedResponse[T]{
		Data: data,
		Meta: PaginationMeta{
			TotalItems:  total,
			TotalPages:  utils.CalculateTotalPages(total, pageSize),
			CurrentPage: page,
			PageSize:    pageSize,
		},
	}
}
