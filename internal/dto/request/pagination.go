package request

import "movie-catalog/pkg/utils"

type PaginatedRequest struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
}

// Normalize clamps page to >= 1 and page size to [1, 100].
func (p PaginatedRequest) Normalize() PaginatedRequest {
	return PaginatedRequest{
		Page:     utils.ClampPage(p.Page),
		PageSize: utils.ClampPageSize(p.PageSize),
	}
}
