package request

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginatedRequestNormalize(t *testing.T) {
	tests := []struct {
		name string
		req  PaginatedRequest
		want PaginatedRequest
	}{
		{name: "in range", req: PaginatedRequest{Page: 3, PageSize: 20}, want: PaginatedRequest{Page: 3, PageSize: 20}},
		{name: "zero values", req: PaginatedRequest{}, want: PaginatedRequest{Page: 1, PageSize: 1}},
		{name: "negative values", req: PaginatedRequest{Page: -4, PageSize: -1}, want: PaginatedRequest{Page: 1, PageSize: 1}},
		{name: "oversized page size", req: PaginatedRequest{Page: 1, PageSize: 101}, want: PaginatedRequest{Page: 1, PageSize: 100}},
		{name: "huge page kept", req: PaginatedRequest{Page: math.MaxInt, PageSize: 10}, want: PaginatedRequest{Page: math.MaxInt, PageSize: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.req.Normalize())
		})
	}
}
