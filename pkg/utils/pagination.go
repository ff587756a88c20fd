package utils

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MinPageSize     = 1
	MaxPageSize     = 100
)

// ClampPage returns page, raised to 1 when smaller. There is no upper bound:
// a page past the end yields an empty slice.
func ClampPage(page int) int {
	if page < DefaultPage {
		return DefaultPage
	}
	return page
}

// ClampPageSize keeps size within [MinPageSize, MaxPageSize].
func ClampPageSize(size int) int {
	switch {
	case size < MinPageSize:
		return MinPageSize
	case size > MaxPageSize:
		return MaxPageSize
	default:
		return size
	}
}

func CalculateTotalPages(total int64, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}

func CalculateOffset(page, perPage int) int {
	if page < 1 {
		return 0
	}
	return (page - 1) * perPage
}

// PageBounds returns the [start, end) window of a page over total items.
// A page past the end, however large, yields the empty window (total, total).
func PageBounds(total, page, perPage int) (start, end int) {
	if total <= 0 || perPage <= 0 {
		return 0, 0
	}
	page = ClampPage(page)
	if page-1 > (total-1)/perPage {
		return total, total
	}

	start = CalculateOffset(page, perPage)
	end = start + min(perPage, total-start)
	return start, end
}
