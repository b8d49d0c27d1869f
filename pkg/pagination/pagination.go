// Package pagination slices ordered sequences into fixed-size, 1-based pages.
package pagination

// Page is one window over an ordered sequence.
type Page[T any] struct {
	Items      []T
	Page       int
	PageSize   int
	TotalCount int
	TotalPages int
}

// Empty reports whether the underlying sequence had no items at all.
func (p Page[T]) Empty() bool {
	return p.TotalCount == 0
}

// TotalPages returns ceil(count/size). A non-positive size yields zero pages.
func TotalPages(count, size int) int {
	if count <= 0 || size <= 0 {
		return 0
	}
	return (count + size - 1) / size
}

// Clamp keeps page within [1, totalPages]; with zero pages it returns 1.
func Clamp(page, totalPages int) int {
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}
	return page
}

// Slice returns items[(page-1)*size : page*size], truncated to the sequence.
// Out-of-range pages yield an empty slice; callers clamp first.
func Slice[T any](items []T, page, size int) []T {
	if size <= 0 || page < 1 {
		return []T{}
	}
	start := (page - 1) * size
	if start >= len(items) {
		return []T{}
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// Paginate clamps the requested page and slices the sequence.
func Paginate[T any](items []T, page, size int) Page[T] {
	total := TotalPages(len(items), size)
	page = Clamp(page, total)
	return Page[T]{
		Items:      Slice(items, page, size),
		Page:       page,
		PageSize:   size,
		TotalCount: len(items),
		TotalPages: total,
	}
}
