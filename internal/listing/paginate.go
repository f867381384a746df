package listing

// TotalPages returns the page count for n items at the given page size.
// An empty collection still has one (empty) page.
func TotalPages(n, size int) int {
	if size <= 0 {
		return 1
	}
	pages := (n + size - 1) / size
	if pages < 1 {
		return 1
	}
	return pages
}

// PageSlice returns the visible window of items for a 1-based page number.
// It does not clamp: a page past the end yields an empty slice, and the
// caller is expected to correct the page with ClampPage.
func PageSlice[T any](items []T, page, size int) []T {
	if page < 1 || size <= 0 {
		return []T{}
	}
	start := (page - 1) * size
	if start >= len(items) {
		return []T{}
	}
	end := min(start+size, len(items))
	return items[start:end]
}

// ClampPage forces page into [1, totalPages].
func ClampPage(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// PageAfterDelete returns the page to show after removing one item.
// itemsOnPage is the number of items visible on currentPage before the
// removal. Only when the deleted item was the sole item on a non-first page
// does the page move back by one, so the user never lands on an empty page.
func PageAfterDelete(itemsOnPage, currentPage int) int {
	if itemsOnPage == 1 && currentPage > 1 {
		return currentPage - 1
	}
	return currentPage
}
