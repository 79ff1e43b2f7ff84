package pagination

import "strconv"

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// Page slices a result set of total records into 1-indexed pages of
// size records. A page past the last one yields ok=false, which callers
// translate into an empty result rather than an error. An empty set
// still counts as a single (empty) first page.
func Page(total int64, page, size int) (offset, limit int, ok bool) {
	if page < 1 || size < 1 {
		return 0, 0, false
	}

	totalPages := int((total + int64(size) - 1) / int64(size))
	if totalPages == 0 {
		totalPages = 1
	}

	if page > totalPages {
		return 0, 0, false
	}

	return (page - 1) * size, size, true
}

// Atoi parses a query parameter, falling back to fallback on anything
// that is not a plain integer.
func Atoi(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}
