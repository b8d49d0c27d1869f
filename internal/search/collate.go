package search

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// newCollator returns a Spanish collator. Collators keep internal buffers
// and must not be shared between goroutines.
func newCollator() *collate.Collator {
	return collate.New(language.Spanish)
}

// SortByText orders items in place by key using Spanish collation. Equal
// keys keep their relative order.
func SortByText[T any](items []T, key func(T) string) {
	c := newCollator()
	sort.SliceStable(items, func(i, j int) bool {
		return c.CompareString(key(items[i]), key(items[j])) < 0
	})
}
