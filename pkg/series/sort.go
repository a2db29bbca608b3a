package series

import "slices"

// SortByValue returns rows ordered by descending value. Ties keep their
// authored order, so sorting an already sorted slice is a no-op.
func SortByValue(rows []CategoryRow) []CategoryRow {
	out := slices.Clone(rows)
	slices.SortStableFunc(out, func(a, b CategoryRow) int {
		return b.Value() - a.Value()
	})
	return out
}

// IsSortedByValue reports whether rows are in non-increasing value order.
func IsSortedByValue(rows []CategoryRow) bool {
	for i := 1; i < len(rows); i++ {
		if rows[i].Value() > rows[i-1].Value() {
			return false
		}
	}
	return true
}
