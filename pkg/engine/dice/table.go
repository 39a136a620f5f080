package dice

import "sort"

// Table is a weighted choice over the indices of its weights.
type Table struct {
	cumulative []int
}

// NewTable builds a table from non-negative weights. Zero weights are never picked.
func NewTable(weights ...int) Table {
	t := Table{cumulative: make([]int, len(weights))}
	total := 0
	for i, w := range weights {
		if w > 0 {
			total += w
		}
		t.cumulative[i] = total
	}
	return t
}

// Total returns the sum of all weights.
func (t Table) Total() int {
	if len(t.cumulative) == 0 {
		return 0
	}
	return t.cumulative[len(t.cumulative)-1]
}

// Pick rolls an index from t, or -1 when the table is empty.
func (s *Seed) Pick(t Table) int {
	total := t.Total()
	if total == 0 {
		return -1
	}
	r := s.Roll(0, total-1)
	return sort.SearchInts(t.cumulative, r+1)
}
