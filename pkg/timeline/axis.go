package timeline

import (
	"cmp"
	"fmt"
	"slices"
)

// Axis is the ordered mapping from distinct worker values to row indices.
// It is built once per layout and shared by positioning and tick labelling.
type Axis[W cmp.Ordered] struct {
	values []W
	rows   map[W]int
}

// NewAxis collects the distinct values of workers in sorted order and assigns
// each its rank as row index.
func NewAxis[W cmp.Ordered](workers []W) Axis[W] {
	values := slices.Clone(workers)
	slices.Sort(values)
	values = slices.Compact(values)

	rows := make(map[W]int, len(values))
	for i, v := range values {
		rows[v] = i
	}
	return Axis[W]{values: values, rows: rows}
}

// Values returns the sorted distinct worker values. Index i is row i.
func (a Axis[W]) Values() []W { return a.values }

// Len returns the number of rows.
func (a Axis[W]) Len() int { return len(a.values) }

// Row returns the row index assigned to w.
func (a Axis[W]) Row(w W) (int, bool) {
	r, ok := a.rows[w]
	return r, ok
}

// Labels formats every worker value for use as a categorical tick label.
// A nil format uses fmt.Sprint.
func (a Axis[W]) Labels(format func(W) string) []string {
	if format == nil {
		format = func(w W) string { return fmt.Sprint(w) }
	}
	labels := make([]string, len(a.values))
	for i, v := range a.values {
		labels[i] = format(v)
	}
	return labels
}
