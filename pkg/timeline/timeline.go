package timeline

import (
	"cmp"
)

const (
	// DefaultGroupNum is the number of wave steps on each side of a row.
	DefaultGroupNum = 2

	// DefaultGroupRadius is the maximum distance of a fanned entry from its row.
	DefaultGroupRadius = 0.3
)

// Options controls the fan-out wave.
type Options struct {
	// GroupNum is the number of distinct steps on each side of the row
	// before the wave turns around. Must be positive.
	GroupNum int `json:"group_num,omitempty"`

	// GroupRadius is the distance between the row and the outermost step.
	GroupRadius float64 `json:"group_radius,omitempty"`
}

// DefaultOptions returns DefaultGroupNum and DefaultGroupRadius.
//
// Zero values are meaningful (GroupNum 0 is rejected, GroupRadius 0 stacks
// every entry on its row), so there is no zero-value defaulting.
func DefaultOptions() Options {
	return Options{GroupNum: DefaultGroupNum, GroupRadius: DefaultGroupRadius}
}

// Layout is the computed vertical placement of every entry.
type Layout[W cmp.Ordered] struct {
	// Axis maps distinct workers to rows, in sorted order.
	Axis Axis[W]

	// Rows is the base row index of each entry.
	Rows []int

	// Offsets is the raw wave step of each entry.
	Offsets []int

	// Positions is the final vertical coordinate of each entry.
	Positions []float64

	// GroupNum and GroupRadius are the options the layout was computed with.
	GroupNum    int
	GroupRadius float64
}

// Len returns the number of entries.
func (l *Layout[W]) Len() int { return len(l.Positions) }

// Compute validates the inputs and places every entry.
//
// begin and end are only checked for length; begin <= end is the caller's
// responsibility.
func Compute[W cmp.Ordered, T any](workers []W, begin, end []T, opts Options) (*Layout[W], error) {
	if err := ValidateGroupNum(opts.GroupNum); err != nil {
		return nil, err
	}
	if err := CheckLengths(len(workers), len(begin), len(end)); err != nil {
		return nil, err
	}
	return place(workers, opts), nil
}

// ComputeGrouped is Compute with a group key per entry. It returns the layout
// together with the partitions of entries by key.
func ComputeGrouped[W, K cmp.Ordered, T any](workers []W, begin, end []T, groupby []K, opts Options) (*Layout[W], []Partition[K], error) {
	if err := ValidateGroupNum(opts.GroupNum); err != nil {
		return nil, nil, err
	}
	if err := CheckLengths(len(workers), len(begin), len(end), len(groupby)); err != nil {
		return nil, nil, err
	}
	return place(workers, opts), Partitions(groupby), nil
}

func place[W cmp.Ordered](workers []W, opts Options) *Layout[W] {
	axis := NewAxis(workers)
	l := &Layout[W]{
		Axis:        axis,
		Rows:        make([]int, len(workers)),
		Offsets:     make([]int, len(workers)),
		Positions:   make([]float64, len(workers)),
		GroupNum:    opts.GroupNum,
		GroupRadius: opts.GroupRadius,
	}

	seen := make([]int, axis.Len())
	scale := opts.GroupRadius / float64(opts.GroupNum)
	for i, w := range workers {
		row, _ := axis.Row(w)
		off := OffsetAt(seen[row], opts.GroupNum)
		seen[row]++

		l.Rows[i] = row
		l.Offsets[i] = off
		l.Positions[i] = float64(row) + float64(off)*scale
	}
	return l
}
