package timeline

// Period returns the length of one cycle of the offset wave.
func Period(groupNum int) int {
	return 4 * groupNum
}

// OffsetAt returns the wave step for the index-th entry of a worker.
//
// The cycle ascends 0..n-1, descends n..-n+1 and ascends -n..-1 again, so
// successive entries step outward, turn around and come back instead of
// jumping. groupNum must be positive.
func OffsetAt(index, groupNum int) int {
	n := groupNum
	k := index % Period(n)
	if k < 0 {
		k += Period(n)
	}
	switch {
	case k < n:
		return k
	case k < 3*n:
		return 2*n - k
	default:
		return k - 4*n
	}
}

// Wave returns the first count steps of the offset wave.
func Wave(count, groupNum int) []int {
	steps := make([]int, count)
	for i := range steps {
		steps[i] = OffsetAt(i, groupNum)
	}
	return steps
}
