package timeline

import (
	"cmp"
	"slices"
)

// Partition is the set of entries sharing a group key.
// Indices refer to positions in the original input and keep input order.
type Partition[K cmp.Ordered] struct {
	Key     K
	Indices []int
}

// Partitions splits entry indices by group key. Partitions are returned in
// sorted key order and every index appears in exactly one partition.
func Partitions[K cmp.Ordered](groupby []K) []Partition[K] {
	byKey := make(map[K][]int)
	for i, k := range groupby {
		byKey[k] = append(byKey[k], i)
	}

	keys := make([]K, 0, len(byKey))
	for k := range byKey {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	parts := make([]Partition[K], len(keys))
	for i, k := range keys {
		parts[i] = Partition[K]{Key: k, Indices: byKey[k]}
	}
	return parts
}

// Single returns one partition covering n entries, used when no group key is given.
func Single[K cmp.Ordered](n int) []Partition[K] {
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	return []Partition[K]{{Indices: indices}}
}
