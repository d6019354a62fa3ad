// Package timeline computes the vertical layout of a job timeline.
//
// A job timeline draws, for every worker, the intervals during which the
// worker was busy. Entries are given as parallel sequences (worker, begin,
// end and an optional group key). Each distinct worker gets an integer row;
// entries of the same worker are fanned out around that row following a
// triangular wave so consecutive jobs do not draw on top of each other.
//
// # Rows
//
// [NewAxis] sorts the distinct worker values and assigns each its rank as
// row index. The resulting [Axis] is reused for axis labelling.
//
// # Offset Wave
//
// [OffsetAt] maps the k-th entry of a worker to a step of a wave with period
// 4*groupNum. For groupNum = 2 the steps are:
//
//	0, 1, 2, 1, 0, -1, -2, -1, 0, 1, ...
//
// The final position is row + step*radius/groupNum, which keeps every entry
// within ±radius of its row regardless of groupNum.
//
// # Partitions
//
// Group keys do not affect positions. [Partitions] splits entry indices by
// key, in sorted key order, so a renderer can issue one styled draw call per
// group.
//
// # Errors
//
// Validation happens before any computation: a non-positive group_num yields
// an INVALID_GROUP_NUM error, sequences of different lengths yield a
// [*LengthMismatchError].
package timeline
