package dataset

import (
	"math"
	"strconv"
	"strings"
)

// Table is a loaded job table with parallel columns.
type Table struct {
	Workers []string
	Begin   []float64
	End     []float64

	// Groups is nil when the input has no group column.
	Groups []string

	// TimeAxis is set when begin and end were timestamps, now Unix seconds.
	TimeAxis bool

	// NumericWorkers and NumericGroups are set when every value of the
	// column is a number, so rows and partitions order numerically.
	// Values are then compared by number: "1", "1.0" and "01" are the
	// same worker or group.
	NumericWorkers bool
	NumericGroups  bool

	warnings []string
}

// Len returns the number of jobs.
func (t *Table) Len() int { return len(t.Workers) }

// HasGroups reports whether jobs carry a group key.
func (t *Table) HasGroups() bool { return t.Groups != nil }

// Warnings lists non-fatal problems found while loading.
func (t *Table) Warnings() []string { return t.warnings }

// WorkerNumbers returns the workers as numbers. Only meaningful when
// NumericWorkers is set.
func (t *Table) WorkerNumbers() []float64 { return numbers(t.Workers) }

// GroupNumbers returns the groups as numbers. Only meaningful when
// NumericGroups is set.
func (t *Table) GroupNumbers() []float64 { return numbers(t.Groups) }

func (t *Table) warnf(msg string) { t.warnings = append(t.warnings, msg) }

func numbers(values []string) []float64 {
	if values == nil {
		return nil
	}
	out := make([]float64, len(values))
	for i, v := range values {
		out[i], _ = parseNumber(v)
	}
	return out
}

func allNumeric(values []string) bool {
	if len(values) == 0 {
		return false
	}
	for _, v := range values {
		if _, ok := parseNumber(v); !ok {
			return false
		}
	}
	return true
}

// parseNumber accepts finite decimal numbers only.
func parseNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
