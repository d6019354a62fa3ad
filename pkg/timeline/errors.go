package timeline

import (
	"fmt"
	"math"
	"strings"

	"github.com/matzehuels/jobtimeline/pkg/errors"
)

// LengthMismatchError reports parallel input sequences of different lengths.
type LengthMismatchError struct {
	Names   []string // sequence names, e.g. "workers", "begin", "end"
	Lengths []int    // length of each sequence, same order as Names
}

func (e *LengthMismatchError) Error() string {
	parts := make([]string, len(e.Lengths))
	for i, n := range e.Lengths {
		parts[i] = fmt.Sprint(n)
	}
	return fmt.Sprintf("length of %s should be equal, but got (%s)",
		strings.Join(e.Names, ", "), strings.Join(parts, ", "))
}

// ErrorCode lets errors.Is(err, errors.ErrCodeLengthMismatch) match.
func (e *LengthMismatchError) ErrorCode() errors.Code { return errors.ErrCodeLengthMismatch }

var (
	ungroupedNames = []string{"workers", "begin", "end"}
	groupedNames   = []string{"workers", "begin", "end", "groupby"}
)

func checkLengths(names []string, lengths ...int) error {
	for _, n := range lengths[1:] {
		if n != lengths[0] {
			return &LengthMismatchError{Names: names, Lengths: lengths}
		}
	}
	return nil
}

// CheckLengths fails with a *LengthMismatchError unless all sequences have the
// same length. Three lengths name workers/begin/end, four add groupby.
func CheckLengths(lengths ...int) error {
	if len(lengths) < 2 {
		return nil
	}
	names := groupedNames
	if len(lengths) == 3 {
		names = ungroupedNames
	} else if len(lengths) != 4 {
		names = make([]string, len(lengths))
		for i := range names {
			names[i] = fmt.Sprintf("seq%d", i)
		}
	}
	return checkLengths(names, lengths...)
}

// ValidateGroupNum rejects non-positive group counts.
func ValidateGroupNum(n int) error {
	if n <= 0 {
		return errors.New(errors.ErrCodeInvalidGroupNum,
			"group_num should be a positive integer, but got %d", n)
	}
	return nil
}

// ParseGroupNum coerces an integral floating point value such as 2.0 to an
// int. Non-integral, non-finite and non-positive values are rejected.
func ParseGroupNum(v float64) (int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return 0, errors.New(errors.ErrCodeInvalidGroupNum,
			"group_num should be a positive integer, but got %v", v)
	}
	if v > math.MaxInt32 {
		return 0, errors.New(errors.ErrCodeInvalidGroupNum, "group_num too large: %v", v)
	}
	n := int(v)
	if err := ValidateGroupNum(n); err != nil {
		return 0, err
	}
	return n, nil
}
