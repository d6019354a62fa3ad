package dataset

import (
	"fmt"
	"strings"

	"github.com/matzehuels/jobtimeline/pkg/errors"
)

// builder accumulates rows and enforces a single begin/end kind.
type builder struct {
	t     *Table
	kind  instantKind
	where string // "line" for CSV, "job" for JSON
}

func newBuilder(grouped bool, where string) *builder {
	t := &Table{}
	if grouped {
		t.Groups = []string{}
	}
	return &builder{t: t, where: where}
}

func (b *builder) add(pos int, worker, begin, end, group string) error {
	worker = strings.TrimSpace(worker)
	if worker == "" {
		return b.errorf(pos, "empty worker")
	}

	bv, err := b.instant(pos, "begin", begin)
	if err != nil {
		return err
	}
	ev, err := b.instant(pos, "end", end)
	if err != nil {
		return err
	}
	if bv > ev {
		b.t.warnf(fmt.Sprintf("%s %d: begin %s is after end %s", b.where, pos, strings.TrimSpace(begin), strings.TrimSpace(end)))
	}

	b.t.Workers = append(b.t.Workers, worker)
	b.t.Begin = append(b.t.Begin, bv)
	b.t.End = append(b.t.End, ev)
	if b.t.Groups != nil {
		b.t.Groups = append(b.t.Groups, strings.TrimSpace(group))
	}
	return nil
}

func (b *builder) instant(pos int, column, cell string) (float64, error) {
	v, kind, ok := parseInstant(cell)
	if !ok {
		return 0, b.errorf(pos, "%s %q is neither a number nor a timestamp", column, strings.TrimSpace(cell))
	}
	if b.kind == 0 {
		b.kind = kind
	} else if kind != b.kind {
		return 0, b.errorf(pos, "%s %q is a %s but earlier rows use %ss", column, strings.TrimSpace(cell), kind, b.kind)
	}
	return v, nil
}

func (b *builder) errorf(pos int, format string, args ...any) error {
	return errors.New(errors.ErrCodeInvalidInput, "%s %d: %s", b.where, pos, fmt.Sprintf(format, args...))
}

func (b *builder) finish() *Table {
	t := b.t
	t.TimeAxis = b.kind == kindTime
	t.NumericWorkers = allNumeric(t.Workers)
	t.NumericGroups = t.Groups != nil && allNumeric(t.Groups)
	if t.Len() == 0 {
		t.warnf("no jobs")
	}
	return t
}
