package dataset

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/matzehuels/jobtimeline/pkg/errors"
)

func readCSV(r io.Reader, opts Options, comma rune) (*Table, error) {
	cols := opts.Columns
	cols.SetDefaults()

	reader := csv.NewReader(r)
	reader.Comma = comma
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.New(errors.ErrCodeInvalidInput, "empty CSV: missing header")
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read CSV header")
	}

	columnMap := make(map[string]int, len(header))
	for i, col := range header {
		columnMap[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(col, "\ufeff")))] = i
	}
	find := func(name string) (int, bool) {
		i, ok := columnMap[strings.ToLower(name)]
		return i, ok
	}

	var idx [3]int
	for i, name := range []string{cols.Worker, cols.Begin, cols.End} {
		col, ok := find(name)
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidInput, "column %q not found in CSV header %v", name, header)
		}
		idx[i] = col
	}
	groupCol, grouped := find(cols.Group)
	grouped = grouped && !opts.NoGroup

	b := newBuilder(grouped, "line")
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read CSV")
		}
		line, _ := reader.FieldPos(0)
		if isBlank(record) {
			continue
		}

		cell := func(i int) string {
			if i < len(record) {
				return record[i]
			}
			return ""
		}
		group := ""
		if grouped {
			group = cell(groupCol)
		}
		if err := b.add(line, cell(idx[0]), cell(idx[1]), cell(idx[2]), group); err != nil {
			return nil, err
		}
	}
	return b.finish(), nil
}

func isBlank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
