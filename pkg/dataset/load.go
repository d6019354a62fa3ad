package dataset

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/jobtimeline/pkg/errors"
)

// Format is an input file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// Formats lists the supported input formats.
var Formats = []Format{FormatCSV, FormatJSON}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatCSV, FormatJSON:
		return f, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unknown input format %q (must be csv or json)", s)
}

// FormatFromPath infers the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".tsv":
		return FormatCSV, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "cannot infer input format from %q; use --input-format", path)
}

// Columns names the input columns (CSV header names or JSON keys).
type Columns struct {
	Worker string `json:"worker,omitempty" toml:"worker" yaml:"worker"`
	Begin  string `json:"begin,omitempty" toml:"begin" yaml:"begin"`
	End    string `json:"end,omitempty" toml:"end" yaml:"end"`
	Group  string `json:"group,omitempty" toml:"group" yaml:"group"`
}

// DefaultColumns returns worker, begin, end and group.
func DefaultColumns() Columns {
	return Columns{Worker: "worker", Begin: "begin", End: "end", Group: "group"}
}

// SetDefaults fills empty column names.
func (c *Columns) SetDefaults() {
	d := DefaultColumns()
	c.Worker = cmp.Or(c.Worker, d.Worker)
	c.Begin = cmp.Or(c.Begin, d.Begin)
	c.End = cmp.Or(c.End, d.End)
	c.Group = cmp.Or(c.Group, d.Group)
}

// Options configures loading.
type Options struct {
	// Format overrides extension-based detection.
	Format Format

	Columns Columns

	// NoGroup ignores the group column even if present.
	NoGroup bool
}

// Load reads a job table from path.
func Load(ctx context.Context, path string, opts Options) (*Table, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	format := opts.Format
	if format == "" {
		var err error
		if format, err = FormatFromPath(path); err != nil {
			return nil, err
		}
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if format == FormatCSV && strings.EqualFold(filepath.Ext(path), ".tsv") {
		return readCSV(f, opts, '\t')
	}
	return Read(f, format, opts)
}

// Read reads a job table in the given format.
func Read(r io.Reader, format Format, opts Options) (*Table, error) {
	switch format {
	case FormatCSV:
		return readCSV(r, opts, ',')
	case FormatJSON:
		return readJSON(r, opts)
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown input format %q", format)
}
