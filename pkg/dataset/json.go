package dataset

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"github.com/matzehuels/jobtimeline/pkg/errors"
)

type jsonDocument struct {
	Jobs []map[string]any `json:"jobs"`
}

func readJSON(r io.Reader, opts Options) (*Table, error) {
	cols := opts.Columns
	cols.SetDefaults()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read JSON")
	}
	jobs, err := decodeJobs(data)
	if err != nil {
		return nil, err
	}

	grouped := false
	if !opts.NoGroup {
		for _, job := range jobs {
			if _, ok := lookup(job, cols.Group); ok {
				grouped = true
				break
			}
		}
	}

	b := newBuilder(grouped, "job")
	for i, job := range jobs {
		pos := i + 1
		var cells [4]string
		for j, name := range []string{cols.Worker, cols.Begin, cols.End} {
			v, ok := lookup(job, name)
			if !ok {
				return nil, errors.New(errors.ErrCodeInvalidInput, "job %d: missing %q", pos, name)
			}
			s, ok := scalar(v)
			if !ok {
				return nil, errors.New(errors.ErrCodeInvalidInput, "job %d: %q must be a string or number, got %v", pos, name, v)
			}
			cells[j] = s
		}
		if grouped {
			if v, ok := lookup(job, cols.Group); ok {
				s, ok := scalar(v)
				if !ok {
					return nil, errors.New(errors.ErrCodeInvalidInput, "job %d: %q must be a string or number, got %v", pos, cols.Group, v)
				}
				cells[3] = s
			}
		}
		if err := b.add(pos, cells[0], cells[1], cells[2], cells[3]); err != nil {
			return nil, err
		}
	}
	return b.finish(), nil
}

// decodeJobs accepts a bare array of jobs or an object with a "jobs" array.
func decodeJobs(data []byte) ([]map[string]any, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "empty JSON input")
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()

	if trimmed[0] == '[' {
		var jobs []map[string]any
		if err := dec.Decode(&jobs); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode JSON jobs")
		}
		return jobs, nil
	}

	var doc jsonDocument
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode JSON document")
	}
	if doc.Jobs == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, `JSON document has no "jobs" array`)
	}
	return doc.Jobs, nil
}

// lookup finds a key case-insensitively, preferring an exact match.
func lookup(job map[string]any, name string) (any, bool) {
	if v, ok := job[name]; ok {
		return v, true
	}
	for k, v := range job {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}
	return nil, false
}

func scalar(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case json.Number:
		return x.String(), true
	}
	return "", false
}
