package server

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"
	"slices"

	"github.com/matzehuels/jobtimeline/pkg/buildinfo"
	"github.com/matzehuels/jobtimeline/pkg/config"
	"github.com/matzehuels/jobtimeline/pkg/dataset"
	"github.com/matzehuels/jobtimeline/pkg/errors"
	"github.com/matzehuels/jobtimeline/pkg/pipeline"
)

// contentTypes maps output formats to response content types.
var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatPDF:  "application/pdf",
	pipeline.FormatJSON: "application/json",
}

// timelineRequest is the body of /v1/timeline and /v1/layout.
type timelineRequest struct {
	Jobs    json.RawMessage `json:"jobs"`
	Options json.RawMessage `json:"options,omitempty"`
}

// errorResponse is the body of every failed request.
type errorResponse struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

type healthResponse struct {
	Status string `json:"status"`
	buildinfo.Info
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Info: buildinfo.Get()})
}

func (s *Server) handleTimeline(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = pipeline.FormatSVG
	}
	if err := pipeline.ValidateFormat(format); err != nil {
		s.writeError(w, r, err)
		return
	}

	tbl, opts, err := s.decode(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	opts.Formats = []string{format}

	result, err := s.runner.ExecuteTable(r.Context(), tbl, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", contentTypes[format])
	w.WriteHeader(http.StatusOK)
	w.Write(result.Artifacts[format])
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	tbl, opts, err := s.decode(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := opts.ValidateForLayout(); err != nil {
		s.writeError(w, r, err)
		return
	}
	rep, err := pipeline.ComputeLayout(tbl, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

// decode reads the request body into a job table and options layered on
// the server defaults.
func (s *Server) decode(w http.ResponseWriter, r *http.Request) (*dataset.Table, pipeline.Options, error) {
	body := http.MaxBytesReader(w, r.Body, s.maxBody)
	var req timelineRequest
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			return nil, pipeline.Options{}, err
		}
		return nil, pipeline.Options{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request body")
	}
	if len(req.Jobs) == 0 {
		return nil, pipeline.Options{}, errors.New(errors.ErrCodeInvalidInput, `request has no "jobs"`)
	}

	cfg := s.defaults
	cfg.Palette = slices.Clone(cfg.Palette)
	cfg.Formats = slices.Clone(cfg.Formats)
	if len(req.Options) > 0 {
		if err := config.DecodeJSON(bytes.NewReader(req.Options), &cfg); err != nil {
			if errors.GetCode(err) == "" {
				err = errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode options")
			}
			return nil, pipeline.Options{}, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, pipeline.Options{}, err
	}

	opts := pipeline.FromConfig(cfg)
	opts.Logger = s.logger
	tbl, err := dataset.Read(bytes.NewReader(req.Jobs), dataset.FormatJSON, opts.DatasetOptions())
	if err != nil {
		return nil, pipeline.Options{}, err
	}
	return tbl, opts, nil
}

// writeError maps err to a status code and a coded JSON body.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := http.StatusInternalServerError, errors.GetCode(err)
	var tooLarge *http.MaxBytesError
	switch {
	case stderrors.As(err, &tooLarge):
		status, code = http.StatusRequestEntityTooLarge, errors.ErrCodeInvalidInput
	case errors.IsValidation(err):
		status = http.StatusBadRequest
	case code == errors.ErrCodeUnsupported:
		status = http.StatusNotImplemented
	}
	if code == "" {
		code = errors.ErrCodeInternal
	}

	msg := errors.UserMessage(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "error", err, "request_id", RequestIDFromContext(r.Context()))
		msg = "internal error"
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	io.Copy(w, &buf)
}
