package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/sbcohen2000/raggedblocks/pkg/errors"
	stdio "github.com/sbcohen2000/raggedblocks/pkg/io"
	"github.com/sbcohen2000/raggedblocks/pkg/pipeline"
	"github.com/sbcohen2000/raggedblocks/pkg/store"
)

// layoutRequest is the JSON body accepted by POST /v1/layout and
// POST /v1/render. Tree carries the input tree in pkg/io's JSON format;
// the remaining fields decode directly into pipeline.Options, which
// already carries the right json tags for API use.
type layoutRequest struct {
	Tree json.RawMessage `json:"tree"`
	pipeline.Options
}

func (s *Server) decodeOptions(r *http.Request) (pipeline.Options, error) {
	var req layoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return pipeline.Options{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request body")
	}
	if len(req.Tree) == 0 {
		return pipeline.Options{}, errors.New(errors.ErrCodeInvalidInput, "missing \"tree\" field")
	}
	t, err := stdio.ReadJSON(bytes.NewReader(req.Tree))
	if err != nil {
		return pipeline.Options{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode input tree")
	}
	opts := req.Options
	opts.Tree = t
	return opts, nil
}

// layoutResponse is the JSON response for POST /v1/layout: the computed
// layout plus enough metadata to replay the request against the cache
// or history store.
type layoutResponse struct {
	TreeHash   string          `json:"treeHash"`
	LayoutHash string          `json:"layoutHash"`
	Layout     json.RawMessage `json:"layout"`
	Stats      pipeline.Stats  `json:"stats"`
	CacheInfo  pipeline.CacheInfo `json:"cacheInfo"`
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	opts, err := s.decodeOptions(r)
	if err != nil {
		writeError(w, err)
		return
	}
	opts.Formats = []string{pipeline.FormatJSON}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, layoutResponse{
		TreeHash:   result.TreeHash,
		LayoutHash: result.LayoutHash,
		Layout:     result.Artifacts[pipeline.FormatJSON],
		Stats:      result.Stats,
		CacheInfo:  result.CacheInfo,
	})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	opts, err := s.decodeOptions(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if len(opts.Formats) != 1 {
		writeError(w, errors.New(errors.ErrCodeInvalidInput, "POST /v1/render requires exactly one format"))
		return
	}
	format := opts.Formats[0]

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		writeError(w, err)
		return
	}
	data := result.Artifacts[format]

	if format == pipeline.FormatSVG && s.store != nil {
		_ = s.store.Save(r.Context(), store.Record{
			InputHash: result.TreeHash,
			Algorithm: opts.Algorithm,
			Settings: store.RecordSettings{
				TranslateWraps:   opts.TranslateWraps,
				SimplifyOutlines: opts.SimplifyOutlines,
				IdealLeading:     opts.IdealLeading,
			},
			SVG: data,
		})
	}

	w.Header().Set("Content-Type", contentType(format))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func contentType(format string) string {
	switch format {
	case pipeline.FormatSVG:
		return "image/svg+xml"
	case pipeline.FormatPNG:
		return "image/png"
	case pipeline.FormatPDF:
		return "application/pdf"
	case pipeline.FormatJSON:
		return "application/json"
	default:
		return "application/octet-stream"
	}
}

type historyRecord struct {
	ID        string  `json:"id"`
	InputHash string  `json:"inputHash"`
	Algorithm string  `json:"algorithm"`
	Timestamp string  `json:"timestamp"`
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := parsePositiveInt(v); err == nil {
			limit = n
		}
	}

	records, err := s.store.List(r.Context(), limit)
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]historyRecord, len(records))
	for i, rec := range records {
		out[i] = historyRecord{
			ID:        rec.ID,
			InputHash: rec.InputHash,
			Algorithm: rec.Algorithm,
			Timestamp: rec.Timestamp.Format(timestampLayout),
		}
	}
	writeJSON(w, http.StatusOK, out)
}

const timestampLayout = "2006-01-02T15:04:05Z07:00"

func parsePositiveInt(s string) (int, error) {
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, errors.New(errors.ErrCodeInvalidInput, "invalid integer %q", s)
		}
		n = n*10 + int(c-'0')
	}
	return n, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := errors.HTTPStatus(code)
	writeJSON(w, status, errorResponse{
		Code:    string(code),
		Message: errors.UserMessage(err),
	})
}
