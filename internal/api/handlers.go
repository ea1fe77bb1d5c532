package api

import (
	"encoding/json"
	"net/http"

	"github.com/kulturkompass/wortwolke/pkg/cloud"
	"github.com/kulturkompass/wortwolke/pkg/cloud/place"
	"github.com/kulturkompass/wortwolke/pkg/errors"
)

// layoutRequest is the POST /v1/layout body. Config and Strategy are
// optional; omitted config fields fall back to the server defaults.
type layoutRequest struct {
	Items     []cloud.Item    `json:"items"`
	Container cloud.Container `json:"container"`
	Strategy  string          `json:"strategy,omitempty"`
	Config    *cloud.Config   `json:"config,omitempty"`
	NoCache   bool            `json:"no_cache,omitempty"`
}

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	var req layoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errors.Wrap(errors.ErrCodeInvalidInput, err, "malformed request body"))
		return
	}

	opts := s.opts
	if req.Strategy != "" {
		strategy, err := place.ParseStrategy(req.Strategy)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		opts.Strategy = strategy
	}
	if req.Config != nil {
		opts.Config = req.Config.Normalize()
	}
	opts.NoCache = opts.NoCache || req.NoCache

	layout, err := s.runner.Compute(r.Context(), req.Items, req.Container, opts)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	writeJSON(w, http.StatusOK, layout)
}

// handleStrategy exposes the selection policy so the front-end can ask which
// algorithm a given input would get without computing anything.
func (s *Server) handleStrategy(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	count, err1 := intParam(q.Get("count"))
	width, err2 := floatParam(q.Get("width"))
	height, err3 := floatParam(q.Get("height"))
	if err1 != nil || err2 != nil || err3 != nil {
		writeError(w, http.StatusBadRequest,
			errors.New(errors.ErrCodeInvalidInput, "count, width, and height must be numeric"))
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"strategy": place.Select(count, width*height),
		"count":    count,
		"area":     width * height,
	})
}

// statusFor maps error codes to HTTP status codes.
func statusFor(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidItem, errors.ErrCodeDuplicateItem,
		errors.ErrCodeInvalidContainer, errors.ErrCodeInvalidConfig, errors.ErrCodeInvalidStrategy:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	writeJSON(w, status, errorResponse{Code: string(code), Message: errors.UserMessage(err)})
}
