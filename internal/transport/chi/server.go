// Package chi exposes keyspace checks over HTTP for suites not written in Go.
package chi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/kailas-cloud/keycheck/internal/domain/value"
	checkuc "github.com/kailas-cloud/keycheck/internal/usecase/check"
	healthuc "github.com/kailas-cloud/keycheck/internal/usecase/health"
)

// 1 MiB is plenty for any expectation document.
const maxBodyBytes = 1 << 20

// Server handles the keycheck HTTP API.
type Server struct {
	checker checkuc.Checker
	health  *healthuc.Service
	logger  *zap.Logger
}

// NewServer creates an HTTP API server.
func NewServer(checker checkuc.Checker, health *healthuc.Service, logger *zap.Logger) *Server {
	return &Server{checker: checker, health: health, logger: logger}
}

// Routes mounts the API onto the given router.
func (s *Server) Routes(r chi.Router) {
	r.Post("/v1/exists", s.handleExists)
	r.Post("/v1/contains", s.handleContains)
	r.Get("/health", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
}

type existsResponse struct {
	Found    bool   `json:"found"`
	Passed   bool   `json:"passed"`
	Kind     string `json:"kind"`
	Expected string `json:"expected,omitempty"`
	Actual   string `json:"actual,omitempty"`
}

func (s *Server) handleExists(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.readBody(w, r)
	if !ok {
		return
	}

	// The empty key is a legal Redis key; reject only a missing or
	// non-string field.
	key := doc.Get("key")
	if key.Type != gjson.String {
		writeError(w, http.StatusBadRequest, codeInvalidArgument, "key must be a string")
		return
	}

	var expected []any
	if exp := doc.Get("expected"); exp.Exists() && exp.Type != gjson.Null {
		v, err := valueFromJSON(exp)
		if err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidArgument, err.Error())
			return
		}
		expected = append(expected, v)
	}

	rep, err := s.checker.Exists(r.Context(), key.Str, expected...)
	if err != nil {
		s.handleCheckError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, existsResponse{
		Found:    rep.Found,
		Passed:   rep.Passed,
		Kind:     string(rep.Kind),
		Expected: rep.Expected,
		Actual:   rep.Actual,
	})
}

type containsResponse struct {
	Contains bool `json:"contains"`
}

func (s *Server) handleContains(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.readBody(w, r)
	if !ok {
		return
	}

	key := doc.Get("key")
	if key.Type != gjson.String {
		writeError(w, http.StatusBadRequest, codeInvalidArgument, "key must be a string")
		return
	}

	item := doc.Get("item")
	if !item.Exists() {
		writeError(w, http.StatusBadRequest, codeInvalidArgument, "item is required")
		return
	}
	itemScalar, err := scalarFromJSON(item)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidArgument, err.Error())
		return
	}

	var itemValue []any
	if v := doc.Get("value"); v.Exists() && v.Type != gjson.Null {
		s2, err := scalarFromJSON(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidArgument, err.Error())
			return
		}
		itemValue = append(itemValue, s2)
	}

	contains, err := s.checker.Contains(r.Context(), key.Str, itemScalar, itemValue...)
	if err != nil {
		s.handleCheckError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, containsResponse{Contains: contains})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	rep := s.health.Check(r.Context())

	status := http.StatusOK
	if rep.Status != healthuc.Healthy {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, map[string]any{
		"status": rep.Status,
		"checks": rep.Checks,
	})
}

// readBody reads and parses the request body as JSON.
func (s *Server) readBody(w http.ResponseWriter, r *http.Request) (gjson.Result, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidArgument, "failed to read request body")
		return gjson.Result{}, false
	}
	if !gjson.ValidBytes(body) {
		writeError(w, http.StatusBadRequest, codeInvalidArgument, "request body is not valid JSON")
		return gjson.Result{}, false
	}
	return gjson.ParseBytes(body), true
}

// Error envelope codes.
const (
	codeInvalidArgument = "invalid_argument"
	codeKeyNotFound     = "key_not_found"
	codeUnexpectedKind  = "unexpected_kind"
	codeInternal        = "internal_error"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) handleCheckError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, checkuc.ErrKeyNotFound):
		writeError(w, http.StatusNotFound, codeKeyNotFound, err.Error())
	case errors.Is(err, checkuc.ErrNotScalar), errors.Is(err, checkuc.ErrInvalidExpectation):
		writeError(w, http.StatusBadRequest, codeInvalidArgument, err.Error())
	case errors.Is(err, value.ErrUnexpectedKind):
		s.logger.Error("store reported unknown kind", zap.Error(err))
		writeError(w, http.StatusInternalServerError, codeUnexpectedKind, err.Error())
	default:
		s.logger.Error("check failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, codeInternal, "internal error")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
