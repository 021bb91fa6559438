package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/internal/logging"
	"github.com/aretw0/turing/internal/presentation/graph"
	"github.com/aretw0/turing/pkg/adapters/query"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/ports"
	"github.com/aretw0/turing/pkg/runner"
	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

// RunRequest is the body of POST /run and POST /validate.
type RunRequest struct {
	Description string `json:"tm_description"`
	Tape        string `json:"tape"`
	Trace       bool   `json:"trace"`
}

// RunResponse wraps a result. Error is set when the run was stopped early;
// Result then holds the partial configuration.
type RunResponse struct {
	Result *domain.Result `json:"result,omitempty"`
	Error  string         `json:"error,omitempty"`
}

// ValidateResponse reports what compiling a description produced.
type ValidateResponse struct {
	Transitions int                 `json:"transitions"`
	States      []domain.StateID    `json:"states"`
	Diagnostics []domain.Diagnostic `json:"diagnostics"`
	Issues      []turing.Issue      `json:"issues"`
}

// Server serves the engine over HTTP.
type Server struct {
	Engine  ports.Executor
	Store   ports.ProgramStore
	Library ports.ProgramLoader
	Metrics http.Handler
	Logger  *slog.Logger

	validate bool
}

// Option configures a Server.
type Option func(*Server)

// WithStore enables the /programs endpoints.
func WithStore(store ports.ProgramStore) Option {
	return func(s *Server) {
		s.Store = store
	}
}

// WithLibrary serves read-only programs under /library.
func WithLibrary(loader ports.ProgramLoader) Option {
	return func(s *Server) {
		s.Library = loader
	}
}

// WithMetricsHandler mounts h on /metrics.
func WithMetricsHandler(h http.Handler) Option {
	return func(s *Server) {
		s.Metrics = h
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.Logger = logger
	}
}

// WithRequestValidation toggles validation against the OpenAPI document. On by default.
func WithRequestValidation(enabled bool) Option {
	return func(s *Server) {
		s.validate = enabled
	}
}

// NewHandler creates a new HTTP handler for the engine.
func NewHandler(engine ports.Executor, opts ...Option) (http.Handler, error) {
	s := &Server{Engine: engine, validate: true}
	for _, opt := range opts {
		opt(s)
	}
	if s.Logger == nil {
		s.Logger = logging.NewNop()
	}

	r := chi.NewRouter()
	r.Use(enableCORS)
	r.Use(s.logRequests)

	if s.validate {
		doc, err := GetSwagger()
		if err != nil {
			return nil, err
		}
		mw, err := requestValidator(doc)
		if err != nil {
			return nil, err
		}
		r.Use(mw)
	}

	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(rawSpec())
	})
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(swaggerHTML))
	})
	if s.Metrics != nil {
		r.Handle("/metrics", s.Metrics)
	}

	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	r.Get("/run", s.RunQuery)
	r.Post("/run", s.RunBody)
	r.Post("/validate", s.Validate)
	r.Get("/graph", s.GetGraph)

	r.Route("/programs", func(r chi.Router) {
		r.Get("/", s.ListPrograms)
		r.Get("/{id}", s.GetProgram)
		r.Put("/{id}", s.SaveProgram)
		r.Delete("/{id}", s.DeleteProgram)
		r.Get("/{id}/run", s.RunProgram)
	})
	r.Get("/library", s.ListLibrary)
	r.Get("/library/{id}/run", s.RunLibraryProgram)

	return r, nil
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.Logger.Debug("http request", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Turing API Documentation</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	apiVersion := "unknown"
	if swagger, err := GetSwagger(); err == nil && swagger.Info != nil {
		apiVersion = swagger.Info.Version
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"app":         "turing-http",
		"version":     turing.Version,
		"api_version": apiVersion,
	})
}

// RunQuery handles GET /run, reading the program from the shareable query parameters.
func (s *Server) RunQuery(w http.ResponseWriter, r *http.Request) {
	trace, err := bindTrace(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	s.run(w, r, query.FromValues(r.URL.Query()), trace)
}

// RunBody handles POST /run.
func (s *Server) RunBody(w http.ResponseWriter, r *http.Request) {
	var body RunRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	s.run(w, r, domain.Program{Description: body.Description, Tape: body.Tape}, body.Trace)
}

// Validate handles POST /validate.
func (s *Server) Validate(w http.ResponseWriter, r *http.Request) {
	var body RunRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	desc, err := runner.SanitizeInput(body.Description)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	m, issues := s.Engine.Validate(r.Context(), desc)
	resp := ValidateResponse{
		Transitions: len(m.Transitions),
		States:      m.States(),
		Diagnostics: m.Diagnostics,
		Issues:      issues,
	}
	if resp.Diagnostics == nil {
		resp.Diagnostics = []domain.Diagnostic{}
	}
	if resp.Issues == nil {
		resp.Issues = []turing.Issue{}
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetGraph handles GET /graph.
func (s *Server) GetGraph(w http.ResponseWriter, r *http.Request) {
	desc, err := runner.SanitizeInput(r.URL.Query().Get(query.ParamDescription))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	m := s.Engine.Compile(r.Context(), desc)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, graph.GenerateMermaid(m, nil))
}

// ListPrograms handles GET /programs.
func (s *Server) ListPrograms(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	ids, err := s.Store.List(r.Context())
	if err != nil {
		s.storeError(w, "list programs", err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(ids))
}

// GetProgram handles GET /programs/{id}.
func (s *Server) GetProgram(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	p, err := s.Store.Load(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.storeError(w, "load program", err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// SaveProgram handles PUT /programs/{id}.
func (s *Server) SaveProgram(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	var p domain.Program
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	clean, err := runner.SanitizeProgram(p)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	id := chi.URLParam(r, "id")
	clean.ID = id
	if err := s.Store.Save(r.Context(), id, &clean); err != nil {
		s.storeError(w, "save program", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteProgram handles DELETE /programs/{id}.
func (s *Server) DeleteProgram(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	if err := s.Store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.storeError(w, "delete program", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RunProgram handles GET /programs/{id}/run.
func (s *Server) RunProgram(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	trace, err := bindTrace(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	p, err := s.Store.Load(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.storeError(w, "load program", err)
		return
	}
	s.run(w, r, *p, trace)
}

// ListLibrary handles GET /library.
func (s *Server) ListLibrary(w http.ResponseWriter, r *http.Request) {
	if s.Library == nil {
		writeJSON(w, http.StatusOK, []string{})
		return
	}
	ids, err := s.Library.ListPrograms(r.Context())
	if err != nil {
		s.storeError(w, "list library", err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(ids))
}

// RunLibraryProgram handles GET /library/{id}/run.
func (s *Server) RunLibraryProgram(w http.ResponseWriter, r *http.Request) {
	if s.Library == nil {
		writeError(w, http.StatusNotFound, domain.ErrProgramNotFound)
		return
	}
	trace, err := bindTrace(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	p, err := s.Library.GetProgram(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.storeError(w, "load library program", err)
		return
	}
	s.run(w, r, *p, trace)
}

func (s *Server) run(w http.ResponseWriter, r *http.Request, p domain.Program, trace bool) {
	clean, err := runner.SanitizeProgram(p)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		s.Logger.Warn("run: input rejected", "error", err)
		return
	}

	res, err := s.Engine.Execute(r.Context(), clean, turing.Traced(trace))
	resp := RunResponse{Result: res}
	if err != nil {
		if res == nil {
			writeError(w, http.StatusInternalServerError, err)
			s.Logger.Error("run failed", "error", err)
			return
		}
		resp.Error = err.Error()
		s.Logger.Info("run stopped early", "error", err, "steps", res.Steps)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) requireStore(w http.ResponseWriter) bool {
	if s.Store == nil {
		writeError(w, http.StatusNotImplemented, errors.New("no program store configured"))
		return false
	}
	return true
}

func (s *Server) storeError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrProgramNotFound):
		writeError(w, http.StatusNotFound, err)
	case errors.Is(err, domain.ErrEmptyProgramID), errors.Is(err, domain.ErrInvalidProgramID):
		writeError(w, http.StatusBadRequest, err)
	case errors.Is(err, context.Canceled):
		writeError(w, http.StatusServiceUnavailable, err)
	default:
		writeError(w, http.StatusInternalServerError, err)
		s.Logger.Error(op+" failed", "error", err)
	}
}

// bindTrace reads the optional boolean trace query parameter.
func bindTrace(r *http.Request) (bool, error) {
	var trace *bool
	if err := runtime.BindQueryParameter("form", true, false, "trace", r.URL.Query(), &trace); err != nil {
		return false, err
	}
	return trace != nil && *trace, nil
}

// -- Helpers --

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
