package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/internal/logging"
	"github.com/aretw0/turing/internal/presentation/graph"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/ports"
	"github.com/aretw0/turing/pkg/runner"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ExamplesURI is the resource listing the library programs.
const ExamplesURI = "turing://examples"

// RunArgs are the arguments of run_machine.
type RunArgs struct {
	Description string `json:"tm_description"`
	Tape        string `json:"tape"`
	Trace       bool   `json:"trace"`
}

// ExampleArgs are the arguments of run_example.
type ExampleArgs struct {
	ID    string `json:"id"`
	Trace bool   `json:"trace"`
}

// DescriptionArgs are the arguments of tools that only need a description.
type DescriptionArgs struct {
	Description string `json:"tm_description"`
}

// RunOutput aligns with the HTTP run response and adds the text report.
type RunOutput struct {
	Result *domain.Result `json:"result" jsonschema_description:"Final configuration of the machine"`
	Error  string         `json:"error,omitempty" jsonschema_description:"Set when the run was stopped before halting"`
	Report string         `json:"report" jsonschema_description:"Human readable trace and result"`
}

// ValidateOutput reports what compiling a description produced.
type ValidateOutput struct {
	Transitions int              `json:"transitions"`
	States      []domain.StateID `json:"states"`
	Diagnostics []string         `json:"diagnostics" jsonschema_description:"Skipped description lines"`
	Issues      []turing.Issue   `json:"issues" jsonschema_description:"Static findings about the transition table"`
}

// Server wraps the engine and exposes it as an MCP Server.
type Server struct {
	engine    ports.Executor
	library   ports.ProgramLoader
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// Option configures a Server.
type Option func(*Server)

// WithLibrary sets the programs served by run_example and turing://examples.
func WithLibrary(loader ports.ProgramLoader) Option {
	return func(s *Server) {
		s.library = loader
	}
}

// WithLogger sets the server logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a new MCP Server instance.
func NewServer(engine ports.Executor, opts ...Option) *Server {
	s := &Server{
		engine:    engine,
		mcpServer: server.NewMCPServer("turing-mcp", turing.Version),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logging.NewNop()
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Info("Shutdown signal received, shutting down MCP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: run_machine
	runTool := mcp.NewTool("run_machine",
		mcp.WithDescription("Run a Turing machine until no transition matches. Lines look like 'from 1 read a write b goto 2 move r'."),
		mcp.WithString("tm_description", mcp.Required(), mcp.Description("Transition table, one rule or parameter line per line")),
		mcp.WithString("tape", mcp.Description("Initial tape symbols separated by spaces")),
		mcp.WithBoolean("trace", mcp.Description("Include the configuration before every step")),
		mcp.WithOutputSchema[RunOutput](),
	)
	s.mcpServer.AddTool(runTool, mcp.NewStructuredToolHandler(s.handleRun))

	// TOOL: run_example
	exampleTool := mcp.NewTool("run_example",
		mcp.WithDescription("Run one of the programs listed by the turing://examples resource."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Program ID")),
		mcp.WithBoolean("trace", mcp.Description("Include the configuration before every step")),
		mcp.WithOutputSchema[RunOutput](),
	)
	s.mcpServer.AddTool(exampleTool, mcp.NewStructuredToolHandler(s.handleRunExample))

	// TOOL: validate_machine
	validateTool := mcp.NewTool("validate_machine",
		mcp.WithDescription("Compile a transition table and report skipped lines and unreachable rules."),
		mcp.WithString("tm_description", mcp.Required(), mcp.Description("Transition table")),
		mcp.WithOutputSchema[ValidateOutput](),
	)
	s.mcpServer.AddTool(validateTool, mcp.NewStructuredToolHandler(s.handleValidate))

	// TOOL: graph_machine
	s.mcpServer.AddTool(mcp.NewTool("graph_machine",
		mcp.WithDescription("Render a transition table as a Mermaid flowchart."),
		mcp.WithString("tm_description", mcp.Required(), mcp.Description("Transition table")),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args DescriptionArgs
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		desc, err := runner.SanitizeInput(args.Description)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("input rejected: %v", err)), nil
		}
		return mcp.NewToolResultText(graph.GenerateMermaid(s.engine.Compile(ctx, desc), nil)), nil
	})
}

// Handler methods for structured tools

func (s *Server) handleRun(ctx context.Context, request mcp.CallToolRequest, args RunArgs) (RunOutput, error) {
	return s.run(ctx, domain.Program{Description: args.Description, Tape: args.Tape}, args.Trace)
}

func (s *Server) handleRunExample(ctx context.Context, request mcp.CallToolRequest, args ExampleArgs) (RunOutput, error) {
	if s.library == nil {
		return RunOutput{}, fmt.Errorf("%w: %s", domain.ErrProgramNotFound, args.ID)
	}
	p, err := s.library.GetProgram(ctx, args.ID)
	if err != nil {
		return RunOutput{}, err
	}
	return s.run(ctx, *p, args.Trace)
}

func (s *Server) run(ctx context.Context, p domain.Program, trace bool) (RunOutput, error) {
	var report bytes.Buffer
	r := runner.NewRunner(
		runner.WithEngine(s.engine),
		runner.WithSink(runner.NewTextHandler(&report)),
		runner.WithTrace(trace),
		runner.WithLogger(s.logger),
	)

	res, err := r.Run(ctx, p)
	if res == nil {
		s.logger.Warn("MCP run failed", "error", err)
		return RunOutput{}, fmt.Errorf("run failed: %w", err)
	}

	out := RunOutput{Result: res, Report: report.String()}
	if err != nil {
		out.Error = err.Error()
	}
	return out, nil
}

func (s *Server) handleValidate(ctx context.Context, request mcp.CallToolRequest, args DescriptionArgs) (ValidateOutput, error) {
	desc, err := runner.SanitizeInput(args.Description)
	if err != nil {
		return ValidateOutput{}, fmt.Errorf("input rejected: %w", err)
	}

	m, issues := s.engine.Validate(ctx, desc)
	out := ValidateOutput{
		Transitions: len(m.Transitions),
		States:      m.States(),
		Diagnostics: make([]string, len(m.Diagnostics)),
		Issues:      issues,
	}
	for i, d := range m.Diagnostics {
		out.Diagnostics[i] = fmt.Sprintf("line %d: %s", d.Line, d.String())
	}
	if out.Issues == nil {
		out.Issues = []turing.Issue{}
	}
	return out, nil
}

func (s *Server) registerResources() {
	// EXPOSE: turing://examples
	s.mcpServer.AddResource(mcp.NewResource(ExamplesURI, "Example Turing machines",
		mcp.WithResourceDescription("Programs that run_example accepts, with their description and initial tape"),
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		programs, err := s.examples(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list examples: %w", err)
		}
		jsonBytes, err := json.Marshal(programs)
		if err != nil {
			return nil, err
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      ExamplesURI,
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}

func (s *Server) examples(ctx context.Context) ([]domain.Program, error) {
	programs := []domain.Program{}
	if s.library == nil {
		return programs, nil
	}
	ids, err := s.library.ListPrograms(ctx)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		p, err := s.library.GetProgram(ctx, id)
		if err != nil {
			return nil, err
		}
		programs = append(programs, *p)
	}
	return programs, nil
}
