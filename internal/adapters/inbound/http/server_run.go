package http

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/telemetry"
	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/usecases"
	"github.com/rs/cors"
)

const operationName = "taskagent-api"

// TaskAgentServer exposes the agent over REST and MCP.
type TaskAgentServer struct {
	Port                    int                       `config:"HTTP_PORT" default:"8080"`
	Logger                  *log.Logger               `resolve:""`
	ProcessPromptUseCase    usecases.ProcessPrompt    `resolve:""`
	CategorizeIntentUseCase usecases.CategorizeIntent `resolve:""`
	ResetSessionUseCase     usecases.ResetSession     `resolve:""`
	AdvancePomodoroUseCase  usecases.AdvancePomodoro  `resolve:""`
	Dispatcher              domain.ToolDispatcher     `resolve:""`
}

// Handler builds the routed, instrumented handler of the server.
func (api TaskAgentServer) Handler() http.Handler {
	mux := http.NewServeMux()

	route := func(pattern string, h http.HandlerFunc) {
		mux.Handle(pattern, telemetry.Middleware(operationName)(h))
	}

	route("POST /api/v1/agent/prompt", api.PostPrompt)
	route("POST /api/v1/agent/intent", api.PostIntent)
	route("GET /api/v1/agent/tools", api.ListTools)
	route("DELETE /api/v1/agent/sessions/{userId}", api.DeleteSession)
	route("POST /api/v1/tasks/{taskId}/pomodoro", api.PostPomodoro)
	mux.Handle("/mcp", telemetry.Middleware(operationName)(api.mcpHandler()))

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// Register introspection endpoint for debugging and testing purposes
	mux.HandleFunc("GET /introspect", IntrospectHandler)

	// Apply CORS at the top-level so preflight requests hit it, too.
	return cors.AllowAll().Handler(mux)
}

// Run starts the HTTP server for the TaskAgentServer.
func (api TaskAgentServer) Run(ctx context.Context) error {
	s := &http.Server{
		Handler:           api.Handler(),
		Addr:              fmt.Sprintf(":%d", api.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		api.Logger.Printf("TaskAgentServer: Listening on port %d", api.Port)
		errCh <- s.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.Shutdown(shutdownCtx)
		if err != nil {
			api.Logger.Printf("TaskAgentServer: error during shutdown: %v", err)
		} else {
			api.Logger.Println("TaskAgentServer: stopped")
		}
		return err
	case err := <-errCh:
		return err
	}
}

// IsReady checks if the TaskAgentServer is ready by performing a health check.
func (api TaskAgentServer) IsReady(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("http://localhost:%d/healthz", api.Port), nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}
