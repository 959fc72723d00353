package assistant

import (
	"context"
	"fmt"

	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/assistant/actions"
	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

const defaultBatchConcurrency = 8

// ToolDispatcher routes validated tool calls to one handler per tool kind.
type ToolDispatcher struct {
	registry    ToolRegistry
	finder      domain.ToolHandler
	deleter     domain.ToolHandler
	creator     domain.ToolHandler
	answerer    domain.ToolHandler
	concurrency int
}

// NewToolDispatcher creates a dispatcher over the four tool handlers. The
// registry is built from the handlers' declarations.
func NewToolDispatcher(concurrency int, finder, deleter, creator, answerer domain.ToolHandler) (ToolDispatcher, error) {
	registry, err := NewToolRegistry(
		finder.Declaration(),
		deleter.Declaration(),
		creator.Declaration(),
		answerer.Declaration(),
	)
	if err != nil {
		return ToolDispatcher{}, err
	}
	if concurrency <= 0 {
		concurrency = defaultBatchConcurrency
	}
	return ToolDispatcher{
		registry:    registry,
		finder:      finder,
		deleter:     deleter,
		creator:     creator,
		answerer:    answerer,
		concurrency: concurrency,
	}, nil
}

// Declarations returns the registered tools in canonical order.
func (d ToolDispatcher) Declarations() []domain.ToolDeclaration {
	return d.registry.Declarations()
}

// Dispatch validates and executes a single call.
func (d ToolDispatcher) Dispatch(ctx context.Context, userID string, call domain.ToolCallRequest) (domain.ToolResult, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		telemetry.ToolName(call.Name),
	))
	defer span.End()

	handler, err := d.resolve(call)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.ToolResult{}, err
	}

	result, err := handler.Execute(spanCtx, userID, call)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.ToolResult{}, err
	}
	return result, nil
}

// DispatchBatch validates every call first so that a bad call never lets
// its siblings reach the task store. Valid batches run concurrently and any
// failure fails the whole batch with a *domain.ToolExecutionErr.
func (d ToolDispatcher) DispatchBatch(ctx context.Context, userID string, calls []domain.ToolCallRequest) ([]domain.ToolResult, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("tool.batch_size", len(calls)),
	))
	defer span.End()

	handlers := make([]domain.ToolHandler, len(calls))
	for i, call := range calls {
		h, err := d.resolve(call)
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		if checker, ok := h.(domain.ToolArgumentsChecker); ok {
			if err := checker.CheckArguments(userID, call); telemetry.RecordErrorAndStatus(span, err) {
				return nil, err
			}
		}
		handlers[i] = h
	}

	results := make([]domain.ToolResult, len(calls))
	g, gCtx := errgroup.WithContext(spanCtx)
	g.SetLimit(d.concurrency)
	for i, call := range calls {
		g.Go(func() error {
			res, err := handlers[i].Execute(gCtx, userID, call)
			if err != nil {
				return domain.NewToolExecutionErr(call.Name, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return results, nil
}

func (d ToolDispatcher) resolve(call domain.ToolCallRequest) (domain.ToolHandler, error) {
	decl, err := d.registry.Validate(call)
	if err != nil {
		return nil, err
	}
	handler, ok := d.handler(decl.Kind)
	if !ok {
		return nil, domain.NewUnknownToolErr(call.Name)
	}
	return handler, nil
}

func (d ToolDispatcher) handler(kind domain.ToolKind) (domain.ToolHandler, bool) {
	switch kind {
	case domain.ToolKind_FindAllTasksByUserID:
		return d.finder, true
	case domain.ToolKind_DeleteTaskByID:
		return d.deleter, true
	case domain.ToolKind_CreateTask:
		return d.creator, true
	case domain.ToolKind_AnswerUserQuestion:
		return d.answerer, true
	case domain.ToolKind_Unrecognized:
		return nil, false
	}
	return nil, false
}

// InitToolDispatcher registers the tool dispatcher in the dependency container.
type InitToolDispatcher struct {
	TaskStore    domain.TaskStore           `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
	Concurrency  int                        `config:"TOOL_BATCH_CONCURRENCY" default:"8"`
}

// Initialize builds the tool handlers and registers the dispatcher.
func (i InitToolDispatcher) Initialize(ctx context.Context) (context.Context, error) {
	dispatcher, err := NewToolDispatcher(
		i.Concurrency,
		actions.NewTaskFinderAction(i.TaskStore),
		actions.NewTaskDeleterAction(i.TaskStore),
		actions.NewTaskCreatorAction(i.TaskStore, i.TimeProvider),
		actions.NewQuestionAnswererAction(),
	)
	if err != nil {
		return ctx, fmt.Errorf("failed to build tool dispatcher: %w", err)
	}
	depend.Register[domain.ToolDispatcher](dispatcher)
	return ctx, nil
}
