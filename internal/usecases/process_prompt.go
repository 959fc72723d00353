package usecases

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/common"
	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/toon-format/toon-go"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	NoResponseText     = "No response from the model."
	DeleteFailedText   = "An error occurred while deleting tasks."
	CreateFailedText   = "An error occurred while creating tasks."
	deletedReplyFormat = "I deleted %d tasks"
	createdReplyFormat = "I have created %d tasks"
	deletedNoteFormat  = "You have deleted %d tasks"
	createdNotePrefix  = "This is my new added tasks: "
)

// Prompt outcomes reported to agent_prompts_total.
const (
	outcomeRejected   = "rejected"
	outcomeAnswered   = "answered"
	outcomeDeleted    = "deleted"
	outcomeCreated    = "created"
	outcomeDegraded   = "degraded"
	outcomeNoResponse = "no_response"
	outcomeFailed     = "failed"
)

// ProcessPrompt turns a user prompt into an answer, running the tool calls
// the model asks for.
type ProcessPrompt interface {
	Execute(ctx context.Context, req domain.PromptRequest) (domain.OrchestrationResult, error)
}

// ProcessPromptImpl is the implementation of ProcessPrompt.
type ProcessPromptImpl struct {
	cache           TaskCache
	sessions        SessionStore
	model           ChatModel
	dispatcher      domain.ToolDispatcher
	timeProvider    domain.CurrentTimeProvider
	locks           *common.KeyedMutex
	privilegedRole  string
	maxLookupRounds int
	storeTimeout    time.Duration
	logger          *log.Logger
}

// NewProcessPromptImpl creates a new instance of ProcessPromptImpl.
func NewProcessPromptImpl(
	cache TaskCache,
	sessions SessionStore,
	model ChatModel,
	dispatcher domain.ToolDispatcher,
	timeProvider domain.CurrentTimeProvider,
	locks *common.KeyedMutex,
	privilegedRole string,
	maxLookupRounds int,
	storeTimeout time.Duration,
	logger *log.Logger,
) ProcessPromptImpl {
	return ProcessPromptImpl{
		cache:           cache,
		sessions:        sessions,
		model:           model,
		dispatcher:      dispatcher,
		timeProvider:    timeProvider,
		locks:           locks,
		privilegedRole:  privilegedRole,
		maxLookupRounds: maxLookupRounds,
		storeTimeout:    storeTimeout,
		logger:          logger,
	}
}

// turn is the working state of one Execute call. Nothing in it is visible
// to other requests until commit.
type turn struct {
	req     domain.PromptRequest
	session domain.ChatSession
}

// Execute processes the prompt on behalf of req.UserID. Requests of the same
// user are serialized.
func (p ProcessPromptImpl) Execute(ctx context.Context, req domain.PromptRequest) (domain.OrchestrationResult, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		telemetry.UserID(req.UserID),
	))
	defer span.End()

	if req.UserRole != p.privilegedRole {
		RecordPromptOutcome(spanCtx, outcomeRejected)
		err := domain.NewUnauthorizedErr(fmt.Sprintf("Please upgrade to %s to use this feature", p.privilegedRole))
		telemetry.RecordErrorAndStatus(span, err)
		return domain.OrchestrationResult{}, err
	}
	if strings.TrimSpace(req.UserID) == "" {
		return domain.OrchestrationResult{}, domain.NewValidationErr("userId cannot be empty")
	}
	if strings.TrimSpace(req.Prompt) == "" {
		return domain.OrchestrationResult{}, domain.NewValidationErr("prompt cannot be empty")
	}

	unlock := p.locks.Lock(req.UserID)
	defer unlock()

	result, outcome, err := p.execute(spanCtx, req)
	if telemetry.RecordErrorAndStatus(span, err) {
		RecordPromptOutcome(spanCtx, outcomeFailed)
		return domain.OrchestrationResult{}, err
	}
	RecordPromptOutcome(spanCtx, outcome)
	span.SetAttributes(attribute.String("agent.outcome", outcome))
	return result, nil
}

func (p ProcessPromptImpl) execute(ctx context.Context, req domain.PromptRequest) (domain.OrchestrationResult, string, error) {
	snapshot, err := p.cache.Get(ctx, req.UserID)
	if err != nil {
		return domain.OrchestrationResult{}, "", err
	}

	stored, _, err := p.sessions.GetOrCreate(ctx, req.UserID, snapshot.Tasks, p.timeProvider.Now())
	if err != nil {
		return domain.OrchestrationResult{}, "", err
	}
	t := &turn{req: req, session: stored.Clone()}

	resp, err := p.model.Send(ctx, &t.session, req.PreferredModel, req.Prompt)
	if err != nil {
		return domain.OrchestrationResult{}, "", err
	}

	for round := 0; ; round++ {
		if !resp.HasToolCalls() {
			text := strings.TrimSpace(resp.Content)
			if text == "" {
				return p.commit(ctx, t, NoResponseText, outcomeNoResponse)
			}
			return p.commit(ctx, t, text, outcomeAnswered)
		}

		kind, err := batchKind(resp.ToolCalls)
		if err != nil {
			return domain.OrchestrationResult{}, "", err
		}

		switch kind {
		case domain.ToolKind_FindAllTasksByUserID:
			if round >= p.maxLookupRounds {
				p.logger.Printf("ProcessPrompt: lookup rounds exhausted for user %s", req.UserID)
				return domain.OrchestrationResult{ResponseText: NoResponseText}, outcomeNoResponse, nil
			}
			if err := p.lookup(ctx, t, resp.ToolCalls); err != nil {
				return domain.OrchestrationResult{}, "", err
			}
			resp, err = p.model.Submit(ctx, &t.session, req.PreferredModel)
			if err != nil {
				return domain.OrchestrationResult{}, "", err
			}
		case domain.ToolKind_DeleteTaskByID:
			return p.deleteTasks(ctx, t, resp.ToolCalls)
		case domain.ToolKind_CreateTask:
			return p.createTasks(ctx, t, resp.ToolCalls)
		case domain.ToolKind_AnswerUserQuestion:
			return p.answer(ctx, t, resp.ToolCalls)
		case domain.ToolKind_Unrecognized:
			return domain.OrchestrationResult{}, "", domain.NewUnexpectedFunctionCallErr("Unexpected function call: " + resp.ToolCalls[0].Name)
		}
	}
}

// batchKind returns the kind shared by every call of the batch. The first
// call decides; a batch mixing names is rejected.
func batchKind(calls []domain.ToolCallRequest) (domain.ToolKind, error) {
	first := calls[0].Name
	kind := domain.ParseToolKind(first)
	if kind == domain.ToolKind_Unrecognized {
		return kind, domain.NewUnexpectedFunctionCallErr("Unexpected function call: " + first)
	}
	for _, call := range calls[1:] {
		if call.Name != first {
			return domain.ToolKind_Unrecognized, domain.NewUnexpectedFunctionCallErr(
				fmt.Sprintf("Unexpected function call: %s in a batch of %s", call.Name, first),
			)
		}
	}
	return kind, nil
}

func (p ProcessPromptImpl) dispatch(ctx context.Context, t *turn, calls []domain.ToolCallRequest) ([]domain.ToolResult, error) {
	tool := calls[0].Name
	dispatchCtx := ctx
	if p.storeTimeout > 0 {
		var cancel context.CancelFunc
		dispatchCtx, cancel = context.WithTimeout(ctx, p.storeTimeout)
		defer cancel()
	}
	results, err := p.dispatcher.DispatchBatch(dispatchCtx, t.req.UserID, calls)
	if err != nil {
		RecordToolCalls(ctx, tool, "error", len(calls))
		if isSchemaErr(err) {
			return nil, err
		}
		return nil, toUpstreamErr(upstreamTaskStore, err)
	}
	RecordToolCalls(ctx, tool, "success", len(calls))
	return results, nil
}

// isSchemaErr reports whether the batch was rejected before any call ran.
func isSchemaErr(err error) bool {
	var (
		executionErr   *domain.ToolExecutionErr
		unknownToolErr *domain.UnknownToolErr
		invalidArgsErr *domain.InvalidArgumentsErr
	)
	if errors.As(err, &executionErr) {
		return false
	}
	return errors.As(err, &unknownToolErr) || errors.As(err, &invalidArgsErr)
}

func (p ProcessPromptImpl) lookup(ctx context.Context, t *turn, calls []domain.ToolCallRequest) error {
	results, err := p.dispatch(ctx, t, calls)
	if err != nil {
		return err
	}
	return appendToolMessages(&t.session, calls, results)
}

func (p ProcessPromptImpl) deleteTasks(ctx context.Context, t *turn, calls []domain.ToolCallRequest) (domain.OrchestrationResult, string, error) {
	results, err := p.dispatch(ctx, t, calls)
	if err != nil {
		return p.degrade(ctx, t, err, DeleteFailedText)
	}

	deleted, taskIDs := 0, make([]string, 0, len(calls))
	for i, res := range results {
		deleted += res.DeletedCount
		if id, ok := calls[i].Arguments["taskId"].(string); ok {
			taskIDs = append(taskIDs, id)
		}
	}
	if err := appendToolMessages(&t.session, calls, results); err != nil {
		return domain.OrchestrationResult{}, "", err
	}
	t.session.Append(domain.AssistantMessage{
		Role:    domain.ChatRole_User,
		Content: fmt.Sprintf(deletedNoteFormat, deleted),
	})

	if err := p.cache.ApplyDeleted(ctx, t.req.UserID, taskIDs); err != nil {
		return domain.OrchestrationResult{}, "", err
	}
	return p.commit(ctx, t, fmt.Sprintf(deletedReplyFormat, deleted), outcomeDeleted)
}

func (p ProcessPromptImpl) createTasks(ctx context.Context, t *turn, calls []domain.ToolCallRequest) (domain.OrchestrationResult, string, error) {
	results, err := p.dispatch(ctx, t, calls)
	if err != nil {
		return p.degrade(ctx, t, err, CreateFailedText)
	}

	created := make([]domain.Task, 0, len(results))
	for _, res := range results {
		created = append(created, res.Tasks...)
	}
	if err := appendToolMessages(&t.session, calls, results); err != nil {
		return domain.OrchestrationResult{}, "", err
	}
	createdTOON, err := marshalTasks(created)
	if err != nil {
		return domain.OrchestrationResult{}, "", err
	}
	t.session.Append(domain.AssistantMessage{
		Role:    domain.ChatRole_User,
		Content: createdNotePrefix + createdTOON,
	})

	if err := p.cache.ApplyCreated(ctx, t.req.UserID, created); err != nil {
		return domain.OrchestrationResult{}, "", err
	}
	return p.commit(ctx, t, fmt.Sprintf(createdReplyFormat, len(created)), outcomeCreated)
}

func (p ProcessPromptImpl) answer(ctx context.Context, t *turn, calls []domain.ToolCallRequest) (domain.OrchestrationResult, string, error) {
	results, err := p.dispatch(ctx, t, calls)
	if err != nil {
		return domain.OrchestrationResult{}, "", err
	}
	if err := appendToolMessages(&t.session, calls, results); err != nil {
		return domain.OrchestrationResult{}, "", err
	}
	return p.commit(ctx, t, results[0].Text, outcomeAnswered)
}

// degrade reports a failed mutating batch as text. Schema errors are
// returned as they are. Once execution started some calls may have been
// committed, so the snapshot is dropped and the session is not written back.
func (p ProcessPromptImpl) degrade(ctx context.Context, t *turn, err error, text string) (domain.OrchestrationResult, string, error) {
	if isSchemaErr(err) {
		return domain.OrchestrationResult{}, "", err
	}
	p.logger.Printf("ProcessPrompt: tool batch failed for user %s: %v", t.req.UserID, err)
	if invErr := p.cache.Invalidate(ctx, t.req.UserID); invErr != nil {
		p.logger.Printf("ProcessPrompt: failed to invalidate tasks of user %s: %v", t.req.UserID, invErr)
	}
	return domain.OrchestrationResult{ResponseText: text}, outcomeDegraded, nil
}

// commit writes the session back and builds the result.
func (p ProcessPromptImpl) commit(ctx context.Context, t *turn, text, outcome string) (domain.OrchestrationResult, string, error) {
	if err := p.sessions.Save(ctx, t.session); err != nil {
		return domain.OrchestrationResult{}, "", err
	}
	return domain.OrchestrationResult{ResponseText: text}, outcome, nil
}

type deleteOutcome struct {
	TaskID  string `toon:"taskId"`
	Deleted int    `toon:"deleted"`
}

// appendToolMessages answers every call of the last assistant message.
func appendToolMessages(session *domain.ChatSession, calls []domain.ToolCallRequest, results []domain.ToolResult) error {
	for i, call := range calls {
		content, err := renderToolResult(call, results[i])
		if err != nil {
			return err
		}
		session.Append(domain.AssistantMessage{
			Role:       domain.ChatRole_Tool,
			Content:    content,
			ToolCallID: common.Ptr(call.ID),
			ToolName:   call.Name,
		})
	}
	return nil
}

func renderToolResult(call domain.ToolCallRequest, res domain.ToolResult) (string, error) {
	switch res.Kind {
	case domain.ToolKind_FindAllTasksByUserID, domain.ToolKind_CreateTask:
		return marshalTasks(res.Tasks)
	case domain.ToolKind_DeleteTaskByID:
		taskID, _ := call.Arguments["taskId"].(string)
		out, err := toon.MarshalString(deleteOutcome{TaskID: taskID, Deleted: res.DeletedCount})
		if err != nil {
			return "", fmt.Errorf("failed to marshal delete outcome: %w", err)
		}
		return out, nil
	case domain.ToolKind_AnswerUserQuestion:
		return res.Text, nil
	default:
		return "", domain.NewUnexpectedFunctionCallErr("Unexpected function call: " + call.Name)
	}
}

// InitProcessPrompt initializes the ProcessPrompt use case.
type InitProcessPrompt struct {
	Cache           TaskCache                  `resolve:""`
	Sessions        SessionStore               `resolve:""`
	Model           ChatModel                  `resolve:""`
	Dispatcher      domain.ToolDispatcher      `resolve:""`
	TimeProvider    domain.CurrentTimeProvider `resolve:""`
	Locks           *common.KeyedMutex         `resolve:""`
	Logger          *log.Logger                `resolve:""`
	PrivilegedRole  string                     `config:"AGENT_PRIVILEGED_ROLE" default:"premium"`
	MaxLookupRounds int                        `config:"AGENT_MAX_LOOKUP_ROUNDS" default:"2"`
	StoreTimeout    time.Duration              `config:"STORE_TIMEOUT" default:"10s"`
}

// Initialize registers the ProcessPrompt use case in the dependency container.
func (i InitProcessPrompt) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ProcessPrompt](NewProcessPromptImpl(
		i.Cache,
		i.Sessions,
		i.Model,
		i.Dispatcher,
		i.TimeProvider,
		i.Locks,
		i.PrivilegedRole,
		i.MaxLookupRounds,
		i.StoreTimeout,
		i.Logger,
	))
	return ctx, nil
}

// InitUserLocks registers the per-user lock set shared by the use cases that
// touch a user's session.
type InitUserLocks struct{}

// Initialize registers a KeyedMutex in the dependency container.
func (InitUserLocks) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register(common.NewKeyedMutex())
	return ctx, nil
}
