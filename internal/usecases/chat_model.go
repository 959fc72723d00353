package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const upstreamModel = "model"

// ChatModel wraps the assistant backend with the session protocol: a
// session is seeded once, then every turn submits the whole transcript.
type ChatModel interface {
	// StartSession builds a new session whose opening turns carry the
	// knowledge base, the seed time and the user id.
	StartSession(userID string, seedTasks []domain.Task, seedTime time.Time) (domain.ChatSession, error)
	// Send appends text as a user turn and submits the transcript.
	Send(ctx context.Context, session *domain.ChatSession, model, text string) (domain.AssistantTurnResponse, error)
	// Submit submits the transcript as is. It is used after tool results
	// have been appended.
	Submit(ctx context.Context, session *domain.ChatSession, model string) (domain.AssistantTurnResponse, error)
}

// ChatModelImpl is the implementation of ChatModel.
type ChatModelImpl struct {
	assistant    domain.Assistant
	tools        []domain.ToolDeclaration
	prompt       agentPrompt
	timeout      time.Duration
	timeProvider domain.CurrentTimeProvider
}

// NewChatModelImpl creates a new instance of ChatModelImpl.
func NewChatModelImpl(
	assistant domain.Assistant,
	tools []domain.ToolDeclaration,
	timeout time.Duration,
	timeProvider domain.CurrentTimeProvider,
) (ChatModelImpl, error) {
	prompt, err := loadAgentPrompt()
	if err != nil {
		return ChatModelImpl{}, err
	}
	return ChatModelImpl{
		assistant:    assistant,
		tools:        tools,
		prompt:       prompt,
		timeout:      timeout,
		timeProvider: timeProvider,
	}, nil
}

// StartSession builds a new session seeded with the knowledge base.
func (m ChatModelImpl) StartSession(userID string, seedTasks []domain.Task, seedTime time.Time) (domain.ChatSession, error) {
	seed, err := m.prompt.seedMessages(userID, seedTasks, seedTime)
	if err != nil {
		return domain.ChatSession{}, err
	}
	return domain.ChatSession{
		UserID:     userID,
		Transcript: seed,
		CreatedAt:  seedTime,
		UpdatedAt:  seedTime,
	}, nil
}

// Send appends text as a user turn and submits the transcript.
func (m ChatModelImpl) Send(ctx context.Context, session *domain.ChatSession, model, text string) (domain.AssistantTurnResponse, error) {
	session.Append(domain.AssistantMessage{Role: domain.ChatRole_User, Content: text})
	return m.Submit(ctx, session, model)
}

// Submit submits the transcript and appends the model reply to it. An
// empty model selects the backend default.
func (m ChatModelImpl) Submit(ctx context.Context, session *domain.ChatSession, model string) (domain.AssistantTurnResponse, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("llm.model", model),
		attribute.Int("llm.transcript_size", len(session.Transcript)),
	))
	defer span.End()

	turnCtx := spanCtx
	if m.timeout > 0 {
		var cancel context.CancelFunc
		turnCtx, cancel = context.WithTimeout(spanCtx, m.timeout)
		defer cancel()
	}

	resp, err := m.assistant.RunTurn(turnCtx, domain.AssistantTurnRequest{
		Model:             model,
		SystemInstruction: m.prompt.systemInstruction,
		Messages:          session.Transcript,
		Tools:             m.tools,
		ToolMode:          domain.ToolMode_Any,
	})
	if err != nil {
		err = toUpstreamErr(upstreamModel, err)
		telemetry.RecordErrorAndStatus(span, err)
		return domain.AssistantTurnResponse{}, err
	}
	RecordLLMTokensUsed(spanCtx, resp.Usage.PromptTokens, resp.Usage.CompletionTokens)

	session.Append(domain.AssistantMessage{
		Role:      domain.ChatRole_Assistant,
		Content:   resp.Content,
		ToolCalls: resp.ToolCalls,
	})
	session.UpdatedAt = m.timeProvider.Now()

	telemetry.RecordErrorAndStatus(span, nil)
	return resp, nil
}

// toUpstreamErr converts a collaborator failure into an UpstreamErr unless
// it already carries a domain meaning.
func toUpstreamErr(upstream string, err error) error {
	var (
		upstreamErr   *domain.UpstreamErr
		validationErr *domain.ValidationErr
		notFoundErr   *domain.NotFoundErr
	)
	switch {
	case errors.As(err, &upstreamErr), errors.As(err, &validationErr), errors.As(err, &notFoundErr):
		return err
	case errors.Is(err, context.DeadlineExceeded):
		return domain.NewUpstreamErr(upstream, fmt.Errorf("deadline exceeded: %w", err))
	default:
		return domain.NewUpstreamErr(upstream, err)
	}
}

// InitChatModel initializes the ChatModel.
type InitChatModel struct {
	Assistant    domain.Assistant           `resolve:""`
	Dispatcher   domain.ToolDispatcher      `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
	Timeout      time.Duration              `config:"LLM_TIMEOUT" default:"60s"`
}

// Initialize registers the ChatModel in the dependency container.
func (i InitChatModel) Initialize(ctx context.Context) (context.Context, error) {
	model, err := NewChatModelImpl(i.Assistant, i.Dispatcher.Declarations(), i.Timeout, i.TimeProvider)
	if err != nil {
		return ctx, err
	}
	depend.Register[ChatModel](model)
	return ctx, nil
}
