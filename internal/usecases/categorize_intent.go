package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// CategorizeIntent classifies a prompt without touching any session.
type CategorizeIntent interface {
	Execute(ctx context.Context, prompt, model string) (domain.Intent, error)
}

// CategorizeIntentImpl is the implementation of CategorizeIntent.
type CategorizeIntentImpl struct {
	assistant domain.Assistant
	template  []promptMessage
	timeout   time.Duration
}

// NewCategorizeIntentImpl creates a new instance of CategorizeIntentImpl.
func NewCategorizeIntentImpl(assistant domain.Assistant, timeout time.Duration) (CategorizeIntentImpl, error) {
	template, err := loadPrompt("intent.yml")
	if err != nil {
		return CategorizeIntentImpl{}, err
	}
	return CategorizeIntentImpl{
		assistant: assistant,
		template:  template,
		timeout:   timeout,
	}, nil
}

// Execute runs one model turn with tools disabled and maps the label to an
// Intent. Unknown labels become domain.Intent_Chat.
func (c CategorizeIntentImpl) Execute(ctx context.Context, prompt, model string) (domain.Intent, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if strings.TrimSpace(prompt) == "" {
		err := domain.NewValidationErr("prompt cannot be empty")
		telemetry.RecordErrorAndStatus(span, err)
		return "", err
	}

	req := domain.AssistantTurnRequest{
		Model:    model,
		ToolMode: domain.ToolMode_None,
	}
	for _, msg := range c.template {
		content := msg.Content
		if msg.Role == domain.ChatRole_User {
			content = fmt.Sprintf(content, prompt)
		}
		if msg.Role == domain.ChatRole_System {
			req.SystemInstruction = content
			continue
		}
		req.Messages = append(req.Messages, domain.AssistantMessage{Role: msg.Role, Content: content})
	}

	turnCtx := spanCtx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		turnCtx, cancel = context.WithTimeout(spanCtx, c.timeout)
		defer cancel()
	}
	resp, err := c.assistant.RunTurn(turnCtx, req)
	if err != nil {
		err = toUpstreamErr(upstreamModel, err)
		telemetry.RecordErrorAndStatus(span, err)
		return "", err
	}
	RecordLLMTokensUsed(spanCtx, resp.Usage.PromptTokens, resp.Usage.CompletionTokens)

	label := strings.Trim(strings.ToLower(strings.TrimSpace(resp.Content)), ".\"'`")
	return domain.ParseIntent(label), nil
}

// InitCategorizeIntent initializes the CategorizeIntent use case.
type InitCategorizeIntent struct {
	Assistant domain.Assistant `resolve:""`
	Timeout   time.Duration    `config:"LLM_TIMEOUT" default:"60s"`
}

// Initialize registers the CategorizeIntent use case in the dependency container.
func (i InitCategorizeIntent) Initialize(ctx context.Context) (context.Context, error) {
	uc, err := NewCategorizeIntentImpl(i.Assistant, i.Timeout)
	if err != nil {
		return ctx, err
	}
	depend.Register[CategorizeIntent](uc)
	return ctx, nil
}
