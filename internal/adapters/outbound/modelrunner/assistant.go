package modelrunner

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Provider is the LLM_PROVIDER value served by this package.
const Provider = "modelrunner"

// Assistant adapts ChatClient to domain.Assistant.
type Assistant struct {
	client       ChatClient
	defaultModel string
}

// NewAssistant creates a new adapter. defaultModel is used when a turn does
// not name a model.
func NewAssistant(client ChatClient, defaultModel string) Assistant {
	return Assistant{client: client, defaultModel: defaultModel}
}

// RunTurn implements domain.Assistant.
func (a Assistant) RunTurn(ctx context.Context, req domain.AssistantTurnRequest) (domain.AssistantTurnResponse, error) {
	adapterReq := toChatRequest(req, a.defaultModel)

	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("llm.model", adapterReq.Model),
		attribute.String("llm.tool_choice", adapterReq.ToolChoice),
	))
	defer span.End()

	resp, err := a.client.Chat(spanCtx, adapterReq)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.AssistantTurnResponse{}, err
	}
	if len(resp.Choices) == 0 {
		err := errors.New("no choices in response")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.AssistantTurnResponse{}, err
	}

	msg := resp.Choices[0].Message
	res := domain.AssistantTurnResponse{
		Content: msg.Content,
		Usage:   toUsage(resp),
	}
	for _, tc := range msg.ToolCalls {
		res.ToolCalls = append(res.ToolCalls, toToolCallRequest(tc))
	}
	return res, nil
}

func toUsage(resp *ChatResponse) domain.AssistantUsage {
	switch {
	case resp.Usage != nil:
		return domain.AssistantUsage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		}
	case resp.Timings != nil:
		// llama.cpp reports token counts as timings only
		return domain.AssistantUsage{
			PromptTokens:     resp.Timings.PromptN,
			CompletionTokens: resp.Timings.PredictedN,
			TotalTokens:      resp.Timings.PromptN + resp.Timings.PredictedN,
		}
	default:
		return domain.AssistantUsage{}
	}
}

// toToolCallRequest decodes the JSON arguments of a call. Arguments that are
// not a JSON object are kept raw so the registry can reject them.
func toToolCallRequest(tc ToolCall) domain.ToolCallRequest {
	call := domain.ToolCallRequest{ID: tc.ID, Name: tc.Function.Name}
	if tc.Function.Arguments == "" {
		call.Arguments = map[string]any{}
		return call
	}
	var args map[string]any
	if err := json.Unmarshal([]byte(tc.Function.Arguments), &args); err != nil || args == nil {
		call.RawArguments = tc.Function.Arguments
		return call
	}
	call.Arguments = args
	return call
}

func toToolChoice(mode domain.ToolMode) string {
	switch mode {
	case domain.ToolMode_Any:
		return "required"
	case domain.ToolMode_None:
		return "none"
	default:
		return "auto"
	}
}

func toChatRequest(req domain.AssistantTurnRequest, defaultModel string) ChatRequest {
	model := req.Model
	if model == "" {
		model = defaultModel
	}
	adapterReq := ChatRequest{
		Model:       model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Messages:    make([]ChatMessage, 0, len(req.Messages)+1),
	}

	if req.SystemInstruction != "" {
		adapterReq.Messages = append(adapterReq.Messages, ChatMessage{
			Role:    string(domain.ChatRole_System),
			Content: req.SystemInstruction,
		})
	}

	for _, msg := range req.Messages {
		adpMsg := ChatMessage{
			Role:       string(msg.Role),
			ToolCallID: msg.ToolCallID,
			Content:    msg.Content,
		}
		if msg.Role == domain.ChatRole_Tool {
			adpMsg.Name = msg.ToolName
		}
		for _, call := range msg.ToolCalls {
			adpMsg.ToolCalls = append(adpMsg.ToolCalls, ToolCall{
				ID:   call.ID,
				Type: "function",
				Function: ToolCallFunction{
					Name:      call.Name,
					Arguments: encodeArguments(call),
				},
			})
		}
		adapterReq.Messages = append(adapterReq.Messages, adpMsg)
	}

	if req.ToolMode == domain.ToolMode_None || len(req.Tools) == 0 {
		return adapterReq
	}

	adapterReq.ToolChoice = toToolChoice(req.ToolMode)
	adapterReq.Tools = make([]Tool, len(req.Tools))
	for i, decl := range req.Tools {
		required := decl.RequiredFields
		if required == nil {
			required = []string{}
		}
		adapterReq.Tools[i] = Tool{
			Type: "function",
			Function: ToolFunc{
				Description: decl.Description,
				Name:        decl.Name,
				Parameters: ToolFuncParameters{
					Type:       "object",
					Properties: toParameterDetails(decl.Parameters),
					Required:   required,
				},
			},
		}
	}
	return adapterReq
}

func toParameterDetails(params map[string]domain.ToolParameter) map[string]ToolFuncParameterDetail {
	details := make(map[string]ToolFuncParameterDetail, len(params))
	for name, p := range params {
		d := ToolFuncParameterDetail{
			Type:        p.Type,
			Description: p.Description,
			Enum:        p.Enum,
		}
		if len(p.Properties) > 0 {
			d.Properties = toParameterDetails(p.Properties)
		}
		details[name] = d
	}
	return details
}

func encodeArguments(call domain.ToolCallRequest) string {
	if call.RawArguments != "" {
		return call.RawArguments
	}
	if call.Arguments == nil {
		return "{}"
	}
	b, err := json.Marshal(call.Arguments)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// InitAssistant registers the model runner as the domain.Assistant when
// LLM_PROVIDER selects it.
type InitAssistant struct {
	HttpClient *http.Client `resolve:""`
	Provider   string       `config:"LLM_PROVIDER" default:"modelrunner"`
	ModelHost  string       `config:"LLM_MODEL_HOST" default:"http://localhost:12434"`
	APIKey     string       `config:"LLM_API_KEY" default:"-"`
	Model      string       `config:"LLM_MODEL" default:"ai/gpt-oss"`
}

// Initialize registers the Assistant.
func (i InitAssistant) Initialize(ctx context.Context) (context.Context, error) {
	if i.Provider != Provider {
		return ctx, nil
	}
	apiKey := i.APIKey
	if apiKey == "-" {
		apiKey = ""
	}
	depend.Register[domain.Assistant](NewAssistant(NewChatClient(i.ModelHost, apiKey, i.HttpClient), i.Model))
	return ctx, nil
}
