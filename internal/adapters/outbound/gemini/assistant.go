// Package gemini adapts the Google Gen AI SDK to domain.Assistant.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/genai"
)

// Provider is the LLM_PROVIDER value served by this package.
const Provider = "gemini"

// ContentGenerator is the part of *genai.Models used by the adapter.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Assistant runs function-calling turns on Gemini.
type Assistant struct {
	models       ContentGenerator
	defaultModel string
}

// NewAssistant creates a new Assistant.
func NewAssistant(models ContentGenerator, defaultModel string) Assistant {
	return Assistant{models: models, defaultModel: defaultModel}
}

// RunTurn implements domain.Assistant.
func (a Assistant) RunTurn(ctx context.Context, req domain.AssistantTurnRequest) (domain.AssistantTurnResponse, error) {
	model := req.Model
	if model == "" {
		model = a.defaultModel
	}

	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("llm.model", model),
		attribute.String("llm.tool_mode", string(req.ToolMode)),
	))
	defer span.End()

	resp, err := a.models.GenerateContent(spanCtx, model, toContents(req.Messages), toConfig(req))
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.AssistantTurnResponse{}, err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		err := errors.New("no candidates in response")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.AssistantTurnResponse{}, err
	}

	var res domain.AssistantTurnResponse
	for _, part := range resp.Candidates[0].Content.Parts {
		switch {
		case part.FunctionCall != nil:
			args := part.FunctionCall.Args
			if args == nil {
				args = map[string]any{}
			}
			res.ToolCalls = append(res.ToolCalls, domain.ToolCallRequest{
				ID:        callID(part.FunctionCall, len(res.ToolCalls)),
				Name:      part.FunctionCall.Name,
				Arguments: args,
			})
		case part.Text != "" && !part.Thought:
			res.Content += part.Text
		}
	}
	if u := resp.UsageMetadata; u != nil {
		res.Usage = domain.AssistantUsage{
			PromptTokens:     int(u.PromptTokenCount),
			CompletionTokens: int(u.CandidatesTokenCount),
			TotalTokens:      int(u.TotalTokenCount),
		}
	}
	return res, nil
}

// callID returns the id Gemini assigned to the call, or a positional one.
func callID(fc *genai.FunctionCall, index int) string {
	if fc.ID != "" {
		return fc.ID
	}
	return fmt.Sprintf("%s-%d", fc.Name, index)
}

func toConfig(req domain.AssistantTurnRequest) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{}
	if req.SystemInstruction != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.SystemInstruction, genai.RoleUser)
	}
	if req.Temperature != nil {
		t := float32(*req.Temperature)
		cfg.Temperature = &t
	}
	if req.MaxTokens != nil {
		cfg.MaxOutputTokens = int32(*req.MaxTokens)
	}
	if req.ToolMode == domain.ToolMode_None || len(req.Tools) == 0 {
		return cfg
	}

	decls := make([]*genai.FunctionDeclaration, 0, len(req.Tools))
	for _, tool := range req.Tools {
		decls = append(decls, &genai.FunctionDeclaration{
			Name:        tool.Name,
			Description: tool.Description,
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: toSchemas(tool.Parameters),
				Required:   tool.RequiredFields,
			},
		})
	}
	cfg.Tools = []*genai.Tool{{FunctionDeclarations: decls}}

	mode := genai.FunctionCallingConfigModeAuto
	if req.ToolMode == domain.ToolMode_Any {
		mode = genai.FunctionCallingConfigModeAny
	}
	cfg.ToolConfig = &genai.ToolConfig{
		FunctionCallingConfig: &genai.FunctionCallingConfig{Mode: mode},
	}
	return cfg
}

func toSchemas(params map[string]domain.ToolParameter) map[string]*genai.Schema {
	schemas := make(map[string]*genai.Schema, len(params))
	for name, p := range params {
		s := &genai.Schema{
			Type:        toSchemaType(p.Type),
			Description: p.Description,
			Enum:        p.Enum,
		}
		if len(p.Properties) > 0 {
			s.Properties = toSchemas(p.Properties)
		}
		schemas[name] = s
	}
	return schemas
}

func toSchemaType(t string) genai.Type {
	switch t {
	case "integer":
		return genai.TypeInteger
	case "number":
		return genai.TypeNumber
	case "boolean":
		return genai.TypeBoolean
	case "object":
		return genai.TypeObject
	case "array":
		return genai.TypeArray
	default:
		return genai.TypeString
	}
}

// toContents maps the transcript to Gemini contents. Consecutive tool
// messages are sent as a single user turn of function responses.
func toContents(messages []domain.AssistantMessage) []*genai.Content {
	contents := make([]*genai.Content, 0, len(messages))
	for _, msg := range messages {
		switch msg.Role {
		case domain.ChatRole_Tool:
			part := &genai.Part{FunctionResponse: &genai.FunctionResponse{
				Name:     msg.ToolName,
				Response: map[string]any{"output": msg.Content},
			}}
			if msg.ToolCallID != nil {
				part.FunctionResponse.ID = *msg.ToolCallID
			}
			if n := len(contents); n > 0 && isFunctionResponse(contents[n-1]) {
				contents[n-1].Parts = append(contents[n-1].Parts, part)
				continue
			}
			contents = append(contents, &genai.Content{Role: genai.RoleUser, Parts: []*genai.Part{part}})
		case domain.ChatRole_Assistant:
			content := &genai.Content{Role: genai.RoleModel}
			if msg.Content != "" {
				content.Parts = append(content.Parts, genai.NewPartFromText(msg.Content))
			}
			for _, call := range msg.ToolCalls {
				content.Parts = append(content.Parts, &genai.Part{FunctionCall: &genai.FunctionCall{
					ID:   call.ID,
					Name: call.Name,
					Args: call.Arguments,
				}})
			}
			if len(content.Parts) > 0 {
				contents = append(contents, content)
			}
		default:
			contents = append(contents, genai.NewContentFromText(msg.Content, genai.RoleUser))
		}
	}
	return contents
}

func isFunctionResponse(c *genai.Content) bool {
	return c.Role == genai.RoleUser && len(c.Parts) > 0 && c.Parts[0].FunctionResponse != nil
}

// InitAssistant registers Gemini as the domain.Assistant when LLM_PROVIDER
// selects it.
type InitAssistant struct {
	HttpClient *http.Client `resolve:""`
	Provider   string       `config:"LLM_PROVIDER" default:"modelrunner"`
	APIKey     string       `config:"GEMINI_API_KEY" default:"-"`
	Model      string       `config:"GEMINI_MODEL" default:"gemini-1.5-flash"`
}

// Initialize creates the Gen AI client and registers the Assistant.
func (i InitAssistant) Initialize(ctx context.Context) (context.Context, error) {
	if i.Provider != Provider {
		return ctx, nil
	}
	if i.APIKey == "" || i.APIKey == "-" {
		return ctx, errors.New("GEMINI_API_KEY is required when LLM_PROVIDER is gemini")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     i.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: i.HttpClient,
	})
	if err != nil {
		return ctx, fmt.Errorf("failed to create gemini client: %w", err)
	}
	depend.Register[domain.Assistant](NewAssistant(client.Models, i.Model))
	return ctx, nil
}
