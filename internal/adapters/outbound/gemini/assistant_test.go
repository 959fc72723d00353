package gemini

import (
	"context"
	"testing"

	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/common"
	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type fakeGenerator struct {
	model    string
	contents []*genai.Content
	config   *genai.GenerateContentConfig
	resp     *genai.GenerateContentResponse
	err      error
}

func (f *fakeGenerator) GenerateContent(_ context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.model, f.contents, f.config = model, contents, config
	return f.resp, f.err
}

func TestAssistant_RunTurn(t *testing.T) {
	decl := domain.ToolDeclaration{
		Kind:        domain.ToolKind_DeleteTaskByID,
		Name:        domain.ToolName_DeleteTaskByID,
		Description: "Delete task id",
		Parameters: map[string]domain.ToolParameter{
			"taskId": {Type: "string", Description: "task id"},
		},
		RequiredFields: []string{"taskId"},
	}
	transcript := []domain.AssistantMessage{
		{Role: domain.ChatRole_User, Content: "delete t1 and t2"},
		{Role: domain.ChatRole_Assistant, ToolCalls: []domain.ToolCallRequest{
			{ID: "a", Name: domain.ToolName_DeleteTaskByID, Arguments: map[string]any{"taskId": "t1"}},
			{ID: "b", Name: domain.ToolName_DeleteTaskByID, Arguments: map[string]any{"taskId": "t2"}},
		}},
		{Role: domain.ChatRole_Tool, ToolCallID: common.Ptr("a"), ToolName: domain.ToolName_DeleteTaskByID, Content: "deleted: 1"},
		{Role: domain.ChatRole_Tool, ToolCallID: common.Ptr("b"), ToolName: domain.ToolName_DeleteTaskByID, Content: "deleted: 1"},
		{Role: domain.ChatRole_User, Content: "You have deleted 2 tasks"},
	}

	t.Run("function-calls", func(t *testing.T) {
		gen := &fakeGenerator{resp: &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{Content: &genai.Content{Role: genai.RoleModel, Parts: []*genai.Part{
				{FunctionCall: &genai.FunctionCall{Name: domain.ToolName_DeleteTaskByID, Args: map[string]any{"taskId": "t3"}}},
			}}}},
			UsageMetadata: &genai.GenerateContentResponseUsageMetadata{PromptTokenCount: 20, CandidatesTokenCount: 4, TotalTokenCount: 24},
		}}
		a := NewAssistant(gen, "gemini-1.5-flash")

		got, err := a.RunTurn(context.Background(), domain.AssistantTurnRequest{
			SystemInstruction: "You are an ai-agent",
			Messages:          transcript,
			Tools:             []domain.ToolDeclaration{decl},
			ToolMode:          domain.ToolMode_Any,
		})
		require.NoError(t, err)

		assert.Equal(t, "gemini-1.5-flash", gen.model)
		assert.Equal(t, []domain.ToolCallRequest{{
			ID: "deleteTaskById-0", Name: domain.ToolName_DeleteTaskByID, Arguments: map[string]any{"taskId": "t3"},
		}}, got.ToolCalls)
		assert.Equal(t, domain.AssistantUsage{PromptTokens: 20, CompletionTokens: 4, TotalTokens: 24}, got.Usage)

		// user, model, merged function responses, user
		require.Len(t, gen.contents, 4)
		assert.Equal(t, genai.RoleModel, gen.contents[1].Role)
		assert.Len(t, gen.contents[1].Parts, 2)
		require.Len(t, gen.contents[2].Parts, 2)
		assert.Equal(t, "b", gen.contents[2].Parts[1].FunctionResponse.ID)
		assert.Equal(t, "You have deleted 2 tasks", gen.contents[3].Parts[0].Text)

		require.NotNil(t, gen.config.ToolConfig)
		assert.Equal(t, genai.FunctionCallingConfigModeAny, gen.config.ToolConfig.FunctionCallingConfig.Mode)
		params := gen.config.Tools[0].FunctionDeclarations[0].Parameters
		assert.Equal(t, genai.TypeObject, params.Type)
		assert.Equal(t, []string{"taskId"}, params.Required)
		assert.Equal(t, genai.TypeString, params.Properties["taskId"].Type)
		assert.Equal(t, "You are an ai-agent", gen.config.SystemInstruction.Parts[0].Text)
	})

	t.Run("text-without-tools", func(t *testing.T) {
		gen := &fakeGenerator{resp: &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{Content: &genai.Content{Parts: []*genai.Part{
				{Text: "thinking...", Thought: true},
				{Text: "find_tasks"},
			}}}},
		}}
		a := NewAssistant(gen, "gemini-1.5-flash")

		got, err := a.RunTurn(context.Background(), domain.AssistantTurnRequest{
			Model:    "gemini-2.0-flash",
			Messages: []domain.AssistantMessage{{Role: domain.ChatRole_User, Content: "classify"}},
			Tools:    []domain.ToolDeclaration{decl},
			ToolMode: domain.ToolMode_None,
		})
		require.NoError(t, err)
		assert.Equal(t, "find_tasks", got.Content)
		assert.Equal(t, "gemini-2.0-flash", gen.model)
		assert.Nil(t, gen.config.Tools)
		assert.Nil(t, gen.config.ToolConfig)
	})

	t.Run("errors", func(t *testing.T) {
		_, err := NewAssistant(&fakeGenerator{err: assert.AnError}, "m").RunTurn(context.Background(), domain.AssistantTurnRequest{})
		assert.ErrorIs(t, err, assert.AnError)

		_, err = NewAssistant(&fakeGenerator{resp: &genai.GenerateContentResponse{}}, "m").RunTurn(context.Background(), domain.AssistantTurnRequest{})
		assert.EqualError(t, err, "no candidates in response")
	})
}

func TestInitAssistant_Initialize(t *testing.T) {
	_, err := InitAssistant{Provider: "modelrunner"}.Initialize(context.Background())
	assert.NoError(t, err)

	_, err = InitAssistant{Provider: Provider, APIKey: "-"}.Initialize(context.Background())
	assert.Error(t, err)
}
