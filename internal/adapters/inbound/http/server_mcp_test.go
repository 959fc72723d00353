package http

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/domain"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func connectMCP(t *testing.T, api TaskAgentServer) *mcp.ClientSession {
	t.Helper()
	ctx := context.Background()

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	serverSession, err := api.MCPServer().Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		serverSession.Close() //nolint:errcheck
	})

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "v1"}, nil)
	clientSession, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		clientSession.Close() //nolint:errcheck
	})
	return clientSession
}

func textOf(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", res.Content[0])
	return text.Text
}

func TestTaskAgentServer_MCPListsTools(t *testing.T) {
	api, _ := newTestServer(t)
	session := connectMCP(t, api)

	res, err := session.ListTools(context.Background(), &mcp.ListToolsParams{})
	require.NoError(t, err)

	names := make([]string, 0, len(res.Tools))
	for _, tool := range res.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{mcpTool_ProcessPrompt, mcpTool_ListTools, mcpTool_CategorizeIntent}, names)
}

func TestTaskAgentServer_MCPCallTool(t *testing.T) {
	tests := map[string]struct {
		params       *mcp.CallToolParams
		setupMocks   func(serverMocks)
		expectError  bool
		expectedText string
	}{
		"process-prompt": {
			params: &mcp.CallToolParams{
				Name: mcpTool_ProcessPrompt,
				Arguments: map[string]any{
					"prompt":   "list my tasks",
					"userId":   "u1",
					"userRole": "premium",
				},
			},
			setupMocks: func(m serverMocks) {
				m.processPrompt.EXPECT().Execute(mock.Anything, domain.PromptRequest{
					Prompt: "list my tasks", UserID: "u1", UserRole: "premium",
				}).Return(domain.OrchestrationResult{ResponseText: "Nothing planned."}, nil).Once()
			},
			expectedText: `{"response":"Nothing planned."}`,
		},
		"process-prompt-unauthorized": {
			params: &mcp.CallToolParams{
				Name: mcpTool_ProcessPrompt,
				Arguments: map[string]any{
					"prompt":   "list my tasks",
					"userId":   "u1",
					"userRole": "free",
				},
			},
			setupMocks: func(m serverMocks) {
				m.processPrompt.EXPECT().Execute(mock.Anything, mock.Anything).
					Return(domain.OrchestrationResult{}, domain.NewUnauthorizedErr("Please upgrade to premium to use this feature")).Once()
			},
			expectError:  true,
			expectedText: `{"error":{"code":"UNAUTHORIZED","message":"Please upgrade to premium to use this feature"}}`,
		},
		"list-tools": {
			params: &mcp.CallToolParams{Name: mcpTool_ListTools, Arguments: map[string]any{}},
			setupMocks: func(m serverMocks) {
				m.dispatcher.EXPECT().Declarations().Return([]domain.ToolDeclaration{
					{Name: domain.ToolName_FindAllTasksByUserID, Description: "Find tasks"},
				}).Once()
			},
			expectedText: `{"tools":[{"name":"findAllTasksByUserId","description":"Find tasks","parameters":{"type":"object","properties":{},"required":[]}}]}`,
		},
		"categorize-intent": {
			params: &mcp.CallToolParams{
				Name:      mcpTool_CategorizeIntent,
				Arguments: map[string]any{"prompt": "add a gym session tomorrow"},
			},
			setupMocks: func(m serverMocks) {
				m.categorizeIntent.EXPECT().Execute(mock.Anything, "add a gym session tomorrow", "").
					Return(domain.Intent_CreateTask, nil).Once()
			},
			expectedText: `{"intent":"create_task"}`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			api, m := newTestServer(t)
			tt.setupMocks(m)
			session := connectMCP(t, api)

			res, err := session.CallTool(context.Background(), tt.params)
			require.NoError(t, err)

			assert.Equal(t, tt.expectError, res.IsError)
			text := textOf(t, res)
			assert.True(t, json.Valid([]byte(text)))
			assert.JSONEq(t, tt.expectedText, text)
		})
	}
}
