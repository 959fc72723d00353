package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	mcpServerName    = "taskagent"
	mcpServerVersion = "v1"

	mcpTool_ProcessPrompt    = "process_prompt"
	mcpTool_ListTools        = "list_tools"
	mcpTool_CategorizeIntent = "categorize_intent"
)

// EmptyInput is the argument of tools that take none.
type EmptyInput struct{}

// MCPServer builds an MCP server exposing the agent operations as tools.
func (api TaskAgentServer) MCPServer() *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: mcpServerName, Version: mcpServerVersion}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        mcpTool_ProcessPrompt,
		Description: "Send a prompt to the task agent on behalf of a user and return its answer.",
		Annotations: &mcp.ToolAnnotations{
			Title:         "Process Prompt",
			OpenWorldHint: boolPtr(false),
		},
	}, api.handleProcessPrompt)

	mcp.AddTool(server, &mcp.Tool{
		Name:        mcpTool_ListTools,
		Description: "List the tools the task agent may call.",
		Annotations: &mcp.ToolAnnotations{
			Title:         "List Agent Tools",
			ReadOnlyHint:  true,
			OpenWorldHint: boolPtr(false),
		},
	}, api.handleListTools)

	mcp.AddTool(server, &mcp.Tool{
		Name:        mcpTool_CategorizeIntent,
		Description: "Classify a prompt as create_task, delete_task, find_tasks or chat.",
		Annotations: &mcp.ToolAnnotations{
			Title:         "Categorize Intent",
			ReadOnlyHint:  true,
			OpenWorldHint: boolPtr(false),
		},
	}, api.handleCategorizeIntent)

	return server
}

func (api TaskAgentServer) mcpHandler() http.Handler {
	server := api.MCPServer()
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, nil)
}

func (api TaskAgentServer) handleProcessPrompt(ctx context.Context, _ *mcp.CallToolRequest, input PromptReq) (*mcp.CallToolResult, any, error) {
	result, err := api.ProcessPromptUseCase.Execute(ctx, toPromptRequest(input))
	if err != nil {
		return errorResult(err), nil, nil
	}
	return jsonResult(PromptResp{Response: result.ResponseText}), nil, nil
}

func (api TaskAgentServer) handleListTools(_ context.Context, _ *mcp.CallToolRequest, _ EmptyInput) (*mcp.CallToolResult, any, error) {
	return jsonResult(toTools(api.Dispatcher.Declarations())), nil, nil
}

func (api TaskAgentServer) handleCategorizeIntent(ctx context.Context, _ *mcp.CallToolRequest, input IntentReq) (*mcp.CallToolResult, any, error) {
	intent, err := api.CategorizeIntentUseCase.Execute(ctx, input.Prompt, input.Model)
	if err != nil {
		return errorResult(err), nil, nil
	}
	return jsonResult(IntentResp{Intent: string(intent)}), nil, nil
}

func jsonResult(v any) *mcp.CallToolResult {
	data, err := json.Marshal(v)
	if err != nil {
		return errorResult(err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
	}
}

// errorResult reports err to the MCP client with the same body as the REST API.
func errorResult(err error) *mcp.CallToolResult {
	data, _ := json.Marshal(toError(err))
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
	}
}

func boolPtr(b bool) *bool {
	return &b
}
