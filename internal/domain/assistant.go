package domain

import "context"

// ChatRole represents the author of a transcript message.
type ChatRole string

const (
	ChatRole_User      ChatRole = "user"
	ChatRole_Assistant ChatRole = "assistant"
	ChatRole_System    ChatRole = "system"
	ChatRole_Tool      ChatRole = "tool"
)

// AssistantMessage represents a message exchanged during assistant turns.
type AssistantMessage struct {
	Role    ChatRole
	Content string
	// ToolCallID links a tool message to the call it answers.
	ToolCallID *string
	// ToolName is the tool answered by a tool message.
	ToolName  string
	ToolCalls []ToolCallRequest
}

// AssistantUsage contains token usage for one assistant turn.
type AssistantUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// ToolMode controls whether the model may answer without calling a tool.
type ToolMode string

const (
	// ToolMode_Auto lets the model choose between text and tool calls.
	ToolMode_Auto ToolMode = "auto"
	// ToolMode_Any forces the model to emit at least one tool call.
	ToolMode_Any ToolMode = "any"
	// ToolMode_None disables tool calls for the turn.
	ToolMode_None ToolMode = "none"
)

// AssistantTurnRequest is the domain request for one assistant turn.
type AssistantTurnRequest struct {
	Model             string
	SystemInstruction string
	Messages          []AssistantMessage
	Tools             []ToolDeclaration
	ToolMode          ToolMode
	// Optional generation settings.
	Temperature *float64
	MaxTokens   *int
}

// AssistantTurnResponse contains the model reply: text or tool calls.
type AssistantTurnResponse struct {
	Content   string
	ToolCalls []ToolCallRequest
	Usage     AssistantUsage
}

// HasToolCalls reports whether the model requested at least one tool call.
func (r AssistantTurnResponse) HasToolCalls() bool {
	return len(r.ToolCalls) > 0
}

// Assistant is the generative-model backend able to run function-calling turns.
type Assistant interface {
	// RunTurn submits the transcript and returns the model reply.
	RunTurn(ctx context.Context, req AssistantTurnRequest) (AssistantTurnResponse, error)
}
