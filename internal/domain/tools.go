package domain

import (
	"context"
	"slices"
)

// ToolKind is the closed set of tools the agent can dispatch.
type ToolKind int

const (
	// ToolKind_Unrecognized marks a tool name outside the registry.
	ToolKind_Unrecognized ToolKind = iota
	ToolKind_FindAllTasksByUserID
	ToolKind_DeleteTaskByID
	ToolKind_CreateTask
	ToolKind_AnswerUserQuestion
)

const (
	ToolName_FindAllTasksByUserID = "findAllTasksByUserId"
	ToolName_DeleteTaskByID       = "deleteTaskById"
	ToolName_CreateTask           = "createTask"
	ToolName_AnswerUserQuestion   = "answerUserQuestion"
)

// ToolKinds lists the recognized kinds in canonical declaration order.
var ToolKinds = []ToolKind{
	ToolKind_FindAllTasksByUserID,
	ToolKind_DeleteTaskByID,
	ToolKind_CreateTask,
	ToolKind_AnswerUserQuestion,
}

// ParseToolKind maps a wire name to its ToolKind.
func ParseToolKind(name string) ToolKind {
	switch name {
	case ToolName_FindAllTasksByUserID:
		return ToolKind_FindAllTasksByUserID
	case ToolName_DeleteTaskByID:
		return ToolKind_DeleteTaskByID
	case ToolName_CreateTask:
		return ToolKind_CreateTask
	case ToolName_AnswerUserQuestion:
		return ToolKind_AnswerUserQuestion
	default:
		return ToolKind_Unrecognized
	}
}

// Name returns the wire name of the kind, or "" for ToolKind_Unrecognized.
func (k ToolKind) Name() string {
	switch k {
	case ToolKind_FindAllTasksByUserID:
		return ToolName_FindAllTasksByUserID
	case ToolKind_DeleteTaskByID:
		return ToolName_DeleteTaskByID
	case ToolKind_CreateTask:
		return ToolName_CreateTask
	case ToolKind_AnswerUserQuestion:
		return ToolName_AnswerUserQuestion
	default:
		return ""
	}
}

// String implements fmt.Stringer.
func (k ToolKind) String() string {
	if n := k.Name(); n != "" {
		return n
	}
	return "unrecognized"
}

// Mutates reports whether dispatching the kind changes the task store.
func (k ToolKind) Mutates() bool {
	return k == ToolKind_DeleteTaskByID || k == ToolKind_CreateTask
}

// ToolParameter describes one field accepted by a tool.
type ToolParameter struct {
	Type        string
	Description string
	Enum        []string
	Properties  map[string]ToolParameter
}

// ToolDeclaration is the immutable contract of one tool.
type ToolDeclaration struct {
	Kind           ToolKind
	Name           string
	Description    string
	Parameters     map[string]ToolParameter
	RequiredFields []string
}

// IsRequired reports whether field must be present in a call.
func (d ToolDeclaration) IsRequired(field string) bool {
	return slices.Contains(d.RequiredFields, field)
}

// ToolCallRequest is a structured call emitted by the model.
type ToolCallRequest struct {
	ID        string
	Name      string
	Arguments map[string]any
	// RawArguments keeps the provider payload when it could not be decoded.
	RawArguments string
}

// ToolResult is the outcome of a successful dispatch.
type ToolResult struct {
	Kind   ToolKind
	CallID string
	// Tasks holds the created task (createTask) or the lookup result (findAllTasksByUserId).
	Tasks []Task
	// DeletedCount is 1 for a successful deleteTaskById.
	DeletedCount int
	// Text is the terminal answer of answerUserQuestion.
	Text string
}

// ToolHandler executes one tool kind against its collaborators.
type ToolHandler interface {
	// Declaration returns the wire contract of the tool.
	Declaration() ToolDeclaration
	// Execute runs a validated call on behalf of userID.
	Execute(ctx context.Context, userID string, call ToolCallRequest) (ToolResult, error)
}

// ToolArgumentsChecker is implemented by handlers whose arguments need
// checks beyond the declaration. CheckArguments must not have side effects.
type ToolArgumentsChecker interface {
	CheckArguments(userID string, call ToolCallRequest) error
}

// ToolDispatcher validates and executes tool calls emitted by the model.
type ToolDispatcher interface {
	// Declarations returns the registered tools in canonical order.
	Declarations() []ToolDeclaration
	// Dispatch validates and executes a single call.
	Dispatch(ctx context.Context, userID string, call ToolCallRequest) (ToolResult, error)
	// DispatchBatch validates every call before executing any of them, then
	// runs them concurrently. Results keep the order of calls.
	DispatchBatch(ctx context.Context, userID string, calls []ToolCallRequest) ([]ToolResult, error)
}
