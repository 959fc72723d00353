package domain

// PromptRequest is one user prompt addressed to the agent.
type PromptRequest struct {
	Prompt         string
	UserID         string
	UserRole       string
	PreferredModel string
}

// OrchestrationResult is the single value returned for a prompt.
type OrchestrationResult struct {
	ResponseText string
}

// Intent is the coarse category of a user prompt.
type Intent string

const (
	Intent_CreateTask Intent = "create_task"
	Intent_DeleteTask Intent = "delete_task"
	Intent_FindTasks  Intent = "find_tasks"
	Intent_Chat       Intent = "chat"
)

// ParseIntent maps a model label to an Intent, defaulting to Intent_Chat.
func ParseIntent(label string) Intent {
	switch Intent(label) {
	case Intent_CreateTask, Intent_DeleteTask, Intent_FindTasks:
		return Intent(label)
	default:
		return Intent_Chat
	}
}
