package actions

import (
	"context"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/domain"
)

// FallbackAnswer is returned when the model calls answerUserQuestion without a response.
const FallbackAnswer = "I can't answer your question."

// QuestionAnswererAction carries a plain-text answer through the tool channel.
type QuestionAnswererAction struct{}

// NewQuestionAnswererAction creates a new instance of QuestionAnswererAction.
func NewQuestionAnswererAction() QuestionAnswererAction {
	return QuestionAnswererAction{}
}

// Declaration returns the tool declaration for QuestionAnswererAction.
func (a QuestionAnswererAction) Declaration() domain.ToolDeclaration {
	return domain.ToolDeclaration{
		Kind:        domain.ToolKind_AnswerUserQuestion,
		Name:        domain.ToolName_AnswerUserQuestion,
		Description: "Answer the user question using the tasks knowledge base.",
		Parameters: map[string]domain.ToolParameter{
			"response": {Type: "string", Description: "The answer to the user question."},
		},
		RequiredFields: []string{},
	}
}

// Execute has no side effect. It returns the response argument or FallbackAnswer.
func (a QuestionAnswererAction) Execute(_ context.Context, _ string, call domain.ToolCallRequest) (domain.ToolResult, error) {
	params := struct {
		Response string `json:"response"`
	}{}
	if err := decodeArguments(call, &params); err != nil {
		return domain.ToolResult{}, err
	}

	text := params.Response
	if strings.TrimSpace(text) == "" {
		text = FallbackAnswer
	}
	return domain.ToolResult{
		Kind:   domain.ToolKind_AnswerUserQuestion,
		CallID: call.ID,
		Text:   text,
	}, nil
}
