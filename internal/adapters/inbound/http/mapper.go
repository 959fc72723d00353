package http

import (
	"net/http"

	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/domain"
)

// ErrorCode is the machine readable code of an API error.
type ErrorCode string

const (
	BADREQUEST         ErrorCode = "BAD_REQUEST"
	UNAUTHORIZED       ErrorCode = "UNAUTHORIZED"
	NOTFOUND           ErrorCode = "NOT_FOUND"
	UNPROCESSABLE      ErrorCode = "UNPROCESSABLE"
	UPSTREAMFAILURE    ErrorCode = "UPSTREAM_FAILURE"
	INTERNALERROR      ErrorCode = "INTERNAL_ERROR"
	internalErrMessage           = "internal server error"
)

// Error is the body of a failed API call.
type Error struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// ErrorResp wraps Error under the "error" key.
type ErrorResp struct {
	Error Error `json:"error"`
}

// PromptReq is the body of POST /api/v1/agent/prompt and of the process_prompt MCP tool.
type PromptReq struct {
	Prompt         string `json:"prompt" jsonschema:"the user message"`
	UserID         string `json:"userId" jsonschema:"the user the prompt acts for"`
	UserRole       string `json:"userRole" jsonschema:"role of the user, only the privileged role may use the agent"`
	PreferredModel string `json:"preferredModel,omitempty" jsonschema:"optional model overriding the configured default"`
}

// PromptResp carries the agent reply.
type PromptResp struct {
	Response string `json:"response"`
}

// IntentReq is the body of POST /api/v1/agent/intent.
type IntentReq struct {
	Prompt string `json:"prompt"`
	Model  string `json:"model,omitempty"`
}

// IntentResp carries the categorized intent.
type IntentResp struct {
	Intent string `json:"intent"`
}

// ToolParameter describes one tool argument.
type ToolParameter struct {
	Type        string                   `json:"type"`
	Description string                   `json:"description,omitempty"`
	Enum        []string                 `json:"enum,omitempty"`
	Properties  map[string]ToolParameter `json:"properties,omitempty"`
}

// ToolParameters is the JSON-schema-like object accepted by a tool.
type ToolParameters struct {
	Type       string                   `json:"type"`
	Properties map[string]ToolParameter `json:"properties"`
	Required   []string                 `json:"required"`
}

// Tool is one entry of GET /api/v1/agent/tools.
type Tool struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  ToolParameters `json:"parameters"`
}

// ListToolsResp lists the declared tools in registry order.
type ListToolsResp struct {
	Tools []Tool `json:"tools"`
}

// TaskResp is the API view of a task.
type TaskResp struct {
	ID                     string           `json:"id"`
	UserID                 string           `json:"userId"`
	Title                  string           `json:"title"`
	Description            string           `json:"description"`
	Status                 string           `json:"status"`
	Priority               string           `json:"priority"`
	Category               string           `json:"category"`
	StartTime              string           `json:"startTime"`
	EndTime                string           `json:"endTime"`
	DueTime                *string          `json:"dueTime,omitempty"`
	EstimatedTime          int              `json:"estimatedTime"`
	PomodoroRequiredNumber int              `json:"pomodoro_required_number"`
	PomodoroNumber         int              `json:"pomodoro_number"`
	IsOnPomodoroList       bool             `json:"is_on_pomodoro_list"`
	Style                  domain.TaskStyle `json:"style"`
}

func toError(err error) ErrorResp {
	errResp := ErrorResp{}
	switch e := err.(type) {
	case *domain.ValidationErr:
		errResp.Error.Code = BADREQUEST
		errResp.Error.Message = e.Error()
	case *domain.InvalidArgumentsErr:
		errResp.Error.Code = BADREQUEST
		errResp.Error.Message = e.Error()
	case *domain.UnauthorizedErr:
		errResp.Error.Code = UNAUTHORIZED
		errResp.Error.Message = e.Error()
	case *domain.NotFoundErr:
		errResp.Error.Code = NOTFOUND
		errResp.Error.Message = e.Error()
	case *domain.UnknownToolErr:
		errResp.Error.Code = UNPROCESSABLE
		errResp.Error.Message = e.Error()
	case *domain.UnexpectedFunctionCallErr:
		errResp.Error.Code = UNPROCESSABLE
		errResp.Error.Message = e.Error()
	case *domain.UpstreamErr:
		errResp.Error.Code = UPSTREAMFAILURE
		errResp.Error.Message = e.Error()
	case *domain.ToolExecutionErr:
		return toError(e.Unwrap())
	default:
		errResp.Error.Code = INTERNALERROR
		errResp.Error.Message = internalErrMessage
	}
	return errResp
}

func toStatusCode(code ErrorCode) int {
	switch code {
	case BADREQUEST:
		return http.StatusBadRequest
	case UNAUTHORIZED:
		return http.StatusUnauthorized
	case NOTFOUND:
		return http.StatusNotFound
	case UNPROCESSABLE:
		return http.StatusUnprocessableEntity
	case UPSTREAMFAILURE:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func toPromptRequest(req PromptReq) domain.PromptRequest {
	return domain.PromptRequest{
		Prompt:         req.Prompt,
		UserID:         req.UserID,
		UserRole:       req.UserRole,
		PreferredModel: req.PreferredModel,
	}
}

func toTools(decls []domain.ToolDeclaration) ListToolsResp {
	resp := ListToolsResp{Tools: make([]Tool, 0, len(decls))}
	for _, d := range decls {
		required := d.RequiredFields
		if required == nil {
			required = []string{}
		}
		resp.Tools = append(resp.Tools, Tool{
			Name:        d.Name,
			Description: d.Description,
			Parameters: ToolParameters{
				Type:       "object",
				Properties: toToolParameters(d.Parameters),
				Required:   required,
			},
		})
	}
	return resp
}

func toToolParameters(params map[string]domain.ToolParameter) map[string]ToolParameter {
	if len(params) == 0 {
		return map[string]ToolParameter{}
	}
	out := make(map[string]ToolParameter, len(params))
	for name, p := range params {
		tp := ToolParameter{
			Type:        p.Type,
			Description: p.Description,
			Enum:        p.Enum,
		}
		if len(p.Properties) > 0 {
			tp.Properties = toToolParameters(p.Properties)
		}
		out[name] = tp
	}
	return out
}

func toTask(t domain.Task) TaskResp {
	resp := TaskResp{
		ID:                     t.ID,
		UserID:                 t.UserID,
		Title:                  t.Title,
		Description:            t.Description,
		Status:                 string(t.Status),
		Priority:               string(t.Priority),
		Category:               t.Category,
		StartTime:              t.StartTime.Format(timeLayout),
		EndTime:                t.EndTime.Format(timeLayout),
		EstimatedTime:          t.EstimatedTime,
		PomodoroRequiredNumber: t.PomodoroRequiredNumber,
		PomodoroNumber:         t.PomodoroNumber,
		IsOnPomodoroList:       t.IsOnPomodoroList,
		Style:                  t.Style,
	}
	if t.DueTime != nil {
		due := t.DueTime.Format(timeLayout)
		resp.DueTime = &due
	}
	return resp
}
