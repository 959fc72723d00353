package domain

// errors.go defines domain-specific error types.
type domainErr struct {
	message string
}

// Error returns the error message.
func (e domainErr) Error() string {
	return e.message
}

// NotFoundErr represents an error when a requested entity is not found.
type NotFoundErr struct {
	domainErr
}

// NewNotFoundErr creates a new NotFoundErr with the given message.
func NewNotFoundErr(message string) *NotFoundErr {
	return &NotFoundErr{
		domainErr: domainErr{message: message},
	}
}

// ValidationErr represents an error when validation fails.
type ValidationErr struct {
	domainErr
}

// NewValidationErr creates a new ValidationErr with the given message.
func NewValidationErr(message string) *ValidationErr {
	return &ValidationErr{
		domainErr: domainErr{message: message},
	}
}

// UnauthorizedErr is returned when the caller's role cannot use a feature.
type UnauthorizedErr struct {
	domainErr
}

// NewUnauthorizedErr creates a new UnauthorizedErr with the given message.
func NewUnauthorizedErr(message string) *UnauthorizedErr {
	return &UnauthorizedErr{
		domainErr: domainErr{message: message},
	}
}

// UnknownToolErr is returned when a tool call names a tool absent from the registry.
type UnknownToolErr struct {
	domainErr
	Name string
}

// NewUnknownToolErr creates a new UnknownToolErr for the given tool name.
func NewUnknownToolErr(name string) *UnknownToolErr {
	return &UnknownToolErr{
		domainErr: domainErr{message: "unknown tool: " + name},
		Name:      name,
	}
}

// InvalidArgumentsErr is returned when a tool call does not satisfy its declaration.
type InvalidArgumentsErr struct {
	domainErr
	Tool string
}

// NewInvalidArgumentsErr creates a new InvalidArgumentsErr for the given tool.
func NewInvalidArgumentsErr(tool, message string) *InvalidArgumentsErr {
	return &InvalidArgumentsErr{
		domainErr: domainErr{message: tool + ": " + message},
		Tool:      tool,
	}
}

// UnexpectedFunctionCallErr is returned when the model requests a call the
// orchestrator cannot branch on. It aborts the turn.
type UnexpectedFunctionCallErr struct {
	domainErr
}

// NewUnexpectedFunctionCallErr creates a new UnexpectedFunctionCallErr with the given message.
func NewUnexpectedFunctionCallErr(message string) *UnexpectedFunctionCallErr {
	return &UnexpectedFunctionCallErr{
		domainErr: domainErr{message: message},
	}
}

// UpstreamErr reports that the model backend or the task store failed or
// did not answer in time.
type UpstreamErr struct {
	domainErr
	Upstream string
	cause    error
}

// NewUpstreamErr creates a new UpstreamErr for the named upstream.
func NewUpstreamErr(upstream string, cause error) *UpstreamErr {
	msg := upstream + " unavailable"
	if cause != nil {
		msg += ": " + cause.Error()
	}
	return &UpstreamErr{
		domainErr: domainErr{message: msg},
		Upstream:  upstream,
		cause:     cause,
	}
}

// Unwrap returns the underlying cause.
func (e *UpstreamErr) Unwrap() error {
	return e.cause
}

// ToolExecutionErr wraps a failure raised after a batch started executing.
// Sibling calls may already have written to the task store.
type ToolExecutionErr struct {
	domainErr
	Tool  string
	cause error
}

// NewToolExecutionErr creates a new ToolExecutionErr for the given tool.
func NewToolExecutionErr(tool string, cause error) *ToolExecutionErr {
	return &ToolExecutionErr{
		domainErr: domainErr{message: cause.Error()},
		Tool:      tool,
		cause:     cause,
	}
}

// Unwrap returns the underlying cause.
func (e *ToolExecutionErr) Unwrap() error {
	return e.cause
}
