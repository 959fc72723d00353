package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	rest "github.com/cleitonmarx/symbiont-ai-taskagent/internal/adapters/inbound/http"
)

// APIError is a non-2xx answer of the agent API.
type APIError struct {
	StatusCode int
	Code       rest.ErrorCode
	Message    string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}
	return fmt.Sprintf("%s (%d): %s", e.Code, e.StatusCode, e.Message)
}

// Client calls the agent REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new instance of Client.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) Prompt(ctx context.Context, req rest.PromptReq) (rest.PromptResp, error) {
	var resp rest.PromptResp
	err := c.do(ctx, http.MethodPost, "/api/v1/agent/prompt", req, &resp)
	return resp, err
}

func (c *Client) Intent(ctx context.Context, req rest.IntentReq) (rest.IntentResp, error) {
	var resp rest.IntentResp
	err := c.do(ctx, http.MethodPost, "/api/v1/agent/intent", req, &resp)
	return resp, err
}

func (c *Client) ListTools(ctx context.Context) (rest.ListToolsResp, error) {
	var resp rest.ListToolsResp
	err := c.do(ctx, http.MethodGet, "/api/v1/agent/tools", nil, &resp)
	return resp, err
}

func (c *Client) ResetSession(ctx context.Context, userID string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/agent/sessions/"+url.PathEscape(userID), nil, nil)
}

func (c *Client) AdvancePomodoro(ctx context.Context, userID, taskID string) (rest.TaskResp, error) {
	var resp rest.TaskResp
	err := c.do(ctx, http.MethodPost, "/api/v1/tasks/"+url.PathEscape(taskID)+"/pomodoro", rest.PomodoroReq{UserID: userID}, &resp)
	return resp, err
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var errResp rest.ErrorResp
		if json.NewDecoder(resp.Body).Decode(&errResp) == nil {
			apiErr.Code = errResp.Error.Code
			apiErr.Message = errResp.Error.Message
		}
		return apiErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
