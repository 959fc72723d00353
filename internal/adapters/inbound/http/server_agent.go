package http

import (
	"errors"
	"io"
	"net/http"
)

// PomodoroReq is the optional body of POST /api/v1/tasks/{taskId}/pomodoro.
type PomodoroReq struct {
	UserID string `json:"userId"`
}

// PostPrompt runs one agent turn.
func (api TaskAgentServer) PostPrompt(w http.ResponseWriter, r *http.Request) {
	var req PromptReq
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, "invalid request body: %v", err)
		return
	}

	result, err := api.ProcessPromptUseCase.Execute(r.Context(), toPromptRequest(req))
	if err != nil {
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, PromptResp{Response: result.ResponseText})
}

// PostIntent categorizes a prompt without touching any session.
func (api TaskAgentServer) PostIntent(w http.ResponseWriter, r *http.Request) {
	var req IntentReq
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, "invalid request body: %v", err)
		return
	}

	intent, err := api.CategorizeIntentUseCase.Execute(r.Context(), req.Prompt, req.Model)
	if err != nil {
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, IntentResp{Intent: string(intent)})
}

// ListTools returns the tool declarations offered to the model.
func (api TaskAgentServer) ListTools(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, toTools(api.Dispatcher.Declarations()))
}

// DeleteSession drops the conversation and task snapshot of a user.
func (api TaskAgentServer) DeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := api.ResetSessionUseCase.Execute(r.Context(), r.PathValue("userId")); err != nil {
		respondError(w, toError(err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// PostPomodoro advances the pomodoro counter of a task. The owner is read from
// the body, falling back to the userId query parameter.
func (api TaskAgentServer) PostPomodoro(w http.ResponseWriter, r *http.Request) {
	var req PomodoroReq
	if err := decodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		respondBadRequest(w, "invalid request body: %v", err)
		return
	}
	if req.UserID == "" {
		req.UserID = r.URL.Query().Get("userId")
	}

	task, err := api.AdvancePomodoroUseCase.Execute(r.Context(), req.UserID, r.PathValue("taskId"))
	if err != nil {
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toTask(task))
}
