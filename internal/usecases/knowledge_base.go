package usecases

import (
	"embed"
	"fmt"
	"time"

	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/domain"
	"github.com/toon-format/toon-go"
	"go.yaml.in/yaml/v3"
)

//go:embed prompts/*.yml
var promptFiles embed.FS

// promptMessage is one entry of a prompt file.
type promptMessage struct {
	Role    domain.ChatRole `yaml:"role"`
	Content string          `yaml:"content"`
}

// loadPrompt decodes an embedded prompt file.
func loadPrompt(name string) ([]promptMessage, error) {
	file, err := promptFiles.Open("prompts/" + name)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s prompt: %w", name, err)
	}
	defer file.Close() //nolint:errcheck

	messages := []promptMessage{}
	if err := yaml.NewDecoder(file).Decode(&messages); err != nil {
		return nil, fmt.Errorf("failed to decode %s prompt: %w", name, err)
	}
	return messages, nil
}

// taskView is the shape of a task shown to the model.
type taskView struct {
	ID                     string `toon:"id"`
	Title                  string `toon:"title"`
	Description            string `toon:"description"`
	Status                 string `toon:"status"`
	Priority               string `toon:"priority"`
	Category               string `toon:"category"`
	StartTime              string `toon:"startTime"`
	EndTime                string `toon:"endTime"`
	EstimatedTime          int    `toon:"estimatedTime"`
	PomodoroRequiredNumber int    `toon:"pomodoro_required_number"`
	PomodoroNumber         int    `toon:"pomodoro_number"`
	IsOnPomodoroList       bool   `toon:"is_on_pomodoro_list"`
}

type taskList struct {
	Tasks []taskView `toon:"tasks"`
}

func newTaskView(t domain.Task) taskView {
	return taskView{
		ID:                     t.ID,
		Title:                  t.Title,
		Description:            t.Description,
		Status:                 string(t.Status),
		Priority:               string(t.Priority),
		Category:               t.Category,
		StartTime:              t.StartTime.Format(time.RFC3339),
		EndTime:                t.EndTime.Format(time.RFC3339),
		EstimatedTime:          t.EstimatedTime,
		PomodoroRequiredNumber: t.PomodoroRequiredNumber,
		PomodoroNumber:         t.PomodoroNumber,
		IsOnPomodoroList:       t.IsOnPomodoroList,
	}
}

// marshalTasks converts tasks into a TOON string for LLM input.
func marshalTasks(tasks []domain.Task) (string, error) {
	list := taskList{Tasks: make([]taskView, 0, len(tasks))}
	for _, t := range tasks {
		list.Tasks = append(list.Tasks, newTaskView(t))
	}

	tasksTOON, err := toon.MarshalString(list, toon.WithLengthMarkers(true))
	if err != nil {
		return "", fmt.Errorf("failed to marshal tasks: %w", err)
	}
	return tasksTOON, nil
}

// agentPrompt holds the system instruction and the seed turns of a session.
type agentPrompt struct {
	systemInstruction string
	seed              []string
}

func loadAgentPrompt() (agentPrompt, error) {
	messages, err := loadPrompt("agent.yml")
	if err != nil {
		return agentPrompt{}, err
	}

	var p agentPrompt
	for _, msg := range messages {
		switch msg.Role {
		case domain.ChatRole_System:
			p.systemInstruction = msg.Content
		case domain.ChatRole_User:
			p.seed = append(p.seed, msg.Content)
		}
	}
	if p.systemInstruction == "" || len(p.seed) == 0 {
		return agentPrompt{}, fmt.Errorf("agent prompt must define a system instruction and seed turns")
	}
	return p, nil
}

// seedMessages renders the opening turns of a new session.
func (p agentPrompt) seedMessages(userID string, tasks []domain.Task, seedTime time.Time) ([]domain.AssistantMessage, error) {
	tasksTOON, err := marshalTasks(tasks)
	if err != nil {
		return nil, err
	}

	messages := make([]domain.AssistantMessage, 0, len(p.seed))
	for _, content := range p.seed {
		messages = append(messages, domain.AssistantMessage{
			Role:    domain.ChatRole_User,
			Content: fmt.Sprintf(content, tasksTOON, seedTime.Format(time.RFC3339), userID),
		})
	}
	return messages, nil
}
