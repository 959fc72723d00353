package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/trace"
)

var (
	taskFields = []string{
		"id",
		"user_id",
		"title",
		"description",
		"status",
		"priority",
		"category",
		"start_time",
		"end_time",
		"due_time",
		"estimated_time",
		"pomodoro_required_number",
		"pomodoro_number",
		"is_on_pomodoro_list",
		"background_color",
		"text_color",
		"created_at",
		"updated_at",
	}
)

// TaskRepository implements the domain.TaskRepository interface using PostgreSQL as the storage backend.
type TaskRepository struct {
	sb squirrel.StatementBuilderType
}

// NewTaskRepository creates a new instance of TaskRepository.
func NewTaskRepository(br squirrel.BaseRunner) TaskRepository {
	return TaskRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// ListTasksByUser returns every task owned by userID ordered by start time.
func (tr TaskRepository) ListTasksByUser(ctx context.Context, userID string) ([]domain.Task, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		telemetry.UserID(userID),
	))
	defer span.End()

	rows, err := tr.sb.
		Select(taskFields...).
		From("tasks").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("start_time ASC", "id ASC").
		QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	tasks := []domain.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return tasks, nil
}

// GetTask retrieves a task by its ID.
func (tr TaskRepository) GetTask(ctx context.Context, id string) (domain.Task, bool, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	task, err := scanTask(tr.sb.
		Select(taskFields...).
		From("tasks").
		Where(squirrel.Eq{"id": id}).
		QueryRowContext(spanCtx))
	if errors.Is(err, sql.ErrNoRows) {
		telemetry.RecordErrorAndStatus(span, nil)
		return domain.Task{}, false, nil
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Task{}, false, err
	}
	return task, true, nil
}

// CreateTask creates a new task.
func (tr TaskRepository) CreateTask(ctx context.Context, task domain.Task) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	_, err := tr.sb.
		Insert("tasks").
		Columns(taskFields...).
		Values(
			task.ID,
			task.UserID,
			task.Title,
			task.Description,
			task.Status,
			task.Priority,
			task.Category,
			task.StartTime,
			task.EndTime,
			task.DueTime,
			task.EstimatedTime,
			task.PomodoroRequiredNumber,
			task.PomodoroNumber,
			task.IsOnPomodoroList,
			task.Style.BackgroundColor,
			task.Style.TextColor,
			task.CreatedAt,
			task.UpdatedAt,
		).
		ExecContext(spanCtx)

	telemetry.RecordErrorAndStatus(span, err)
	return err
}

// UpdateTask updates the mutable fields of an existing task.
func (tr TaskRepository) UpdateTask(ctx context.Context, task domain.Task) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	_, err := tr.sb.
		Update("tasks").
		Set("title", task.Title).
		Set("description", task.Description).
		Set("status", task.Status).
		Set("priority", task.Priority).
		Set("category", task.Category).
		Set("start_time", task.StartTime).
		Set("end_time", task.EndTime).
		Set("due_time", task.DueTime).
		Set("estimated_time", task.EstimatedTime).
		Set("pomodoro_required_number", task.PomodoroRequiredNumber).
		Set("pomodoro_number", task.PomodoroNumber).
		Set("is_on_pomodoro_list", task.IsOnPomodoroList).
		Set("background_color", task.Style.BackgroundColor).
		Set("text_color", task.Style.TextColor).
		Set("updated_at", task.UpdatedAt).
		Where(squirrel.Eq{"id": task.ID}).
		ExecContext(spanCtx)

	telemetry.RecordErrorAndStatus(span, err)
	return err
}

// DeleteTask deletes a task by its ID.
func (tr TaskRepository) DeleteTask(ctx context.Context, id string) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	_, err := tr.sb.
		Delete("tasks").
		Where(squirrel.Eq{"id": id}).
		ExecContext(spanCtx)

	telemetry.RecordErrorAndStatus(span, err)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (domain.Task, error) {
	var (
		task    domain.Task
		dueTime sql.NullTime
	)
	err := row.Scan(
		&task.ID,
		&task.UserID,
		&task.Title,
		&task.Description,
		&task.Status,
		&task.Priority,
		&task.Category,
		&task.StartTime,
		&task.EndTime,
		&dueTime,
		&task.EstimatedTime,
		&task.PomodoroRequiredNumber,
		&task.PomodoroNumber,
		&task.IsOnPomodoroList,
		&task.Style.BackgroundColor,
		&task.Style.TextColor,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		return domain.Task{}, err
	}
	if dueTime.Valid {
		task.DueTime = &dueTime.Time
	}
	return task, nil
}

// InitTaskRepository is a Symbiont initializer for TaskRepository.
type InitTaskRepository struct {
	DB *sql.DB `resolve:""`
}

// Initialize registers the TaskRepository in the dependency container.
func (tr InitTaskRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.TaskRepository](NewTaskRepository(tr.DB))
	return ctx, nil
}
