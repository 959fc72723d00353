package domain

import (
	"context"
	"slices"
	"time"
)

// TaskSnapshot is the cached view of a user's tasks.
type TaskSnapshot struct {
	UserID   string
	Tasks    []Task
	LoadedAt time.Time
}

// Clone returns a copy whose task list can be changed without touching s.
func (s TaskSnapshot) Clone() TaskSnapshot {
	s.Tasks = slices.Clone(s.Tasks)
	return s
}

// Append adds tasks to the end of the snapshot.
func (s *TaskSnapshot) Append(tasks ...Task) {
	s.Tasks = append(s.Tasks, tasks...)
}

// Remove drops the tasks with the given ids and returns how many were removed.
func (s *TaskSnapshot) Remove(ids ...string) int {
	before := len(s.Tasks)
	s.Tasks = slices.DeleteFunc(s.Tasks, func(t Task) bool {
		return slices.Contains(ids, t.ID)
	})
	return before - len(s.Tasks)
}

// Replace swaps the task with the same id for task. It reports false when the
// snapshot does not hold that id.
func (s *TaskSnapshot) Replace(task Task) bool {
	i := slices.IndexFunc(s.Tasks, func(t Task) bool { return t.ID == task.ID })
	if i < 0 {
		return false
	}
	s.Tasks[i] = task
	return true
}

// Find returns the task with the given id.
func (s TaskSnapshot) Find(id string) (Task, bool) {
	i := slices.IndexFunc(s.Tasks, func(t Task) bool { return t.ID == id })
	if i < 0 {
		return Task{}, false
	}
	return s.Tasks[i], true
}

// TaskSnapshotRepository stores task snapshots keyed by user id.
type TaskSnapshotRepository interface {
	// GetSnapshot returns the snapshot of the user, if any.
	GetSnapshot(ctx context.Context, userID string) (TaskSnapshot, bool, error)
	// SaveSnapshot creates or replaces the snapshot of snapshot.UserID.
	SaveSnapshot(ctx context.Context, snapshot TaskSnapshot) error
	// DeleteSnapshot removes the snapshot of the user.
	DeleteSnapshot(ctx context.Context, userID string) error
}
