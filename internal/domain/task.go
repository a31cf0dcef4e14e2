package domain

import "time"

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

// Valid reports whether s is one of the known task statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

// Task represents a single work item tracked by the system.
type Task struct {
	ID          int64
	Title       string
	Description string
	Status      TaskStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TaskPatch carries a partial update. Only non-nil fields are applied;
// nil means "leave the current value alone".
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *TaskStatus
}

// TaskPage is one window of the task listing plus the counts needed to
// render pagination controls.
type TaskPage struct {
	Items      []Task
	Total      int64
	Page       int
	PageSize   int
	TotalPages int64
}
