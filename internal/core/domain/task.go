package domain

import "time"

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusDone       TaskStatus = "done"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	}
	return false
}

type Task struct {
	ID          int64
	Title       string
	Description *string
	Status      TaskStatus
	Priority    TaskPriority
	AssignedTo  *string
	DueDate     *time.Time
	ProjectID   int64
	CreatedAt   time.Time
}

// TaskWithProject is the joined reporting projection. Tasks without a
// resolvable project are excluded from it, not errored on.
type TaskWithProject struct {
	Task
	Project Project
}

// TaskFilter composes optional predicates as a conjunction. Nil fields
// impose no constraint.
type TaskFilter struct {
	ProjectID *int64
	Status    *TaskStatus
	Priority  *TaskPriority
}

// ProjectStats aggregates a project's tasks by status.
type ProjectStats struct {
	Total      int
	Todo       int
	InProgress int
	Done       int
}

type CreateTaskInput struct {
	Title       string
	Description *string
	Status      TaskStatus
	Priority    TaskPriority
	AssignedTo  *string
	DueDate     *time.Time
	ProjectID   int64
}

// UpdateTaskInput carries a partial update; *Set flags mark fields that were
// present in the request, including explicit nulls.
type UpdateTaskInput struct {
	Title          *string
	Description    *string
	DescriptionSet bool
	Status         *TaskStatus
	Priority       *TaskPriority
	AssignedTo     *string
	AssignedToSet  bool
	DueDate        *time.Time
	DueDateSet     bool
	ProjectID      *int64
}
