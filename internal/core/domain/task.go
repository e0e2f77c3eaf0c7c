package domain

import "time"

// TaskStatus represents the lifecycle state of a task.
type TaskStatus string

const (
	TaskPending    TaskStatus = "PENDING"
	TaskInProgress TaskStatus = "IN_PROGRESS"
	TaskDone       TaskStatus = "DONE"
)

// Valid reports whether s is one of the known task statuses.
func (s TaskStatus) Valid() bool {
	return s == TaskPending || s == TaskInProgress || s == TaskDone
}

// DateLayout is the wire format for date-only fields (due and completion
// dates). An empty or malformed value belongs to no month.
const DateLayout = "2006-01-02"

// TaskComment is an append-only note on a task. The author name is
// denormalized at creation time and never updated afterwards.
type TaskComment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// Task is a unit of work for a client. CompletedAt is meaningful only when
// the status is DONE; this is a data-quality expectation, not enforced.
type Task struct {
	ID               string        `json:"id"`
	Title            string        `json:"title"`
	Description      string        `json:"description,omitempty"`
	Status           TaskStatus    `json:"status"`
	AssignedToUserID string        `json:"assigned_to_user_id,omitempty"`
	ClientID         string        `json:"client_id"`
	DueDate          string        `json:"due_date,omitempty"`
	CompletedAt      string        `json:"completed_at,omitempty"`
	CreatedByUserID  string        `json:"created_by_user_id"`
	Comments         []TaskComment `json:"comments"`
}
