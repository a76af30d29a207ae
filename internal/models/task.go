package models

import "time"

type TaskStatus string
type TaskPriority string

const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in_progress"
	TaskReview     TaskStatus = "review"
	TaskDone       TaskStatus = "done"

	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

type Task struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ProjectID string `gorm:"size:64;not null;index" json:"project_id"`

	Title       string       `gorm:"size:255;not null" json:"title"`
	Description *string      `gorm:"type:text" json:"description"`
	Status      TaskStatus   `gorm:"type:varchar(20);not null" json:"status"`
	Priority    TaskPriority `gorm:"type:varchar(10);not null" json:"priority"`

	DueDate    *time.Time `json:"due_date"`
	AssigneeID *string    `gorm:"size:64" json:"assignee_id"`
	CreatedBy  *string    `gorm:"size:64" json:"created_by"`
}

type TaskInsert struct {
	ProjectID   string       `json:"project_id"`
	Title       string       `json:"title"`
	Description *string      `json:"description"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
	DueDate     *time.Time   `json:"due_date"`
	AssigneeID  *string      `json:"assignee_id"`
	CreatedBy   *string      `json:"created_by"`
}

type TaskUpdate struct {
	ProjectID   *string       `json:"project_id"`
	Title       *string       `json:"title"`
	Description *string       `json:"description"`
	Status      *TaskStatus   `json:"status"`
	Priority    *TaskPriority `json:"priority"`
	DueDate     *time.Time    `json:"due_date"`
	AssigneeID  *string       `json:"assignee_id"`
}

// Комментарий к задаче.
type TaskComment struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	TaskID  string `gorm:"size:64;not null;index" json:"task_id"`
	UserID  string `gorm:"size:64;not null" json:"user_id"`
	Content string `gorm:"type:text;not null" json:"content"`
}

func ValidTaskStatus(s TaskStatus) bool {
	switch s {
	case TaskTodo, TaskInProgress, TaskReview, TaskDone:
		return true
	}
	return false
}

func ValidTaskPriority(p TaskPriority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}
