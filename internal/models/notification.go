package models

import "time"

type NotificationType string
type ReferenceType string

const (
	NotifTaskAssigned NotificationType = "task_assigned"
	NotifComment      NotificationType = "comment"
	NotifMention      NotificationType = "mention"
	NotifStatusChange NotificationType = "status_change"

	RefTask    ReferenceType = "task"
	RefProject ReferenceType = "project"
)

type Notification struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	UserID string           `gorm:"size:64;not null;index" json:"user_id"`
	Type   NotificationType `gorm:"type:varchar(20);not null" json:"type"`

	Title   string  `gorm:"size:255;not null" json:"title"`
	Content *string `gorm:"type:text" json:"content"`

	ReferenceID   *string        `gorm:"size:64" json:"reference_id"`
	ReferenceType *ReferenceType `gorm:"type:varchar(10)" json:"reference_type"`

	IsRead bool `gorm:"not null;default:false" json:"is_read"`
}

type NotificationInsert struct {
	UserID        string           `json:"user_id"`
	Type          NotificationType `json:"type"`
	Title         string           `json:"title"`
	Content       *string          `json:"content"`
	ReferenceID   *string          `json:"reference_id"`
	ReferenceType *ReferenceType   `json:"reference_type"`
}
