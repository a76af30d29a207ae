package models

import "time"

type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "active"
	ProjectCompleted ProjectStatus = "completed"
	ProjectOnHold    ProjectStatus = "on_hold"
)

type Project struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name        string        `gorm:"size:255;not null" json:"name"`
	Description *string       `gorm:"type:text" json:"description"`
	Status      ProjectStatus `gorm:"type:varchar(20);not null" json:"status"`

	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`

	DemoURL       *string `gorm:"size:512" json:"demo_url"`
	ProductionURL *string `gorm:"size:512" json:"production_url"`
	GithubURL     *string `gorm:"size:512" json:"github_url"`

	CreatedBy *string `gorm:"size:64" json:"created_by"`
}

// ProjectInsert — то, что приходит от клиента; id и таймстемпы назначает хранилище.
type ProjectInsert struct {
	Name          string        `json:"name"`
	Description   *string       `json:"description"`
	Status        ProjectStatus `json:"status"`
	StartDate     *time.Time    `json:"start_date"`
	EndDate       *time.Time    `json:"end_date"`
	DemoURL       *string       `json:"demo_url"`
	ProductionURL *string       `json:"production_url"`
	GithubURL     *string       `json:"github_url"`
	CreatedBy     *string       `json:"created_by"`
}

type ProjectUpdate struct {
	Name          *string        `json:"name"`
	Description   *string        `json:"description"`
	Status        *ProjectStatus `json:"status"`
	StartDate     *time.Time     `json:"start_date"`
	EndDate       *time.Time     `json:"end_date"`
	DemoURL       *string        `json:"demo_url"`
	ProductionURL *string        `json:"production_url"`
	GithubURL     *string        `json:"github_url"`
}

func ValidProjectStatus(s ProjectStatus) bool {
	switch s {
	case ProjectActive, ProjectCompleted, ProjectOnHold:
		return true
	}
	return false
}
