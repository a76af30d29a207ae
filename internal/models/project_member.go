package models

import "time"

type MemberRole string

const (
	RoleOwner  MemberRole = "owner"
	RoleAdmin  MemberRole = "admin"
	RoleMember MemberRole = "member"
)

// ProjectMember — связь "проект — участник". Логическая идентичность
// составная: (project_id, user_id).
type ProjectMember struct {
	ID string `gorm:"primaryKey;size:64" json:"id"`

	ProjectID string     `gorm:"size:64;not null;index:idx_project_user,unique" json:"project_id"`
	UserID    string     `gorm:"size:64;not null;index:idx_project_user,unique" json:"user_id"`
	Role      MemberRole `gorm:"type:varchar(10);not null" json:"role"`

	JoinedAt time.Time `json:"joined_at"`
}

func ValidMemberRole(r MemberRole) bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleMember:
		return true
	}
	return false
}
