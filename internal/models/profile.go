package models

import "time"

type PresenceStatus string

const (
	PresenceOnline  PresenceStatus = "online"
	PresenceAway    PresenceStatus = "away"
	PresenceOffline PresenceStatus = "offline"
)

// Profile — участник команды. Пароль храним только как bcrypt-хеш.
type Profile struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	FullName     string     `gorm:"size:255;not null" json:"full_name"`
	Email        string     `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string     `gorm:"size:255" json:"-"`
	JobTitle     *string    `gorm:"size:255" json:"job_title"`
	Bio          *string    `gorm:"type:text" json:"bio"`
	AvatarURL    *string    `gorm:"size:512" json:"avatar_url"`
	LastLogin    *time.Time `json:"last_login"`
}

type ProfileUpdate struct {
	FullName  *string `json:"full_name"`
	Email     *string `json:"email"`
	JobTitle  *string `json:"job_title"`
	Bio       *string `json:"bio"`
	AvatarURL *string `json:"avatar_url"`

	// Сырой пароль из запроса. Стор хеширует его в PasswordHash,
	// в хранилище сырой пароль не попадает.
	Password *string `json:"password"`

	PasswordHash *string    `json:"-"`
	LastLogin    *time.Time `json:"-"`
}

// Presence — "online" при активности младше 15 минут, "away" до часа,
// дальше "offline".
func (p Profile) Presence(now time.Time) PresenceStatus {
	if p.LastLogin == nil {
		return PresenceOffline
	}
	since := now.Sub(*p.LastLogin)
	switch {
	case since < 15*time.Minute:
		return PresenceOnline
	case since < 60*time.Minute:
		return PresenceAway
	default:
		return PresenceOffline
	}
}
