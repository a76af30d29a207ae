package models

import "time"

// Метаданные файла проекта. Само содержимое живёт во внешнем хранилище,
// здесь только путь и размер.
type ProjectFile struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	ProjectID  string  `gorm:"size:64;not null;index" json:"project_id"`
	Name       string  `gorm:"size:255;not null" json:"name"`
	FilePath   string  `gorm:"size:512;not null" json:"file_path"`
	FileSize   *int64  `json:"file_size"`
	UploadedBy *string `gorm:"size:64" json:"uploaded_by"`
}

type ProjectFileInsert struct {
	ProjectID  string  `json:"project_id"`
	Name       string  `json:"name"`
	FilePath   string  `json:"file_path"`
	FileSize   *int64  `json:"file_size"`
	UploadedBy *string `json:"uploaded_by"`
}
