package domain

import "time"

// Media is a file uploaded into a scene. Filename is the generated
// blob name on disk; OriginalName is whatever the client called it,
// kept for display only.
type Media struct {
	ID           uint   `gorm:"primaryKey"`
	SceneID      uint   `gorm:"index;not null"`
	UploadedBy   uint   `gorm:"not null"`
	Filename     string `gorm:"type:varchar(191);not null"`
	OriginalName string `gorm:"type:varchar(255)"`
	MimeType     string `gorm:"type:varchar(128);not null"`
	Size         int64  `gorm:"not null"`
	Type         string `gorm:"type:varchar(16);not null"`
	UploadedAt   time.Time `gorm:"autoCreateTime"`
}
