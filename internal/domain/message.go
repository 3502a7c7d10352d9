package domain

import "time"

// Message types.
const (
	MessageText   = "text"
	MessageSystem = "system"
	MessageMedia  = "media"
)

// Message is a chat entry within a scene. Messages are immutable once
// created; the only way they disappear is the scene delete cascade.
type Message struct {
	ID        uint   `gorm:"primaryKey"`
	SceneID   uint   `gorm:"index;not null"`
	SenderID  uint   `gorm:"not null"`
	Content   string `gorm:"type:text;not null"`
	Type      string `gorm:"type:varchar(16);not null;default:'text'"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
}

// ValidMessageType reports whether t is one of the supported message
// types.
func ValidMessageType(t string) bool {
	return t == MessageText || t == MessageSystem || t == MessageMedia
}
