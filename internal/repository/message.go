package repository

import (
	"context"

	"github.com/zach0583-rgb/ThatZachGuy/internal/domain"
)

// MessageRepository defines storage operations for scene chat
// messages. Messages are append-only; there is no update.
type MessageRepository interface {
	// FindByScene returns up to limit messages for the scene, newest
	// first, skipping offset records. Callers wanting chronological
	// order reverse the slice themselves.
	FindByScene(ctx context.Context, sceneID uint, limit, offset int) ([]domain.Message, error)

	// Save appends a message and fills in its generated id.
	Save(ctx context.Context, msg *domain.Message) error

	// DeleteByScene removes every message for the scene. Used only by
	// the scene delete cascade.
	DeleteByScene(ctx context.Context, sceneID uint) error
}
