package repository

import (
	"context"

	"github.com/zach0583-rgb/ThatZachGuy/internal/domain"
)

// MediaRepository defines storage operations for scene media records.
type MediaRepository interface {
	// FindByScene returns the scene's media records, newest first.
	FindByScene(ctx context.Context, sceneID uint) ([]domain.Media, error)

	// Save inserts a media record and fills in its generated id.
	Save(ctx context.Context, media *domain.Media) error

	// DeleteByScene removes every media record for the scene. Used
	// only by the scene delete cascade.
	DeleteByScene(ctx context.Context, sceneID uint) error
}
