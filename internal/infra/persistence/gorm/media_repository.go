package gormpersistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/zach0583-rgb/ThatZachGuy/internal/domain"
)

// GormMediaRepository is the GORM implementation of MediaRepository.
type GormMediaRepository struct {
	db *gorm.DB
}

// NewGormMediaRepository creates a GormMediaRepository.
func NewGormMediaRepository(db *gorm.DB) *GormMediaRepository {
	if db == nil {
		panic("database connection cannot be nil for GormMediaRepository")
	}
	return &GormMediaRepository{db: db}
}

func (r *GormMediaRepository) FindByScene(ctx context.Context, sceneID uint) ([]domain.Media, error) {
	var media []domain.Media
	err := r.db.WithContext(ctx).
		Where("scene_id = ?", sceneID).
		Order("uploaded_at DESC, id DESC").
		Find(&media).Error
	if err != nil {
		return nil, fmt.Errorf("gorm: find media for scene %d: %w", sceneID, err)
	}
	return media, nil
}

func (r *GormMediaRepository) Save(ctx context.Context, media *domain.Media) error {
	if err := r.db.WithContext(ctx).Create(media).Error; err != nil {
		return fmt.Errorf("gorm: save media (scene: %d, file: %s): %w", media.SceneID, media.Filename, err)
	}
	return nil
}

func (r *GormMediaRepository) DeleteByScene(ctx context.Context, sceneID uint) error {
	err := r.db.WithContext(ctx).Where("scene_id = ?", sceneID).Delete(&domain.Media{}).Error
	if err != nil {
		return fmt.Errorf("gorm: delete media for scene %d: %w", sceneID, err)
	}
	return nil
}
