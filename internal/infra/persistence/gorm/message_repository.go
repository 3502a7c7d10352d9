package gormpersistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/zach0583-rgb/ThatZachGuy/internal/domain"
)

// GormMessageRepository is the GORM implementation of
// MessageRepository.
type GormMessageRepository struct {
	db *gorm.DB
}

// NewGormMessageRepository creates a GormMessageRepository.
func NewGormMessageRepository(db *gorm.DB) *GormMessageRepository {
	if db == nil {
		panic("database connection cannot be nil for GormMessageRepository")
	}
	return &GormMessageRepository{db: db}
}

// FindByScene fetches newest-first so offset pagination walks
// backwards through history.
func (r *GormMessageRepository) FindByScene(ctx context.Context, sceneID uint, limit, offset int) ([]domain.Message, error) {
	var messages []domain.Message
	err := r.db.WithContext(ctx).
		Where("scene_id = ?", sceneID).
		Order("created_at DESC, id DESC").
		Offset(offset).Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("gorm: find messages for scene %d: %w", sceneID, err)
	}
	return messages, nil
}

func (r *GormMessageRepository) Save(ctx context.Context, msg *domain.Message) error {
	if err := r.db.WithContext(ctx).Create(msg).Error; err != nil {
		return fmt.Errorf("gorm: save message (scene: %d, sender: %d): %w", msg.SceneID, msg.SenderID, err)
	}
	return nil
}

func (r *GormMessageRepository) DeleteByScene(ctx context.Context, sceneID uint) error {
	err := r.db.WithContext(ctx).Where("scene_id = ?", sceneID).Delete(&domain.Message{}).Error
	if err != nil {
		return fmt.Errorf("gorm: delete messages for scene %d: %w", sceneID, err)
	}
	return nil
}
