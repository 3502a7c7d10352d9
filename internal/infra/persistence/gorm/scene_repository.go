package gormpersistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/zach0583-rgb/ThatZachGuy/internal/domain"
	"github.com/zach0583-rgb/ThatZachGuy/internal/repository"
)

// sceneRow is the stored shape of a scene. The placed objects live in
// a JSON column and are decoded into typed SceneObjects on read.
type sceneRow struct {
	ID            uint   `gorm:"primaryKey"`
	Name          string `gorm:"type:varchar(191);not null"`
	Description   string `gorm:"type:text"`
	Background    string `gorm:"type:varchar(64);not null"`
	Objects       datatypes.JSON
	OwnerID       uint `gorm:"index;not null"`
	IsPublic      bool `gorm:"not null;default:false"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time
	Collaborators []collaboratorRow `gorm:"foreignKey:SceneID"`
}

func (sceneRow) TableName() string { return "scenes" }

// collaboratorRow stores one collaborator entry. The composite unique
// index enforces at most one entry per (scene, user) pair.
type collaboratorRow struct {
	ID          uint `gorm:"primaryKey"`
	SceneID     uint `gorm:"uniqueIndex:idx_scene_user;not null"`
	UserID      uint `gorm:"uniqueIndex:idx_scene_user;not null"`
	Permissions datatypes.JSON
	Status      string    `gorm:"type:varchar(16);not null"`
	InvitedAt   time.Time `gorm:"not null"`
}

func (collaboratorRow) TableName() string { return "scene_collaborators" }

func (row *sceneRow) toDomain() (*domain.Scene, error) {
	scene := &domain.Scene{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Background:  row.Background,
		Objects:     []domain.SceneObject{},
		OwnerID:     row.OwnerID,
		IsPublic:    row.IsPublic,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
	if len(row.Objects) > 0 {
		if err := json.Unmarshal(row.Objects, &scene.Objects); err != nil {
			return nil, fmt.Errorf("%w: scene %d objects: %v", repository.ErrCorruptData, row.ID, err)
		}
	}
	scene.Collaborators = make([]domain.Collaborator, 0, len(row.Collaborators))
	for _, c := range row.Collaborators {
		perms := []string{}
		if len(c.Permissions) > 0 {
			if err := json.Unmarshal(c.Permissions, &perms); err != nil {
				return nil, fmt.Errorf("%w: scene %d collaborator %d permissions: %v",
					repository.ErrCorruptData, row.ID, c.UserID, err)
			}
		}
		scene.Collaborators = append(scene.Collaborators, domain.Collaborator{
			UserID:      c.UserID,
			Permissions: perms,
			Status:      c.Status,
			InvitedAt:   c.InvitedAt,
		})
	}
	return scene, nil
}

func encodeObjects(objects []domain.SceneObject) (datatypes.JSON, error) {
	if objects == nil {
		objects = []domain.SceneObject{}
	}
	raw, err := json.Marshal(objects)
	if err != nil {
		return nil, fmt.Errorf("gorm: encode scene objects: %w", err)
	}
	return datatypes.JSON(raw), nil
}

// GormSceneRepository is the GORM implementation of SceneRepository.
type GormSceneRepository struct {
	db *gorm.DB
}

// NewGormSceneRepository creates a GormSceneRepository.
func NewGormSceneRepository(db *gorm.DB) *GormSceneRepository {
	if db == nil {
		panic("database connection cannot be nil for GormSceneRepository")
	}
	return &GormSceneRepository{db: db}
}

func (r *GormSceneRepository) FindByID(ctx context.Context, id uint) (*domain.Scene, error) {
	var row sceneRow
	err := r.db.WithContext(ctx).Preload("Collaborators").First(&row, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("gorm: find scene by id %d: %w", id, err)
	}
	return row.toDomain()
}

func (r *GormSceneRepository) FindByOwner(ctx context.Context, ownerID uint) ([]domain.Scene, error) {
	var rows []sceneRow
	err := r.db.WithContext(ctx).Preload("Collaborators").
		Where("owner_id = ?", ownerID).Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("gorm: find scenes by owner %d: %w", ownerID, err)
	}
	return rowsToDomain(rows)
}

func (r *GormSceneRepository) FindByCollaborator(ctx context.Context, userID uint) ([]domain.Scene, error) {
	var rows []sceneRow
	err := r.db.WithContext(ctx).Preload("Collaborators").
		Joins("JOIN scene_collaborators sc ON sc.scene_id = scenes.id").
		Where("sc.user_id = ? AND sc.status = ?", userID, domain.CollaboratorActive).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("gorm: find scenes by collaborator %d: %w", userID, err)
	}
	return rowsToDomain(rows)
}

func rowsToDomain(rows []sceneRow) ([]domain.Scene, error) {
	scenes := make([]domain.Scene, 0, len(rows))
	for i := range rows {
		scene, err := rows[i].toDomain()
		if err != nil {
			return nil, err
		}
		scenes = append(scenes, *scene)
	}
	return scenes, nil
}

func (r *GormSceneRepository) Save(ctx context.Context, scene *domain.Scene) error {
	objects, err := encodeObjects(scene.Objects)
	if err != nil {
		return err
	}
	row := sceneRow{
		Name:        scene.Name,
		Description: scene.Description,
		Background:  scene.Background,
		Objects:     objects,
		OwnerID:     scene.OwnerID,
		IsPublic:    scene.IsPublic,
		UpdatedAt:   time.Now().UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("gorm: save scene (owner: %d, name: %s): %w", scene.OwnerID, scene.Name, err)
	}
	scene.ID = row.ID
	scene.CreatedAt = row.CreatedAt
	scene.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *GormSceneRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	if objects, ok := fields["objects"].([]domain.SceneObject); ok {
		encoded, err := encodeObjects(objects)
		if err != nil {
			return err
		}
		fields["objects"] = encoded
	}
	err := r.db.WithContext(ctx).Model(&sceneRow{}).Where("id = ?", id).Updates(fields).Error
	if err != nil {
		return fmt.Errorf("gorm: update scene %d: %w", id, err)
	}
	return nil
}

func (r *GormSceneRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("scene_id = ?", id).Delete(&collaboratorRow{}).Error; err != nil {
			return err
		}
		return tx.Delete(&sceneRow{}, id).Error
	})
	if err != nil {
		return fmt.Errorf("gorm: delete scene %d: %w", id, err)
	}
	return nil
}

func (r *GormSceneRepository) AddCollaborator(ctx context.Context, sceneID uint, c domain.Collaborator) error {
	perms := c.Permissions
	if perms == nil {
		perms = []string{}
	}
	raw, err := json.Marshal(perms)
	if err != nil {
		return fmt.Errorf("gorm: encode collaborator permissions: %w", err)
	}
	row := collaboratorRow{
		SceneID:     sceneID,
		UserID:      c.UserID,
		Permissions: datatypes.JSON(raw),
		Status:      c.Status,
		InvitedAt:   c.InvitedAt,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isDuplicateEntryError(err) {
			return repository.ErrDuplicateEntry
		}
		return fmt.Errorf("gorm: add collaborator (scene: %d, user: %d): %w", sceneID, c.UserID, err)
	}
	return nil
}

func (r *GormSceneRepository) UpdateCollaboratorStatus(ctx context.Context, sceneID, userID uint, status string) error {
	res := r.db.WithContext(ctx).Model(&collaboratorRow{}).
		Where("scene_id = ? AND user_id = ?", sceneID, userID).
		Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("gorm: update collaborator status (scene: %d, user: %d): %w", sceneID, userID, res.Error)
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
