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

// artworkRow is the stored shape of an artwork. Tags and the
// type-specific metadata live in JSON columns.
type artworkRow struct {
	ID          string `gorm:"primaryKey;type:varchar(36)"`
	ArtistID    uint   `gorm:"index;not null"`
	SuiteID     string `gorm:"type:varchar(32);index;not null"`
	Title       string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:text"`
	Type        string `gorm:"type:varchar(16);not null"`
	Filename    string `gorm:"type:varchar(191);not null"`
	MimeType    string `gorm:"type:varchar(128);not null"`
	FileSize    int64  `gorm:"not null"`
	Metadata    datatypes.JSON
	Tags        datatypes.JSON
	Likes       int64 `gorm:"not null;default:0"`
	Views       int64 `gorm:"not null;default:0"`
	IsPublic    bool  `gorm:"not null;default:true;index"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time
}

func (artworkRow) TableName() string { return "artworks" }

func (row *artworkRow) toDomain() (*domain.Artwork, error) {
	art := &domain.Artwork{
		ID:          row.ID,
		ArtistID:    row.ArtistID,
		SuiteID:     row.SuiteID,
		Title:       row.Title,
		Description: row.Description,
		Type:        row.Type,
		Filename:    row.Filename,
		MimeType:    row.MimeType,
		FileSize:    row.FileSize,
		Tags:        []string{},
		Likes:       row.Likes,
		Views:       row.Views,
		IsPublic:    row.IsPublic,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
	if len(row.Tags) > 0 {
		if err := json.Unmarshal(row.Tags, &art.Tags); err != nil {
			return nil, fmt.Errorf("%w: artwork %s tags: %v", repository.ErrCorruptData, row.ID, err)
		}
	}
	if len(row.Metadata) > 0 {
		if err := json.Unmarshal(row.Metadata, &art.Metadata); err != nil {
			return nil, fmt.Errorf("%w: artwork %s metadata: %v", repository.ErrCorruptData, row.ID, err)
		}
	}
	return art, nil
}

func encodeTags(tags []string) (datatypes.JSON, error) {
	if tags == nil {
		tags = []string{}
	}
	raw, err := json.Marshal(tags)
	if err != nil {
		return nil, fmt.Errorf("gorm: encode artwork tags: %w", err)
	}
	return datatypes.JSON(raw), nil
}

// GormArtworkRepository is the GORM implementation of
// ArtworkRepository.
type GormArtworkRepository struct {
	db *gorm.DB
}

// NewGormArtworkRepository creates a GormArtworkRepository.
func NewGormArtworkRepository(db *gorm.DB) *GormArtworkRepository {
	if db == nil {
		panic("database connection cannot be nil for GormArtworkRepository")
	}
	return &GormArtworkRepository{db: db}
}

func (r *GormArtworkRepository) FindByID(ctx context.Context, id string) (*domain.Artwork, error) {
	var row artworkRow
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("gorm: find artwork by id %s: %w", id, err)
	}
	return row.toDomain()
}

func (r *GormArtworkRepository) FindBySuite(ctx context.Context, suiteID string) ([]domain.Artwork, error) {
	var rows []artworkRow
	err := r.db.WithContext(ctx).
		Where("suite_id = ?", suiteID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("gorm: find artworks for suite %s: %w", suiteID, err)
	}
	return artworkRowsToDomain(rows)
}

func (r *GormArtworkRepository) FindPublic(ctx context.Context) ([]domain.Artwork, error) {
	var rows []artworkRow
	err := r.db.WithContext(ctx).
		Where("is_public = ?", true).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("gorm: find public artworks: %w", err)
	}
	return artworkRowsToDomain(rows)
}

func artworkRowsToDomain(rows []artworkRow) ([]domain.Artwork, error) {
	artworks := make([]domain.Artwork, 0, len(rows))
	for i := range rows {
		art, err := rows[i].toDomain()
		if err != nil {
			return nil, err
		}
		artworks = append(artworks, *art)
	}
	return artworks, nil
}

func (r *GormArtworkRepository) CountBySuite(ctx context.Context, suiteID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&artworkRow{}).
		Where("suite_id = ?", suiteID).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("gorm: count artworks for suite %s: %w", suiteID, err)
	}
	return count, nil
}

func (r *GormArtworkRepository) Save(ctx context.Context, artwork *domain.Artwork) error {
	tags, err := encodeTags(artwork.Tags)
	if err != nil {
		return err
	}
	var metadata datatypes.JSON
	if artwork.Metadata != nil {
		raw, err := json.Marshal(artwork.Metadata)
		if err != nil {
			return fmt.Errorf("gorm: encode artwork metadata: %w", err)
		}
		metadata = datatypes.JSON(raw)
	}
	row := artworkRow{
		ID:          artwork.ID,
		ArtistID:    artwork.ArtistID,
		SuiteID:     artwork.SuiteID,
		Title:       artwork.Title,
		Description: artwork.Description,
		Type:        artwork.Type,
		Filename:    artwork.Filename,
		MimeType:    artwork.MimeType,
		FileSize:    artwork.FileSize,
		Metadata:    metadata,
		Tags:        tags,
		Likes:       artwork.Likes,
		Views:       artwork.Views,
		IsPublic:    artwork.IsPublic,
		UpdatedAt:   time.Now().UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isDuplicateEntryError(err) {
			return repository.ErrDuplicateEntry
		}
		return fmt.Errorf("gorm: save artwork %s: %w", artwork.ID, err)
	}
	artwork.CreatedAt = row.CreatedAt
	artwork.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *GormArtworkRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	if tags, ok := fields["tags"].([]string); ok {
		encoded, err := encodeTags(tags)
		if err != nil {
			return err
		}
		fields["tags"] = encoded
	}
	err := r.db.WithContext(ctx).Model(&artworkRow{}).Where("id = ?", id).Updates(fields).Error
	if err != nil {
		return fmt.Errorf("gorm: update artwork %s: %w", id, err)
	}
	return nil
}

func (r *GormArtworkRepository) Delete(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&artworkRow{}).Error
	if err != nil {
		return fmt.Errorf("gorm: delete artwork %s: %w", id, err)
	}
	return nil
}

func (r *GormArtworkRepository) IncrementViews(ctx context.Context, id string) error {
	return r.increment(ctx, id, "views")
}

func (r *GormArtworkRepository) IncrementLikes(ctx context.Context, id string) error {
	return r.increment(ctx, id, "likes")
}

// increment is atomic at the row level; concurrent bumps never lose
// counts.
func (r *GormArtworkRepository) increment(ctx context.Context, id, column string) error {
	res := r.db.WithContext(ctx).Model(&artworkRow{}).Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(column+" + 1"))
	if res.Error != nil {
		return fmt.Errorf("gorm: increment %s for artwork %s: %w", column, id, res.Error)
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
