package repository

import (
	"context"

	"github.com/zach0583-rgb/ThatZachGuy/internal/domain"
)

// ArtworkRepository defines storage operations for artworks.
type ArtworkRepository interface {
	// FindByID looks up an artwork, returning ErrNotFound if absent
	// and ErrCorruptData if stored tags or metadata fail to decode.
	FindByID(ctx context.Context, id string) (*domain.Artwork, error)

	// FindBySuite returns all artworks attached to the suite.
	FindBySuite(ctx context.Context, suiteID string) ([]domain.Artwork, error)

	// FindPublic returns all artworks with the public flag set.
	FindPublic(ctx context.Context) ([]domain.Artwork, error)

	// CountBySuite returns the number of artworks attached to the
	// suite.
	CountBySuite(ctx context.Context, suiteID string) (int64, error)

	// Save inserts the artwork record.
	Save(ctx context.Context, artwork *domain.Artwork) error

	// Update applies only the given column/value pairs. A value under
	// the "tags" key must be a []string; the repository handles its
	// encoding.
	Update(ctx context.Context, id string, fields map[string]interface{}) error

	// Delete removes the artwork record.
	Delete(ctx context.Context, id string) error

	// IncrementViews atomically bumps the view counter by one.
	IncrementViews(ctx context.Context, id string) error

	// IncrementLikes atomically bumps the like counter by one.
	IncrementLikes(ctx context.Context, id string) error
}
