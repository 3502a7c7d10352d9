package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/zach0583-rgb/ThatZachGuy/internal/domain"
)

// ArtworkRepository is a mock of repository.ArtworkRepository.
type ArtworkRepository struct {
	mock.Mock
}

func (m *ArtworkRepository) FindByID(ctx context.Context, id string) (*domain.Artwork, error) {
	args := m.Called(ctx, id)
	artwork, _ := args.Get(0).(*domain.Artwork)
	return artwork, args.Error(1)
}

func (m *ArtworkRepository) FindBySuite(ctx context.Context, suiteID string) ([]domain.Artwork, error) {
	args := m.Called(ctx, suiteID)
	artworks, _ := args.Get(0).([]domain.Artwork)
	return artworks, args.Error(1)
}

func (m *ArtworkRepository) FindPublic(ctx context.Context) ([]domain.Artwork, error) {
	args := m.Called(ctx)
	artworks, _ := args.Get(0).([]domain.Artwork)
	return artworks, args.Error(1)
}

func (m *ArtworkRepository) CountBySuite(ctx context.Context, suiteID string) (int64, error) {
	args := m.Called(ctx, suiteID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ArtworkRepository) Save(ctx context.Context, artwork *domain.Artwork) error {
	args := m.Called(ctx, artwork)
	return args.Error(0)
}

func (m *ArtworkRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *ArtworkRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ArtworkRepository) IncrementViews(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ArtworkRepository) IncrementLikes(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
