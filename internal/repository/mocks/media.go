package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/zach0583-rgb/ThatZachGuy/internal/domain"
)

// MediaRepository is a mock of repository.MediaRepository.
type MediaRepository struct {
	mock.Mock
}

func (m *MediaRepository) FindByScene(ctx context.Context, sceneID uint) ([]domain.Media, error) {
	args := m.Called(ctx, sceneID)
	media, _ := args.Get(0).([]domain.Media)
	return media, args.Error(1)
}

func (m *MediaRepository) Save(ctx context.Context, media *domain.Media) error {
	args := m.Called(ctx, media)
	return args.Error(0)
}

func (m *MediaRepository) DeleteByScene(ctx context.Context, sceneID uint) error {
	args := m.Called(ctx, sceneID)
	return args.Error(0)
}
