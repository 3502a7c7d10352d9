package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/zach0583-rgb/ThatZachGuy/internal/domain"
)

// SceneRepository is a mock of repository.SceneRepository.
type SceneRepository struct {
	mock.Mock
}

func (m *SceneRepository) FindByID(ctx context.Context, id uint) (*domain.Scene, error) {
	args := m.Called(ctx, id)
	scene, _ := args.Get(0).(*domain.Scene)
	return scene, args.Error(1)
}

func (m *SceneRepository) FindByOwner(ctx context.Context, ownerID uint) ([]domain.Scene, error) {
	args := m.Called(ctx, ownerID)
	scenes, _ := args.Get(0).([]domain.Scene)
	return scenes, args.Error(1)
}

func (m *SceneRepository) FindByCollaborator(ctx context.Context, userID uint) ([]domain.Scene, error) {
	args := m.Called(ctx, userID)
	scenes, _ := args.Get(0).([]domain.Scene)
	return scenes, args.Error(1)
}

func (m *SceneRepository) Save(ctx context.Context, scene *domain.Scene) error {
	args := m.Called(ctx, scene)
	return args.Error(0)
}

func (m *SceneRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *SceneRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *SceneRepository) AddCollaborator(ctx context.Context, sceneID uint, c domain.Collaborator) error {
	args := m.Called(ctx, sceneID, c)
	return args.Error(0)
}

func (m *SceneRepository) UpdateCollaboratorStatus(ctx context.Context, sceneID, userID uint, status string) error {
	args := m.Called(ctx, sceneID, userID, status)
	return args.Error(0)
}
