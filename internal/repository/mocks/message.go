package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/zach0583-rgb/ThatZachGuy/internal/domain"
)

// MessageRepository is a mock of repository.MessageRepository.
type MessageRepository struct {
	mock.Mock
}

func (m *MessageRepository) FindByScene(ctx context.Context, sceneID uint, limit, offset int) ([]domain.Message, error) {
	args := m.Called(ctx, sceneID, limit, offset)
	messages, _ := args.Get(0).([]domain.Message)
	return messages, args.Error(1)
}

func (m *MessageRepository) Save(ctx context.Context, msg *domain.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MessageRepository) DeleteByScene(ctx context.Context, sceneID uint) error {
	args := m.Called(ctx, sceneID)
	return args.Error(0)
}
