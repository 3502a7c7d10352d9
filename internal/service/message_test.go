package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/zach0583-rgb/ThatZachGuy/internal/domain"
	"github.com/zach0583-rgb/ThatZachGuy/internal/repository"
	"github.com/zach0583-rgb/ThatZachGuy/internal/repository/mocks"
	"github.com/zach0583-rgb/ThatZachGuy/internal/service"
)

func newMessageService() (*service.MessageService, *mocks.MessageRepository, *mocks.SceneRepository, *mocks.UserRepository) {
	messageRepo := new(mocks.MessageRepository)
	sceneRepo := new(mocks.SceneRepository)
	userRepo := new(mocks.UserRepository)
	return service.NewMessageService(messageRepo, sceneRepo, userRepo), messageRepo, sceneRepo, userRepo
}

func TestMessageService_List_ReversesToChronological(t *testing.T) {
	svc, messageRepo, sceneRepo, userRepo := newMessageService()
	ctx := context.Background()
	base := time.Now().UTC()

	sceneRepo.On("FindByID", ctx, uint(5)).Return(&domain.Scene{ID: 5, OwnerID: 1}, nil).Once()
	// Store hands back newest first.
	messageRepo.On("FindByScene", ctx, uint(5), 3, 0).
		Return([]domain.Message{
			{ID: 3, SceneID: 5, SenderID: 1, Content: "third", CreatedAt: base.Add(2 * time.Second)},
			{ID: 2, SceneID: 5, SenderID: 1, Content: "second", CreatedAt: base.Add(time.Second)},
			{ID: 1, SceneID: 5, SenderID: 1, Content: "first", CreatedAt: base},
		}, nil).
		Once()
	userRepo.On("FindByID", ctx, uint(1)).Return(&domain.User{ID: 1, Name: "Ada"}, nil)

	details, err := svc.List(ctx, 5, 1, 3, 0)

	require.NoError(t, err)
	require.Len(t, details, 3)
	assert.Equal(t, "first", details[0].Message.Content)
	assert.Equal(t, "second", details[1].Message.Content)
	assert.Equal(t, "third", details[2].Message.Content)
	messageRepo.AssertExpectations(t)
	sceneRepo.AssertExpectations(t)
}

func TestMessageService_List_DefaultLimit(t *testing.T) {
	svc, messageRepo, sceneRepo, _ := newMessageService()
	ctx := context.Background()

	sceneRepo.On("FindByID", ctx, uint(5)).Return(&domain.Scene{ID: 5, OwnerID: 1}, nil).Once()
	messageRepo.On("FindByScene", ctx, uint(5), service.DefaultMessageLimit, 0).
		Return([]domain.Message{}, nil).
		Once()

	_, err := svc.List(ctx, 5, 1, 0, -4)

	require.NoError(t, err)
	messageRepo.AssertExpectations(t)
}

func TestMessageService_List_RequiresViewAccess(t *testing.T) {
	svc, messageRepo, sceneRepo, _ := newMessageService()
	ctx := context.Background()

	sceneRepo.On("FindByID", ctx, uint(5)).
		Return(&domain.Scene{ID: 5, OwnerID: 1, IsPublic: false}, nil).
		Once()

	_, err := svc.List(ctx, 5, 99, 10, 0)

	assert.True(t, errors.Is(err, service.ErrAccessDenied))
	messageRepo.AssertNotCalled(t, "FindByScene", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestMessageService_Send_DefaultsToText(t *testing.T) {
	svc, messageRepo, sceneRepo, userRepo := newMessageService()
	ctx := context.Background()

	sceneRepo.On("FindByID", ctx, uint(5)).Return(&domain.Scene{ID: 5, OwnerID: 1}, nil).Once()
	messageRepo.On("Save", ctx, mock.MatchedBy(func(msg *domain.Message) bool {
		assert.Equal(t, domain.MessageText, msg.Type)
		assert.Equal(t, "hello", msg.Content)
		return true
	})).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Message).ID = 12
		}).
		Return(nil).
		Once()
	userRepo.On("FindByID", ctx, uint(1)).Return(&domain.User{ID: 1, Name: "Ada"}, nil).Once()

	details, err := svc.Send(ctx, 5, 1, "hello", "")

	require.NoError(t, err)
	assert.Equal(t, uint(12), details.Message.ID)
	assert.Equal(t, "Ada", details.Sender.Name)
	messageRepo.AssertExpectations(t)
}

func TestMessageService_Send_RejectsUnknownType(t *testing.T) {
	svc, messageRepo, sceneRepo, _ := newMessageService()
	ctx := context.Background()

	_, err := svc.Send(ctx, 5, 1, "hello", "broadcast")

	assert.True(t, errors.Is(err, service.ErrInvalidMessageType))
	// Rejected before any store access.
	sceneRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	messageRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestMessageService_Send_ViewerMayPost(t *testing.T) {
	svc, messageRepo, sceneRepo, userRepo := newMessageService()
	ctx := context.Background()

	// View-only collaborator: chat does not require edit permission.
	sceneRepo.On("FindByID", ctx, uint(5)).
		Return(&domain.Scene{
			ID: 5, OwnerID: 1,
			Collaborators: []domain.Collaborator{{
				UserID:      2,
				Status:      domain.CollaboratorActive,
				Permissions: []string{domain.PermissionView},
			}},
		}, nil).
		Once()
	messageRepo.On("Save", ctx, mock.AnythingOfType("*domain.Message")).Return(nil).Once()
	userRepo.On("FindByID", ctx, uint(2)).Return(&domain.User{ID: 2, Name: "Bea"}, nil).Once()

	_, err := svc.Send(ctx, 5, 2, "hi", domain.MessageText)

	require.NoError(t, err)
	messageRepo.AssertExpectations(t)
}

func TestMessageService_Send_SceneNotFound(t *testing.T) {
	svc, _, sceneRepo, _ := newMessageService()
	ctx := context.Background()

	sceneRepo.On("FindByID", ctx, uint(404)).Return(nil, repository.ErrNotFound).Once()

	_, err := svc.Send(ctx, 404, 1, "hello", domain.MessageText)

	assert.True(t, errors.Is(err, service.ErrSceneNotFound))
	sceneRepo.AssertExpectations(t)
}
