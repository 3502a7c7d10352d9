package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/zach0583-rgb/ThatZachGuy/internal/domain"
	"github.com/zach0583-rgb/ThatZachGuy/internal/repository"
	"github.com/zach0583-rgb/ThatZachGuy/internal/repository/mocks"
	"github.com/zach0583-rgb/ThatZachGuy/internal/service"
)

type sceneServiceMocks struct {
	scenes   *mocks.SceneRepository
	users    *mocks.UserRepository
	messages *mocks.MessageRepository
	media    *mocks.MediaRepository
	files    *mocks.FileStore
}

func newSceneService() (*service.SceneService, sceneServiceMocks) {
	m := sceneServiceMocks{
		scenes:   new(mocks.SceneRepository),
		users:    new(mocks.UserRepository),
		messages: new(mocks.MessageRepository),
		media:    new(mocks.MediaRepository),
		files:    new(mocks.FileStore),
	}
	svc := service.NewSceneService(m.scenes, m.users, m.messages, m.media, m.files)
	return svc, m
}

func (m sceneServiceMocks) assertAll(t *testing.T) {
	m.scenes.AssertExpectations(t)
	m.users.AssertExpectations(t)
	m.messages.AssertExpectations(t)
	m.media.AssertExpectations(t)
	m.files.AssertExpectations(t)
}

func TestSceneService_Create_DefaultsBackground(t *testing.T) {
	svc, m := newSceneService()
	ctx := context.Background()

	m.scenes.On("Save", ctx, mock.MatchedBy(func(scene *domain.Scene) bool {
		assert.Equal(t, service.DefaultBackground, scene.Background)
		assert.Equal(t, uint(1), scene.OwnerID)
		assert.Empty(t, scene.Collaborators)
		return true
	})).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Scene).ID = 9
		}).
		Return(nil).
		Once()
	m.users.On("FindByID", ctx, uint(1)).Return(&domain.User{ID: 1, Name: "Ada"}, nil).Once()

	details, err := svc.Create(ctx, 1, "studio", "", "", false)

	require.NoError(t, err)
	assert.Equal(t, uint(9), details.Scene.ID)
	assert.Equal(t, "Ada", details.OwnerName)
	m.assertAll(t)
}

func TestSceneService_Get_PrivateSceneDeniedNotHidden(t *testing.T) {
	svc, m := newSceneService()
	ctx := context.Background()

	m.scenes.On("FindByID", ctx, uint(5)).
		Return(&domain.Scene{ID: 5, OwnerID: 1, IsPublic: false}, nil).
		Once()

	_, err := svc.Get(ctx, 5, 99)

	// The scene exists but the caller lacks access; this must surface
	// as denial, not as a missing scene.
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrAccessDenied))
	m.assertAll(t)
}

func TestSceneService_Get_NotFound(t *testing.T) {
	svc, m := newSceneService()
	ctx := context.Background()

	m.scenes.On("FindByID", ctx, uint(404)).Return(nil, repository.ErrNotFound).Once()

	_, err := svc.Get(ctx, 404, 1)

	assert.True(t, errors.Is(err, service.ErrSceneNotFound))
	m.assertAll(t)
}

func TestSceneService_Get_InvitedCollaboratorCannotView(t *testing.T) {
	svc, m := newSceneService()
	ctx := context.Background()

	m.scenes.On("FindByID", ctx, uint(5)).
		Return(&domain.Scene{
			ID: 5, OwnerID: 1, IsPublic: false,
			Collaborators: []domain.Collaborator{{
				UserID:      2,
				Status:      domain.CollaboratorInvited,
				Permissions: []string{domain.PermissionView, domain.PermissionEdit},
			}},
		}, nil).
		Once()

	_, err := svc.Get(ctx, 5, 2)

	assert.True(t, errors.Is(err, service.ErrAccessDenied))
	m.assertAll(t)
}

func TestSceneService_Update_ViewOnlyCollaboratorDenied(t *testing.T) {
	svc, m := newSceneService()
	ctx := context.Background()
	name := "renamed"

	m.scenes.On("FindByID", ctx, uint(5)).
		Return(&domain.Scene{
			ID: 5, OwnerID: 1,
			Collaborators: []domain.Collaborator{{
				UserID:      2,
				Status:      domain.CollaboratorActive,
				Permissions: []string{domain.PermissionView},
			}},
		}, nil).
		Once()

	_, err := svc.Update(ctx, 5, 2, service.SceneUpdate{Name: &name})

	assert.True(t, errors.Is(err, service.ErrAccessDenied))
	m.assertAll(t)
	m.scenes.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestSceneService_Update_OnlySuppliedFields(t *testing.T) {
	svc, m := newSceneService()
	ctx := context.Background()
	name := "renamed"
	scene := &domain.Scene{ID: 5, OwnerID: 1}

	m.scenes.On("FindByID", ctx, uint(5)).Return(scene, nil).Twice()
	m.scenes.On("Update", ctx, uint(5), mock.MatchedBy(func(fields map[string]interface{}) bool {
		_, hasUpdatedAt := fields["updated_at"]
		_, hasDescription := fields["description"]
		_, hasObjects := fields["objects"]
		return fields["name"] == name && hasUpdatedAt && !hasDescription && !hasObjects
	})).Return(nil).Once()
	m.users.On("FindByID", ctx, uint(1)).Return(&domain.User{ID: 1, Name: "Ada"}, nil).Once()

	_, err := svc.Update(ctx, 5, 1, service.SceneUpdate{Name: &name})

	require.NoError(t, err)
	m.assertAll(t)
}

func TestSceneService_Delete_AdminCollaboratorDenied(t *testing.T) {
	svc, m := newSceneService()
	ctx := context.Background()

	m.scenes.On("FindByID", ctx, uint(5)).
		Return(&domain.Scene{
			ID: 5, OwnerID: 1,
			Collaborators: []domain.Collaborator{{
				UserID:      2,
				Status:      domain.CollaboratorActive,
				Permissions: []string{domain.PermissionView, domain.PermissionEdit, domain.PermissionAdmin},
			}},
		}, nil).
		Once()

	err := svc.Delete(ctx, 5, 2)

	assert.True(t, errors.Is(err, service.ErrAccessDenied))
	m.assertAll(t)
	m.scenes.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestSceneService_Delete_Cascade(t *testing.T) {
	svc, m := newSceneService()
	ctx := context.Background()

	m.scenes.On("FindByID", ctx, uint(5)).Return(&domain.Scene{ID: 5, OwnerID: 1}, nil).Once()
	m.media.On("FindByScene", ctx, uint(5)).
		Return([]domain.Media{{ID: 1, SceneID: 5, Filename: "abc.png"}}, nil).
		Once()
	m.scenes.On("Delete", ctx, uint(5)).Return(nil).Once()
	m.messages.On("DeleteByScene", ctx, uint(5)).Return(nil).Once()
	m.media.On("DeleteByScene", ctx, uint(5)).Return(nil).Once()
	m.files.On("Delete", ctx, "abc.png").Return(nil).Once()

	require.NoError(t, svc.Delete(ctx, 5, 1))
	m.assertAll(t)
}

func TestSceneService_Delete_CascadeFailuresStillSucceed(t *testing.T) {
	svc, m := newSceneService()
	ctx := context.Background()

	m.scenes.On("FindByID", ctx, uint(5)).Return(&domain.Scene{ID: 5, OwnerID: 1}, nil).Once()
	m.media.On("FindByScene", ctx, uint(5)).Return([]domain.Media{{Filename: "abc.png"}}, nil).Once()
	m.scenes.On("Delete", ctx, uint(5)).Return(nil).Once()
	m.messages.On("DeleteByScene", ctx, uint(5)).Return(errors.New("db down")).Once()
	m.media.On("DeleteByScene", ctx, uint(5)).Return(errors.New("db down")).Once()
	m.files.On("Delete", ctx, "abc.png").Return(errors.New("disk gone")).Once()

	// Once the scene record is gone the delete reports success.
	require.NoError(t, svc.Delete(ctx, 5, 1))
	m.assertAll(t)
}

func TestSceneService_Invite_Success(t *testing.T) {
	svc, m := newSceneService()
	ctx := context.Background()

	m.scenes.On("FindByID", ctx, uint(5)).Return(&domain.Scene{ID: 5, OwnerID: 1}, nil).Once()
	m.users.On("FindByEmail", ctx, "new@example.com").Return(&domain.User{ID: 7}, nil).Once()
	m.scenes.On("AddCollaborator", ctx, uint(5), mock.MatchedBy(func(c domain.Collaborator) bool {
		assert.Equal(t, uint(7), c.UserID)
		assert.Equal(t, domain.CollaboratorInvited, c.Status)
		assert.Equal(t, []string{domain.PermissionView, domain.PermissionEdit}, c.Permissions, "default grant is view+edit")
		return true
	})).Return(nil).Once()

	require.NoError(t, svc.Invite(ctx, 5, 1, "new@example.com", nil))
	m.assertAll(t)
}

func TestSceneService_Invite_UnknownEmail(t *testing.T) {
	svc, m := newSceneService()
	ctx := context.Background()

	m.scenes.On("FindByID", ctx, uint(5)).Return(&domain.Scene{ID: 5, OwnerID: 1}, nil).Once()
	m.users.On("FindByEmail", ctx, "nobody@example.com").Return(nil, repository.ErrNotFound).Once()

	err := svc.Invite(ctx, 5, 1, "nobody@example.com", nil)

	assert.True(t, errors.Is(err, service.ErrUserNotFound))
	m.assertAll(t)
}

func TestSceneService_Invite_RemovedEntryStillConflicts(t *testing.T) {
	svc, m := newSceneService()
	ctx := context.Background()

	m.scenes.On("FindByID", ctx, uint(5)).
		Return(&domain.Scene{
			ID: 5, OwnerID: 1,
			Collaborators: []domain.Collaborator{{UserID: 7, Status: domain.CollaboratorRemoved}},
		}, nil).
		Once()
	m.users.On("FindByEmail", ctx, "back@example.com").Return(&domain.User{ID: 7}, nil).Once()

	err := svc.Invite(ctx, 5, 1, "back@example.com", nil)

	// One entry per user for a scene's lifetime, whatever its status.
	assert.True(t, errors.Is(err, service.ErrAlreadyCollaborator))
	m.assertAll(t)
	m.scenes.AssertNotCalled(t, "AddCollaborator", mock.Anything, mock.Anything, mock.Anything)
}

func TestSceneService_Invite_DuplicateRace(t *testing.T) {
	svc, m := newSceneService()
	ctx := context.Background()

	m.scenes.On("FindByID", ctx, uint(5)).Return(&domain.Scene{ID: 5, OwnerID: 1}, nil).Once()
	m.users.On("FindByEmail", ctx, "raced@example.com").Return(&domain.User{ID: 7}, nil).Once()
	m.scenes.On("AddCollaborator", ctx, uint(5), mock.AnythingOfType("domain.Collaborator")).
		Return(repository.ErrDuplicateEntry).
		Once()

	err := svc.Invite(ctx, 5, 1, "raced@example.com", nil)

	assert.True(t, errors.Is(err, service.ErrAlreadyCollaborator))
	m.assertAll(t)
}

func TestSceneService_Invite_NonAdminDenied(t *testing.T) {
	svc, m := newSceneService()
	ctx := context.Background()

	m.scenes.On("FindByID", ctx, uint(5)).
		Return(&domain.Scene{
			ID: 5, OwnerID: 1,
			Collaborators: []domain.Collaborator{{
				UserID:      2,
				Status:      domain.CollaboratorActive,
				Permissions: []string{domain.PermissionView, domain.PermissionEdit},
			}},
		}, nil).
		Once()

	err := svc.Invite(ctx, 5, 2, "new@example.com", nil)

	assert.True(t, errors.Is(err, service.ErrAccessDenied))
	m.assertAll(t)
	m.users.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
}

func TestSceneService_RespondInvite_Accept(t *testing.T) {
	svc, m := newSceneService()
	ctx := context.Background()

	m.scenes.On("FindByID", ctx, uint(5)).
		Return(&domain.Scene{
			ID: 5, OwnerID: 1,
			Collaborators: []domain.Collaborator{{UserID: 2, Status: domain.CollaboratorInvited}},
		}, nil).
		Once()
	m.scenes.On("UpdateCollaboratorStatus", ctx, uint(5), uint(2), domain.CollaboratorActive).
		Return(nil).
		Once()

	require.NoError(t, svc.RespondInvite(ctx, 5, 2, true))
	m.assertAll(t)
}

func TestSceneService_RespondInvite_NoPendingInvite(t *testing.T) {
	svc, m := newSceneService()
	ctx := context.Background()

	m.scenes.On("FindByID", ctx, uint(5)).
		Return(&domain.Scene{
			ID: 5, OwnerID: 1,
			Collaborators: []domain.Collaborator{{UserID: 2, Status: domain.CollaboratorActive}},
		}, nil).
		Once()

	err := svc.RespondInvite(ctx, 5, 2, true)

	assert.True(t, errors.Is(err, service.ErrInviteNotFound))
	m.assertAll(t)
}

func TestSceneService_RemoveCollaborator_AlreadyRemoved(t *testing.T) {
	svc, m := newSceneService()
	ctx := context.Background()

	m.scenes.On("FindByID", ctx, uint(5)).
		Return(&domain.Scene{
			ID: 5, OwnerID: 1,
			Collaborators: []domain.Collaborator{{UserID: 2, Status: domain.CollaboratorRemoved}},
		}, nil).
		Once()

	err := svc.RemoveCollaborator(ctx, 5, 1, 2)

	assert.True(t, errors.Is(err, service.ErrUserNotFound))
	m.assertAll(t)
}

func TestSceneService_List_MergesOwnedAndShared(t *testing.T) {
	svc, m := newSceneService()
	ctx := context.Background()

	m.scenes.On("FindByOwner", ctx, uint(1)).
		Return([]domain.Scene{{ID: 10, OwnerID: 1}}, nil).
		Once()
	m.scenes.On("FindByCollaborator", ctx, uint(1)).
		Return([]domain.Scene{{ID: 20, OwnerID: 2}}, nil).
		Once()
	m.users.On("FindByID", ctx, uint(1)).Return(&domain.User{ID: 1, Name: "Ada"}, nil)
	m.users.On("FindByID", ctx, uint(2)).Return(nil, repository.ErrNotFound)

	details, err := svc.List(ctx, 1)

	require.NoError(t, err)
	require.Len(t, details, 2)
	assert.Equal(t, uint(10), details[0].Scene.ID)
	assert.Equal(t, "Ada", details[0].OwnerName)
	assert.Equal(t, uint(20), details[1].Scene.ID)
	assert.Equal(t, "Unknown", details[1].OwnerName, "dangling owner degrades to a placeholder")
	m.assertAll(t)
}
