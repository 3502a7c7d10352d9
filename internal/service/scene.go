package service

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/zach0583-rgb/ThatZachGuy/internal/domain"
	"github.com/zach0583-rgb/ThatZachGuy/internal/repository"
)

// DefaultBackground is applied when a scene is created without one.
const DefaultBackground = "modern-office"

// SceneService manages scenes and the collaboration workflow: invite,
// accept, remove, permission-gated reads and writes, and the delete
// cascade over messages and media.
type SceneService struct {
	sceneRepo   repository.SceneRepository
	userRepo    repository.UserRepository
	messageRepo repository.MessageRepository
	mediaRepo   repository.MediaRepository
	files       repository.FileStore
}

// NewSceneService creates a SceneService.
func NewSceneService(
	sceneRepo repository.SceneRepository,
	userRepo repository.UserRepository,
	messageRepo repository.MessageRepository,
	mediaRepo repository.MediaRepository,
	files repository.FileStore,
) *SceneService {
	if sceneRepo == nil || userRepo == nil || messageRepo == nil || mediaRepo == nil || files == nil {
		panic("SceneService dependencies cannot be nil")
	}
	return &SceneService{
		sceneRepo:   sceneRepo,
		userRepo:    userRepo,
		messageRepo: messageRepo,
		mediaRepo:   mediaRepo,
		files:       files,
	}
}

// Create makes the caller the owner of a new scene with an empty
// collaborator list. Always succeeds for an authenticated caller.
func (s *SceneService) Create(ctx context.Context, ownerID uint, name, description, background string, isPublic bool) (*SceneDetails, error) {
	logCtx := logrus.WithFields(logrus.Fields{"owner_id": ownerID, "name": name})

	if background == "" {
		background = DefaultBackground
	}
	scene := &domain.Scene{
		Name:          name,
		Description:   description,
		Background:    background,
		Objects:       []domain.SceneObject{},
		OwnerID:       ownerID,
		Collaborators: []domain.Collaborator{},
		IsPublic:      isPublic,
	}
	if err := s.sceneRepo.Save(ctx, scene); err != nil {
		logCtx.WithError(err).Error("Failed to save new scene")
		return nil, ErrInternalServer
	}

	logCtx.WithField("scene_id", scene.ID).Info("Scene created")
	return s.enrich(ctx, scene), nil
}

// List returns the union of scenes the user owns and scenes where the
// user is an active collaborator, each enriched with display details.
func (s *SceneService) List(ctx context.Context, userID uint) ([]SceneDetails, error) {
	logCtx := logrus.WithField("user_id", userID)

	owned, err := s.sceneRepo.FindByOwner(ctx, userID)
	if err != nil {
		logCtx.WithError(err).Error("Failed to list owned scenes")
		return nil, ErrInternalServer
	}
	shared, err := s.sceneRepo.FindByCollaborator(ctx, userID)
	if err != nil {
		logCtx.WithError(err).Error("Failed to list shared scenes")
		return nil, ErrInternalServer
	}

	details := make([]SceneDetails, 0, len(owned)+len(shared))
	for i := range owned {
		details = append(details, *s.enrich(ctx, &owned[i]))
	}
	for i := range shared {
		details = append(details, *s.enrich(ctx, &shared[i]))
	}
	return details, nil
}

// Get returns the scene if the user may view it. A permission failure
// is reported as access denied, never disguised as not-found.
func (s *SceneService) Get(ctx context.Context, sceneID, userID uint) (*SceneDetails, error) {
	scene, err := s.load(ctx, sceneID)
	if err != nil {
		return nil, err
	}
	if !scene.CanView(userID) {
		return nil, ErrAccessDenied
	}
	return s.enrich(ctx, scene), nil
}

// SceneUpdate carries the optional scene fields; nil means leave
// untouched.
type SceneUpdate struct {
	Name        *string
	Description *string
	Background  *string
	Objects     *[]domain.SceneObject
	IsPublic    *bool
}

// Update applies only the supplied fields. Requires edit permission;
// updated_at is refreshed on every successful update regardless of
// which fields were sent.
func (s *SceneService) Update(ctx context.Context, sceneID, userID uint, update SceneUpdate) (*SceneDetails, error) {
	logCtx := logrus.WithFields(logrus.Fields{"scene_id": sceneID, "user_id": userID})

	scene, err := s.load(ctx, sceneID)
	if err != nil {
		return nil, err
	}
	if !scene.CanEdit(userID) {
		logCtx.Warn("Scene update denied")
		return nil, ErrAccessDenied
	}

	fields := map[string]interface{}{"updated_at": time.Now().UTC()}
	if update.Name != nil {
		fields["name"] = *update.Name
	}
	if update.Description != nil {
		fields["description"] = *update.Description
	}
	if update.Background != nil {
		fields["background"] = *update.Background
	}
	if update.Objects != nil {
		fields["objects"] = *update.Objects
	}
	if update.IsPublic != nil {
		fields["is_public"] = *update.IsPublic
	}
	if err := s.sceneRepo.Update(ctx, sceneID, fields); err != nil {
		logCtx.WithError(err).Error("Failed to update scene")
		return nil, ErrInternalServer
	}

	updated, err := s.load(ctx, sceneID)
	if err != nil {
		return nil, err
	}
	logCtx.Info("Scene updated")
	return s.enrich(ctx, updated), nil
}

// Delete removes the scene and then cascades over its messages and
// media. The cascade is sequential best-effort: once the scene record
// is gone the operation reports success and cleanup failures are only
// logged.
func (s *SceneService) Delete(ctx context.Context, sceneID, userID uint) error {
	logCtx := logrus.WithFields(logrus.Fields{"scene_id": sceneID, "user_id": userID})

	scene, err := s.load(ctx, sceneID)
	if err != nil {
		return err
	}
	if !scene.CanDelete(userID) {
		logCtx.Warn("Scene delete denied: not the owner")
		return ErrAccessDenied
	}

	media, err := s.mediaRepo.FindByScene(ctx, sceneID)
	if err != nil {
		logCtx.WithError(err).Warn("Failed to list media before cascade; blobs may be orphaned")
		media = nil
	}

	if err := s.sceneRepo.Delete(ctx, sceneID); err != nil {
		logCtx.WithError(err).Error("Failed to delete scene")
		return ErrInternalServer
	}

	if err := s.messageRepo.DeleteByScene(ctx, sceneID); err != nil {
		logCtx.WithError(err).Warn("Cascade: failed to delete scene messages")
	}
	if err := s.mediaRepo.DeleteByScene(ctx, sceneID); err != nil {
		logCtx.WithError(err).Warn("Cascade: failed to delete scene media records")
	}
	for _, m := range media {
		if err := s.files.Delete(ctx, m.Filename); err != nil {
			logCtx.WithError(err).WithField("filename", m.Filename).Warn("Cascade: failed to delete media blob")
		}
	}

	logCtx.Info("Scene deleted")
	return nil
}

// Invite adds a collaborator entry in status invited. The actor must
// be the owner or an active collaborator with admin permission; the
// invitee must already have an account; any existing entry for the
// invitee, whatever its status, makes this a conflict.
func (s *SceneService) Invite(ctx context.Context, sceneID, actorID uint, inviteeEmail string, permissions []string) error {
	logCtx := logrus.WithFields(logrus.Fields{
		"scene_id": sceneID, "actor_id": actorID, "invitee_email": inviteeEmail,
	})

	scene, err := s.load(ctx, sceneID)
	if err != nil {
		return err
	}
	if !scene.CanAdmin(actorID) {
		logCtx.Warn("Invite denied")
		return ErrAccessDenied
	}

	invitee, err := s.userRepo.FindByEmail(ctx, inviteeEmail)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			logCtx.Warn("Invite failed: no account for email")
			return ErrUserNotFound
		}
		logCtx.WithError(err).Error("Failed to resolve invitee")
		return ErrInternalServer
	}

	if scene.FindCollaborator(invitee.ID) != nil {
		logCtx.Warn("Invite failed: user already has a collaborator entry")
		return ErrAlreadyCollaborator
	}

	if len(permissions) == 0 {
		permissions = []string{domain.PermissionView, domain.PermissionEdit}
	}
	entry := domain.Collaborator{
		UserID:      invitee.ID,
		Permissions: permissions,
		Status:      domain.CollaboratorInvited,
		InvitedAt:   time.Now().UTC(),
	}
	if err := s.sceneRepo.AddCollaborator(ctx, sceneID, entry); err != nil {
		// The in-memory check above races with concurrent invites; the
		// unique index settles it.
		if errors.Is(err, repository.ErrDuplicateEntry) {
			return ErrAlreadyCollaborator
		}
		logCtx.WithError(err).Error("Failed to add collaborator")
		return ErrInternalServer
	}

	logCtx.WithField("invitee_id", invitee.ID).Info("Collaborator invited")
	return nil
}

// RespondInvite lets the invitee accept (invited -> active) or decline
// (invited -> removed) their own pending entry.
func (s *SceneService) RespondInvite(ctx context.Context, sceneID, userID uint, accept bool) error {
	logCtx := logrus.WithFields(logrus.Fields{"scene_id": sceneID, "user_id": userID, "accept": accept})

	scene, err := s.load(ctx, sceneID)
	if err != nil {
		return err
	}
	entry := scene.FindCollaborator(userID)
	if entry == nil || entry.Status != domain.CollaboratorInvited {
		return ErrInviteNotFound
	}

	status := domain.CollaboratorRemoved
	if accept {
		status = domain.CollaboratorActive
	}
	if err := s.sceneRepo.UpdateCollaboratorStatus(ctx, sceneID, userID, status); err != nil {
		logCtx.WithError(err).Error("Failed to update collaborator status")
		return ErrInternalServer
	}

	logCtx.Info("Invite response recorded")
	return nil
}

// RemoveCollaborator soft-deletes a collaborator entry by setting its
// status to removed. Requires admin permission or ownership; removing
// an already-removed entry is a no-op conflict-free failure reported
// as not-found.
func (s *SceneService) RemoveCollaborator(ctx context.Context, sceneID, actorID, collaboratorID uint) error {
	logCtx := logrus.WithFields(logrus.Fields{
		"scene_id": sceneID, "actor_id": actorID, "collaborator_id": collaboratorID,
	})

	scene, err := s.load(ctx, sceneID)
	if err != nil {
		return err
	}
	if !scene.CanAdmin(actorID) {
		logCtx.Warn("Collaborator removal denied")
		return ErrAccessDenied
	}
	entry := scene.FindCollaborator(collaboratorID)
	if entry == nil || entry.Status == domain.CollaboratorRemoved {
		return ErrUserNotFound
	}

	if err := s.sceneRepo.UpdateCollaboratorStatus(ctx, sceneID, collaboratorID, domain.CollaboratorRemoved); err != nil {
		logCtx.WithError(err).Error("Failed to remove collaborator")
		return ErrInternalServer
	}

	logCtx.Info("Collaborator removed")
	return nil
}

// load fetches a scene and maps repository errors to business errors.
func (s *SceneService) load(ctx context.Context, sceneID uint) (*domain.Scene, error) {
	scene, err := s.sceneRepo.FindByID(ctx, sceneID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSceneNotFound
		}
		logrus.WithError(err).WithField("scene_id", sceneID).Error("Failed to load scene")
		return nil, ErrInternalServer
	}
	return scene, nil
}

// enrich resolves owner and collaborator display details. A dangling
// owner reference degrades to "Unknown"; a dangling collaborator
// reference drops that entry from the details, matching read-time
// resolution semantics.
func (s *SceneService) enrich(ctx context.Context, scene *domain.Scene) *SceneDetails {
	details := &SceneDetails{
		Scene:         *scene,
		OwnerName:     "Unknown",
		Collaborators: []CollaboratorDetails{},
	}
	if owner, err := s.userRepo.FindByID(ctx, scene.OwnerID); err == nil {
		details.OwnerName = owner.Name
	}
	for _, c := range scene.Collaborators {
		user, err := s.userRepo.FindByID(ctx, c.UserID)
		if err != nil {
			continue
		}
		details.Collaborators = append(details.Collaborators, CollaboratorDetails{
			User: UserSummary{
				ID:       user.ID,
				Name:     user.Name,
				Email:    user.Email,
				Avatar:   user.Avatar,
				IsOnline: user.IsOnline,
			},
			Permissions: c.Permissions,
			Status:      c.Status,
			InvitedAt:   c.InvitedAt,
		})
	}
	return details
}
