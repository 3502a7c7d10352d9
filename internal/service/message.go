package service

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/zach0583-rgb/ThatZachGuy/internal/domain"
	"github.com/zach0583-rgb/ThatZachGuy/internal/repository"
)

// DefaultMessageLimit bounds a message page when the caller does not
// ask for one.
const DefaultMessageLimit = 50

// MessageService is scene chat: append-only messages gated by view
// access. Any viewer may post; chat is not a scene-edit operation.
type MessageService struct {
	messageRepo repository.MessageRepository
	sceneRepo   repository.SceneRepository
	userRepo    repository.UserRepository
}

// NewMessageService creates a MessageService.
func NewMessageService(
	messageRepo repository.MessageRepository,
	sceneRepo repository.SceneRepository,
	userRepo repository.UserRepository,
) *MessageService {
	if messageRepo == nil || sceneRepo == nil || userRepo == nil {
		panic("MessageService dependencies cannot be nil")
	}
	return &MessageService{messageRepo: messageRepo, sceneRepo: sceneRepo, userRepo: userRepo}
}

// List returns a page of scene messages in chronological order. The
// page is fetched newest-first for pagination and reversed before
// returning, so the response always reads oldest-first.
func (s *MessageService) List(ctx context.Context, sceneID, userID uint, limit, offset int) ([]MessageDetails, error) {
	logCtx := logrus.WithFields(logrus.Fields{"scene_id": sceneID, "user_id": userID})

	if err := s.authorizeViewer(ctx, sceneID, userID); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = DefaultMessageLimit
	}
	if offset < 0 {
		offset = 0
	}
	messages, err := s.messageRepo.FindByScene(ctx, sceneID, limit, offset)
	if err != nil {
		logCtx.WithError(err).Error("Failed to load scene messages")
		return nil, ErrInternalServer
	}

	details := make([]MessageDetails, 0, len(messages))
	for i := len(messages) - 1; i >= 0; i-- {
		msg := messages[i]
		details = append(details, MessageDetails{
			Message: msg,
			Sender:  resolveUserSummary(ctx, s.userRepo, msg.SenderID, "Unknown User"),
		})
	}
	return details, nil
}

// Send appends a message to the scene. Requires view access only.
func (s *MessageService) Send(ctx context.Context, sceneID, userID uint, content, msgType string) (*MessageDetails, error) {
	logCtx := logrus.WithFields(logrus.Fields{"scene_id": sceneID, "user_id": userID})

	if msgType == "" {
		msgType = domain.MessageText
	}
	if !domain.ValidMessageType(msgType) {
		return nil, ErrInvalidMessageType
	}

	if err := s.authorizeViewer(ctx, sceneID, userID); err != nil {
		return nil, err
	}

	msg := &domain.Message{
		SceneID:  sceneID,
		SenderID: userID,
		Content:  content,
		Type:     msgType,
	}
	if err := s.messageRepo.Save(ctx, msg); err != nil {
		logCtx.WithError(err).Error("Failed to save message")
		return nil, ErrInternalServer
	}

	logCtx.WithField("message_id", msg.ID).Debug("Message sent")
	return &MessageDetails{
		Message: *msg,
		Sender:  resolveUserSummary(ctx, s.userRepo, userID, "Unknown User"),
	}, nil
}

func (s *MessageService) authorizeViewer(ctx context.Context, sceneID, userID uint) error {
	scene, err := s.sceneRepo.FindByID(ctx, sceneID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrSceneNotFound
		}
		logrus.WithError(err).WithField("scene_id", sceneID).Error("Failed to load scene for access check")
		return ErrInternalServer
	}
	if !scene.CanView(userID) {
		return ErrAccessDenied
	}
	return nil
}
