package service

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/zach0583-rgb/ThatZachGuy/internal/domain"
	"github.com/zach0583-rgb/ThatZachGuy/internal/repository"
)

// MediaService handles files uploaded into a scene. Upload writes the
// blob first and the record second; the two are not transactional, so
// a crash in between orphans the blob (accepted).
type MediaService struct {
	mediaRepo repository.MediaRepository
	sceneRepo repository.SceneRepository
	userRepo  repository.UserRepository
	files     repository.FileStore
}

// NewMediaService creates a MediaService.
func NewMediaService(
	mediaRepo repository.MediaRepository,
	sceneRepo repository.SceneRepository,
	userRepo repository.UserRepository,
	files repository.FileStore,
) *MediaService {
	if mediaRepo == nil || sceneRepo == nil || userRepo == nil || files == nil {
		panic("MediaService dependencies cannot be nil")
	}
	return &MediaService{mediaRepo: mediaRepo, sceneRepo: sceneRepo, userRepo: userRepo, files: files}
}

// MediaUpload is an incoming scene file.
type MediaUpload struct {
	OriginalName string
	MimeType     string
	Content      io.Reader
}

// Upload stores the file under a generated name and records it against
// the scene. Requires view access, same as chat.
func (s *MediaService) Upload(ctx context.Context, sceneID, userID uint, upload MediaUpload) (*MediaDetails, error) {
	logCtx := logrus.WithFields(logrus.Fields{"scene_id": sceneID, "user_id": userID})

	if err := s.authorizeViewer(ctx, sceneID, userID); err != nil {
		return nil, err
	}

	filename := generatedFilename(upload.OriginalName)
	size, err := s.files.Save(ctx, filename, upload.Content)
	if err != nil {
		logCtx.WithError(err).Error("Failed to write media blob")
		return nil, ErrInternalServer
	}

	media := &domain.Media{
		SceneID:      sceneID,
		UploadedBy:   userID,
		Filename:     filename,
		OriginalName: upload.OriginalName,
		MimeType:     upload.MimeType,
		Size:         size,
		Type:         mediaTypeFromMime(upload.MimeType),
	}
	if err := s.mediaRepo.Save(ctx, media); err != nil {
		logCtx.WithError(err).Error("Failed to save media record; blob is orphaned")
		return nil, ErrInternalServer
	}

	logCtx.WithField("media_id", media.ID).Info("Media uploaded")
	return &MediaDetails{
		Media:    *media,
		Uploader: resolveUserSummary(ctx, s.userRepo, userID, "Unknown User"),
	}, nil
}

// List returns the scene's media with uploader details resolved at
// read time.
func (s *MediaService) List(ctx context.Context, sceneID, userID uint) ([]MediaDetails, error) {
	if err := s.authorizeViewer(ctx, sceneID, userID); err != nil {
		return nil, err
	}

	media, err := s.mediaRepo.FindByScene(ctx, sceneID)
	if err != nil {
		logrus.WithError(err).WithField("scene_id", sceneID).Error("Failed to load scene media")
		return nil, ErrInternalServer
	}

	details := make([]MediaDetails, 0, len(media))
	for _, m := range media {
		details = append(details, MediaDetails{
			Media:    m,
			Uploader: resolveUserSummary(ctx, s.userRepo, m.UploadedBy, "Unknown User"),
		})
	}
	return details, nil
}

func (s *MediaService) authorizeViewer(ctx context.Context, sceneID, userID uint) error {
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

// generatedFilename builds an opaque blob name, keeping only the
// extension from whatever the client sent.
func generatedFilename(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	return uuid.NewString() + ext
}

func mediaTypeFromMime(mimeType string) string {
	switch {
	case strings.HasPrefix(mimeType, "image/"):
		return "image"
	case strings.HasPrefix(mimeType, "audio/"):
		return "music"
	default:
		return "file"
	}
}
