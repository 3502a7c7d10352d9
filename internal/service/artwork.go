package service

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/zach0583-rgb/ThatZachGuy/internal/catalog"
	"github.com/zach0583-rgb/ThatZachGuy/internal/domain"
	"github.com/zach0583-rgb/ThatZachGuy/internal/repository"
)

// allowedMimeTypes is the fixed allow-list of declared mime types per
// artwork type.
var allowedMimeTypes = map[string][]string{
	domain.ArtworkPainting:  {"image/jpeg", "image/png", "image/webp"},
	domain.ArtworkMusic:     {"audio/mpeg", "audio/wav", "audio/ogg"},
	domain.ArtworkWriting:   {"text/plain", "application/pdf"},
	domain.ArtworkSculpture: {"model/gltf+json", "model/obj", "image/jpeg", "image/png"},
	domain.ArtworkPhoto:     {"image/jpeg", "image/png", "image/webp"},
}

// ArtworkService manages uploaded artworks and the suite gallery.
// Suites come from the injected catalog, never from the store.
type ArtworkService struct {
	artworkRepo repository.ArtworkRepository
	files       repository.FileStore
	suites      *catalog.Catalog
}

// NewArtworkService creates an ArtworkService.
func NewArtworkService(artworkRepo repository.ArtworkRepository, files repository.FileStore, suites *catalog.Catalog) *ArtworkService {
	if artworkRepo == nil || files == nil || suites == nil {
		panic("ArtworkService dependencies cannot be nil")
	}
	return &ArtworkService{artworkRepo: artworkRepo, files: files, suites: suites}
}

// ArtworkUpload is an incoming artwork submission.
type ArtworkUpload struct {
	Title        string
	Description  string
	Type         string
	Tags         []string
	IsPublic     bool
	OriginalName string
	MimeType     string
	Content      io.Reader
}

// Upload validates the suite and the declared mime type against the
// per-type allow-list, writes the blob under a generated name, then
// inserts the record. Blob write and record insert are not
// transactional; a crash in between orphans the blob (accepted).
func (s *ArtworkService) Upload(ctx context.Context, suiteID string, artistID uint, upload ArtworkUpload) (*ArtworkDetails, error) {
	logCtx := logrus.WithFields(logrus.Fields{
		"suite_id": suiteID, "artist_id": artistID, "type": upload.Type,
	})

	suite, ok := s.suites.Get(suiteID)
	if !ok {
		return nil, ErrSuiteNotFound
	}
	allowed, ok := allowedMimeTypes[upload.Type]
	if !ok {
		return nil, ErrInvalidArtworkType
	}
	if !contains(allowed, upload.MimeType) {
		logCtx.WithField("mime_type", upload.MimeType).Warn("Artwork upload rejected: mime type not allowed for type")
		return nil, ErrInvalidFileType
	}

	filename := generatedFilename(upload.OriginalName)
	size, err := s.files.Save(ctx, filename, upload.Content)
	if err != nil {
		logCtx.WithError(err).Error("Failed to write artwork blob")
		return nil, ErrInternalServer
	}

	artwork := &domain.Artwork{
		ID:          uuid.NewString(),
		ArtistID:    artistID,
		SuiteID:     suiteID,
		Title:       upload.Title,
		Description: upload.Description,
		Type:        upload.Type,
		Filename:    filename,
		MimeType:    upload.MimeType,
		FileSize:    size,
		Tags:        upload.Tags,
		IsPublic:    upload.IsPublic,
	}
	if err := s.artworkRepo.Save(ctx, artwork); err != nil {
		logCtx.WithError(err).Error("Failed to save artwork record; blob is orphaned")
		return nil, ErrInternalServer
	}

	logCtx.WithField("artwork_id", artwork.ID).Info("Artwork uploaded")
	return &ArtworkDetails{Artwork: *artwork, ArtistName: suite.ArtistName}, nil
}

// Get returns the artwork and bumps its view counter. Every read
// counts; there is no per-caller dedup.
func (s *ArtworkService) Get(ctx context.Context, artworkID string) (*ArtworkDetails, error) {
	artwork, err := s.loadArtwork(ctx, artworkID)
	if err != nil {
		return nil, err
	}

	if err := s.artworkRepo.IncrementViews(ctx, artworkID); err != nil {
		// The read already succeeded; a lost view count is not worth
		// failing the request over.
		logrus.WithError(err).WithField("artwork_id", artworkID).Warn("Failed to increment view counter")
	} else {
		artwork.Views++
	}

	return s.withArtistName(artwork), nil
}

// ListBySuite returns the suite's artworks. Unknown suites are
// not-found even when no artwork references them.
func (s *ArtworkService) ListBySuite(ctx context.Context, suiteID string) ([]ArtworkDetails, error) {
	suite, ok := s.suites.Get(suiteID)
	if !ok {
		return nil, ErrSuiteNotFound
	}

	artworks, err := s.artworkRepo.FindBySuite(ctx, suiteID)
	if err != nil {
		logrus.WithError(err).WithField("suite_id", suiteID).Error("Failed to list suite artworks")
		return nil, ErrInternalServer
	}

	details := make([]ArtworkDetails, 0, len(artworks))
	for _, a := range artworks {
		details = append(details, ArtworkDetails{Artwork: a, ArtistName: suite.ArtistName})
	}
	return details, nil
}

// PublicGallery returns every artwork marked public, across all
// suites.
func (s *ArtworkService) PublicGallery(ctx context.Context) ([]ArtworkDetails, error) {
	artworks, err := s.artworkRepo.FindPublic(ctx)
	if err != nil {
		logrus.WithError(err).Error("Failed to list public gallery")
		return nil, ErrInternalServer
	}

	details := make([]ArtworkDetails, 0, len(artworks))
	for _, a := range artworks {
		details = append(details, *s.withArtistName(&a))
	}
	return details, nil
}

// ArtworkUpdate carries the optional artwork fields; nil means leave
// untouched.
type ArtworkUpdate struct {
	Title       *string
	Description *string
	Tags        *[]string
	IsPublic    *bool
}

// Update applies only the supplied fields. Only the artwork's artist
// may update it.
func (s *ArtworkService) Update(ctx context.Context, artworkID string, userID uint, update ArtworkUpdate) (*ArtworkDetails, error) {
	logCtx := logrus.WithFields(logrus.Fields{"artwork_id": artworkID, "user_id": userID})

	artwork, err := s.loadArtwork(ctx, artworkID)
	if err != nil {
		return nil, err
	}
	if artwork.ArtistID != userID {
		logCtx.Warn("Artwork update denied: not the artist")
		return nil, ErrAccessDenied
	}

	fields := map[string]interface{}{}
	if update.Title != nil {
		fields["title"] = *update.Title
	}
	if update.Description != nil {
		fields["description"] = *update.Description
	}
	if update.Tags != nil {
		fields["tags"] = *update.Tags
	}
	if update.IsPublic != nil {
		fields["is_public"] = *update.IsPublic
	}
	if len(fields) > 0 {
		fields["updated_at"] = time.Now().UTC()
		if err := s.artworkRepo.Update(ctx, artworkID, fields); err != nil {
			logCtx.WithError(err).Error("Failed to update artwork")
			return nil, ErrInternalServer
		}
	}

	updated, err := s.loadArtwork(ctx, artworkID)
	if err != nil {
		return nil, err
	}
	logCtx.Info("Artwork updated")
	return s.withArtistName(updated), nil
}

// Delete removes the record, then tries to remove the blob. A missing
// blob is fine; the record deletion is what counts.
func (s *ArtworkService) Delete(ctx context.Context, artworkID string, userID uint) error {
	logCtx := logrus.WithFields(logrus.Fields{"artwork_id": artworkID, "user_id": userID})

	artwork, err := s.loadArtwork(ctx, artworkID)
	if err != nil {
		return err
	}
	if artwork.ArtistID != userID {
		logCtx.Warn("Artwork delete denied: not the artist")
		return ErrAccessDenied
	}

	if err := s.artworkRepo.Delete(ctx, artworkID); err != nil {
		logCtx.WithError(err).Error("Failed to delete artwork record")
		return ErrInternalServer
	}
	if err := s.files.Delete(ctx, artwork.Filename); err != nil {
		logCtx.WithError(err).Warn("Failed to delete artwork blob")
	}

	logCtx.Info("Artwork deleted")
	return nil
}

// Like bumps the like counter. No dedup: the same caller may like the
// same artwork any number of times.
func (s *ArtworkService) Like(ctx context.Context, artworkID string) error {
	err := s.artworkRepo.IncrementLikes(ctx, artworkID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrArtworkNotFound
		}
		logrus.WithError(err).WithField("artwork_id", artworkID).Error("Failed to increment like counter")
		return ErrInternalServer
	}
	return nil
}

func (s *ArtworkService) loadArtwork(ctx context.Context, artworkID string) (*domain.Artwork, error) {
	artwork, err := s.artworkRepo.FindByID(ctx, artworkID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrArtworkNotFound
		}
		logrus.WithError(err).WithField("artwork_id", artworkID).Error("Failed to load artwork")
		return nil, ErrInternalServer
	}
	return artwork, nil
}

func (s *ArtworkService) withArtistName(artwork *domain.Artwork) *ArtworkDetails {
	name := "Unknown Artist"
	if suite, ok := s.suites.Get(artwork.SuiteID); ok {
		name = suite.ArtistName
	}
	return &ArtworkDetails{Artwork: *artwork, ArtistName: name}
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
