package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/zach0583-rgb/ThatZachGuy/internal/catalog"
	"github.com/zach0583-rgb/ThatZachGuy/internal/domain"
	"github.com/zach0583-rgb/ThatZachGuy/internal/repository"
	"github.com/zach0583-rgb/ThatZachGuy/internal/repository/mocks"
	"github.com/zach0583-rgb/ThatZachGuy/internal/service"
)

func newArtworkService() (*service.ArtworkService, *mocks.ArtworkRepository, *mocks.FileStore) {
	artworkRepo := new(mocks.ArtworkRepository)
	files := new(mocks.FileStore)
	return service.NewArtworkService(artworkRepo, files, catalog.Default()), artworkRepo, files
}

func paintingUpload() service.ArtworkUpload {
	return service.ArtworkUpload{
		Title:        "Dusk",
		Description:  "oil on canvas",
		Type:         domain.ArtworkPainting,
		Tags:         []string{"nature"},
		IsPublic:     true,
		OriginalName: "dusk.PNG",
		MimeType:     "image/png",
		Content:      strings.NewReader("fake image bytes"),
	}
}

func TestArtworkService_Upload_Success(t *testing.T) {
	svc, artworkRepo, files := newArtworkService()
	ctx := context.Background()

	files.On("Save", ctx, mock.MatchedBy(func(filename string) bool {
		// Opaque generated name; only the lowercased client extension
		// survives.
		return strings.HasSuffix(filename, ".png") && !strings.Contains(filename, "dusk")
	}), mock.Anything).Return(int64(16), nil).Once()

	artworkRepo.On("Save", ctx, mock.MatchedBy(func(a *domain.Artwork) bool {
		assert.NotEmpty(t, a.ID)
		assert.Equal(t, "suite-1", a.SuiteID)
		assert.Equal(t, uint(3), a.ArtistID)
		assert.Equal(t, int64(16), a.FileSize)
		return true
	})).Return(nil).Once()

	details, err := svc.Upload(ctx, "suite-1", 3, paintingUpload())

	require.NoError(t, err)
	assert.Equal(t, "Christopher Royal King", details.ArtistName)
	artworkRepo.AssertExpectations(t)
	files.AssertExpectations(t)
}

func TestArtworkService_Upload_UnknownSuite(t *testing.T) {
	svc, artworkRepo, files := newArtworkService()

	_, err := svc.Upload(context.Background(), "suite-99", 3, paintingUpload())

	assert.True(t, errors.Is(err, service.ErrSuiteNotFound))
	files.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
	artworkRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestArtworkService_Upload_UnknownType(t *testing.T) {
	svc, _, files := newArtworkService()

	upload := paintingUpload()
	upload.Type = "performance"

	_, err := svc.Upload(context.Background(), "suite-1", 3, upload)

	assert.True(t, errors.Is(err, service.ErrInvalidArtworkType))
	files.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
}

func TestArtworkService_Upload_MimeRejectedBeforeBlobWrite(t *testing.T) {
	svc, artworkRepo, files := newArtworkService()

	upload := paintingUpload()
	upload.MimeType = "audio/mpeg" // valid for music, not for painting

	_, err := svc.Upload(context.Background(), "suite-1", 3, upload)

	assert.True(t, errors.Is(err, service.ErrInvalidFileType))
	files.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
	artworkRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestArtworkService_Get_CountsView(t *testing.T) {
	svc, artworkRepo, _ := newArtworkService()
	ctx := context.Background()

	artworkRepo.On("FindByID", ctx, "a-1").
		Return(&domain.Artwork{ID: "a-1", SuiteID: "suite-2", Views: 4}, nil).
		Once()
	artworkRepo.On("IncrementViews", ctx, "a-1").Return(nil).Once()

	details, err := svc.Get(ctx, "a-1")

	require.NoError(t, err)
	assert.Equal(t, int64(5), details.Artwork.Views, "returned view count includes this read")
	assert.Equal(t, "Philip Nanos", details.ArtistName)
	artworkRepo.AssertExpectations(t)
}

func TestArtworkService_Get_ViewCounterFailureDoesNotFailRead(t *testing.T) {
	svc, artworkRepo, _ := newArtworkService()
	ctx := context.Background()

	artworkRepo.On("FindByID", ctx, "a-1").
		Return(&domain.Artwork{ID: "a-1", SuiteID: "suite-2", Views: 4}, nil).
		Once()
	artworkRepo.On("IncrementViews", ctx, "a-1").Return(errors.New("db down")).Once()

	details, err := svc.Get(ctx, "a-1")

	require.NoError(t, err)
	assert.Equal(t, int64(4), details.Artwork.Views)
	artworkRepo.AssertExpectations(t)
}

func TestArtworkService_Update_ArtistOnly(t *testing.T) {
	svc, artworkRepo, _ := newArtworkService()
	ctx := context.Background()
	title := "New Title"

	artworkRepo.On("FindByID", ctx, "a-1").
		Return(&domain.Artwork{ID: "a-1", ArtistID: 3, SuiteID: "suite-1"}, nil).
		Once()

	_, err := svc.Update(ctx, "a-1", 99, service.ArtworkUpdate{Title: &title})

	assert.True(t, errors.Is(err, service.ErrAccessDenied))
	artworkRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestArtworkService_Delete_RemovesRecordThenBlob(t *testing.T) {
	svc, artworkRepo, files := newArtworkService()
	ctx := context.Background()

	artworkRepo.On("FindByID", ctx, "a-1").
		Return(&domain.Artwork{ID: "a-1", ArtistID: 3, SuiteID: "suite-1", Filename: "blob.png"}, nil).
		Once()
	artworkRepo.On("Delete", ctx, "a-1").Return(nil).Once()
	files.On("Delete", ctx, "blob.png").Return(errors.New("already gone")).Once()

	// A failed blob delete does not fail the operation.
	require.NoError(t, svc.Delete(ctx, "a-1", 3))
	artworkRepo.AssertExpectations(t)
	files.AssertExpectations(t)
}

func TestArtworkService_Delete_NonArtistDenied(t *testing.T) {
	svc, artworkRepo, files := newArtworkService()
	ctx := context.Background()

	artworkRepo.On("FindByID", ctx, "a-1").
		Return(&domain.Artwork{ID: "a-1", ArtistID: 3, SuiteID: "suite-1"}, nil).
		Once()

	err := svc.Delete(ctx, "a-1", 4)

	assert.True(t, errors.Is(err, service.ErrAccessDenied))
	artworkRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	files.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestArtworkService_Like_NoDedup(t *testing.T) {
	svc, artworkRepo, _ := newArtworkService()
	ctx := context.Background()

	artworkRepo.On("IncrementLikes", ctx, "a-1").Return(nil).Twice()

	require.NoError(t, svc.Like(ctx, "a-1"))
	require.NoError(t, svc.Like(ctx, "a-1"), "repeat likes from the same caller count again")
	artworkRepo.AssertExpectations(t)
}

func TestArtworkService_Like_NotFound(t *testing.T) {
	svc, artworkRepo, _ := newArtworkService()
	ctx := context.Background()

	artworkRepo.On("IncrementLikes", ctx, "missing").Return(repository.ErrNotFound).Once()

	err := svc.Like(ctx, "missing")

	assert.True(t, errors.Is(err, service.ErrArtworkNotFound))
	artworkRepo.AssertExpectations(t)
}

func TestArtworkService_ListBySuite_UnknownSuite(t *testing.T) {
	svc, artworkRepo, _ := newArtworkService()

	_, err := svc.ListBySuite(context.Background(), "suite-99")

	assert.True(t, errors.Is(err, service.ErrSuiteNotFound))
	artworkRepo.AssertNotCalled(t, "FindBySuite", mock.Anything, mock.Anything)
}
