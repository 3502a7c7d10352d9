package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/zach0583-rgb/ThatZachGuy/internal/service"
)

// MediaHandler serves scene file attachments.
type MediaHandler struct {
	mediaService *service.MediaService
}

// NewMediaHandler creates a MediaHandler.
func NewMediaHandler(mediaService *service.MediaService) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

// Upload accepts a multipart file and attaches it to the scene.
func (h *MediaHandler) Upload(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	sceneID, ok := pathID(c, "sceneId", "scene ID")
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		logrus.WithError(err).Warn("Handler.UploadMedia: missing file")
		ErrorResponse(c, http.StatusBadRequest, "Invalid input: file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logrus.WithError(err).Error("Handler.UploadMedia: cannot open upload")
		ErrorResponse(c, http.StatusInternalServerError, "Failed to read uploaded file")
		return
	}
	defer file.Close()

	details, err := h.mediaService.Upload(c.Request.Context(), sceneID, userID, service.MediaUpload{
		OriginalName: fileHeader.Filename,
		MimeType:     fileHeader.Header.Get("Content-Type"),
		Content:      file,
	})
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toMediaResponse(details))
}

// List returns the scene's attachments.
func (h *MediaHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	sceneID, ok := pathID(c, "sceneId", "scene ID")
	if !ok {
		return
	}

	details, err := h.mediaService.List(c.Request.Context(), sceneID, userID)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	media := make([]MediaResponse, 0, len(details))
	for i := range details {
		media = append(media, toMediaResponse(&details[i]))
	}
	c.JSON(http.StatusOK, media)
}
