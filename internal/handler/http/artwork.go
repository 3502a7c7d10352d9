package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/zach0583-rgb/ThatZachGuy/internal/service"
)

// ArtworkHandler serves suite artwork uploads and the public gallery.
type ArtworkHandler struct {
	artworkService *service.ArtworkService
}

// NewArtworkHandler creates an ArtworkHandler.
func NewArtworkHandler(artworkService *service.ArtworkService) *ArtworkHandler {
	return &ArtworkHandler{artworkService: artworkService}
}

// Upload accepts a multipart artwork submission for a suite. The file
// travels in the "file" field, metadata in plain form fields. Tags may
// arrive either as a JSON array string or comma separated.
func (h *ArtworkHandler) Upload(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	suiteID := c.Param("suiteId")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		logrus.WithError(err).Warn("Handler.UploadArtwork: missing file")
		ErrorResponse(c, http.StatusBadRequest, "Invalid input: file is required")
		return
	}

	title := strings.TrimSpace(c.PostForm("title"))
	if title == "" {
		ErrorResponse(c, http.StatusBadRequest, "Invalid input: title is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logrus.WithError(err).Error("Handler.UploadArtwork: cannot open upload")
		ErrorResponse(c, http.StatusInternalServerError, "Failed to read uploaded file")
		return
	}
	defer file.Close()

	details, err := h.artworkService.Upload(c.Request.Context(), suiteID, userID, service.ArtworkUpload{
		Title:        title,
		Description:  c.PostForm("description"),
		Type:         c.PostForm("type"),
		Tags:         parseTags(c.PostForm("tags")),
		IsPublic:     c.DefaultPostForm("is_public", "true") != "false",
		OriginalName: fileHeader.Filename,
		MimeType:     fileHeader.Header.Get("Content-Type"),
		Content:      file,
	})
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toArtworkResponse(details))
}

// ListBySuite returns every artwork in a suite.
func (h *ArtworkHandler) ListBySuite(c *gin.Context) {
	details, err := h.artworkService.ListBySuite(c.Request.Context(), c.Param("suiteId"))
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toArtworkResponses(details))
}

// Gallery returns all public artworks across the suites.
func (h *ArtworkHandler) Gallery(c *gin.Context) {
	details, err := h.artworkService.PublicGallery(c.Request.Context())
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toArtworkResponses(details))
}

// Get returns one artwork and counts the view.
func (h *ArtworkHandler) Get(c *gin.Context) {
	details, err := h.artworkService.Get(c.Request.Context(), c.Param("artworkId"))
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toArtworkResponse(details))
}

// UpdateArtworkRequest carries optional artwork fields.
type UpdateArtworkRequest struct {
	Title       *string   `json:"title" binding:"omitempty,min=1,max=191"`
	Description *string   `json:"description" binding:"omitempty,max=2000"`
	Tags        *[]string `json:"tags"`
	IsPublic    *bool     `json:"is_public"`
}

// Update applies the supplied fields. Artist only.
func (h *ArtworkHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req UpdateArtworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Warn("Handler.UpdateArtwork: invalid input")
		ErrorResponse(c, http.StatusBadRequest, "Invalid input")
		return
	}

	details, err := h.artworkService.Update(c.Request.Context(), c.Param("artworkId"), userID, service.ArtworkUpdate{
		Title:       req.Title,
		Description: req.Description,
		Tags:        req.Tags,
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toArtworkResponse(details))
}

// Delete removes the artwork and its stored file. Artist only.
func (h *ArtworkHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.artworkService.Delete(c.Request.Context(), c.Param("artworkId"), userID); err != nil {
		HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Artwork deleted successfully"})
}

// Like bumps the artwork's like counter.
func (h *ArtworkHandler) Like(c *gin.Context) {
	if err := h.artworkService.Like(c.Request.Context(), c.Param("artworkId")); err != nil {
		HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Liked"})
}

func toArtworkResponses(details []service.ArtworkDetails) []ArtworkResponse {
	artworks := make([]ArtworkResponse, 0, len(details))
	for i := range details {
		artworks = append(artworks, toArtworkResponse(&details[i]))
	}
	return artworks
}

// parseTags accepts `["a","b"]` or `a, b` and normalizes to a slice.
func parseTags(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	if strings.HasPrefix(raw, "[") {
		var tags []string
		if err := json.Unmarshal([]byte(raw), &tags); err == nil {
			return tags
		}
	}
	var tags []string
	for _, part := range strings.Split(raw, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
