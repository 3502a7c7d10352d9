package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/zach0583-rgb/ThatZachGuy/internal/domain"
	"github.com/zach0583-rgb/ThatZachGuy/internal/service"
)

// SceneHandler serves scene CRUD and the collaboration workflow.
type SceneHandler struct {
	sceneService *service.SceneService
}

// NewSceneHandler creates a SceneHandler.
func NewSceneHandler(sceneService *service.SceneService) *SceneHandler {
	return &SceneHandler{sceneService: sceneService}
}

// CreateSceneRequest is the scene creation payload.
type CreateSceneRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=191"`
	Description string `json:"description" binding:"max=2000"`
	Background  string `json:"background" binding:"max=64"`
	IsPublic    bool   `json:"is_public"`
}

// Create makes the caller the owner of a new scene.
func (h *SceneHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req CreateSceneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Warn("Handler.CreateScene: invalid input")
		ErrorResponse(c, http.StatusBadRequest, "Invalid input: name is required")
		return
	}

	details, err := h.sceneService.Create(c.Request.Context(), userID, req.Name, req.Description, req.Background, req.IsPublic)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSceneResponse(details))
}

// List returns the caller's owned and shared scenes.
func (h *SceneHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	details, err := h.sceneService.List(c.Request.Context(), userID)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	scenes := make([]SceneResponse, 0, len(details))
	for i := range details {
		scenes = append(scenes, toSceneResponse(&details[i]))
	}
	c.JSON(http.StatusOK, scenes)
}

// Get returns one scene if the caller may view it.
func (h *SceneHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	sceneID, ok := pathID(c, "sceneId", "scene ID")
	if !ok {
		return
	}

	details, err := h.sceneService.Get(c.Request.Context(), sceneID, userID)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSceneResponse(details))
}

// UpdateSceneRequest carries optional scene fields.
type UpdateSceneRequest struct {
	Name        *string               `json:"name" binding:"omitempty,min=1,max=191"`
	Description *string               `json:"description" binding:"omitempty,max=2000"`
	Background  *string               `json:"background" binding:"omitempty,max=64"`
	Objects     *[]domain.SceneObject `json:"objects"`
	IsPublic    *bool                 `json:"is_public"`
}

// Update applies the supplied fields if the caller may edit.
func (h *SceneHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	sceneID, ok := pathID(c, "sceneId", "scene ID")
	if !ok {
		return
	}

	var req UpdateSceneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Warn("Handler.UpdateScene: invalid input")
		ErrorResponse(c, http.StatusBadRequest, "Invalid input")
		return
	}

	details, err := h.sceneService.Update(c.Request.Context(), sceneID, userID, service.SceneUpdate{
		Name:        req.Name,
		Description: req.Description,
		Background:  req.Background,
		Objects:     req.Objects,
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSceneResponse(details))
}

// Delete removes the scene and cascades over its messages and media.
// Owner only.
func (h *SceneHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	sceneID, ok := pathID(c, "sceneId", "scene ID")
	if !ok {
		return
	}

	if err := h.sceneService.Delete(c.Request.Context(), sceneID, userID); err != nil {
		HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Scene deleted successfully"})
}

// InviteRequest is the collaborator invite payload.
type InviteRequest struct {
	Email       string   `json:"email" binding:"required,email"`
	Permissions []string `json:"permissions" binding:"omitempty,dive,oneof=view edit admin"`
}

// Invite adds a collaborator in status invited.
func (h *SceneHandler) Invite(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	sceneID, ok := pathID(c, "sceneId", "scene ID")
	if !ok {
		return
	}

	var req InviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Warn("Handler.Invite: invalid input")
		ErrorResponse(c, http.StatusBadRequest, "Invalid input: email is required")
		return
	}

	if err := h.sceneService.Invite(c.Request.Context(), sceneID, userID, req.Email, req.Permissions); err != nil {
		HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User " + req.Email + " invited successfully"})
}

// RespondInviteRequest is the invite response payload.
type RespondInviteRequest struct {
	Accept *bool `json:"accept" binding:"required"`
}

// RespondInvite lets the invitee accept or decline their pending
// invite.
func (h *SceneHandler) RespondInvite(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	sceneID, ok := pathID(c, "sceneId", "scene ID")
	if !ok {
		return
	}

	var req RespondInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Warn("Handler.RespondInvite: invalid input")
		ErrorResponse(c, http.StatusBadRequest, "Invalid input: accept is required")
		return
	}

	if err := h.sceneService.RespondInvite(c.Request.Context(), sceneID, userID, *req.Accept); err != nil {
		HandleServiceError(c, err)
		return
	}
	msg := "Invite declined"
	if *req.Accept {
		msg = "Invite accepted"
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

// RemoveCollaborator soft-deletes a collaborator entry. Admin or owner
// only.
func (h *SceneHandler) RemoveCollaborator(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	sceneID, ok := pathID(c, "sceneId", "scene ID")
	if !ok {
		return
	}
	collaboratorID, ok := pathID(c, "userId", "user ID")
	if !ok {
		return
	}

	if err := h.sceneService.RemoveCollaborator(c.Request.Context(), sceneID, userID, collaboratorID); err != nil {
		HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Collaborator removed"})
}
