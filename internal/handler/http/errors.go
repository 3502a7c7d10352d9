package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/zach0583-rgb/ThatZachGuy/internal/service"
)

// HandleServiceError maps business errors onto HTTP status codes.
// Authorization failures stay 403: existence is never hidden behind a
// 404 here.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidID),
		errors.Is(err, service.ErrInvalidArtworkType),
		errors.Is(err, service.ErrInvalidFileType),
		errors.Is(err, service.ErrInvalidMessageType):
		ErrorResponse(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrAuthenticationFailed):
		ErrorResponse(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrAccessDenied):
		ErrorResponse(c, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrSceneNotFound),
		errors.Is(err, service.ErrArtworkNotFound),
		errors.Is(err, service.ErrSuiteNotFound),
		errors.Is(err, service.ErrInviteNotFound):
		ErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrAlreadyCollaborator):
		ErrorResponse(c, http.StatusConflict, err.Error())
	default:
		logrus.WithError(err).Error("Unhandled internal server error")
		ErrorResponse(c, http.StatusInternalServerError, "An unexpected error occurred")
	}
}
