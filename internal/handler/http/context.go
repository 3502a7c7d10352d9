package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/zach0583-rgb/ThatZachGuy/internal/middleware"
)

// currentUserID pulls the authenticated user id set by the auth
// middleware. Writes the error response itself and returns false when
// the id is missing or of the wrong type.
func currentUserID(c *gin.Context) (uint, bool) {
	idAny, exists := c.Get(middleware.ContextUserID)
	if !exists {
		logrus.Warn("Handler: user id not found in context, auth middleware missing or failed")
		ErrorResponse(c, http.StatusUnauthorized, "User not authenticated")
		return 0, false
	}
	id, ok := idAny.(uint)
	if !ok {
		logrus.Error("Handler: user id in context is not uint")
		ErrorResponse(c, http.StatusInternalServerError, "Internal server error processing user ID")
		return 0, false
	}
	return id, true
}

// pathID parses a numeric id path parameter. A value that does not
// parse is rejected with a 400 before any store lookup happens.
func pathID(c *gin.Context, param, label string) (uint, bool) {
	raw := c.Param(param)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		ErrorResponse(c, http.StatusBadRequest, "Invalid "+label)
		return 0, false
	}
	return uint(id), true
}
