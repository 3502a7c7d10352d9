package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/zach0583-rgb/ThatZachGuy/internal/token"
)

// ContextUserID is the gin context key under which the authenticated
// user id is stored.
const ContextUserID = "user_id"

// ErrMissingAuthHeader indicates no Authorization header was sent.
var ErrMissingAuthHeader = errors.New("missing Authorization header")

// Auth returns a middleware that validates the bearer token and puts
// the user id into the request context. Every failure is a 401; the
// token manager does not distinguish expired from tampered.
func Auth(tokens *token.Manager) gin.HandlerFunc {
	if tokens == nil {
		panic("token manager cannot be nil for Auth middleware")
	}

	return func(c *gin.Context) {
		raw, err := extractToken(c)
		if err != nil {
			if errors.Is(err, ErrMissingAuthHeader) {
				logrus.Debug("Auth middleware: missing Authorization header")
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			} else {
				logrus.Debug("Auth middleware: malformed Authorization header")
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token format"})
			}
			c.Abort()
			return
		}

		userID, err := tokens.Validate(raw)
		if err != nil {
			logrus.WithError(err).Warn("Auth middleware: invalid token")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(ContextUserID, userID)
		logrus.WithField("user_id", userID).Debug("Auth middleware: user authenticated")
		c.Next()
	}
}

// errMalformedHeader is returned for an Authorization header that is
// not "Bearer <token>".
var errMalformedHeader = errors.New("malformed Authorization header")

func extractToken(c *gin.Context) (string, error) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", ErrMissingAuthHeader
	}
	parts := strings.Split(header, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errMalformedHeader
	}
	return parts[1], nil
}
