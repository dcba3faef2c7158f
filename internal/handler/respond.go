package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ideashelf/backend/internal/apperr"
	"github.com/ideashelf/backend/pkg/logger"
)

// respondError maps an error kind to its transport status. The mapping is
// the single place a core error turns into HTTP; storage faults get a
// generic message with the cause logged server-side only.
func respondError(c *gin.Context, err error) {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperr.KindAuthenticationRequired:
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case apperr.KindAuthorizationDenied:
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case apperr.KindNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperr.KindConflict:
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Log.Error("Request failed with storage error",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "storage failure"})
	}
}
