package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ideashelf/backend/internal/middleware"
	"github.com/ideashelf/backend/internal/service"
	"github.com/ideashelf/backend/pkg/logger"
)

type AdminHandler struct {
	authService *service.AuthService
}

func NewAdminHandler(authService *service.AuthService) *AdminHandler {
	return &AdminHandler{authService: authService}
}

// GetAllUsers returns every registered account.
// GET /api/admin/users
func (h *AdminHandler) GetAllUsers(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	logger.Log.Info("Admin fetching all users",
		zap.Int64("admin_id", actor.ID),
	)

	users, err := h.authService.GetAllUsers()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}
