package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ideashelf/backend/internal/middleware"
	"github.com/ideashelf/backend/internal/service"
)

type LikeHandler struct {
	likeService *service.LikeService
}

func NewLikeHandler(likeService *service.LikeService) *LikeHandler {
	return &LikeHandler{likeService: likeService}
}

// POST /api/ideas/:id/like
func (h *LikeHandler) Like(c *gin.Context) {
	result, err := h.likeService.Like(middleware.ActorFrom(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// DELETE /api/ideas/:id/like
func (h *LikeHandler) Unlike(c *gin.Context) {
	result, err := h.likeService.Unlike(middleware.ActorFrom(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// POST /api/ideas/:id/like/toggle
//
// Deprecated single-endpoint contract kept for older clients; it flips the
// like based on current state. New clients should use POST/DELETE .../like.
func (h *LikeHandler) Toggle(c *gin.Context) {
	result, err := h.likeService.Toggle(middleware.ActorFrom(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
