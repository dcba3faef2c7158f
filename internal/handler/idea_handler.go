package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ideashelf/backend/internal/middleware"
	"github.com/ideashelf/backend/internal/service"
)

type IdeaHandler struct {
	ideaService *service.IdeaService
}

func NewIdeaHandler(ideaService *service.IdeaService) *IdeaHandler {
	return &IdeaHandler{ideaService: ideaService}
}

type IdeaRequest struct {
	ProductName string `json:"product_name"`
	Subtitle    string `json:"subtitle"`
	IdeaText    string `json:"idea_text"`
	Tags        string `json:"tags"`
	Status      string `json:"status"`
}

func (r IdeaRequest) toInput() service.IdeaInput {
	return service.IdeaInput{
		ProductName: r.ProductName,
		Subtitle:    r.Subtitle,
		IdeaText:    r.IdeaText,
		Tags:        r.Tags,
		Status:      r.Status,
	}
}

// viewerID returns the actor's id, or 0 for anonymous requests.
func viewerID(c *gin.Context) int64 {
	if actor := middleware.ActorFrom(c); actor != nil {
		return actor.ID
	}
	return 0
}

// GET /api/ideas
func (h *IdeaHandler) List(c *gin.Context) {
	views, err := h.ideaService.List(viewerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// GET /api/ideas/:id
func (h *IdeaHandler) Get(c *gin.Context) {
	view, err := h.ideaService.Get(viewerID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// GET /api/my/ideas
func (h *IdeaHandler) ListMine(c *gin.Context) {
	views, err := h.ideaService.ListMine(middleware.ActorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// POST /api/ideas
func (h *IdeaHandler) Create(c *gin.Context) {
	var req IdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing fields"})
		return
	}

	id, err := h.ideaService.Create(middleware.ActorFrom(c), req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// PUT /api/ideas/:id
func (h *IdeaHandler) Update(c *gin.Context) {
	var req IdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing fields"})
		return
	}

	if err := h.ideaService.Update(middleware.ActorFrom(c), c.Param("id"), req.toInput()); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// DELETE /api/ideas/:id
func (h *IdeaHandler) Delete(c *gin.Context) {
	if err := h.ideaService.Delete(middleware.ActorFrom(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
