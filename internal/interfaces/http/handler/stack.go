package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	stackapp "github.com/peplike/backend/internal/application/stack"
)

// StackHandler serves recommendation requests and their exports.
type StackHandler struct {
	BaseHandler
	service *stackapp.Service
}

// NewStackHandler creates a new StackHandler
func NewStackHandler(service *stackapp.Service) *StackHandler {
	return &StackHandler{service: service}
}

// RegisterRoutes registers stack routes
func (h *StackHandler) RegisterRoutes(rg *gin.RouterGroup) {
	stacks := rg.Group("/stacks")
	{
		stacks.POST("", h.Create)
		stacks.GET("/:goalId", h.Get)
		stacks.GET("/:goalId/checklist", h.Checklist)
		stacks.GET("/:goalId/export", h.Export)
	}
}

// Create resolves a recommendation request for a goal
func (h *StackHandler) Create(c *gin.Context) {
	var req stackapp.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Get returns the cached response for a goal
func (h *StackHandler) Get(c *gin.Context) {
	resp, err := h.service.Cached(c.Param("goalId"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Checklist returns the cached response rendered as plain text
func (h *StackHandler) Checklist(c *gin.Context) {
	text, err := h.service.Checklist(c.Param("goalId"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(text))
}

// Export returns the cached response rendered as a downloadable Markdown file
func (h *StackHandler) Export(c *gin.Context) {
	content, filename, err := h.service.Export(c.Param("goalId"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(content))
}
