package handler

import (
	"github.com/gin-gonic/gin"

	builderapp "github.com/peplike/backend/internal/application/builder"
)

// BuilderHandler serves the stack-in-progress CRUD.
type BuilderHandler struct {
	BaseHandler
	service *builderapp.Service
	auth    gin.HandlerFunc
}

// NewBuilderHandler creates a new BuilderHandler
func NewBuilderHandler(service *builderapp.Service, auth gin.HandlerFunc) *BuilderHandler {
	return &BuilderHandler{service: service, auth: auth}
}

// RegisterRoutes registers builder routes
func (h *BuilderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	builder := rg.Group("/builder/stack")
	builder.Use(h.auth)
	{
		builder.GET("", h.Get)
		builder.POST("/items", h.Add)
		builder.DELETE("/items/:id", h.Remove)
		builder.POST("/items/:id/toggle-primary", h.TogglePrimary)
		builder.PUT("/items/:id/purpose", h.UpdatePurpose)
		builder.DELETE("", h.Clear)
	}
}

type addDraftItemRequest struct {
	PeptideID string `json:"peptide_id" binding:"required"`
	Purpose   string `json:"purpose"`
}

type updatePurposeRequest struct {
	Purpose string `json:"purpose"`
}

// Get returns the current draft
func (h *BuilderHandler) Get(c *gin.Context) {
	draft, err := h.service.Get(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, draft)
}

// Add puts a compound into the draft
func (h *BuilderHandler) Add(c *gin.Context) {
	var req addDraftItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	draft, err := h.service.Add(c.Request.Context(), req.PeptideID, req.Purpose)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, draft)
}

// Remove drops a compound from the draft
func (h *BuilderHandler) Remove(c *gin.Context) {
	draft, err := h.service.Remove(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, draft)
}

// TogglePrimary flips the primary flag on a draft entry
func (h *BuilderHandler) TogglePrimary(c *gin.Context) {
	draft, err := h.service.TogglePrimary(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, draft)
}

// UpdatePurpose replaces the purpose note on a draft entry
func (h *BuilderHandler) UpdatePurpose(c *gin.Context) {
	var req updatePurposeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	draft, err := h.service.UpdatePurpose(c.Request.Context(), c.Param("id"), req.Purpose)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, draft)
}

// Clear empties the draft
func (h *BuilderHandler) Clear(c *gin.Context) {
	if err := h.service.Clear(c.Request.Context()); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
