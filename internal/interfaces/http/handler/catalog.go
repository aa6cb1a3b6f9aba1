package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	catalogapp "github.com/peplike/backend/internal/application/catalog"
)

// CatalogHandler serves catalog browsing and candidate preselection.
type CatalogHandler struct {
	BaseHandler
	service *catalogapp.Service
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(service *catalogapp.Service) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// RegisterRoutes registers catalog routes
func (h *CatalogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	catalog := rg.Group("/catalog")
	{
		catalog.GET("/items", h.List)
		catalog.GET("/items/:slug", h.GetBySlug)
		catalog.GET("/categories", h.Categories)
		catalog.GET("/goals", h.Goals)
		catalog.GET("/goals/:id/candidates", h.Candidates)
	}
}

// List returns catalog items, optionally filtered
func (h *CatalogHandler) List(c *gin.Context) {
	filter := catalogapp.ListFilter{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Tag:      c.Query("tag"),
		Trending: c.Query("trending") == "true",
	}
	items := h.service.List(c.Request.Context(), filter)
	h.SuccessWithTotal(c, items, len(items))
}

// GetBySlug returns one catalog item
func (h *CatalogHandler) GetBySlug(c *gin.Context) {
	item, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, item)
}

// Categories returns the distinct catalog categories
func (h *CatalogHandler) Categories(c *gin.Context) {
	h.Success(c, h.service.Categories(c.Request.Context()))
}

// Goals returns the supported goals
func (h *CatalogHandler) Goals(c *gin.Context) {
	h.Success(c, h.service.Goals(c.Request.Context()))
}

// Candidates returns the preselected candidate pool for a goal
func (h *CatalogHandler) Candidates(c *gin.Context) {
	max := 0
	if raw := c.Query("max"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			h.BadRequest(c, "max must be a non-negative integer")
			return
		}
		max = parsed
	}

	items, err := h.service.Candidates(c.Request.Context(), c.Param("id"), max)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithTotal(c, items, len(items))
}
