package handler

import (
	"github.com/gin-gonic/gin"

	favoritesapp "github.com/peplike/backend/internal/application/favorites"
	"github.com/peplike/backend/internal/interfaces/http/middleware"
)

// FavoritesHandler serves per-user favorites.
type FavoritesHandler struct {
	BaseHandler
	service *favoritesapp.Service
	auth    gin.HandlerFunc
}

// NewFavoritesHandler creates a new FavoritesHandler
func NewFavoritesHandler(service *favoritesapp.Service, auth gin.HandlerFunc) *FavoritesHandler {
	return &FavoritesHandler{service: service, auth: auth}
}

// RegisterRoutes registers favorites routes
func (h *FavoritesHandler) RegisterRoutes(rg *gin.RouterGroup) {
	favorites := rg.Group("/favorites")
	favorites.Use(h.auth)
	{
		favorites.GET("", h.List)
		favorites.POST("", h.Add)
		favorites.DELETE("/:id", h.Remove)
		favorites.GET("/:id/status", h.Status)
		favorites.GET("/count", h.Count)
		favorites.GET("/categories", h.Categories)
		favorites.DELETE("", h.Clear)
	}
}

type addFavoriteRequest struct {
	PeptideID string `json:"peptide_id" binding:"required"`
}

// List returns the user's favorites, optionally searched or filtered by
// category
func (h *FavoritesHandler) List(c *gin.Context) {
	userID := middleware.GetJWTUserID(c)

	if term := c.Query("search"); term != "" {
		list, err := h.service.Search(c.Request.Context(), userID, term)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.SuccessWithTotal(c, list, len(list))
		return
	}

	if category := c.Query("category"); category != "" {
		list, err := h.service.FilterByCategory(c.Request.Context(), userID, category)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.SuccessWithTotal(c, list, len(list))
		return
	}

	list, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithTotal(c, list, len(list))
}

// Add favorites a compound
func (h *FavoritesHandler) Add(c *gin.Context) {
	var req addFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	userID := middleware.GetJWTUserID(c)
	if err := h.service.Add(c.Request.Context(), userID, req.PeptideID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Remove unfavorites a compound
func (h *FavoritesHandler) Remove(c *gin.Context) {
	userID := middleware.GetJWTUserID(c)
	if err := h.service.Remove(c.Request.Context(), userID, c.Param("id")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Status reports whether the compound is favorited by the user
func (h *FavoritesHandler) Status(c *gin.Context) {
	userID := middleware.GetJWTUserID(c)
	favorited, err := h.service.IsFavorited(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"favorited": favorited})
}

// Count returns how many favorites the user has
func (h *FavoritesHandler) Count(c *gin.Context) {
	userID := middleware.GetJWTUserID(c)
	count, err := h.service.Count(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"count": count})
}

// Categories returns the distinct categories across the user's favorites
func (h *FavoritesHandler) Categories(c *gin.Context) {
	userID := middleware.GetJWTUserID(c)
	categories, err := h.service.Categories(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, categories)
}

// Clear removes all of the user's favorites
func (h *FavoritesHandler) Clear(c *gin.Context) {
	userID := middleware.GetJWTUserID(c)
	if err := h.service.Clear(c.Request.Context(), userID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
