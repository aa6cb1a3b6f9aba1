package handler

import (
	"github.com/gin-gonic/gin"

	identityapp "github.com/peplike/backend/internal/application/identity"
	"github.com/peplike/backend/internal/interfaces/http/middleware"
)

// AuthHandler proxies the external auth service.
type AuthHandler struct {
	BaseHandler
	service *identityapp.Service
	auth    gin.HandlerFunc
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(service *identityapp.Service, auth gin.HandlerFunc) *AuthHandler {
	return &AuthHandler{service: service, auth: auth}
}

// RegisterRoutes registers auth routes
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
		authGroup.POST("/logout", h.auth, h.Logout)
		authGroup.GET("/me", h.auth, h.Me)
		authGroup.GET("/validate", h.auth, h.Validate)
	}
}

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates an account
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	user, err := h.service.Register(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, user)
}

// Login exchanges credentials for a token
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Logout drops the stored token and profile
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.service.Logout(c.Request.Context()); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Me returns the authenticated user's profile
func (h *AuthHandler) Me(c *gin.Context) {
	token := middleware.GetJWTToken(c)
	user, err := h.service.CurrentUser(c.Request.Context(), token)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, user)
}

// Validate reports whether the auth service accepts the request's token
func (h *AuthHandler) Validate(c *gin.Context) {
	token := middleware.GetJWTToken(c)
	h.Success(c, gin.H{"valid": h.service.Validate(c.Request.Context(), token)})
}
