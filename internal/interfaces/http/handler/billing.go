package handler

import (
	"github.com/gin-gonic/gin"

	billingapp "github.com/peplike/backend/internal/application/billing"
	"github.com/peplike/backend/internal/interfaces/http/middleware"
)

// BillingHandler serves subscription plans and Stripe sessions.
type BillingHandler struct {
	BaseHandler
	service *billingapp.Service
	auth    gin.HandlerFunc
}

// NewBillingHandler creates a new BillingHandler
func NewBillingHandler(service *billingapp.Service, auth gin.HandlerFunc) *BillingHandler {
	return &BillingHandler{service: service, auth: auth}
}

// RegisterRoutes registers billing routes
func (h *BillingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	billing := rg.Group("/billing")
	{
		billing.GET("/plans", h.Plans)
		billing.POST("/checkout-session", h.auth, h.CreateCheckoutSession)
		billing.POST("/portal-session", h.auth, h.CreatePortalSession)
	}
}

type portalSessionRequest struct {
	CustomerID string `json:"customer_id" binding:"required"`
	ReturnURL  string `json:"return_url" binding:"required"`
}

// Plans returns the available subscription tiers
func (h *BillingHandler) Plans(c *gin.Context) {
	h.Success(c, h.service.Plans(c.Request.Context()))
}

// CreateCheckoutSession starts a Stripe Checkout session
func (h *BillingHandler) CreateCheckoutSession(c *gin.Context) {
	var req billingapp.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	userID := middleware.GetJWTUserID(c)
	email := middleware.GetJWTEmail(c)
	out, err := h.service.CreateCheckoutSession(c.Request.Context(), userID, email, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, out)
}

// CreatePortalSession returns a billing portal URL
func (h *BillingHandler) CreatePortalSession(c *gin.Context) {
	var req portalSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	out, err := h.service.CreatePortalSession(c.Request.Context(), req.CustomerID, req.ReturnURL)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, out)
}
