package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/peplike/backend/internal/infrastructure/auth"
	"github.com/peplike/backend/internal/interfaces/http/dto"
)

// Context keys set by JWTAuth
const (
	ContextKeyUserID = "jwt_user_id"
	ContextKeyEmail  = "jwt_email"
	ContextKeyPlan   = "jwt_plan"
	ContextKeyToken  = "jwt_token"
)

// JWTAuth validates the Authorization bearer token and stores its claims
// in the gin context.
func JWTAuth(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := extractBearerToken(c)
		if !ok {
			abortUnauthorized(c, "Missing or malformed Authorization header")
			return
		}

		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyEmail, claims.Email)
		c.Set(ContextKeyPlan, claims.Plan)
		c.Set(ContextKeyToken, token)

		c.Next()
	}
}

// GetJWTUserID returns the authenticated user's ID, or "" when the
// request is unauthenticated.
func GetJWTUserID(c *gin.Context) string {
	return c.GetString(ContextKeyUserID)
}

// GetJWTEmail returns the authenticated user's email.
func GetJWTEmail(c *gin.Context) string {
	return c.GetString(ContextKeyEmail)
}

// GetJWTToken returns the raw bearer token of the request.
func GetJWTToken(c *gin.Context) string {
	return c.GetString(ContextKeyToken)
}

func extractBearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func abortUnauthorized(c *gin.Context, message string) {
	requestID := c.GetString("request_id")
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewErrorResponseWithRequestID(dto.ErrCodeUnauthorized, message, requestID))
}
