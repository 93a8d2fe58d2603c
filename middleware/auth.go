package middleware

import (
	"errors"
	"net/http"
	"strings"

	"frushh/models"
	"frushh/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const claimsKey = "auth_claims"

func abortUnauthorized(c *gin.Context, message string, err error) {
	resp := models.ErrorResponse{Success: false, Message: message}
	if err != nil {
		resp.Error = err.Error()
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, resp)
}

// AuthMiddleware requires a bearer token for a known customer and makes its
// claims available through Claims and CustomerID.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "Authorization header required", nil)
			return
		}

		scheme, token, ok := strings.Cut(authHeader, " ")
		token = strings.TrimSpace(token)
		if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
			abortUnauthorized(c, "Invalid authorization header format", nil)
			return
		}

		claims, err := utils.ValidateToken(token)
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			abortUnauthorized(c, "Session expired, please log in again", err)
			return
		case err != nil:
			abortUnauthorized(c, "Invalid token", err)
			return
		case claims.UserID <= 0:
			abortUnauthorized(c, "Invalid token", errors.New("token has no customer"))
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// AdminMiddleware must run after AuthMiddleware.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := Claims(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, models.ErrorResponse{
				Success: false,
				Message: "User role not found",
			})
			return
		}

		if claims.Role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, models.ErrorResponse{
				Success: false,
				Message: "Access denied. Admin role required",
			})
			return
		}

		c.Next()
	}
}

// SetClaims attaches claims to the request as AuthMiddleware does.
func SetClaims(c *gin.Context, claims *utils.Claims) {
	c.Set(claimsKey, claims)
}

func Claims(c *gin.Context) (*utils.Claims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*utils.Claims)
	return claims, ok && claims != nil
}

// CustomerID is the signed-in customer, or 0 outside AuthMiddleware.
func CustomerID(c *gin.Context) int {
	if claims, ok := Claims(c); ok {
		return claims.UserID
	}
	return 0
}
