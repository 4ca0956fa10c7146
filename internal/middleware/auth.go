package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/devsquadbr/crm-template/internal/config"
	"github.com/devsquadbr/crm-template/internal/models"
)

const (
	ContextUserID    = "userID"
	ContextUserRoles = "userRoles"
)

func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_authorization_header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_authorization_header"})
			return
		}

		tokenString := parts[1]

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_claims"})
			return
		}

		userID, ok := claims["sub"].(string)
		if !ok || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_payload"})
			return
		}

		var roles []string
		if raw, ok := claims["roles"].([]interface{}); ok {
			for _, r := range raw {
				if role, ok := r.(string); ok {
					roles = append(roles, role)
				}
			}
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextUserRoles, roles)

		c.Next()
	}
}

// RequireAdministrator gates a route group on the administrator role carried
// by the token. Runs after AuthMiddleware.
func RequireAdministrator() gin.HandlerFunc {
	return func(c *gin.Context) {
		rolesVal, exists := c.Get(ContextUserRoles)
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "administrator_required"})
			return
		}

		roles, _ := rolesVal.([]string)
		for _, role := range roles {
			if role == models.RoleAdministrator {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "administrator_required"})
	}
}
