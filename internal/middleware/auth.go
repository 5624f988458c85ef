package middleware

import (
	"net/http"
	"strings"

	"cargolink_backend/internal/auth"
	"cargolink_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// AuthMiddleware - middleware проверки JWT.
// Кладет в контекст явную auth.Identity; сервисы получают ее параметром.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing or invalid"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(identityKey, auth.Identity{UserID: claims.UserID, IsAdmin: claims.IsAdmin})

		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// AdminMiddleware пускает дальше только администраторов
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := CurrentIdentity(c)
		if !identity.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: insufficient permissions"})
			return
		}
		c.Next()
	}
}

// CurrentIdentity извлекает идентичность вызывающего из gin-контекста.
// На публичных маршрутах возвращает анонимную идентичность.
func CurrentIdentity(c *gin.Context) auth.Identity {
	val, exists := c.Get(identityKey)
	if !exists {
		return auth.Anonymous()
	}
	identity, ok := val.(auth.Identity)
	if !ok {
		return auth.Anonymous()
	}
	return identity
}
