package auth

import (
	"net/http"
	"strings"

	"teampro-backend/internal/database/models"
	"teampro-backend/internal/logger"
	"teampro-backend/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	actorKey  = "actor"
	claimsKey = "auth_claims"
)

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth validates JWT tokens and sets the actor context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			unauthorized(c, "Authorization header is required")
			return
		}

		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			unauthorized(c, "Invalid token")
			return
		}
		actor, _ := claims.Actor()

		c.Set(actorKey, actor)
		c.Set(claimsKey, claims)

		// Attach the actor to the request logger
		ctx := logger.NewContext(c.Request.Context(), logger.WithContext(c.Request.Context()).WithActor(string(actor.Role), actor.ID.String()))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRole rejects requests whose actor has none of the roles
func (m *AuthMiddleware) RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok {
			unauthorized(c, "Authentication required")
			return
		}
		if !actor.Is(roles...) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "your role cannot perform this operation",
				"code":    "AuthorizationError",
			})
			return
		}
		c.Next()
	}
}

// GetActor is a helper function to extract the actor from context
func GetActor(c *gin.Context) (service.ActorContext, bool) {
	value, exists := c.Get(actorKey)
	if !exists {
		return service.ActorContext{}, false
	}
	actor, ok := value.(service.ActorContext)
	return actor, ok
}

// GetAuthClaims is a helper function to extract full auth claims from context
func GetAuthClaims(c *gin.Context) (*AuthClaims, bool) {
	claims, exists := c.Get(claimsKey)
	if !exists {
		return nil, false
	}

	authClaims, ok := claims.(*AuthClaims)
	return authClaims, ok
}

// SetActor stores an actor on the context, used by tests and internal callers
func SetActor(c *gin.Context, actor service.ActorContext) {
	c.Set(actorKey, actor)
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader || tokenString == "" {
		return "", false
	}
	return tokenString, true
}

func unauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"message": message,
		"code":    "Unauthorized",
	})
}
