package middleware

import (
	"strings"

	"github.com/syauqinrm/blog-backend/helper"
	"github.com/syauqinrm/blog-backend/models"
	"github.com/syauqinrm/blog-backend/policy"
	"github.com/syauqinrm/blog-backend/services"

	"github.com/gin-gonic/gin"
)

var HTTPHelper = &helper.HTTPHelper{}

// AuthMiddleware rejects requests without a valid bearer token. Token parsing
// is delegated to the token service so REST and GraphQL authenticate through
// the same code path.
func AuthMiddleware(tokenService services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			HTTPHelper.SendUnauthorizedError(c, "Authorization header required", HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			HTTPHelper.SendUnauthorizedError(c, "Bearer token required", HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		claims, err := tokenService.Verify(tokenString)
		if err != nil {
			HTTPHelper.SendUnauthorizedError(c, err.Error(), HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		c.Set("authenticated", true)

		c.Next()
	}
}

// OptionalAuthMiddleware resolves the actor when a token is present but lets
// anonymous requests through. A missing token is not an error; an invalid one
// is.
func OptionalAuthMiddleware(tokenService services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			HTTPHelper.SendUnauthorizedError(c, "Bearer token required", HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		claims, err := tokenService.Verify(tokenString)
		if err != nil {
			HTTPHelper.SendUnauthorizedError(c, err.Error(), HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		c.Set("authenticated", true)

		c.Next()
	}
}

// ActorFromContext rebuilds the policy actor stored by the auth middleware.
// Returns the anonymous actor when the request carried no token.
func ActorFromContext(c *gin.Context) policy.Actor {
	if !c.GetBool("authenticated") {
		return policy.Actor{}
	}

	return policy.Actor{
		ID:            c.GetUint("user_id"),
		Role:          models.UserRole(c.GetString("role")),
		Authenticated: true,
	}
}
