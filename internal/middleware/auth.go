package middleware

import (
	"walletwise/internal/errors"
	"walletwise/internal/handlers"
	"walletwise/internal/models"
	"walletwise/internal/services"

	"github.com/labstack/echo/v4"
)

// ActorContextKey is the context key the resolved actor is stored under
const ActorContextKey = "actor"

// RequireAuth creates a middleware that requires a valid actor token and
// stores the resolved actor in the request context
func RequireAuth(tokenService services.TokenServiceInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return handlers.SendError(c, errors.AuthMissingToken)
			}

			token, err := tokenService.ExtractTokenFromHeader(authHeader)
			if err != nil {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			claims, err := tokenService.ValidateToken(token)
			if err != nil {
				if err == services.ErrExpiredToken {
					return handlers.SendError(c, errors.AuthExpiredToken)
				}
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			actor, err := claims.Actor()
			if err != nil {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat, errors.WithDetails("Invalid scope in token"))
			}

			c.Set(ActorContextKey, actor)
			c.Set("actor_role", actor.Role)
			c.Set("token_jti", claims.ID)
			c.Set("is_admin", actor.IsAdmin())

			return next(c)
		}
	}
}

// RequireRole creates a middleware that requires a specific role
func RequireRole(requiredRoles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actorRole, ok := c.Get("actor_role").(string)
			if !ok {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat, errors.WithDetails("Actor role not found in token"))
			}

			for _, role := range requiredRoles {
				if actorRole == role {
					return next(c)
				}
			}

			return handlers.SendError(c, errors.AuthInsufficientPermission)
		}
	}
}

// RequireAdmin is a convenience middleware that requires admin role
func RequireAdmin() echo.MiddlewareFunc {
	return RequireRole(models.RoleAdmin)
}
