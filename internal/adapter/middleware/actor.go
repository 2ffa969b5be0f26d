package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"navlend-backend/internal/auth"
	"navlend-backend/pkg/id"
)

// actorContextKey is where ActorMiddleware stores the resolved auth.Actor
// on the echo context.
const actorContextKey = "navlend.actor"

// ActorMiddleware builds the authorization context for the request from the
// identity headers set by the upstream auth gateway. The actor is carried
// as an explicit value from here on; handlers never inspect headers again.
// The system role is in-process only and is rejected at this edge.
func ActorMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID := strings.TrimSpace(c.Request().Header.Get("X-Actor-Id"))
			if userID == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing X-Actor-Id"})
			}
			if !id.IsID32(userID) {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid X-Actor-Id"})
			}
			role := auth.Role(strings.TrimSpace(c.Request().Header.Get("X-Actor-Role")))
			if !role.Valid() {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing or invalid X-Actor-Role"})
			}
			c.Set(actorContextKey, auth.Actor{UserID: userID, Role: role})
			return next(c)
		}
	}
}

// ActorFrom returns the actor stored by ActorMiddleware. The bool is false
// on routes that skipped the middleware.
func ActorFrom(c echo.Context) (auth.Actor, bool) {
	a, ok := c.Get(actorContextKey).(auth.Actor)
	return a, ok
}
