package middleware

import (
	"honeydew-api/core/cache"
	"honeydew-api/core/constants"
	"honeydew-api/core/controller"
	"honeydew-api/core/errors"
	"honeydew-api/core/utils"
	"strings"

	"github.com/labstack/echo/v4"
)

// Middleware holds shared dependencies for route middleware.
type Middleware struct {
	cache *cache.Cache
}

func New(c *cache.Cache) *Middleware {
	return &Middleware{cache: c}
}

// tokenFromRequest pulls the auth token from the session cookie, falling back
// to an Authorization bearer header for non-browser clients.
func tokenFromRequest(c echo.Context) string {
	if cookie, err := c.Cookie(constants.AuthCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}

	return ""
}

// AuthMiddleware rejects requests without a valid, non-revoked token and
// stores the parsed claims on the request context.
func (m *Middleware) AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := tokenFromRequest(c)
			if token == "" {
				return controller.NewErrorResponse(401, errors.ErrUnauthorized, "Not authenticated")
			}

			if m.cache != nil {
				blacklisted, err := m.cache.IsTokenBlacklisted(c.Request().Context(), token)
				if err == nil && blacklisted {
					return controller.NewErrorResponse(401, errors.ErrUnauthorized, "Token revoked")
				}
			}

			claims, err := utils.ValidateAndParseToken(token)
			if err != nil {
				return controller.NewErrorResponse(401, errors.ErrUnauthorized, "Invalid or expired token")
			}

			c.Set(constants.ContextTokenData, claims)
			return next(c)
		}
	}
}
