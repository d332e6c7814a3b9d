package middleware

import (
	"context"
	"strings"

	"ImpactFlow/internal/models"

	"github.com/labstack/echo/v4"
)

// UserKey is the echo context key holding the authenticated *models.User.
const UserKey = "user"

// UserResolver turns a bearer token into the user it was issued for. It is
// expected to fail for an empty token.
type UserResolver interface {
	CurrentUser(ctx context.Context, token string) (*models.User, error)
}

func JWTMiddleware(resolver UserResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			user, err := resolver.CurrentUser(c.Request().Context(), tokenString)
			if err != nil {
				return err
			}
			c.Set(UserKey, user)
			return next(c)
		}
	}
}

// CurrentUser returns the user stored by JWTMiddleware.
func CurrentUser(c echo.Context) (*models.User, bool) {
	user, ok := c.Get(UserKey).(*models.User)
	return user, ok && user != nil
}

func bearerToken(header string) string {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
