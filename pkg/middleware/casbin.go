package middleware

import (
	"errors"
	"fmt"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ErrForbidden is returned when the authenticated role may not perform the request.
var ErrForbidden = errors.New("forbidden: insufficient permissions")

const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && keyMatch(r.obj, p.obj) && (r.act == p.act || p.act == "*")
`

// DefaultPolicy lets every known role read its own identity.
var DefaultPolicy = [][]string{
	{"admin", "/auth/*", "*"},
	{"coordinator", "/auth/me", "GET"},
	{"volunteer", "/auth/me", "GET"},
	{"donor", "/auth/me", "GET"},
}

func NewEnforcer(logger *zap.Logger) (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("load rbac model: %w", err)
	}
	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("create enforcer: %w", err)
	}
	if _, err := enforcer.AddPolicies(DefaultPolicy); err != nil {
		return nil, fmt.Errorf("load rbac policy: %w", err)
	}
	logger.Debug("casbin enforcer ready", zap.Int("policies", len(DefaultPolicy)))
	return enforcer, nil
}

// CasbinMiddleware must run after JWTMiddleware.
func CasbinMiddleware(enforcer *casbin.Enforcer, logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := CurrentUser(c)
			if !ok {
				return ErrForbidden
			}
			role := user.EffectiveRole()
			obj := c.Path()
			act := c.Request().Method
			allowed, err := enforcer.Enforce(role, obj, act)
			if err != nil {
				return fmt.Errorf("rbac enforce: %w", err)
			}
			if !allowed {
				logger.Info("rbac denied", zap.String("role", role), zap.String("path", obj), zap.String("method", act))
				return ErrForbidden
			}
			return next(c)
		}
	}
}
