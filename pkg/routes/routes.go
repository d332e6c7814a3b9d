package routes

import (
	"context"
	"errors"
	"net/http"

	"ImpactFlow/internal/auth"
	"ImpactFlow/internal/config"
	"ImpactFlow/internal/diagnostics"
	"ImpactFlow/internal/models"
	"ImpactFlow/internal/resources"
	"ImpactFlow/internal/store"
	"ImpactFlow/pkg/middleware"
	"ImpactFlow/pkg/validation"

	"github.com/casbin/casbin/v2"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var EchoModules = fx.Module("echo",
	fx.Provide(NewEchoServer),
	fx.Provide(config.NewServerConfig),
	fx.Provide(config.NewMongoDBConfig),
	fx.Provide(config.NewMongoDBClient),
	fx.Provide(config.NewJWTConfig),
	fx.Provide(NewStore),
	fx.Provide(validation.New),
	fx.Provide(middleware.NewEnforcer),
	fx.Provide(auth.NewTokenManager),
	fx.Provide(fx.Annotate(auth.NewUserRepository, fx.As(new(auth.UserStore)))),
	fx.Provide(auth.NewUserService),
	fx.Provide(auth.NewAuthHandler),
	fx.Provide(resources.New),
	fx.Provide(diagnostics.NewHandler),
	fx.Invoke(RegisterRoutes))

// NewStore wraps the database and requires the unique email index that
// backs duplicate-registration checks.
func NewStore(lc fx.Lifecycle, client *config.MongoDBClient, logger *zap.Logger) *store.Store {
	s := store.New(client.Database, logger)
	s.RequireUniqueIndex(models.UserCollection, "email")
	if !s.Available() {
		return s
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := s.EnsureIndexes(ctx); err != nil {
				logger.Warn("indexes not ready, retrying on insert", zap.Error(err))
			}
			return nil
		},
	})
	return s
}

func NewEchoServer(lc fx.Lifecycle, shutdowner fx.Shutdowner, cfg *config.ServerConfig, v *validation.Validator, logger *zap.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = v
	e.HTTPErrorHandler = ErrorHandler(logger)
	middleware.SetupMiddleware(e, cfg.CORSOrigins, logger)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("server starting", zap.String("addr", cfg.Addr()))
			go func() {
				if err := e.Start(cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("server stopped unexpectedly", zap.Error(err))
					_ = shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("shutting down the server")
			return e.Shutdown(ctx)
		},
	})
	return e
}

type Handlers struct {
	fx.In

	Auth        *auth.AuthHandler
	Users       *auth.UserService
	Resources   *resources.Resources
	Diagnostics *diagnostics.Handler
	Enforcer    *casbin.Enforcer
	Logger      *zap.Logger
}

func RegisterRoutes(e *echo.Echo, h Handlers) {
	e.GET("/", h.Diagnostics.Root)
	e.GET("/test", h.Diagnostics.Test)

	e.POST("/auth/register", h.Auth.Register)
	e.POST("/auth/login", h.Auth.Login)

	e.GET("/auth/me", h.Auth.Me,
		middleware.JWTMiddleware(h.Users),
		middleware.CasbinMiddleware(h.Enforcer, h.Logger))

	r := h.Resources
	e.POST("/users", r.Users.Create)
	e.GET("/users", r.Users.List)
	e.POST("/events", r.Events.Create)
	e.GET("/events", r.Events.List)
	e.POST("/volunteers", r.Volunteers.Create)
	e.GET("/volunteers", r.Volunteers.List)
	e.POST("/event-volunteers", r.EventVolunteers.Create)
	e.GET("/event-volunteers", r.EventVolunteers.List)
	e.POST("/donations", r.Donations.Create)
	e.GET("/donations", r.Donations.List)
	e.POST("/tasks", r.Tasks.Create)
	e.GET("/tasks", r.Tasks.List)
	e.POST("/attendance", r.Attendance.Create)
	e.GET("/attendance", r.Attendance.List)
}
