package router

import (
	"errors"
	"net/http"

	"github.com/adnanhq/social-media-api/internal/auth"
	"github.com/adnanhq/social-media-api/internal/handlers"
	"github.com/adnanhq/social-media-api/internal/middleware"
	"github.com/adnanhq/social-media-api/internal/repositories"
	"github.com/adnanhq/social-media-api/internal/validators"
	"github.com/adnanhq/social-media-api/pkg/config"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

// SetupMiddleware configures the global middleware stack.
func SetupMiddleware(e *echo.Echo, logger zerolog.Logger) {
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	e.Use(echomw.BodyLimit("10M"))
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogMethod: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			evt := logger.Info()
			if v.Error != nil {
				evt = logger.Error().Err(v.Error)
			}
			evt.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Msg("request")
			return nil
		},
	}))
}

// SetupRoutes builds repositories and handlers and wires every route group.
func SetupRoutes(e *echo.Echo, db *config.DB, tokens *auth.TokenService, cfg *config.Config, logger zerolog.Logger) {
	e.Validator = validators.NewValidator()
	e.HTTPErrorHandler = newErrorHandler(cfg, logger)

	userRepo := repositories.NewPostgresUserRepository(db.Gorm)
	postRepo := repositories.NewPostgresPostRepository(db.Gorm)
	commentRepo := repositories.NewPostgresCommentRepository(db.Gorm)
	likeRepo := repositories.NewPostgresLikeRepository(db.Gorm)
	followRepo := repositories.NewPostgresFollowRepository(db.Gorm)

	requireAuth := middleware.RequireAuth(userRepo, tokens)
	optionalAuth := middleware.OptionalAuth(userRepo, tokens)

	authHandler := handlers.NewAuthHandler(userRepo, tokens, logger)
	userHandler := handlers.NewUserHandler(userRepo, followRepo, logger)
	followHandler := handlers.NewFollowHandler(followRepo, userRepo, logger)
	postHandler := handlers.NewPostHandler(postRepo, logger)
	likeHandler := handlers.NewLikeHandler(likeRepo, postRepo, logger)
	commentHandler := handlers.NewCommentHandler(commentRepo, postRepo, logger)

	e.GET("/", handlers.Root)
	e.GET("/health", handlers.HealthCheck)

	api := e.Group("/api")
	authHandler.RegisterAuthRoutes(api.Group("/auth"), requireAuth)

	users := api.Group("/users")
	userHandler.RegisterUserRoutes(users, requireAuth)
	followHandler.RegisterFollowRoutes(users, requireAuth, optionalAuth)

	postHandler.RegisterPostRoutes(api.Group("/posts"), requireAuth, optionalAuth)
	likeHandler.RegisterLikeRoutes(api.Group("/likes"), requireAuth, optionalAuth)
	commentHandler.RegisterCommentRoutes(api.Group("/comments"), requireAuth, optionalAuth)
}

// newErrorHandler renders every error as a JSON envelope. Unexpected errors
// become a generic 500; the underlying detail is only exposed in development.
func newErrorHandler(cfg *config.Config, logger zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var ve *validators.ValidationError
		if errors.As(err, &ve) {
			_ = c.JSON(http.StatusBadRequest, echo.Map{
				"error":   "Validation failed",
				"details": ve.Details,
			})
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			if he == echo.ErrNotFound {
				_ = c.JSON(http.StatusNotFound, echo.Map{
					"error": "Route not found",
					"path":  c.Request().URL.Path,
				})
				return
			}
			msg, ok := he.Message.(string)
			if !ok {
				msg = http.StatusText(he.Code)
			}
			_ = c.JSON(he.Code, echo.Map{"error": msg})
			return
		}

		logger.Error().Err(err).
			Str("method", c.Request().Method).
			Str("uri", c.Request().RequestURI).
			Msg("unhandled error")

		body := echo.Map{"error": "Internal server error"}
		if cfg.IsDevelopment() {
			body["detail"] = err.Error()
		}
		_ = c.JSON(http.StatusInternalServerError, body)
	}
}
