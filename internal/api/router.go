package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"gorm.io/gorm"

	"github.com/peopledesk/users-api/internal/api/handler"
	"github.com/peopledesk/users-api/internal/core/ports"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil when the stats cache is disabled.
func NewRouter(svc ports.UserService, db *gorm.DB, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("users_api"))

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- User routes ---
	userHandler := handler.NewUserHandler(svc)
	users := e.Group("/users")
	users.GET("", userHandler.List)
	users.POST("", userHandler.Create)
	users.GET("/stats", userHandler.Stats)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.PATCH("/:id", userHandler.Patch)
	users.DELETE("/:id", userHandler.Delete)

	return e
}
