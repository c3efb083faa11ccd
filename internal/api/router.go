package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/wanderplan/travel-planner-api/docs"
	"github.com/wanderplan/travel-planner-api/internal/api/handler"
	"github.com/wanderplan/travel-planner-api/internal/api/middleware"
	"github.com/wanderplan/travel-planner-api/internal/auth"
	"github.com/wanderplan/travel-planner-api/internal/core/service"
	"github.com/wanderplan/travel-planner-api/internal/infrastructure/db/postgres"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(pool *pgxpool.Pool, issuer *auth.TokenIssuer, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("travelplanner"))

	// --- Dependencies ---
	gateway := postgres.NewGateway(pool)
	userService := service.NewUserService(gateway, issuer, log)
	tripService := service.NewTripService(gateway, log)

	userHandler := handler.NewUserHandler(userService)
	tripHandler := handler.NewTripHandler(tripService)
	authRequired := middleware.Auth(issuer)

	// --- User routes ---
	e.POST("/users", userHandler.Register)
	e.POST("/users/login", userHandler.Login)
	e.GET("/users/:userId", userHandler.Get, authRequired)
	e.PUT("/users/:userId", userHandler.Update, authRequired)

	// --- Trip routes ---
	trips := e.Group("/trips", authRequired)
	trips.POST("", tripHandler.Create)
	trips.GET("/user/:userId", tripHandler.ListByUser)
	trips.GET("/:tripId", tripHandler.Get)
	trips.PUT("/:tripId", tripHandler.Update)
	trips.DELETE("/:tripId", tripHandler.Delete)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(pool)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
