package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/somnia/sleep-tracker-api/internal/api/handler"
	"github.com/somnia/sleep-tracker-api/internal/api/middleware"
	"github.com/somnia/sleep-tracker-api/internal/core/service"
	"github.com/somnia/sleep-tracker-api/internal/infrastructure/config"
	mongorepo "github.com/somnia/sleep-tracker-api/internal/infrastructure/db/mongo"
	redisrepo "github.com/somnia/sleep-tracker-api/internal/infrastructure/db/redis"
	"github.com/somnia/sleep-tracker-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("sleeptracker"))

	// --- Dependencies ---
	userRepo := mongorepo.NewUserRepository(db)
	sleepRepo := mongorepo.NewSleepRepository(db)
	goalRepo := mongorepo.NewGoalRepository(db)
	reminderRepo := mongorepo.NewReminderRepository(db)
	statsCache := redisrepo.NewStatsCache(rdb)

	tokenService := service.NewTokenService(cfg.JWTSecret, time.Duration(cfg.TokenTTLMinutes)*time.Minute)
	authService := service.NewAuthService(userRepo, tokenService, log)
	userService := service.NewUserService(userRepo, sleepRepo, goalRepo, reminderRepo, log)
	sleepService := service.NewSleepService(sleepRepo, statsCache, log)
	goalService := service.NewGoalService(goalRepo, log)
	reminderService := service.NewReminderService(reminderRepo, log)
	analyticsService := service.NewAnalyticsService(sleepRepo, statsCache, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	sleepHandler := handler.NewSleepHandler(sleepService)
	goalHandler := handler.NewGoalHandler(goalService)
	reminderHandler := handler.NewReminderHandler(reminderService)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)

	// --- Public routes ---
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"service": "sleep-tracker-api"})
	})
	e.POST("/api/users/register", authHandler.Register)
	e.POST("/api/users/login", authHandler.Login)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Authenticated routes ---
	auth := middleware.Auth(tokenService, userRepo)
	g := e.Group("/api", auth)

	g.GET("/users/profile", userHandler.Profile)
	g.PUT("/users/profile", userHandler.UpdateProfile)
	g.DELETE("/users/profile", userHandler.Delete)

	g.POST("/sleep", sleepHandler.Create)
	g.GET("/sleep", sleepHandler.List)
	g.GET("/sleep/:id", sleepHandler.Get)
	g.PUT("/sleep/:id", sleepHandler.Update)
	g.DELETE("/sleep/:id", sleepHandler.Delete)
	g.POST("/sleep/:id/note", sleepHandler.AddNote)

	g.POST("/goals", goalHandler.Create)
	g.GET("/goals", goalHandler.List)
	g.GET("/goals/:id", goalHandler.Get)
	g.PUT("/goals/:id", goalHandler.Update)
	g.DELETE("/goals/:id", goalHandler.Delete)

	g.POST("/reminders", reminderHandler.Create)
	g.PUT("/reminders/:id", reminderHandler.Update)
	g.DELETE("/reminders/:id", reminderHandler.Delete)

	g.GET("/statistics", analyticsHandler.Statistics)
	g.GET("/recommendations", analyticsHandler.Recommendations)

	return e
}
