package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	_ "timetrack-service/docs"
	"timetrack-service/internal/config"
	"timetrack-service/internal/handlers"
	"timetrack-service/internal/middleware"
	"timetrack-service/internal/models"
	"timetrack-service/internal/repository"
	"timetrack-service/internal/services"
	"timetrack-service/internal/storage"
	"timetrack-service/internal/utils"
)

// @title TimeTrack API
// @version 1.0
// @description Multi-tenant time tracking service
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := config.InitLogger(); err != nil {
		log.Fatalf("Logger initialization failed: %v", err)
	}
	defer config.Logger.Sync()

	cfg := InitConfig()
	db := ConnectDatabase(cfg)
	MigrateDatabase(db)
	redisClient := InitRedis(cfg)

	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	entryRepo := repository.NewTimeEntryRepository(db)
	reportRepo := repository.NewReportRepository(db)

	authService := services.NewAuthService(userRepo, cfg.JWTSecret)
	projectService := services.NewProjectService(projectRepo)
	entryService := services.NewTimeEntryService(entryRepo, projectRepo)
	reportService := services.NewReportService(reportRepo, userRepo, projectRepo, redisClient)

	app := fiber.New()
	app.Use(middleware.RequestLogger())
	metrics := utils.NewMetrics()
	app.Use(metrics.Middleware())

	// Register Prometheus metrics endpoint
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	authHandler := handlers.NewAuthHandler(authService)
	projectHandler := handlers.NewProjectHandler(projectService)
	entryHandler := handlers.NewTimeEntryHandler(entryService)
	reportHandler := handlers.NewReportHandler(reportService)

	registerRoutes(app, authService, authHandler, projectHandler, entryHandler, reportHandler)

	routes := app.GetRoutes()
	log.Println("Registered routes:")
	for _, r := range routes {
		log.Printf("  %s %s\n", r.Method, r.Path)
	}

	go func() {
		log.Printf("Server listening on port %s", cfg.AppPort)
		if err := app.Listen(":" + cfg.AppPort); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.ShutdownWithTimeout(30 * time.Second); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	log.Println("Server stopped")
}

// registerRoutes wires all HTTP routes. Public routes (auth, swagger, health)
// must be registered before the guarded groups: Fiber matches in registration
// order, and the groups attach their middleware at the /api prefix.
func registerRoutes(app *fiber.App, parser middleware.TokenParser, authHandler *handlers.AuthHandler, projectHandler *handlers.ProjectHandler, entryHandler *handlers.TimeEntryHandler, reportHandler *handlers.ReportHandler) {
	api := app.Group("/api")
	api.Post("/auth/register", authHandler.Register)
	api.Post("/auth/login", authHandler.Login)

	api.Get("/swagger/*", swagger.HandlerDefault)

	// Add Health check endpoint
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	authed := api.Group("", middleware.RequireAuth(parser))
	authed.Get("/auth/me", authHandler.Me)
	authed.Get("/projects", projectHandler.ListProjects)
	authed.Get("/time-entries", entryHandler.ListTimeEntries)
	authed.Post("/time-entries", entryHandler.CreateTimeEntry)
	authed.Put("/time-entries/:id", entryHandler.StopTimeEntry)
	authed.Delete("/time-entries/:id", entryHandler.DeleteTimeEntry)

	admin := authed.Group("", middleware.RequireAdmin())
	admin.Post("/projects", projectHandler.CreateProject)
	admin.Get("/users", authHandler.ListUsers)
	admin.Get("/reports/summary", reportHandler.GetSummary)
}

func InitConfig() *config.Config {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}
	return cfg
}

func ConnectDatabase(cfg *config.Config) *gorm.DB {
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	return db
}

func MigrateDatabase(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.ProjectMember{},
		&models.TimeEntry{},
	)
	if err != nil {
		log.Fatalf("Database migration failed: %v", err)
	}
}

// InitRedis connects to Redis when configured; the report cache is disabled otherwise.
func InitRedis(cfg *config.Config) *storage.RedisClient {
	addr := cfg.GetRedisAddr()
	if addr == "" {
		log.Println("Redis not configured, report cache disabled")
		return nil
	}
	client, err := storage.NewRedisClient(addr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Redis client initialization failed: %v", err)
	}
	return client
}
