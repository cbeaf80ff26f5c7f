package main

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/localnerve/projectsdb/data"
	"github.com/localnerve/projectsdb/internal/config"
	"github.com/localnerve/projectsdb/internal/database"
	"github.com/localnerve/projectsdb/internal/handlers"
	"github.com/localnerve/projectsdb/internal/logutils"
	"github.com/localnerve/projectsdb/internal/middleware"
	"github.com/localnerve/projectsdb/internal/services"
	"github.com/localnerve/projectsdb/internal/utils"

	_ "github.com/localnerve/projectsdb/docs/api" // Swagger docs
)

// @title ProjectsDB API
// @version 1.0.0
// @description Marketing agency project tracker: template-provisioned projects, phases, tasks and assignments
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/localnerve/projectsdb
// @contact.email info@localnerve.com

// @license.name AGPL-3.0
// @license.url https://www.gnu.org/licenses/agpl-3.0.html

// @host localhost:3000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name cookie_session

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	log := logutils.Log

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database (app pool)
	appDB, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to app database: %v", err)
	}
	defer database.Close(appDB)

	// Connect to database (user pool)
	userDB, err := database.ConnectUser(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to user database: %v", err)
	}
	defer database.Close(userDB)

	if err := database.AutoMigrate(appDB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if cfg.SeedTemplates {
		catalog, err := data.DefaultCatalog()
		if err != nil {
			log.Fatalf("Failed to load template catalog: %v", err)
		}
		if _, err := services.SeedTemplates(appDB, catalog); err != nil {
			log.Fatalf("Failed to seed templates: %v", err)
		}
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          customErrorHandler,
		DisableStartupMessage: false,
		BodyLimit:             16 * 1024 * 1024,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(middleware.VersionMiddleware())
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(compress.New())

	// Prometheus metrics
	prometheus := fiberprometheus.New("projectsdb")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	auth := middleware.AuthConfig{
		DB:       appDB,
		Tokens:   services.NewTokenVerifier(cfg.AuthzJWTSecret),
		Disabled: cfg.AuthDisabled,
	}
	if cfg.AuthDisabled {
		log.Warn("Authentication is disabled; requests run without a user")
	} else {
		auth.Auth = &services.LazyAuthorizer{Config: cfg}
		log.Info("Authorizer will be initialized on first authenticated request")
	}

	handlers.RegisterRoutes(app.Group("/api"), handlers.Dependencies{
		Config: cfg,
		AppDB:  appDB,
		UserDB: userDB,
		Auth:   auth,
		Slack:  services.NewSlackNotifier(cfg),
	})

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return utils.ErrorResponse(c, "[404] Resource Not Found", fiber.StatusNotFound, "not_found")
	})

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	port := cfg.Port
	log.Infof("Starting server on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Info("Server stopped")
}

// customErrorHandler covers framework errors and recovered panics; handlers map their own failures
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()
	errorType := "internal"

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		message = fiberErr.Message
		errorType = "framework"
	}

	if code >= fiber.StatusInternalServerError {
		logutils.Log.WithError(err).WithFields(logutils.Fields{
			"url":       c.OriginalURL(),
			"requestid": middleware.RequestID(c),
		}).Error("Unhandled request error")
	}

	return utils.ErrorResponse(c, message, code, errorType)
}
