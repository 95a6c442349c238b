package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	_ "github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/shopapp/backend/docs"
	authMW "github.com/shopapp/backend/internal/auth/middleware"
	"github.com/shopapp/backend/internal/auth/service"
	"github.com/shopapp/backend/internal/config"
	"github.com/shopapp/backend/internal/handlers"
	"github.com/shopapp/backend/internal/logger"
	"github.com/shopapp/backend/internal/mailer"
	"github.com/shopapp/backend/internal/middlewares"
	"github.com/shopapp/backend/internal/models"
	"github.com/shopapp/backend/internal/repositories"
	"github.com/shopapp/backend/internal/services"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// @title ShopApp API
// @version 1.0
// @description API for shop authentication, user management and catalog

// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	logger.Logger.Info("Starting ShopApp Backend")

	// Connect to database
	db, err := connectDB(cfg.DSN())
	if err != nil {
		logger.Logger.Fatal("Failed to connect to database", zap.Error(err))
		os.Exit(1)
	}
	defer db.Close()

	// Run migrations
	if err := runMigrations(db); err != nil {
		logger.Logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize JWT token generator
	tokenGenerator := service.NewTokenGenerator(cfg.JWT.Secret, cfg.JWT.CookieExpireDays)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db, logger.Logger)
	productRepo := repositories.NewProductRepository(db, logger.Logger)
	categoryRepo := repositories.NewCategoryRepository(db, logger.Logger)

	// Initialize mailer
	mailSender := mailer.New(cfg.SMTP)

	// Initialize services
	authService := services.NewAuthService(userRepo, mailSender, tokenGenerator, cfg.JWT.ResetTokenExpiry, logger.Logger)
	profileService := services.NewProfileService(userRepo)
	adminService := services.NewAdminService(userRepo, logger.Logger)
	productService := services.NewProductService(productRepo, logger.Logger)
	categoryService := services.NewCategoryService(categoryRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, logger.Logger, cfg.JWT.CookieExpireDays, cfg.IsProduction())
	profileHandler := handlers.NewProfileHandler(profileService, logger.Logger)
	adminHandler := handlers.NewAdminHandler(adminService, logger.Logger)
	productHandler := handlers.NewProductHandler(productService, logger.Logger)
	categoryHandler := handlers.NewCategoryHandler(categoryService, logger.Logger)
	resetCleaningHandler := handlers.NewResetCleaningHandler(userRepo, logger.Logger)

	// Initialize auth middleware
	authMiddleware := authMW.AuthMiddleware(tokenGenerator)
	adminMiddleware := authMW.RoleMiddleware(tokenGenerator, int(models.RoleAdmin))
	apiKeyMiddleware := authMW.APIKeyMiddleware(cfg.APIKey)

	// Setup router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(middlewares.RequestIDMiddleware)
	r.Use(middlewares.LoggerMiddleware(logger.Logger))
	r.Use(middlewares.RecoveryMiddleware(logger.Logger))
	r.Use(middlewares.CORSMiddleware(cfg.CORS.AllowedOrigins))
	r.Use(httprate.LimitByIP(100, time.Minute))
	r.Use(middlewares.RequestSizeLimitMiddleware(10 * 1024 * 1024)) // 10MB

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%d/swagger/doc.json", cfg.Server.Port)),
	))

	// Scope router to /api/v1
	r.Route("/api/v1", func(r chi.Router) {
		// Register auth routes
		authHandler.RegisterRoutes(r)
		// Register profile routes
		profileHandler.RegisterRoutes(r, authMiddleware)
		// Register catalog routes; product writes require the admin role
		productHandler.RegisterRoutes(r, adminMiddleware)
		categoryHandler.RegisterRoutes(r)
		// Register maintenance routes with API key middleware
		r.Group(func(r chi.Router) {
			r.Use(apiKeyMiddleware)
			resetCleaningHandler.RegisterRoutes(r)
		})
		// Register admin routes with role middleware
		r.Group(func(r chi.Router) {
			r.Use(adminMiddleware)
			adminHandler.RegisterRoutes(r)
		})
	})

	// Start server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Logger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Logger.Info("Server exited")
}

// connectDB connects to the database
func connectDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// runMigrations runs database migrations
func runMigrations(db *sql.DB) error {
	driver, err := mysql.WithInstance(db, &mysql.Config{
		MigrationsTable: "shopapp_schema_migrations",
	})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	migrationPath := "file://migrations"
	if _, err := os.Stat("migrations"); os.IsNotExist(err) {
		// Try parent directory if running from cmd
		if _, err := os.Stat("../migrations"); err == nil {
			migrationPath = "file://../migrations"
		}
	}

	m, err := migrate.NewWithDatabaseInstance(
		migrationPath,
		"mysql",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
