package main

import (
	"log"
	"net/http"

	_ "contacthub/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"contacthub/internal/auth"
	"contacthub/internal/cache"
	"contacthub/internal/config"
	"contacthub/internal/db"
	"contacthub/internal/handler"
	"contacthub/internal/model"
	"contacthub/internal/repository"
	"contacthub/internal/router"
	"contacthub/internal/service"
)

// @title Contact Management API
// @version 1.0
// @description Multi-tenant contact management API with session-token authentication and password reset.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Contact{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	contactRepo := repository.NewContactRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	hasher := auth.NewBcryptHasher()
	resetIssuer := auth.NewUUIDIssuer()

	// Initialize services
	mailer := service.NewLogMailer(cfg.AppBaseURL)
	authService := service.NewAuthService(userRepo, hasher, resetIssuer, mailer, cfg.ResetTokenTTL)
	userService := service.NewUserService(userRepo, cacheClient)
	contactService := service.NewContactService(contactRepo, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, jwtService, cfg.IsDevelopment())
	userHandler := handler.NewUserHandler(userService)
	contactHandler := handler.NewContactHandler(contactService)

	// Register routes
	router.Register(e, jwtService, authHandler, userHandler, contactHandler)

	log.Printf("swagger documentation available at %s/swagger/index.html", cfg.AppBaseURL)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
