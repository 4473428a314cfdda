package main

import (
	"context"
	"net/http"
	"time"

	_ "phorum/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"phorum/internal/auth"
	"phorum/internal/cache"
	"phorum/internal/config"
	"phorum/internal/db"
	"phorum/internal/handler"
	"phorum/internal/logger"
	"phorum/internal/model"
	"phorum/internal/repository"
	"phorum/internal/router"
	"phorum/internal/service"
)

// @title Phorum API
// @version 1.0
// @description Small web forum with session authentication and the AntiPhish reply bot.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.
func main() {
	cfg := config.Load()
	log := logger.Init(cfg.LogLevel, cfg.LogPretty)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database init")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Post{},
		&model.Reply{},
	); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	postRepo := repository.NewPostRepository(gormDB)
	replyRepo := repository.NewReplyRepository(gormDB)

	// Seed the admin and antiphish accounts on every startup; creation only
	// happens when absent.
	if err := service.EnsureSystemAccounts(context.Background(), userRepo); err != nil {
		log.Fatal().Err(err).Msg("seed system accounts")
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret, time.Duration(cfg.SessionTTLHours)*time.Hour)
	sessionStore := auth.NewSessionStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, sessionStore)
	postService := service.NewPostService(postRepo, replyRepo, userRepo)
	userService := service.NewUserService(userRepo, postRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	postHandler := handler.NewPostHandler(postService)
	userHandler := handler.NewUserHandler(userService)
	adminHandler := handler.NewAdminHandler(userService)

	// Register routes
	router.Register(
		e,
		cfg,
		sessionStore,
		userRepo,
		authHandler,
		postHandler,
		userHandler,
		adminHandler,
	)

	addr := ":" + cfg.ServerPort
	log.Info().Str("addr", addr).Msg("server starting")
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server start")
	}
}
