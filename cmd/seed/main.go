// Command seed ensures the system accounts exist without starting the
// server. The server performs the same seeding on startup; this tool is for
// provisioning a fresh database ahead of time.
package main

import (
	"context"

	"phorum/internal/config"
	"phorum/internal/db"
	"phorum/internal/logger"
	"phorum/internal/model"
	"phorum/internal/repository"
	"phorum/internal/service"
)

func main() {
	cfg := config.Load()
	log := logger.Init(cfg.LogLevel, cfg.LogPretty)

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}

	if err := gormDB.AutoMigrate(&model.User{}); err != nil {
		log.Fatal().Err(err).Msg("migrate")
	}

	userRepo := repository.NewUserRepository(gormDB)
	if err := service.EnsureSystemAccounts(context.Background(), userRepo); err != nil {
		log.Fatal().Err(err).Msg("seed system accounts")
	}

	log.Info().Msg("seed completed")
}
