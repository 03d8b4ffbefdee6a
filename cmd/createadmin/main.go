// Command createadmin bootstraps the reserved admin account. Run it once
// against a fresh database, then change the password after first login.
package main

import (
	"context"
	"flag"
	"time"

	"github.com/wunif/site-api/internal/core/service"
	"github.com/wunif/site-api/internal/infrastructure/config"
	mongodb "github.com/wunif/site-api/internal/infrastructure/db/mongo"
	"github.com/wunif/site-api/pkg/logger"
)

func main() {
	password := flag.String("password", "", "password for the reserved admin account (falls back to ADMIN_PASSWORD)")
	flag.Parse()

	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	pw := *password
	if pw == "" {
		pw = cfg.AdminPassword
	}
	if pw == "" {
		log.Fatal().Msg("a password is required (-password flag or ADMIN_PASSWORD)")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer client.Disconnect(context.Background())

	userRepo := mongodb.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user index creation failed")
	}

	users := service.NewUserService(userRepo, log)
	if err := users.EnsureReservedAdmin(ctx, pw); err != nil {
		log.Fatal().Err(err).Msg("reserved admin bootstrap failed")
	}

	log.Info().Msg("reserved admin account is ready")
}
