package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/procurex/committee-service/internal/api"
	mongodb "github.com/procurex/committee-service/internal/infrastructure/db/mongo"
	redisdb "github.com/procurex/committee-service/internal/infrastructure/db/redis"
	"github.com/procurex/committee-service/internal/infrastructure/mail"
	"github.com/procurex/committee-service/internal/infrastructure/storage"
	"github.com/procurex/committee-service/internal/pkg/config"
	"github.com/procurex/committee-service/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx := context.Background()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to Redis")
	}
	defer func() { _ = rdb.Close() }()

	if err := mongodb.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create user indexes")
	}
	if err := mongodb.NewCommitteeRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create committee indexes")
	}

	files, err := storage.NewDiskStore(cfg.Uploads.Dir)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialise upload storage")
	}

	mailer := mail.NewSMTPMailer(mail.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	})

	e := api.NewRouter(api.RouterDeps{
		Cfg:    cfg,
		DB:     db,
		Redis:  rdb,
		Files:  files,
		Mailer: mailer,
		Logger: log,
	})

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting committee service")
	if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
