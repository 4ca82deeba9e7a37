package main

import (
	"context"
	"database/sql"
	"errors"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	"github.com/spoo-437/voiceofdine-ai/internal/adapters/observability"
	"github.com/spoo-437/voiceofdine-ai/internal/adapters/polarity"
	redisad "github.com/spoo-437/voiceofdine-ai/internal/adapters/redis"
	"github.com/spoo-437/voiceofdine-ai/internal/app"
	"github.com/spoo-437/voiceofdine-ai/internal/domain"
	"github.com/spoo-437/voiceofdine-ai/internal/sentiment"
	"github.com/spoo-437/voiceofdine-ai/internal/shared"
	mysqlrepo "github.com/spoo-437/voiceofdine-ai/internal/storage/mysql"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	// initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().
		Str("dataset", cfg.DatasetPath).
		Int("workers", cfg.Workers).
		Msg("ingestor starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	repo := mysqlrepo.New(db)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Remote polarity service when configured, local lexicon otherwise.
	var classifier domain.Classifier = sentiment.NewAnalyzer()
	if cfg.PolarityBase != "" {
		client, err := polarity.New(cfg.PolarityBase, cfg.PolarityKey, 5)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize polarity client")
		}
		classifier = client
		log.Info().Str("base", cfg.PolarityBase).Msg("using remote polarity service")
	}

	ing := app.NewIngestionService(classifier, repo, cache, cfg.Workers)
	n, err := ing.IngestFile(ctx, cfg.DatasetPath)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoDataset):
			log.Fatal().Err(err).Msg("no dataset found; set DATASET_PATH to a reviews CSV")
		case errors.Is(err, domain.ErrNoReviewColumn):
			log.Fatal().Err(err).Msg("review column not detected; headers must contain 'review' or 'text'")
		default:
			log.Fatal().Err(err).Msg("ingestion failed")
		}
	}
	log.Info().Int("reviews", n).Msg("ingestion completed")
}
