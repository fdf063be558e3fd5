package cli

import (
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"opentdb-quiz/internal/app"
	"opentdb-quiz/internal/config"
	"opentdb-quiz/internal/domain"
	"opentdb-quiz/internal/infra/httpjson"
	"opentdb-quiz/internal/infra/memory"
	rediscache "opentdb-quiz/internal/infra/redis"
)

// resolveOptions turns the configured labels into TriviaOptions. Unknown labels fail fast.
func resolveOptions(cfg config.Config) (domain.TriviaOptions, error) {
	category, err := domain.CategoryFromLabel(cfg.Quiz.Category)
	if err != nil {
		return domain.TriviaOptions{}, err
	}
	difficulty, err := domain.DifficultyFromLabel(cfg.Quiz.Difficulty)
	if err != nil {
		return domain.TriviaOptions{}, err
	}
	typ, err := domain.TypeFromLabel(cfg.Quiz.Type)
	if err != nil {
		return domain.TriviaOptions{}, err
	}
	return domain.NewTriviaOptions(cfg.Quiz.Amount, category, difficulty, typ)
}

// newBatchSource builds the retrieval pipeline. With Redis configured batches are shared
// through Redis; with only cache.ttl set they are cached in memory; otherwise every session
// hits the API.
func newBatchSource(cfg config.Config, log *zap.Logger) (app.BatchSource, func()) {
	fetcher := httpjson.NewClient(config.TTLDuration(cfg.API.Timeout, 10*time.Second), log)
	var source app.BatchSource = app.NewRetriever(fetcher, cfg.API.URL)
	cleanup := func() {}

	switch {
	case cfg.Redis.Addr != "":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		ttl := config.TTLDuration(cfg.Cache.TTL, 5*time.Minute)
		source = rediscache.NewBatchCache(client, source, ttl, log)
		cleanup = func() { _ = client.Close() }
		log.Debug("using redis batch cache", zap.String("addr", cfg.Redis.Addr), zap.Duration("ttl", ttl))
	case cfg.Cache.TTL != "":
		ttl := config.TTLDuration(cfg.Cache.TTL, 0)
		if ttl > 0 {
			source = memory.NewBatchCache(source, ttl)
			log.Debug("using in-memory batch cache", zap.Duration("ttl", ttl))
		}
	}
	return source, cleanup
}
