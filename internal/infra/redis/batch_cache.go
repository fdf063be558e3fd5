package redis

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"opentdb-quiz/internal/app"
	"opentdb-quiz/internal/domain"
)

// BatchCache shares successful batches between processes through Redis.
// Batches are stored as JSON under trivia:batch:{query} with a TTL.
// Redis failures are logged and fall through to the source; the cache is best effort.
type BatchCache struct {
	client *redis.Client
	source app.BatchSource
	ttl    time.Duration
	logger *zap.Logger
	sf     singleflight.Group

	mu  sync.Mutex
	rnd *rand.Rand
}

func NewBatchCache(client *redis.Client, source app.BatchSource, ttl time.Duration, logger *zap.Logger) *BatchCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BatchCache{
		client: client,
		source: source,
		ttl:    ttl,
		logger: logger,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (c *BatchCache) Retrieve(ctx context.Context, options domain.TriviaOptions) (domain.Batch, error) {
	key := c.key(options)
	if batch, ok := c.lookup(ctx, key); ok {
		return batch, nil
	}

	result, err, _ := c.sf.Do(key, func() (interface{}, error) {
		// Re-check in case another instance filled it meanwhile.
		if batch, ok := c.lookup(ctx, key); ok {
			return batch, nil
		}

		batch, err := c.source.Retrieve(ctx, options)
		if err != nil {
			return domain.Batch{}, err
		}
		if batch.ResponseCode != domain.ResponseSuccess || len(batch.Results) == 0 {
			return batch, nil
		}

		data, err := json.Marshal(batch)
		if err != nil {
			return batch, nil
		}
		if err := c.client.Set(ctx, key, data, c.ttlWithJitter()).Err(); err != nil {
			c.logger.Warn("cache batch in redis", zap.String("key", key), zap.Error(err))
		}
		return batch, nil
	})
	if err != nil {
		return domain.Batch{}, err
	}
	return result.(domain.Batch), nil
}

func (c *BatchCache) lookup(ctx context.Context, key string) (domain.Batch, bool) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("read cached batch", zap.String("key", key), zap.Error(err))
		}
		return domain.Batch{}, false
	}
	var batch domain.Batch
	if err := json.Unmarshal(data, &batch); err != nil {
		c.logger.Warn("drop malformed cached batch", zap.String("key", key), zap.Error(err))
		_ = c.client.Del(ctx, key).Err()
		return domain.Batch{}, false
	}
	return batch, true
}

func (c *BatchCache) key(options domain.TriviaOptions) string {
	return "trivia:batch:" + app.CacheKey(options)
}

func (c *BatchCache) ttlWithJitter() time.Duration {
	if c.ttl <= 0 {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	jitterMax := int64(c.ttl) / 10
	return c.ttl + time.Duration(c.rnd.Int63n(jitterMax+1))
}
