package memory

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"opentdb-quiz/internal/app"
	"opentdb-quiz/internal/domain"
)

// BatchCache keeps successful batches in process memory for ttl to stay under the API rate limit.
// Batches with a non-zero response code are never cached.
type BatchCache struct {
	source app.BatchSource
	ttl    time.Duration
	clock  func() time.Time
	sf     singleflight.Group

	mu    sync.RWMutex
	rnd   *rand.Rand
	cache map[string]cachedBatch
}

type cachedBatch struct {
	batch     domain.Batch
	expiresAt time.Time
}

func NewBatchCache(source app.BatchSource, ttl time.Duration) *BatchCache {
	return &BatchCache{
		source: source,
		ttl:    ttl,
		clock:  time.Now,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
		cache:  make(map[string]cachedBatch),
	}
}

func (c *BatchCache) Retrieve(ctx context.Context, options domain.TriviaOptions) (domain.Batch, error) {
	key := app.CacheKey(options)
	if batch, ok := c.lookup(key); ok {
		return batch, nil
	}

	result, err, _ := c.sf.Do(key, func() (interface{}, error) {
		if batch, ok := c.lookup(key); ok {
			return batch, nil
		}

		batch, err := c.source.Retrieve(ctx, options)
		if err != nil {
			return domain.Batch{}, err
		}
		if batch.ResponseCode != domain.ResponseSuccess || len(batch.Results) == 0 {
			return batch, nil
		}

		c.mu.Lock()
		c.cache[key] = cachedBatch{
			batch:     batch,
			expiresAt: c.clock().Add(c.ttlWithJitterLocked()),
		}
		c.mu.Unlock()
		return batch, nil
	})
	if err != nil {
		return domain.Batch{}, err
	}
	return result.(domain.Batch), nil
}

func (c *BatchCache) lookup(key string) (domain.Batch, bool) {
	now := c.clock()
	c.mu.RLock()
	defer c.mu.RUnlock()
	if entry, ok := c.cache[key]; ok && entry.expiresAt.After(now) {
		return entry.batch, true
	}
	return domain.Batch{}, false
}

func (c *BatchCache) ttlWithJitterLocked() time.Duration {
	if c.ttl <= 0 {
		return 0
	}
	// up to 10% jitter so batches cached together do not expire together
	jitterMax := int64(c.ttl) / 10
	return c.ttl + time.Duration(c.rnd.Int63n(jitterMax+1))
}
