package services

import (
	"context"
	"mesero_server/structs"
	"strings"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var redisCtx = context.Background()

// Cache keys for the views the waiter and cashier screens poll. Every
// mutating operation invalidates the keys it touches.
const (
	cacheKeyTableList = "tables:list"
	cacheKeyTable     = "tables:" // + id
	cacheKeyMenuList  = "menu:list"
)

// CacheService caches rendered view data in Redis. When caching is disabled
// (or Redis is unreachable at startup) every method is a no-op and callers
// fall through to the store.
type CacheService struct {
	logger *gecho.Logger
	config *structs.Config
	client *redis.Client
}

func NewCacheService(logger *gecho.Logger, cfg *structs.Config) *CacheService {
	cs := &CacheService{logger: logger, config: cfg}
	if !cfg.Cache.Enabled {
		return cs
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Cache.Address,
		Username: cfg.Cache.Username,
		Password: cfg.Cache.Password,
		DB:       cfg.Cache.DB,
	})

	if err := client.Ping(redisCtx).Err(); err != nil {
		logger.Warn("Redis unreachable, running without view cache", gecho.Field("error", err))
		_ = client.Close()
		return cs
	}

	cs.client = client
	return cs
}

func (cs *CacheService) Close() error {
	if cs.client != nil {
		return cs.client.Close()
	}
	return nil
}

// withRetry executes a Redis operation with simple exponential backoff.
func (cs *CacheService) withRetry(operation func() error, maxRetries int) error {
	var lastErr error
	backoff := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		err := operation()
		if err == nil {
			return nil
		}
		lastErr = err

		if attempt == maxRetries || !isRetryableCacheError(err) {
			break
		}

		time.Sleep(backoff)
		backoff = min(backoff*2, 2*time.Second)
	}

	return lastErr
}

func isRetryableCacheError(err error) bool {
	if err == nil || err == redis.Nil {
		return false
	}
	errStr := err.Error()
	for _, retryable := range []string{
		"connection refused",
		"connection reset",
		"timeout",
		"broken pipe",
		"network is unreachable",
	} {
		if strings.Contains(errStr, retryable) {
			return true
		}
	}
	return false
}

// Get returns the cached value for key, or "" on a miss.
func (cs *CacheService) Get(key string) (string, error) {
	if cs.client == nil {
		return "", nil
	}

	var result string
	err := cs.withRetry(func() error {
		val, err := cs.client.Get(redisCtx, key).Result()
		if err == redis.Nil {
			result = ""
			return nil
		}
		if err != nil {
			return err
		}
		result = val
		return nil
	}, 3)

	return result, err
}

func (cs *CacheService) Set(key string, value any) error {
	if cs.client == nil {
		return nil
	}
	return cs.withRetry(func() error {
		return cs.client.Set(redisCtx, key, value, cs.config.Cache.TTL).Err()
	}, 3)
}

func (cs *CacheService) Delete(keys ...string) error {
	if cs.client == nil || len(keys) == 0 {
		return nil
	}
	return cs.withRetry(func() error {
		return cs.client.Del(redisCtx, keys...).Err()
	}, 3)
}

// InvalidateTable drops every cached view that displays the given table:
// the waiter/cashier list and the table detail.
func (cs *CacheService) InvalidateTable(tableID uuid.UUID) {
	if err := cs.Delete(cacheKeyTableList, cacheKeyTable+tableID.String()); err != nil {
		cs.logger.Warn("Failed to invalidate table cache", gecho.Field("error", err), gecho.Field("table_id", tableID))
	}
}

// InvalidateTableList drops the list view only (add table).
func (cs *CacheService) InvalidateTableList() {
	if err := cs.Delete(cacheKeyTableList); err != nil {
		cs.logger.Warn("Failed to invalidate table list cache", gecho.Field("error", err))
	}
}

func (cs *CacheService) InvalidateMenu() {
	if err := cs.Delete(cacheKeyMenuList); err != nil {
		cs.logger.Warn("Failed to invalidate menu cache", gecho.Field("error", err))
	}
}
