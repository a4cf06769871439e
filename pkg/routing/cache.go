package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const cacheTTL = 24 * time.Hour

// CachedProvider keeps resolved segments in Redis so repeated quotes over
// the same leg skip the routing engine. Cache failures fall through to the
// inner provider.
type CachedProvider struct {
	inner Provider
	rdb   *redis.Client
}

func NewCachedProvider(inner Provider, redisAddr string) *CachedProvider {
	rdb := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})
	return &CachedProvider{inner: inner, rdb: rdb}
}

func cacheKey(originLat, originLon, destLat, destLon float64) string {
	return fmt.Sprintf("dist:%.6f,%.6f:%.6f,%.6f", originLat, originLon, destLat, destLon)
}

func (c *CachedProvider) Resolve(ctx context.Context, originLat, originLon, destLat, destLon float64) (Result, error) {
	key := cacheKey(originLat, originLon, destLat, destLon)

	cached, err := c.rdb.Get(ctx, key).Result()
	if err == nil {
		var result Result
		if err := json.Unmarshal([]byte(cached), &result); err == nil {
			return result, nil
		}
	}

	result, err := c.inner.Resolve(ctx, originLat, originLon, destLat, destLon)
	if err != nil {
		return Result{}, err
	}

	if payload, err := json.Marshal(result); err == nil {
		c.rdb.Set(ctx, key, payload, cacheTTL)
	}

	return result, nil
}
