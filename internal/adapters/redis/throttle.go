package redisad

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"staybook/internal/adapters/observability"
)

// Throttle is a fixed-window attempt counter shared by every API instance.
type Throttle struct{ c *redis.Client }

func New(addr, pass string, db int) *Throttle {
	return &Throttle{c: redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db})}
}

func (t *Throttle) Close() error { return t.c.Close() }

// Hit counts one attempt for key and reports whether it is within limit.
// The window starts with the first attempt.
func (t *Throttle) Hit(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	pipe := t.c.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		observability.ObserveThrottle("error")
		log.Warn().Err(err).Str("key", key).Msg("login throttle unavailable")
		return true, err
	}
	if incr.Val() > int64(limit) {
		observability.ObserveThrottle("blocked")
		return false, nil
	}
	observability.ObserveThrottle("hit")
	return true, nil
}

func (t *Throttle) Reset(ctx context.Context, key string) error {
	observability.ObserveThrottle("reset")
	return t.c.Del(ctx, key).Err()
}
