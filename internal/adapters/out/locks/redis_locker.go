package locks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bsm/redislock"
	"github.com/sirupsen/logrus"
)

const (
	DefaultTTL        = 10 * time.Second
	DefaultRetryDelay = 50 * time.Millisecond
	keyPrefix         = "hubops:alloc:"
)

// ErrNotObtained is returned when the Redis lock stays taken for every retry.
var ErrNotObtained = errors.New("scope lock not obtained")

type RedisLockerConfig struct {
	TTL        time.Duration
	RetryDelay time.Duration
	MaxRetries int
}

// RedisLocker takes the in-process lock first and then the Redis lock, so
// goroutines of one instance queue locally and only one of them polls Redis.
type RedisLocker struct {
	client *redislock.Client
	local  *KeyedMutex
	cfg    RedisLockerConfig
	log    *logrus.Entry
}

func NewRedisLocker(client *redislock.Client, cfg RedisLockerConfig, log *logrus.Logger) *RedisLocker {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = DefaultRetryDelay
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = int(cfg.TTL / cfg.RetryDelay)
	}
	return &RedisLocker{
		client: client,
		local:  NewKeyedMutex(),
		cfg:    cfg,
		log:    log.WithField("component", "redis_locker"),
	}
}

func (l *RedisLocker) Lock(ctx context.Context, key string) (func(), error) {
	releaseLocal, err := l.local.Lock(ctx, key)
	if err != nil {
		return nil, err
	}

	lock, err := l.client.Obtain(ctx, keyPrefix+key, l.cfg.TTL, &redislock.Options{
		RetryStrategy: redislock.LimitRetry(redislock.LinearBackoff(l.cfg.RetryDelay), l.cfg.MaxRetries),
	})
	if err != nil {
		releaseLocal()
		if errors.Is(err, redislock.ErrNotObtained) {
			return nil, fmt.Errorf("%w: %s", ErrNotObtained, key)
		}
		return nil, err
	}

	return func() {
		// The request context may already be done; the release must still run.
		if releaseErr := lock.Release(context.Background()); releaseErr != nil {
			l.log.WithFields(logrus.Fields{
				"key":   key,
				"error": releaseErr,
			}).Warn("failed to release redis lock")
		}
		releaseLocal()
	}, nil
}
