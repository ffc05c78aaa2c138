// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package redis

import (
	stdctx "context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// Limiter is a fixed-window request counter shared through Redis.
type Limiter struct {
	client redis.UniversalClient
	prefix string
	limit  int64
	window time.Duration
	now    func() time.Time
}

// NewLimiter allows at most limit requests per key in each window.
func NewLimiter(client redis.UniversalClient, prefix string, limit int, window time.Duration) *Limiter {
	return &Limiter{
		client: client,
		prefix: prefix,
		limit:  int64(limit),
		window: window,
		now:    time.Now,
	}
}

/*
Allow counts one request for key in the current window.

The counter and its expiry are set in one MULTI/EXEC so a crash between the
two commands cannot leave a counter that never expires.

Returns:
  - bool: Whether the request fits within the window's limit
  - error: The Redis failure, in which case the caller decides the policy
*/
func (limiter *Limiter) Allow(context stdctx.Context, key string) (bool, error) {
	windowStart := limiter.now().Truncate(limiter.window).UnixMilli()
	counterKey := limiter.prefix + key + ":" + strconv.FormatInt(windowStart, 10)

	var incr *redis.IntCmd
	_, err := limiter.client.TxPipelined(context, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(context, counterKey)
		pipe.Expire(context, counterKey, limiter.window)
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("redis: rate limit counter: %w", err)
	}

	return incr.Val() <= limiter.limit, nil
}
