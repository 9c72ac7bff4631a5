// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package gin

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/momeni/snappauto/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/snappauto/pkg/core/cerr"
	"github.com/momeni/snappauto/pkg/core/log"
	"golang.org/x/time/rate"
)

// ErrRateLimited is reported to the clients which exceed their rate.
var ErrRateLimited = errors.New("rate limit exceeded")

// minIdleTimeout is the shortest idle time before a client limiter
// may be evicted.
const minIdleTimeout = 3 * time.Minute

// RateLimit accepts up to r requests per second (with bursts of up to
// burst requests) from each client IP address and rejects the rest
// with http.StatusTooManyRequests.
func RateLimit(r float64, burst int) HandlerFunc {
	ls := newLimiters(rate.Limit(r), burst, time.Now)
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !ls.allow(ip) {
			log.Warn(
				c, "rate limit exceeded",
				slog.String("client_ip", ip),
				slog.String("path", c.Request.URL.Path),
			)
			c.Abort()
			serdser.SerErr(c, cerr.TooManyRequests(ErrRateLimited))
			return
		}
		c.Next()
	}
}

type visitor struct {
	limiter *rate.Limiter
	seen    time.Time
}

// limiters keeps one rate.Limiter per client IP address. A limiter
// which stays idle for the idle duration has refilled its burst, so it
// is evicted and recreated on the next request of that client.
// Eviction sweeps run during the requests handling, at most once per
// idle duration.
type limiters struct {
	r     rate.Limit
	burst int
	idle  time.Duration
	now   func() time.Time

	mu        sync.Mutex
	visitors  map[string]*visitor
	lastSweep time.Time
}

func newLimiters(r rate.Limit, burst int, now func() time.Time) *limiters {
	idle := minIdleTimeout
	if r > 0 {
		refill := time.Duration(float64(burst) / float64(r) * float64(time.Second))
		idle = max(idle, refill)
	}
	return &limiters{
		r:        r,
		burst:    burst,
		idle:     idle,
		now:      now,
		visitors: make(map[string]*visitor),
	}
}

func (ls *limiters) allow(ip string) bool {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	now := ls.now()
	if now.Sub(ls.lastSweep) >= ls.idle {
		for k, v := range ls.visitors {
			if now.Sub(v.seen) >= ls.idle {
				delete(ls.visitors, k)
			}
		}
		ls.lastSweep = now
	}
	v, ok := ls.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(ls.r, ls.burst)}
		ls.visitors[ip] = v
	}
	v.seen = now
	return v.limiter.AllowN(now, 1)
}
