package middleware

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"studioops/internal/config"
	"studioops/pkg/models"

	"github.com/labstack/echo/v4"
)

// RateLimit throttles requests per client IP using a token bucket. The
// configured limit is requests per minute; burst allows short spikes.
// Buckets for idle clients are dropped after an hour.
func RateLimit(cfg *config.Config) echo.MiddlewareFunc {
	perSecond := rate.Limit(float64(cfg.Server.RateLimit) / 60.0)
	burst := cfg.Server.RateBurst

	type bucket struct {
		limiter  *rate.Limiter
		lastSeen time.Time
	}

	var mu sync.Mutex
	buckets := make(map[string]*bucket)

	go func() {
		for range time.Tick(10 * time.Minute) {
			mu.Lock()
			for ip, b := range buckets {
				if time.Since(b.lastSeen) > time.Hour {
					delete(buckets, ip)
				}
			}
			mu.Unlock()
		}
	}()

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()

			mu.Lock()
			b, ok := buckets[ip]
			if !ok {
				b = &bucket{limiter: rate.NewLimiter(perSecond, burst)}
				buckets[ip] = b
			}
			b.lastSeen = time.Now()
			mu.Unlock()

			if !b.limiter.Allow() {
				requestID, _ := c.Get("request_id").(string)
				return c.JSON(http.StatusTooManyRequests, models.ErrorResponse{
					Error:     "rate_limited",
					Message:   "Too many requests, slow down",
					RequestID: requestID,
					Timestamp: time.Now(),
				})
			}

			return next(c)
		}
	}
}
