package middlewares

import (
	"net"
	"net/http"
	"ot-tracking-service/internal/pkg/constvars"
	"ot-tracking-service/internal/pkg/exceptions"
	"ot-tracking-service/internal/pkg/utils"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimiter throttles a route per clinician, falling back to the client IP
// for unauthenticated calls. A caller that exceeds the limit is blocked for
// blockTime.
type RateLimiter struct {
	limiters  map[string]*rate.Limiter
	blocked   map[string]time.Time
	mu        sync.Mutex
	limit     rate.Limit
	burst     int
	blockTime time.Duration
	log       *zap.Logger
	now       func() time.Time
}

func NewRateLimiter(perMinute, burst int, blockTime time.Duration, logger *zap.Logger) *RateLimiter {
	if perMinute <= 0 {
		perMinute = 1
	}
	if burst <= 0 {
		burst = 1
	}
	return &RateLimiter{
		limiters:  make(map[string]*rate.Limiter),
		blocked:   make(map[string]time.Time),
		limit:     rate.Every(time.Minute / time.Duration(perMinute)),
		burst:     burst,
		blockTime: blockTime,
		log:       logger,
		now:       time.Now,
	}
}

func (rl *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		key := rl.clientKey(req)
		now := rl.now()

		rl.mu.Lock()
		if blockedUntil, found := rl.blocked[key]; found {
			if now.Before(blockedUntil) {
				rl.mu.Unlock()
				rl.reject(w, req, key, blockedUntil.Sub(now))
				return
			}
			delete(rl.blocked, key)
		}

		limiter, exists := rl.limiters[key]
		if !exists {
			limiter = rate.NewLimiter(rl.limit, rl.burst)
			rl.limiters[key] = limiter
		}

		if !limiter.AllowN(now, 1) {
			rl.blocked[key] = now.Add(rl.blockTime)
			rl.mu.Unlock()
			rl.reject(w, req, key, rl.blockTime)
			return
		}
		rl.mu.Unlock()

		next.ServeHTTP(w, req)
	})
}

func (rl *RateLimiter) clientKey(req *http.Request) string {
	if uid := utils.GetUID(req.Context()); uid != "" {
		return "uid:" + uid
	}
	ip, _, err := net.SplitHostPort(req.RemoteAddr)
	if err != nil {
		ip = req.RemoteAddr
	}
	return "ip:" + ip
}

func (rl *RateLimiter) reject(w http.ResponseWriter, req *http.Request, key string, retryAfter time.Duration) {
	rl.log.Warn("RateLimiter blocked request",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(req.Context())),
		zap.String("client_key", key),
		zap.String(constvars.LoggingEndpointKey, req.URL.Path),
	)
	seconds := int(retryAfter.Round(time.Second) / time.Second)
	if seconds < 1 {
		seconds = 1
	}
	w.Header().Set(constvars.HeaderRetryAfter, strconv.Itoa(seconds))
	utils.BuildErrorResponse(rl.log, w, exceptions.ErrTooManyRequests(nil))
}

// NewReportExportLimiter builds the limiter guarding progress report exports.
func (m *Middlewares) NewReportExportLimiter() *RateLimiter {
	app := m.InternalConfig.App
	return NewRateLimiter(
		app.ReportExportPerMinute,
		app.ReportExportBurst,
		time.Duration(app.ReportExportBlockInSeconds)*time.Second,
		m.Log,
	)
}
