package ratelimit

import (
	"net/http"
	"strconv"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/GlebRadaev/cocosforest/pkg/auth"
	"github.com/GlebRadaev/cocosforest/pkg/utils"
)

const maxTrackedKeys = 10000

// Limiter keeps one token bucket per caller. Callers are keyed by the
// authenticated user id, falling back to the remote address. The least
// recently seen callers are evicted once maxTrackedKeys is reached.
type Limiter struct {
	mu       sync.Mutex
	limiters *lru.Cache[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func New(requestsPerSecond float64, burst int) *Limiter {
	limiters, _ := lru.New[string, *rate.Limiter](maxTrackedKeys)
	if burst <= 0 {
		burst = 1
	}
	return &Limiter{
		limiters: limiters,
		rate:     rate.Limit(requestsPerSecond),
		burst:    burst,
	}
}

func (l *Limiter) get(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, ok := l.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(l.rate, l.burst)
		l.limiters.Add(key, limiter)
	}
	return limiter
}

func (l *Limiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.RemoteAddr
		if userID, ok := r.Context().Value(auth.UserIDKey).(int); ok {
			key = "user:" + strconv.Itoa(userID)
		}

		if !l.get(key).Allow() {
			zap.L().Warn("rate limit exceeded", zap.String("key", key), zap.String("path", r.URL.Path))
			utils.RespondWithError(w, http.StatusTooManyRequests, "Too many requests")
			return
		}
		next.ServeHTTP(w, r)
	})
}
