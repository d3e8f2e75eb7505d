package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/arquinori/portfolio-backend/internal/logger"
)

func testLogger() *logger.Logger {
	return &logger.Logger{SugaredLogger: zap.NewNop().Sugar()}
}

func TestLocalLimiterAllowsUpToBurst(t *testing.T) {
	limiter := newLocalLimiter(time.Minute, 3)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		allowed, err := limiter.Allow(ctx, "client-a")
		if err != nil {
			t.Fatalf("Allow failed: %v", err)
		}
		if !allowed {
			t.Fatalf("request %d denied, want allowed", i+1)
		}
	}
	allowed, err := limiter.Allow(ctx, "client-a")
	if err != nil {
		t.Fatalf("Allow failed: %v", err)
	}
	if allowed {
		t.Fatalf("request over the limit was allowed")
	}
}

func TestLocalLimiterIsolatesKeys(t *testing.T) {
	limiter := newLocalLimiter(time.Minute, 1)
	ctx := context.Background()

	if allowed, _ := limiter.Allow(ctx, "client-a"); !allowed {
		t.Fatalf("first request for client-a denied")
	}
	if allowed, _ := limiter.Allow(ctx, "client-a"); allowed {
		t.Fatalf("client-a over its limit was allowed")
	}
	if allowed, _ := limiter.Allow(ctx, "client-b"); !allowed {
		t.Fatalf("client-b was throttled by client-a's usage")
	}
}

type stubLimiter struct {
	allowed bool
	err     error
}

func (s *stubLimiter) Allow(ctx context.Context, key string) (bool, error) {
	return s.allowed, s.err
}

func limitedRouter(limiter RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RateLimit(limiter, testLogger(), "test"))
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func TestRateLimitMiddlewareThrottles(t *testing.T) {
	router := limitedRouter(&stubLimiter{allowed: false})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusTooManyRequests)
	}
	var body struct {
		OK   bool   `json:"ok"`
		Code string `json:"code"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body.OK {
		t.Fatalf("throttled response reported ok")
	}
	if body.Code != "rate_limited" {
		t.Fatalf("code = %q, want rate_limited", body.Code)
	}
}

func TestRateLimitMiddlewareFailsOpen(t *testing.T) {
	router := limitedRouter(&stubLimiter{allowed: false, err: fmt.Errorf("backend down")})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d on limiter failure", rec.Code, http.StatusOK)
	}
}
