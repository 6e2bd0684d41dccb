package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	domainerror "github.com/dindin-invest/backend/internal/domain/error"
	"github.com/dindin-invest/backend/internal/integration/entrypoint/dto"
)

func newLimitedRouter(rl *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/chat", rl.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func doRequest(r *gin.Engine, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/chat", nil)
	req.RemoteAddr = ip + ":1234"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimiter_Middleware(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(2, time.Minute, true)
	rl.now = func() time.Time { return now }
	r := newLimitedRouter(rl)

	for i := 0; i < 2; i++ {
		if w := doRequest(r, "10.0.0.1"); w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, w.Code)
		}
	}

	w := doRequest(r, "10.0.0.1")
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", w.Code)
	}
	var body dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if body.Code != string(domainerror.ErrCodeRateLimited) {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeRateLimited, body.Code)
	}
	if w.Header().Get("Retry-After") != "60" {
		t.Errorf("expected Retry-After 60, got %q", w.Header().Get("Retry-After"))
	}

	if w := doRequest(r, "10.0.0.2"); w.Code != http.StatusOK {
		t.Errorf("other clients should not be limited, got %d", w.Code)
	}

	now = now.Add(time.Minute)
	if w := doRequest(r, "10.0.0.1"); w.Code != http.StatusOK {
		t.Errorf("expected a fresh window, got %d", w.Code)
	}
	if got := w.Header().Get("X-RateLimit-Remaining"); got != "0" {
		t.Errorf("unexpected remaining header on the blocked response: %q", got)
	}
}

func TestRateLimiter_Disabled(t *testing.T) {
	r := newLimitedRouter(NewRateLimiter(1, time.Minute, false))

	for i := 0; i < 5; i++ {
		if w := doRequest(r, "10.0.0.1"); w.Code != http.StatusOK {
			t.Fatalf("disabled limiter blocked request %d", i+1)
		}
	}
}

func TestRateLimiter_Defaults(t *testing.T) {
	rl := NewRateLimiter(0, 0, true)
	if rl.maxRequests != DefaultMaxRequests || rl.window != DefaultWindow {
		t.Errorf("expected defaults, got %d/%v", rl.maxRequests, rl.window)
	}

	rl.allow("a")
	rl.Reset()
	if len(rl.entries) != 0 {
		t.Error("reset should clear entries")
	}
}
