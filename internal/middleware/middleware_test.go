package middleware

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/bharatwebpro/platform-api/internal/config"
)

func TestLoggingMiddleware(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := zerolog.New(buf)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(ContextKeyRequestID, "rid-123")

	err := Logging(logger)(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if !strings.Contains(buf.String(), `"request_id":"rid-123"`) {
		t.Fatalf("expected log output to contain request id, got %s", buf.String())
	}

	// Errors are propagated and still logged.
	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)
	c.Set(ContextKeyRequestID, "rid-456")
	expected := errors.New("boom")
	err = Logging(logger)(func(c echo.Context) error {
		return expected
	})(c)
	if !strings.Contains(buf.String(), "rid-456") {
		t.Fatalf("expected second log entry with new request id")
	}
	if !errors.Is(err, expected) {
		t.Fatalf("expected error to bubble up")
	}
}

func TestScrapeRateLimiter(t *testing.T) {
	cfg := config.RateLimitConfig{Requests: 1, Interval: time.Second}
	mw := ScrapeRateLimiter(cfg)

	e := echo.New()
	nextCalls := 0
	next := func(c echo.Context) error {
		nextCalls++
		return c.NoContent(http.StatusOK)
	}

	req := httptest.NewRequest(http.MethodPost, "/scrape", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/scrape")

	_ = mw(next)(c)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected first request to pass, got %d", rec.Code)
	}

	req2 := httptest.NewRequest(http.MethodPost, "/scrape", nil)
	rec2 := httptest.NewRecorder()
	c2 := e.NewContext(req2, rec2)
	c2.SetPath("/scrape")
	_ = mw(next)(c2)
	if rec2.Code != http.StatusTooManyRequests {
		t.Fatalf("expected second request rejected, got %d", rec2.Code)
	}

	// Non-scrape path should bypass limiter.
	req3 := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec3 := httptest.NewRecorder()
	c3 := e.NewContext(req3, rec3)
	_ = mw(next)(c3)
	if rec3.Code != http.StatusOK {
		t.Fatalf("expected non-scrape request to pass")
	}

	// Zero config should behave as passthrough.
	mw = ScrapeRateLimiter(config.RateLimitConfig{})
	req4 := httptest.NewRequest(http.MethodPost, "/scrape", nil)
	rec4 := httptest.NewRecorder()
	c4 := e.NewContext(req4, rec4)
	c4.SetPath("/scrape")
	_ = mw(next)(c4)
	if rec4.Code != http.StatusOK {
		t.Fatalf("expected passthrough when limiter disabled")
	}
	if nextCalls == 0 {
		t.Fatalf("expected next handler to be invoked")
	}
}

func TestRequireRoles(t *testing.T) {
	e := echo.New()
	mw := RequireRoles("ADMIN", "SUPERADMIN")

	run := func(role any) (*httptest.ResponseRecorder, bool) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if role != nil {
			c.Set(ContextKeyUserRole, role)
		}
		executed := false
		_ = mw(func(c echo.Context) error {
			executed = true
			return c.NoContent(http.StatusOK)
		})(c)
		return rec, executed
	}

	if rec, executed := run(nil); rec.Code != http.StatusForbidden || executed {
		t.Fatalf("expected missing role rejection, got %d", rec.Code)
	}
	if rec, executed := run("CLIENT"); rec.Code != http.StatusForbidden || executed {
		t.Fatalf("expected CLIENT rejection, got %d", rec.Code)
	}
	if rec, executed := run("ADMIN"); rec.Code != http.StatusOK || !executed {
		t.Fatalf("expected ADMIN to pass, got %d", rec.Code)
	}
	if rec, executed := run("SUPERADMIN"); rec.Code != http.StatusOK || !executed {
		t.Fatalf("expected SUPERADMIN to pass, got %d", rec.Code)
	}
}

func TestRequestID(t *testing.T) {
	e := echo.New()

	t.Run("generates id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		_ = RequestID()(func(c echo.Context) error {
			if RequestIDFromContext(c) == "" {
				t.Fatalf("expected generated request id")
			}
			return c.NoContent(http.StatusOK)
		})(c)

		if rec.Header().Get("X-Request-ID") == "" {
			t.Fatalf("expected request id header on response")
		}
	})

	t.Run("preserves caller id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "rid-caller")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		_ = RequestID()(func(c echo.Context) error {
			if RequestIDFromContext(c) != "rid-caller" {
				t.Fatalf("expected caller request id to be kept")
			}
			return c.NoContent(http.StatusOK)
		})(c)
	})
}
