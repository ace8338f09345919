package httpclient_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/jsamuelsen11/retro-board/internal/platform/config"
	"github.com/jsamuelsen11/retro-board/internal/platform/httpclient"
)

func testConfig(baseURL string) *config.ClientConfig {
	return &config.ClientConfig{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     3,
			InitialInterval: 5 * time.Millisecond,
			MaxInterval:     20 * time.Millisecond,
			Multiplier:      2.0,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   3,
			Timeout:       time.Second,
			HalfOpenLimit: 1,
		},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// countingServer fails the first failCount requests with failStatus.
func countingServer(t *testing.T, failCount int32, failStatus int) (*httptest.Server, *atomic.Int32) {
	t.Helper()

	var count atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if count.Add(1) <= failCount {
			w.WriteHeader(failStatus)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}))
	t.Cleanup(srv.Close)
	return srv, &count
}

func send(t *testing.T, ctx context.Context, c *httpclient.Client, method, url string, body io.Reader) (*http.Response, error) {
	t.Helper()

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		t.Fatalf("creating request: %v", err)
	}
	resp, err := c.Do(ctx, req)
	if resp != nil {
		t.Cleanup(func() { _ = resp.Body.Close() })
	}
	return resp, err
}

func TestDo_Success(t *testing.T) {
	t.Parallel()

	srv, _ := countingServer(t, 0, 0)
	client := httpclient.New(testConfig(srv.URL), "retro-api", nil, discardLogger())

	resp, err := send(t, context.Background(), client, http.MethodGet, srv.URL+"/x", http.NoBody)
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK || string(body) != "ok" {
		t.Errorf("got %d %q, want 200 \"ok\"", resp.StatusCode, body)
	}
}

func TestDo_RetryPolicy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		method       string
		replay       bool
		failStatus   int
		failCount    int32
		wantAttempts int32
		wantStatus   int
	}{
		{name: "GET retries 5xx", method: http.MethodGet, failStatus: 503, failCount: 2, wantAttempts: 3, wantStatus: 200},
		{name: "PUT retries 429", method: http.MethodPut, failStatus: 429, failCount: 1, wantAttempts: 2, wantStatus: 200},
		{name: "DELETE retries 5xx", method: http.MethodDelete, failStatus: 500, failCount: 1, wantAttempts: 2, wantStatus: 200},
		{name: "POST is sent once", method: http.MethodPost, failStatus: 503, failCount: 1, wantAttempts: 1, wantStatus: 503},
		{name: "PATCH is sent once", method: http.MethodPatch, failStatus: 502, failCount: 1, wantAttempts: 1, wantStatus: 502},
		{name: "POST with replay retries", method: http.MethodPost, replay: true, failStatus: 503, failCount: 1, wantAttempts: 2, wantStatus: 200},
		{name: "4xx is never retried", method: http.MethodGet, failStatus: 404, failCount: 1, wantAttempts: 1, wantStatus: 404},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv, count := countingServer(t, tt.failCount, tt.failStatus)
			client := httpclient.New(testConfig(srv.URL), "retro-api", nil, discardLogger())

			ctx := context.Background()
			if tt.replay {
				ctx = httpclient.AllowReplay(ctx)
			}

			resp, _ := send(t, ctx, client, tt.method, srv.URL+"/r", strings.NewReader(`{}`))
			if resp == nil {
				t.Fatal("Do() resp = nil")
			}
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			if got := count.Load(); got != tt.wantAttempts {
				t.Errorf("attempts = %d, want %d", got, tt.wantAttempts)
			}
		})
	}
}

func TestDo_ExhaustedRetriesReturnResponseAndError(t *testing.T) {
	t.Parallel()

	srv, count := countingServer(t, 100, http.StatusBadGateway)
	cfg := testConfig(srv.URL)
	cfg.CircuitBreaker.MaxFailures = 10
	client := httpclient.New(cfg, "retro-api", nil, discardLogger())

	resp, err := send(t, context.Background(), client, http.MethodGet, srv.URL+"/down", http.NoBody)
	if err == nil {
		t.Fatal("Do() error = nil, want error after retries")
	}
	if resp == nil || resp.StatusCode != http.StatusBadGateway {
		t.Fatalf("resp = %v, want 502 response kept for the caller", resp)
	}
	if count.Load() != 3 {
		t.Errorf("attempts = %d, want 3", count.Load())
	}
}

func TestDo_BodyReplayedOnRetry(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	var bodies []string
	var count atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		mu.Lock()
		bodies = append(bodies, string(b))
		mu.Unlock()
		if count.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(srv.Close)

	client := httpclient.New(testConfig(srv.URL), "retro-api", nil, discardLogger())
	if _, err := send(t, context.Background(), client, http.MethodPut, srv.URL+"/step", strings.NewReader(`{"step":"vote"}`)); err != nil {
		t.Fatalf("Do() error = %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(bodies) != 2 || bodies[0] != bodies[1] || bodies[1] != `{"step":"vote"}` {
		t.Errorf("bodies = %q, want the same payload twice", bodies)
	}
}

func TestDo_HeaderInjection(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	var gotReq, gotCorr string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		gotReq = r.Header.Get("X-Request-ID")
		gotCorr = r.Header.Get("X-Correlation-ID")
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	headers := func() (string, string) {
		mu.Lock()
		defer mu.Unlock()
		return gotReq, gotCorr
	}
	t.Cleanup(srv.Close)

	client := httpclient.New(testConfig(srv.URL), "retro-api", nil, discardLogger())

	ctx := httpclient.WithCorrelationID(httpclient.WithRequestID(context.Background(), "req-1"), "corr-1")
	if _, err := send(t, ctx, client, http.MethodGet, srv.URL+"/h", http.NoBody); err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if r, c := headers(); r != "req-1" || c != "corr-1" {
		t.Errorf("headers = (%q, %q), want (req-1, corr-1)", r, c)
	}

	if _, err := send(t, context.Background(), client, http.MethodGet, srv.URL+"/h", http.NoBody); err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if r, c := headers(); r != "" || c != "" {
		t.Errorf("headers without context = (%q, %q), want empty", r, c)
	}
}

func TestDo_CircuitBreakerLifecycle(t *testing.T) {
	t.Parallel()

	var failing atomic.Bool
	failing.Store(true)
	var count atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		count.Add(1)
		if failing.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	cfg := testConfig(srv.URL)
	cfg.CircuitBreaker.MaxFailures = 1
	cfg.CircuitBreaker.Timeout = 100 * time.Millisecond
	cfg.Retry.MaxAttempts = 1
	client := httpclient.New(cfg, "retro-api", nil, discardLogger())
	ctx := context.Background()

	if err := client.HealthCheck(ctx); err != nil {
		t.Fatalf("HealthCheck() fresh = %v, want nil", err)
	}

	_, _ = send(t, ctx, client, http.MethodGet, srv.URL+"/cb", http.NoBody)

	before := count.Load()
	_, err := send(t, ctx, client, http.MethodGet, srv.URL+"/cb", http.NoBody)
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Fatalf("Do() error = %v, want ErrOpenState", err)
	}
	if count.Load() != before {
		t.Error("server was hit while the breaker was open")
	}
	if err := client.HealthCheck(ctx); err == nil || !strings.Contains(err.Error(), "failing") {
		t.Errorf("HealthCheck() open = %v, want failing", err)
	}
	if client.BreakerState() != "open" {
		t.Errorf("BreakerState() = %q, want open", client.BreakerState())
	}

	time.Sleep(150 * time.Millisecond)
	if err := client.HealthCheck(ctx); err == nil || !strings.Contains(err.Error(), "degraded") {
		t.Errorf("HealthCheck() half-open = %v, want degraded", err)
	}

	failing.Store(false)
	resp, err := send(t, ctx, client, http.MethodGet, srv.URL+"/cb", http.NoBody)
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("probe = (%v, %v), want 200", resp, err)
	}
	if client.BreakerState() != "closed" {
		t.Errorf("BreakerState() = %q, want closed after probe", client.BreakerState())
	}
}

func TestDo_RateLimited(t *testing.T) {
	t.Parallel()

	srv, count := countingServer(t, 0, 0)
	cfg := testConfig(srv.URL)
	cfg.RateLimit = config.RateLimitConfig{RequestsPerSecond: 1, BurstSize: 1}
	client := httpclient.New(cfg, "retro-api", nil, discardLogger())

	if _, err := send(t, context.Background(), client, http.MethodGet, srv.URL+"/l", http.NoBody); err != nil {
		t.Fatalf("first Do() error = %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if _, err := send(t, ctx, client, http.MethodGet, srv.URL+"/l", http.NoBody); err == nil {
		t.Fatal("second Do() error = nil, want limiter wait to exceed the deadline")
	}
	if count.Load() != 1 {
		t.Errorf("server hits = %d, want 1", count.Load())
	}
}

func TestDo_CancelledContext(t *testing.T) {
	t.Parallel()

	srv, _ := countingServer(t, 100, http.StatusInternalServerError)
	client := httpclient.New(testConfig(srv.URL), "retro-api", nil, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := send(t, ctx, client, http.MethodGet, srv.URL+"/c", http.NoBody); err == nil {
		t.Fatal("Do() error = nil, want context error")
	}
}

func TestClient_Identity(t *testing.T) {
	t.Parallel()

	client := httpclient.New(testConfig("http://upstream:8081"), "retro-api", nil, nil)
	if client.Name() != "retro-api" {
		t.Errorf("Name() = %q, want retro-api", client.Name())
	}
	if client.BaseURL() != "http://upstream:8081" {
		t.Errorf("BaseURL() = %q", client.BaseURL())
	}
}
