package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	nethttp "net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alijeyrad/optima_web/config"
	"github.com/Alijeyrad/optima_web/internal/api/http/middleware"
	"github.com/Alijeyrad/optima_web/internal/api/http/router"
	"github.com/Alijeyrad/optima_web/internal/service/contact"
	"github.com/Alijeyrad/optima_web/internal/service/demo"
	"github.com/Alijeyrad/optima_web/internal/web/components"
	"github.com/Alijeyrad/optima_web/pkg/email"
	"github.com/Alijeyrad/optima_web/pkg/events"
)

type captureSender struct {
	mu    sync.Mutex
	sent  []email.Message
	err   error
	delay time.Duration
}

func (c *captureSender) Send(_ context.Context, m email.Message) error {
	time.Sleep(c.delay)
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	c.sent = append(c.sent, m)
	return nil
}

type testEnv struct {
	app    *fiber.App
	sender *captureSender
}

func testConfig() *config.Config {
	return &config.Config{
		Site: config.SiteConfig{
			Brand:        "OPTIMA",
			Title:        "OPTIMA - test",
			ContactEmail: "sales@example.com",
		},
		Email: config.EmailConfig{SalesTo: "sales@example.com"},
	}
}

func newTestEnv(t *testing.T, cfg *config.Config, rdb *redis.Client) testEnv {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sender := &captureSender{}

	demoSvc, err := demo.New(demo.Config{SalesTo: cfg.Email.SalesTo, Brand: cfg.Site.Brand}, sender, events.Discard{}, logger)
	require.NoError(t, err)

	r := router.NewRouter(router.Params{
		Cfg:        cfg,
		Redis:      rdb,
		Logger:     logger,
		ContactSvc: contact.New(sender, cfg.Email.SalesTo, logger),
		DemoSvc:    demoSvc,
	})
	return testEnv{app: NewApp(cfg, r, false), sender: sender}
}

func (e testEnv) do(t *testing.T, req *nethttp.Request) (*nethttp.Response, string) {
	t.Helper()
	resp, err := e.app.Test(req, fiber.TestConfig{Timeout: 5 * time.Second})
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()
	return resp, string(body)
}

func jsonRequest(path, body string) *nethttp.Request {
	req := httptest.NewRequest(nethttp.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func formRequest(path string, values url.Values) *nethttp.Request {
	req := httptest.NewRequest(nethttp.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

const validDraftJSON = `{"name":" Jordan Lee ","email":" Jordan@Example.COM ","company":"Acme Logistics","industry":"steel","fleetSize":"11-50"}`

func validForm() url.Values {
	return url.Values{
		"name":      {"Jordan Lee"},
		"email":     {"jordan@example.com"},
		"company":   {"Acme Logistics"},
		"industry":  {"steel"},
		"fleetSize": {"11-50"},
	}
}

func decode(t *testing.T, body string) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &out))
	return out
}

func TestLandingPage(t *testing.T) {
	env := newTestEnv(t, testConfig(), nil)

	resp, body := env.do(t, httptest.NewRequest(nethttp.MethodGet, "/", nil))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.NotEmpty(t, resp.Header.Get(middleware.HeaderRequestID))
	assert.Contains(t, body, "<title>OPTIMA - test</title>")
	assert.Contains(t, body, `aria-labelledby="demo-dialog-title">`)

	_, body = env.do(t, httptest.NewRequest(nethttp.MethodGet, "/?demo=open", nil))
	assert.Contains(t, body, `aria-labelledby="demo-dialog-title" open`)
}

func TestDemoRequestAPI(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		sendErr    error
		wantStatus int
		check      func(t *testing.T, body map[string]any, sent []email.Message)
	}{
		{
			name:       "accepted",
			body:       validDraftJSON,
			wantStatus: fiber.StatusCreated,
			check: func(t *testing.T, body map[string]any, sent []email.Message) {
				assert.Equal(t, true, body["success"])
				require.Len(t, sent, 1)
				assert.Equal(t, "jordan@example.com", sent[0].ReplyTo)
				assert.Equal(t, "New demo request: Acme Logistics (Jordan Lee)", sent[0].Subject)
			},
		},
		{
			name:       "invalid draft",
			body:       `{"name":" J","email":"jordan@example.com","company":"Acme","industry":"steel","fleetSize":"11-50"}`,
			wantStatus: fiber.StatusUnprocessableEntity,
			check: func(t *testing.T, body map[string]any, sent []email.Message) {
				assert.Equal(t, "validation failed", body["error"])
				fields, ok := body["fields"].(map[string]any)
				require.True(t, ok)
				assert.Equal(t, map[string]any{"name": "Name must be at least 2 characters"}, fields)
				assert.Empty(t, sent)
			},
		},
		{
			name:       "malformed json",
			body:       `{"name":`,
			wantStatus: fiber.StatusBadRequest,
			check: func(t *testing.T, body map[string]any, sent []email.Message) {
				assert.Equal(t, "invalid request body", body["error"])
			},
		},
		{
			name:       "relay failure",
			body:       validDraftJSON,
			sendErr:    errors.New("smtp down"),
			wantStatus: fiber.StatusInternalServerError,
			check: func(t *testing.T, body map[string]any, sent []email.Message) {
				assert.Equal(t, "failed to record demo request", body["error"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, testConfig(), nil)
			env.sender.err = tt.sendErr

			resp, body := env.do(t, jsonRequest("/api/v1/demo-requests", tt.body))
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			tt.check(t, decode(t, body), env.sender.sent)
		})
	}
}

func TestContactAPI(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		sendErr    error
		wantStatus int
		wantKey    string
	}{
		{"sent", `{"name":"Jordan","email":"jordan@example.com","message":"Hello"}`, nil, fiber.StatusOK, "success"},
		{"missing message", `{"name":"Jordan","email":"jordan@example.com"}`, nil, fiber.StatusBadRequest, "error"},
		{"bad email", `{"name":"Jordan","email":"nope","message":"Hello"}`, nil, fiber.StatusBadRequest, "error"},
		{"relay failure", `{"name":"Jordan","email":"jordan@example.com","message":"Hello"}`, errors.New("smtp down"), fiber.StatusInternalServerError, "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, testConfig(), nil)
			env.sender.err = tt.sendErr

			resp, body := env.do(t, jsonRequest("/api/contact", tt.body))
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Contains(t, decode(t, body), tt.wantKey)
		})
	}
}

func TestDemoRequestForm(t *testing.T) {
	t.Run("success panel and toast", func(t *testing.T) {
		env := newTestEnv(t, testConfig(), nil)

		resp, body := env.do(t, formRequest("/demo-request", validForm()))
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Contains(t, body, `aria-labelledby="demo-dialog-title" open`)
		assert.Contains(t, body, "Thank you!")
		assert.Contains(t, body, "Request received")
		assert.Contains(t, body, `<meta http-equiv="refresh" content="1.2;url=/#home">`)
		assert.Len(t, env.sender.sent, 1)
	})

	t.Run("inline errors keep values", func(t *testing.T) {
		env := newTestEnv(t, testConfig(), nil)

		values := validForm()
		values.Set("name", " J")
		_, body := env.do(t, formRequest("/demo-request", values))
		assert.Contains(t, body, `aria-labelledby="demo-dialog-title" open`)
		assert.Contains(t, body, "Name must be at least 2 characters")
		assert.Contains(t, body, `value="Acme Logistics"`)
		assert.NotContains(t, body, "http-equiv")
		assert.Empty(t, env.sender.sent)
	})

	t.Run("relay failure shows destructive toast", func(t *testing.T) {
		env := newTestEnv(t, testConfig(), nil)
		env.sender.err = errors.New("smtp down")

		_, body := env.do(t, formRequest("/demo-request", validForm()))
		assert.Contains(t, body, "Something went wrong")
		assert.Contains(t, body, `data-severity="destructive"`)
		assert.Contains(t, body, `value="Jordan Lee"`)
	})
}

func (c *captureSender) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.sent)
}

func TestDemoRequestForm_RepeatedTokenRelaysOnce(t *testing.T) {
	env := newTestEnv(t, testConfig(), nil)
	env.sender.delay = 200 * time.Millisecond

	token := uuid.NewString()
	values := validForm()
	values.Set(components.FormTokenField, token)

	type result struct {
		status int
		body   string
		err    error
	}
	results := make(chan result, 2)
	for i := 0; i < 2; i++ {
		go func() {
			resp, err := env.app.Test(formRequest("/demo-request", values), fiber.TestConfig{Timeout: 5 * time.Second})
			if err != nil {
				results <- result{err: err}
				return
			}
			defer resp.Body.Close()
			body, err := io.ReadAll(resp.Body)
			results <- result{status: resp.StatusCode, body: string(body), err: err}
		}()
	}

	first, second := <-results, <-results
	require.NoError(t, first.err)
	require.NoError(t, second.err)
	assert.Equal(t, fiber.StatusOK, first.status)
	assert.Equal(t, fiber.StatusOK, second.status)
	assert.Equal(t, first.body, second.body)
	assert.Contains(t, first.body, "Thank you!")
	assert.Equal(t, 1, env.sender.count())

	// Every rendered form carries a token of its own.
	assert.Contains(t, first.body, `name="form_token"`)
	assert.NotContains(t, first.body, token)
}

func TestDemoRequestForm_NewTokenAfterRejection(t *testing.T) {
	env := newTestEnv(t, testConfig(), nil)

	rejected := validForm()
	rejected.Set("name", " J")
	rejected.Set(components.FormTokenField, uuid.NewString())
	_, body := env.do(t, formRequest("/demo-request", rejected))
	require.Contains(t, body, "Name must be at least 2 characters")

	// Replaying the same post answers with the same rejection.
	_, again := env.do(t, formRequest("/demo-request", rejected))
	assert.Equal(t, body, again)

	corrected := validForm()
	corrected.Set(components.FormTokenField, uuid.NewString())
	_, body = env.do(t, formRequest("/demo-request", corrected))
	assert.Contains(t, body, "Thank you!")
	assert.Equal(t, 1, env.sender.count())
}

func TestDemoRequestAPI_IdempotencyKeyWithRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	env := newTestEnv(t, testConfig(), rdb)
	key := uuid.NewString()

	for i := 0; i < 2; i++ {
		req := jsonRequest("/api/v1/demo-requests", validDraftJSON)
		req.Header.Set(middleware.HeaderIdempotencyKey, key)
		resp, body := env.do(t, req)
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
		assert.Equal(t, true, decode(t, body)["success"])
	}

	assert.Equal(t, 1, env.sender.count())
	assert.True(t, mr.Exists(key))
	for _, k := range mr.Keys() {
		assert.NotContains(t, k, "lock")
	}

	// Requests without a key are not collapsed.
	resp, _ := env.do(t, jsonRequest("/api/v1/demo-requests", validDraftJSON))
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, 2, env.sender.count())
}

func TestPlanRequestForm(t *testing.T) {
	env := newTestEnv(t, testConfig(), nil)

	_, body := env.do(t, formRequest("/plan-request", validForm()))
	assert.Contains(t, body, "Our team will contact you with next steps.")
	assert.Contains(t, body, "Thanks! We&#39;ll be in touch.")
	// The demo dialog stays closed.
	assert.Contains(t, body, `aria-labelledby="demo-dialog-title">`)
}

func TestRateLimit_RedisStorage(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	cfg := testConfig()
	cfg.RateLimit = config.RateLimitConfig{Enabled: true, RequestsPerMinute: 2}
	env := newTestEnv(t, cfg, rdb)

	for i := 0; i < 2; i++ {
		resp, _ := env.do(t, jsonRequest("/api/v1/demo-requests", validDraftJSON))
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	}

	resp, body := env.do(t, jsonRequest("/api/v1/demo-requests", validDraftJSON))
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "too many requests", decode(t, body)["error"])

	// The landing page is not limited.
	resp, _ = env.do(t, httptest.NewRequest(nethttp.MethodGet, "/", nil))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestReadiness(t *testing.T) {
	t.Run("without redis", func(t *testing.T) {
		env := newTestEnv(t, testConfig(), nil)
		resp, _ := env.do(t, httptest.NewRequest(nethttp.MethodGet, "/readyz", nil))
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("redis down", func(t *testing.T) {
		mr := miniredis.RunT(t)
		rdb := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
		t.Cleanup(func() { _ = rdb.Close() })
		mr.Close()

		env := newTestEnv(t, testConfig(), rdb)
		resp, _ := env.do(t, httptest.NewRequest(nethttp.MethodGet, "/readyz", nil))
		assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
	})
}
