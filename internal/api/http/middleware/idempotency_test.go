package middleware

import (
	"io"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v3"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisLock_SerializesHolders(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	l := NewRedisLock(rdb)
	require.NoError(t, l.Lock("k"))
	assert.True(t, mr.Exists(lockPrefix+"k"))

	acquired := make(chan error, 1)
	go func() { acquired <- l.Lock("k") }()

	select {
	case <-acquired:
		t.Fatal("second holder acquired a held lock")
	case <-time.After(100 * time.Millisecond):
	}

	require.NoError(t, l.Unlock("k"))
	select {
	case err := <-acquired:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("second holder never acquired the lock")
	}

	require.NoError(t, l.Unlock("k"))
	assert.False(t, mr.Exists(lockPrefix+"k"))
}

func TestFormToken(t *testing.T) {
	const token = "7d4f8a4e-3c55-4d2a-9b39-0d5b7f1f8c2e"

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"valid token", token, token},
		{"malformed token", "not-a-uuid", ""},
		{"missing token", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Post("/", FormToken("form_token"), func(c fiber.Ctx) error {
				return c.SendString(c.Get(HeaderIdempotencyKey))
			})

			form := url.Values{"form_token": {tt.value}}
			req := httptest.NewRequest(fiber.MethodPost, "/", strings.NewReader(form.Encode()))
			req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(body))
		})
	}
}
