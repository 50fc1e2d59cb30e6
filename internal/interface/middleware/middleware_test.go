package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-task-manager/internal/application"
	"github.com/oksasatya/go-task-manager/internal/domain/entity"
	"github.com/oksasatya/go-task-manager/pkg/helpers"
)

type fakeResolver map[string]error

func (f fakeResolver) Resolve(_ context.Context, token string) (*entity.User, error) {
	if err, ok := f[token]; ok {
		return nil, err
	}
	return &entity.User{ID: 7, Email: "a@x.com"}, nil
}

func init() { gin.SetMode(gin.TestMode) }

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuth(t *testing.T) {
	resolver := fakeResolver{
		"expired": fmt.Errorf("%w: %w", application.ErrInvalidToken, application.ErrTokenExpired),
		"bad":     application.ErrInvalidToken,
		"gone":    application.ErrUserNotFound,
	}
	r := gin.New()
	r.GET("/me", Auth(resolver, helpers.NewDiscardLogger()), func(c *gin.Context) {
		c.String(http.StatusOK, "%d", CurrentUser(c).ID)
	})

	cases := []struct {
		header string
		status int
		body   string
	}{
		{"", http.StatusUnauthorized, "not authenticated"},
		{"Basic abc", http.StatusUnauthorized, "not authenticated"},
		{"Bearer ", http.StatusUnauthorized, "not authenticated"},
		{"Bearer expired", http.StatusUnauthorized, "token expired"},
		{"Bearer bad", http.StatusUnauthorized, "could not validate credentials"},
		{"Bearer gone", http.StatusUnauthorized, "user not found"},
		{"bearer good", http.StatusOK, "7"},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		w := serve(r, req)
		assert.Equal(t, tc.status, w.Code, tc.header)
		assert.Contains(t, w.Body.String(), tc.body, tc.header)
		if tc.status == http.StatusUnauthorized {
			assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
		}
	}
}

func TestAuthLogsResolverFailure(t *testing.T) {
	var buf bytes.Buffer
	logger := helpers.NewLogger("task-api", "production")
	logger.SetOutput(&buf)

	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/me", Auth(fakeResolver{"t": errors.New("connection refused")}, logger), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer t")
	w := serve(r, req)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection refused")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "resolve bearer token failed", line["msg"])
	assert.Equal(t, "connection refused", line["error"])
	assert.Equal(t, "/me", line["path"])
	assert.Equal(t, w.Header().Get(HeaderRequestID), line["request_id"])
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(CtxRequestIDKey)) })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	_, err := uuid.Parse(w.Body.String())
	require.NoError(t, err)
	assert.Equal(t, w.Body.String(), w.Header().Get(HeaderRequestID))

	incoming := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, incoming)
	assert.Equal(t, incoming, serve(r, req).Body.String())

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "<script>")
	assert.NotEqual(t, "<script>", serve(r, req).Body.String())
}

// newEngine trusts forwarding headers only from the given proxies.
func newEngine(t *testing.T, proxies ...string) *gin.Engine {
	t.Helper()
	r := gin.New()
	require.NoError(t, r.SetTrustedProxies(proxies))
	r.Use(RealIP())
	return r
}

func TestRealIP(t *testing.T) {
	echo := func(c *gin.Context) { c.String(http.StatusOK, c.GetString(CtxRealIPKey)) }

	// httptest requests come from 192.0.2.1
	direct := newEngine(t)
	direct.GET("/", echo)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	req.Header.Set("CF-Connecting-IP", "198.51.100.4")
	assert.Equal(t, "192.0.2.1", serve(direct, req).Body.String())

	proxied := newEngine(t, "192.0.2.0/24", "10.0.0.0/8")
	proxied.GET("/", echo)
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	assert.Equal(t, "203.0.113.9", serve(proxied, req).Body.String())

	cloudflare := newEngine(t)
	cloudflare.TrustedPlatform = gin.PlatformCloudflare
	cloudflare.GET("/", echo)
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("CF-Connecting-IP", "198.51.100.4")
	assert.Equal(t, "198.51.100.4", serve(cloudflare, req).Body.String())
}

func TestRateLimitDisabledWithoutRedis(t *testing.T) {
	r := gin.New()
	r.POST("/token", RateLimit(nil, 1, time.Minute, KeyByIP(), nil), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	for i := 0; i < 3; i++ {
		w := serve(r, httptest.NewRequest(http.MethodPost, "/token", nil))
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
	}
}

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

func TestRateLimitEnforcesWindow(t *testing.T) {
	mr, rdb := newRedis(t)
	r := newEngine(t)
	r.POST("/token", RateLimit(rdb, 2, time.Minute, KeyByIPAndPath(), nil), func(c *gin.Context) { c.Status(http.StatusNoContent) })
	post := func() *httptest.ResponseRecorder {
		return serve(r, httptest.NewRequest(http.MethodPost, "/token", nil))
	}

	w := post()
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", w.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, "60", w.Header().Get("X-RateLimit-Reset"))

	w = post()
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))

	w = post()
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, "60", w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "rate limit exceeded")
	assert.True(t, mr.Exists("rl:path:/token:ip:192.0.2.1"))

	// a different client has its own budget
	other := httptest.NewRequest(http.MethodPost, "/token", nil)
	other.RemoteAddr = "198.51.100.7:4000"
	assert.Equal(t, http.StatusNoContent, serve(r, other).Code)

	mr.FastForward(time.Minute)
	w = post()
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "1", w.Header().Get("X-RateLimit-Remaining"))
}

func TestRateLimitIgnoresSpoofedForwardingHeaders(t *testing.T) {
	_, rdb := newRedis(t)
	r := newEngine(t)
	r.POST("/token", RateLimit(rdb, 1, time.Minute, KeyByIPAndPath(), AllowPrivateIP()), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	spoofed := func(xff string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/token", nil)
		req.Header.Set("X-Forwarded-For", xff)
		req.Header.Set("CF-Connecting-IP", xff)
		return serve(r, req)
	}

	assert.Equal(t, http.StatusNoContent, spoofed("203.0.113.1").Code)
	assert.Equal(t, http.StatusTooManyRequests, spoofed("203.0.113.2").Code)
	assert.Equal(t, http.StatusTooManyRequests, spoofed("127.0.0.1").Code)

	local := httptest.NewRequest(http.MethodPost, "/token", nil)
	local.RemoteAddr = "127.0.0.1:5000"
	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusNoContent, serve(r, local).Code)
	}
}

func TestRateLimitFailsOpen(t *testing.T) {
	mr, rdb := newRedis(t)
	r := newEngine(t)
	r.POST("/token", RateLimit(rdb, 1, time.Minute, KeyByIP(), nil), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	mr.Close()
	for i := 0; i < 3; i++ {
		w := serve(r, httptest.NewRequest(http.MethodPost, "/token", nil))
		assert.Equal(t, http.StatusNoContent, w.Code)
	}
}

func TestKeyFuncs(t *testing.T) {
	r := newEngine(t)
	var keys []string
	r.GET("/notes/:id", func(c *gin.Context) {
		keys = append(keys, KeyByIP()(c), KeyByIPAndPath()(c), KeyByUserID()(c))
		c.Set(CtxUserKey, &entity.User{ID: 9})
		keys = append(keys, KeyByUserID()(c))
		if AllowPrivateIP()(c) {
			keys = append(keys, "private")
		}
	})

	req := httptest.NewRequest(http.MethodGet, "/notes/3", nil)
	req.Header.Set("X-Forwarded-For", "10.1.2.3")
	serve(r, req)

	assert.Equal(t, []string{
		"rl:ip:192.0.2.1",
		"rl:path:/notes/:id:ip:192.0.2.1",
		"rl:user:anon:ip:192.0.2.1",
		"rl:user:9",
	}, keys)

	keys = nil
	req = httptest.NewRequest(http.MethodGet, "/notes/3", nil)
	req.RemoteAddr = "10.1.2.3:8080"
	serve(r, req)
	assert.Equal(t, "private", keys[len(keys)-1])
}
