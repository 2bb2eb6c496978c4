package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-payroll/internal/domain"
	"go-payroll/internal/middleware"
	"go-payroll/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	assert.NoError(t, err)
	return token
}

func withUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", testSecret)

	r := gin.New()
	r.GET("/me", middleware.AuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("user_id"), "role": c.GetString("role")})
	})

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing token", "", http.StatusUnauthorized},
		{"malformed token", "Bearer nope", http.StatusUnauthorized},
		{"expired token", "Bearer " + signToken(t, jwt.MapClaims{"user_id": "u-1", "exp": time.Now().Add(-time.Hour).Unix()}), http.StatusUnauthorized},
		{"missing user id", "Bearer " + signToken(t, jwt.MapClaims{"role": "hr"}), http.StatusUnauthorized},
		{"valid token", "Bearer " + signToken(t, jwt.MapClaims{"user_id": "u-1", "role": "hr", "exp": time.Now().Add(time.Hour).Unix()}), http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
		})
	}
}

type stubEnforcer struct {
	allowed bool
	err     error
	got     domain.EnforceRequest
}

func (s *stubEnforcer) Enforce(req domain.EnforceRequest) (bool, error) {
	s.got = req
	return s.allowed, s.err
}

func TestRBACAuthorize(t *testing.T) {
	tests := []struct {
		name     string
		userID   string
		enforcer *stubEnforcer
		want     int
	}{
		{"allowed", "u-1", &stubEnforcer{allowed: true}, http.StatusOK},
		{"denied", "u-1", &stubEnforcer{}, http.StatusForbidden},
		{"enforcer error", "u-1", &stubEnforcer{err: errors.New("boom")}, http.StatusInternalServerError},
		{"anonymous", "", &stubEnforcer{allowed: true}, http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.POST("/payrolls/generate/monthly",
				withUser(tt.userID),
				middleware.RBACAuthorize(tt.enforcer, "payroll", "generate"),
				func(c *gin.Context) { c.Status(http.StatusOK) },
			)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/payrolls/generate/monthly", nil))

			assert.Equal(t, tt.want, w.Code)
			if tt.userID != "" {
				assert.Equal(t, domain.EnforceRequest{Subject: "u-1", Resource: "payroll", Action: "generate"}, tt.enforcer.got)
			}
		})
	}
}

func TestIdempotency(t *testing.T) {
	const cacheKey = "idemp:/generate:u-1:k-1"

	t.Run("replays stored response", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet(cacheKey).SetVal(`{"processed":2}`)

		called := false
		r := gin.New()
		r.POST("/generate", withUser("u-1"), middleware.Idempotency(rdb), func(c *gin.Context) { called = true })

		req := httptest.NewRequest(http.MethodPost, "/generate", nil)
		req.Header.Set("Idempotency-Key", "k-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.False(t, called)
		assert.Equal(t, "true", w.Header().Get("Idempotent-Replayed"))
		assert.JSONEq(t, `{"ok":true,"data":{"processed":2}}`, w.Body.String())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects a concurrent duplicate", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(false)

		r := gin.New()
		r.POST("/generate", withUser("u-1"), middleware.Idempotency(rdb), func(c *gin.Context) { c.Status(http.StatusOK) })

		req := httptest.NewRequest(http.MethodPost, "/generate", nil)
		req.Header.Set("Idempotency-Key", "k-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("first request exposes keys to the handler", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(true)

		var gotCache, gotLock string
		r := gin.New()
		r.POST("/generate", withUser("u-1"), middleware.Idempotency(rdb), func(c *gin.Context) {
			gotCache = c.GetString("idempotency_cache_key")
			gotLock = c.GetString("idempotency_lock_key")
			c.Status(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodPost, "/generate", nil)
		req.Header.Set("Idempotency-Key", "k-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, cacheKey, gotCache)
		assert.Equal(t, cacheKey+":lock", gotLock)
	})
}

func TestRateLimitByUser(t *testing.T) {
	r := gin.New()
	r.POST("/generate", withUser("u-1"), middleware.RateLimitByUser(1, 1), func(c *gin.Context) { c.Status(http.StatusOK) })

	first := httptest.NewRecorder()
	r.ServeHTTP(first, httptest.NewRequest(http.MethodPost, "/generate", nil))
	second := httptest.NewRecorder()
	r.ServeHTTP(second, httptest.NewRequest(http.MethodPost, "/generate", nil))

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

func TestContextLogger_PropagatesRequestAndUser(t *testing.T) {
	var rid, uid string
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/x", withUser("u-9"), middleware.ContextLogger(zap.NewNop()), func(c *gin.Context) {
		rid = contextutil.GetRequestID(c.Request.Context())
		uid = contextutil.GetUserID(c.Request.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("X-Request-ID", "req-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-1", rid)
	assert.Equal(t, "u-9", uid)
	assert.Equal(t, "req-1", w.Header().Get("X-Request-ID"))
}

func TestRequestID_ReplacesUnusableHeader(t *testing.T) {
	tests := []struct {
		name   string
		header string
		keep   bool
	}{
		{name: "kept", header: "abc-123", keep: true},
		{name: "empty", header: ""},
		{name: "too long", header: strings.Repeat("a", 65)},
		{name: "whitespace", header: "a b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(middleware.RequestID())
			r.GET("/x", func(c *gin.Context) {})

			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			if tt.header != "" {
				req.Header.Set(middleware.RequestIDHeader, tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			got := w.Header().Get(middleware.RequestIDHeader)
			assert.NotEmpty(t, got)
			if tt.keep {
				assert.Equal(t, tt.header, got)
			} else {
				assert.NotEqual(t, tt.header, got)
			}
		})
	}
}
