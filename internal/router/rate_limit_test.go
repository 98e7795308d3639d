package router

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/everbuy/internal/constants"
	"github.com/everbuy/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// countingScripter 模拟 Lua INCR 脚本
type countingScripter struct {
	redis.Scripter
	counts map[string]int64
	err    error
}

func (s *countingScripter) EvalSha(ctx context.Context, _ string, keys []string, _ ...interface{}) *redis.Cmd {
	cmd := redis.NewCmd(ctx)
	if s.err != nil {
		cmd.SetErr(s.err)
		return cmd
	}
	s.counts[keys[0]]++
	cmd.SetVal([]interface{}{s.counts[keys[0]], int64(30)})
	return cmd
}

func (s *countingScripter) Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd {
	return s.EvalSha(ctx, script, keys, args...)
}

func decodeStatusCode(t *testing.T, body []byte) (int, string) {
	t.Helper()
	var resp struct {
		StatusCode int    `json:"status_code"`
		Msg        string `json:"msg"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	return resp.StatusCode, resp.Msg
}

func TestRateLimitMiddlewareWithoutClient(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var nilClient *redis.Client
	r := gin.New()
	r.Use(RateLimitMiddleware(nilClient, RateLimitRule{WindowSeconds: 60, MaxRequests: 1}, KeyByIP))
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if !strings.Contains(w.Body.String(), `"ok":true`) {
			t.Fatalf("expected handler response body, got %s", w.Body.String())
		}
	}
}

func TestRateLimitMiddlewareBlocksAfterMax(t *testing.T) {
	gin.SetMode(gin.TestMode)

	scripter := &countingScripter{counts: map[string]int64{}}
	r := gin.New()
	r.Use(RateLimitMiddleware(scripter, RateLimitRule{
		Prefix:        "eb:rate:checkout_submit",
		WindowSeconds: 60,
		MaxRequests:   2,
		MessageKey:    "error.checkout_submit_limited",
	}, KeyByIP))
	r.POST("/submit", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status_code": 0})
	})

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/submit", nil))
		if code, _ := decodeStatusCode(t, w.Body.Bytes()); code != 0 {
			t.Fatalf("request %d should pass, got status_code %d", i, code)
		}
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/submit", nil))
	code, msg := decodeStatusCode(t, w.Body.Bytes())
	if code != 429 {
		t.Fatalf("third request should be limited, got status_code %d", code)
	}
	if !strings.Contains(msg, "30 seconds") {
		t.Fatalf("message should carry ttl, got %q", msg)
	}
	if _, ok := scripter.counts["eb:rate:checkout_submit:192.0.2.1"]; !ok {
		t.Fatalf("unexpected keys: %+v", scripter.counts)
	}
}

func TestRateLimitMiddlewareScriptError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	scripter := &countingScripter{counts: map[string]int64{}, err: errors.New("connection refused")}
	r := gin.New()
	r.Use(RateLimitMiddleware(scripter, RateLimitRule{WindowSeconds: 60, MaxRequests: 2}, KeyByIP))
	r.POST("/submit", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status_code": 0})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/submit", nil))
	if code, _ := decodeStatusCode(t, w.Body.Bytes()); code != 500 {
		t.Fatalf("script error should return 500, got %d", code)
	}
}

func TestKeyBySession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/submit", nil)
	c.Request.RemoteAddr = "1.2.3.4:5678"
	if key := KeyBySession(c); key != "1.2.3.4" {
		t.Fatalf("without session key should fall back to ip, got %s", key)
	}

	manager, err := session.NewManager(session.Options{Secret: "k"})
	if err != nil {
		t.Fatalf("new manager failed: %v", err)
	}
	sess, _, _, err := manager.Issue()
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	c.Set(constants.SessionContextKey, sess)
	if key := KeyBySession(c); key != "sid:"+sess.ID {
		t.Fatalf("unexpected session key: %s", key)
	}
}

func TestToInt64(t *testing.T) {
	cases := []struct {
		name  string
		input interface{}
		want  int64
		ok    bool
	}{
		{name: "int64", input: int64(10), want: 10, ok: true},
		{name: "int", input: int(11), want: 11, ok: true},
		{name: "float64", input: float64(13.9), want: 13, ok: true},
		{name: "string", input: "bad", want: 0, ok: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := toInt64(tc.input)
			if ok != tc.ok {
				t.Fatalf("ok want %v got %v", tc.ok, ok)
			}
			if got != tc.want {
				t.Fatalf("value want %d got %d", tc.want, got)
			}
		})
	}
}
