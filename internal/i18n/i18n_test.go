package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newLocaleContext(target, acceptLanguage string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if acceptLanguage != "" {
		req.Header.Set("Accept-Language", acceptLanguage)
	}
	c.Request = req
	return c
}

func TestResolveLocale(t *testing.T) {
	cases := []struct {
		target string
		header string
		want   string
	}{
		{"/", "", LocaleEN},
		{"/", "zh-CN,zh;q=0.9,en;q=0.8", LocaleZH},
		{"/", "fr-FR", LocaleEN},
		{"/", "*, zh", LocaleZH},
		{"/?lang=zh_cn", "en-US", LocaleZH},
		{"/?lang=en", "zh-CN", LocaleEN},
	}
	for _, tc := range cases {
		if got := ResolveLocale(newLocaleContext(tc.target, tc.header)); got != tc.want {
			t.Fatalf("target=%s header=%q: want %s got %s", tc.target, tc.header, tc.want, got)
		}
	}
	if got := ResolveLocale(nil); got != DefaultLocale {
		t.Fatalf("nil context should use default locale, got %s", got)
	}
}

func TestTFallbacks(t *testing.T) {
	if got := T(LocaleZH, "error.cart_empty"); got != "购物车为空" {
		t.Fatalf("unexpected zh message: %s", got)
	}
	if got := T("de-DE", "error.cart_empty"); got != "Your cart is empty" {
		t.Fatalf("unknown locale should fall back to en, got %s", got)
	}
	if got := T(LocaleEN, "error.unknown_key"); got != "error.unknown_key" {
		t.Fatalf("missing key should return key, got %s", got)
	}
	if got := Sprintf(LocaleEN, "error.rate_limited", 30); got != "Too many requests, please retry in 30 seconds" {
		t.Fatalf("unexpected formatted message: %s", got)
	}
}

func TestMessageKeysMatchAcrossLocales(t *testing.T) {
	for key := range messages[LocaleEN] {
		if _, ok := messages[LocaleZH][key]; !ok {
			t.Fatalf("zh-CN missing key %s", key)
		}
	}
	for key := range messages[LocaleZH] {
		if _, ok := messages[LocaleEN][key]; !ok {
			t.Fatalf("en-US missing key %s", key)
		}
	}
}
