package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestResolveLocale(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cases := []struct {
		name   string
		url    string
		header string
		want   string
	}{
		{"default", "/", "", LocaleEN},
		{"chinese header", "/", "zh-CN,zh;q=0.9,en;q=0.8", LocaleZhCN},
		{"plain zh", "/", "zh", LocaleZhCN},
		{"english preferred", "/", "en-US,zh;q=0.5", LocaleEN},
		{"unsupported", "/", "ru-RU", LocaleEN},
		{"query wins", "/?lang=zh-CN", "en-US", LocaleZhCN},
		{"garbage header", "/", ";;;", LocaleEN},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, tc.url, nil)
		if tc.header != "" {
			c.Request.Header.Set("Accept-Language", tc.header)
		}
		if got := ResolveLocale(c); got != tc.want {
			t.Fatalf("%s: want %s got %s", tc.name, tc.want, got)
		}
	}
}

func TestTFallbacks(t *testing.T) {
	if got := T(LocaleZhCN, "error.cart_empty"); got != "购物车为空" {
		t.Fatalf("unexpected zh message: %s", got)
	}
	if got := T("fr", "error.cart_empty"); got != "Cart is empty" {
		t.Fatalf("expected english fallback, got %s", got)
	}
	if got := T(LocaleEN, "error.unknown_key"); got != "error.unknown_key" {
		t.Fatalf("expected key fallback, got %s", got)
	}
	if got := Sprintf(LocaleEN, "error.password_min_length", 8); got != "Password must be at least 8 characters" {
		t.Fatalf("unexpected formatted message: %s", got)
	}
}

func TestMessageTablesHaveSameKeys(t *testing.T) {
	for key := range messages[LocaleEN] {
		if _, ok := messages[LocaleZhCN][key]; !ok {
			t.Fatalf("zh-CN missing key %s", key)
		}
	}
	for key := range messages[LocaleZhCN] {
		if _, ok := messages[LocaleEN][key]; !ok {
			t.Fatalf("en missing key %s", key)
		}
	}
}
