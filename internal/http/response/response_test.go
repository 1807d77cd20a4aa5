package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestBuildPagination(t *testing.T) {
	cases := []struct {
		page, size int
		total      int64
		want       int64
	}{
		{1, 20, 0, 0},
		{1, 20, 20, 1},
		{2, 20, 21, 2},
		{1, 0, 5, 0},
	}
	for _, tc := range cases {
		got := BuildPagination(tc.page, tc.size, tc.total)
		if got.TotalPage != tc.want {
			t.Fatalf("total page for size=%d total=%d: want %d got %d", tc.size, tc.total, tc.want, got.TotalPage)
		}
	}
}

func TestForbiddenUsesRealStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("request_id", "req-1")

	Forbidden(c, "forbidden")

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
	var body struct {
		StatusCode int               `json:"status_code"`
		Data       map[string]string `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body failed: %v", err)
	}
	if body.StatusCode != CodeForbidden || body.Data["request_id"] != "req-1" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestBusinessErrorKeepsHTTP200(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	BadRequest(c, "cart is empty")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestHTTPStatusFor(t *testing.T) {
	cases := map[int]int{
		CodeBadRequest:      http.StatusOK,
		CodeUnauthorized:    http.StatusUnauthorized,
		CodeForbidden:       http.StatusForbidden,
		CodeNotFound:        http.StatusNotFound,
		CodeConflict:        http.StatusOK,
		CodeTooManyRequests: http.StatusTooManyRequests,
		CodeInternal:        http.StatusOK,
	}
	for code, want := range cases {
		if got := HTTPStatusFor(code); got != want {
			t.Fatalf("code %d: want http %d got %d", code, want, got)
		}
	}
}
