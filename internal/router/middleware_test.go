package router

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fresh-groceries/internal/authz"
	"github.com/fresh-groceries/internal/config"
	"github.com/fresh-groceries/internal/constants"
	"github.com/fresh-groceries/internal/models"
	"github.com/fresh-groceries/internal/repository"
	"github.com/fresh-groceries/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func openRouterTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:router_%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return db
}

func newRouterTestAuth(t *testing.T, db *gorm.DB) *service.UserAuthService {
	t.Helper()
	cfg := &config.Config{
		JWT: config.JWTConfig{SecretKey: "router-test-secret", ExpireHours: 1},
		Security: config.SecurityConfig{
			PasswordPolicy: config.PasswordPolicyConfig{MinLength: 6},
		},
	}
	return service.NewUserAuthService(cfg, repository.NewUserRepository(db), service.NewCaptchaService(config.CaptchaConfig{}))
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	return resp
}

func TestBuildCORSConfig(t *testing.T) {
	cfg := buildCORSConfig(config.CORSConfig{AllowedOrigins: []string{"*"}})
	if !cfg.AllowAllOrigins {
		t.Fatalf("wildcard without credentials should allow all origins")
	}
	if len(cfg.AllowMethods) == 0 || len(cfg.AllowHeaders) == 0 {
		t.Fatalf("default methods and headers should be filled")
	}

	cfg = buildCORSConfig(config.CORSConfig{AllowedOrigins: []string{"*"}, AllowCredentials: true})
	if cfg.AllowAllOrigins || cfg.AllowOriginFunc == nil {
		t.Fatalf("wildcard with credentials should echo origin")
	}
	if !cfg.AllowOriginFunc("https://shop.example.com") {
		t.Fatalf("origin func should accept any origin")
	}

	cfg = buildCORSConfig(config.CORSConfig{
		AllowedOrigins: []string{" https://a.example.com ", ""},
		MaxAge:         600,
	})
	if len(cfg.AllowOrigins) != 1 || cfg.AllowOrigins[0] != "https://a.example.com" {
		t.Fatalf("allow-list want [https://a.example.com] got %v", cfg.AllowOrigins)
	}
	if cfg.MaxAge != 10*time.Minute {
		t.Fatalf("max age want 10m got %s", cfg.MaxAge)
	}
}

func TestCORSMiddlewarePreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(CORSMiddleware(config.CORSConfig{AllowedOrigins: []string{"https://a.example.com"}}))
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "https://a.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("preflight status want 204 got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://a.example.com" {
		t.Fatalf("allow origin want https://a.example.com got %s", got)
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": getRequestID(c)})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(requestIDHeader, "req-123")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
	if w.Header().Get(requestIDHeader) != "req-123" {
		t.Fatalf("response request id want req-123 got %s", w.Header().Get(requestIDHeader))
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp["request_id"] != "req-123" {
		t.Fatalf("context request id want req-123 got %s", resp["request_id"])
	}

	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if strings.TrimSpace(w2.Header().Get(requestIDHeader)) == "" {
		t.Fatalf("generated request id should not be blank")
	}
}

func TestUserJWTAuthMiddlewareRejectsBadHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := openRouterTestDB(t)

	r := gin.New()
	r.Use(UserJWTAuthMiddleware(newRouterTestAuth(t, db)))
	r.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	cases := []struct {
		name   string
		header string
	}{
		{name: "missing", header: ""},
		{name: "scheme", header: "Basic abc"},
		{name: "empty_token", header: "Bearer "},
		{name: "garbage", header: "Bearer not-a-jwt"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			r.ServeHTTP(w, req)
			if w.Code != http.StatusUnauthorized {
				t.Fatalf("status want 401 got %d", w.Code)
			}
			resp := decodeEnvelope(t, w)
			if int(resp["status_code"].(float64)) != 401 {
				t.Fatalf("business code want 401 got %v", resp["status_code"])
			}
		})
	}
}

func TestUserJWTAuthMiddlewareSetsContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := openRouterTestDB(t)
	authService := newRouterTestAuth(t, db)

	user := &models.User{Name: "Ivan", Email: "ivan@example.com", PasswordHash: "x", Role: constants.RoleCourier}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	token, _, err := authService.GenerateUserJWT(user)
	if err != nil {
		t.Fatalf("generate token failed: %v", err)
	}

	r := gin.New()
	r.Use(UserJWTAuthMiddleware(authService))
	r.GET("/me", func(c *gin.Context) {
		role, _ := contextRole(c)
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetUint(constants.ContextKeyUserID),
			"email":   c.GetString(constants.ContextKeyUserEmail),
			"role":    role,
		})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d body=%s", w.Code, w.Body.String())
	}
	resp := decodeEnvelope(t, w)
	if uint(resp["user_id"].(float64)) != user.ID {
		t.Fatalf("user id want %d got %v", user.ID, resp["user_id"])
	}
	if resp["email"] != "ivan@example.com" || resp["role"] != "courier" {
		t.Fatalf("unexpected context values: %v", resp)
	}

	if err := db.Delete(&models.User{}, user.ID).Error; err != nil {
		t.Fatalf("delete user failed: %v", err)
	}
	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/me", nil)
	req2.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w2, req2)
	if w2.Code != http.StatusUnauthorized {
		t.Fatalf("deleted user status want 401 got %d", w2.Code)
	}
}

func TestRoleGateMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := openRouterTestDB(t)
	authzService, err := authz.NewService(db)
	if err != nil {
		t.Fatalf("new authz service failed: %v", err)
	}
	if err := authzService.BootstrapRolePolicies(); err != nil {
		t.Fatalf("bootstrap role policies failed: %v", err)
	}

	newRouter := func(role constants.Role) *gin.Engine {
		r := gin.New()
		r.Use(func(c *gin.Context) {
			if role != "" {
				c.Set(constants.ContextKeyUserID, uint(1))
				c.Set(constants.ContextKeyUserRole, role)
			}
			c.Next()
		})
		api := r.Group("/api/v1", RoleGateMiddleware(authzService))
		ok := func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) }
		api.PUT("/courier/orders/:id/accept", ok)
		api.PUT("/farmer/orders/:id/prepare", ok)
		api.GET("/admin/orders", ok)
		api.POST("/products", ok)
		return r
	}

	cases := []struct {
		name   string
		role   constants.Role
		method string
		path   string
		want   int
	}{
		{name: "courier_accept", role: constants.RoleCourier, method: http.MethodPut, path: "/api/v1/courier/orders/7/accept", want: http.StatusOK},
		{name: "user_accept", role: constants.RoleUser, method: http.MethodPut, path: "/api/v1/courier/orders/7/accept", want: http.StatusForbidden},
		{name: "courier_prepare", role: constants.RoleCourier, method: http.MethodPut, path: "/api/v1/farmer/orders/7/prepare", want: http.StatusForbidden},
		{name: "farmer_prepare", role: constants.RoleFarmer, method: http.MethodPut, path: "/api/v1/farmer/orders/7/prepare", want: http.StatusOK},
		{name: "farmer_product", role: constants.RoleFarmer, method: http.MethodPost, path: "/api/v1/products", want: http.StatusOK},
		{name: "farmer_admin", role: constants.RoleFarmer, method: http.MethodGet, path: "/api/v1/admin/orders", want: http.StatusForbidden},
		{name: "admin_anything", role: constants.RoleAdmin, method: http.MethodPut, path: "/api/v1/courier/orders/7/accept", want: http.StatusOK},
		{name: "no_role", role: "", method: http.MethodGet, path: "/api/v1/admin/orders", want: http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			newRouter(tc.role).ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))
			if w.Code != tc.want {
				t.Fatalf("status want %d got %d", tc.want, w.Code)
			}
		})
	}
}

func TestRoleGateMiddlewareWithoutService(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(constants.ContextKeyUserRole, constants.RoleAdmin)
		c.Next()
	})
	r.GET("/admin/orders", RoleGateMiddleware(nil), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/orders", nil))
	resp := decodeEnvelope(t, w)
	if int(resp["status_code"].(float64)) != 500 {
		t.Fatalf("business code want 500 got %v", resp["status_code"])
	}
}
