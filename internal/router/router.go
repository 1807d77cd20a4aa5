package router

import (
	"net/http"
	"sort"
	"strings"

	"github.com/fresh-groceries/internal/authz"
	"github.com/fresh-groceries/internal/cache"
	"github.com/fresh-groceries/internal/config"
	adminhandlers "github.com/fresh-groceries/internal/http/handlers/admin"
	publichandlers "github.com/fresh-groceries/internal/http/handlers/public"
	staffhandlers "github.com/fresh-groceries/internal/http/handlers/staff"
	"github.com/fresh-groceries/internal/http/response"
	"github.com/fresh-groceries/internal/i18n"
	"github.com/fresh-groceries/internal/logger"
	"github.com/fresh-groceries/internal/provider"

	"github.com/gin-gonic/gin"
)

// 需要角色门禁的路由前缀（全部方法）
var roleGatedPrefixes = []string{"/courier/", "/farmer/", "/admin/"}

// 仅写操作需要角色门禁的目录资源
var catalogWritePrefixes = []string{"/products", "/categories", "/suppliers"}

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	// 初始化 Handler（按用户侧、骑手/农户、后台分组）
	publicHandler := publichandlers.New(c)
	staffHandler := staffhandlers.New(c)
	adminHandler := adminhandlers.New(c)

	loginRule := RateLimitRule{
		Prefix:        cache.BuildKey("rate:login"),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		BlockSeconds:  cfg.Security.LoginRateLimit.BlockSeconds,
		MessageKey:    "error.login_rate_limited",
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.NoRoute(func(ctx *gin.Context) {
		response.NotFound(ctx, i18n.T(i18n.ResolveLocale(ctx), "error.route_not_found"))
	})

	apiV1 := r.Group("/api/v1")
	{
		// 公开接口
		apiV1.GET("/products", publicHandler.GetProducts)
		apiV1.GET("/products/:id", publicHandler.GetProduct)
		apiV1.GET("/categories", publicHandler.GetCategories)
		apiV1.GET("/suppliers", publicHandler.GetSuppliers)

		// 用户认证接口
		auth := apiV1.Group("/auth")
		{
			auth.POST("/register", publicHandler.UserRegister)
			auth.POST("/token", RateLimitMiddleware(cache.Client(), loginRule, KeyByIPAndJSONField("email")), publicHandler.UserLogin)
			auth.GET("/captcha", publicHandler.GetImageCaptcha)
		}

		// 用户接口（需鉴权）
		user := apiV1.Group("")
		user.Use(UserJWTAuthMiddleware(c.UserAuthService))
		{
			user.GET("/me", publicHandler.GetCurrentUser)
			user.PUT("/me", publicHandler.UpdateCurrentUser)
			user.PUT("/me/password", publicHandler.ChangePassword)

			user.GET("/cart", publicHandler.GetCart)
			user.POST("/cart", publicHandler.AddCartItem)
			user.PUT("/cart/:id", publicHandler.UpdateCartItem)
			user.DELETE("/cart/:id", publicHandler.RemoveCartItem)

			user.POST("/orders", publicHandler.CreateOrder)
			user.GET("/orders", publicHandler.ListOrders)
			user.GET("/orders/:id", publicHandler.GetOrder)
			user.GET("/orders/:id/feedback", publicHandler.GetOrderFeedback)
			user.POST("/feedback", publicHandler.SubmitFeedback)
		}

		// 角色门禁接口：资源与动作交给 casbin 判断，管理员全部放行
		gated := user.Group("")
		gated.Use(RoleGateMiddleware(c.AuthzService))
		{
			// 商品目录写操作
			gated.POST("/products", publicHandler.CreateProduct)
			gated.PUT("/products/:id", publicHandler.UpdateProduct)
			gated.DELETE("/products/:id", publicHandler.DeleteProduct)
			gated.POST("/categories", publicHandler.CreateCategory)
			gated.POST("/suppliers", publicHandler.CreateSupplier)

			// 骑手
			courier := gated.Group("/courier")
			{
				courier.GET("/orders/available", staffHandler.AvailableOrders)
				courier.POST("/orders/:id/accept", staffHandler.AcceptOrder)
				courier.PUT("/orders/:id/accept", staffHandler.AcceptOrder)
				courier.GET("/orders/my", staffHandler.MyOrders)
				courier.PUT("/orders/:id/status", staffHandler.UpdateOrderStatus)
				courier.POST("/location", staffHandler.ReportLocation)
				courier.GET("/location", staffHandler.GetLocation)
			}

			// 农户
			farmer := gated.Group("/farmer")
			{
				farmer.GET("/orders", staffHandler.FarmerOrders)
				farmer.GET("/products", staffHandler.FarmerProducts)
				farmer.PUT("/orders/:id/prepare", staffHandler.PrepareOrder)
			}

			// 管理员
			admin := gated.Group("/admin")
			{
				admin.GET("/orders", adminHandler.AdminListOrders)
				admin.GET("/users", adminHandler.GetAdminUsers)
				admin.PUT("/users/:id/role", adminHandler.SetUserRole)

				// 权限管理
				admin.GET("/authz/roles", adminHandler.ListAuthzRoles)
				admin.GET("/authz/roles/:role/policies", adminHandler.GetAuthzRolePolicies)
				admin.POST("/authz/policies", adminHandler.GrantAuthzPolicy)
				admin.DELETE("/authz/policies", adminHandler.RevokeAuthzPolicy)
				admin.GET("/authz/permissions/catalog", func(ctx *gin.Context) {
					response.Success(ctx, buildPermissionCatalog(r))
				})
			}
		}
	}

	return r
}

type permissionCatalogItem struct {
	Module     string `json:"module"`
	Method     string `json:"method"`
	Object     string `json:"object"`
	Permission string `json:"permission"`
}

// buildPermissionCatalog 列出受角色门禁保护的路由，供授予策略时参考
func buildPermissionCatalog(engine *gin.Engine) []permissionCatalogItem {
	if engine == nil {
		return []permissionCatalogItem{}
	}

	routes := engine.Routes()
	seen := make(map[string]struct{}, len(routes))
	items := make([]permissionCatalogItem, 0, len(routes))

	for _, item := range routes {
		method := strings.ToUpper(strings.TrimSpace(item.Method))
		if method == "" || method == http.MethodOptions || method == http.MethodHead {
			continue
		}
		if !strings.HasPrefix(item.Path, "/api/v1/") {
			continue
		}
		object := authz.NormalizeObject(item.Path)
		if !isRoleGatedRoute(method, object) {
			continue
		}
		permission := method + ":" + object
		if _, exists := seen[permission]; exists {
			continue
		}
		seen[permission] = struct{}{}
		items = append(items, permissionCatalogItem{
			Module:     derivePermissionModule(object),
			Method:     method,
			Object:     object,
			Permission: permission,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Module == items[j].Module {
			if items[i].Object == items[j].Object {
				return items[i].Method < items[j].Method
			}
			return items[i].Object < items[j].Object
		}
		return items[i].Module < items[j].Module
	})

	return items
}

func isRoleGatedRoute(method, object string) bool {
	for _, prefix := range roleGatedPrefixes {
		if strings.HasPrefix(object, prefix) {
			return true
		}
	}
	if method == http.MethodGet {
		return false
	}
	for _, prefix := range catalogWritePrefixes {
		if object == prefix || strings.HasPrefix(object, prefix+"/") {
			return true
		}
	}
	return false
}

func derivePermissionModule(object string) string {
	normalized := strings.TrimPrefix(strings.TrimSpace(object), "/")
	if normalized == "" {
		return "system"
	}
	segments := strings.Split(normalized, "/")
	if len(segments) <= 1 {
		return segments[0]
	}
	if segments[0] != "admin" {
		return segments[0]
	}
	if segments[1] == "authz" {
		return "authz"
	}
	return segments[1]
}
