package provider

import (
	"github.com/fresh-groceries/internal/authz"
	"github.com/fresh-groceries/internal/cache"
	"github.com/fresh-groceries/internal/config"
	"github.com/fresh-groceries/internal/logger"
	"github.com/fresh-groceries/internal/models"
	"github.com/fresh-groceries/internal/queue"
	"github.com/fresh-groceries/internal/repository"
	"github.com/fresh-groceries/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	UserRepo            repository.UserRepository
	CategoryRepo        repository.CategoryRepository
	SupplierRepo        repository.SupplierRepository
	ProductRepo         repository.ProductRepository
	CartRepo            repository.CartRepository
	OrderRepo           repository.OrderRepository
	CourierLocationRepo repository.CourierLocationRepository
	FeedbackRepo        repository.FeedbackRepository

	// Services
	AuthzService    *authz.Service
	CaptchaService  *service.CaptchaService
	UserAuthService *service.UserAuthService
	CategoryService *service.CategoryService
	SupplierService *service.SupplierService
	ProductService  *service.ProductService
	CartService     *service.CartService
	OrderService    *service.OrderService
	CourierService  *service.CourierService
	FarmerService   *service.FarmerService
	FeedbackService *service.FeedbackService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端，未启用或 Redis 不可达时投递为空操作
	queueClient, err := queue.NewClient(&cfg.Queue)
	if err != nil {
		logger.Warnw("provider_init_queue_client_failed", "error", err)
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.UserRepo = repository.NewUserRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.SupplierRepo = repository.NewSupplierRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.CourierLocationRepo = repository.NewCourierLocationRepository(db)
	c.FeedbackRepo = repository.NewFeedbackRepository(db)
}

func (c *Container) initServices() {
	authzService, err := authz.NewService(models.DB)
	if err != nil {
		logger.Errorw("provider_init_authz_failed", "error", err)
		panic(err)
	}
	c.AuthzService = authzService
	if err := c.AuthzService.BootstrapRolePolicies(); err != nil {
		logger.Errorw("provider_bootstrap_role_policies_failed", "error", err)
		panic(err)
	}

	c.CaptchaService = service.NewCaptchaService(c.Config.Security.Captcha)
	c.UserAuthService = service.NewUserAuthService(c.Config, c.UserRepo, c.CaptchaService)
	c.CategoryService = service.NewCategoryService(c.CategoryRepo)
	c.SupplierService = service.NewSupplierService(c.SupplierRepo)
	c.ProductService = service.NewProductService(c.ProductRepo, c.CategoryRepo, c.SupplierRepo, c.CartRepo, c.OrderRepo)
	c.CartService = service.NewCartService(c.CartRepo, c.ProductRepo)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.CartRepo, c.UserRepo, c.QueueClient)
	c.CourierService = service.NewCourierService(c.OrderService, c.CourierLocationRepo)
	c.FarmerService = service.NewFarmerService(c.OrderService, c.ProductService)
	c.FeedbackService = service.NewFeedbackService(c.FeedbackRepo, c.OrderRepo)
}

// Close 释放容器持有的外部连接
func (c *Container) Close() {
	if c == nil {
		return
	}
	if err := c.QueueClient.Close(); err != nil {
		logger.Warnw("provider_close_queue_client_failed", "error", err)
	}
	if err := cache.Close(); err != nil {
		logger.Warnw("provider_close_redis_failed", "error", err)
	}
}
