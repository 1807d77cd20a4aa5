package service

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/fresh-groceries/internal/config"
	"github.com/fresh-groceries/internal/constants"
	"github.com/fresh-groceries/internal/models"
	"github.com/fresh-groceries/internal/queue"
	"github.com/fresh-groceries/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/hibiken/asynq"
	"gorm.io/gorm"
)

// testEnv 服务层测试依赖
type testEnv struct {
	db       *gorm.DB
	events   *recordingPublisher
	users    *repository.GormUserRepository
	products *repository.GormProductRepository
	carts    *repository.GormCartRepository
	orders   *repository.GormOrderRepository
	cart     *CartService
	order    *OrderService
	product  *ProductService
	courier  *CourierService
	feedback *FeedbackService
	category *models.Category
	customer *models.User
	courierA *models.User
	courierB *models.User
	farmer   *models.User
}

// recordingPublisher 记录投递的订单事件
type recordingPublisher struct {
	mu      sync.Mutex
	created []queue.OrderCreatedPayload
	changed []queue.OrderStatusChangedPayload
}

func (p *recordingPublisher) EnqueueOrderCreated(payload queue.OrderCreatedPayload, _ ...asynq.Option) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.created = append(p.created, payload)
	return nil
}

func (p *recordingPublisher) EnqueueOrderStatusChanged(payload queue.OrderStatusChangedPayload, _ ...asynq.Option) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.changed = append(p.changed, payload)
	return nil
}

func openServiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:svc_%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db failed: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	previous := models.DB
	models.DB = db
	t.Cleanup(func() {
		models.DB = previous
		_ = sqlDB.Close()
	})
	return db
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := openServiceTestDB(t)

	env := &testEnv{
		db:       db,
		events:   &recordingPublisher{},
		users:    repository.NewUserRepository(db),
		products: repository.NewProductRepository(db),
		carts:    repository.NewCartRepository(db),
		orders:   repository.NewOrderRepository(db),
	}
	categories := repository.NewCategoryRepository(db)
	suppliers := repository.NewSupplierRepository(db)

	env.cart = NewCartService(env.carts, env.products)
	env.order = NewOrderService(env.orders, env.carts, env.users, env.events)
	env.product = NewProductService(env.products, categories, suppliers, env.carts, env.orders)
	env.courier = NewCourierService(env.order, repository.NewCourierLocationRepository(db))
	env.feedback = NewFeedbackService(repository.NewFeedbackRepository(db), env.orders)

	env.category = &models.Category{Name: "Vegetables"}
	if err := db.Create(env.category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	env.customer = env.createUser(t, "anna@example.com", constants.RoleUser, "Nevsky Ave, 12")
	env.courierA = env.createUser(t, "ivan@example.com", constants.RoleCourier, "")
	env.courierB = env.createUser(t, "petr@example.com", constants.RoleCourier, "")
	env.farmer = env.createUser(t, "farmer@example.com", constants.RoleFarmer, "")
	return env
}

func (e *testEnv) createUser(t *testing.T, email string, role constants.Role, address string) *models.User {
	t.Helper()
	user := &models.User{Name: email, Email: email, PasswordHash: "x", Role: role, Address: address}
	if err := e.db.Create(user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	return user
}

func (e *testEnv) createProduct(t *testing.T, name string, price int64, discount *int64) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:       name,
		Price:      models.NewMoneyFromInt(price),
		Stock:      10,
		CategoryID: e.category.ID,
	}
	if discount != nil {
		d := models.NewMoneyFromInt(*discount)
		product.DiscountPrice = &d
	}
	if err := e.db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func (e *testEnv) addToCart(t *testing.T, userID, productID uint, qty int) *models.CartItem {
	t.Helper()
	item, err := e.cart.Add(userID, productID, &qty)
	if err != nil {
		t.Fatalf("add to cart failed: %v", err)
	}
	return item
}

// placeOrder 用单件商品下单
func (e *testEnv) placeOrder(t *testing.T, userID uint) *models.Order {
	t.Helper()
	product := e.createProduct(t, fmt.Sprintf("item-%d", userID), 50, nil)
	e.addToCart(t, userID, product.ID, 1)
	order, err := e.order.Create(CreateOrderInput{UserID: userID, PaymentMethod: "cash"})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	return order
}

func newTestConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{SecretKey: "test-secret-key-with-enough-entropy", ExpireHours: 1},
		Security: config.SecurityConfig{
			PasswordPolicy: config.PasswordPolicyConfig{MinLength: 6},
		},
	}
}

func int64Ptr(v int64) *int64 {
	return &v
}
