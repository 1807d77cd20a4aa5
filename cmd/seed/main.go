package main

import (
	"errors"

	"github.com/fresh-groceries/internal/config"
	"github.com/fresh-groceries/internal/constants"
	"github.com/fresh-groceries/internal/logger"
	"github.com/fresh-groceries/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// 演示账号统一密码
const demoPassword = "password123"

type seedUser struct {
	Name    string
	Email   string
	Role    constants.Role
	Address string
}

type seedProduct struct {
	Name     string
	Price    int64
	Stock    int
	Category string
}

var demoUsers = []seedUser{
	{Name: "Anna", Email: "anna@example.com", Role: constants.RoleUser, Address: "Nevsky Ave, 12"},
	{Name: "Ivan", Email: "ivan@example.com", Role: constants.RoleCourier},
	{Name: "Farmer", Email: "farmer@example.com", Role: constants.RoleFarmer, Address: "Green Valley Farm"},
}

var demoProducts = []seedProduct{
	{Name: "Russet Potatoes", Price: 80, Stock: 120, Category: "Vegetables"},
	{Name: "Organic Milk", Price: 95, Stock: 40, Category: "Dairy"},
	{Name: "Sourdough Bread", Price: 150, Stock: 25, Category: "Bakery"},
	{Name: "Bananas", Price: 60, Stock: 80, Category: "Fruits"},
}

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(models.DBOptions{
		Driver: cfg.Database.Driver,
		DSN:    cfg.Database.DSN,
		Pool: models.DBPoolConfig{
			MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
			MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
			ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
			ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
		},
		LogLevel: cfg.Database.LogLevel,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 管理员与分类
	if err := models.InitDefaultData(cfg.Bootstrap.AdminEmail, cfg.Bootstrap.AdminPassword); err != nil {
		stdLog.Fatalf("Failed to init default data: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		stdLog.Fatalf("Failed to hash demo password: %v", err)
	}

	var farmerID uint
	for _, item := range demoUsers {
		user, err := ensureUser(models.DB, item, string(hash))
		if err != nil {
			stdLog.Fatalf("Failed to seed user %s: %v", item.Email, err)
		}
		if user.Role == constants.RoleFarmer {
			farmerID = user.ID
		}
	}

	supplier := models.Supplier{Name: "Green Valley Co-op"}
	if err := models.DB.Where("name = ?", supplier.Name).FirstOrCreate(&supplier).Error; err != nil {
		stdLog.Fatalf("Failed to seed supplier: %v", err)
	}

	for _, item := range demoProducts {
		if err := ensureProduct(models.DB, item, supplier.ID, farmerID); err != nil {
			stdLog.Fatalf("Failed to seed product %s: %v", item.Name, err)
		}
	}

	logger.Infow("seed_completed",
		"users", len(demoUsers),
		"products", len(demoProducts),
		"demo_password", demoPassword,
	)
}

func ensureUser(db *gorm.DB, item seedUser, passwordHash string) (*models.User, error) {
	var user models.User
	err := db.Where("email = ?", item.Email).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	user = models.User{
		Name:         item.Name,
		Email:        item.Email,
		Address:      item.Address,
		PasswordHash: passwordHash,
		Role:         item.Role,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func ensureProduct(db *gorm.DB, item seedProduct, supplierID, farmerID uint) error {
	var count int64
	if err := db.Model(&models.Product{}).Where("name = ?", item.Name).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	var category models.Category
	if err := db.Where("name = ?", item.Category).FirstOrCreate(&category, models.Category{Name: item.Category}).Error; err != nil {
		return err
	}
	product := models.Product{
		Name:       item.Name,
		Price:      models.NewMoneyFromInt(item.Price),
		Stock:      item.Stock,
		CategoryID: category.ID,
		SupplierID: &supplierID,
	}
	if farmerID != 0 {
		product.FarmerID = &farmerID
	}
	return db.Create(&product).Error
}
