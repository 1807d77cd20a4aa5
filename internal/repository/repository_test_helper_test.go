package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/fresh-groceries/internal/constants"
	"github.com/fresh-groceries/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// setupRepositoryTestDB 每个测试独立的内存库
func setupRepositoryTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
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
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string, role constants.Role) *models.User {
	t.Helper()
	user := &models.User{Name: email, Email: email, PasswordHash: "x", Role: role}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	return user
}

func createTestCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()
	category := &models.Category{Name: name}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	return category
}

func createTestProduct(t *testing.T, db *gorm.DB, name string, categoryID uint, price int64) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:       name,
		Price:      models.NewMoneyFromInt(price),
		Stock:      10,
		CategoryID: categoryID,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func createTestOrder(t *testing.T, db *gorm.DB, userID uint, status constants.OrderStatus, courierID *uint, createdAt time.Time) *models.Order {
	t.Helper()
	order := &models.Order{
		UserID:        userID,
		CourierID:     courierID,
		Status:        status,
		TotalPrice:    models.NewMoneyFromInt(100),
		PaymentMethod: "cash",
		Address:       "Nevsky Ave, 12",
		CreatedAt:     createdAt,
	}
	if err := db.Create(order).Error; err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	return order
}
