//go:build integration
// +build integration

package repository

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/fresh-groceries/internal/constants"
	"github.com/fresh-groceries/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// setupPostgresIntegrationDB 初始化 PostgreSQL 集成测试数据库。
func setupPostgresIntegrationDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := strings.TrimSpace(os.Getenv("TEST_POSTGRES_DSN"))
	if dsn == "" {
		t.Skip("skip postgres integration test: TEST_POSTGRES_DSN is empty")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open postgres failed: %v", err)
	}

	all := models.AllModels()
	_ = db.Migrator().DropTable(all...)
	if err := db.AutoMigrate(all...); err != nil {
		t.Fatalf("migrate postgres models failed: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Migrator().DropTable(all...)
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func TestPostgresProductSearchIsCaseInsensitive(t *testing.T) {
	db := setupPostgresIntegrationDB(t)
	repo := NewProductRepository(db)
	category := createTestCategory(t, db, "Dairy")
	createTestProduct(t, db, "Organic Milk", category.ID, 95)

	products, total, err := repo.List(ProductListFilter{Search: "MILK"})
	if err != nil {
		t.Fatalf("search products failed: %v", err)
	}
	if total != 1 || len(products) != 1 {
		t.Fatalf("expected ILIKE to match, got total=%d", total)
	}
}

func TestPostgresClaimUnassignedConcurrent(t *testing.T) {
	db := setupPostgresIntegrationDB(t)
	repo := NewOrderRepository(db)
	user := createTestUser(t, db, "anna@example.com", constants.RoleUser)
	order := createTestOrder(t, db, user.ID, constants.OrderStatusCreated, nil, time.Now())

	const couriers = 8
	results := make(chan bool, couriers)
	for i := 0; i < couriers; i++ {
		courier := createTestUser(t, db, "courier"+string(rune('a'+i))+"@example.com", constants.RoleCourier)
		go func(courierID uint) {
			ok, err := repo.ClaimUnassigned(order.ID, courierID)
			if err != nil {
				t.Errorf("claim failed: %v", err)
			}
			results <- ok
		}(courier.ID)
	}

	winners := 0
	for i := 0; i < couriers; i++ {
		if <-results {
			winners++
		}
	}
	if winners != 1 {
		t.Fatalf("expected exactly one winner, got %d", winners)
	}
}
