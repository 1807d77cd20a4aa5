package repository

import (
	"testing"

	"github.com/fresh-groceries/internal/constants"
)

func TestProductListFilters(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewProductRepository(db)
	vegetables := createTestCategory(t, db, "Vegetables")
	dairy := createTestCategory(t, db, "Dairy")
	farmer := createTestUser(t, db, "farmer@example.com", constants.RoleFarmer)

	potatoes := createTestProduct(t, db, "Russet Potatoes", vegetables.ID, 80)
	createTestProduct(t, db, "Sweet Potatoes", vegetables.ID, 120)
	createTestProduct(t, db, "Organic Milk", dairy.ID, 95)
	if err := db.Model(potatoes).Update("farmer_id", farmer.ID).Error; err != nil {
		t.Fatalf("assign farmer failed: %v", err)
	}

	products, total, err := repo.List(ProductListFilter{Search: "potato"})
	if err != nil {
		t.Fatalf("search products failed: %v", err)
	}
	if total != 2 || len(products) != 2 {
		t.Fatalf("expected 2 potato products, got total=%d len=%d", total, len(products))
	}

	products, total, err = repo.List(ProductListFilter{CategoryID: dairy.ID})
	if err != nil {
		t.Fatalf("filter by category failed: %v", err)
	}
	if total != 1 || products[0].Name != "Organic Milk" {
		t.Fatalf("unexpected dairy products: %+v", products)
	}
	if products[0].Category == nil || products[0].Category.Name != "Dairy" {
		t.Fatalf("expected category preloaded")
	}

	products, _, err = repo.List(ProductListFilter{FarmerID: farmer.ID})
	if err != nil {
		t.Fatalf("filter by farmer failed: %v", err)
	}
	if len(products) != 1 || products[0].ID != potatoes.ID {
		t.Fatalf("unexpected farmer products: %+v", products)
	}

	products, total, err = repo.List(ProductListFilter{Page: 2, PageSize: 2})
	if err != nil {
		t.Fatalf("paginate products failed: %v", err)
	}
	if total != 3 || len(products) != 1 {
		t.Fatalf("expected last page with 1 product, got total=%d len=%d", total, len(products))
	}

	// skip 不是 limit 的整数倍时按原始偏移量取数
	products, total, err = repo.List(ProductListFilter{Page: 1, PageSize: 2, Offset: 1})
	if err != nil {
		t.Fatalf("offset products failed: %v", err)
	}
	if total != 3 || len(products) != 2 || products[0].Name != "Sweet Potatoes" {
		t.Fatalf("expected rows from offset 1, got total=%d %+v", total, products)
	}
}

func TestProductSearchEscapesWildcards(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewProductRepository(db)
	category := createTestCategory(t, db, "Fruits")
	createTestProduct(t, db, "Bananas", category.ID, 60)

	products, total, err := repo.List(ProductListFilter{Search: "%"})
	if err != nil {
		t.Fatalf("search products failed: %v", err)
	}
	if total != 0 || len(products) != 0 {
		t.Fatalf("expected literal %% search to match nothing, got %d", total)
	}
}

func TestProductGetByIDMissing(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewProductRepository(db)
	product, err := repo.GetByID(404)
	if err != nil {
		t.Fatalf("get product failed: %v", err)
	}
	if product != nil {
		t.Fatalf("expected nil product")
	}
}
