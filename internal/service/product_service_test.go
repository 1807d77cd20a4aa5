package service

import (
	"errors"
	"testing"

	"github.com/fresh-groceries/internal/constants"

	"github.com/shopspring/decimal"
)

func TestProductCreateAssignsFarmer(t *testing.T) {
	env := newTestEnv(t)
	otherFarmer := uint(4242)
	product, err := env.product.Create(Actor{UserID: env.farmer.ID, Role: constants.RoleFarmer}, CreateProductInput{
		Name:       "Heirloom Tomatoes",
		Price:      decimal.RequireFromString("120"),
		CategoryID: env.category.ID,
		FarmerID:   &otherFarmer,
	})
	if err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	if product.FarmerID == nil || *product.FarmerID != env.farmer.ID {
		t.Fatalf("expected farmer_id %d, got %v", env.farmer.ID, product.FarmerID)
	}
	if product.Category == nil || product.Category.Name != "Vegetables" {
		t.Fatalf("expected category preloaded")
	}

	adminMade, err := env.product.Create(Actor{UserID: 1, Role: constants.RoleAdmin}, CreateProductInput{
		Name:       "Carrots",
		Price:      decimal.RequireFromString("30"),
		CategoryID: env.category.ID,
		FarmerID:   &otherFarmer,
	})
	if err != nil {
		t.Fatalf("admin create failed: %v", err)
	}
	if adminMade.FarmerID == nil || *adminMade.FarmerID != otherFarmer {
		t.Fatalf("expected admin-provided farmer id kept")
	}
}

func TestProductCreateValidation(t *testing.T) {
	env := newTestEnv(t)
	admin := Actor{UserID: 1, Role: constants.RoleAdmin}
	discount := decimal.RequireFromString("100")

	cases := []struct {
		name  string
		input CreateProductInput
		want  error
	}{
		{"zero price", CreateProductInput{Name: "A", Price: decimal.Zero, CategoryID: env.category.ID}, ErrProductPriceInvalid},
		{"discount not below price", CreateProductInput{Name: "A", Price: decimal.RequireFromString("100"), DiscountPrice: &discount, CategoryID: env.category.ID}, ErrProductPriceInvalid},
		{"missing category", CreateProductInput{Name: "A", Price: decimal.RequireFromString("10"), CategoryID: 9999}, ErrCategoryNotFound},
		{"negative stock", CreateProductInput{Name: "A", Price: decimal.RequireFromString("10"), Stock: -1, CategoryID: env.category.ID}, ErrProductStockInvalid},
		{"blank name", CreateProductInput{Name: "  ", Price: decimal.RequireFromString("10"), CategoryID: env.category.ID}, ErrNameRequired},
	}
	for _, tc := range cases {
		if _, err := env.product.Create(admin, tc.input); !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestProductUpdatePatch(t *testing.T) {
	env := newTestEnv(t)
	product := env.createProduct(t, "Organic Milk", 95, int64Ptr(40))

	name := "Farm Milk"
	updated, err := env.product.Update(product.ID, UpdateProductInput{Name: &name})
	if err != nil {
		t.Fatalf("update name failed: %v", err)
	}
	if updated.Name != name || updated.Price.String() != "95.00" || updated.DiscountPrice == nil {
		t.Fatalf("unexpected patched product: %+v", updated)
	}

	lower := decimal.RequireFromString("30")
	if _, err := env.product.Update(product.ID, UpdateProductInput{Price: &lower}); !errors.Is(err, ErrProductPriceInvalid) {
		t.Fatalf("expected discount above new price rejected, got %v", err)
	}
	cleared, err := env.product.Update(product.ID, UpdateProductInput{ClearDiscount: true})
	if err != nil {
		t.Fatalf("clear discount failed: %v", err)
	}
	if cleared.DiscountPrice != nil || cleared.EffectivePrice().String() != "95.00" {
		t.Fatalf("expected discount cleared")
	}
	if _, err := env.product.Update(9999, UpdateProductInput{Name: &name}); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductDeleteRejectsReferenced(t *testing.T) {
	env := newTestEnv(t)
	inCart := env.createProduct(t, "Bananas", 60, nil)
	free := env.createProduct(t, "Apples", 70, nil)
	env.addToCart(t, env.customer.ID, inCart.ID, 1)

	if err := env.product.Delete(inCart.ID); !errors.Is(err, ErrProductInUse) {
		t.Fatalf("expected ErrProductInUse, got %v", err)
	}
	if err := env.product.Delete(free.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := env.product.Get(free.ID); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected deleted product hidden, got %v", err)
	}
}
