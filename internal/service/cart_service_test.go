package service

import (
	"errors"
	"testing"
)

func TestCartAddAccumulatesQuantity(t *testing.T) {
	env := newTestEnv(t)
	product := env.createProduct(t, "Sourdough Bread", 150, nil)

	first, err := env.cart.Add(env.customer.ID, product.ID, nil)
	if err != nil {
		t.Fatalf("add without quantity failed: %v", err)
	}
	if first.Quantity != 1 {
		t.Fatalf("expected default quantity 1, got %d", first.Quantity)
	}
	second := env.addToCart(t, env.customer.ID, product.ID, 3)
	if second.ID != first.ID || second.Quantity != 4 {
		t.Fatalf("expected merged row with quantity 4, got id=%d qty=%d", second.ID, second.Quantity)
	}
	if second.Product == nil || second.Product.ID != product.ID {
		t.Fatalf("expected product detail on cart item")
	}

	view, err := env.cart.List(env.customer.ID)
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(view.Items) != 1 || view.TotalPrice.String() != "600.00" {
		t.Fatalf("unexpected cart view: items=%d total=%s", len(view.Items), view.TotalPrice.String())
	}
}

func TestCartAddRejectsMissingProductAndBadQuantity(t *testing.T) {
	env := newTestEnv(t)
	qty := 1
	if _, err := env.cart.Add(env.customer.ID, 9999, &qty); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
	product := env.createProduct(t, "Bananas", 60, nil)
	zero := 0
	if _, err := env.cart.Add(env.customer.ID, product.ID, &zero); !errors.Is(err, ErrInvalidCartQuantity) {
		t.Fatalf("expected ErrInvalidCartQuantity, got %v", err)
	}
}

func TestCartUpdateRejectsNonPositiveQuantity(t *testing.T) {
	env := newTestEnv(t)
	product := env.createProduct(t, "Bananas", 60, nil)
	item := env.addToCart(t, env.customer.ID, product.ID, 2)

	for _, qty := range []int{0, -3} {
		if _, err := env.cart.Update(env.customer.ID, item.ID, qty); !errors.Is(err, ErrInvalidCartQuantity) {
			t.Fatalf("qty %d: expected ErrInvalidCartQuantity, got %v", qty, err)
		}
	}
	current, err := env.carts.GetByIDAndUser(item.ID, env.customer.ID)
	if err != nil {
		t.Fatalf("get cart item failed: %v", err)
	}
	if current == nil || current.Quantity != 2 {
		t.Fatalf("expected quantity unchanged at 2, got %+v", current)
	}

	updated, err := env.cart.Update(env.customer.ID, item.ID, 5)
	if err != nil {
		t.Fatalf("update cart failed: %v", err)
	}
	if updated.Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", updated.Quantity)
	}
}

func TestCartItemsScopedToOwner(t *testing.T) {
	env := newTestEnv(t)
	product := env.createProduct(t, "Bananas", 60, nil)
	item := env.addToCart(t, env.customer.ID, product.ID, 1)

	if _, err := env.cart.Update(env.courierA.ID, item.ID, 3); !errors.Is(err, ErrCartItemNotFound) {
		t.Fatalf("expected ErrCartItemNotFound on update, got %v", err)
	}
	if err := env.cart.Remove(env.courierA.ID, item.ID); !errors.Is(err, ErrCartItemNotFound) {
		t.Fatalf("expected ErrCartItemNotFound on remove, got %v", err)
	}
	if err := env.cart.Remove(env.customer.ID, item.ID); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if err := env.cart.Remove(env.customer.ID, item.ID); !errors.Is(err, ErrCartItemNotFound) {
		t.Fatalf("expected ErrCartItemNotFound on second remove, got %v", err)
	}
}
