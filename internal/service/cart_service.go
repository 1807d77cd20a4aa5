package service

import (
	"github.com/fresh-groceries/internal/models"
	"github.com/fresh-groceries/internal/repository"
)

// CartView 购物车视图
type CartView struct {
	Items      []models.CartItem `json:"items"`
	TotalPrice models.Money      `json:"total_price"`
}

// CartService 购物车服务
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartService 创建购物车服务
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// List 获取用户购物车及合计金额
func (s *CartService) List(userID uint) (*CartView, error) {
	items, err := s.cartRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	return &CartView{
		Items:      items,
		TotalPrice: cartTotal(items),
	}, nil
}

// Add 加入购物车，同一商品累加数量；quantity 为 nil 时按 1 处理
func (s *CartService) Add(userID, productID uint, quantity *int) (*models.CartItem, error) {
	qty := 1
	if quantity != nil {
		qty = *quantity
	}
	if qty <= 0 {
		return nil, ErrInvalidCartQuantity
	}
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return s.cartRepo.AddQuantity(userID, productID, qty)
}

// Update 修改购物车项数量
func (s *CartService) Update(userID, itemID uint, quantity int) (*models.CartItem, error) {
	if quantity <= 0 {
		return nil, ErrInvalidCartQuantity
	}
	affected, err := s.cartRepo.UpdateQuantity(itemID, userID, quantity)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrCartItemNotFound
	}
	item, err := s.cartRepo.GetByIDAndUser(itemID, userID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrCartItemNotFound
	}
	return item, nil
}

// Remove 删除购物车项
func (s *CartService) Remove(userID, itemID uint) error {
	affected, err := s.cartRepo.DeleteByIDAndUser(itemID, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCartItemNotFound
	}
	return nil
}

func cartTotal(items []models.CartItem) models.Money {
	total := models.ZeroMoney()
	for _, item := range items {
		if item.Product == nil {
			continue
		}
		total = total.Add(item.Product.EffectivePrice().MulInt(item.Quantity))
	}
	return total
}
