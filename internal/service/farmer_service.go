package service

import (
	"github.com/fresh-groceries/internal/constants"
	"github.com/fresh-groceries/internal/models"
	"github.com/fresh-groceries/internal/repository"
)

// FarmerService 农户服务
type FarmerService struct {
	orders   *OrderService
	products *ProductService
}

// NewFarmerService 创建农户服务
func NewFarmerService(orders *OrderService, products *ProductService) *FarmerService {
	return &FarmerService{
		orders:   orders,
		products: products,
	}
}

// PendingOrders 待备货订单（created/accepted/preparing）
func (s *FarmerService) PendingOrders(pager repository.Pagination) ([]models.Order, int64, error) {
	return s.orders.ListFarmerQueue(pager)
}

// MyProducts 农户自己的商品
func (s *FarmerService) MyProducts(farmerID uint, pager repository.Pagination) ([]models.Product, int64, error) {
	return s.products.List(repository.ProductListFilter{
		Page:     pager.Page,
		PageSize: pager.PageSize,
		Offset:   pager.Offset,
		FarmerID: farmerID,
	})
}

// Prepare 开始备货
func (s *FarmerService) Prepare(farmerID uint, role constants.Role, orderID uint) (*models.Order, error) {
	return s.orders.Prepare(Actor{UserID: farmerID, Role: role}, orderID)
}
