package service

import (
	"math"
	"time"

	"github.com/fresh-groceries/internal/constants"
	"github.com/fresh-groceries/internal/models"
	"github.com/fresh-groceries/internal/repository"
)

// CourierService 骑手服务：抢单队列、配送状态与位置上报
type CourierService struct {
	orders       *OrderService
	locationRepo repository.CourierLocationRepository
}

// NewCourierService 创建骑手服务
func NewCourierService(orders *OrderService, locationRepo repository.CourierLocationRepository) *CourierService {
	return &CourierService{
		orders:       orders,
		locationRepo: locationRepo,
	}
}

// AvailableOrders 可抢订单
func (s *CourierService) AvailableOrders(pager repository.Pagination) ([]models.Order, int64, error) {
	return s.orders.UnassignedOrders(pager)
}

// Accept 抢单
func (s *CourierService) Accept(courierID, orderID uint) (*models.Order, error) {
	return s.orders.AssignToCourier(orderID, courierID)
}

// MyOrders 骑手已接订单
func (s *CourierService) MyOrders(courierID uint, pager repository.Pagination) ([]models.Order, int64, error) {
	return s.orders.ListByCourier(courierID, pager)
}

// UpdateStatus 更新配送状态
func (s *CourierService) UpdateStatus(courierID uint, role constants.Role, orderID uint, status constants.OrderStatus) (*models.Order, error) {
	return s.orders.SetStatus(Actor{UserID: courierID, Role: role}, orderID, status)
}

// ReportLocation 上报位置，覆盖上一次记录
func (s *CourierService) ReportLocation(courierID uint, lat, lng float64) (*models.CourierLocation, error) {
	if !validCoordinate(lat, 90) || !validCoordinate(lng, 180) {
		return nil, ErrCourierLocationInvalid
	}
	location := &models.CourierLocation{
		CourierID: courierID,
		Lat:       lat,
		Lng:       lng,
		UpdatedAt: time.Now(),
	}
	if err := s.locationRepo.Upsert(location); err != nil {
		return nil, err
	}
	return location, nil
}

// GetLocation 获取骑手最新位置
func (s *CourierService) GetLocation(courierID uint) (*models.CourierLocation, error) {
	location, err := s.locationRepo.GetByCourier(courierID)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, ErrCourierLocationNotFound
	}
	return location, nil
}

func validCoordinate(value, limit float64) bool {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return false
	}
	return value >= -limit && value <= limit
}
