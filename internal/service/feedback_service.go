package service

import (
	"strings"

	"github.com/fresh-groceries/internal/constants"
	"github.com/fresh-groceries/internal/models"
	"github.com/fresh-groceries/internal/repository"
)

// FeedbackService 订单评价服务
type FeedbackService struct {
	repo      repository.FeedbackRepository
	orderRepo repository.OrderRepository
}

// NewFeedbackService 创建评价服务
func NewFeedbackService(repo repository.FeedbackRepository, orderRepo repository.OrderRepository) *FeedbackService {
	return &FeedbackService{
		repo:      repo,
		orderRepo: orderRepo,
	}
}

// SubmitFeedbackInput 提交评价参数
type SubmitFeedbackInput struct {
	UserID  uint
	OrderID uint
	Rating  int
	Comment string
}

// Submit 提交评价：仅订单本人、仅已送达、每单一次
func (s *FeedbackService) Submit(input SubmitFeedbackInput) (*models.Feedback, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, ErrFeedbackRatingInvalid
	}
	order, err := s.orderRepo.GetByID(input.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.UserID != input.UserID {
		return nil, ErrOrderForbidden
	}
	if order.Status != constants.OrderStatusDelivered {
		return nil, ErrFeedbackNotAllowed
	}
	existing, err := s.repo.GetByOrderID(order.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrFeedbackExists
	}

	feedback := &models.Feedback{
		UserID:  input.UserID,
		OrderID: order.ID,
		Rating:  input.Rating,
		Comment: strings.TrimSpace(input.Comment),
	}
	if err := s.repo.Create(feedback); err != nil {
		// 唯一索引兜底并发重复提交
		if again, getErr := s.repo.GetByOrderID(order.ID); getErr == nil && again != nil {
			return nil, ErrFeedbackExists
		}
		return nil, err
	}
	return feedback, nil
}

// GetForOrder 查看订单评价，可见范围与订单一致
func (s *FeedbackService) GetForOrder(viewer Actor, orderID uint) (*models.Feedback, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if !canViewOrder(viewer, order) {
		return nil, ErrOrderForbidden
	}
	feedback, err := s.repo.GetByOrderID(orderID)
	if err != nil {
		return nil, err
	}
	if feedback == nil {
		return nil, ErrFeedbackNotFound
	}
	return feedback, nil
}
