package service

import (
	"strings"

	"github.com/fresh-groceries/internal/models"
	"github.com/fresh-groceries/internal/repository"
)

// SupplierService 供应商服务
type SupplierService struct {
	repo repository.SupplierRepository
}

// NewSupplierService 创建供应商服务
func NewSupplierService(repo repository.SupplierRepository) *SupplierService {
	return &SupplierService{repo: repo}
}

// List 获取供应商列表
func (s *SupplierService) List() ([]models.Supplier, error) {
	return s.repo.List()
}

// Create 创建供应商
func (s *SupplierService) Create(name string) (*models.Supplier, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	supplier := &models.Supplier{Name: name}
	if err := s.repo.Create(supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}
