package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/fresh-groceries/internal/constants"
	"github.com/fresh-groceries/internal/models"
	"github.com/fresh-groceries/internal/repository"

	"github.com/shopspring/decimal"
)

// ProductService 商品业务服务
type ProductService struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
	supplierRepo repository.SupplierRepository
	cartRepo     repository.CartRepository
	orderRepo    repository.OrderRepository
}

// NewProductService 创建商品服务
func NewProductService(
	repo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	supplierRepo repository.SupplierRepository,
	cartRepo repository.CartRepository,
	orderRepo repository.OrderRepository,
) *ProductService {
	return &ProductService{
		repo:         repo,
		categoryRepo: categoryRepo,
		supplierRepo: supplierRepo,
		cartRepo:     cartRepo,
		orderRepo:    orderRepo,
	}
}

// CreateProductInput 创建商品输入
type CreateProductInput struct {
	Name           string
	Price          decimal.Decimal
	DiscountPrice  *decimal.Decimal
	Stock          int
	ExpirationDate *time.Time
	CategoryID     uint
	SupplierID     *uint
	FarmerID       *uint
	ImageURL       string
}

// UpdateProductInput 商品局部更新（nil 表示不修改）
type UpdateProductInput struct {
	Name           *string
	Price          *decimal.Decimal
	DiscountPrice  *decimal.Decimal
	ClearDiscount  bool
	Stock          *int
	ExpirationDate *time.Time
	CategoryID     *uint
	SupplierID     *uint
	FarmerID       *uint
	ImageURL       *string
}

// List 商品列表
func (s *ProductService) List(filter repository.ProductListFilter) ([]models.Product, int64, error) {
	filter.Search = strings.TrimSpace(filter.Search)
	products, total, err := s.repo.List(filter)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrProductFetchFailed, err)
	}
	return products, total, nil
}

// Get 商品详情
func (s *ProductService) Get(id uint) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProductFetchFailed, err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// Create 创建商品；农户创建时归属强制为本人
func (s *ProductService) Create(actor Actor, input CreateProductInput) (*models.Product, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if err := validateProductPrice(input.Price, input.DiscountPrice); err != nil {
		return nil, err
	}
	if input.Stock < 0 {
		return nil, ErrProductStockInvalid
	}
	if err := s.ensureCategory(input.CategoryID); err != nil {
		return nil, err
	}
	if err := s.ensureSupplier(input.SupplierID); err != nil {
		return nil, err
	}

	farmerID := input.FarmerID
	if actor.Role == constants.RoleFarmer {
		id := actor.UserID
		farmerID = &id
	}

	product := &models.Product{
		Name:           name,
		Price:          models.NewMoneyFromDecimal(input.Price),
		DiscountPrice:  toMoneyPtr(input.DiscountPrice),
		Stock:          input.Stock,
		ExpirationDate: input.ExpirationDate,
		CategoryID:     input.CategoryID,
		SupplierID:     input.SupplierID,
		FarmerID:       farmerID,
		ImageURL:       strings.TrimSpace(input.ImageURL),
	}
	if err := s.repo.Create(product); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProductCreateFailed, err)
	}
	return s.Get(product.ID)
}

// Update 局部更新商品
func (s *ProductService) Update(id uint, input UpdateProductInput) (*models.Product, error) {
	product, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, ErrNameRequired
		}
		product.Name = name
	}
	price := product.Price.Decimal
	if input.Price != nil {
		price = *input.Price
	}
	var discount *decimal.Decimal
	if product.DiscountPrice != nil {
		current := product.DiscountPrice.Decimal
		discount = &current
	}
	if input.ClearDiscount {
		discount = nil
	} else if input.DiscountPrice != nil {
		discount = input.DiscountPrice
	}
	if err := validateProductPrice(price, discount); err != nil {
		return nil, err
	}
	product.Price = models.NewMoneyFromDecimal(price)
	product.DiscountPrice = toMoneyPtr(discount)

	if input.Stock != nil {
		if *input.Stock < 0 {
			return nil, ErrProductStockInvalid
		}
		product.Stock = *input.Stock
	}
	if input.ExpirationDate != nil {
		product.ExpirationDate = input.ExpirationDate
	}
	if input.CategoryID != nil {
		if err := s.ensureCategory(*input.CategoryID); err != nil {
			return nil, err
		}
		product.CategoryID = *input.CategoryID
	}
	if input.SupplierID != nil {
		if err := s.ensureSupplier(input.SupplierID); err != nil {
			return nil, err
		}
		product.SupplierID = input.SupplierID
	}
	if input.FarmerID != nil {
		product.FarmerID = input.FarmerID
	}
	if input.ImageURL != nil {
		product.ImageURL = strings.TrimSpace(*input.ImageURL)
	}

	if err := s.repo.Update(product); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProductUpdateFailed, err)
	}
	return s.Get(product.ID)
}

// Delete 删除商品；仍被购物车或订单引用时拒绝
func (s *ProductService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	cartRefs, err := s.cartRepo.CountByProduct(id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrProductDeleteFailed, err)
	}
	orderRefs, err := s.orderRepo.CountItemsByProduct(id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrProductDeleteFailed, err)
	}
	if cartRefs > 0 || orderRefs > 0 {
		return ErrProductInUse
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("%w: %v", ErrProductDeleteFailed, err)
	}
	return nil
}

func (s *ProductService) ensureCategory(categoryID uint) error {
	if categoryID == 0 {
		return ErrCategoryNotFound
	}
	category, err := s.categoryRepo.GetByID(categoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrCategoryNotFound
	}
	return nil
}

func (s *ProductService) ensureSupplier(supplierID *uint) error {
	if supplierID == nil {
		return nil
	}
	supplier, err := s.supplierRepo.GetByID(*supplierID)
	if err != nil {
		return err
	}
	if supplier == nil {
		return ErrSupplierNotFound
	}
	return nil
}

// validateProductPrice 标价须大于 0，折扣价须在 [0, 标价) 之间
func validateProductPrice(price decimal.Decimal, discount *decimal.Decimal) error {
	if !price.GreaterThan(decimal.Zero) {
		return ErrProductPriceInvalid
	}
	if discount != nil {
		if discount.LessThan(decimal.Zero) || !discount.LessThan(price) {
			return ErrProductPriceInvalid
		}
	}
	return nil
}

func toMoneyPtr(amount *decimal.Decimal) *models.Money {
	if amount == nil {
		return nil
	}
	money := models.NewMoneyFromDecimal(*amount)
	return &money
}
