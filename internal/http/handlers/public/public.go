package public

import (
	"strings"
	"time"

	handlershared "github.com/fresh-groceries/internal/http/handlers/shared"
	"github.com/fresh-groceries/internal/http/response"
	"github.com/fresh-groceries/internal/repository"
	"github.com/fresh-groceries/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// CreateProductRequest 创建商品请求
type CreateProductRequest struct {
	Name           string           `json:"name" binding:"required"`
	Price          decimal.Decimal  `json:"price"`
	DiscountPrice  *decimal.Decimal `json:"discount_price"`
	Stock          int              `json:"stock"`
	ExpirationDate *time.Time       `json:"expiration_date"`
	CategoryID     uint             `json:"category_id" binding:"required"`
	SupplierID     *uint            `json:"supplier_id"`
	FarmerID       *uint            `json:"farmer_id"`
	ImageURL       string           `json:"image_url"`
}

// UpdateProductRequest 商品局部更新请求
type UpdateProductRequest struct {
	Name           *string          `json:"name"`
	Price          *decimal.Decimal `json:"price"`
	DiscountPrice  *decimal.Decimal `json:"discount_price"`
	ClearDiscount  bool             `json:"clear_discount"`
	Stock          *int             `json:"stock"`
	ExpirationDate *time.Time       `json:"expiration_date"`
	CategoryID     *uint            `json:"category_id"`
	SupplierID     *uint            `json:"supplier_id"`
	FarmerID       *uint            `json:"farmer_id"`
	ImageURL       *string          `json:"image_url"`
}

// NamedEntityRequest 分类、供应商创建请求
type NamedEntityRequest struct {
	Name string `json:"name" binding:"required"`
}

// GetProducts 商品列表
func (h *Handler) GetProducts(c *gin.Context) {
	pager := handlershared.ParsePagination(c)
	categoryID, ok := handlershared.ParseOptionalUintQuery(c, "category_id")
	if !ok {
		return
	}

	products, total, err := h.ProductService.List(repository.ProductListFilter{
		Page:       pager.Page,
		PageSize:   pager.PageSize,
		Offset:     pager.Offset,
		CategoryID: categoryID,
		Search:     strings.TrimSpace(c.Query("search")),
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}
	response.SuccessWithPage(c, products, response.BuildPagination(pager.Page, pager.PageSize, total))
}

// GetProduct 商品详情
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	product, err := h.ProductService.Get(id)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	response.Success(c, product)
}

// CreateProduct 创建商品（管理员或农户）
func (h *Handler) CreateProduct(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	product, err := h.ProductService.Create(actor, service.CreateProductInput{
		Name:           req.Name,
		Price:          req.Price,
		DiscountPrice:  req.DiscountPrice,
		Stock:          req.Stock,
		ExpirationDate: req.ExpirationDate,
		CategoryID:     req.CategoryID,
		SupplierID:     req.SupplierID,
		FarmerID:       req.FarmerID,
		ImageURL:       req.ImageURL,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}
	handlershared.RequestLog(c).Infow("product_created", "product_id", product.ID, "actor_id", actor.UserID, "role", actor.Role)
	response.Success(c, product)
}

// UpdateProduct 更新商品
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	product, err := h.ProductService.Update(id, service.UpdateProductInput{
		Name:           req.Name,
		Price:          req.Price,
		DiscountPrice:  req.DiscountPrice,
		ClearDiscount:  req.ClearDiscount,
		Stock:          req.Stock,
		ExpirationDate: req.ExpirationDate,
		CategoryID:     req.CategoryID,
		SupplierID:     req.SupplierID,
		FarmerID:       req.FarmerID,
		ImageURL:       req.ImageURL,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}
	response.Success(c, product)
}

// DeleteProduct 删除商品
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.ProductService.Delete(id); err != nil {
		respondDomainError(c, err)
		return
	}
	response.Success(c, nil)
}

// GetCategories 分类列表
func (h *Handler) GetCategories(c *gin.Context) {
	categories, err := h.CategoryService.List()
	if err != nil {
		respondDomainError(c, err)
		return
	}
	response.Success(c, categories)
}

// CreateCategory 创建分类
func (h *Handler) CreateCategory(c *gin.Context) {
	var req NamedEntityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	category, err := h.CategoryService.Create(req.Name)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	response.Success(c, category)
}

// GetSuppliers 供应商列表
func (h *Handler) GetSuppliers(c *gin.Context) {
	suppliers, err := h.SupplierService.List()
	if err != nil {
		respondDomainError(c, err)
		return
	}
	response.Success(c, suppliers)
}

// CreateSupplier 创建供应商
func (h *Handler) CreateSupplier(c *gin.Context) {
	var req NamedEntityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	supplier, err := h.SupplierService.Create(req.Name)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	response.Success(c, supplier)
}
