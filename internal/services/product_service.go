// internal/services/product_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/atjshop/storefront/internal/models"
	"github.com/atjshop/storefront/internal/store"
	"github.com/atjshop/storefront/internal/utils"
)

// ErrPriceBelowDiscount rejects catalog entries whose pre-discount price is
// lower than the selling price.
var ErrPriceBelowDiscount = errors.New("original price must not be lower than price")

type ProductService struct {
	store store.Store
}

func NewProductService(st store.Store) *ProductService {
	return &ProductService{store: st}
}

type CreateProductRequest struct {
	Name          string   `json:"name" validate:"required,min=3,max=255"`
	Price         float64  `json:"price" validate:"required,gte=0"`
	OriginalPrice *float64 `json:"original_price,omitempty" validate:"omitempty,gte=0"`
	Images        []string `json:"images" validate:"required,min=1,dive,url"`
	Colors        []string `json:"colors,omitempty" validate:"omitempty,dive,color_token"`
	Brand         string   `json:"brand" validate:"required"`
	Category      string   `json:"category" validate:"required"`
	Tags          []string `json:"tags,omitempty"`
	Featured      bool     `json:"featured"`
	InStock       bool     `json:"in_stock"`
}

type UpdateProductRequest struct {
	Name          *string  `json:"name,omitempty" validate:"omitempty,min=3,max=255"`
	Price         *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	OriginalPrice *float64 `json:"original_price,omitempty" validate:"omitempty,gte=0"`
	Images        []string `json:"images,omitempty" validate:"omitempty,min=1,dive,url"`
	Colors        []string `json:"colors,omitempty" validate:"omitempty,dive,color_token"`
	Brand         *string  `json:"brand,omitempty"`
	Category      *string  `json:"category,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	Featured      *bool    `json:"featured,omitempty"`
	InStock       *bool    `json:"in_stock,omitempty"`
}

type ProductSearchParams struct {
	utils.PaginationParams
	Filter ProductFilter
}

// SearchProducts lists the catalog through the filter engine, with optional
// free-text search over name and brand, sorting, and pagination.
func (s *ProductService) SearchProducts(ctx context.Context, params ProductSearchParams) ([]models.Product, int64, error) {
	products, err := s.store.Products().List(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch products: %w", err)
	}

	products = FilterProducts(products, params.Filter)

	if params.Search != "" {
		term := strings.ToLower(params.Search)
		matched := products[:0]
		for _, p := range products {
			if strings.Contains(strings.ToLower(p.Name), term) ||
				strings.Contains(strings.ToLower(p.Brand), term) {
				matched = append(matched, p)
			}
		}
		products = matched
	}

	sortProducts(products, params.Sort, params.Order)

	total := int64(len(products))
	return utils.Paginate(products, params.PaginationParams), total, nil
}

// sortProducts leaves input order untouched unless a sort field is given.
func sortProducts(products []models.Product, field, order string) {
	var less func(a, b models.Product) bool
	switch field {
	case "price":
		less = func(a, b models.Product) bool { return a.Price < b.Price }
	case "rating":
		less = func(a, b models.Product) bool { return a.Rating < b.Rating }
	case "name":
		less = func(a, b models.Product) bool { return a.Name < b.Name }
	default:
		return
	}
	sort.SliceStable(products, func(i, j int) bool {
		if order == "desc" {
			return less(products[j], products[i])
		}
		return less(products[i], products[j])
	})
}

func (s *ProductService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	return s.store.Products().Get(ctx, id)
}

func (s *ProductService) GetProductsByCategory(ctx context.Context, category string) ([]models.Product, error) {
	products, err := s.store.Products().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	return FilterProducts(products, ProductFilter{Category: category}), nil
}

func (s *ProductService) GetFeaturedProducts(ctx context.Context) ([]models.Product, error) {
	products, err := s.store.Products().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	featured := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.Featured {
			featured = append(featured, p)
		}
	}
	return featured, nil
}

// Categories returns the distinct category names in catalog order.
func (s *ProductService) Categories(ctx context.Context) ([]string, error) {
	products, err := s.store.Products().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	seen := make(map[string]bool)
	var categories []string
	for _, p := range products {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	return categories, nil
}

func (s *ProductService) CreateProduct(ctx context.Context, req *CreateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.OriginalPrice != nil && *req.OriginalPrice < req.Price {
		return nil, ErrPriceBelowDiscount
	}

	product := &models.Product{
		ID:            uuid.NewString(),
		Name:          req.Name,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Images:        req.Images,
		Colors:        req.Colors,
		Brand:         req.Brand,
		Category:      req.Category,
		Tags:          req.Tags,
		Featured:      req.Featured,
		InStock:       req.InStock,
	}

	if err := s.store.Products().Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return product, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, id string, req *UpdateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	product, err := s.store.Products().Get(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *product
	if req.Name != nil {
		updated.Name = *req.Name
	}
	if req.Price != nil {
		updated.Price = *req.Price
	}
	if req.OriginalPrice != nil {
		updated.OriginalPrice = req.OriginalPrice
	}
	if req.Images != nil {
		updated.Images = req.Images
	}
	if req.Colors != nil {
		updated.Colors = req.Colors
	}
	if req.Brand != nil {
		updated.Brand = *req.Brand
	}
	if req.Category != nil {
		updated.Category = *req.Category
	}
	if req.Tags != nil {
		updated.Tags = req.Tags
	}
	if req.Featured != nil {
		updated.Featured = *req.Featured
	}
	if req.InStock != nil {
		updated.InStock = *req.InStock
	}

	if updated.OriginalPrice != nil && *updated.OriginalPrice < updated.Price {
		return nil, ErrPriceBelowDiscount
	}

	if err := s.store.Products().Update(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	return s.store.Products().Delete(ctx, id)
}
