package service

import (
	"context"
	"fmt"
	"time"

	"github.com/everbuy/internal/cache"
	"github.com/everbuy/internal/logger"
	"github.com/everbuy/internal/models"
	"github.com/everbuy/internal/repository"
)

// ProductService 商品目录服务
type ProductService struct {
	repo     repository.ProductRepository
	cacheTTL time.Duration
}

// NewProductService 创建商品服务
func NewProductService(repo repository.ProductRepository, cacheTTL time.Duration) *ProductService {
	return &ProductService{repo: repo, cacheTTL: cacheTTL}
}

// ListingResult 商品列表结果
type ListingResult struct {
	Products []models.Product `json:"products"`
	Query    ListingQuery     `json:"query"`
	Total    int              `json:"total"`
	Empty    bool             `json:"empty"`
	Reset    *ListingQuery    `json:"reset,omitempty"`
}

// ProductDetailView 商品详情视图
type ProductDetailView struct {
	models.Product
	Images         models.StringArray `json:"images"`
	Description    string             `json:"description"`
	Features       models.StringArray `json:"features"`
	Specifications models.SpecList    `json:"specifications"`
	InStock        bool               `json:"in_stock"`
	HasDiscount    bool               `json:"has_discount"`
}

// ListAll 全部商品（目录顺序）
func (s *ProductService) ListAll() ([]models.Product, error) {
	products, err := s.repo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("list catalog: %w", err)
	}
	return products, nil
}

// List 按条件筛选排序，结果走 Redis 缓存
func (s *ProductService) List(ctx context.Context, query ListingQuery) (*ListingResult, error) {
	query = query.Normalize()
	key := query.CacheKey()

	var products []models.Product
	hit := false
	if s.cacheTTL > 0 {
		found, err := cache.GetJSON(ctx, key, &products)
		if err != nil {
			logger.Warnw("listing_cache_get_failed", "key", key, "error", err)
		}
		hit = found && err == nil
	}
	if !hit {
		catalog, err := s.ListAll()
		if err != nil {
			return nil, err
		}
		products = FilterAndSort(catalog, query)
		if s.cacheTTL > 0 {
			if err := cache.SetJSON(ctx, key, products, s.cacheTTL); err != nil {
				logger.Warnw("listing_cache_set_failed", "key", key, "error", err)
			}
		}
	}
	if products == nil {
		products = []models.Product{}
	}

	result := &ListingResult{
		Products: products,
		Query:    query,
		Total:    len(products),
		Empty:    len(products) == 0,
	}
	if result.Empty {
		reset := query.Reset()
		result.Reset = &reset
	}
	return result, nil
}

// GetByID 获取商品
func (s *ProductService) GetByID(id uint) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("get product %d: %w", id, err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// GetDetail 获取商品详情；无详情记录时使用兜底详情
func (s *ProductService) GetDetail(id uint) (*ProductDetailView, error) {
	product, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	detail, err := s.repo.GetDetail(id)
	if err != nil {
		return nil, fmt.Errorf("get product detail %d: %w", id, err)
	}
	if detail == nil {
		fallback := models.DefaultDetail(*product)
		detail = &fallback
	}
	images := detail.Images
	if len(images) == 0 && product.Image != "" {
		images = models.StringArray{product.Image}
	}
	return &ProductDetailView{
		Product:        *product,
		Images:         images,
		Description:    detail.Description,
		Features:       detail.Features,
		Specifications: detail.Specifications,
		InStock:        detail.InStock,
		HasDiscount:    product.HasDiscount(),
	}, nil
}

// Featured 首页推荐商品（目录前 N 个）
func (s *ProductService) Featured(limit int) ([]models.Product, error) {
	if limit <= 0 {
		return s.ListAll()
	}
	products, err := s.repo.ListFirst(limit)
	if err != nil {
		return nil, fmt.Errorf("list featured products: %w", err)
	}
	return products, nil
}
