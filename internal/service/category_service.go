package service

import (
	"fmt"

	"github.com/everbuy/internal/models"
	"github.com/everbuy/internal/repository"
)

// CategoryService 分类业务服务
type CategoryService struct {
	repo        repository.CategoryRepository
	productRepo repository.ProductRepository
}

// NewCategoryService 创建分类服务
func NewCategoryService(repo repository.CategoryRepository, productRepo repository.ProductRepository) *CategoryService {
	return &CategoryService{repo: repo, productRepo: productRepo}
}

// CategoryView 分类视图，附带目录内实际商品数
type CategoryView struct {
	models.Category
	ProductCount int64 `json:"product_count"`
}

// List 获取分类列表
func (s *CategoryService) List() ([]models.Category, error) {
	categories, err := s.repo.List()
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// Featured 首页分类
func (s *CategoryService) Featured() ([]models.Category, error) {
	categories, err := s.repo.ListFeatured()
	if err != nil {
		return nil, fmt.Errorf("list featured categories: %w", err)
	}
	return categories, nil
}

// Get 按名称获取分类
func (s *CategoryService) Get(name string) (*models.Category, error) {
	category, err := s.repo.GetByName(name)
	if err != nil {
		return nil, fmt.Errorf("get category %q: %w", name, err)
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}

// ProductCounts 各分类实际商品数
func (s *CategoryService) ProductCounts() (map[string]int64, error) {
	counts, err := s.productRepo.CountByCategory()
	if err != nil {
		return nil, fmt.Errorf("count products by category: %w", err)
	}
	return counts, nil
}

// ListWithCounts 分类列表 + 实际商品数
func (s *CategoryService) ListWithCounts(featuredOnly bool) ([]CategoryView, error) {
	var (
		categories []models.Category
		err        error
	)
	if featuredOnly {
		categories, err = s.Featured()
	} else {
		categories, err = s.List()
	}
	if err != nil {
		return nil, err
	}
	counts, err := s.ProductCounts()
	if err != nil {
		return nil, err
	}
	views := make([]CategoryView, 0, len(categories))
	for _, category := range categories {
		views = append(views, CategoryView{Category: category, ProductCount: counts[category.Name]})
	}
	return views, nil
}
