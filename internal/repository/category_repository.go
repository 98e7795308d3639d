package repository

import (
	"errors"

	"github.com/everbuy/internal/models"

	"gorm.io/gorm"
)

// CategoryRepository 分类数据访问接口（只读）
type CategoryRepository interface {
	List() ([]models.Category, error)
	ListFeatured() ([]models.Category, error)
	GetByName(name string) (*models.Category, error)
}

// GormCategoryRepository GORM 实现
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository 创建分类仓库
func NewCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// List 分类列表
func (r *GormCategoryRepository) List() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Order("sort_order ASC, id ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// ListFeatured 首页展示分类
func (r *GormCategoryRepository) ListFeatured() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Where("featured = ?", true).Order("sort_order ASC, id ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// GetByName 根据名称获取分类，不存在返回 nil
func (r *GormCategoryRepository) GetByName(name string) (*models.Category, error) {
	var category models.Category
	if err := r.db.Where("name = ?", name).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}
