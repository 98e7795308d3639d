package repository

import (
	"errors"

	"github.com/everbuy/internal/models"

	"gorm.io/gorm"
)

// ProductRepository 商品目录数据访问接口（只读）
type ProductRepository interface {
	ListAll() ([]models.Product, error)
	ListFirst(limit int) ([]models.Product, error)
	GetByID(id uint) (*models.Product, error)
	GetDetail(productID uint) (*models.ProductDetail, error)
	CountByCategory() (map[string]int64, error)
}

// GormProductRepository GORM 实现
type GormProductRepository struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓库
func NewProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func catalogOrder(query *gorm.DB) *gorm.DB {
	return query.Order("sort_order ASC, id ASC")
}

// ListAll 按目录顺序返回全部商品
func (r *GormProductRepository) ListAll() ([]models.Product, error) {
	var products []models.Product
	if err := catalogOrder(r.db.Model(&models.Product{})).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// ListFirst 按目录顺序返回前 limit 个商品
func (r *GormProductRepository) ListFirst(limit int) ([]models.Product, error) {
	var products []models.Product
	query := catalogOrder(r.db.Model(&models.Product{}))
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// GetByID 根据 ID 获取商品，不存在返回 nil
func (r *GormProductRepository) GetByID(id uint) (*models.Product, error) {
	if id == 0 {
		return nil, nil
	}
	var product models.Product
	if err := r.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// GetDetail 获取商品详情，不存在返回 nil
func (r *GormProductRepository) GetDetail(productID uint) (*models.ProductDetail, error) {
	var detail models.ProductDetail
	if err := r.db.Where("product_id = ?", productID).First(&detail).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &detail, nil
}

type categoryCountRow struct {
	Category string
	Total    int64
}

// CountByCategory 统计各分类实际商品数
func (r *GormProductRepository) CountByCategory() (map[string]int64, error) {
	var rows []categoryCountRow
	if err := r.db.Model(&models.Product{}).
		Select("category, COUNT(*) AS total").
		Group("category").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Category] = row.Total
	}
	return counts, nil
}
