package models

import (
	"github.com/everbuy/internal/constants"
)

// Badge 商品角标，空值表示无角标
type Badge string

// Valid 判断角标是否属于已知集合
func (b Badge) Valid() bool {
	switch string(b) {
	case "", constants.BadgeBestSeller, constants.BadgeNew, constants.BadgeSale, constants.BadgePopular, constants.BadgeGaming:
		return true
	default:
		return false
	}
}

// IsSet 是否有角标
func (b Badge) IsSet() bool {
	return b != ""
}

// Product 商品表（静态目录，运行期只读）
type Product struct {
	ID            uint    `gorm:"primarykey;autoIncrement:false" json:"id"`                    // 目录分配的 ID
	Name          string  `gorm:"type:varchar(200);not null;index" json:"name"`                // 商品名称
	Price         Money   `gorm:"type:decimal(20,2);not null;default:0" json:"price"`          // 售价
	OriginalPrice *Money  `gorm:"type:decimal(20,2)" json:"original_price,omitempty"`          // 划线价（可选，大于售价）
	Image         string  `gorm:"type:varchar(500)" json:"image"`                              // 主图
	Rating        float64 `gorm:"not null;default:0" json:"rating"`                            // 评分 0-5
	Reviews       int     `gorm:"not null;default:0" json:"reviews"`                           // 评价数
	Badge         Badge   `gorm:"type:varchar(32);not null;default:''" json:"badge,omitempty"` // 角标
	Category      string  `gorm:"type:varchar(100);not null;index" json:"category"`            // 分类名称
	SortOrder     int     `gorm:"not null;default:0;index" json:"-"`                           // 目录顺序

	Detail *ProductDetail `gorm:"foreignKey:ProductID" json:"-"` // 详情
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}

// HasDiscount 是否展示划线价
func (p Product) HasDiscount() bool {
	return p.OriginalPrice != nil && p.OriginalPrice.GreaterThan(p.Price.Decimal)
}

// ProductDetail 商品详情表
type ProductDetail struct {
	ProductID      uint        `gorm:"primarykey;autoIncrement:false" json:"product_id"` // 商品ID
	Images         StringArray `gorm:"type:json" json:"images"`                          // 图片列表
	Description    string      `gorm:"type:text" json:"description"`                     // 描述
	Features       StringArray `gorm:"type:json" json:"features"`                        // 特性
	Specifications SpecList    `gorm:"type:json" json:"specifications"`                  // 规格参数
	InStock        bool        `gorm:"not null;default:true" json:"in_stock"`            // 是否有货
}

// TableName 指定表名
func (ProductDetail) TableName() string {
	return "product_details"
}

// DefaultDetail 没有详情记录时的兜底详情
func DefaultDetail(p Product) ProductDetail {
	images := StringArray{}
	if p.Image != "" {
		images = append(images, p.Image)
	}
	return ProductDetail{
		ProductID:      p.ID,
		Images:         images,
		Features:       StringArray{},
		Specifications: SpecList{},
		InStock:        true,
	}
}
