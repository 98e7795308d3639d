package models

// Category 分类表
type Category struct {
	ID            uint        `gorm:"primarykey" json:"id"`                               // 主键
	Name          string      `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"` // 分类名称（与商品 Category 对应）
	Image         string      `gorm:"type:varchar(500)" json:"image"`                     // 分类图片
	Count         int         `gorm:"not null;default:0" json:"count"`                    // 展示用商品数
	Description   string      `gorm:"type:varchar(500)" json:"description"`               // 描述
	Subcategories StringArray `gorm:"type:json" json:"subcategories"`                     // 子分类
	Featured      bool        `gorm:"not null;default:false" json:"featured"`             // 首页展示
	SortOrder     int         `gorm:"default:0;index" json:"-"`                           // 排序权重
}

// TableName 指定表名
func (Category) TableName() string {
	return "categories"
}
