package service

import (
	"sort"
	"strings"

	"github.com/everbuy/internal/cache"
	"github.com/everbuy/internal/constants"
	"github.com/everbuy/internal/models"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ListingQuery 商品列表筛选条件
type ListingQuery struct {
	Search   string `form:"search" json:"search"`
	Category string `form:"category" json:"category"`
	Sort     string `form:"sort" json:"sort"`
}

// ValidSortKey 判断排序键是否受支持
func ValidSortKey(key string) bool {
	switch key {
	case constants.SortFeatured, constants.SortPriceLow, constants.SortPriceHigh,
		constants.SortRating, constants.SortName:
		return true
	default:
		return false
	}
}

// Normalize 补默认值，未知排序回退为 featured；搜索词按原样做子串匹配
func (q ListingQuery) Normalize() ListingQuery {
	q.Category = strings.TrimSpace(q.Category)
	q.Sort = strings.ToLower(strings.TrimSpace(q.Sort))
	if q.Category == "" {
		q.Category = constants.CategoryAll
	}
	if !ValidSortKey(q.Sort) {
		q.Sort = constants.SortFeatured
	}
	return q
}

// Reset 清空搜索与分类，保留排序
func (q ListingQuery) Reset() ListingQuery {
	return ListingQuery{
		Search:   "",
		Category: constants.CategoryAll,
		Sort:     q.Normalize().Sort,
	}
}

// IsDefault 是否为默认条件
func (q ListingQuery) IsDefault() bool {
	n := q.Normalize()
	return n.Search == "" && n.Category == constants.CategoryAll && n.Sort == constants.SortFeatured
}

// CacheKey 列表缓存 key
func (q ListingQuery) CacheKey() string {
	n := q.Normalize()
	return cache.ListingKey(n.Search, n.Category, n.Sort)
}

// FilterAndSort 按条件筛选并稳定排序，不修改入参
func FilterAndSort(products []models.Product, query ListingQuery) []models.Product {
	query = query.Normalize()
	needle := strings.ToLower(query.Search)

	result := make([]models.Product, 0, len(products))
	for _, p := range products {
		if needle != "" && !strings.Contains(strings.ToLower(p.Name), needle) {
			continue
		}
		if query.Category != constants.CategoryAll && p.Category != query.Category {
			continue
		}
		result = append(result, p)
	}

	switch query.Sort {
	case constants.SortPriceLow:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price.LessThan(result[j].Price.Decimal)
		})
	case constants.SortPriceHigh:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price.GreaterThan(result[j].Price.Decimal)
		})
	case constants.SortRating:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Rating > result[j].Rating
		})
	case constants.SortName:
		// Collator 非并发安全，每次排序单独创建
		col := collate.New(language.English)
		sort.SliceStable(result, func(i, j int) bool {
			return col.CompareString(result[i].Name, result[j].Name) < 0
		})
	}
	return result
}
