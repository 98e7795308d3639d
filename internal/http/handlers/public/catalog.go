package public

import (
	"github.com/everbuy/internal/http/response"
	"github.com/everbuy/internal/service"

	"github.com/gin-gonic/gin"
)

// ProductListRequest 商品列表查询参数
type ProductListRequest struct {
	Search   string `form:"search" binding:"max=100"`
	Category string `form:"category" binding:"max=64"`
	Sort     string `form:"sort"`
}

// GetHome 首页：推荐商品、推荐分类与横幅
func (h *Handler) GetHome(c *gin.Context) {
	products, err := h.ProductService.Featured(h.Config.Catalog.FeaturedLimit)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	categories, err := h.CategoryService.ListWithCounts(true)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, gin.H{
		"hero":       h.StoreInfoService.Hero(),
		"products":   products,
		"categories": categories,
	})
}

// GetProducts 商品列表（搜索、分类筛选与排序）
func (h *Handler) GetProducts(c *gin.Context) {
	var req ProductListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	result, err := h.ProductService.List(c.Request.Context(), service.ListingQuery{
		Search:   req.Search,
		Category: req.Category,
		Sort:     req.Sort,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, result)
}

// GetProduct 商品详情
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := parseProductID(c, "id")
	if !ok {
		return
	}
	detail, err := h.ProductService.GetDetail(id)
	if err != nil {
		respondProductError(c, err)
		return
	}
	response.Success(c, detail)
}

// GetCategories 分类列表（含实际商品数）
func (h *Handler) GetCategories(c *gin.Context) {
	categories, err := h.CategoryService.ListWithCounts(false)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, gin.H{"categories": categories})
}

// GetAbout 关于页
func (h *Handler) GetAbout(c *gin.Context) {
	response.Success(c, h.StoreInfoService.About())
}
