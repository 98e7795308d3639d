package router

import (
	"fmt"
	"strings"

	"github.com/everbuy/internal/cache"
	"github.com/everbuy/internal/config"
	publichandlers "github.com/everbuy/internal/http/handlers/public"
	handlershared "github.com/everbuy/internal/http/handlers/shared"
	"github.com/everbuy/internal/http/response"
	"github.com/everbuy/internal/http/validate"
	"github.com/everbuy/internal/logger"
	"github.com/everbuy/internal/metrics"
	"github.com/everbuy/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	validate.Register()
	r := gin.New()

	publicHandler := publichandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "eb"
	}
	redisClient := cache.Client()
	submitRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:checkout_submit", redisPrefix),
		WindowSeconds: cfg.Security.CheckoutRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.CheckoutRateLimit.MaxRequests,
		MessageKey:    "error.checkout_submit_limited",
	}
	sessionMiddleware := SessionMiddleware(c.Sessions, SessionOptions{
		CookieName:   cfg.Session.CookieName,
		SecureCookie: cfg.Server.Mode == "release",
	})

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(MetricsMiddleware())
	r.Use(CORSMiddleware(cfg.CORS))

	r.GET("/health", func(c *gin.Context) {
		response.Success(c, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// API 路由组
	apiV1 := r.Group("/api/v1")
	{
		apiV1.POST("/session", publicHandler.CreateSession)

		// 公开接口
		public := apiV1.Group("/public")
		{
			public.GET("/home", publicHandler.GetHome)
			public.GET("/products", publicHandler.GetProducts)
			public.GET("/products/:id", publicHandler.GetProduct)
			public.GET("/categories", publicHandler.GetCategories)
			public.GET("/about", publicHandler.GetAbout)
		}

		// 会话接口（购物车与结算）
		scoped := apiV1.Group("")
		scoped.Use(sessionMiddleware)
		{
			scoped.GET("/cart", publicHandler.GetCart)
			scoped.DELETE("/cart", publicHandler.ClearCart)
			scoped.POST("/cart/items", publicHandler.AddCartItem)
			scoped.PUT("/cart/items/:product_id", publicHandler.UpdateCartItem)
			scoped.DELETE("/cart/items/:product_id", publicHandler.DeleteCartItem)

			scoped.POST("/checkout", publicHandler.BeginCheckout)
			scoped.GET("/checkout", publicHandler.GetCheckout)
			scoped.DELETE("/checkout", publicHandler.DiscardCheckout)
			scoped.PATCH("/checkout/draft", publicHandler.UpdateCheckoutDraft)
			scoped.POST("/checkout/next", publicHandler.NextCheckoutStep)
			scoped.POST("/checkout/back", publicHandler.PrevCheckoutStep)
			scoped.POST("/checkout/submit", RateLimitMiddleware(redisClient, submitRule, KeyBySession), publicHandler.SubmitCheckout)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		handlershared.RespondError(c, response.CodeNotFound, "error.not_found", nil)
	})

	return r
}
