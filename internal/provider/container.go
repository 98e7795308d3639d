package provider

import (
	"errors"
	"fmt"

	"github.com/everbuy/internal/cache"
	"github.com/everbuy/internal/config"
	"github.com/everbuy/internal/logger"
	"github.com/everbuy/internal/queue"
	"github.com/everbuy/internal/repository"
	"github.com/everbuy/internal/service"
	"github.com/everbuy/internal/session"

	"gorm.io/gorm"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client
	Sessions    *session.Manager

	// Repositories
	ProductRepo  repository.ProductRepository
	CategoryRepo repository.CategoryRepository

	// Services
	ProductService   *service.ProductService
	CategoryService  *service.CategoryService
	CartService      *service.CartService
	CheckoutService  *service.CheckoutService
	StoreInfoService *service.StoreInfoService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config, db *gorm.DB) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}
	if db == nil {
		return nil, fmt.Errorf("database not initialized")
	}

	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	sessions, err := session.NewManager(session.Options{
		Secret:        cfg.Session.Secret,
		TTL:           cfg.Session.TTL(),
		IdleTimeout:   cfg.Session.IdleTimeout(),
		SweepInterval: cfg.Session.SweepInterval(),
	})
	if err != nil {
		return nil, fmt.Errorf("init session manager: %w", err)
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
		Sessions:    sessions,
	}

	// 1. 初始化 Repositories
	c.initRepositories(db)

	// 2. 初始化 Services
	if err := c.initServices(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Container) initRepositories(db *gorm.DB) {
	c.ProductRepo = repository.NewProductRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
}

func (c *Container) initServices() error {
	pricing, err := service.PricingFromConfig(c.Config.Checkout)
	if err != nil {
		return err
	}

	// 队列未启用时 publisher 保持为 nil 接口
	var publisher service.OrderPublisher
	if c.QueueClient.Enabled() {
		publisher = c.QueueClient
	}

	c.ProductService = service.NewProductService(c.ProductRepo, c.Config.Catalog.CacheTTL())
	c.CategoryService = service.NewCategoryService(c.CategoryRepo, c.ProductRepo)
	c.CartService = service.NewCartService(c.ProductService)
	c.CheckoutService = service.NewCheckoutService(pricing, publisher)
	c.StoreInfoService = service.NewStoreInfoService()
	return nil
}

// Close 释放队列与缓存连接
func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	return errors.Join(c.QueueClient.Close(), cache.Close())
}
