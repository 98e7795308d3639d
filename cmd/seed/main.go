package main

import (
	"context"
	"time"

	"github.com/everbuy/internal/cache"
	"github.com/everbuy/internal/config"
	"github.com/everbuy/internal/logger"
	"github.com/everbuy/internal/models"
	"github.com/everbuy/internal/repository"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}, false); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(models.DB); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 写入目录（按主键 / 分类名 upsert，可重复执行）
	if err := models.SeedCatalog(models.DB); err != nil {
		stdLog.Fatalf("Failed to seed catalog: %v", err)
	}

	// 目录变更后清理列表缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		stdLog.Printf("Skip cache invalidation: %v", err)
	} else if cache.Enabled() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		deleted, err := cache.InvalidateCatalog(ctx)
		cancel()
		if err != nil {
			stdLog.Printf("Catalog cache invalidation failed: %v", err)
		} else {
			stdLog.Printf("Catalog cache invalidated: %d keys", deleted)
		}
		_ = cache.Close()
	}

	products, err := repository.NewProductRepository(models.DB).ListAll()
	if err != nil {
		stdLog.Fatalf("Failed to load products: %v", err)
	}
	for _, p := range products {
		stdLog.Printf("Product %d: %s (%s) %s", p.ID, p.Name, p.Category, p.Price.String())
	}
	categories, err := repository.NewCategoryRepository(models.DB).List()
	if err != nil {
		stdLog.Fatalf("Failed to load categories: %v", err)
	}
	stdLog.Printf("Seed completed: %d products, %d categories", len(products), len(categories))
}
