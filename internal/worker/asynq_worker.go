package worker

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/everbuy/internal/cache"
	"github.com/everbuy/internal/logger"
	"github.com/everbuy/internal/queue"

	"github.com/hibiken/asynq"
)

const orderReceiptTTL = 24 * time.Hour

// ReceiptWriter 下单回执存储
type ReceiptWriter func(ctx context.Context, key string, value interface{}, ttl time.Duration) error

// Consumer 异步任务消费者
type Consumer struct {
	writeReceipt ReceiptWriter
}

// NewConsumer 创建消费者，回执默认写入 Redis 缓存
func NewConsumer() *Consumer {
	return &Consumer{writeReceipt: cache.SetJSON}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderPlaced, c.handleOrderPlaced)
}

// OrderReceiptKey 回执缓存 key
func OrderReceiptKey(orderNo string) string {
	return fmt.Sprintf("order_receipt:%s", strings.TrimSpace(orderNo))
}

func (c *Consumer) handleOrderPlaced(ctx context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_order_placed_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	payload, err := queue.ParseOrderPlacedPayload(task)
	if err != nil {
		logger.Warnw("worker_order_placed_unmarshal_failed", "error", err)
		return err
	}
	if strings.TrimSpace(payload.OrderNo) == "" {
		logger.Debugw("worker_order_placed_skip_invalid_payload")
		return nil
	}

	itemCount := 0
	for _, line := range payload.Items {
		itemCount += line.Quantity
	}
	logger.Infow("worker_order_placed",
		"order_no", payload.OrderNo,
		"session_id", payload.SessionID,
		"item_count", itemCount,
		"final_total", payload.FinalTotal,
		"payment_method", payload.PaymentMethod,
	)

	if c.writeReceipt == nil {
		return nil
	}
	if err := c.writeReceipt(ctx, OrderReceiptKey(payload.OrderNo), payload, orderReceiptTTL); err != nil {
		logger.Warnw("worker_order_receipt_write_failed", "order_no", payload.OrderNo, "error", err)
		return err
	}
	return nil
}
