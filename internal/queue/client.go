package queue

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/everbuy/internal/config"
	"github.com/everbuy/internal/constants"
	"github.com/everbuy/internal/logger"

	"github.com/hibiken/asynq"
)

const (
	// DefaultQueue 默认队列名称
	DefaultQueue = constants.QueueDefault

	orderPlacedMaxRetry  = 3
	orderPlacedTimeout   = 30 * time.Second
	orderPlacedRetention = 24 * time.Hour
)

// enqueuer asynq.Client 的最小依赖面
type enqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
	Close() error
}

// Client 下单通知队列客户端；未启用时投递为空操作
type Client struct {
	client       enqueuer
	defaultQueue string
}

// NewClient 创建队列客户端
func NewClient(cfg *config.QueueConfig) (*Client, error) {
	if cfg == nil || !cfg.Enabled {
		return &Client{defaultQueue: DefaultQueue}, nil
	}
	return &Client{
		client:       asynq.NewClient(buildRedisOpt(cfg)),
		defaultQueue: resolveDefaultQueue(cfg.Queues),
	}, nil
}

// Enabled 判断是否启用
func (c *Client) Enabled() bool {
	return c != nil && c.client != nil
}

// Close 关闭客户端
func (c *Client) Close() error {
	if !c.Enabled() {
		return nil
	}
	return c.client.Close()
}

// EnqueueOrderPlaced 投递下单通知；订单号作为任务 ID，重复提交同一订单不会重复投递
func (c *Client) EnqueueOrderPlaced(payload OrderPlacedPayload, opts ...asynq.Option) error {
	if !c.Enabled() {
		return nil
	}
	task, err := NewOrderPlacedTask(payload)
	if err != nil {
		return err
	}
	options := append([]asynq.Option{
		asynq.Queue(c.defaultQueue),
		asynq.TaskID(payload.OrderNo),
		asynq.MaxRetry(orderPlacedMaxRetry),
		asynq.Timeout(orderPlacedTimeout),
		asynq.Retention(orderPlacedRetention),
	}, opts...)
	info, err := c.client.Enqueue(task, options...)
	if errors.Is(err, asynq.ErrTaskIDConflict) {
		logger.Debugw("queue_order_placed_duplicate", "order_no", payload.OrderNo)
		return nil
	}
	if err != nil {
		return err
	}
	if info != nil {
		logger.Debugw("queue_order_placed_enqueued", "order_no", payload.OrderNo, "queue", info.Queue)
	}
	return nil
}

// BuildServerConfig 生成队列服务配置
func BuildServerConfig(cfg *config.QueueConfig) (asynq.RedisClientOpt, asynq.Config) {
	opt := buildRedisOpt(cfg)
	concurrency := 10
	if cfg != nil && cfg.Concurrency > 0 {
		concurrency = cfg.Concurrency
	}
	queues := map[string]int{DefaultQueue: 1}
	if cfg != nil && len(cfg.Queues) > 0 {
		queues = cfg.Queues
	}
	return opt, asynq.Config{
		Concurrency: concurrency,
		Queues:      queues,
	}
}

// resolveDefaultQueue 投递队列须出现在 worker 监听的队列中
func resolveDefaultQueue(queues map[string]int) string {
	if len(queues) == 0 {
		return DefaultQueue
	}
	if _, ok := queues[DefaultQueue]; ok {
		return DefaultQueue
	}
	best := ""
	bestPriority := 0
	for name, priority := range queues {
		if best == "" || priority > bestPriority || (priority == bestPriority && name < best) {
			best = name
			bestPriority = priority
		}
	}
	return best
}

func buildRedisOpt(cfg *config.QueueConfig) asynq.RedisClientOpt {
	host := "127.0.0.1"
	port := 6379
	password := ""
	db := 0
	if cfg != nil {
		if strings.TrimSpace(cfg.Host) != "" {
			host = strings.TrimSpace(cfg.Host)
		}
		if cfg.Port > 0 {
			port = cfg.Port
		}
		password = cfg.Password
		db = cfg.DB
	}
	return asynq.RedisClientOpt{
		Addr:     fmt.Sprintf("%s:%d", host, port),
		Password: password,
		DB:       db,
	}
}
