package queue

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/everbuy/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskOrderPlaced 模拟下单通知任务
	TaskOrderPlaced = constants.TaskOrderPlaced
)

// OrderPlacedLine 下单明细行
type OrderPlacedLine struct {
	ProductID uint   `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	LineTotal string `json:"line_total"`
}

// OrderPlacedPayload 模拟下单任务载荷
type OrderPlacedPayload struct {
	OrderNo       string            `json:"order_no"`
	SessionID     string            `json:"session_id"`
	Email         string            `json:"email"`
	PaymentMethod string            `json:"payment_method"`
	Subtotal      string            `json:"subtotal"`
	ShippingCost  string            `json:"shipping_cost"`
	Tax           string            `json:"tax"`
	FinalTotal    string            `json:"final_total"`
	Items         []OrderPlacedLine `json:"items"`
	PlacedAt      int64             `json:"placed_at"`
}

// NewOrderPlacedTask 创建下单通知任务
func NewOrderPlacedTask(payload OrderPlacedPayload) (*asynq.Task, error) {
	if strings.TrimSpace(payload.OrderNo) == "" {
		return nil, errors.New("order_no is required")
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderPlaced, body), nil
}

// ParseOrderPlacedPayload 解析下单通知载荷
func ParseOrderPlacedPayload(task *asynq.Task) (OrderPlacedPayload, error) {
	var payload OrderPlacedPayload
	if task == nil {
		return payload, errors.New("task is nil")
	}
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return payload, err
	}
	return payload, nil
}
