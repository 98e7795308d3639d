package queue

import (
	"testing"

	"github.com/everbuy/internal/config"
)

func TestOrderPlacedTaskRoundTrip(t *testing.T) {
	task, err := NewOrderPlacedTask(OrderPlacedPayload{
		OrderNo:    "EB-20260101-ABCDEF12",
		SessionID:  "sid-1",
		FinalTotal: "431.98",
		Items:      []OrderPlacedLine{{ProductID: 1, Name: "Wireless Headphones", Quantity: 2, LineTotal: "399.98"}},
	})
	if err != nil {
		t.Fatalf("new task failed: %v", err)
	}
	if task.Type() != TaskOrderPlaced {
		t.Fatalf("unexpected task type: %s", task.Type())
	}
	payload, err := ParseOrderPlacedPayload(task)
	if err != nil {
		t.Fatalf("parse payload failed: %v", err)
	}
	if payload.OrderNo != "EB-20260101-ABCDEF12" || len(payload.Items) != 1 || payload.Items[0].Quantity != 2 {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}

func TestOrderPlacedTaskRequiresOrderNo(t *testing.T) {
	if _, err := NewOrderPlacedTask(OrderPlacedPayload{}); err == nil {
		t.Fatalf("expected error for empty order_no")
	}
}

func TestDisabledClientSkipsEnqueue(t *testing.T) {
	client, err := NewClient(&config.QueueConfig{Enabled: false})
	if err != nil {
		t.Fatalf("new client failed: %v", err)
	}
	if client.Enabled() {
		t.Fatalf("client should be disabled")
	}
	if err := client.EnqueueOrderPlaced(OrderPlacedPayload{OrderNo: "EB-1"}); err != nil {
		t.Fatalf("disabled enqueue should be a no-op, got %v", err)
	}
}

func TestBuildServerConfigDefaults(t *testing.T) {
	opt, cfg := BuildServerConfig(&config.QueueConfig{Host: "redis", Port: 6380, DB: 2})
	if opt.Addr != "redis:6380" || opt.DB != 2 {
		t.Fatalf("unexpected redis opt: %+v", opt)
	}
	if cfg.Concurrency != 10 || cfg.Queues[DefaultQueue] != 1 {
		t.Fatalf("unexpected server config: %+v", cfg)
	}
}
