package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/everbuy/internal/queue"

	"github.com/hibiken/asynq"
)

type recordedReceipt struct {
	key   string
	value interface{}
	ttl   time.Duration
}

func TestHandleOrderPlacedWritesReceipt(t *testing.T) {
	var got []recordedReceipt
	consumer := &Consumer{writeReceipt: func(_ context.Context, key string, value interface{}, ttl time.Duration) error {
		got = append(got, recordedReceipt{key: key, value: value, ttl: ttl})
		return nil
	}}
	task, err := queue.NewOrderPlacedTask(queue.OrderPlacedPayload{OrderNo: "EB-20260101-0000ABCD", FinalTotal: "10.80"})
	if err != nil {
		t.Fatalf("new task failed: %v", err)
	}

	if err := consumer.handleOrderPlaced(context.Background(), task); err != nil {
		t.Fatalf("handle failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected one receipt, got %d", len(got))
	}
	if got[0].key != "order_receipt:EB-20260101-0000ABCD" || got[0].ttl != orderReceiptTTL {
		t.Fatalf("unexpected receipt: %+v", got[0])
	}
	payload, ok := got[0].value.(queue.OrderPlacedPayload)
	if !ok || payload.FinalTotal != "10.80" {
		t.Fatalf("unexpected receipt value: %#v", got[0].value)
	}
}

func TestHandleOrderPlacedBadPayload(t *testing.T) {
	consumer := &Consumer{}
	task := asynq.NewTask(queue.TaskOrderPlaced, []byte("{not json"))
	if err := consumer.handleOrderPlaced(context.Background(), task); err == nil {
		t.Fatalf("expected unmarshal error")
	}
}

func TestHandleOrderPlacedSkipsEmptyOrderNo(t *testing.T) {
	called := false
	consumer := &Consumer{writeReceipt: func(context.Context, string, interface{}, time.Duration) error {
		called = true
		return nil
	}}
	task := asynq.NewTask(queue.TaskOrderPlaced, []byte(`{"order_no":"  "}`))
	if err := consumer.handleOrderPlaced(context.Background(), task); err != nil {
		t.Fatalf("expected skip, got %v", err)
	}
	if called {
		t.Fatalf("receipt should not be written for empty order_no")
	}
}

func TestHandleOrderPlacedPropagatesWriteError(t *testing.T) {
	consumer := &Consumer{writeReceipt: func(context.Context, string, interface{}, time.Duration) error {
		return errors.New("redis down")
	}}
	task, err := queue.NewOrderPlacedTask(queue.OrderPlacedPayload{OrderNo: "EB-1"})
	if err != nil {
		t.Fatalf("new task failed: %v", err)
	}
	if err := consumer.handleOrderPlaced(context.Background(), task); err == nil {
		t.Fatalf("expected write error to be returned for retry")
	}
}
