package main

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	apperrors "posterworks/internal/errors"
	"posterworks/internal/infrastructure/queue"
)

type fakeSubmitter struct {
	SubmitFunc func(ctx context.Context, orderID string) error
}

func (f *fakeSubmitter) Submit(ctx context.Context, orderID string) error {
	return f.SubmitFunc(ctx, orderID)
}

type fakeAcker struct {
	acked []string
}

func (f *fakeAcker) Ack(taskID string) error {
	f.acked = append(f.acked, taskID)
	return nil
}

func fulfillmentTask(id string) *queue.Task {
	return &queue.Task{ID: id, Queue: "fulfillment", Data: []byte(`{"orderId":"ord-1"}`)}
}

func TestProcessTask_AckPolicy(t *testing.T) {
	tests := []struct {
		name      string
		submitErr error
		wantAck   bool
	}{
		{"success is acked", nil, true},
		{"validation failure is acked", apperrors.NewValidationError("order has no items"), true},
		{"partner rejection is acked", apperrors.NewProviderError(401, "invalid api key"), true},
		{"stale task on ineligible order is acked", apperrors.NewConflictError("order cannot start fulfillment"), true},
		{"transient failure left for redelivery", errors.New("dial tcp: connection refused"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acker := &fakeAcker{}
			submitter := &fakeSubmitter{
				SubmitFunc: func(ctx context.Context, orderID string) error { return tt.submitErr },
			}

			processTask(context.Background(), fulfillmentTask("task-1"), acker, submitter, zap.NewNop())

			if tt.wantAck && len(acker.acked) != 1 {
				t.Errorf("expected task acked, got %v", acker.acked)
			}
			if !tt.wantAck && len(acker.acked) != 0 {
				t.Errorf("transient failure must leave the task unacked, got %v", acker.acked)
			}
		})
	}
}

func TestProcessTask_MalformedTaskDiscarded(t *testing.T) {
	acker := &fakeAcker{}
	submitter := &fakeSubmitter{
		SubmitFunc: func(ctx context.Context, orderID string) error {
			t.Errorf("malformed task must not reach fulfillment")
			return nil
		},
	}

	task := &queue.Task{ID: "task-2", Queue: "fulfillment", Data: []byte(`not json`)}
	processTask(context.Background(), task, acker, submitter, zap.NewNop())

	if len(acker.acked) != 1 {
		t.Errorf("malformed task should be acked away, got %v", acker.acked)
	}

	empty := &queue.Task{ID: "task-3", Queue: "fulfillment", Data: []byte(`{"orderId":""}`)}
	processTask(context.Background(), empty, acker, submitter, zap.NewNop())

	if len(acker.acked) != 2 {
		t.Errorf("task without an order id should be acked away, got %v", acker.acked)
	}
}
