package queue

import (
	"testing"
	"time"

	"github.com/bitleak/lmstfy/client"
)

type fakeBroker struct {
	PublishFunc func(queue string, data []byte, ttlSecond uint32, tries uint16, delaySecond uint32) (string, error)
	ConsumeFunc func(queue string, ttrSecond, timeoutSecond uint32) (*client.Job, error)
	AckFunc     func(queue, jobID string) *client.APIError
}

func (f *fakeBroker) Publish(queue string, data []byte, ttlSecond uint32, tries uint16, delaySecond uint32) (string, error) {
	return f.PublishFunc(queue, data, ttlSecond, tries, delaySecond)
}

func (f *fakeBroker) Consume(queue string, ttrSecond, timeoutSecond uint32) (*client.Job, error) {
	return f.ConsumeFunc(queue, ttrSecond, timeoutSecond)
}

func (f *fakeBroker) Ack(queue, jobID string) *client.APIError {
	return f.AckFunc(queue, jobID)
}

func TestConsume_PassesTTRAndTimeoutInOrder(t *testing.T) {
	var gotTTR, gotTimeout uint32
	fb := &fakeBroker{
		ConsumeFunc: func(queue string, ttrSecond, timeoutSecond uint32) (*client.Job, error) {
			gotTTR = ttrSecond
			gotTimeout = timeoutSecond
			return &client.Job{ID: "job-1", Queue: queue, Data: []byte(`{"orderId":"ord-1"}`)}, nil
		},
	}
	c := &Client{cli: fb, queue: "fulfillment", ttl: 86400, ttr: 60}

	task, err := c.Consume(10 * time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The job keeps its full TTR while in flight; only the poll wait is short.
	if gotTTR != 60 {
		t.Errorf("expected ttr 60, got %d", gotTTR)
	}
	if gotTimeout != 10 {
		t.Errorf("expected poll timeout 10, got %d", gotTimeout)
	}
	if task.ID != "job-1" || task.Queue != "fulfillment" {
		t.Errorf("unexpected task: %+v", task)
	}
}

func TestConsume_NilTaskOnEmptyPoll(t *testing.T) {
	fb := &fakeBroker{
		ConsumeFunc: func(queue string, ttrSecond, timeoutSecond uint32) (*client.Job, error) {
			return nil, nil
		},
	}
	c := &Client{cli: fb, queue: "fulfillment", ttr: 60}

	task, err := c.Consume(10 * time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task != nil {
		t.Errorf("expected nil task when the poll times out, got %+v", task)
	}
}

func TestPublish_SetsTTLAndRetries(t *testing.T) {
	var gotTTL uint32
	var gotTries uint16
	var gotDelay uint32
	fb := &fakeBroker{
		PublishFunc: func(queue string, data []byte, ttlSecond uint32, tries uint16, delaySecond uint32) (string, error) {
			gotTTL = ttlSecond
			gotTries = tries
			gotDelay = delaySecond
			return "job-9", nil
		},
	}
	c := &Client{cli: fb, queue: "fulfillment", ttl: 86400, ttr: 60}

	jobID, err := c.Publish([]byte(`{"orderId":"ord-1"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if jobID != "job-9" {
		t.Errorf("expected job id from broker, got %q", jobID)
	}
	if gotTTL != 86400 || gotTries != 3 || gotDelay != 0 {
		t.Errorf("expected ttl=86400 tries=3 delay=0, got ttl=%d tries=%d delay=%d", gotTTL, gotTries, gotDelay)
	}
}

func TestAck_WrapsBrokerError(t *testing.T) {
	var gotQueue, gotJobID string
	fb := &fakeBroker{
		AckFunc: func(queue, jobID string) *client.APIError {
			gotQueue = queue
			gotJobID = jobID
			return nil
		},
	}
	c := &Client{cli: fb, queue: "fulfillment"}

	if err := c.Ack("job-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotQueue != "fulfillment" || gotJobID != "job-1" {
		t.Errorf("expected ack for fulfillment/job-1, got %s/%s", gotQueue, gotJobID)
	}

	fb.AckFunc = func(queue, jobID string) *client.APIError {
		return &client.APIError{Reason: "job not found"}
	}
	if err := c.Ack("job-2"); err == nil {
		t.Errorf("expected broker error to surface")
	}
}
