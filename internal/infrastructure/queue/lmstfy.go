package queue

import (
	"fmt"
	"time"

	"github.com/bitleak/lmstfy/client"

	"posterworks/internal/config"
)

// Task is one unit of work pulled from the broker. The broker redelivers a
// task whose TTR elapses without an ack, and dead-letters it once the
// publish-time retry count is exhausted.
type Task struct {
	ID    string
	Queue string
	Data  []byte
}

// broker is the slice of the lmstfy client this wrapper uses. Consume takes
// ttrSecond before timeoutSecond.
type broker interface {
	Publish(queue string, data []byte, ttlSecond uint32, tries uint16, delaySecond uint32) (string, error)
	Consume(queue string, ttrSecond, timeoutSecond uint32) (*client.Job, error)
	Ack(queue, jobID string) *client.APIError
}

type Client struct {
	cli   broker
	queue string
	ttl   uint32
	ttr   uint32
}

func NewClient(cfg config.QueueConfig) *Client {
	return &Client{
		cli:   client.NewLmstfyClient(cfg.Host, cfg.Port, cfg.Namespace, cfg.Token),
		queue: cfg.Queue,
		ttl:   uint32(cfg.JobTTL.Seconds()),
		ttr:   uint32(cfg.JobTTR.Seconds()),
	}
}

// Publish enqueues data with at-least-once delivery; the broker retries up
// to three deliveries before dead-lettering.
func (c *Client) Publish(data []byte) (string, error) {
	jobID, err := c.cli.Publish(c.queue, data, c.ttl, 3, 0)
	if err != nil {
		return "", fmt.Errorf("queue publish failed: %w", err)
	}
	return jobID, nil
}

// Consume blocks up to timeout for the next task; a consumed task has the
// configured TTR to be acked before the broker redelivers it. A nil task
// means the timeout elapsed with nothing to do.
func (c *Client) Consume(timeout time.Duration) (*Task, error) {
	job, err := c.cli.Consume(c.queue, c.ttr, uint32(timeout.Seconds()))
	if err != nil {
		return nil, fmt.Errorf("queue consume failed: %w", err)
	}
	if job == nil {
		return nil, nil
	}
	return &Task{
		ID:    job.ID,
		Queue: job.Queue,
		Data:  job.Data,
	}, nil
}

func (c *Client) Ack(taskID string) error {
	if apiErr := c.cli.Ack(c.queue, taskID); apiErr != nil {
		return fmt.Errorf("queue ack failed: %w", apiErr)
	}
	return nil
}
