package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"posterworks/internal/config"
	"posterworks/internal/dto"
	apperrors "posterworks/internal/errors"
	"posterworks/internal/infrastructure/logger"
	"posterworks/internal/infrastructure/mysql"
	"posterworks/internal/infrastructure/queue"
	"posterworks/internal/order"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := mysql.NewConnection(cfg.Database)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	defer db.Close()
	zapLogger.Info("database connected")

	queueClient := queue.NewClient(cfg.Queue)
	fulfillmentUC := order.NewFulfillmentUseCase(db, cfg, zapLogger)

	ctx, cancel := context.WithCancel(context.Background())

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		zapLogger.Info("received shutdown signal")
		cancel()
	}()

	zapLogger.Info("fulfillment worker started", zap.String("queue", cfg.Queue.Queue))

	for {
		select {
		case <-ctx.Done():
			zapLogger.Info("fulfillment worker stopped")
			return
		default:
		}

		task, err := queueClient.Consume(cfg.Queue.Timeout)
		if err != nil {
			zapLogger.Error("consuming fulfillment task failed", zap.Error(err))
			continue
		}
		if task == nil {
			continue
		}

		processTask(ctx, task, queueClient, fulfillmentUC, zapLogger)
	}
}

type fulfillmentSubmitter interface {
	Submit(ctx context.Context, orderID string) error
}

type taskAcker interface {
	Ack(taskID string) error
}

// processTask decides the ack. Terminal outcomes (success, validation
// failure, partner rejection) are acked: the failure is already recorded on
// the order and a redelivery cannot improve it. Transient errors are left
// unacked so the broker redelivers and eventually dead-letters the task.
func processTask(ctx context.Context, task *queue.Task, acker taskAcker, submitter fulfillmentSubmitter, zapLogger *zap.Logger) {
	taskLogger := zapLogger.With(zap.String("taskId", task.ID))

	var payload dto.FulfillmentTask
	if err := json.Unmarshal(task.Data, &payload); err != nil || payload.OrderID == "" {
		taskLogger.Error("malformed fulfillment task, discarding", zap.Error(err))
		ack(acker, task.ID, taskLogger)
		return
	}

	taskLogger = taskLogger.With(zap.String("orderId", payload.OrderID))

	err := submitter.Submit(ctx, payload.OrderID)
	if err == nil {
		taskLogger.Info("fulfillment submitted")
		ack(acker, task.ID, taskLogger)
		return
	}

	if _, ok := apperrors.IsValidationError(err); ok {
		taskLogger.Warn("order not fulfillable, discarding task", zap.Error(err))
		ack(acker, task.ID, taskLogger)
		return
	}

	if pe, ok := apperrors.IsProviderError(err); ok {
		taskLogger.Warn("partner rejected order",
			zap.Int("statusCode", pe.StatusCode), zap.Error(err))
		ack(acker, task.ID, taskLogger)
		return
	}

	if _, ok := apperrors.IsConflictError(err); ok {
		taskLogger.Warn("order no longer eligible for fulfillment, discarding task", zap.Error(err))
		ack(acker, task.ID, taskLogger)
		return
	}

	taskLogger.Error("fulfillment failed, leaving task for redelivery", zap.Error(err))
}

func ack(acker taskAcker, taskID string, logger *zap.Logger) {
	if err := acker.Ack(taskID); err != nil {
		logger.Error("acking task failed", zap.Error(err))
	}
}
