package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type ExpiryRepository interface {
	FindExpiredPending(ctx context.Context, now time.Time) ([]string, error)
	MarkExpired(ctx context.Context, orderID string, now time.Time) (bool, error)
}

type CleanupUseCase struct {
	orderRepo ExpiryRepository
	logger    *zap.Logger
}

func NewCleanupUseCase(orderRepo ExpiryRepository, logger *zap.Logger) *CleanupUseCase {
	return &CleanupUseCase{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

// Sweep expires abandoned checkouts: PENDING orders past their expiry are
// marked EXPIRED one by one with a conditional update, so an order paid
// between the scan and the update is left alone. Returns the swept count.
func (uc *CleanupUseCase) Sweep(ctx context.Context, now time.Time) (int, error) {
	ids, err := uc.orderRepo.FindExpiredPending(ctx, now)
	if err != nil {
		return 0, err
	}

	swept := 0
	for _, id := range ids {
		expired, err := uc.orderRepo.MarkExpired(ctx, id, now)
		if err != nil {
			uc.logger.Error("marking order expired failed", zap.String("orderId", id), zap.Error(err))
			continue
		}
		if expired {
			swept++
			uc.logger.Info("order expired", zap.String("orderId", id))
		}
	}

	uc.logger.Info("cleanup sweep finished", zap.Int("found", len(ids)), zap.Int("swept", swept))
	return swept, nil
}
