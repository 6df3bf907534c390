package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/trm"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/utils"
)

const (
	defaultOrdersLimit = 50
	maxOrdersLimit     = 200
)

type OrderRepo interface {
	OrderByTracking(ctx context.Context, trackingNumber string) (entities.Order, error)
	ListOrders(ctx context.Context, f entities.OrderFilter) ([]entities.Order, error)
	UpdateDeliveryStatus(ctx context.Context, orderID string, status entities.DeliveryStatus, changedAt time.Time) error
	DeleteOrder(ctx context.Context, orderID string) error
	CancelStalePending(ctx context.Context, createdBefore time.Time) (int64, error)
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	sink      LogSink
	now       func() time.Time
	retry     utils.RetryConfig
}

func NewOrderService(logger *slog.Logger, txManager trm.Manager, repo OrderRepo, sink LogSink) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		repo:      repo,
		sink:      sink,
		now:       time.Now,
		retry: utils.RetryConfig{
			InitialDelay: 100 * time.Millisecond,
			MaxAttempts:  5,
			Multiplier:   2,
		},
	}
}

func (s *orderService) TrackOrder(ctx context.Context, trackingNumber string) (entities.Order, error) {
	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.repo.OrderByTracking(ctx, trackingNumber)
		return err
	}
	if err := utils.Retry(ctx, s.retry, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}
	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context, f entities.OrderFilter) ([]entities.Order, error) {
	if f.DeliveryStatus != "" && !f.DeliveryStatus.Valid() {
		return nil, entities.ErrInvalidDeliveryStatus
	}
	if f.Limit <= 0 {
		f.Limit = defaultOrdersLimit
	}
	f.Limit = min(f.Limit, maxOrdersLimit)
	f.Offset = max(f.Offset, 0)

	return s.repo.ListOrders(ctx, f)
}

// UpdateDeliveryStatus is the admin path for changing delivery status.
func (s *orderService) UpdateDeliveryStatus(ctx context.Context, orderID string, status entities.DeliveryStatus) error {
	return s.applyStatus(ctx, orderID, status, s.now(), "admin")
}

func (s *orderService) DeleteOrder(ctx context.Context, orderID string) error {
	return s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.repo.DeleteOrder(ctx, orderID); err != nil {
			return fmt.Errorf("failed to delete order: %w", err)
		}
		if err := s.sink.AppendLog(ctx, entities.LogEntry{
			Kind:    "OrderDeleted",
			Message: "order deleted by admin",
			Context: map[string]any{"order_id": orderID},
		}); err != nil {
			return err
		}

		s.logger.InfoContext(ctx, "order deleted", slog.String("order_id", orderID))
		return nil
	})
}

// HandleDeliveryEvent applies a courier status update. Transient failures are retried.
// Events older than the order's last status change are dropped.
func (s *orderService) HandleDeliveryEvent(ctx context.Context, ev entities.DeliveryEvent) error {
	if !ev.Status.Valid() {
		return entities.ErrInvalidDeliveryStatus
	}

	at := ev.OccurredAt
	if at.IsZero() {
		at = s.now()
	}

	fn := func() error {
		order, err := s.repo.OrderByTracking(ctx, ev.TrackingNumber)
		if err != nil {
			return err
		}
		return s.applyStatus(ctx, order.ID, ev.Status, at, "courier")
	}

	err := utils.Retry(ctx, s.retry, fn,
		entities.ErrOrderNotFound, entities.ErrInvalidDeliveryStatus, entities.ErrStaleDeliveryStatus)
	if errors.Is(err, entities.ErrStaleDeliveryStatus) {
		s.logger.InfoContext(ctx, "stale delivery event skipped",
			slog.String("tracking_number", ev.TrackingNumber),
			slog.String("status", string(ev.Status)),
			slog.Time("occurred_at", at),
		)
		return nil
	}
	return err
}

// CancelStalePending cancels pending orders without tracking created more than olderThan ago.
func (s *orderService) CancelStalePending(ctx context.Context, olderThan time.Duration) (int64, error) {
	before := s.now().Add(-olderThan)

	n, err := s.repo.CancelStalePending(ctx, before)
	if err != nil {
		return 0, err
	}

	if n > 0 {
		s.logger.InfoContext(ctx, "stale pending orders cancelled", slog.Int64("count", n))
		if err := s.sink.AppendLog(ctx, entities.LogEntry{
			Kind:    "StalePendingCancelled",
			Message: fmt.Sprintf("%d pending orders cancelled", n),
			Context: map[string]any{"created_before": before.UTC().Format(time.RFC3339), "count": n},
		}); err != nil {
			s.logger.ErrorContext(ctx, "failed to append sweep log", slog.Any("error", err))
		}
	}
	return n, nil
}

func (s *orderService) applyStatus(ctx context.Context, orderID string, status entities.DeliveryStatus, at time.Time, source string) error {
	if !status.Valid() {
		return entities.ErrInvalidDeliveryStatus
	}

	return s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.repo.UpdateDeliveryStatus(ctx, orderID, status, at); err != nil {
			return err
		}
		if err := s.sink.AppendLog(ctx, entities.LogEntry{
			Kind:    "DeliveryStatusChanged",
			Message: fmt.Sprintf("delivery status set to %s", status),
			Context: map[string]any{"order_id": orderID, "status": string(status), "source": source},
		}); err != nil {
			return err
		}

		s.logger.DebugContext(ctx, "delivery status updated",
			slog.String("order_id", orderID),
			slog.String("status", string(status)),
			slog.String("source", source),
		)
		return nil
	})
}
