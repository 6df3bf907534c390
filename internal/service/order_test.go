package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	mocks "github.com/SergeyBogomolovv/storefront-checkout/internal/service/mocks"
	trmMocks "github.com/SergeyBogomolovv/storefront-checkout/pkg/trm/mocks"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

func newTestOrderService(t *testing.T) (*orderService, *mocks.MockOrderRepo, *mocks.MockLogSink, *trmMocks.MockManager) {
	repo := mocks.NewMockOrderRepo(t)
	sink := mocks.NewMockLogSink(t)
	txManager := trmMocks.NewMockManager(t)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewOrderService(logger, txManager, repo, sink)
	svc.now = func() time.Time { return testNow }
	svc.retry = utils.RetryConfig{MaxAttempts: 3, InitialDelay: time.Millisecond}

	return svc, repo, sink, txManager
}

// passthroughTx runs callbacks inline, as the real manager does inside a transaction.
func passthroughTx(m *trmMocks.MockManager) {
	m.EXPECT().Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func TestOrderService_TrackOrder(t *testing.T) {
	t.Run("retries transient errors", func(t *testing.T) {
		svc, repo, _, _ := newTestOrderService(t)
		want := entities.Order{ID: "order-1", TrackingNumber: "TRK12345678AB12"}

		repo.EXPECT().OrderByTracking(mock.Anything, "TRK12345678AB12").Return(entities.Order{}, errors.New("conn reset")).Once()
		repo.EXPECT().OrderByTracking(mock.Anything, "TRK12345678AB12").Return(want, nil).Once()

		got, err := svc.TrackOrder(context.Background(), "TRK12345678AB12")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("not found is not retried", func(t *testing.T) {
		svc, repo, _, _ := newTestOrderService(t)
		repo.EXPECT().OrderByTracking(mock.Anything, "nope").Return(entities.Order{}, entities.ErrOrderNotFound).Once()

		_, err := svc.TrackOrder(context.Background(), "nope")
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})
}

func TestOrderService_ListOrders(t *testing.T) {
	testCases := []struct {
		name    string
		filter  entities.OrderFilter
		want    entities.OrderFilter
		wantErr error
	}{
		{
			name:   "defaults",
			filter: entities.OrderFilter{},
			want:   entities.OrderFilter{Limit: defaultOrdersLimit},
		},
		{
			name:   "limit is capped and offset clamped",
			filter: entities.OrderFilter{Limit: 10_000, Offset: -5, Search: "jane"},
			want:   entities.OrderFilter{Limit: maxOrdersLimit, Search: "jane"},
		},
		{
			name:   "status filter",
			filter: entities.OrderFilter{DeliveryStatus: entities.DeliveryShipped, Limit: 20, Offset: 40},
			want:   entities.OrderFilter{DeliveryStatus: entities.DeliveryShipped, Limit: 20, Offset: 40},
		},
		{
			name:    "unknown status",
			filter:  entities.OrderFilter{DeliveryStatus: "lost"},
			wantErr: entities.ErrInvalidDeliveryStatus,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, repo, _, _ := newTestOrderService(t)
			if tc.wantErr == nil {
				repo.EXPECT().ListOrders(mock.Anything, tc.want).Return([]entities.Order{{ID: "order-1"}}, nil).Once()
			}

			orders, err := svc.ListOrders(context.Background(), tc.filter)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, orders, 1)
		})
	}
}

func TestOrderService_UpdateDeliveryStatus(t *testing.T) {
	t.Run("admin change is stamped with now", func(t *testing.T) {
		svc, repo, sink, txManager := newTestOrderService(t)
		passthroughTx(txManager)

		repo.EXPECT().UpdateDeliveryStatus(mock.Anything, "order-1", entities.DeliveryDelivered, testNow).Return(nil).Once()
		sink.EXPECT().AppendLog(mock.Anything, mock.MatchedBy(func(e entities.LogEntry) bool {
			return e.Kind == "DeliveryStatusChanged" && e.Context["source"] == "admin"
		})).Return(nil).Once()

		require.NoError(t, svc.UpdateDeliveryStatus(context.Background(), "order-1", entities.DeliveryDelivered))
	})

	t.Run("shipped", func(t *testing.T) {
		svc, repo, sink, txManager := newTestOrderService(t)
		passthroughTx(txManager)

		repo.EXPECT().UpdateDeliveryStatus(mock.Anything, "order-1", entities.DeliveryShipped, testNow).Return(nil).Once()
		sink.EXPECT().AppendLog(mock.Anything, mock.Anything).Return(nil).Once()

		require.NoError(t, svc.UpdateDeliveryStatus(context.Background(), "order-1", entities.DeliveryShipped))
	})

	t.Run("invalid status touches nothing", func(t *testing.T) {
		svc, _, _, _ := newTestOrderService(t)
		err := svc.UpdateDeliveryStatus(context.Background(), "order-1", "teleported")
		assert.ErrorIs(t, err, entities.ErrInvalidDeliveryStatus)
	})

	t.Run("unknown order", func(t *testing.T) {
		svc, repo, _, txManager := newTestOrderService(t)
		passthroughTx(txManager)

		repo.EXPECT().UpdateDeliveryStatus(mock.Anything, "missing", entities.DeliveryShipped, testNow).
			Return(entities.ErrOrderNotFound).Once()

		err := svc.UpdateDeliveryStatus(context.Background(), "missing", entities.DeliveryShipped)
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})
}

func TestOrderService_DeleteOrder(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, repo, sink, txManager := newTestOrderService(t)
		passthroughTx(txManager)

		repo.EXPECT().DeleteOrder(mock.Anything, "order-1").Return(nil).Once()
		sink.EXPECT().AppendLog(mock.Anything, mock.MatchedBy(func(e entities.LogEntry) bool {
			return e.Kind == "OrderDeleted"
		})).Return(nil).Once()

		require.NoError(t, svc.DeleteOrder(context.Background(), "order-1"))
	})

	t.Run("log failure rolls back", func(t *testing.T) {
		svc, repo, sink, txManager := newTestOrderService(t)
		passthroughTx(txManager)

		repo.EXPECT().DeleteOrder(mock.Anything, "order-1").Return(nil).Once()
		sink.EXPECT().AppendLog(mock.Anything, mock.Anything).Return(errors.New("db error")).Once()

		assert.Error(t, svc.DeleteOrder(context.Background(), "order-1"))
	})

	t.Run("not found", func(t *testing.T) {
		svc, repo, _, txManager := newTestOrderService(t)
		passthroughTx(txManager)

		repo.EXPECT().DeleteOrder(mock.Anything, "missing").Return(entities.ErrOrderNotFound).Once()

		assert.ErrorIs(t, svc.DeleteOrder(context.Background(), "missing"), entities.ErrOrderNotFound)
	})
}

func TestOrderService_HandleDeliveryEvent(t *testing.T) {
	occurred := time.Date(2025, 3, 9, 18, 0, 0, 0, time.UTC)

	t.Run("applies courier status", func(t *testing.T) {
		svc, repo, sink, txManager := newTestOrderService(t)
		passthroughTx(txManager)

		repo.EXPECT().OrderByTracking(mock.Anything, "TRK1").Return(entities.Order{ID: "order-1"}, nil).Once()
		repo.EXPECT().UpdateDeliveryStatus(mock.Anything, "order-1", entities.DeliveryDelivered, occurred).Return(nil).Once()
		sink.EXPECT().AppendLog(mock.Anything, mock.MatchedBy(func(e entities.LogEntry) bool {
			return e.Context["source"] == "courier"
		})).Return(nil).Once()

		err := svc.HandleDeliveryEvent(context.Background(), entities.DeliveryEvent{
			TrackingNumber: "TRK1",
			Status:         entities.DeliveryDelivered,
			OccurredAt:     occurred,
		})
		require.NoError(t, err)
	})

	t.Run("missing timestamp falls back to now", func(t *testing.T) {
		svc, repo, sink, txManager := newTestOrderService(t)
		passthroughTx(txManager)

		repo.EXPECT().OrderByTracking(mock.Anything, "TRK1").Return(entities.Order{ID: "order-1"}, nil).Once()
		repo.EXPECT().UpdateDeliveryStatus(mock.Anything, "order-1", entities.DeliveryDelivered, testNow).Return(nil).Once()
		sink.EXPECT().AppendLog(mock.Anything, mock.Anything).Return(nil).Once()

		err := svc.HandleDeliveryEvent(context.Background(), entities.DeliveryEvent{
			TrackingNumber: "TRK1",
			Status:         entities.DeliveryDelivered,
		})
		require.NoError(t, err)
	})

	t.Run("retries transient update failure", func(t *testing.T) {
		svc, repo, sink, txManager := newTestOrderService(t)
		passthroughTx(txManager)

		repo.EXPECT().OrderByTracking(mock.Anything, "TRK1").Return(entities.Order{ID: "order-1"}, nil).Twice()
		repo.EXPECT().UpdateDeliveryStatus(mock.Anything, "order-1", entities.DeliveryShipped, occurred).
			Return(errors.New("deadlock")).Once()
		repo.EXPECT().UpdateDeliveryStatus(mock.Anything, "order-1", entities.DeliveryShipped, occurred).
			Return(nil).Once()
		sink.EXPECT().AppendLog(mock.Anything, mock.Anything).Return(nil).Once()

		err := svc.HandleDeliveryEvent(context.Background(), entities.DeliveryEvent{
			TrackingNumber: "TRK1",
			Status:         entities.DeliveryShipped,
			OccurredAt:     occurred,
		})
		require.NoError(t, err)
	})

	t.Run("late event does not overwrite newer status", func(t *testing.T) {
		svc, repo, _, txManager := newTestOrderService(t)
		passthroughTx(txManager)

		repo.EXPECT().OrderByTracking(mock.Anything, "TRK1").Return(entities.Order{ID: "order-1"}, nil).Once()
		repo.EXPECT().UpdateDeliveryStatus(mock.Anything, "order-1", entities.DeliveryShipped, occurred).
			Return(entities.ErrStaleDeliveryStatus).Once()

		err := svc.HandleDeliveryEvent(context.Background(), entities.DeliveryEvent{
			TrackingNumber: "TRK1",
			Status:         entities.DeliveryShipped,
			OccurredAt:     occurred,
		})
		require.NoError(t, err)
	})

	t.Run("unknown tracking number", func(t *testing.T) {
		svc, repo, _, _ := newTestOrderService(t)
		repo.EXPECT().OrderByTracking(mock.Anything, "TRK404").Return(entities.Order{}, entities.ErrOrderNotFound).Once()

		err := svc.HandleDeliveryEvent(context.Background(), entities.DeliveryEvent{
			TrackingNumber: "TRK404",
			Status:         entities.DeliveryShipped,
		})
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})

	t.Run("invalid status", func(t *testing.T) {
		svc, _, _, _ := newTestOrderService(t)
		err := svc.HandleDeliveryEvent(context.Background(), entities.DeliveryEvent{TrackingNumber: "TRK1", Status: "eaten"})
		assert.ErrorIs(t, err, entities.ErrInvalidDeliveryStatus)
	})
}

func TestOrderService_CancelStalePending(t *testing.T) {
	t.Run("logs when something was cancelled", func(t *testing.T) {
		svc, repo, sink, _ := newTestOrderService(t)

		repo.EXPECT().CancelStalePending(mock.Anything, testNow.Add(-24*time.Hour)).Return(3, nil).Once()
		sink.EXPECT().AppendLog(mock.Anything, mock.MatchedBy(func(e entities.LogEntry) bool {
			return e.Kind == "StalePendingCancelled"
		})).Return(nil).Once()

		n, err := svc.CancelStalePending(context.Background(), 24*time.Hour)
		require.NoError(t, err)
		assert.EqualValues(t, 3, n)
	})

	t.Run("nothing to cancel", func(t *testing.T) {
		svc, repo, _, _ := newTestOrderService(t)
		repo.EXPECT().CancelStalePending(mock.Anything, mock.Anything).Return(0, nil).Once()

		n, err := svc.CancelStalePending(context.Background(), time.Hour)
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("store error", func(t *testing.T) {
		svc, repo, _, _ := newTestOrderService(t)
		repo.EXPECT().CancelStalePending(mock.Anything, mock.Anything).Return(0, errors.New("db error")).Once()

		_, err := svc.CancelStalePending(context.Background(), time.Hour)
		assert.Error(t, err)
	})
}
