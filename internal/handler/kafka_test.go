package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	mocks "github.com/SergeyBogomolovv/storefront-checkout/internal/handler/mocks"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeReader struct {
	messages  []kafka.Message
	committed []kafka.Message
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	if len(r.messages) == 0 {
		return kafka.Message{}, context.Canceled
	}
	m := r.messages[0]
	r.messages = r.messages[1:]
	return m, nil
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	r.committed = append(r.committed, msgs...)
	return nil
}

func (r *fakeReader) Close() error { return nil }

type fakeWriter struct {
	written []kafka.Message
	err     error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.written = append(w.written, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

func message(offset int64, value string) kafka.Message {
	return kafka.Message{Topic: "deliveries", Offset: offset, Key: []byte("TRK1"), Value: []byte(value)}
}

func TestKafkaHandler_Consume(t *testing.T) {
	occurred := time.Date(2025, 3, 9, 18, 0, 0, 0, time.UTC)

	testCases := []struct {
		name          string
		value         string
		dlqErr        error
		mockBehavior  func(u *mocks.MockDeliveryUpdater)
		wantDLQ       bool
		wantCommitted bool
	}{
		{
			name:  "applied",
			value: `{"tracking_number":"TRK1","status":"delivered","occurred_at":"2025-03-09T18:00:00Z"}`,
			mockBehavior: func(u *mocks.MockDeliveryUpdater) {
				u.EXPECT().HandleDeliveryEvent(mock.Anything, entities.DeliveryEvent{
					TrackingNumber: "TRK1",
					Status:         entities.DeliveryDelivered,
					OccurredAt:     occurred,
				}).Return(nil).Once()
			},
			wantCommitted: true,
		},
		{
			name:          "malformed json goes to DLQ",
			value:         `{"tracking_number":`,
			mockBehavior:  func(*mocks.MockDeliveryUpdater) {},
			wantDLQ:       true,
			wantCommitted: true,
		},
		{
			name:          "unknown status goes to DLQ",
			value:         `{"tracking_number":"TRK1","status":"lost"}`,
			mockBehavior:  func(*mocks.MockDeliveryUpdater) {},
			wantDLQ:       true,
			wantCommitted: true,
		},
		{
			name:  "unknown order goes to DLQ",
			value: `{"tracking_number":"TRK1","status":"shipped"}`,
			mockBehavior: func(u *mocks.MockDeliveryUpdater) {
				u.EXPECT().HandleDeliveryEvent(mock.Anything, mock.Anything).Return(entities.ErrOrderNotFound).Once()
			},
			wantDLQ:       true,
			wantCommitted: true,
		},
		{
			name:   "DLQ failure leaves message uncommitted",
			value:  `{"tracking_number":"TRK1","status":"shipped"}`,
			dlqErr: errors.New("broker down"),
			mockBehavior: func(u *mocks.MockDeliveryUpdater) {
				u.EXPECT().HandleDeliveryEvent(mock.Anything, mock.Anything).Return(errors.New("db down")).Once()
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			updater := mocks.NewMockDeliveryUpdater(t)
			tc.mockBehavior(updater)

			reader := &fakeReader{messages: []kafka.Message{message(7, tc.value)}}
			dlq := &fakeWriter{err: tc.dlqErr}

			h := newKafkaHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), reader, dlq, updater)
			h.Consume(context.Background())

			if tc.wantDLQ {
				require.Len(t, dlq.written, 1)
				assert.Equal(t, "deliveries-dlq", dlq.written[0].Topic)
				assert.Equal(t, tc.value, string(dlq.written[0].Value))
			} else {
				assert.Empty(t, dlq.written)
			}

			if tc.wantCommitted {
				require.Len(t, reader.committed, 1)
				assert.EqualValues(t, 7, reader.committed[0].Offset)
			} else {
				assert.Empty(t, reader.committed)
			}
		})
	}
}
