package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/config"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
)

type DeliveryUpdater interface {
	HandleDeliveryEvent(ctx context.Context, ev entities.DeliveryEvent) error
}

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaHandler struct {
	dlq      messageWriter
	reader   messageReader
	logger   *slog.Logger
	validate *validator.Validate
	updater  DeliveryUpdater
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, updater DeliveryUpdater) *kafkaHandler {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: cfg.Brokers,
		GroupID: cfg.GroupID,
		Topic:   cfg.Topic,
		MaxWait: cfg.ReaderMaxWait,
	})
	dlq := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Balancer:               &kafka.LeastBytes{},
		BatchTimeout:           cfg.BatchTimeout,
		AllowAutoTopicCreation: true,
	}
	return newKafkaHandler(logger, reader, dlq, updater)
}

func newKafkaHandler(logger *slog.Logger, reader messageReader, dlq messageWriter, updater DeliveryUpdater) *kafkaHandler {
	return &kafkaHandler{
		logger:   logger.With(slog.String("handler", "kafka")),
		reader:   reader,
		dlq:      dlq,
		validate: validator.New(),
		updater:  updater,
	}
}

func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		deliveryEventsInProgress.Inc()
		start := time.Now()

		// В обработке события уже есть retry
		if err := h.handleDeliveryEvent(ctx, m); err != nil {
			deliveryEventsFailed.Inc()
			h.logger.Error("failed to handle delivery event", slog.Any("error", err), slog.Int64("offset", m.Offset))

			if err := h.WriteToDLQ(ctx, m); err != nil {
				h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
				deliveryEventsInProgress.Dec()
				continue
			}
			deliveryEventsDLQ.Inc()
		} else {
			deliveryEventsProcessed.Inc()
		}

		deliveryEventDuration.Observe(time.Since(start).Seconds())
		deliveryEventsInProgress.Dec()

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			commitErrors.Inc()
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

func (h *kafkaHandler) handleDeliveryEvent(ctx context.Context, m kafka.Message) error {
	var ev DeliveryEvent
	if err := json.Unmarshal(m.Value, &ev); err != nil {
		return fmt.Errorf("failed to unmarshal delivery event: %w", err)
	}

	if err := h.validate.Struct(ev); err != nil {
		return fmt.Errorf("invalid delivery event: %w", err)
	}

	return h.updater.HandleDeliveryEvent(ctx, DeliveryEventJSONToEntity(ev))
}

func (h *kafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	return h.dlq.WriteMessages(ctx, kafka.Message{
		Topic:   fmt.Sprintf("%s-dlq", m.Topic),
		Key:     m.Key,
		Value:   m.Value,
		Headers: m.Headers,
	})
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
