package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/shopspring/decimal"
)

type Authenticator interface {
	Authenticate(ctx context.Context, token string) (entities.Principal, error)
}

type CheckoutRepo interface {
	CreateOrder(ctx context.Context, o entities.Order) (entities.Order, error)
	SaveOrderItems(ctx context.Context, orderID string, items []entities.OrderItem) error
	AttachTracking(ctx context.Context, orderID string, u entities.TrackingUpdate) error
}

type PriceSource interface {
	Prices(ctx context.Context, productIDs []string) (map[string]decimal.Decimal, error)
}

type PaymentGateway interface {
	// ResolveCustomer returns the gateway customer for email, creating it if needed.
	ResolveCustomer(ctx context.Context, email, name string) (string, error)
	CreateSession(ctx context.Context, p entities.SessionParams) (entities.Session, error)
}

type Notifier interface {
	SendOrderConfirmation(ctx context.Context, c entities.Confirmation) error
}

type LogSink interface {
	AppendLog(ctx context.Context, e entities.LogEntry) error
}

type TrackingIssuer interface {
	Generate() string
}

type CheckoutConfig struct {
	Currency       string
	DeliveryWindow time.Duration
	VerifyPrices   bool
	PublicURL      string
}

type CheckoutDeps struct {
	Auth     Authenticator
	Repo     CheckoutRepo
	Prices   PriceSource
	Payments PaymentGateway
	Notifier Notifier
	Sink     LogSink
	Tracking TrackingIssuer
}

type checkoutService struct {
	logger *slog.Logger
	cfg    CheckoutConfig
	CheckoutDeps
}

func NewCheckoutService(logger *slog.Logger, cfg CheckoutConfig, deps CheckoutDeps) *checkoutService {
	return &checkoutService{
		logger:       logger.With(slog.String("service", "checkout")),
		cfg:          cfg,
		CheckoutDeps: deps,
	}
}

var hundred = decimal.NewFromInt(100)

// Checkout turns a cart snapshot into a pending order with a hosted payment
// session and a tracking number. Steps run strictly in order; the first
// fatal failure aborts the rest. Only the confirmation email may fail
// without failing the call.
func (s *checkoutService) Checkout(ctx context.Context, req entities.CheckoutRequest) (entities.CheckoutResult, error) {
	principal, err := s.Auth.Authenticate(ctx, req.Token)
	if err != nil {
		return s.fail(ctx, fmt.Errorf("%w: %w", entities.ErrUnauthenticated, err), nil)
	}
	if principal.Email == "" {
		return s.fail(ctx, entities.ErrUnauthenticated, map[string]any{"user_id": principal.UserID})
	}

	logCtx := map[string]any{"user_id": principal.UserID, "email": principal.Email}

	if err := validateCart(req.Items); err != nil {
		return s.fail(ctx, err, logCtx)
	}
	if err := validateAddress(req.Address); err != nil {
		return s.fail(ctx, err, logCtx)
	}
	if s.cfg.VerifyPrices {
		if err := s.verifyPrices(ctx, req.Items); err != nil {
			return s.fail(ctx, err, logCtx)
		}
	}

	customerID, err := s.Payments.ResolveCustomer(ctx, principal.Email, req.Address.Name)
	if err != nil {
		return s.fail(ctx, fmt.Errorf("%w: %w", entities.ErrCustomerResolution, err), logCtx)
	}

	order, err := s.Repo.CreateOrder(ctx, entities.Order{
		UserID:        principal.UserID,
		Amount:        CartTotal(req.Items),
		Currency:      s.cfg.Currency,
		Status:        entities.OrderStatusPending,
		CustomerName:  req.Address.Name,
		CustomerEmail: principal.Email,
		Shipping:      req.Address,
	})
	if err != nil {
		return s.fail(ctx, fmt.Errorf("%w: %w", entities.ErrOrderPersistence, err), logCtx)
	}
	logCtx["order_id"] = order.ID
	s.logger.InfoContext(ctx, "order created", slog.String("order_id", order.ID), slog.String("amount", order.Amount.StringFixed(2)))

	items := make([]entities.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, entities.OrderItem{ProductID: it.ProductID, Quantity: it.Quantity, UnitPrice: it.Price})
	}
	if err := s.Repo.SaveOrderItems(ctx, order.ID, items); err != nil {
		return s.fail(ctx, fmt.Errorf("%w: %w", entities.ErrOrderItemPersistence, err), logCtx)
	}

	origin := s.origin(req.Origin)
	session, err := s.Payments.CreateSession(ctx, entities.SessionParams{
		CustomerID: customerID,
		Currency:   s.cfg.Currency,
		LineItems:  LineItems(req.Items),
		SuccessURL: origin + "/checkout/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:  origin + "/checkout/cancel",
		Metadata: map[string]string{
			"order_id": order.ID,
			"user_id":  principal.UserID,
		},
		IdempotencyKey: "checkout-session-" + order.ID,
	})
	if err != nil {
		return s.fail(ctx, fmt.Errorf("%w: %w", entities.ErrPaymentSession, err), logCtx)
	}
	logCtx["session_id"] = session.ID

	update := entities.TrackingUpdate{
		SessionID:       session.ID,
		PaymentIntentID: session.PaymentIntentID,
		TrackingNumber:  s.Tracking.Generate(),
		EstimatedAt:     order.CreatedAt.Add(s.cfg.DeliveryWindow),
	}
	// Сессия уже создана: повтор здесь не делаем, трекинг чинится отдельно.
	if err := s.Repo.AttachTracking(ctx, order.ID, update); err != nil {
		logCtx["tracking_number"] = update.TrackingNumber
		return s.fail(ctx, fmt.Errorf("%w: %w", entities.ErrOrderUpdate, err), logCtx)
	}

	s.notify(ctx, entities.Confirmation{
		To:             principal.Email,
		CustomerName:   req.Address.Name,
		OrderID:        order.ID,
		TrackingNumber: update.TrackingNumber,
		TrackingURL:    origin + "/track?tracking=" + url.QueryEscape(update.TrackingNumber),
		EstimatedAt:    update.EstimatedAt,
		Amount:         order.Amount,
		Currency:       s.cfg.Currency,
		Items:          req.Items,
	})

	s.logger.InfoContext(ctx, "checkout completed",
		slog.String("order_id", order.ID),
		slog.String("session_id", session.ID),
		slog.String("tracking_number", update.TrackingNumber),
	)

	return entities.CheckoutResult{
		PaymentURL:     session.URL,
		OrderID:        order.ID,
		TrackingNumber: update.TrackingNumber,
	}, nil
}

// CartTotal sums unit price × quantity over the snapshot.
func CartTotal(items []entities.CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}

// LineItems converts the snapshot to payment lines priced in minor units.
func LineItems(items []entities.CartItem) []entities.LineItem {
	lines := make([]entities.LineItem, 0, len(items))
	for _, it := range items {
		lines = append(lines, entities.LineItem{
			Name:       it.Name,
			ImageURL:   it.ImageURL,
			UnitAmount: it.Price.Mul(hundred).Round(0).IntPart(),
			Quantity:   int64(it.Quantity),
		})
	}
	return lines
}

func validateCart(items []entities.CartItem) error {
	if len(items) == 0 {
		return entities.ErrEmptyCart
	}
	for i, it := range items {
		switch {
		case strings.TrimSpace(it.ProductID) == "":
			return fmt.Errorf("%w: item %d has no product id", entities.ErrInvalidCart, i)
		case strings.TrimSpace(it.Name) == "":
			return fmt.Errorf("%w: item %d has no name", entities.ErrInvalidCart, i)
		case it.Quantity <= 0:
			return fmt.Errorf("%w: item %d has non-positive quantity", entities.ErrInvalidCart, i)
		case it.Price.IsNegative():
			return fmt.Errorf("%w: item %d has negative price", entities.ErrInvalidCart, i)
		case !it.Price.Equal(it.Price.Truncate(2)):
			// в базе NUMERIC(10,2): лишние знаки разошлись бы с суммой в Stripe
			return fmt.Errorf("%w: item %d price %s has more than 2 decimal places", entities.ErrInvalidCart, i, it.Price)
		}
	}
	return nil
}

func validateAddress(a entities.ShippingAddress) error {
	required := []struct {
		name  string
		value string
	}{
		{"name", a.Name},
		{"line1", a.Line1},
		{"city", a.City},
		{"postalCode", a.PostalCode},
		{"country", a.Country},
	}

	var missing []string
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", entities.ErrInvalidAddress, strings.Join(missing, ", "))
	}
	return nil
}

func (s *checkoutService) verifyPrices(ctx context.Context, items []entities.CartItem) error {
	ids := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		if _, ok := seen[it.ProductID]; !ok {
			seen[it.ProductID] = struct{}{}
			ids = append(ids, it.ProductID)
		}
	}

	prices, err := s.Prices.Prices(ctx, ids)
	if err != nil {
		return fmt.Errorf("%w: %w", entities.ErrPriceLookup, err)
	}

	for _, it := range items {
		price, ok := prices[it.ProductID]
		if !ok {
			return fmt.Errorf("%w: product %s is not in the catalog", entities.ErrPriceMismatch, it.ProductID)
		}
		if !price.Equal(it.Price) {
			return fmt.Errorf("%w: product %s costs %s, cart has %s",
				entities.ErrPriceMismatch, it.ProductID, price.StringFixed(2), it.Price.StringFixed(2))
		}
	}
	return nil
}

func (s *checkoutService) origin(origin string) string {
	if origin == "" || origin == "null" {
		origin = s.cfg.PublicURL
	}
	return strings.TrimRight(origin, "/")
}

func (s *checkoutService) notify(ctx context.Context, c entities.Confirmation) {
	// письмо уходит и после обрыва соединения клиентом
	ctx = context.WithoutCancel(ctx)

	if err := s.Notifier.SendOrderConfirmation(ctx, c); err != nil {
		err = fmt.Errorf("%w: %w", entities.ErrNotification, err)
		s.logger.WarnContext(ctx, "confirmation email not sent", slog.String("order_id", c.OrderID), slog.Any("error", err))
		s.record(ctx, entities.LogEntry{
			Kind:    entities.ErrorKind(err),
			Message: err.Error(),
			Context: map[string]any{
				"order_id":        c.OrderID,
				"tracking_number": c.TrackingNumber,
				"email":           c.To,
			},
		})
	}
}

func (s *checkoutService) fail(ctx context.Context, err error, logCtx map[string]any) (entities.CheckoutResult, error) {
	kind := entities.ErrorKind(err)
	level := slog.LevelError
	if isClientError(err) {
		level = slog.LevelWarn
	}
	s.logger.Log(ctx, level, "checkout failed", slog.String("kind", kind), slog.Any("error", err))

	s.record(context.WithoutCancel(ctx), entities.LogEntry{Kind: kind, Message: err.Error(), Context: logCtx})
	return entities.CheckoutResult{}, err
}

// record appends to the durable log; its own failures are only reported to the process log.
func (s *checkoutService) record(ctx context.Context, e entities.LogEntry) {
	if err := s.Sink.AppendLog(ctx, e); err != nil {
		s.logger.ErrorContext(ctx, "failed to append checkout log", slog.String("kind", e.Kind), slog.Any("error", err))
	}
}

func isClientError(err error) bool {
	for _, target := range []error{
		entities.ErrUnauthenticated,
		entities.ErrEmptyCart,
		entities.ErrInvalidCart,
		entities.ErrInvalidAddress,
		entities.ErrPriceMismatch,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
