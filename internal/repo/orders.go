package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

func (r *postgresRepo) CreateOrder(ctx context.Context, o entities.Order) (entities.Order, error) {
	query, args := r.qb.Insert("orders").
		Columns(
			"user_id", "amount", "currency", "status",
			"customer_name", "customer_email",
			"shipping_address_line1", "shipping_address_line2", "shipping_city",
			"shipping_postal_code", "shipping_country",
		).
		Values(
			o.UserID, o.Amount, o.Currency, string(o.Status),
			o.CustomerName, o.CustomerEmail,
			o.Shipping.Line1, nullString(o.Shipping.Line2), o.Shipping.City,
			o.Shipping.PostalCode, o.Shipping.Country,
		).
		Suffix("RETURNING id, created_at").
		MustSql()

	var created struct {
		ID        string    `db:"id"`
		CreatedAt time.Time `db:"created_at"`
	}
	if err := r.getContext(ctx, &created, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to insert order: %w", err)
	}

	o.ID = created.ID
	o.CreatedAt = created.CreatedAt
	return o, nil
}

func (r *postgresRepo) SaveOrderItems(ctx context.Context, orderID string, items []entities.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").
		Columns("order_id", "product_id", "quantity", "price")

	for _, it := range items {
		q = q.Values(orderID, it.ProductID, it.Quantity, it.UnitPrice)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert order items: %w", err)
	}
	return nil
}

func (r *postgresRepo) AttachTracking(ctx context.Context, orderID string, u entities.TrackingUpdate) error {
	query, args := r.qb.Update("orders").
		Set("stripe_session_id", nullString(u.SessionID)).
		Set("stripe_payment_intent_id", nullString(u.PaymentIntentID)).
		Set("tracking_number", u.TrackingNumber).
		Set("estimated_delivery_date", u.EstimatedAt).
		Set("delivery_status", string(entities.DeliveryProcessing)).
		Set("delivery_status_at", sq.Expr("now()")).
		Where(sq.Eq{"id": orderID}).
		MustSql()

	return r.execAffectingOrder(ctx, query, args...)
}

// UpdateDeliveryStatus sets status as of changedAt. A change older than the
// stored one is rejected with ErrStaleDeliveryStatus.
func (r *postgresRepo) UpdateDeliveryStatus(ctx context.Context, orderID string, status entities.DeliveryStatus, changedAt time.Time) error {
	var deliveredAt time.Time
	if status == entities.DeliveryDelivered {
		deliveredAt = changedAt
	}

	query, args := r.qb.Update("orders").
		Set("delivery_status", string(status)).
		Set("delivery_status_at", changedAt).
		Set("delivered_at", nullTime(deliveredAt)).
		Where(sq.Eq{"id": orderID}).
		Where(sq.Or{
			sq.Eq{"delivery_status_at": nil},
			sq.LtOrEq{"delivery_status_at": changedAt},
		}).
		MustSql()

	err := r.execAffectingOrder(ctx, query, args...)
	if !errors.Is(err, entities.ErrOrderNotFound) {
		return err
	}

	query, args = r.qb.Select("1").From("orders").Where(sq.Eq{"id": orderID}).MustSql()
	var exists int
	switch err := r.getContext(ctx, &exists, query, args...); {
	case errors.Is(err, sql.ErrNoRows):
		return entities.ErrOrderNotFound
	case err != nil:
		return fmt.Errorf("failed to get order: %w", err)
	}
	return entities.ErrStaleDeliveryStatus
}

func (r *postgresRepo) DeleteOrder(ctx context.Context, orderID string) error {
	query, args := r.qb.Delete("order_items").
		Where(sq.Eq{"order_id": orderID}).
		MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete order items: %w", err)
	}

	query, args = r.qb.Delete("orders").
		Where(sq.Eq{"id": orderID}).
		MustSql()
	return r.execAffectingOrder(ctx, query, args...)
}

// CancelStalePending cancels pending orders that never got a tracking number.
func (r *postgresRepo) CancelStalePending(ctx context.Context, createdBefore time.Time) (int64, error) {
	query, args := r.qb.Update("orders").
		Set("status", string(entities.OrderStatusCancelled)).
		Where(sq.Eq{"status": string(entities.OrderStatusPending)}).
		Where(sq.Eq{"tracking_number": nil}).
		Where(sq.Lt{"created_at": createdBefore}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to cancel stale orders: %w", err)
	}
	return res.RowsAffected()
}

func (r *postgresRepo) OrderByTracking(ctx context.Context, trackingNumber string) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"tracking_number": trackingNumber}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	query, args = r.qb.Select("order_id", "product_id", "quantity", "price").
		From("order_items").
		Where(sq.Eq{"order_id": order.ID}).
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order items: %w", err)
	}

	return OrderToEntity(order, items), nil
}

func (r *postgresRepo) ListOrders(ctx context.Context, f entities.OrderFilter) ([]entities.Order, error) {
	q := r.qb.Select(orderColumns...).
		From("orders").
		OrderBy("created_at DESC")

	if f.DeliveryStatus != "" {
		q = q.Where(sq.Eq{"delivery_status": string(f.DeliveryStatus)})
	}
	if f.Search != "" {
		pattern := "%" + escapeLike(f.Search) + "%"
		q = q.Where(sq.Or{
			sq.ILike{"customer_name": pattern},
			sq.ILike{"customer_email": pattern},
			sq.ILike{"tracking_number": pattern},
		})
	}
	if f.Limit > 0 {
		q = q.Limit(uint64(f.Limit))
	}
	if f.Offset > 0 {
		q = q.Offset(uint64(f.Offset))
	}

	query, args := q.MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]string, len(orders))
	for i, order := range orders {
		ids[i] = order.ID
	}

	// Товары всех заказов одним запросом
	query, args = r.qb.Select("order_id", "product_id", "quantity", "price").
		From("order_items").
		Where(sq.Eq{"order_id": ids}).
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select order items: %w", err)
	}
	itemsMap := make(map[string][]OrderItem, len(ids))
	for _, item := range items {
		itemsMap[item.OrderID] = append(itemsMap[item.OrderID], item)
	}

	result := make([]entities.Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, OrderToEntity(order, itemsMap[order.ID]))
	}

	return result, nil
}

func (r *postgresRepo) execAffectingOrder(ctx context.Context, query string, args ...any) error {
	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if n == 0 {
		return entities.ErrOrderNotFound
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s match literally inside a LIKE pattern (backslash is the default escape).
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
