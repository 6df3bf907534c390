package repo

import (
	"database/sql"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/shopspring/decimal"
)

var orderColumns = []string{
	"id", "user_id", "amount", "currency", "status",
	"customer_name", "customer_email",
	"shipping_address_line1", "shipping_address_line2", "shipping_city",
	"shipping_postal_code", "shipping_country",
	"stripe_session_id", "stripe_payment_intent_id",
	"tracking_number", "delivery_status", "estimated_delivery_date",
	"delivered_at", "created_at",
}

type Order struct {
	ID              string          `db:"id"`
	UserID          string          `db:"user_id"`
	Amount          decimal.Decimal `db:"amount"`
	Currency        string          `db:"currency"`
	Status          string          `db:"status"`
	CustomerName    string          `db:"customer_name"`
	CustomerEmail   string          `db:"customer_email"`
	Line1           string          `db:"shipping_address_line1"`
	Line2           sql.NullString  `db:"shipping_address_line2"`
	City            string          `db:"shipping_city"`
	PostalCode      string          `db:"shipping_postal_code"`
	Country         string          `db:"shipping_country"`
	SessionID       sql.NullString  `db:"stripe_session_id"`
	PaymentIntentID sql.NullString  `db:"stripe_payment_intent_id"`
	TrackingNumber  sql.NullString  `db:"tracking_number"`
	DeliveryStatus  sql.NullString  `db:"delivery_status"`
	EstimatedAt     sql.NullTime    `db:"estimated_delivery_date"`
	DeliveredAt     sql.NullTime    `db:"delivered_at"`
	CreatedAt       time.Time       `db:"created_at"`
}

type OrderItem struct {
	OrderID   string          `db:"order_id"`
	ProductID string          `db:"product_id"`
	Quantity  int             `db:"quantity"`
	Price     decimal.Decimal `db:"price"`
}

type Product struct {
	ID           string          `db:"id"`
	Name         string          `db:"name"`
	Description  sql.NullString  `db:"description"`
	Price        decimal.Decimal `db:"price"`
	ImageURL     sql.NullString  `db:"image_url"`
	Stock        int             `db:"stock"`
	OutOfStock   bool            `db:"out_of_stock"`
	CategoryID   sql.NullString  `db:"category_id"`
	CategoryName sql.NullString  `db:"category_name"`
	CategorySlug sql.NullString  `db:"category_slug"`
	BrandID      sql.NullString  `db:"brand_id"`
	BrandName    sql.NullString  `db:"brand_name"`
	CreatedAt    time.Time       `db:"created_at"`
}

type Category struct {
	ID       string         `db:"id"`
	Name     string         `db:"name"`
	Slug     string         `db:"slug"`
	ParentID sql.NullString `db:"parent_id"`
}

type Brand struct {
	ID   string `db:"id"`
	Name string `db:"name"`
}

type Review struct {
	ID        string         `db:"id"`
	ProductID string         `db:"product_id"`
	UserID    string         `db:"user_id"`
	Rating    int            `db:"rating"`
	Comment   sql.NullString `db:"comment"`
	CreatedAt time.Time      `db:"created_at"`
}

func OrderItemToEntity(i OrderItem) entities.OrderItem {
	return entities.OrderItem{
		ProductID: i.ProductID,
		Quantity:  i.Quantity,
		UnitPrice: i.Price,
	}
}

func OrderToEntity(o Order, items []OrderItem) entities.Order {
	order := entities.Order{
		ID:            o.ID,
		UserID:        o.UserID,
		Amount:        o.Amount,
		Currency:      o.Currency,
		Status:        entities.OrderStatus(o.Status),
		CustomerName:  o.CustomerName,
		CustomerEmail: o.CustomerEmail,
		Shipping: entities.ShippingAddress{
			Name:       o.CustomerName,
			Line1:      o.Line1,
			Line2:      nullStringToString(o.Line2),
			City:       o.City,
			PostalCode: o.PostalCode,
			Country:    o.Country,
		},
		SessionID:       nullStringToString(o.SessionID),
		PaymentIntentID: nullStringToString(o.PaymentIntentID),
		TrackingNumber:  nullStringToString(o.TrackingNumber),
		DeliveryStatus:  entities.DeliveryStatus(nullStringToString(o.DeliveryStatus)),
		EstimatedAt:     nullTimeToTime(o.EstimatedAt),
		DeliveredAt:     nullTimeToTime(o.DeliveredAt),
		CreatedAt:       o.CreatedAt,
	}

	if len(items) > 0 {
		order.Items = make([]entities.OrderItem, 0, len(items))
		for _, it := range items {
			order.Items = append(order.Items, OrderItemToEntity(it))
		}
	}

	return order
}

func ReviewToEntity(r Review) entities.Review {
	return entities.Review{
		ID:        r.ID,
		ProductID: r.ProductID,
		UserID:    r.UserID,
		Rating:    r.Rating,
		Comment:   nullStringToString(r.Comment),
		CreatedAt: r.CreatedAt,
	}
}

func ProductToEntity(p Product, reviews []Review) entities.Product {
	product := entities.Product{
		ID:           p.ID,
		Name:         p.Name,
		Description:  nullStringToString(p.Description),
		Price:        p.Price,
		ImageURL:     nullStringToString(p.ImageURL),
		Stock:        p.Stock,
		OutOfStock:   p.OutOfStock,
		CategoryID:   nullStringToString(p.CategoryID),
		CategoryName: nullStringToString(p.CategoryName),
		CategorySlug: nullStringToString(p.CategorySlug),
		BrandID:      nullStringToString(p.BrandID),
		BrandName:    nullStringToString(p.BrandName),
		CreatedAt:    p.CreatedAt,
	}

	if len(reviews) > 0 {
		product.Reviews = make([]entities.Review, 0, len(reviews))
		for _, r := range reviews {
			product.Reviews = append(product.Reviews, ReviewToEntity(r))
		}
	}

	return product
}

func CategoryToEntity(c Category) entities.Category {
	return entities.Category{
		ID:       c.ID,
		Name:     c.Name,
		Slug:     c.Slug,
		ParentID: nullStringToString(c.ParentID),
	}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullTimeToTime(nt sql.NullTime) time.Time {
	if nt.Valid {
		return nt.Time
	}
	return time.Time{}
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullTime(t time.Time) sql.NullTime {
	if t.IsZero() {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t, Valid: true}
}
