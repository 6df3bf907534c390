package entities

import (
	"bytes"
	"encoding/gob"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusCancelled OrderStatus = "cancelled"
)

type DeliveryStatus string

const (
	DeliveryProcessing DeliveryStatus = "processing"
	DeliveryShipped    DeliveryStatus = "shipped"
	DeliveryDelivered  DeliveryStatus = "delivered"
	DeliveryCancelled  DeliveryStatus = "cancelled"
)

func (s DeliveryStatus) Valid() bool {
	switch s {
	case DeliveryProcessing, DeliveryShipped, DeliveryDelivered, DeliveryCancelled:
		return true
	}
	return false
}

type ShippingAddress struct {
	Name       string
	Line1      string
	Line2      string
	City       string
	PostalCode string
	Country    string
}

type OrderItem struct {
	ProductID string
	Quantity  int
	// цена фиксируется в момент заказа и дальше не меняется
	UnitPrice decimal.Decimal
}

type Order struct {
	ID              string
	UserID          string
	Amount          decimal.Decimal
	Currency        string
	Status          OrderStatus
	CustomerName    string
	CustomerEmail   string
	Shipping        ShippingAddress
	SessionID       string
	PaymentIntentID string
	TrackingNumber  string
	DeliveryStatus  DeliveryStatus
	EstimatedAt     time.Time
	DeliveredAt     time.Time
	CreatedAt       time.Time

	Items []OrderItem
}

// TrackingUpdate is applied to an order once its payment session exists.
type TrackingUpdate struct {
	SessionID       string
	PaymentIntentID string
	TrackingNumber  string
	EstimatedAt     time.Time
}

type OrderFilter struct {
	DeliveryStatus DeliveryStatus
	Search         string
	Limit          int
	Offset         int
}

type DeliveryEvent struct {
	TrackingNumber string
	Status         DeliveryStatus
	OccurredAt     time.Time
}

type Principal struct {
	UserID  string
	Email   string
	IsAdmin bool
}

func (p *Product) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (p *Product) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	return dec.Decode(p)
}

func init() {
	gob.Register(Product{})
	gob.Register(Review{})
}
