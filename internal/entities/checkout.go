package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem is one line of the client-submitted cart snapshot.
type CartItem struct {
	ProductID string
	Quantity  int
	Name      string
	Price     decimal.Decimal
	ImageURL  string
}

type CheckoutRequest struct {
	Token   string
	Items   []CartItem
	Address ShippingAddress
	Origin  string
}

type CheckoutResult struct {
	PaymentURL     string
	OrderID        string
	TrackingNumber string
}

// LineItem is a payment session line priced in minor currency units.
type LineItem struct {
	Name       string
	ImageURL   string
	UnitAmount int64
	Quantity   int64
}

type SessionParams struct {
	CustomerID string
	Currency   string
	LineItems  []LineItem
	SuccessURL string
	CancelURL  string
	Metadata   map[string]string

	IdempotencyKey string
}

type Session struct {
	ID              string
	URL             string
	PaymentIntentID string
}

// Confirmation is the content of the order confirmation email.
type Confirmation struct {
	To             string
	CustomerName   string
	OrderID        string
	TrackingNumber string
	TrackingURL    string
	EstimatedAt    time.Time
	Amount         decimal.Decimal
	Currency       string
	Items          []CartItem
}

// LogEntry is a durable side-channel record used for diagnostics and alerting.
type LogEntry struct {
	Kind    string
	Message string
	Context map[string]any
}
