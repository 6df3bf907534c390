package entities

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidProduct = errors.New("invalid product")
	ErrInvalidReview  = errors.New("invalid review")
)

type Product struct {
	ID           string
	Name         string
	Description  string
	Price        decimal.Decimal
	ImageURL     string
	Stock        int
	OutOfStock   bool
	CategoryID   string
	CategoryName string
	CategorySlug string
	BrandID      string
	BrandName    string
	CreatedAt    time.Time

	Reviews []Review
}

// ProductInput is what an admin submits when creating or editing a product.
type ProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	ImageURL    string
	Stock       int
	OutOfStock  bool
	CategoryID  string
	BrandID     string
}

type ProductFilter struct {
	CategorySlug string
	BrandID      string
	InStockOnly  bool
	Limit        int
	Offset       int
}

type Review struct {
	ID        string
	ProductID string
	UserID    string
	Rating    int
	Comment   string
	CreatedAt time.Time
}

type Category struct {
	ID       string
	Name     string
	Slug     string
	ParentID string
}

type Brand struct {
	ID   string
	Name string
}

// StoreStats are the admin dashboard counters.
type StoreStats struct {
	Products int64
	Reviews  int64
	Orders   int64
}
