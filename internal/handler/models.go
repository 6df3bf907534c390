package handler

import (
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/shopspring/decimal"
)

// CheckoutRequest тело запроса на оформление заказа
type CheckoutRequest struct {
	CartItems       []CartItem      `json:"cartItems"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
}

// CartItem позиция корзины
type CartItem struct {
	ProductID string      `json:"product_id"`
	Quantity  int         `json:"quantity"`
	Product   CartProduct `json:"products"`
}

// CartProduct снимок товара на момент оформления
type CartProduct struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price" swaggertype:"string" example:"10.00"`
	ImageURL string          `json:"image_url,omitempty"`
}

// ShippingAddress адрес доставки
type ShippingAddress struct {
	Name       string `json:"name"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// CheckoutResponse ссылка на оплату и данные созданного заказа
type CheckoutResponse struct {
	URL            string `json:"url"`
	OrderID        string `json:"orderId"`
	TrackingNumber string `json:"trackingNumber"`
}

// Order заказ
type Order struct {
	ID             string          `json:"id"`
	Amount         string          `json:"amount" example:"25.50"`
	Currency       string          `json:"currency"`
	Status         string          `json:"status"`
	CustomerName   string          `json:"customer_name"`
	CustomerEmail  string          `json:"customer_email,omitempty"`
	Shipping       ShippingAddress `json:"shipping_address"`
	TrackingNumber string          `json:"tracking_number,omitempty"`
	DeliveryStatus string          `json:"delivery_status,omitempty"`
	EstimatedAt    *time.Time      `json:"estimated_delivery,omitempty"`
	DeliveredAt    *time.Time      `json:"delivered_at,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	Items          []OrderItem     `json:"items,omitempty"`
}

// OrderItem позиция заказа
type OrderItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price" example:"10.00"`
}

// Product товар каталога
type Product struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	Price        string    `json:"price" example:"24.99"`
	ImageURL     string    `json:"image_url,omitempty"`
	Stock        int       `json:"stock"`
	OutOfStock   bool      `json:"out_of_stock"`
	CategoryID   string    `json:"category_id,omitempty"`
	Category     string    `json:"category,omitempty"`
	CategorySlug string    `json:"category_slug,omitempty"`
	BrandID      string    `json:"brand_id,omitempty"`
	Brand        string    `json:"brand,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	Reviews      []Review  `json:"reviews"`
}

// ProductRequest товар, создаваемый или изменяемый администратором
type ProductRequest struct {
	Name        string          `json:"name" validate:"required,max=200"`
	Description string          `json:"description" validate:"max=5000"`
	Price       decimal.Decimal `json:"price" swaggertype:"string" example:"24.99"`
	ImageURL    string          `json:"image_url" validate:"omitempty,url"`
	Stock       int             `json:"stock" validate:"min=0"`
	OutOfStock  bool            `json:"out_of_stock"`
	CategoryID  string          `json:"category_id" validate:"omitempty,uuid"`
	BrandID     string          `json:"brand_id" validate:"omitempty,uuid"`
}

// ReviewRequest новый отзыв
type ReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"max=2000"`
}

// Category категория каталога
type Category struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	ParentID string `json:"parent_id,omitempty"`
}

// Brand бренд
type Brand struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// StoreStats счётчики для панели администратора
type StoreStats struct {
	Products int64 `json:"products"`
	Reviews  int64 `json:"reviews"`
	Orders   int64 `json:"orders"`
}

// Review отзыв о товаре
type Review struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// DeliveryStatusRequest новый статус доставки
type DeliveryStatusRequest struct {
	DeliveryStatus string `json:"delivery_status" validate:"required,oneof=processing shipped delivered cancelled"`
}

// DeliveryEvent событие курьерской службы
type DeliveryEvent struct {
	TrackingNumber string    `json:"tracking_number" validate:"required"`
	Status         string    `json:"status" validate:"required,oneof=processing shipped delivered cancelled"`
	OccurredAt     time.Time `json:"occurred_at"`
}

func CheckoutJSONToEntity(req CheckoutRequest, token, origin string) entities.CheckoutRequest {
	items := make([]entities.CartItem, 0, len(req.CartItems))
	for _, it := range req.CartItems {
		items = append(items, entities.CartItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Name:      it.Product.Name,
			Price:     it.Product.Price,
			ImageURL:  it.Product.ImageURL,
		})
	}

	return entities.CheckoutRequest{
		Token:   token,
		Items:   items,
		Address: AddressJSONToEntity(req.ShippingAddress),
		Origin:  origin,
	}
}

func AddressJSONToEntity(a ShippingAddress) entities.ShippingAddress {
	return entities.ShippingAddress{
		Name:       a.Name,
		Line1:      a.Line1,
		Line2:      a.Line2,
		City:       a.City,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}
}

func AddressEntityToJSON(a entities.ShippingAddress) ShippingAddress {
	return ShippingAddress{
		Name:       a.Name,
		Line1:      a.Line1,
		Line2:      a.Line2,
		City:       a.City,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// OrderEntityToJSON конвертирует заказ; email скрыт, если withEmail == false.
func OrderEntityToJSON(o entities.Order, withEmail bool) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice.StringFixed(2),
		})
	}

	res := Order{
		ID:             o.ID,
		Amount:         o.Amount.StringFixed(2),
		Currency:       o.Currency,
		Status:         string(o.Status),
		CustomerName:   o.CustomerName,
		Shipping:       AddressEntityToJSON(o.Shipping),
		TrackingNumber: o.TrackingNumber,
		DeliveryStatus: string(o.DeliveryStatus),
		EstimatedAt:    optionalTime(o.EstimatedAt),
		DeliveredAt:    optionalTime(o.DeliveredAt),
		CreatedAt:      o.CreatedAt,
		Items:          items,
	}
	if withEmail {
		res.CustomerEmail = o.CustomerEmail
	}
	return res
}

func ProductEntityToJSON(p entities.Product) Product {
	reviews := make([]Review, 0, len(p.Reviews))
	for _, r := range p.Reviews {
		reviews = append(reviews, ReviewEntityToJSON(r))
	}

	return Product{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price.StringFixed(2),
		ImageURL:     p.ImageURL,
		Stock:        p.Stock,
		OutOfStock:   p.OutOfStock,
		CategoryID:   p.CategoryID,
		Category:     p.CategoryName,
		CategorySlug: p.CategorySlug,
		BrandID:      p.BrandID,
		Brand:        p.BrandName,
		CreatedAt:    p.CreatedAt,
		Reviews:      reviews,
	}
}

func ReviewEntityToJSON(r entities.Review) Review {
	return Review{
		ID:        r.ID,
		UserID:    r.UserID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}

func ProductJSONToEntity(p ProductRequest) entities.ProductInput {
	return entities.ProductInput{
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		ImageURL:    p.ImageURL,
		Stock:       p.Stock,
		OutOfStock:  p.OutOfStock,
		CategoryID:  p.CategoryID,
		BrandID:     p.BrandID,
	}
}

func DeliveryEventJSONToEntity(e DeliveryEvent) entities.DeliveryEvent {
	return entities.DeliveryEvent{
		TrackingNumber: e.TrackingNumber,
		Status:         entities.DeliveryStatus(e.Status),
		OccurredAt:     e.OccurredAt,
	}
}
