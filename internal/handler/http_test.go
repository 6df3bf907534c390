package handler_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/handler"
	mocks "github.com/SergeyBogomolovv/storefront-checkout/internal/handler/mocks"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type httpMocks struct {
	checkout *mocks.MockCheckouter
	orders   *mocks.MockOrderTracker
	products *mocks.MockProductGetter
}

func newHTTPRouter(t *testing.T) (chi.Router, httpMocks) {
	m := httpMocks{
		checkout: mocks.NewMockCheckouter(t),
		orders:   mocks.NewMockOrderTracker(t),
		products: mocks.NewMockProductGetter(t),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewHTTPHandler(logger, m.checkout, m.orders, m.products)

	r := chi.NewRouter()
	h.Init(r)
	return r, m
}

func serve(r http.Handler, req *http.Request) (int, string) {
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	res := rr.Result()
	defer res.Body.Close()
	body, _ := io.ReadAll(res.Body)
	return res.StatusCode, string(body)
}

const checkoutBody = `{
  "cartItems": [
    {"product_id": "p-a", "quantity": 2, "products": {"name": "A", "price": 10.00, "image_url": "https://img/a.png"}},
    {"product_id": "p-b", "quantity": 1, "products": {"name": "B", "price": "5.50"}}
  ],
  "shippingAddress": {"name": "Jane", "line1": "1 High St", "city": "London", "postalCode": "N1", "country": "GB"}
}`

func TestHTTPHandler_Checkout(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(m httpMocks)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: checkoutBody,
			mockBehavior: func(m httpMocks) {
				m.checkout.EXPECT().
					Checkout(mock.Anything, mock.MatchedBy(func(req entities.CheckoutRequest) bool {
						return req.Token == "tok" &&
							req.Origin == "https://shop.example" &&
							len(req.Items) == 2 &&
							req.Items[0].Name == "A" &&
							req.Items[0].Price.Equal(decimal.NewFromInt(10)) &&
							req.Items[1].Price.Equal(decimal.RequireFromString("5.5")) &&
							req.Address.PostalCode == "N1"
					})).
					Return(entities.CheckoutResult{PaymentURL: "https://pay/cs_1", OrderID: "order-1", TrackingNumber: "TRK12345678AB12"}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"trackingNumber":"TRK12345678AB12"`,
		},
		{
			name: "orchestrator failure is a 500 with the message",
			body: checkoutBody,
			mockBehavior: func(m httpMocks) {
				m.checkout.EXPECT().Checkout(mock.Anything, mock.Anything).
					Return(entities.CheckoutResult{}, fmt.Errorf("%w: missing city", entities.ErrInvalidAddress)).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"error":"invalid shipping address: missing city"`,
		},
		{
			name: "empty cart",
			body: `{"cartItems": [], "shippingAddress": {}}`,
			mockBehavior: func(m httpMocks) {
				m.checkout.EXPECT().Checkout(mock.Anything, mock.Anything).
					Return(entities.CheckoutResult{}, entities.ErrEmptyCart).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"error":"cart is empty"`,
		},
		{
			name:         "malformed body",
			body:         `{"cartItems": [`,
			mockBehavior: func(httpMocks) {},
			wantStatus:   http.StatusInternalServerError,
			wantBody:     `"error":"invalid request body`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, m := newHTTPRouter(t)
			tc.mockBehavior(m)

			req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(tc.body))
			req.Header.Set("Authorization", "Bearer tok")
			req.Header.Set("Origin", "https://shop.example")

			status, body := serve(r, req)
			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)

			if status == http.StatusOK {
				var resp map[string]string
				require.NoError(t, json.Unmarshal([]byte(body), &resp))
				assert.Equal(t, map[string]string{
					"url":            "https://pay/cs_1",
					"orderId":        "order-1",
					"trackingNumber": "TRK12345678AB12",
				}, resp)
			}
		})
	}
}

func TestHTTPHandler_TrackOrder(t *testing.T) {
	order := entities.Order{
		ID:             "order-1",
		Amount:         decimal.RequireFromString("25.5"),
		Status:         entities.OrderStatusPending,
		CustomerEmail:  "jane@example.com",
		TrackingNumber: "TRK12345678AB12",
		DeliveryStatus: entities.DeliveryProcessing,
	}

	testCases := []struct {
		name         string
		tracking     string
		mockBehavior func(m httpMocks)
		wantStatus   int
		wantBody     string
	}{
		{
			name:     "success",
			tracking: "TRK12345678AB12",
			mockBehavior: func(m httpMocks) {
				m.orders.EXPECT().TrackOrder(mock.Anything, "TRK12345678AB12").Return(order, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"delivery_status":"processing"`,
		},
		{
			name:     "not found",
			tracking: "TRK00000000AAAA",
			mockBehavior: func(m httpMocks) {
				m.orders.EXPECT().TrackOrder(mock.Anything, "TRK00000000AAAA").Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
		{
			name:         "invalid tracking number",
			tracking:     "TRK-1",
			mockBehavior: func(httpMocks) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid request"`,
		},
		{
			name:     "internal error",
			tracking: "TRK12345678AB12",
			mockBehavior: func(m httpMocks) {
				m.orders.EXPECT().TrackOrder(mock.Anything, "TRK12345678AB12").Return(entities.Order{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, m := newHTTPRouter(t)
			tc.mockBehavior(m)

			status, body := serve(r, httptest.NewRequest(http.MethodGet, "/orders/track/"+tc.tracking, nil))
			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
			assert.NotContains(t, body, "jane@example.com")
		})
	}
}

func TestHTTPHandler_GetProduct(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r, m := newHTTPRouter(t)
		m.products.EXPECT().GetProduct(mock.Anything, "p-1").
			Return(entities.Product{ID: "p-1", Name: "Scarf", Price: decimal.RequireFromString("24.9")}, nil).Once()

		status, body := serve(r, httptest.NewRequest(http.MethodGet, "/products/p-1", nil))
		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, `"price":"24.90"`)
		assert.Contains(t, body, `"reviews":[]`)
	})

	t.Run("not found", func(t *testing.T) {
		r, m := newHTTPRouter(t)
		m.products.EXPECT().GetProduct(mock.Anything, "p-404").Return(entities.Product{}, entities.ErrProductNotFound).Once()

		status, body := serve(r, httptest.NewRequest(http.MethodGet, "/products/p-404", nil))
		assert.Equal(t, http.StatusNotFound, status)
		assert.Contains(t, body, `"product not found"`)
	})
}
