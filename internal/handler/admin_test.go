package handler_test

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/handler"
	mocks "github.com/SergeyBogomolovv/storefront-checkout/internal/handler/mocks"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/middleware"
	mwMocks "github.com/SergeyBogomolovv/storefront-checkout/internal/middleware/mocks"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const testOrderID = "8d3c7f0a-2e55-4b1e-9a0c-6f1d2e3b4c5d"

var admin = entities.Principal{UserID: "admin-1", Email: "admin@shop.example", IsAdmin: true}

func newAdminRouter(t *testing.T) (chi.Router, *mocks.MockOrderAdmin, *mwMocks.MockAuthenticator) {
	svc := mocks.NewMockOrderAdmin(t)
	auth := mwMocks.NewMockAuthenticator(t)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewAdminHandler(logger, svc, middleware.RequireAdmin(logger, auth))

	r := chi.NewRouter()
	h.Init(r)
	return r, svc, auth
}

func adminRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer admin-token")
	return req
}

func TestAdminHandler_Guard(t *testing.T) {
	t.Run("unauthenticated", func(t *testing.T) {
		r, _, auth := newAdminRouter(t)
		auth.EXPECT().Authenticate(mock.Anything, "admin-token").Return(entities.Principal{}, errors.New("expired")).Once()

		status, _ := serve(r, adminRequest(http.MethodGet, "/admin/orders", ""))
		assert.Equal(t, http.StatusUnauthorized, status)
	})

	t.Run("not an admin", func(t *testing.T) {
		r, _, auth := newAdminRouter(t)
		auth.EXPECT().Authenticate(mock.Anything, "admin-token").
			Return(entities.Principal{UserID: "u1", Email: "jane@example.com"}, nil).Once()

		status, body := serve(r, adminRequest(http.MethodDelete, "/admin/orders/"+testOrderID, ""))
		assert.Equal(t, http.StatusForbidden, status)
		assert.Contains(t, body, `"forbidden"`)
	})
}

func TestAdminHandler_ListOrders(t *testing.T) {
	testCases := []struct {
		name         string
		query        string
		mockBehavior func(svc *mocks.MockOrderAdmin)
		wantStatus   int
		wantBody     string
	}{
		{
			name:  "success",
			query: "?status=shipped&search=jane&limit=10&offset=20",
			mockBehavior: func(svc *mocks.MockOrderAdmin) {
				svc.EXPECT().ListOrders(mock.Anything, entities.OrderFilter{
					DeliveryStatus: entities.DeliveryShipped,
					Search:         "jane",
					Limit:          10,
					Offset:         20,
				}).Return([]entities.Order{{
					ID:            testOrderID,
					Amount:        decimal.RequireFromString("25.5"),
					CustomerEmail: "jane@example.com",
				}}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"customer_email":"jane@example.com"`,
		},
		{
			name:  "empty list",
			query: "",
			mockBehavior: func(svc *mocks.MockOrderAdmin) {
				svc.EXPECT().ListOrders(mock.Anything, entities.OrderFilter{}).Return(nil, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name:         "bad limit",
			query:        "?limit=ten",
			mockBehavior: func(*mocks.MockOrderAdmin) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid limit"`,
		},
		{
			name:  "bad status",
			query: "?status=lost",
			mockBehavior: func(svc *mocks.MockOrderAdmin) {
				svc.EXPECT().ListOrders(mock.Anything, mock.Anything).Return(nil, entities.ErrInvalidDeliveryStatus).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"invalid delivery status"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, svc, auth := newAdminRouter(t)
			auth.EXPECT().Authenticate(mock.Anything, "admin-token").Return(admin, nil).Once()
			tc.mockBehavior(svc)

			status, body := serve(r, adminRequest(http.MethodGet, "/admin/orders"+tc.query, ""))
			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestAdminHandler_UpdateDeliveryStatus(t *testing.T) {
	testCases := []struct {
		name         string
		id           string
		body         string
		mockBehavior func(svc *mocks.MockOrderAdmin)
		wantStatus   int
	}{
		{
			name: "success",
			id:   testOrderID,
			body: `{"delivery_status":"delivered"}`,
			mockBehavior: func(svc *mocks.MockOrderAdmin) {
				svc.EXPECT().UpdateDeliveryStatus(mock.Anything, testOrderID, entities.DeliveryDelivered).Return(nil).Once()
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:         "unknown status",
			id:           testOrderID,
			body:         `{"delivery_status":"lost"}`,
			mockBehavior: func(*mocks.MockOrderAdmin) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:         "malformed id",
			id:           "42",
			body:         `{"delivery_status":"shipped"}`,
			mockBehavior: func(*mocks.MockOrderAdmin) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name: "not found",
			id:   testOrderID,
			body: `{"delivery_status":"shipped"}`,
			mockBehavior: func(svc *mocks.MockOrderAdmin) {
				svc.EXPECT().UpdateDeliveryStatus(mock.Anything, testOrderID, entities.DeliveryShipped).Return(entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "newer status already recorded",
			id:   testOrderID,
			body: `{"delivery_status":"shipped"}`,
			mockBehavior: func(svc *mocks.MockOrderAdmin) {
				svc.EXPECT().UpdateDeliveryStatus(mock.Anything, testOrderID, entities.DeliveryShipped).Return(entities.ErrStaleDeliveryStatus).Once()
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "internal error",
			id:   testOrderID,
			body: `{"delivery_status":"shipped"}`,
			mockBehavior: func(svc *mocks.MockOrderAdmin) {
				svc.EXPECT().UpdateDeliveryStatus(mock.Anything, testOrderID, entities.DeliveryShipped).Return(errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, svc, auth := newAdminRouter(t)
			auth.EXPECT().Authenticate(mock.Anything, "admin-token").Return(admin, nil).Once()
			tc.mockBehavior(svc)

			status, _ := serve(r, adminRequest(http.MethodPatch, "/admin/orders/"+tc.id+"/delivery-status", tc.body))
			assert.Equal(t, tc.wantStatus, status)
		})
	}
}

func TestAdminHandler_DeleteOrder(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r, svc, auth := newAdminRouter(t)
		auth.EXPECT().Authenticate(mock.Anything, "admin-token").Return(admin, nil).Once()
		svc.EXPECT().DeleteOrder(mock.Anything, testOrderID).Return(nil).Once()

		status, _ := serve(r, adminRequest(http.MethodDelete, "/admin/orders/"+testOrderID, ""))
		assert.Equal(t, http.StatusNoContent, status)
	})

	t.Run("not found", func(t *testing.T) {
		r, svc, auth := newAdminRouter(t)
		auth.EXPECT().Authenticate(mock.Anything, "admin-token").Return(admin, nil).Once()
		svc.EXPECT().DeleteOrder(mock.Anything, testOrderID).Return(entities.ErrOrderNotFound).Once()

		status, _ := serve(r, adminRequest(http.MethodDelete, "/admin/orders/"+testOrderID, ""))
		assert.Equal(t, http.StatusNotFound, status)
	})
}
