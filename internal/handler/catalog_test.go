package handler_test

import (
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
	"github.com/SergeyBogomolovv/storefront-checkout/internal/middleware"
	mwMocks "github.com/SergeyBogomolovv/storefront-checkout/internal/middleware/mocks"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const testProductID = "5f0c6a1e-2b1d-4c39-9a4e-7d5f1c2b3a40"

var customer = entities.Principal{UserID: "0b6f3c1e-8a2d-4f1b-9c3e-5d7a9b1c2e30", Email: "jane@example.com"}

type catalogMocks struct {
	catalog *mocks.MockCatalog
	admin   *mocks.MockCatalogAdmin
	auth    *mwMocks.MockAuthenticator
}

func newCatalogRouter(t *testing.T) (chi.Router, catalogMocks) {
	m := catalogMocks{
		catalog: mocks.NewMockCatalog(t),
		admin:   mocks.NewMockCatalogAdmin(t),
		auth:    mwMocks.NewMockAuthenticator(t),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewCatalogHandler(logger, m.catalog, m.admin,
		middleware.RequireUser(logger, m.auth),
		middleware.RequireAdmin(logger, m.auth),
	)

	r := chi.NewRouter()
	h.Init(r)
	return r, m
}

func TestCatalogHandler_ListProducts(t *testing.T) {
	testCases := []struct {
		name         string
		query        string
		mockBehavior func(m catalogMocks)
		wantStatus   int
		wantBody     string
	}{
		{
			name:  "filters are passed to the catalog",
			query: "?category=accessories&brand=" + testProductID + "&in_stock=true&limit=10&offset=5",
			mockBehavior: func(m catalogMocks) {
				m.catalog.EXPECT().ListProducts(mock.Anything, entities.ProductFilter{
					CategorySlug: "accessories",
					BrandID:      testProductID,
					InStockOnly:  true,
					Limit:        10,
					Offset:       5,
				}).Return([]entities.Product{{
					ID:           testProductID,
					Name:         "Wool scarf",
					Price:        decimal.RequireFromString("24.9"),
					CategorySlug: "accessories",
				}}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"price":"24.90"`,
		},
		{
			name:  "empty catalog",
			query: "",
			mockBehavior: func(m catalogMocks) {
				m.catalog.EXPECT().ListProducts(mock.Anything, entities.ProductFilter{}).Return(nil, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name:         "bad in_stock",
			query:        "?in_stock=maybe",
			mockBehavior: func(catalogMocks) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid in_stock"`,
		},
		{
			name:         "bad offset",
			query:        "?offset=x",
			mockBehavior: func(catalogMocks) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid offset"`,
		},
		{
			name:  "store error",
			query: "",
			mockBehavior: func(m catalogMocks) {
				m.catalog.EXPECT().ListProducts(mock.Anything, mock.Anything).Return(nil, errors.New("db down")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, m := newCatalogRouter(t)
			tc.mockBehavior(m)

			status, body := serve(r, httptest.NewRequest(http.MethodGet, "/products"+tc.query, nil))
			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestCatalogHandler_CategoriesAndBrands(t *testing.T) {
	r, m := newCatalogRouter(t)
	m.catalog.EXPECT().ListCategories(mock.Anything).Return([]entities.Category{
		{ID: "c1", Name: "Accessories", Slug: "accessories"},
		{ID: "c2", Name: "Scarves", Slug: "scarves", ParentID: "c1"},
	}, nil).Once()
	m.catalog.EXPECT().ListBrands(mock.Anything).Return(nil, errors.New("db down")).Once()

	status, body := serve(r, httptest.NewRequest(http.MethodGet, "/categories", nil))
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"slug":"scarves","parent_id":"c1"`)

	status, _ = serve(r, httptest.NewRequest(http.MethodGet, "/brands", nil))
	assert.Equal(t, http.StatusInternalServerError, status)
}

func TestCatalogHandler_AddReview(t *testing.T) {
	testCases := []struct {
		name         string
		productID    string
		body         string
		mockBehavior func(m catalogMocks)
		wantStatus   int
		wantBody     string
	}{
		{
			name:      "created for the signed in user",
			productID: testProductID,
			body:      `{"rating":5,"comment":"warm"}`,
			mockBehavior: func(m catalogMocks) {
				m.auth.EXPECT().Authenticate(mock.Anything, "user-token").Return(customer, nil).Once()
				m.catalog.EXPECT().AddReview(mock.Anything, entities.Review{
					ProductID: testProductID,
					UserID:    customer.UserID,
					Rating:    5,
					Comment:   "warm",
				}).Return(entities.Review{ID: "r9", UserID: customer.UserID, Rating: 5, Comment: "warm"}, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"id":"r9"`,
		},
		{
			name:      "rating out of range",
			productID: testProductID,
			body:      `{"rating":9}`,
			mockBehavior: func(m catalogMocks) {
				m.auth.EXPECT().Authenticate(mock.Anything, "user-token").Return(customer, nil).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"Rating":"max"`,
		},
		{
			name:      "unknown product",
			productID: testProductID,
			body:      `{"rating":3}`,
			mockBehavior: func(m catalogMocks) {
				m.auth.EXPECT().Authenticate(mock.Anything, "user-token").Return(customer, nil).Once()
				m.catalog.EXPECT().AddReview(mock.Anything, mock.Anything).Return(entities.Review{}, entities.ErrProductNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"product not found"`,
		},
		{
			name:      "malformed product id",
			productID: "42",
			body:      `{"rating":3}`,
			mockBehavior: func(m catalogMocks) {
				m.auth.EXPECT().Authenticate(mock.Anything, "user-token").Return(customer, nil).Once()
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:      "anonymous",
			productID: testProductID,
			body:      `{"rating":3}`,
			mockBehavior: func(m catalogMocks) {
				m.auth.EXPECT().Authenticate(mock.Anything, "user-token").Return(entities.Principal{}, errors.New("expired")).Once()
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, m := newCatalogRouter(t)
			tc.mockBehavior(m)

			req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/products/%s/reviews", tc.productID), strings.NewReader(tc.body))
			req.Header.Set("Authorization", "Bearer user-token")

			status, body := serve(r, req)
			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestCatalogHandler_AdminProducts(t *testing.T) {
	const productBody = `{"name":"Wool scarf","price":"24.99","stock":12,"category_id":"` + testProductID + `"}`
	matchesBody := mock.MatchedBy(func(in entities.ProductInput) bool {
		return in.Name == "Wool scarf" && in.Price.Equal(decimal.RequireFromString("24.99")) && in.Stock == 12 && in.CategoryID == testProductID
	})

	testCases := []struct {
		name         string
		method       string
		target       string
		body         string
		mockBehavior func(m catalogMocks)
		wantStatus   int
		wantBody     string
	}{
		{
			name:   "create",
			method: http.MethodPost,
			target: "/admin/products",
			body:   productBody,
			mockBehavior: func(m catalogMocks) {
				m.admin.EXPECT().CreateProduct(mock.Anything, matchesBody).
					Return(entities.Product{ID: testProductID, Name: "Wool scarf", Price: decimal.RequireFromString("24.99")}, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"id":"` + testProductID + `"`,
		},
		{
			name:         "create without name",
			method:       http.MethodPost,
			target:       "/admin/products",
			body:         `{"price":"1.00"}`,
			mockBehavior: func(catalogMocks) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"Name":"required"`,
		},
		{
			name:   "create with unknown brand",
			method: http.MethodPost,
			target: "/admin/products",
			body:   productBody,
			mockBehavior: func(m catalogMocks) {
				m.admin.EXPECT().CreateProduct(mock.Anything, mock.Anything).
					Return(entities.Product{}, fmt.Errorf("%w: unknown category or brand", entities.ErrInvalidProduct)).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `unknown category or brand`,
		},
		{
			name:   "update",
			method: http.MethodPut,
			target: "/admin/products/" + testProductID,
			body:   productBody,
			mockBehavior: func(m catalogMocks) {
				m.admin.EXPECT().UpdateProduct(mock.Anything, testProductID, matchesBody).
					Return(entities.Product{ID: testProductID, Name: "Wool scarf"}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"name":"Wool scarf"`,
		},
		{
			name:   "update missing product",
			method: http.MethodPut,
			target: "/admin/products/" + testProductID,
			body:   productBody,
			mockBehavior: func(m catalogMocks) {
				m.admin.EXPECT().UpdateProduct(mock.Anything, testProductID, mock.Anything).
					Return(entities.Product{}, entities.ErrProductNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "delete",
			method: http.MethodDelete,
			target: "/admin/products/" + testProductID,
			mockBehavior: func(m catalogMocks) {
				m.admin.EXPECT().DeleteProduct(mock.Anything, testProductID).Return(nil).Once()
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:         "delete malformed id",
			method:       http.MethodDelete,
			target:       "/admin/products/42",
			mockBehavior: func(catalogMocks) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:   "stats",
			method: http.MethodGet,
			target: "/admin/stats",
			mockBehavior: func(m catalogMocks) {
				m.admin.EXPECT().Stats(mock.Anything).Return(entities.StoreStats{Products: 12, Reviews: 30, Orders: 7}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"products":12,"reviews":30,"orders":7}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, m := newCatalogRouter(t)
			m.auth.EXPECT().Authenticate(mock.Anything, "admin-token").Return(admin, nil).Once()
			tc.mockBehavior(m)

			status, body := serve(r, adminRequest(tc.method, tc.target, tc.body))
			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}

	t.Run("customer cannot manage products", func(t *testing.T) {
		r, m := newCatalogRouter(t)
		m.auth.EXPECT().Authenticate(mock.Anything, "admin-token").Return(customer, nil).Once()

		status, _ := serve(r, adminRequest(http.MethodDelete, "/admin/products/"+testProductID, ""))
		assert.Equal(t, http.StatusForbidden, status)
	})
}
