//go:build integration

package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/config"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/postgres"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/repo"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/trm"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgContainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

type RepoSuite struct {
	suite.Suite
	ctx       context.Context
	container *pgContainer.PostgresContainer
	db        *sqlx.DB
	repo      interface {
		CreateOrder(ctx context.Context, o entities.Order) (entities.Order, error)
		SaveOrderItems(ctx context.Context, orderID string, items []entities.OrderItem) error
		AttachTracking(ctx context.Context, orderID string, u entities.TrackingUpdate) error
		UpdateDeliveryStatus(ctx context.Context, orderID string, status entities.DeliveryStatus, changedAt time.Time) error
		DeleteOrder(ctx context.Context, orderID string) error
		CancelStalePending(ctx context.Context, createdBefore time.Time) (int64, error)
		OrderByTracking(ctx context.Context, trackingNumber string) (entities.Order, error)
		ListOrders(ctx context.Context, f entities.OrderFilter) ([]entities.Order, error)
		ProductByID(ctx context.Context, id string) (entities.Product, error)
		LatestProducts(ctx context.Context, count int) ([]entities.Product, error)
		ProductPrices(ctx context.Context, ids []string) (map[string]decimal.Decimal, error)
		ListProducts(ctx context.Context, f entities.ProductFilter) ([]entities.Product, error)
		Categories(ctx context.Context) ([]entities.Category, error)
		Brands(ctx context.Context) ([]entities.Brand, error)
		CreateReview(ctx context.Context, rv entities.Review) (entities.Review, error)
		CreateProduct(ctx context.Context, in entities.ProductInput) (string, error)
		UpdateProduct(ctx context.Context, id string, in entities.ProductInput) error
		DeleteProduct(ctx context.Context, id string) error
		StoreStats(ctx context.Context) (entities.StoreStats, error)
		AppendLog(ctx context.Context, e entities.LogEntry) error
	}
	txManager trm.Manager
}

func TestRepoSuite(t *testing.T) {
	suite.Run(t, new(RepoSuite))
}

func (s *RepoSuite) SetupSuite() {
	s.ctx = context.Background()

	var err error
	s.container, err = pgContainer.Run(
		s.ctx,
		"postgres:17-alpine",
		pgContainer.WithDatabase("storefront"),
		pgContainer.WithUsername("test_user"),
		pgContainer.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)

	host, err := s.container.Host(s.ctx)
	s.Require().NoError(err)
	port, err := s.container.MappedPort(s.ctx, "5432/tcp")
	s.Require().NoError(err)

	cfg := config.Postgres{
		Host:           host,
		Port:           port.Int(),
		DBName:         "storefront",
		User:           "test_user",
		Password:       "test_password",
		SSLMode:        "disable",
		MigrationsPath: "../../migrations",
	}
	s.Require().NoError(postgres.Migrate(cfg))

	s.db, err = postgres.New(cfg)
	s.Require().NoError(err)

	s.repo = repo.NewPostgresRepo(s.db)
	s.txManager = trm.NewManager(s.db)
}

func (s *RepoSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		s.Require().NoError(s.container.Terminate(s.ctx))
	}
}

func (s *RepoSuite) SetupTest() {
	_, err := s.db.Exec(`TRUNCATE order_items, orders, reviews, products, categories, brands, checkout_logs`)
	s.Require().NoError(err)
}

func (s *RepoSuite) newOrder(name string) entities.Order {
	order, err := s.repo.CreateOrder(s.ctx, entities.Order{
		UserID:        uuid.NewString(),
		Amount:        decimal.RequireFromString("25.50"),
		Currency:      "gbp",
		Status:        entities.OrderStatusPending,
		CustomerName:  name,
		CustomerEmail: "jane@example.com",
		Shipping: entities.ShippingAddress{
			Name:       name,
			Line1:      "1 High Street",
			City:       "London",
			PostalCode: "N1 9GU",
			Country:    "GB",
		},
	})
	s.Require().NoError(err)
	return order
}

func (s *RepoSuite) TestCheckoutLifecycle() {
	order := s.newOrder("Jane Doe")
	s.NotEmpty(order.ID)
	s.False(order.CreatedAt.IsZero())

	productA, productB := uuid.NewString(), uuid.NewString()
	s.Require().NoError(s.repo.SaveOrderItems(s.ctx, order.ID, []entities.OrderItem{
		{ProductID: productA, Quantity: 2, UnitPrice: decimal.RequireFromString("10.00")},
		{ProductID: productB, Quantity: 1, UnitPrice: decimal.RequireFromString("5.50")},
	}))

	estimated := order.CreatedAt.Add(10 * 24 * time.Hour)
	s.Require().NoError(s.repo.AttachTracking(s.ctx, order.ID, entities.TrackingUpdate{
		SessionID:      "cs_test_1",
		TrackingNumber: "TRK12345678AB12",
		EstimatedAt:    estimated,
	}))

	got, err := s.repo.OrderByTracking(s.ctx, "TRK12345678AB12")
	s.Require().NoError(err)
	s.Equal(order.ID, got.ID)
	s.Equal(entities.DeliveryProcessing, got.DeliveryStatus)
	s.Equal(entities.OrderStatusPending, got.Status)
	s.Equal("cs_test_1", got.SessionID)
	s.Empty(got.PaymentIntentID)
	s.True(got.Amount.Equal(decimal.RequireFromString("25.5")))
	s.WithinDuration(estimated, got.EstimatedAt, time.Millisecond)
	s.True(got.DeliveredAt.IsZero())
	s.Len(got.Items, 2)

	delivered := time.Now().UTC().Add(time.Second).Truncate(time.Millisecond)
	s.Require().NoError(s.repo.UpdateDeliveryStatus(s.ctx, order.ID, entities.DeliveryDelivered, delivered))

	got, err = s.repo.OrderByTracking(s.ctx, "TRK12345678AB12")
	s.Require().NoError(err)
	s.Equal(entities.DeliveryDelivered, got.DeliveryStatus)
	s.WithinDuration(delivered, got.DeliveredAt, time.Millisecond)

	s.Require().NoError(s.repo.DeleteOrder(s.ctx, order.ID))
	_, err = s.repo.OrderByTracking(s.ctx, "TRK12345678AB12")
	s.ErrorIs(err, entities.ErrOrderNotFound)
}

func (s *RepoSuite) TestLateDeliveryStatusIsRejected() {
	order := s.newOrder("Jane Doe")
	s.Require().NoError(s.repo.AttachTracking(s.ctx, order.ID, entities.TrackingUpdate{TrackingNumber: "TRK00000003BBBB"}))

	deliveredAt := time.Now().UTC().Add(time.Hour).Truncate(time.Millisecond)
	s.Require().NoError(s.repo.UpdateDeliveryStatus(s.ctx, order.ID, entities.DeliveryDelivered, deliveredAt))

	err := s.repo.UpdateDeliveryStatus(s.ctx, order.ID, entities.DeliveryShipped, deliveredAt.Add(-time.Minute))
	s.ErrorIs(err, entities.ErrStaleDeliveryStatus)

	got, err := s.repo.OrderByTracking(s.ctx, "TRK00000003BBBB")
	s.Require().NoError(err)
	s.Equal(entities.DeliveryDelivered, got.DeliveryStatus)
	s.WithinDuration(deliveredAt, got.DeliveredAt, time.Millisecond)
}

func (s *RepoSuite) TestMissingOrder() {
	missing := uuid.NewString()

	s.ErrorIs(s.repo.AttachTracking(s.ctx, missing, entities.TrackingUpdate{TrackingNumber: "TRK0"}), entities.ErrOrderNotFound)
	s.ErrorIs(s.repo.UpdateDeliveryStatus(s.ctx, missing, entities.DeliveryShipped, time.Now()), entities.ErrOrderNotFound)
	s.ErrorIs(s.repo.DeleteOrder(s.ctx, missing), entities.ErrOrderNotFound)
}

func (s *RepoSuite) TestListOrders() {
	jane := s.newOrder("Jane Doe")
	john := s.newOrder("John Smith")
	s.Require().NoError(s.repo.AttachTracking(s.ctx, john.ID, entities.TrackingUpdate{TrackingNumber: "TRK00000001ZZZZ"}))

	all, err := s.repo.ListOrders(s.ctx, entities.OrderFilter{Limit: 10})
	s.Require().NoError(err)
	s.Len(all, 2)
	s.Equal(john.ID, all[0].ID)

	byName, err := s.repo.ListOrders(s.ctx, entities.OrderFilter{Search: "jane", Limit: 10})
	s.Require().NoError(err)
	s.Require().Len(byName, 1)
	s.Equal(jane.ID, byName[0].ID)

	byTracking, err := s.repo.ListOrders(s.ctx, entities.OrderFilter{Search: "zzzz", Limit: 10})
	s.Require().NoError(err)
	s.Require().Len(byTracking, 1)
	s.Equal(john.ID, byTracking[0].ID)

	byStatus, err := s.repo.ListOrders(s.ctx, entities.OrderFilter{DeliveryStatus: entities.DeliveryProcessing, Limit: 10})
	s.Require().NoError(err)
	s.Len(byStatus, 1)

	page, err := s.repo.ListOrders(s.ctx, entities.OrderFilter{Limit: 1, Offset: 1})
	s.Require().NoError(err)
	s.Require().Len(page, 1)
	s.Equal(jane.ID, page[0].ID)

	s.newOrder("Ann_100%")
	literal, err := s.repo.ListOrders(s.ctx, entities.OrderFilter{Search: "_100%", Limit: 10})
	s.Require().NoError(err)
	s.Require().Len(literal, 1)
	s.Equal("Ann_100%", literal[0].CustomerName)

	wildcard, err := s.repo.ListOrders(s.ctx, entities.OrderFilter{Search: "J_hn", Limit: 10})
	s.Require().NoError(err)
	s.Empty(wildcard)
}

func (s *RepoSuite) TestCancelStalePending() {
	stale := s.newOrder("Stale")
	tracked := s.newOrder("Tracked")
	s.Require().NoError(s.repo.AttachTracking(s.ctx, tracked.ID, entities.TrackingUpdate{TrackingNumber: "TRK00000002AAAA"}))

	n, err := s.repo.CancelStalePending(s.ctx, time.Now().Add(time.Minute))
	s.Require().NoError(err)
	s.EqualValues(1, n)

	list, err := s.repo.ListOrders(s.ctx, entities.OrderFilter{Search: "Stale", Limit: 10})
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.Equal(stale.ID, list[0].ID)
	s.Equal(entities.OrderStatusCancelled, list[0].Status)
}

func (s *RepoSuite) TestCatalog() {
	var categoryID, productID string
	s.Require().NoError(s.db.Get(&categoryID, `INSERT INTO categories (name, slug) VALUES ('Accessories', 'accessories') RETURNING id`))
	s.Require().NoError(s.db.Get(&productID,
		`INSERT INTO products (name, price, stock, category_id) VALUES ('Wool scarf', 24.99, 12, $1) RETURNING id`, categoryID))
	_, err := s.db.Exec(`INSERT INTO reviews (product_id, user_id, rating, comment, created_at) VALUES
		($1, $2, 4, 'ok', now() - interval '1 day'),
		($1, $2, 5, 'warm', now())`, productID, uuid.NewString())
	s.Require().NoError(err)

	product, err := s.repo.ProductByID(s.ctx, productID)
	s.Require().NoError(err)
	s.Equal("Wool scarf", product.Name)
	s.Equal("Accessories", product.CategoryName)
	s.Empty(product.BrandName)
	s.Require().Len(product.Reviews, 2)
	s.Equal("warm", product.Reviews[0].Comment)

	_, err = s.repo.ProductByID(s.ctx, uuid.NewString())
	s.ErrorIs(err, entities.ErrProductNotFound)

	latest, err := s.repo.LatestProducts(s.ctx, 5)
	s.Require().NoError(err)
	s.Len(latest, 1)

	prices, err := s.repo.ProductPrices(s.ctx, []string{productID, uuid.NewString()})
	s.Require().NoError(err)
	s.Len(prices, 1)
	s.True(prices[productID].Equal(decimal.RequireFromString("24.99")))
}

func (s *RepoSuite) TestListProducts() {
	var accessories, scarves, shoes, brandID string
	s.Require().NoError(s.db.Get(&accessories, `INSERT INTO categories (name, slug) VALUES ('Accessories', 'accessories') RETURNING id`))
	s.Require().NoError(s.db.Get(&scarves, `INSERT INTO categories (name, slug, parent_id) VALUES ('Scarves', 'scarves', $1) RETURNING id`, accessories))
	s.Require().NoError(s.db.Get(&shoes, `INSERT INTO categories (name, slug) VALUES ('Shoes', 'shoes') RETURNING id`))
	s.Require().NoError(s.db.Get(&brandID, `INSERT INTO brands (name) VALUES ('Nordic') RETURNING id`))

	newProduct := func(name string, stock int, categoryID, brandID string) string {
		id, err := s.repo.CreateProduct(s.ctx, entities.ProductInput{
			Name:       name,
			Price:      decimal.RequireFromString("10.00"),
			Stock:      stock,
			CategoryID: categoryID,
			BrandID:    brandID,
		})
		s.Require().NoError(err)
		return id
	}
	belt := newProduct("Belt", 3, accessories, "")
	scarf := newProduct("Scarf", 0, scarves, brandID)
	boots := newProduct("Boots", 5, shoes, brandID)

	ids := func(products []entities.Product) []string {
		res := make([]string, 0, len(products))
		for _, p := range products {
			res = append(res, p.ID)
		}
		return res
	}

	list, err := s.repo.ListProducts(s.ctx, entities.ProductFilter{CategorySlug: "accessories", Limit: 10})
	s.Require().NoError(err)
	s.ElementsMatch([]string{belt, scarf}, ids(list))

	list, err = s.repo.ListProducts(s.ctx, entities.ProductFilter{BrandID: brandID, Limit: 10})
	s.Require().NoError(err)
	s.ElementsMatch([]string{scarf, boots}, ids(list))

	list, err = s.repo.ListProducts(s.ctx, entities.ProductFilter{BrandID: brandID, InStockOnly: true, Limit: 10})
	s.Require().NoError(err)
	s.Equal([]string{boots}, ids(list))

	list, err = s.repo.ListProducts(s.ctx, entities.ProductFilter{Limit: 2})
	s.Require().NoError(err)
	s.Len(list, 2)
	list, err = s.repo.ListProducts(s.ctx, entities.ProductFilter{Limit: 2, Offset: 2})
	s.Require().NoError(err)
	s.Len(list, 1)

	categories, err := s.repo.Categories(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(categories, 3)
	s.Equal("scarves", categories[1].Slug)
	s.Equal(accessories, categories[1].ParentID)
	s.Empty(categories[0].ParentID)

	brands, err := s.repo.Brands(s.ctx)
	s.Require().NoError(err)
	s.Equal([]entities.Brand{{ID: brandID, Name: "Nordic"}}, brands)
}

func (s *RepoSuite) TestProductAdministration() {
	id, err := s.repo.CreateProduct(s.ctx, entities.ProductInput{
		Name:  "Wool scarf",
		Price: decimal.RequireFromString("24.99"),
		Stock: 12,
	})
	s.Require().NoError(err)

	_, err = s.repo.CreateProduct(s.ctx, entities.ProductInput{
		Name:       "Ghost",
		Price:      decimal.RequireFromString("1.00"),
		CategoryID: uuid.NewString(),
	})
	s.ErrorIs(err, entities.ErrInvalidProduct)

	s.Require().NoError(s.repo.UpdateProduct(s.ctx, id, entities.ProductInput{
		Name:        "Wool scarf",
		Description: "Merino",
		Price:       decimal.RequireFromString("19.99"),
		OutOfStock:  true,
	}))
	product, err := s.repo.ProductByID(s.ctx, id)
	s.Require().NoError(err)
	s.Equal("Merino", product.Description)
	s.True(product.OutOfStock)
	s.True(product.Price.Equal(decimal.RequireFromString("19.99")))

	s.ErrorIs(s.repo.UpdateProduct(s.ctx, id, entities.ProductInput{Name: "x", BrandID: uuid.NewString()}), entities.ErrInvalidProduct)
	s.ErrorIs(s.repo.UpdateProduct(s.ctx, uuid.NewString(), entities.ProductInput{Name: "x"}), entities.ErrProductNotFound)

	review, err := s.repo.CreateReview(s.ctx, entities.Review{ProductID: id, UserID: uuid.NewString(), Rating: 5, Comment: "warm"})
	s.Require().NoError(err)
	s.NotEmpty(review.ID)
	s.False(review.CreatedAt.IsZero())

	_, err = s.repo.CreateReview(s.ctx, entities.Review{ProductID: uuid.NewString(), UserID: uuid.NewString(), Rating: 5})
	s.ErrorIs(err, entities.ErrProductNotFound)

	s.newOrder("Jane Doe")
	stats, err := s.repo.StoreStats(s.ctx)
	s.Require().NoError(err)
	s.Equal(entities.StoreStats{Products: 1, Reviews: 1, Orders: 1}, stats)

	s.Require().NoError(s.repo.DeleteProduct(s.ctx, id))
	s.ErrorIs(s.repo.DeleteProduct(s.ctx, id), entities.ErrProductNotFound)

	stats, err = s.repo.StoreStats(s.ctx)
	s.Require().NoError(err)
	s.Equal(entities.StoreStats{Products: 0, Reviews: 0, Orders: 1}, stats)
}

func (s *RepoSuite) TestAppendLogInTransaction() {
	err := s.txManager.Do(s.ctx, func(ctx context.Context) error {
		return s.repo.AppendLog(ctx, entities.LogEntry{
			Kind:    "OrderPersistenceFailed",
			Message: "failed to create order: boom",
			Context: map[string]any{"user_id": "u1"},
		})
	})
	s.Require().NoError(err)
	s.Require().NoError(s.repo.AppendLog(s.ctx, entities.LogEntry{Kind: "EmptyCart", Message: "cart is empty"}))

	var rows []struct {
		Kind    string `db:"kind"`
		Context string `db:"context"`
	}
	s.Require().NoError(s.db.Select(&rows, `SELECT kind, context::text AS context FROM checkout_logs ORDER BY id`))
	s.Require().Len(rows, 2)
	s.Equal("OrderPersistenceFailed", rows[0].Kind)
	s.JSONEq(`{"user_id":"u1"}`, rows[0].Context)
	s.JSONEq(`{}`, rows[1].Context)
}
