package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	defaultProductsLimit = 50
	maxProductsLimit     = 200
	maxReviewLength      = 2000
)

type CatalogRepo interface {
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
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
}

type catalogService struct {
	logger *slog.Logger
	repo   CatalogRepo
	cache  Cache
	retry  utils.RetryConfig
}

func NewCatalogService(logger *slog.Logger, repo CatalogRepo, cache Cache) *catalogService {
	return &catalogService{
		logger: logger.With(slog.String("service", "catalog")),
		repo:   repo,
		cache:  cache,
		retry: utils.RetryConfig{
			InitialDelay: 100 * time.Millisecond,
			MaxAttempts:  5,
			Multiplier:   2,
		},
	}
}

func (s *catalogService) GetProduct(ctx context.Context, id string) (entities.Product, error) {
	if uuid.Validate(id) != nil {
		return entities.Product{}, entities.ErrProductNotFound
	}

	if data, ok := s.cache.Get(id); ok {
		var product entities.Product
		err := product.Unmarshal(data)
		if err == nil {
			return product, nil
		}
		s.logger.Error("failed to unmarshal cached product", slog.String("id", id), slog.Any("error", err))
		s.cache.Delete(id)
	}

	return s.load(ctx, id)
}

// Prices reads authoritative prices straight from the store, bypassing the cache.
func (s *catalogService) Prices(ctx context.Context, productIDs []string) (map[string]decimal.Decimal, error) {
	ids := make([]string, 0, len(productIDs))
	for _, id := range productIDs {
		if uuid.Validate(id) == nil {
			ids = append(ids, id)
		}
	}
	return s.repo.ProductPrices(ctx, ids)
}

func (s *catalogService) ListProducts(ctx context.Context, f entities.ProductFilter) ([]entities.Product, error) {
	if f.BrandID != "" && uuid.Validate(f.BrandID) != nil {
		return []entities.Product{}, nil
	}
	if f.Limit <= 0 {
		f.Limit = defaultProductsLimit
	}
	f.Limit = min(f.Limit, maxProductsLimit)
	f.Offset = max(f.Offset, 0)

	var products []entities.Product
	fn := func() error {
		var err error
		products, err = s.repo.ListProducts(ctx, f)
		return err
	}
	if err := utils.Retry(ctx, s.retry, fn); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *catalogService) ListCategories(ctx context.Context) ([]entities.Category, error) {
	var categories []entities.Category
	fn := func() error {
		var err error
		categories, err = s.repo.Categories(ctx)
		return err
	}
	if err := utils.Retry(ctx, s.retry, fn); err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *catalogService) ListBrands(ctx context.Context) ([]entities.Brand, error) {
	var brands []entities.Brand
	fn := func() error {
		var err error
		brands, err = s.repo.Brands(ctx)
		return err
	}
	if err := utils.Retry(ctx, s.retry, fn); err != nil {
		return nil, err
	}
	return brands, nil
}

// AddReview stores a customer review and drops the cached product so the review shows up.
func (s *catalogService) AddReview(ctx context.Context, rv entities.Review) (entities.Review, error) {
	if uuid.Validate(rv.ProductID) != nil {
		return entities.Review{}, entities.ErrProductNotFound
	}
	rv.Comment = strings.TrimSpace(rv.Comment)
	switch {
	case uuid.Validate(rv.UserID) != nil:
		return entities.Review{}, fmt.Errorf("%w: malformed user id", entities.ErrInvalidReview)
	case rv.Rating < 1 || rv.Rating > 5:
		return entities.Review{}, fmt.Errorf("%w: rating must be between 1 and 5", entities.ErrInvalidReview)
	case utf8.RuneCountInString(rv.Comment) > maxReviewLength:
		return entities.Review{}, fmt.Errorf("%w: comment is longer than %d characters", entities.ErrInvalidReview, maxReviewLength)
	}

	created, err := s.repo.CreateReview(ctx, rv)
	if err != nil {
		return entities.Review{}, err
	}
	s.cache.Delete(rv.ProductID)

	s.logger.InfoContext(ctx, "review added", slog.String("product_id", rv.ProductID), slog.Int("rating", rv.Rating))
	return created, nil
}

func (s *catalogService) CreateProduct(ctx context.Context, in entities.ProductInput) (entities.Product, error) {
	if err := validateProduct(&in); err != nil {
		return entities.Product{}, err
	}

	id, err := s.repo.CreateProduct(ctx, in)
	if err != nil {
		return entities.Product{}, err
	}

	s.logger.InfoContext(ctx, "product created", slog.String("id", id))
	return s.load(ctx, id)
}

func (s *catalogService) UpdateProduct(ctx context.Context, id string, in entities.ProductInput) (entities.Product, error) {
	if uuid.Validate(id) != nil {
		return entities.Product{}, entities.ErrProductNotFound
	}
	if err := validateProduct(&in); err != nil {
		return entities.Product{}, err
	}

	if err := s.repo.UpdateProduct(ctx, id, in); err != nil {
		return entities.Product{}, err
	}
	s.cache.Delete(id)

	s.logger.InfoContext(ctx, "product updated", slog.String("id", id))
	return s.load(ctx, id)
}

func (s *catalogService) DeleteProduct(ctx context.Context, id string) error {
	if uuid.Validate(id) != nil {
		return entities.ErrProductNotFound
	}
	if err := s.repo.DeleteProduct(ctx, id); err != nil {
		return err
	}
	s.cache.Delete(id)

	s.logger.InfoContext(ctx, "product deleted", slog.String("id", id))
	return nil
}

func (s *catalogService) Stats(ctx context.Context) (entities.StoreStats, error) {
	return s.repo.StoreStats(ctx)
}

func (s *catalogService) WarmUpCache(ctx context.Context, count int) error {
	if count <= 0 {
		return nil
	}

	products, err := s.repo.LatestProducts(ctx, count)
	if err != nil {
		return err
	}

	for _, p := range products {
		if _, err := s.load(ctx, p.ID); err != nil {
			s.logger.Warn("failed to warm up product", slog.String("id", p.ID), slog.Any("error", err))
		}
	}

	s.logger.Info("catalog cache warmed up", slog.Int("count", len(products)))
	return nil
}

func (s *catalogService) load(ctx context.Context, id string) (entities.Product, error) {
	var product entities.Product
	fn := func() error {
		var err error
		product, err = s.repo.ProductByID(ctx, id)
		return err
	}
	if err := utils.Retry(ctx, s.retry, fn, entities.ErrProductNotFound); err != nil {
		return entities.Product{}, err
	}

	data, err := product.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal product", slog.String("id", id), slog.Any("error", err))
		return product, nil
	}
	s.cache.Set(id, data)
	return product, nil
}

func validateProduct(in *entities.ProductInput) error {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)

	switch {
	case in.Name == "":
		return fmt.Errorf("%w: name is required", entities.ErrInvalidProduct)
	case in.Price.IsNegative():
		return fmt.Errorf("%w: price is negative", entities.ErrInvalidProduct)
	case !in.Price.Equal(in.Price.Truncate(2)):
		return fmt.Errorf("%w: price has more than 2 decimal places", entities.ErrInvalidProduct)
	case in.Stock < 0:
		return fmt.Errorf("%w: stock is negative", entities.ErrInvalidProduct)
	case in.CategoryID != "" && uuid.Validate(in.CategoryID) != nil:
		return fmt.Errorf("%w: malformed category id", entities.ErrInvalidProduct)
	case in.BrandID != "" && uuid.Validate(in.BrandID) != nil:
		return fmt.Errorf("%w: malformed brand id", entities.ErrInvalidProduct)
	}
	return nil
}
