package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

const pgForeignKeyViolation = "23503"

func (r *postgresRepo) productQuery() sq.SelectBuilder {
	return r.qb.Select(
		"p.id", "p.name", "p.description", "p.price", "p.image_url", "p.stock", "p.out_of_stock",
		"p.category_id", "c.name AS category_name", "c.slug AS category_slug",
		"p.brand_id", "b.name AS brand_name", "p.created_at",
	).
		From("products p").
		LeftJoin("categories c ON c.id = p.category_id").
		LeftJoin("brands b ON b.id = p.brand_id")
}

func (r *postgresRepo) ProductByID(ctx context.Context, id string) (entities.Product, error) {
	query, args := r.productQuery().
		Where(sq.Eq{"p.id": id}).
		MustSql()

	var product Product
	err := r.getContext(ctx, &product, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Product{}, entities.ErrProductNotFound
	}
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to get product: %w", err)
	}

	query, args = r.qb.Select("id", "product_id", "user_id", "rating", "comment", "created_at").
		From("reviews").
		Where(sq.Eq{"product_id": id}).
		OrderBy("created_at DESC").
		MustSql()

	var reviews []Review
	if err := r.selectContext(ctx, &reviews, query, args...); err != nil {
		return entities.Product{}, fmt.Errorf("failed to get reviews: %w", err)
	}

	return ProductToEntity(product, reviews), nil
}

func (r *postgresRepo) LatestProducts(ctx context.Context, count int) ([]entities.Product, error) {
	query, args := r.productQuery().
		OrderBy("p.created_at DESC").
		Limit(uint64(count)).
		MustSql()

	var products []Product
	if err := r.selectContext(ctx, &products, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select products: %w", err)
	}

	return productsToEntities(products), nil
}

// ListProducts returns products newest first. A category slug also matches its direct subcategories.
func (r *postgresRepo) ListProducts(ctx context.Context, f entities.ProductFilter) ([]entities.Product, error) {
	q := r.productQuery().OrderBy("p.created_at DESC")

	if f.CategorySlug != "" {
		q = q.Where(sq.Or{
			sq.Eq{"c.slug": f.CategorySlug},
			sq.Expr("c.parent_id = (SELECT id FROM categories WHERE slug = ?)", f.CategorySlug),
		})
	}
	if f.BrandID != "" {
		q = q.Where(sq.Eq{"p.brand_id": f.BrandID})
	}
	if f.InStockOnly {
		q = q.Where(sq.Eq{"p.out_of_stock": false}).Where(sq.Gt{"p.stock": 0})
	}
	if f.Limit > 0 {
		q = q.Limit(uint64(f.Limit))
	}
	if f.Offset > 0 {
		q = q.Offset(uint64(f.Offset))
	}

	query, args := q.MustSql()

	var products []Product
	if err := r.selectContext(ctx, &products, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select products: %w", err)
	}
	return productsToEntities(products), nil
}

func (r *postgresRepo) Categories(ctx context.Context) ([]entities.Category, error) {
	query, args := r.qb.Select("id", "name", "slug", "parent_id").
		From("categories").
		OrderBy("name").
		MustSql()

	var rows []Category
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select categories: %w", err)
	}

	categories := make([]entities.Category, 0, len(rows))
	for _, c := range rows {
		categories = append(categories, CategoryToEntity(c))
	}
	return categories, nil
}

func (r *postgresRepo) Brands(ctx context.Context) ([]entities.Brand, error) {
	query, args := r.qb.Select("id", "name").
		From("brands").
		OrderBy("name").
		MustSql()

	var rows []Brand
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select brands: %w", err)
	}

	brands := make([]entities.Brand, 0, len(rows))
	for _, b := range rows {
		brands = append(brands, entities.Brand{ID: b.ID, Name: b.Name})
	}
	return brands, nil
}

func (r *postgresRepo) CreateReview(ctx context.Context, rv entities.Review) (entities.Review, error) {
	query, args := r.qb.Insert("reviews").
		Columns("product_id", "user_id", "rating", "comment").
		Values(rv.ProductID, rv.UserID, rv.Rating, nullString(rv.Comment)).
		Suffix("RETURNING id, created_at").
		MustSql()

	var created struct {
		ID        string    `db:"id"`
		CreatedAt time.Time `db:"created_at"`
	}
	err := r.getContext(ctx, &created, query, args...)
	if isForeignKeyViolation(err) {
		return entities.Review{}, entities.ErrProductNotFound
	}
	if err != nil {
		return entities.Review{}, fmt.Errorf("failed to insert review: %w", err)
	}

	rv.ID = created.ID
	rv.CreatedAt = created.CreatedAt
	return rv, nil
}

func (r *postgresRepo) CreateProduct(ctx context.Context, in entities.ProductInput) (string, error) {
	query, args := r.qb.Insert("products").
		SetMap(productValues(in)).
		Suffix("RETURNING id").
		MustSql()

	var id string
	err := r.getContext(ctx, &id, query, args...)
	if isForeignKeyViolation(err) {
		return "", fmt.Errorf("%w: unknown category or brand", entities.ErrInvalidProduct)
	}
	if err != nil {
		return "", fmt.Errorf("failed to insert product: %w", err)
	}
	return id, nil
}

func (r *postgresRepo) UpdateProduct(ctx context.Context, id string, in entities.ProductInput) error {
	query, args := r.qb.Update("products").
		SetMap(productValues(in)).
		Where(sq.Eq{"id": id}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if isForeignKeyViolation(err) {
		return fmt.Errorf("%w: unknown category or brand", entities.ErrInvalidProduct)
	}
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	return productAffected(res)
}

func (r *postgresRepo) DeleteProduct(ctx context.Context, id string) error {
	query, args := r.qb.Delete("products").
		Where(sq.Eq{"id": id}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return productAffected(res)
}

func (r *postgresRepo) StoreStats(ctx context.Context) (entities.StoreStats, error) {
	query, args := r.qb.Select(
		"(SELECT count(*) FROM products) AS products",
		"(SELECT count(*) FROM reviews) AS reviews",
		"(SELECT count(*) FROM orders) AS orders",
	).MustSql()

	var stats struct {
		Products int64 `db:"products"`
		Reviews  int64 `db:"reviews"`
		Orders   int64 `db:"orders"`
	}
	if err := r.getContext(ctx, &stats, query, args...); err != nil {
		return entities.StoreStats{}, fmt.Errorf("failed to count store stats: %w", err)
	}
	return entities.StoreStats(stats), nil
}

func productValues(in entities.ProductInput) map[string]any {
	return map[string]any{
		"name":         in.Name,
		"description":  nullString(in.Description),
		"price":        in.Price,
		"image_url":    nullString(in.ImageURL),
		"stock":        in.Stock,
		"out_of_stock": in.OutOfStock,
		"category_id":  nullString(in.CategoryID),
		"brand_id":     nullString(in.BrandID),
	}
}

func productsToEntities(rows []Product) []entities.Product {
	products := make([]entities.Product, 0, len(rows))
	for _, p := range rows {
		products = append(products, ProductToEntity(p, nil))
	}
	return products
}

func productAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if n == 0 {
		return entities.ErrProductNotFound
	}
	return nil
}

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pgForeignKeyViolation
}

// ProductPrices returns current catalog prices; ids absent from the catalog are absent from the map.
func (r *postgresRepo) ProductPrices(ctx context.Context, ids []string) (map[string]decimal.Decimal, error) {
	if len(ids) == 0 {
		return map[string]decimal.Decimal{}, nil
	}

	query, args := r.qb.Select("id", "price").
		From("products").
		Where(sq.Eq{"id": ids}).
		MustSql()

	var rows []struct {
		ID    string          `db:"id"`
		Price decimal.Decimal `db:"price"`
	}
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select prices: %w", err)
	}

	prices := make(map[string]decimal.Decimal, len(rows))
	for _, row := range rows {
		prices[row.ID] = row.Price
	}
	return prices, nil
}
