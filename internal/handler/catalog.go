package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/middleware"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type Catalog interface {
	ListProducts(ctx context.Context, f entities.ProductFilter) ([]entities.Product, error)
	ListCategories(ctx context.Context) ([]entities.Category, error)
	ListBrands(ctx context.Context) ([]entities.Brand, error)
	AddReview(ctx context.Context, rv entities.Review) (entities.Review, error)
}

type CatalogAdmin interface {
	CreateProduct(ctx context.Context, in entities.ProductInput) (entities.Product, error)
	UpdateProduct(ctx context.Context, id string, in entities.ProductInput) (entities.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	Stats(ctx context.Context) (entities.StoreStats, error)
}

type CatalogHandler struct {
	logger     *slog.Logger
	validate   *validator.Validate
	catalog    Catalog
	admin      CatalogAdmin
	userGuard  func(http.Handler) http.Handler
	adminGuard func(http.Handler) http.Handler
}

func NewCatalogHandler(
	logger *slog.Logger,
	catalog Catalog,
	admin CatalogAdmin,
	userGuard, adminGuard func(http.Handler) http.Handler,
) *CatalogHandler {
	return &CatalogHandler{
		logger:     logger.With(slog.String("handler", "catalog")),
		validate:   validator.New(),
		catalog:    catalog,
		admin:      admin,
		userGuard:  userGuard,
		adminGuard: adminGuard,
	}
}

func (h *CatalogHandler) Init(r chi.Router) {
	r.Get("/products", h.ListProducts)
	r.Get("/categories", h.ListCategories)
	r.Get("/brands", h.ListBrands)
	r.With(h.userGuard).Post("/products/{id}/reviews", h.AddReview)

	r.With(h.adminGuard).Get("/admin/stats", h.Stats)
	r.Route("/admin/products", func(r chi.Router) {
		r.Use(h.adminGuard)
		r.Post("/", h.CreateProduct)
		r.Put("/{id}", h.UpdateProduct)
		r.Delete("/{id}", h.DeleteProduct)
	})
}

// ListProducts возвращает товары каталога.
// @Summary      Список товаров
// @Description  Категория включает товары прямых подкатегорий.
// @Tags         products
// @Produce      json
// @Param        category  query     string  false  "Slug категории"
// @Param        brand     query     string  false  "ID бренда"
// @Param        in_stock  query     bool    false  "Только в наличии"
// @Param        limit     query     int     false  "Лимит"  default(50)
// @Param        offset    query     int     false  "Смещение"
// @Success      200  {array}   Product
// @Failure      400  {object}  utils.ErrorResponse "Неверный фильтр"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /products [get]
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	filter := entities.ProductFilter{
		CategorySlug: q.Get("category"),
		BrandID:      q.Get("brand"),
	}
	var err error
	if filter.Limit, err = intParam(q.Get("limit")); err != nil {
		utils.WriteError(w, "invalid limit", http.StatusBadRequest)
		return
	}
	if filter.Offset, err = intParam(q.Get("offset")); err != nil {
		utils.WriteError(w, "invalid offset", http.StatusBadRequest)
		return
	}
	if v := q.Get("in_stock"); v != "" {
		if filter.InStockOnly, err = strconv.ParseBool(v); err != nil {
			utils.WriteError(w, "invalid in_stock", http.StatusBadRequest)
			return
		}
	}

	products, err := h.catalog.ListProducts(ctx, filter)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list products", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	res := make([]Product, 0, len(products))
	for _, p := range products {
		res = append(res, ProductEntityToJSON(p))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

// ListCategories возвращает категории.
// @Summary      Список категорий
// @Tags         products
// @Produce      json
// @Success      200  {array}   Category
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /categories [get]
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	categories, err := h.catalog.ListCategories(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list categories", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	res := make([]Category, 0, len(categories))
	for _, c := range categories {
		res = append(res, Category{ID: c.ID, Name: c.Name, Slug: c.Slug, ParentID: c.ParentID})
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

// ListBrands возвращает бренды.
// @Summary      Список брендов
// @Tags         products
// @Produce      json
// @Success      200  {array}   Brand
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /brands [get]
func (h *CatalogHandler) ListBrands(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	brands, err := h.catalog.ListBrands(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list brands", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	res := make([]Brand, 0, len(brands))
	for _, b := range brands {
		res = append(res, Brand{ID: b.ID, Name: b.Name})
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

// AddReview добавляет отзыв от имени текущего пользователя.
// @Summary      Оставить отзыв
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string         true  "ID товара"
// @Param        request  body      ReviewRequest  true  "Оценка и комментарий"
// @Success      201  {object}  Review
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      401  {object}  utils.ErrorResponse
// @Failure      404  {object}  utils.ErrorResponse "Товар не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /products/{id}/reviews [post]
func (h *CatalogHandler) AddReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	if err := h.validate.Var(id, "required,uuid"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	var body ReviewRequest
	if err := utils.DecodeBody(r, &body); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(body); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	user, _ := middleware.PrincipalFromContext(ctx)
	review, err := h.catalog.AddReview(ctx, entities.Review{
		ProductID: id,
		UserID:    user.UserID,
		Rating:    body.Rating,
		Comment:   body.Comment,
	})

	switch {
	case errors.Is(err, entities.ErrProductNotFound):
		utils.WriteError(w, "product not found", http.StatusNotFound)
		return
	case errors.Is(err, entities.ErrInvalidReview):
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		h.logger.ErrorContext(ctx, "failed to add review", slog.Any("error", err), slog.String("product_id", id))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, ReviewEntityToJSON(review), http.StatusCreated)
}

// Stats возвращает счётчики для панели администратора.
// @Summary      Статистика магазина
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  StoreStats
// @Failure      401  {object}  utils.ErrorResponse
// @Failure      403  {object}  utils.ErrorResponse
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /admin/stats [get]
func (h *CatalogHandler) Stats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := h.admin.Stats(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to load store stats", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, StoreStats(stats), http.StatusOK)
}

// CreateProduct добавляет товар в каталог.
// @Summary      Создать товар
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      ProductRequest  true  "Товар"
// @Success      201  {object}  Product
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      401  {object}  utils.ErrorResponse
// @Failure      403  {object}  utils.ErrorResponse
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /admin/products [post]
func (h *CatalogHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, ok := h.decodeProduct(w, r)
	if !ok {
		return
	}

	product, err := h.admin.CreateProduct(ctx, ProductJSONToEntity(body))

	if errors.Is(err, entities.ErrInvalidProduct) {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create product", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "product created", slog.String("id", product.ID), slog.String("admin", adminEmail(ctx)))
	utils.WriteJSON(w, ProductEntityToJSON(product), http.StatusCreated)
}

// UpdateProduct заменяет данные товара.
// @Summary      Изменить товар
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string          true  "ID товара"
// @Param        request  body      ProductRequest  true  "Товар"
// @Success      200  {object}  Product
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      401  {object}  utils.ErrorResponse
// @Failure      403  {object}  utils.ErrorResponse
// @Failure      404  {object}  utils.ErrorResponse "Товар не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /admin/products/{id} [put]
func (h *CatalogHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	if err := h.validate.Var(id, "required,uuid"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	body, ok := h.decodeProduct(w, r)
	if !ok {
		return
	}

	product, err := h.admin.UpdateProduct(ctx, id, ProductJSONToEntity(body))

	switch {
	case errors.Is(err, entities.ErrProductNotFound):
		utils.WriteError(w, "product not found", http.StatusNotFound)
		return
	case errors.Is(err, entities.ErrInvalidProduct):
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		h.logger.ErrorContext(ctx, "failed to update product", slog.Any("error", err), slog.String("id", id))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "product updated", slog.String("id", id), slog.String("admin", adminEmail(ctx)))
	utils.WriteJSON(w, ProductEntityToJSON(product), http.StatusOK)
}

// DeleteProduct удаляет товар вместе с отзывами.
// @Summary      Удалить товар
// @Tags         admin
// @Security     BearerAuth
// @Param        id  path  string  true  "ID товара"
// @Success      204
// @Failure      400  {object}  utils.ValidationErrorResponse "Неверный ID"
// @Failure      401  {object}  utils.ErrorResponse
// @Failure      403  {object}  utils.ErrorResponse
// @Failure      404  {object}  utils.ErrorResponse "Товар не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /admin/products/{id} [delete]
func (h *CatalogHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	if err := h.validate.Var(id, "required,uuid"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	err := h.admin.DeleteProduct(ctx, id)

	if errors.Is(err, entities.ErrProductNotFound) {
		utils.WriteError(w, "product not found", http.StatusNotFound)
		return
	}

	if err != nil {
		h.logger.ErrorContext(ctx, "failed to delete product", slog.Any("error", err), slog.String("id", id))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "product deleted", slog.String("id", id), slog.String("admin", adminEmail(ctx)))
	w.WriteHeader(http.StatusNoContent)
}

func (h *CatalogHandler) decodeProduct(w http.ResponseWriter, r *http.Request) (ProductRequest, bool) {
	var body ProductRequest
	if err := utils.DecodeBody(r, &body); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return body, false
	}
	if err := h.validate.Struct(body); err != nil {
		utils.WriteValidationError(w, err)
		return body, false
	}
	return body, true
}
