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

type OrderAdmin interface {
	ListOrders(ctx context.Context, f entities.OrderFilter) ([]entities.Order, error)
	UpdateDeliveryStatus(ctx context.Context, orderID string, status entities.DeliveryStatus) error
	DeleteOrder(ctx context.Context, orderID string) error
}

type AdminHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      OrderAdmin
	guard    func(http.Handler) http.Handler
}

func NewAdminHandler(logger *slog.Logger, svc OrderAdmin, guard func(http.Handler) http.Handler) *AdminHandler {
	return &AdminHandler{
		logger:   logger.With(slog.String("handler", "admin")),
		validate: validator.New(),
		svc:      svc,
		guard:    guard,
	}
}

func (h *AdminHandler) Init(r chi.Router) {
	r.Route("/admin/orders", func(r chi.Router) {
		r.Use(h.guard)
		r.Get("/", h.ListOrders)
		r.Patch("/{id}/delivery-status", h.UpdateDeliveryStatus)
		r.Delete("/{id}", h.DeleteOrder)
	})
}

// ListOrders возвращает список заказов.
// @Summary      Список заказов
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Статус доставки"  Enums(processing, shipped, delivered, cancelled)
// @Param        search  query     string  false  "Поиск по имени, email или номеру отслеживания"
// @Param        limit   query     int     false  "Лимит"  default(50)
// @Param        offset  query     int     false  "Смещение"
// @Success      200  {array}   Order
// @Failure      400  {object}  utils.ErrorResponse "Неверный фильтр"
// @Failure      401  {object}  utils.ErrorResponse
// @Failure      403  {object}  utils.ErrorResponse
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /admin/orders [get]
func (h *AdminHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	filter := entities.OrderFilter{
		DeliveryStatus: entities.DeliveryStatus(q.Get("status")),
		Search:         q.Get("search"),
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

	orders, err := h.svc.ListOrders(ctx, filter)

	if errors.Is(err, entities.ErrInvalidDeliveryStatus) {
		utils.WriteError(w, "invalid delivery status", http.StatusBadRequest)
		return
	}

	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list orders", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	res := make([]Order, 0, len(orders))
	for _, o := range orders {
		res = append(res, OrderEntityToJSON(o, true))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

// UpdateDeliveryStatus меняет статус доставки.
// @Summary      Изменить статус доставки
// @Tags         admin
// @Accept       json
// @Security     BearerAuth
// @Param        id       path  string                 true  "ID заказа"
// @Param        request  body  DeliveryStatusRequest  true  "Новый статус"
// @Success      204
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      401  {object}  utils.ErrorResponse
// @Failure      403  {object}  utils.ErrorResponse
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Статус уже изменён позже"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /admin/orders/{id}/delivery-status [patch]
func (h *AdminHandler) UpdateDeliveryStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	if err := h.validate.Var(id, "required,uuid"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	var body DeliveryStatusRequest
	if err := utils.DecodeBody(r, &body); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(body); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	err := h.svc.UpdateDeliveryStatus(ctx, id, entities.DeliveryStatus(body.DeliveryStatus))

	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}
	if errors.Is(err, entities.ErrStaleDeliveryStatus) {
		utils.WriteError(w, err.Error(), http.StatusConflict)
		return
	}

	if err != nil {
		h.logger.ErrorContext(ctx, "failed to update delivery status", slog.Any("error", err), slog.String("order_id", id))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "delivery status changed",
		slog.String("order_id", id),
		slog.String("status", body.DeliveryStatus),
		slog.String("admin", adminEmail(ctx)),
	)
	w.WriteHeader(http.StatusNoContent)
}

// DeleteOrder удаляет заказ.
// @Summary      Удалить заказ
// @Tags         admin
// @Security     BearerAuth
// @Param        id  path  string  true  "ID заказа"
// @Success      204
// @Failure      400  {object}  utils.ValidationErrorResponse "Неверный ID"
// @Failure      401  {object}  utils.ErrorResponse
// @Failure      403  {object}  utils.ErrorResponse
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /admin/orders/{id} [delete]
func (h *AdminHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	if err := h.validate.Var(id, "required,uuid"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	err := h.svc.DeleteOrder(ctx, id)

	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}

	if err != nil {
		h.logger.ErrorContext(ctx, "failed to delete order", slog.Any("error", err), slog.String("order_id", id))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "order deleted", slog.String("order_id", id), slog.String("admin", adminEmail(ctx)))
	w.WriteHeader(http.StatusNoContent)
}

func intParam(v string) (int, error) {
	if v == "" {
		return 0, nil
	}
	return strconv.Atoi(v)
}

func adminEmail(ctx context.Context) string {
	p, _ := middleware.PrincipalFromContext(ctx)
	return p.Email
}
