package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type Checkouter interface {
	Checkout(ctx context.Context, req entities.CheckoutRequest) (entities.CheckoutResult, error)
}

type OrderTracker interface {
	TrackOrder(ctx context.Context, trackingNumber string) (entities.Order, error)
}

type ProductGetter interface {
	GetProduct(ctx context.Context, id string) (entities.Product, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	checkout Checkouter
	orders   OrderTracker
	products ProductGetter
}

func NewHTTPHandler(logger *slog.Logger, checkout Checkouter, orders OrderTracker, products ProductGetter) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validator.New(),
		checkout: checkout,
		orders:   orders,
		products: products,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Post("/checkout", h.Checkout)
	r.Get("/orders/track/{tracking_number}", h.TrackOrder)
	r.Get("/products/{id}", h.GetProduct)
}

// Checkout оформляет заказ и возвращает ссылку на оплату.
// @Summary      Оформить заказ
// @Description  Создаёт заказ в статусе pending, платёжную сессию и номер отслеживания. Любая ошибка возвращается как 500.
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      CheckoutRequest  true  "Корзина и адрес доставки"
// @Success      200      {object}  CheckoutResponse
// @Failure      500      {object}  utils.ErrorResponse "Ошибка оформления"
// @Router       /checkout [post]
func (h *HTTPHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	checkoutsInProgress.Inc()
	defer checkoutsInProgress.Dec()
	start := time.Now()
	defer func() { checkoutDuration.Observe(time.Since(start).Seconds()) }()

	var body CheckoutRequest
	if err := utils.DecodeBody(r, &body); err != nil {
		checkoutTotal.WithLabelValues("InvalidBody").Inc()
		h.logger.WarnContext(ctx, "invalid checkout body", slog.Any("error", err))
		utils.WriteError(w, "invalid request body: "+err.Error(), http.StatusInternalServerError)
		return
	}

	res, err := h.checkout.Checkout(ctx, CheckoutJSONToEntity(body, utils.BearerToken(r), r.Header.Get("Origin")))
	if err != nil {
		checkoutTotal.WithLabelValues(entities.ErrorKind(err)).Inc()
		utils.WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	checkoutTotal.WithLabelValues("Success").Inc()
	utils.WriteJSON(w, CheckoutResponse{
		URL:            res.PaymentURL,
		OrderID:        res.OrderID,
		TrackingNumber: res.TrackingNumber,
	}, http.StatusOK)
}

// TrackOrder возвращает заказ по номеру отслеживания.
// @Summary      Отследить заказ
// @Tags         orders
// @Produce      json
// @Param        tracking_number  path      string  true  "Номер отслеживания"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/track/{tracking_number} [get]
func (h *HTTPHandler) TrackOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	trackingNumber := chi.URLParam(r, "tracking_number")

	if err := h.validate.Var(trackingNumber, "required,alphanum,max=32"); err != nil {
		trackRequestTotal.WithLabelValues(strconv.Itoa(http.StatusBadRequest)).Inc()
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.orders.TrackOrder(ctx, trackingNumber)

	if errors.Is(err, entities.ErrOrderNotFound) {
		trackRequestTotal.WithLabelValues(strconv.Itoa(http.StatusNotFound)).Inc()
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}

	if err != nil {
		trackRequestTotal.WithLabelValues(strconv.Itoa(http.StatusInternalServerError)).Inc()
		h.logger.ErrorContext(ctx, "failed to track order", slog.Any("error", err), slog.String("tracking_number", trackingNumber))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	trackRequestTotal.WithLabelValues(strconv.Itoa(http.StatusOK)).Inc()
	utils.WriteJSON(w, OrderEntityToJSON(order, false), http.StatusOK)
}

// GetProduct возвращает товар с отзывами.
// @Summary      Получить товар
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "ID товара"
// @Success      200  {object}  Product
// @Failure      404  {object}  utils.ErrorResponse "Товар не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /products/{id} [get]
func (h *HTTPHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	product, err := h.products.GetProduct(ctx, id)

	if errors.Is(err, entities.ErrProductNotFound) {
		utils.WriteError(w, "product not found", http.StatusNotFound)
		return
	}

	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get product", slog.Any("error", err), slog.String("id", id))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, ProductEntityToJSON(product), http.StatusOK)
}
