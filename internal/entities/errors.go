package entities

import "errors"

var (
	ErrOrderNotFound         = errors.New("order not found")
	ErrProductNotFound       = errors.New("product not found")
	ErrInvalidDeliveryStatus = errors.New("invalid delivery status")
	ErrStaleDeliveryStatus   = errors.New("delivery status changed later than this update")
)

// Ошибки оформления заказа. Причина оборачивается через fmt.Errorf("%w: %w", kind, cause).
var (
	ErrUnauthenticated       = errors.New("user not authenticated or email not available")
	ErrEmptyCart             = errors.New("cart is empty")
	ErrInvalidCart           = errors.New("invalid cart item")
	ErrInvalidAddress        = errors.New("invalid shipping address")
	ErrPriceMismatch         = errors.New("cart price does not match catalog")
	ErrPriceLookup           = errors.New("failed to load catalog prices")
	ErrCustomerResolution    = errors.New("failed to resolve payment customer")
	ErrOrderPersistence      = errors.New("failed to create order")
	ErrOrderItemPersistence  = errors.New("failed to create order items")
	ErrPaymentSession        = errors.New("failed to create payment session")
	ErrOrderUpdate           = errors.New("failed to update order")
	ErrNotification          = errors.New("failed to send confirmation email")
	ErrUpstreamConfigMissing = errors.New("upstream credentials are not configured")
)

var errorKinds = []struct {
	err  error
	kind string
}{
	{ErrUpstreamConfigMissing, "UpstreamConfigMissing"},
	{ErrUnauthenticated, "Unauthenticated"},
	{ErrEmptyCart, "EmptyCart"},
	{ErrInvalidCart, "InvalidCart"},
	{ErrInvalidAddress, "InvalidAddress"},
	{ErrPriceMismatch, "PriceMismatch"},
	{ErrPriceLookup, "PriceLookupFailed"},
	{ErrCustomerResolution, "CustomerResolutionFailed"},
	{ErrOrderPersistence, "OrderPersistenceFailed"},
	{ErrOrderItemPersistence, "OrderItemPersistenceFailed"},
	{ErrPaymentSession, "PaymentSessionFailed"},
	{ErrOrderUpdate, "OrderUpdateFailed"},
	{ErrNotification, "NotificationFailed"},
}

// ErrorKind returns the taxonomy name of a checkout error, "Internal" if it has none.
func ErrorKind(err error) string {
	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return "Internal"
}
