package payment

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/config"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"golang.org/x/sync/singleflight"
)

const customerLookupTimeout = 30 * time.Second

type stripeGateway struct {
	logger *slog.Logger
	api    *client.API
	group  singleflight.Group
}

// NewStripeGateway creates hosted checkout sessions in Stripe. With an empty
// secret key every call fails with ErrUpstreamConfigMissing.
func NewStripeGateway(logger *slog.Logger, cfg config.Stripe) *stripeGateway {
	return newStripeGateway(logger, cfg.SecretKey, nil)
}

func newStripeGateway(logger *slog.Logger, key string, backends *stripe.Backends) *stripeGateway {
	g := &stripeGateway{logger: logger.With(slog.String("component", "stripe"))}
	if key != "" {
		g.api = client.New(key, backends)
	}
	return g
}

// ResolveCustomer finds the customer by email or creates one. Concurrent calls
// for the same email share one lookup, and creation is idempotent per email
// and name so parallel processes converge on a single customer.
func (g *stripeGateway) ResolveCustomer(ctx context.Context, email, name string) (string, error) {
	if g.api == nil {
		return "", fmt.Errorf("%w: stripe secret key is not set", entities.ErrUpstreamConfigMissing)
	}

	ch := g.group.DoChan(strings.ToLower(email), func() (any, error) {
		// общий запрос не зависит от отмены контекста первого вызывающего
		shared, cancel := context.WithTimeout(context.WithoutCancel(ctx), customerLookupTimeout)
		defer cancel()
		return g.resolveCustomer(shared, email, name)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (g *stripeGateway) resolveCustomer(ctx context.Context, email, name string) (string, error) {
	params := &stripe.CustomerListParams{Email: stripe.String(email)}
	params.Context = ctx
	params.Limit = stripe.Int64(1)

	iter := g.api.Customers.List(params)
	if iter.Next() {
		return iter.Customer().ID, nil
	}
	if err := iter.Err(); err != nil {
		return "", fmt.Errorf("failed to list customers: %w", err)
	}

	create := &stripe.CustomerParams{
		Email: stripe.String(email),
		Name:  stripe.String(name),
	}
	create.Context = ctx
	create.SetIdempotencyKey(customerIdempotencyKey(email, name))

	c, err := g.api.Customers.New(create)
	if err != nil {
		return "", fmt.Errorf("failed to create customer: %w", err)
	}

	g.logger.InfoContext(ctx, "stripe customer created", slog.String("customer_id", c.ID))
	return c.ID, nil
}

func (g *stripeGateway) CreateSession(ctx context.Context, p entities.SessionParams) (entities.Session, error) {
	if g.api == nil {
		return entities.Session{}, fmt.Errorf("%w: stripe secret key is not set", entities.ErrUpstreamConfigMissing)
	}

	params := &stripe.CheckoutSessionParams{
		Customer:           stripe.String(p.CustomerID),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		SuccessURL:         stripe.String(p.SuccessURL),
		CancelURL:          stripe.String(p.CancelURL),
	}
	params.Context = ctx
	if p.IdempotencyKey != "" {
		params.SetIdempotencyKey(p.IdempotencyKey)
	}
	for k, v := range p.Metadata {
		params.AddMetadata(k, v)
	}

	for _, li := range p.LineItems {
		product := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name: stripe.String(li.Name),
		}
		if li.ImageURL != "" {
			product.Images = stripe.StringSlice([]string{li.ImageURL})
		}
		params.LineItems = append(params.LineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String(p.Currency),
				UnitAmount:  stripe.Int64(li.UnitAmount),
				ProductData: product,
			},
			Quantity: stripe.Int64(li.Quantity),
		})
	}

	s, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return entities.Session{}, fmt.Errorf("failed to create checkout session: %w", err)
	}

	session := entities.Session{ID: s.ID, URL: s.URL}
	if s.PaymentIntent != nil {
		session.PaymentIntentID = s.PaymentIntent.ID
	}
	return session, nil
}

func customerIdempotencyKey(email, name string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(email) + "\x00" + name))
	return "customer-" + hex.EncodeToString(sum[:])
}
