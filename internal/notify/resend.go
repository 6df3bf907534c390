package notify

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/config"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/utils"

	"github.com/resend/resend-go/v2"
	"github.com/shopspring/decimal"
	"github.com/sony/gobreaker"
)

type emailSender interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

type resendNotifier struct {
	logger    *slog.Logger
	sender    emailSender
	from      string
	observers []string
	cb        *gobreaker.CircuitBreaker
}

// NewResendNotifier sends order confirmations through Resend. Observers get a
// copy of every confirmation. With an empty API key every send fails with
// ErrUpstreamConfigMissing.
func NewResendNotifier(logger *slog.Logger, cfg config.Email, observers []string) *resendNotifier {
	var sender emailSender
	if cfg.APIKey != "" {
		sender = resend.NewClient(cfg.APIKey).Emails
	}
	return newResendNotifier(logger, sender, cfg.From, observers)
}

func newResendNotifier(logger *slog.Logger, sender emailSender, from string, observers []string) *resendNotifier {
	logger = logger.With(slog.String("component", "notifier"))

	settings := gobreaker.Settings{
		Name:        "Resend",
		MaxRequests: 1,
		Interval:    30 * time.Second,
		Timeout:     time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				slog.String("name", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	}

	return &resendNotifier{
		logger:    logger,
		sender:    sender,
		from:      from,
		observers: observers,
		cb:        gobreaker.NewCircuitBreaker(settings),
	}
}

func (n *resendNotifier) SendOrderConfirmation(ctx context.Context, c entities.Confirmation) error {
	if n.sender == nil {
		return fmt.Errorf("%w: resend api key is not set", entities.ErrUpstreamConfigMissing)
	}

	html, err := renderConfirmation(c)
	if err != nil {
		return fmt.Errorf("failed to render confirmation: %w", err)
	}

	req := &resend.SendEmailRequest{
		From:    n.from,
		To:      []string{c.To},
		Cc:      observersExcept(n.observers, c.To),
		Subject: "Order confirmed: " + c.TrackingNumber,
		Html:    html,
	}

	resp, err := utils.ExecuteWithBreaker(n.cb, func() (*resend.SendEmailResponse, error) {
		return n.sender.SendWithContext(ctx, req)
	})
	if err != nil {
		return err
	}

	n.logger.InfoContext(ctx, "confirmation email sent",
		slog.String("order_id", c.OrderID),
		slog.String("email_id", resp.Id),
	)
	return nil
}

func observersExcept(observers []string, recipient string) []string {
	var cc []string
	for _, o := range observers {
		if o != "" && !strings.EqualFold(o, recipient) {
			cc = append(cc, o)
		}
	}
	return cc
}

var currencySymbols = map[string]string{
	"gbp": "£",
	"usd": "$",
	"eur": "€",
}

func formatMoney(amount decimal.Decimal, currency string) string {
	if symbol, ok := currencySymbols[strings.ToLower(currency)]; ok {
		return symbol + amount.StringFixed(2)
	}
	return amount.StringFixed(2) + " " + strings.ToUpper(currency)
}

var confirmationTmpl = template.Must(template.New("confirmation").Funcs(template.FuncMap{
	"money": formatMoney,
	"lineTotal": func(it entities.CartItem) decimal.Decimal {
		return it.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
	},
	"date": func(t time.Time) string { return t.Format("Monday, 2 January 2006") },
}).Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #222;">
  <h2>Thank you for your order, {{.CustomerName}}!</h2>
  <p>Order <strong>{{.OrderID}}</strong> has been received and is being prepared.</p>
  <table cellpadding="6" style="border-collapse: collapse;">
    {{- range .Items}}
    <tr>
      <td>{{.Name}}</td>
      <td>&times; {{.Quantity}}</td>
      <td style="text-align: right;">{{money (lineTotal .) $.Currency}}</td>
    </tr>
    {{- end}}
    <tr>
      <td colspan="2"><strong>Total</strong></td>
      <td style="text-align: right;"><strong>{{money .Amount .Currency}}</strong></td>
    </tr>
  </table>
  <p>Tracking number: <strong>{{.TrackingNumber}}</strong></p>
  <p>Estimated delivery: {{date .EstimatedAt}}</p>
  <p><a href="{{.TrackingURL}}">Track your order</a></p>
</body>
</html>
`))

func renderConfirmation(c entities.Confirmation) (string, error) {
	var buf bytes.Buffer
	if err := confirmationTmpl.Execute(&buf, c); err != nil {
		return "", err
	}
	return buf.String(), nil
}
