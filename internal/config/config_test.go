package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "secret")
	t.Setenv("POSTGRES_USER", "postgres")
	t.Setenv("POSTGRES_PASSWORD", "postgres")
}

func TestNew_Defaults(t *testing.T) {
	setRequired(t)

	cfg := New()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, []string{"*"}, cfg.Cors.AllowedOrigins)
	assert.Equal(t, "gbp", cfg.Checkout.Currency)
	assert.Equal(t, "TRK", cfg.Checkout.TrackingPrefix)
	assert.Equal(t, 10*24*time.Hour, cfg.Checkout.DeliveryWindow)
	assert.True(t, cfg.Checkout.VerifyPrices)
	assert.Empty(t, cfg.Stripe.SecretKey)
	assert.Nil(t, cfg.Auth.AdminEmails)
}

func TestNew_FromEnv(t *testing.T) {
	setRequired(t)
	t.Setenv("ENV", "production")
	t.Setenv("ADMIN_EMAILS", "a@shop.example, b@shop.example")
	t.Setenv("ALLOWED_CORS_ORIGINS", "https://shop.example,https://admin.shop.example")
	t.Setenv("CHECKOUT_DELIVERY_WINDOW", "72h")
	t.Setenv("CHECKOUT_VERIFY_PRICES", "false")
	t.Setenv("CACHE_CAPACITY", "not-a-number")

	cfg := New()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, []string{"a@shop.example", "b@shop.example"}, cfg.Auth.AdminEmails)
	assert.Len(t, cfg.Cors.AllowedOrigins, 2)
	assert.Equal(t, 72*time.Hour, cfg.Checkout.DeliveryWindow)
	assert.False(t, cfg.Checkout.VerifyPrices)
	assert.Equal(t, 1000, cfg.Cache.Capacity)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name string
		env  map[string]string
	}{
		{name: "missing jwt secret", env: map[string]string{"AUTH_JWT_SECRET": ""}},
		{name: "unknown env", env: map[string]string{"ENV": "qa"}},
		{name: "bad currency", env: map[string]string{"CHECKOUT_CURRENCY": "pounds"}},
		{name: "bad admin email", env: map[string]string{"ADMIN_EMAILS": "not-an-email"}},
		{name: "bad origin", env: map[string]string{"ALLOWED_CORS_ORIGINS": "shop"}},
		{name: "bad broker", env: map[string]string{"KAFKA_BROKERS": "localhost"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			setRequired(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			assert.Error(t, New().Validate())
		})
	}
}
