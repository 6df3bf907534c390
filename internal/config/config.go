package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Kafka Kafka `validate:"required"`

	Postgres Postgres `validate:"required"`

	Cache Cache

	Auth Auth `validate:"required"`

	Stripe Stripe

	Email Email

	Checkout Checkout `validate:"required"`

	Sweep Sweep
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`

	ReadTimeout  time.Duration `validate:"gte=0"`
	WriteTimeout time.Duration `validate:"gte=0"`
}

type Kafka struct {
	GroupID string   `validate:"required"`
	Brokers []string `validate:"required,min=1,dive,hostname_port"`
	Topic   string   `validate:"required"`

	ReaderMaxWait time.Duration `validate:"gte=0"`
	BatchTimeout  time.Duration `validate:"gte=0"`
}

type Postgres struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	DBName   string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`

	MigrationsPath string
}

type CORS struct {
	// "*" разрешает любые origin
	AllowedOrigins []string `validate:"required,min=1,dive,url|eq=*"`
}

type Cache struct {
	Capacity int           `validate:"gte=0"`
	TTL      time.Duration `validate:"gte=0"`
}

type Auth struct {
	JWTSecret   string   `validate:"required"`
	AdminEmails []string `validate:"dive,email"`
}

// Пустые ключи допустимы: запрос упадёт с ErrUpstreamConfigMissing, а не процесс на старте.
type Stripe struct {
	SecretKey string
}

type Email struct {
	APIKey string
	From   string `validate:"required"`
}

type Checkout struct {
	Currency       string        `validate:"required,len=3,lowercase"`
	TrackingPrefix string        `validate:"required,alphanum"`
	DeliveryWindow time.Duration `validate:"gt=0"`
	VerifyPrices   bool
	// используется, если в запросе нет заголовка Origin
	PublicURL string `validate:"required,url"`
}

type Sweep struct {
	// 0 отключает периодическую отмену зависших заказов
	Interval  time.Duration `validate:"gte=0"`
	OlderThan time.Duration `validate:"gte=0"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),

			ReadTimeout:  envDuration("HTTP_READ_TIMEOUT", 10*time.Second),
			WriteTimeout: envDuration("HTTP_WRITE_TIMEOUT", 30*time.Second),
		},

		Cors: CORS{
			AllowedOrigins: envList("ALLOWED_CORS_ORIGINS", "*"),
		},

		Kafka: Kafka{
			GroupID: env("KAFKA_GROUP_ID", "storefront-checkout"),
			Topic:   env("KAFKA_TOPIC", "deliveries"),
			Brokers: envList("KAFKA_BROKERS", "localhost:9092"),

			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", 10*time.Millisecond),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "storefront"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),

			MigrationsPath: env("POSTGRES_MIGRATIONS_PATH", "migrations"),
		},

		Cache: Cache{
			Capacity: envInt("CACHE_CAPACITY", 1000),
			TTL:      envDuration("CACHE_TTL", 10*time.Minute),
		},

		Auth: Auth{
			JWTSecret:   env("AUTH_JWT_SECRET", ""),
			AdminEmails: envList("ADMIN_EMAILS", ""),
		},

		Stripe: Stripe{
			SecretKey: env("STRIPE_SECRET_KEY", ""),
		},

		Email: Email{
			APIKey: env("RESEND_API_KEY", ""),
			From:   env("EMAIL_FROM", "Storefront <orders@resend.dev>"),
		},

		Checkout: Checkout{
			Currency:       env("CHECKOUT_CURRENCY", "gbp"),
			TrackingPrefix: env("CHECKOUT_TRACKING_PREFIX", "TRK"),
			DeliveryWindow: envDuration("CHECKOUT_DELIVERY_WINDOW", 10*24*time.Hour),
			VerifyPrices:   envBool("CHECKOUT_VERIFY_PRICES", true),
			PublicURL:      env("CHECKOUT_PUBLIC_URL", "http://localhost:3000"),
		},

		Sweep: Sweep{
			Interval:  envDuration("SWEEP_INTERVAL", 15*time.Minute),
			OlderThan: envDuration("SWEEP_OLDER_THAN", 24*time.Hour),
		},
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envList(key string, fallback string) []string {
	value := env(key, fallback)
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}
