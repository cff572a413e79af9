package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	Store    StoreConfig
	Booking  BookingConfig
	Notifier NotifierConfig
	Tracing  TracingConfig
}

type ServerConfig struct {
	Port            string        `envconfig:"PORT" required:"true"`
	RequestTimeout  time.Duration `envconfig:"SERVER_REQUEST_TIMEOUT" default:"10s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"15s"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
	MinConns int32  `envconfig:"DB_MIN_CONNS" default:"2"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Idempotent-Replayed"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Issuer   string        `envconfig:"JWT_ISSUER" default:""`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"24h"`
}

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

type StoreConfig struct {
	Driver   string `envconfig:"STORE_DRIVER" default:"postgres"`
	SeedFile string `envconfig:"STORE_SEED_FILE" default:""`
}

type BookingConfig struct {
	PricingMode     string        `envconfig:"BOOKING_PRICING_MODE" default:"dynamic"`
	RepriceOnModify bool          `envconfig:"BOOKING_REPRICE_ON_MODIFY" default:"true"`
	IdempotencyTTL  time.Duration `envconfig:"BOOKING_IDEMPOTENCY_TTL" default:"24h"`
}

type NotifierConfig struct {
	WebhookURL   string        `envconfig:"NOTIFIER_WEBHOOK_URL" default:""`
	PollInterval time.Duration `envconfig:"NOTIFIER_POLL_INTERVAL" default:"2s"`
	BatchSize    int           `envconfig:"NOTIFIER_BATCH_SIZE" default:"50"`
	MaxAttempts  int           `envconfig:"NOTIFIER_MAX_ATTEMPTS" default:"8"`
	Timeout      time.Duration `envconfig:"NOTIFIER_TIMEOUT" default:"5s"`
	Disabled     bool          `envconfig:"NOTIFIER_DISABLED" default:"false"`
}

type TracingConfig struct {
	Enabled     bool    `envconfig:"TRACING_ENABLED" default:"false"`
	Endpoint    string  `envconfig:"TRACING_ENDPOINT" default:"localhost:4318"`
	Insecure    bool    `envconfig:"TRACING_INSECURE" default:"true"`
	ServiceName string  `envconfig:"TRACING_SERVICE_NAME" default:"hotel-booking-core"`
	SampleRatio float64 `envconfig:"TRACING_SAMPLE_RATIO" default:"1.0"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c Config) Validate() error {
	switch c.Store.Driver {
	case StoreDriverPostgres:
		if c.DB.User == "" || c.DB.DBName == "" {
			return fmt.Errorf("DB_USER and DB_NAME are required when STORE_DRIVER=%s", StoreDriverPostgres)
		}
	case StoreDriverMemory:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.Store.Driver)
	}
	switch c.Booking.PricingMode {
	case "dynamic", "static":
	default:
		return fmt.Errorf("unknown BOOKING_PRICING_MODE %q", c.Booking.PricingMode)
	}
	if c.Notifier.MaxAttempts < 1 {
		return fmt.Errorf("NOTIFIER_MAX_ATTEMPTS must be at least 1")
	}
	if c.Notifier.BatchSize < 1 {
		return fmt.Errorf("NOTIFIER_BATCH_SIZE must be at least 1")
	}
	return nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:            "8889", // Test port
			RequestTimeout:  5 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
			MinConns: 1,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret-key-for-jwt-signing-only",
			Issuer:   "hotel-booking-core-test",
			Duration: time.Hour,
		},
		Store: StoreConfig{
			Driver: StoreDriverMemory,
		},
		Booking: BookingConfig{
			PricingMode:     "dynamic",
			RepriceOnModify: true,
			IdempotencyTTL:  24 * time.Hour,
		},
		Notifier: NotifierConfig{
			PollInterval: 50 * time.Millisecond,
			BatchSize:    10,
			MaxAttempts:  3,
			Timeout:      time.Second,
			Disabled:     true,
		},
		Tracing: TracingConfig{
			ServiceName: "hotel-booking-core-test",
			SampleRatio: 1.0,
		},
	}
}
