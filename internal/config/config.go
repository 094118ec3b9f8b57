package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	DriverSQL    = "sql"
	DriverRedis  = "redis"
	DriverMemory = "memory"
)

type Config struct {
	AppEnv      string `envconfig:"APP_ENV" default:"dev"`
	Port        string `envconfig:"PORT" default:"8080" validate:"required,numeric"`
	DatabaseURL string `envconfig:"DATABASE_URL" default:"kizuna.db" validate:"required"`

	Storage StorageConfig
	Session SessionConfig
	Links   LinksConfig
	Editor  EditorConfig

	CheckoutDelay time.Duration `envconfig:"CHECKOUT_DELAY" default:"2500ms" validate:"gte=0"`
	SlideInterval time.Duration `envconfig:"SLIDE_INTERVAL" default:"4s" validate:"gt=0"`

	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS"`
}

type StorageConfig struct {
	Driver            string `envconfig:"STORAGE_DRIVER" default:"sql" validate:"oneof=sql redis memory"`
	RedisAddr         string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword     string `envconfig:"REDIS_PASSWORD"`
	RedisDB           int    `envconfig:"REDIS_DB" default:"0" validate:"gte=0"`
	CompressThreshold int    `envconfig:"STORAGE_COMPRESS_THRESHOLD" default:"4096" validate:"gte=0"`
}

type SessionConfig struct {
	Cookie string        `envconfig:"SESSION_COOKIE" default:"kizuna_session" validate:"required"`
	TTL    time.Duration `envconfig:"SESSION_TTL" default:"720h" validate:"gt=0"`
	Secure bool          `envconfig:"SESSION_COOKIE_SECURE" default:"false"`
}

type LinksConfig struct {
	ServiceDomain string `envconfig:"SERVICE_DOMAIN" default:"kizuna.love" validate:"required,hostname"`
	DefaultSlug   string `envconfig:"DEFAULT_SLUG" default:"nosso-amor" validate:"required"`
	QREndpoint    string `envconfig:"QR_ENDPOINT" default:"https://api.qrserver.com/v1/create-qr-code/" validate:"required,url"`
	QRSize        string `envconfig:"QR_SIZE" default:"500x500"`
	QRColor       string `envconfig:"QR_COLOR" default:"050505" validate:"hexadecimal"`
	QRBgColor     string `envconfig:"QR_BGCOLOR" default:"ffffff" validate:"hexadecimal"`
}

type EditorConfig struct {
	DomainStepDelay   time.Duration `envconfig:"DOMAIN_CHECK_STEP_DELAY" default:"800ms" validate:"gte=0"`
	MaxUploadBytes    int64         `envconfig:"MAX_UPLOAD_BYTES" default:"10485760" validate:"gt=0"`
	MaxImageDimension int           `envconfig:"MAX_IMAGE_DIMENSION" default:"1600" validate:"gte=0"`
}

// Load reads an optional .env file and then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv decodes and validates the process environment.
func FromEnv() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("decode env: %w", err)
	}
	cfg.AppEnv = strings.ToLower(strings.TrimSpace(cfg.AppEnv))

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	log.Printf("config loaded: env=%s storage=%s session_cookie=%s secure=%t",
		cfg.AppEnv, cfg.Storage.Driver, cfg.Session.Cookie, cfg.Session.Secure)
	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Storage.Driver == DriverRedis && strings.TrimSpace(cfg.Storage.RedisAddr) == "" {
		return fmt.Errorf("REDIS_ADDR must be set when STORAGE_DRIVER=redis")
	}

	if IsProdLike(cfg.AppEnv) {
		if cfg.Storage.Driver == DriverMemory {
			return fmt.Errorf("in prod/release STORAGE_DRIVER must not be memory")
		}
		if !cfg.Session.Secure {
			return fmt.Errorf("in prod/release SESSION_COOKIE_SECURE must be true")
		}
	}

	return nil
}

func IsProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}
