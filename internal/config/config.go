package config

import (
	"net"
	"strconv"
	"time"

	"github.com/heartmarshall/vocabulary-backend/internal/domain"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Auth       AuthConfig       `yaml:"auth"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
	NLP        NLPConfig        `yaml:"nlp"`
	Import     ImportConfig     `yaml:"import"`
	Pagination PaginationConfig `yaml:"pagination"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds token and password-hashing settings.
type AuthConfig struct {
	JWTSecret       string        `yaml:"jwt_secret"        env:"AUTH_JWT_SECRET"        env-required:"true"`
	JWTIssuer       string        `yaml:"jwt_issuer"        env:"AUTH_JWT_ISSUER"        env-default:"vocabulary"`
	AccessTokenTTL  time.Duration `yaml:"access_token_ttl"  env:"AUTH_ACCESS_TOKEN_TTL"  env-default:"15m"`
	RefreshTokenTTL time.Duration `yaml:"refresh_token_ttl" env:"AUTH_REFRESH_TOKEN_TTL" env-default:"720h"`
	BcryptCost      int           `yaml:"bcrypt_cost"       env:"AUTH_BCRYPT_COST"       env-default:"12"`
	// CleanupInterval is how often the server purges expired refresh tokens. Zero disables it.
	CleanupInterval time.Duration `yaml:"cleanup_interval"  env:"AUTH_CLEANUP_INTERVAL"  env-default:"1h"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-IP limits for the auth endpoints.
type RateLimitConfig struct {
	AuthPerMinute   int           `yaml:"auth_per_minute"  env:"RATE_LIMIT_AUTH_PER_MINUTE"  env-default:"20"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}

// NLPConfig selects the tokenizers available to chapter analysis.
type NLPConfig struct {
	Spacy  SpacyConfig  `yaml:"spacy"`
	Kagome KagomeConfig `yaml:"kagome"`
}

// SpacyConfig points to the HTTP service hosting spaCy pipelines.
type SpacyConfig struct {
	BaseURL string        `yaml:"base_url" env:"NLP_SPACY_BASE_URL" env-default:"http://localhost:8001"`
	Timeout time.Duration `yaml:"timeout"  env:"NLP_SPACY_TIMEOUT"  env-default:"30s"`
	// ModelsRaw maps languages to spaCy models as "lang:model" pairs separated by commas.
	ModelsRaw string `yaml:"models" env:"NLP_SPACY_MODELS" env-default:"fr:fr_core_news_sm"`

	// Models is parsed from ModelsRaw during validation.
	Models map[domain.Language]string `yaml:"-" env:"-"`
}

// KagomeConfig toggles the in-process Japanese tokenizer.
type KagomeConfig struct {
	Enabled bool `yaml:"enabled" env:"NLP_KAGOME_ENABLED" env-default:"false"`
}

// ImportConfig limits chapter import from web pages.
type ImportConfig struct {
	HTTPTimeout  time.Duration `yaml:"http_timeout"   env:"IMPORT_HTTP_TIMEOUT"   env-default:"30s"`
	MaxBodyBytes int64         `yaml:"max_body_bytes" env:"IMPORT_MAX_BODY_BYTES" env-default:"10485760"`
	UserAgent    string        `yaml:"user_agent"     env:"IMPORT_USER_AGENT"     env-default:"vocabulary-importer/1.0"`
	// CSVMaxBytes bounds uploaded dictionary CSV files.
	CSVMaxBytes int64 `yaml:"csv_max_bytes" env:"IMPORT_CSV_MAX_BYTES" env-default:"5242880"`
	// CSVBatchSize is the number of dictionary rows inserted per statement.
	CSVBatchSize int `yaml:"csv_batch_size" env:"IMPORT_CSV_BATCH_SIZE" env-default:"500"`
}

// PaginationConfig holds dictionary listing page sizes.
type PaginationConfig struct {
	DefaultPageSize int `yaml:"default_page_size" env:"PAGINATION_DEFAULT_PAGE_SIZE" env-default:"1000"`
	MaxPageSize     int `yaml:"max_page_size"     env:"PAGINATION_MAX_PAGE_SIZE"     env-default:"1000"`
}

// Addr returns the listen address in host:port form.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}
