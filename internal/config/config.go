package config

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Security SecurityConfig
	Import   ImportConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	CORSAllowOrigins []string

	// TrustProxy reads the client IP from X-Forwarded-For when the
	// connecting hop is a private or loopback address
	TrustProxy bool
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool
	Seed            bool
}

type JWTConfig struct {
	SessionDuration time.Duration
	PrivateKey      *rsa.PrivateKey
	PublicKey       *rsa.PublicKey
	Issuer          string

	// Ephemeral keys were generated at start-up; sessions end with the process
	Ephemeral bool
}

type SecurityConfig struct {
	BCryptCost         int
	RateLimitPerSecond int
	RateLimitBurst     int
	MaxFailedAttempts  int
	LockoutDuration    time.Duration
	PinLength          int
	LoginRatePerSecond int
	LoginRateBurst     int
	AdminEmail         string
	AdminPin           string

	// AuditRetention of zero keeps the audit trail forever
	AuditRetention time.Duration
}

type ImportConfig struct {
	MaxUploadBytes   int64
	MaxRows          int
	DefaultSheet     string
	MaxStoreFailures int
	StoreRetryAfter  time.Duration
}

// LoadEnvFiles reads KEY=value files into the process environment.
// Missing files are skipped and variables already set are left alone.
func LoadEnvFiles(files ...string) error {
	for _, file := range files {
		if _, err := os.Stat(file); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			return fmt.Errorf("failed to load %s: %w", file, err)
		}
	}
	return nil
}

// Load builds the configuration from the environment and validates it
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:             envString("SERVER_PORT", "8080"),
			Host:             envString("SERVER_HOST", "localhost"),
			Environment:      envString("APP_ENV", "development"),
			ReadTimeout:      envOr("SERVER_READ_TIMEOUT", 15*time.Second, time.ParseDuration),
			WriteTimeout:     envOr("SERVER_WRITE_TIMEOUT", 15*time.Second, time.ParseDuration),
			CORSAllowOrigins: splitList(os.Getenv("CORS_ALLOW_ORIGINS"), "*"),
			TrustProxy:       envOr("TRUST_PROXY", false, strconv.ParseBool),
		},
		Database: DatabaseConfig{
			Host:            envString("DB_HOST", "localhost"),
			Port:            envString("DB_PORT", "5432"),
			User:            envString("DB_USER", "eventhub"),
			Password:        envString("DB_PASSWORD", "eventhub"),
			Name:            envString("DB_NAME", "eventhub"),
			SSLMode:         envString("DB_SSL_MODE", "disable"),
			MaxConnections:  envOr("DB_MAX_CONNECTIONS", 25, strconv.Atoi),
			MaxIdleConns:    envOr("DB_MAX_IDLE_CONNS", 5, strconv.Atoi),
			ConnMaxLifetime: envOr("DB_CONN_MAX_LIFETIME", time.Hour, time.ParseDuration),
			AutoMigrate:     envOr("AUTO_MIGRATE", false, strconv.ParseBool),
			Seed:            envOr("SEED_DATABASE", false, strconv.ParseBool),
		},
		Security: SecurityConfig{
			BCryptCost:         envOr("BCRYPT_COST", bcrypt.DefaultCost, strconv.Atoi),
			RateLimitPerSecond: envOr("RATE_LIMIT_PER_SECOND", 5, strconv.Atoi),
			RateLimitBurst:     envOr("RATE_LIMIT_BURST", 10, strconv.Atoi),
			MaxFailedAttempts:  envOr("MAX_FAILED_ATTEMPTS", 5, strconv.Atoi),
			LockoutDuration:    envOr("LOCKOUT_DURATION", 15*time.Minute, time.ParseDuration),
			PinLength:          envOr("PIN_LENGTH", 4, strconv.Atoi),
			LoginRatePerSecond: envOr("LOGIN_RATE_LIMIT_PER_SECOND", 1, strconv.Atoi),
			LoginRateBurst:     envOr("LOGIN_RATE_LIMIT_BURST", 5, strconv.Atoi),
			AdminEmail:         envString("BOOTSTRAP_ADMIN_EMAIL", ""),
			AdminPin:           envString("BOOTSTRAP_ADMIN_PIN", ""),
			AuditRetention:     envOr("AUDIT_RETENTION", time.Duration(0), time.ParseDuration),
		},
		JWT: JWTConfig{
			SessionDuration: envOr("JWT_SESSION_DURATION", 12*time.Hour, time.ParseDuration),
			Issuer:          envString("JWT_ISSUER", "eventhub"),
		},
		Import: ImportConfig{
			MaxUploadBytes:   envOr("IMPORT_MAX_UPLOAD_BYTES", int64(10<<20), parseInt64),
			MaxRows:          envOr("IMPORT_MAX_ROWS", 100000, strconv.Atoi),
			DefaultSheet:     envString("IMPORT_DEFAULT_SHEET", ""),
			MaxStoreFailures: envOr("IMPORT_MAX_STORE_FAILURES", 10, strconv.Atoi),
			StoreRetryAfter:  envOr("IMPORT_STORE_RETRY_AFTER", 30*time.Second, time.ParseDuration),
		},
	}

	if err := cfg.loadSessionKeys(os.Getenv("JWT_PRIVATE_KEY"), os.Getenv("JWT_PUBLIC_KEY")); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every setting the hub cannot start with
func (c *Config) Validate() error {
	var errs []error
	if c.Security.PinLength < 4 || c.Security.PinLength > 8 {
		errs = append(errs, fmt.Errorf("PIN_LENGTH must be between 4 and 8, got %d", c.Security.PinLength))
	}
	if c.Security.BCryptCost < bcrypt.MinCost || c.Security.BCryptCost > bcrypt.MaxCost {
		errs = append(errs, fmt.Errorf("BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost))
	}
	if c.Security.AdminEmail != "" && c.Security.AdminPin == "" {
		errs = append(errs, errors.New("BOOTSTRAP_ADMIN_PIN is required with BOOTSTRAP_ADMIN_EMAIL"))
	}
	if c.Security.AuditRetention < 0 {
		errs = append(errs, errors.New("AUDIT_RETENTION cannot be negative"))
	}
	if c.JWT.SessionDuration <= 0 {
		errs = append(errs, errors.New("JWT_SESSION_DURATION must be positive"))
	}
	if c.Import.MaxRows <= 0 || c.Import.MaxUploadBytes <= 0 {
		errs = append(errs, errors.New("IMPORT_MAX_ROWS and IMPORT_MAX_UPLOAD_BYTES must be positive"))
	}
	return errors.Join(errs...)
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

// envOr parses key with parse, keeping fallback when the variable is unset or malformed
func envOr[T any](key string, fallback T, parse func(string) (T, error)) T {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := parse(raw)
	if err != nil {
		return fallback
	}
	return v
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseInt64(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

// splitList splits a comma separated value, dropping blanks; an empty
// result yields fallback alone
func splitList(raw, fallback string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return []string{fallback}
	}
	return out
}

// loadSessionKeys sets the RS256 session keypair from base64 PEM values.
// Without them production refuses to start and other environments get a
// throwaway pair.
func (c *Config) loadSessionKeys(privateB64, publicB64 string) error {
	switch {
	case privateB64 != "" && publicB64 != "":
	case privateB64 != "" || publicB64 != "":
		return errors.New("JWT_PRIVATE_KEY and JWT_PUBLIC_KEY must be set together")
	case c.IsProduction():
		return errors.New("JWT_PRIVATE_KEY and JWT_PUBLIC_KEY must be set in production")
	default:
		var err error
		c.JWT.PrivateKey, c.JWT.PublicKey, err = GenerateRSAKeyPair()
		c.JWT.Ephemeral = true
		return err
	}

	privateKey, err := decodePEM("JWT_PRIVATE_KEY", privateB64, parseRSAPrivateKey)
	if err != nil {
		return err
	}
	publicKey, err := decodePEM("JWT_PUBLIC_KEY", publicB64, parseRSAPublicKey)
	if err != nil {
		return err
	}
	if !privateKey.PublicKey.Equal(publicKey) {
		return errors.New("JWT_PRIVATE_KEY and JWT_PUBLIC_KEY are not a pair")
	}

	c.JWT.PrivateKey, c.JWT.PublicKey = privateKey, publicKey
	return nil
}

func decodePEM[K any](name, b64 string, parse func([]byte) (K, error)) (K, error) {
	var zero K
	raw, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return zero, fmt.Errorf("failed to decode %s: %w", name, err)
	}
	block, _ := pem.Decode(raw)
	if block == nil {
		return zero, fmt.Errorf("%s holds no PEM block", name)
	}
	key, err := parse(block.Bytes)
	if err != nil {
		return zero, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return key, nil
}

// GenerateRSAKeyPair generates a new RSA key pair
func GenerateRSAKeyPair() (*rsa.PrivateKey, *rsa.PublicKey, error) {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate RSA key pair: %w", err)
	}

	return privateKey, &privateKey.PublicKey, nil
}

// parseRSAPrivateKey accepts PKCS1 and, as openssl genpkey writes, PKCS8
func parseRSAPrivateKey(der []byte) (*rsa.PrivateKey, error) {
	if key, err := x509.ParsePKCS1PrivateKey(der); err == nil {
		return key, nil
	}

	key, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		return nil, err
	}
	rsaKey, ok := key.(*rsa.PrivateKey)
	if !ok {
		return nil, errors.New("not an RSA private key")
	}
	return rsaKey, nil
}

func parseRSAPublicKey(der []byte) (*rsa.PublicKey, error) {
	key, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		return nil, err
	}
	rsaKey, ok := key.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("not an RSA public key")
	}
	return rsaKey, nil
}
