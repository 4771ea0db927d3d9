package config

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Model    ModelConfig
	OCR      OCRConfig
	JWT      JWTConfig
	Security SecurityConfig
	Logging  LoggingConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	ShutdownTimeout  time.Duration
	BodyLimit        string
	CORSAllowOrigins []string
}

type DatabaseConfig struct {
	Driver          string
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	SQLitePath      string
	AutoMigrate     bool
	MigrationsPath  string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type ModelConfig struct {
	Seed           int64
	Samples        int
	Trees          int
	MaxDepth       int
	LearningRate   float64
	BackgroundSize int
	Explainer      bool
	TrainAtStartup bool
}

type OCRConfig struct {
	GigaChatAuthKey    string
	GigaChatScope      string
	GigaChatModel      string
	InsecureSkipVerify bool
	LLMTimeout         time.Duration
	MockFallback       bool
	TesseractLanguages []string
	MaxUploadBytes     int64
}

type JWTConfig struct {
	AccessTokenDuration time.Duration
	PrivateKey          *rsa.PrivateKey
	PublicKey           *rsa.PublicKey
	Issuer              string
}

type SecurityConfig struct {
	RateLimitPerSecond int
	RateLimitBurst     int
	MaxBatchLedgers    int
	MaxTransactions    int
	// OperatorUsername and OperatorPasswordHash (bcrypt) gate POST /api/v1/auth/token
	OperatorUsername     string
	OperatorPasswordHash string
}

type LoggingConfig struct {
	Level      string
	Format     string
	OutputFile string
}

var defaultCORSOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}

// Load reads configuration from the environment, after loading a .env file when one exists
func Load() (*Config, error) {
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8000"),
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			Environment:     getEnv("APP_ENV", "development"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 120*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
			BodyLimit:       getEnv("SERVER_BODY_LIMIT", "12M"),
		},
		Database: DatabaseConfig{
			Driver:          strings.ToLower(getEnv("DB_DRIVER", "sqlite")),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "creditnext"),
			Password:        getEnv("DB_PASSWORD", "creditnext"),
			Name:            getEnv("DB_NAME", "creditnext"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			SQLitePath:      getEnv("DB_SQLITE_PATH", "creditnext.db"),
			AutoMigrate:     getBoolEnv("AUTO_MIGRATE", false),
			MigrationsPath:  getEnv("DB_MIGRATIONS_PATH", "db/migrations"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		Model: ModelConfig{
			Seed:           getInt64Env("MODEL_SEED", 42),
			Samples:        getIntEnv("MODEL_SAMPLES", 3500),
			Trees:          getIntEnv("MODEL_TREES", 260),
			MaxDepth:       getIntEnv("MODEL_MAX_DEPTH", 4),
			LearningRate:   getFloatEnv("MODEL_LEARNING_RATE", 0.06),
			BackgroundSize: getIntEnv("MODEL_BACKGROUND_SIZE", 256),
			Explainer:      getBoolEnv("MODEL_EXPLAINER", true),
			TrainAtStartup: getBoolEnv("MODEL_TRAIN_AT_STARTUP", true),
		},
		OCR: OCRConfig{
			GigaChatAuthKey:    getEnv("GIGACHAT_AUTH_KEY", ""),
			GigaChatScope:      getEnv("GIGACHAT_SCOPE", "GIGACHAT_API_PERS"),
			GigaChatModel:      getEnv("GIGACHAT_MODEL", "GigaChat"),
			InsecureSkipVerify: getBoolEnv("GIGACHAT_INSECURE_SKIP_VERIFY", false),
			LLMTimeout:         getDurationEnv("OCR_LLM_TIMEOUT", 60*time.Second),
			MockFallback:       getBoolEnv("OCR_MOCK_FALLBACK", true),
			TesseractLanguages: splitList(getEnv("OCR_TESSERACT_LANGUAGES", "tha,eng")),
			MaxUploadBytes:     getInt64Env("OCR_MAX_UPLOAD_BYTES", 10<<20),
		},
		Security: SecurityConfig{
			RateLimitPerSecond:   getIntEnv("RATE_LIMIT_PER_SECOND", 10),
			RateLimitBurst:       getIntEnv("RATE_LIMIT_BURST", 20),
			MaxBatchLedgers:      getIntEnv("MAX_BATCH_LEDGERS", 50),
			MaxTransactions:      getIntEnv("MAX_TRANSACTIONS_PER_LEDGER", 5000),
			OperatorUsername:     getEnv("OPERATOR_USERNAME", "operator"),
			OperatorPasswordHash: getEnv("OPERATOR_PASSWORD_HASH", ""),
		},
		JWT: JWTConfig{
			AccessTokenDuration: getDurationEnv("JWT_ACCESS_TOKEN_DURATION", 12*time.Hour),
			Issuer:              getEnv("JWT_ISSUER", "creditnext"),
		},
		Logging: LoggingConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Format:     getEnv("LOG_FORMAT", "json"),
			OutputFile: getEnv("LOG_FILE", ""),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	var err error
	config.JWT.PrivateKey, config.JWT.PublicKey, err = config.loadJWTKeys()
	if err != nil {
		return nil, fmt.Errorf("failed to load RSA keys: %w", err)
	}

	return config, nil
}

// Validate rejects settings the service cannot start with
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q: expected sqlite or postgres", c.Database.Driver)
	}
	if c.Model.Samples <= 0 || c.Model.Trees <= 0 || c.Model.MaxDepth <= 0 || c.Model.LearningRate <= 0 {
		return errors.New("model samples, trees, depth and learning rate must be positive")
	}
	if c.Security.MaxBatchLedgers <= 0 || c.Security.MaxTransactions <= 0 {
		return errors.New("batch and ledger limits must be positive")
	}
	if c.OCR.MaxUploadBytes <= 0 {
		return errors.New("OCR_MAX_UPLOAD_BYTES must be positive")
	}
	return nil
}

func (c *DatabaseConfig) DSN() string {
	if c.Driver == "sqlite" {
		return c.SQLitePath
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// URL returns the postgres connection URL used by golang-migrate
func (c *DatabaseConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		url.QueryEscape(c.User), url.QueryEscape(c.Password), c.Host, c.Port, c.Name, c.SSLMode)
}

// LLMEnabled reports whether statement text can be structured by GigaChat
func (c *OCRConfig) LLMEnabled() bool {
	return c.GigaChatAuthKey != ""
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getInt64Env(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// loadJWTKeys loads the operator token keypair.
// Explicit JWT_PRIVATE_KEY / JWT_PUBLIC_KEY always win; production requires them,
// other environments fall back to an ephemeral keypair.
func (c *Config) loadJWTKeys() (*rsa.PrivateKey, *rsa.PublicKey, error) {
	privateKeyB64 := os.Getenv("JWT_PRIVATE_KEY")
	publicKeyB64 := os.Getenv("JWT_PUBLIC_KEY")

	if privateKeyB64 != "" && publicKeyB64 != "" {
		return c.loadKeysFromEnvVars(privateKeyB64, publicKeyB64)
	}

	if c.IsProduction() {
		return nil, nil, fmt.Errorf("JWT_PRIVATE_KEY and JWT_PUBLIC_KEY environment variables must be set in production environments")
	}

	return GenerateRSAKeyPair()
}

// loadKeysFromEnvVars loads RSA keys from base64-encoded environment variables
func (c *Config) loadKeysFromEnvVars(privateKeyB64, publicKeyB64 string) (*rsa.PrivateKey, *rsa.PublicKey, error) {

	privateKeyBytes, err := base64.StdEncoding.DecodeString(privateKeyB64)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode JWT_PRIVATE_KEY: %w", err)
	}

	publicKeyBytes, err := base64.StdEncoding.DecodeString(publicKeyB64)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode JWT_PUBLIC_KEY: %w", err)
	}

	privateKey, err := loadRSAPrivateKey(privateKeyBytes)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse private key: %w", err)
	}

	publicKey, err := loadRSAPublicKey(publicKeyBytes)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse public key: %w", err)
	}

	return privateKey, publicKey, nil
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns the local dashboard origins
func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")
	if corsOrigins == "" {
		return append([]string(nil), defaultCORSOrigins...)
	}
	return splitList(corsOrigins)
}

// GenerateRSAKeyPair generates a new RSA key pair
func GenerateRSAKeyPair() (*rsa.PrivateKey, *rsa.PublicKey, error) {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate RSA key pair: %w", err)
	}

	return privateKey, &privateKey.PublicKey, nil
}

// loadRSAPrivateKey loads an RSA private key from PEM format
func loadRSAPrivateKey(pemData []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(pemData)
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing the key")
	}

	privateKey, err := x509.ParsePKCS1PrivateKey(block.Bytes)
	if err != nil {
		// Fallback: PKCS8 format support for compatibility with various key generation tools
		key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("failed to parse private key: %w", err)
		}

		privateKey, ok := key.(*rsa.PrivateKey)
		if !ok {
			return nil, errors.New("not an RSA private key")
		}

		return privateKey, nil
	}

	return privateKey, nil
}

// loadRSAPublicKey loads an RSA public key from PEM format
func loadRSAPublicKey(pemData []byte) (*rsa.PublicKey, error) {
	block, _ := pem.Decode(pemData)
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing the key")
	}

	publicKey, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key: %w", err)
	}

	rsaPublicKey, ok := publicKey.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("not an RSA public key")
	}

	return rsaPublicKey, nil
}
