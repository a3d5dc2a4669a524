package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	MinIO    MinIOConfig
	Auth     AuthConfig
	I18n     I18nConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	DBName             string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetime    time.Duration
	ConnMaxIdleTime    time.Duration
	QueryTimeout       time.Duration
	SlowQueryThreshold time.Duration
	PrepareStmt        bool
}

type MinIOConfig struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	Region          string
	UseSSL          bool
	// PublicURL is the base clients fetch objects from, without the bucket.
	PublicURL     string
	PresignExpiry time.Duration
}

type AuthConfig struct {
	JWTSecret         string
	TokenTTL          time.Duration
	AdminEmail        string
	AdminPasswordHash string // bcrypt
}

type I18nConfig struct {
	// FallbackLanguage is served when no active default language is configured.
	FallbackLanguage string
	DefaultCacheTTL  time.Duration
	SeedLanguages    bool
}

// Load reads the configuration from the environment. Unset or malformed
// values keep their defaults.
func Load() *Config {
	return &Config{
		Server:   loadServer(),
		Database: loadDatabase(),
		MinIO:    loadMinIO(),
		Auth:     loadAuth(),
		I18n:     loadI18n(),
	}
}

func loadServer() ServerConfig {
	return ServerConfig{
		Port:         getEnvOrDefault("SERVER_PORT", "8010"),
		ReadTimeout:  getDurationOrDefault("SERVER_READ_TIMEOUT", 30*time.Second),
		WriteTimeout: getDurationOrDefault("SERVER_WRITE_TIMEOUT", 30*time.Second),
	}
}

func loadDatabase() DatabaseConfig {
	return DatabaseConfig{
		Host:               getEnvOrDefault("DB_HOST", "localhost"),
		Port:               getEnvOrDefault("DB_PORT", "5432"),
		User:               getEnvOrDefault("DB_USER", "postgres"),
		Password:           getEnvOrDefault("DB_PASSWORD", "postgres"),
		DBName:             getEnvOrDefault("DB_NAME", "storefront_db"),
		SSLMode:            getEnvOrDefault("DB_SSLMODE", "disable"),
		MaxOpenConns:       getIntOrDefault("DB_MAX_OPEN_CONNS", 25),
		MaxIdleConns:       getIntOrDefault("DB_MAX_IDLE_CONNS", 5),
		ConnMaxLifetime:    getDurationOrDefault("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		ConnMaxIdleTime:    getDurationOrDefault("DB_CONN_MAX_IDLE_TIME", 2*time.Minute),
		QueryTimeout:       getDurationOrDefault("DB_QUERY_TIMEOUT", 10*time.Second),
		SlowQueryThreshold: getDurationOrDefault("DB_SLOW_QUERY_THRESHOLD", 500*time.Millisecond),
		PrepareStmt:        getBoolOrDefault("DB_PREPARE_STMT", true),
	}
}

func loadMinIO() MinIOConfig {
	return MinIOConfig{
		Endpoint:        getEnvOrDefault("MINIO_ENDPOINT", "localhost:9000"),
		AccessKeyID:     os.Getenv("MINIO_ACCESS_KEY"),
		SecretAccessKey: os.Getenv("MINIO_SECRET_KEY"),
		BucketName:      getEnvOrDefault("MINIO_BUCKET", "products"),
		Region:          getEnvOrDefault("MINIO_REGION", "us-east-1"),
		UseSSL:          getBoolOrDefault("MINIO_USE_SSL", false),
		PublicURL:       getEnvOrDefault("MINIO_PUBLIC_URL", "http://localhost:9000"),
		PresignExpiry:   getDurationOrDefault("MINIO_PRESIGN_EXPIRY", 15*time.Minute),
	}
}

func loadAuth() AuthConfig {
	return AuthConfig{
		JWTSecret:         os.Getenv("JWT_SECRET"),
		TokenTTL:          getDurationOrDefault("JWT_TOKEN_TTL", 24*time.Hour),
		AdminEmail:        strings.ToLower(getEnvOrDefault("ADMIN_EMAIL", "admin@example.com")),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
	}
}

func loadI18n() I18nConfig {
	return I18nConfig{
		FallbackLanguage: strings.ToLower(getEnvOrDefault("I18N_FALLBACK_LANGUAGE", "en")),
		DefaultCacheTTL:  getDurationOrDefault("I18N_DEFAULT_CACHE_TTL", 30*time.Second),
		SeedLanguages:    getBoolOrDefault("I18N_SEED_LANGUAGES", true),
	}
}

// DSN returns the PostgreSQL connection string.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC connect_timeout=10",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// Validate reports every missing or malformed setting at once. The service
// still starts with an invalid config; admin features and images fail at use.
func (c *Config) Validate() error {
	var errs []error
	if c.Database.Host == "" {
		errs = append(errs, errors.New("DB_HOST is required"))
	}
	if c.Auth.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required for admin endpoints"))
	}
	if c.Auth.AdminPasswordHash == "" {
		errs = append(errs, errors.New("ADMIN_PASSWORD_HASH is required for admin login"))
	}
	if c.MinIO.AccessKeyID == "" || c.MinIO.SecretAccessKey == "" {
		errs = append(errs, errors.New("MINIO_ACCESS_KEY and MINIO_SECRET_KEY are required for product images"))
	}
	if l := len(c.I18n.FallbackLanguage); l < 2 || l > 5 {
		errs = append(errs, fmt.Errorf("I18N_FALLBACK_LANGUAGE must be 2-5 characters, got %q", c.I18n.FallbackLanguage))
	}
	return errors.Join(errs...)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntOrDefault(key string, defaultValue int) int {
	if intVal, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return intVal
	}
	return defaultValue
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if duration, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return duration
	}
	return defaultValue
}

func getBoolOrDefault(key string, defaultValue bool) bool {
	if boolVal, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return boolVal
	}
	return defaultValue
}
