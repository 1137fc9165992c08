package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	S3     S3Config
	Parser ParserConfig
	Gate   GateConfig
	Log    LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// S3Config holds the image archive bucket settings.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// ParserConfig holds vision-model parser settings.
type ParserConfig struct {
	APIKey       string `mapstructure:"api_key"`
	DefaultModel string `mapstructure:"default_model"`
	TimeoutSecs  int    `mapstructure:"timeout_secs"`
}

// GateConfig holds the basic-auth credentials protecting non-API routes.
// Both empty means the gate is disabled (local development).
type GateConfig struct {
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
}

// Enabled reports whether the basic-auth gate should be enforced.
func (g *GateConfig) Enabled() bool {
	return g.User != "" && g.Password != ""
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the SEIKYU_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SEIKYU")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "seikyu")
	v.SetDefault("db.password", "seikyu_secret")
	v.SetDefault("db.name", "seikyu_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// S3 defaults
	v.SetDefault("s3.region", "ap-northeast-1")
	v.SetDefault("s3.bucket", "seikyu-uploads")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.max_file_size_mb", 20)
	v.SetDefault("s3.presign_expiry", 3600)

	// Parser defaults
	v.SetDefault("parser.api_key", "")
	v.SetDefault("parser.default_model", "gemini-2.5-flash")
	v.SetDefault("parser.timeout_secs", 120)

	// Gate defaults (empty = disabled)
	v.SetDefault("gate.user", "")
	v.SetDefault("gate.password", "")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":          "SEIKYU_SERVER_PORT",
		"server.read_timeout":  "SEIKYU_SERVER_READ_TIMEOUT",
		"server.write_timeout": "SEIKYU_SERVER_WRITE_TIMEOUT",
		"server.environment":   "SEIKYU_SERVER_ENVIRONMENT",
		"db.host":              "SEIKYU_DB_HOST",
		"db.port":              "SEIKYU_DB_PORT",
		"db.user":              "SEIKYU_DB_USER",
		"db.password":          "SEIKYU_DB_PASSWORD",
		"db.name":              "SEIKYU_DB_NAME",
		"db.sslmode":           "SEIKYU_DB_SSLMODE",
		"db.max_open":          "SEIKYU_DB_MAX_OPEN",
		"db.max_idle":          "SEIKYU_DB_MAX_IDLE",
		"s3.region":            "SEIKYU_S3_REGION",
		"s3.bucket":            "SEIKYU_S3_BUCKET",
		"s3.endpoint":          "SEIKYU_S3_ENDPOINT",
		"s3.access_key":        "SEIKYU_S3_ACCESS_KEY",
		"s3.secret_key":        "SEIKYU_S3_SECRET_KEY",
		"s3.max_file_size_mb":  "SEIKYU_S3_MAX_FILE_SIZE_MB",
		"s3.presign_expiry":    "SEIKYU_S3_PRESIGN_EXPIRY",
		"parser.api_key":       "SEIKYU_PARSER_API_KEY",
		"parser.default_model": "SEIKYU_PARSER_DEFAULT_MODEL",
		"parser.timeout_secs":  "SEIKYU_PARSER_TIMEOUT_SECS",
		"gate.user":            "SEIKYU_GATE_USER",
		"gate.password":        "SEIKYU_GATE_PASSWORD",
		"log.level":            "SEIKYU_LOG_LEVEL",
		"log.format":           "SEIKYU_LOG_FORMAT",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if SEIKYU_SERVER_PORT
	// is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("SEIKYU_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		MaxFileSizeMB: v.GetInt64("s3.max_file_size_mb"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
	}
	cfg.Parser = ParserConfig{
		APIKey:       v.GetString("parser.api_key"),
		DefaultModel: v.GetString("parser.default_model"),
		TimeoutSecs:  v.GetInt("parser.timeout_secs"),
	}
	cfg.Gate = GateConfig{
		User:     v.GetString("gate.user"),
		Password: v.GetString("gate.password"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	return cfg, nil
}
