// Package config gathers the process configuration from the environment once at startup.
// Values come from the process environment, optionally seeded by a .env file
// (github.com/joho/godotenv/autoload in cmd/api).
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StoreDynamoDB = "dynamodb"
	StoreMemory   = "memory"
)

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// GatewayConfig is the connection data of one partner HTTP API.
type GatewayConfig struct {
	BaseURL string
	APIKey  string
}

type Config struct {
	Port         int
	Environment  string
	OriginClient string
	StoreBackend string
	CreateTables bool

	LogLevel  string
	LogFormat string

	Redis RedisConfig

	Bureau         GatewayConfig
	SignatureHub   GatewayConfig
	SMS            GatewayConfig
	SMSFrom        string
	Shortener      GatewayConfig
	GatewayMock    bool
	GatewayTimeout time.Duration

	S3Bucket   string
	S3Endpoint string
	PresignTTL time.Duration

	ParametersFile string

	WorkerCount  int
	QueueSize    int
	PollInterval time.Duration
	MinWitnesses int
	LockTTL      time.Duration
}

// Load reads the configuration from the environment, applying defaults.
func Load() Config {
	return Config{
		Port:         getenvInt("PORT", 8080),
		Environment:  getenvDefault("ENVIRONMENT", "local"),
		OriginClient: getenvDefault("ORIGIN_CLIENT", ""),
		StoreBackend: strings.ToLower(getenvDefault("STORE_BACKEND", StoreDynamoDB)),
		CreateTables: getenvBool("DYNAMODB_CREATE_TABLES"),

		LogLevel:  getenvDefault("LOG_LEVEL", "info"),
		LogFormat: getenvDefault("LOG_FORMAT", "json"),

		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getenvInt("REDIS_DB", 0),
		},

		Bureau:         GatewayConfig{BaseURL: os.Getenv("BUREAU_BASE_URL"), APIKey: os.Getenv("BUREAU_API_KEY")},
		SignatureHub:   GatewayConfig{BaseURL: os.Getenv("HUB_BASE_URL"), APIKey: os.Getenv("HUB_API_KEY")},
		SMS:            GatewayConfig{BaseURL: getenvDefault("SMS_BASE_URL", "https://api.zenvia.com"), APIKey: os.Getenv("SMS_API_TOKEN")},
		SMSFrom:        os.Getenv("SMS_FROM"),
		Shortener:      GatewayConfig{BaseURL: os.Getenv("SHORTENER_BASE_URL"), APIKey: os.Getenv("SHORTENER_API_KEY")},
		GatewayMock:    getenvBool("GATEWAY_MOCK"),
		GatewayTimeout: time.Duration(getenvInt("GATEWAY_TIMEOUT_SECONDS", 30)) * time.Second,

		S3Bucket:   getenvDefault("S3_BUCKET", "contract-documents"),
		S3Endpoint: os.Getenv("S3_ENDPOINT"),
		PresignTTL: time.Duration(getenvInt("PRESIGN_TTL_MINUTES", 15)) * time.Minute,

		ParametersFile: getenvDefault("BACKOFFICE_PARAMETERS_FILE", "config/parameters.yaml"),

		WorkerCount:  getenvInt("WORKER_COUNT", 4),
		QueueSize:    getenvInt("QUEUE_SIZE", 256),
		PollInterval: time.Duration(getenvInt("TEIMOSINHA_POLL_SECONDS", 60)) * time.Second,
		MinWitnesses: getenvInt("MIN_WITNESSES", 2),
		LockTTL:      time.Duration(getenvInt("LOCK_TTL_SECONDS", 120)) * time.Second,
	}
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getenvBool(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
