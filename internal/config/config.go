package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server   ServerConfig
	Log      LogConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Payment  PaymentConfig
	Orders   OrdersConfig
	Features FeatureFlags
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type LogConfig struct {
	Level string
}

type DatabaseConfig struct {
	Host           string
	Port           int
	User           string
	Password       string
	Name           string
	SSLMode        string
	MaxOpenConns   int
	MaxIdleConns   int
	MaxLifetime    time.Duration
	MigrationsPath string
}

func (d DatabaseConfig) ConnectionString() string {
	return "host=" + d.Host +
		" port=" + strconv.Itoa(d.Port) +
		" user=" + d.User +
		" password=" + d.Password +
		" dbname=" + d.Name +
		" sslmode=" + d.SSLMode
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	TTL      time.Duration
}

type KafkaConfig struct {
	Brokers     []string
	OrdersTopic string
}

// PaymentConfig controls the payment step. The simulated provider stands in
// for a real gateway: a fixed delay, then a random success draw.
type PaymentConfig struct {
	Provider   string // "simulated" or "http"
	GatewayURL string
	Timeout    time.Duration
	SimDelay   time.Duration
	SimSuccess float64
}

type OrdersConfig struct {
	RetentionWindow time.Duration
}

type FeatureFlags struct {
	EnableOrderCaching bool
	EnableOrderEvents  bool
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnvInt("SERVER_PORT", 8080),
			ReadTimeout:  time.Duration(getEnvInt("SERVER_READ_TIMEOUT", 30)) * time.Second,
			WriteTimeout: time.Duration(getEnvInt("SERVER_WRITE_TIMEOUT", 30)) * time.Second,
		},
		Log: LogConfig{
			Level: getEnvString("LOG_LEVEL", "info"),
		},
		Database: DatabaseConfig{
			Host:           getEnvString("DB_HOST", "localhost"),
			Port:           getEnvInt("DB_PORT", 5432),
			User:           getEnvString("DB_USER", "shopeasy"),
			Password:       getEnvString("DB_PASSWORD", "shopeasy"),
			Name:           getEnvString("DB_NAME", "shopeasy_db"),
			SSLMode:        getEnvString("DB_SSLMODE", "disable"),
			MaxOpenConns:   getEnvInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:   getEnvInt("DB_MAX_IDLE_CONNS", 5),
			MaxLifetime:    time.Duration(getEnvInt("DB_CONN_MAX_LIFETIME", 300)) * time.Second,
			MigrationsPath: getEnvString("DB_MIGRATIONS_PATH", "migrations"),
		},
		Redis: RedisConfig{
			Host:     getEnvString("REDIS_HOST", "localhost"),
			Port:     getEnvInt("REDIS_PORT", 6379),
			Password: getEnvString("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
			TTL:      time.Duration(getEnvInt("REDIS_TTL", 300)) * time.Second,
		},
		Kafka: KafkaConfig{
			Brokers:     []string{getEnvString("KAFKA_BROKER", "localhost:9092")},
			OrdersTopic: getEnvString("KAFKA_ORDERS_TOPIC", "shopeasy.orders"),
		},
		Payment: PaymentConfig{
			Provider:   getEnvString("PAYMENT_PROVIDER", "simulated"),
			GatewayURL: getEnvString("PAYMENT_GATEWAY_URL", "http://localhost:8083"),
			Timeout:    time.Duration(getEnvInt("PAYMENT_TIMEOUT", 30)) * time.Second,
			SimDelay:   time.Duration(getEnvInt("PAYMENT_SIM_DELAY_MS", 2500)) * time.Millisecond,
			SimSuccess: getEnvFloat("PAYMENT_SIM_SUCCESS_RATE", 0.9),
		},
		Orders: OrdersConfig{
			RetentionWindow: time.Duration(getEnvInt("ORDER_RETENTION_DAYS", 7)) * 24 * time.Hour,
		},
		Features: FeatureFlags{
			EnableOrderCaching: getEnvBool("ENABLE_ORDER_CACHING", true),
			EnableOrderEvents:  getEnvBool("ENABLE_ORDER_EVENTS", false),
		},
	}
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
