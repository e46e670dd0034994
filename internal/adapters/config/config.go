package config

import (
	"time"

	"github.com/joho/godotenv"
)

type MongoConfig struct {
	URI                    string
	Database               string
	Timeout                time.Duration
	MaxPoolSize            uint64
	MinPoolSize            uint64
	ConnectTimeout         time.Duration
	ServerSelectionTimeout time.Duration
}

type RabbitMQConfig struct {
	Enabled         bool
	URL             string
	MaxRetries      int
	RetryDelay      time.Duration
	ExchangeConfigs []ExchangeConfig
}

type ExchangeConfig struct {
	Name       string
	Type       string // direct, topic, fanout, headers
	Durable    bool
	AutoDelete bool
}

type HTTPConfig struct {
	Port          string
	BindInterface string
}

type MetricsConfig struct {
	Enabled bool
}

type Config struct {
	Mongo    MongoConfig
	RabbitMQ RabbitMQConfig
	HTTP     HTTPConfig
	Logger   LoggerConfig
	Metrics  MetricsConfig
}

type LoggerConfig struct {
	Endpoint     string
	ServiceName  string
	IsProduction bool
	Level        string
}

// one exchange per entity, routed by event name (product.created, provider.deleted, ...)
func exchangeConfigs(entities ...string) []ExchangeConfig {
	exchangeType := getStringEnv("RABBITMQ_EXCHANGE_TYPE", "topic")
	durable := getBoolEnv("RABBITMQ_EXCHANGE_DURABLE", true)
	autoDelete := getBoolEnv("RABBITMQ_EXCHANGE_AUTO_DELETE", false)

	configs := make([]ExchangeConfig, len(entities))
	for i, entity := range entities {
		configs[i] = ExchangeConfig{
			Name:       "exchange." + entity,
			Type:       exchangeType,
			Durable:    durable,
			AutoDelete: autoDelete,
		}
	}
	return configs
}

func NewConfig() *Config {
	_ = godotenv.Load()
	return &Config{
		Mongo: MongoConfig{
			URI:                    getStringEnv("MONGO_URI", "mongodb://localhost:27017"),
			Database:               getStringEnv("MONGO_DATABASE", "catalog"),
			Timeout:                getDurationEnv("MONGO_TIMEOUT", 10*time.Second),
			MaxPoolSize:            getUintEnv("MONGO_MAX_POOL_SIZE", 100),
			MinPoolSize:            getUintEnv("MONGO_MIN_POOL_SIZE", 10),
			ConnectTimeout:         getDurationEnv("MONGO_CONNECT_TIMEOUT", 10*time.Second),
			ServerSelectionTimeout: getDurationEnv("MONGO_SERVER_SELECTION_TIMEOUT", 5*time.Second),
		},
		HTTP: HTTPConfig{
			Port:          getStringEnv("HTTP_PORT", "8080"),
			BindInterface: getStringEnv("HTTP_BIND_INTERFACE", "0.0.0.0"),
		},
		RabbitMQ: RabbitMQConfig{
			Enabled:         getBoolEnv("RABBITMQ_ENABLED", false),
			URL:             getStringEnv("RABBITMQ_URL", "amqp://localhost:5672"),
			MaxRetries:      getIntEnv("RABBITMQ_MAX_RETRIES", 0),
			RetryDelay:      getDurationEnv("RABBITMQ_RETRY_DELAY", time.Second),
			ExchangeConfigs: exchangeConfigs("product", "provider"),
		},
		Logger: LoggerConfig{
			Endpoint:     getStringEnv("OTEL_ENDPOINT", "localhost:4317"),
			ServiceName:  getStringEnv("OTEL_SERVICE_NAME", "catalog"),
			IsProduction: getBoolEnv("IS_PRODUCTION", false),
			Level:        getStringEnv("LOG_LEVEL", "info"),
		},
		Metrics: MetricsConfig{
			Enabled: getBoolEnv("METRICS_ENABLED", true),
		},
	}
}
