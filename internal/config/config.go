package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/eatwithchiso/service-booking/internal/kv"
)

// DatabaseConfig holds PostgreSQL settings for the postgres store driver.
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// RedisConfig holds settings for the redis store driver.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// MongoConfig holds settings for the mongo store driver.
type MongoConfig struct {
	URI      string
	Database string
}

// KafkaConfig holds broker settings. Kafka is optional.
type KafkaConfig struct {
	Enabled     bool
	Brokers     []string
	GroupPrefix string
}

// EmailConfig holds confirmation email settings. An empty API key leaves
// confirmations undelivered and reported as such.
type EmailConfig struct {
	ResendAPIKey string
	From         string
	ReplyTo      string
	BaseURL      string
}

// ServiceConfig holds all configuration for the booking service.
type ServiceConfig struct {
	Port               string
	AppEnv             string
	StoreDriver        string
	StoreAPIKey        string
	RateLimitPerMinute int
	DBConfig           DatabaseConfig
	RedisConfig        RedisConfig
	MongoConfig        MongoConfig
	KafkaConfig        KafkaConfig
	EmailConfig        EmailConfig
}

// IsProduction reports whether APP_ENV is production.
func (c *ServiceConfig) IsProduction() bool {
	return c.AppEnv == "production"
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("SERVICE_PORT", "8080")
	v.SetDefault("STORE_DRIVER", kv.DriverMemory)
	v.SetDefault("RATE_LIMIT_PER_MINUTE", 30)

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "bookings")
	v.SetDefault("DB_SSLMODE", "disable")

	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DB", "bookings")

	v.SetDefault("KAFKA_ENABLED", false)
	v.SetDefault("KAFKA_BROKERS", "localhost:9092")
	v.SetDefault("KAFKA_GROUP_PREFIX", "")

	v.SetDefault("EMAIL_FROM", "Eat with Chiso <booking@eatwchiso.pages.dev>")
}

// Load reads configuration from .env, an optional config.yaml and the
// environment, in increasing order of precedence.
func Load() (*ServiceConfig, error) {
	// a missing .env is normal outside local development
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := &ServiceConfig{
		Port:               servicePort(v.GetString("SERVICE_PORT")),
		AppEnv:             v.GetString("APP_ENV"),
		StoreDriver:        strings.ToLower(strings.TrimSpace(v.GetString("STORE_DRIVER"))),
		StoreAPIKey:        v.GetString("STORE_API_KEY"),
		RateLimitPerMinute: v.GetInt("RATE_LIMIT_PER_MINUTE"),
		DBConfig:           loadDatabaseConfig(v),
		RedisConfig: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		MongoConfig: MongoConfig{
			URI:      v.GetString("MONGO_URI"),
			Database: v.GetString("MONGO_DB"),
		},
		KafkaConfig: KafkaConfig{
			Enabled:     v.GetBool("KAFKA_ENABLED"),
			Brokers:     splitList(v.GetString("KAFKA_BROKERS")),
			GroupPrefix: v.GetString("KAFKA_GROUP_PREFIX"),
		},
		EmailConfig: EmailConfig{
			ResendAPIKey: v.GetString("RESEND_API_KEY"),
			From:         v.GetString("EMAIL_FROM"),
			ReplyTo:      v.GetString("EMAIL_REPLY_TO"),
			BaseURL:      v.GetString("EMAIL_BASE_URL"),
		},
	}

	switch cfg.StoreDriver {
	case kv.DriverMemory, kv.DriverPostgres, kv.DriverRedis, kv.DriverMongo:
	default:
		return nil, kv.UnknownDriver(cfg.StoreDriver)
	}
	if cfg.KafkaConfig.Enabled && len(cfg.KafkaConfig.Brokers) == 0 {
		return nil, errors.New("KAFKA_ENABLED is set but KAFKA_BROKERS is empty")
	}

	return cfg, nil
}

func loadDatabaseConfig(v *viper.Viper) DatabaseConfig {
	return DatabaseConfig{
		Host:     v.GetString("DB_HOST"),
		Port:     v.GetString("DB_PORT"),
		User:     v.GetString("DB_USER"),
		Password: v.GetString("DB_PASSWORD"),
		DBName:   v.GetString("DB_NAME"),
		SSLMode:  v.GetString("DB_SSLMODE"),
	}
}

// servicePort turns "8080" into ":8080" and leaves "host:port" alone.
func servicePort(p string) string {
	p = strings.TrimSpace(p)
	if strings.Contains(p, ":") {
		return p
	}
	return ":" + p
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
