package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server          ServerConfig          `mapstructure:"server"`
	Database        DatabaseConfig        `mapstructure:"database"`
	Redis           RedisConfig           `mapstructure:"redis"`
	Kafka           KafkaConfig           `mapstructure:"kafka"`
	Sweep           SweepConfig           `mapstructure:"sweep"`
	MerchantService MerchantServiceConfig `mapstructure:"merchant_service"`
	PaymentGateway  PaymentGatewayConfig  `mapstructure:"payment_gateway"`
	Log             LogConfig             `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// KafkaConfig holds broker addresses and the topics of the settlement pipeline.
type KafkaConfig struct {
	Brokers               []string `mapstructure:"brokers"`
	GroupID               string   `mapstructure:"group_id"`
	TransactionsTopic     string   `mapstructure:"transactions_topic"`
	ValidationResultTopic string   `mapstructure:"validation_result_topic"`
	PayoutsReadyTopic     string   `mapstructure:"payouts_ready_topic"`
	ConsumersEnabled      bool     `mapstructure:"consumers_enabled"`
}

// SweepConfig controls the periodic aggregation sweep.
type SweepConfig struct {
	Interval time.Duration `mapstructure:"interval"` // 0 disables the scheduled sweep
	PageSize int           `mapstructure:"page_size"`
	LockTTL  time.Duration `mapstructure:"lock_ttl"`
}

// MerchantServiceConfig points at the external merchant registry.
type MerchantServiceConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// PaymentGatewayConfig points at the downstream payment provider.
type PaymentGatewayConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: MST_ (Merchant Settlement).
// Nested keys use underscore: MST_DATABASE_HOST, MST_SWEEP_PAGE_SIZE, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "settlement")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("kafka.brokers", []string{"localhost:9092"})
	v.SetDefault("kafka.group_id", "merchant-settlement")
	v.SetDefault("kafka.transactions_topic", "transactions.created")
	v.SetDefault("kafka.validation_result_topic", "transactions.validated")
	v.SetDefault("kafka.payouts_ready_topic", "payouts.ready")
	v.SetDefault("kafka.consumers_enabled", true)
	v.SetDefault("sweep.interval", "24h")
	v.SetDefault("sweep.page_size", 1000)
	v.SetDefault("sweep.lock_ttl", "10m")
	v.SetDefault("merchant_service.base_url", "http://localhost:8081")
	v.SetDefault("merchant_service.timeout", "5s")
	v.SetDefault("payment_gateway.base_url", "http://localhost:8082")
	v.SetDefault("payment_gateway.timeout", "10s")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: MST_DATABASE_HOST -> database.host
	v.SetEnvPrefix("MST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
