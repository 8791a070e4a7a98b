package config

import (
	"fmt"
	"strings"
	"time"

	"wallet-transaction-engine/internal/adapter/client"
	"wallet-transaction-engine/internal/adapter/kafka"
	"wallet-transaction-engine/internal/sharding"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server        ServerConfig                  `mapstructure:"server"`
	Sharding      sharding.Config               `mapstructure:"sharding"`
	Redis         RedisConfig                   `mapstructure:"redis"`
	Kafka         KafkaConfig                   `mapstructure:"kafka"`
	Fees          FeesConfig                    `mapstructure:"fees"`
	InitCache     InitCacheConfig               `mapstructure:"init_cache"`
	JWT           JWTConfig                     `mapstructure:"jwt"`
	PersonService PersonServiceConfig           `mapstructure:"person_service"`
	Identity      client.IdentityProviderConfig `mapstructure:"identity"`
	Log           LogConfig                     `mapstructure:"log"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Addr returns the listen address string.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
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

type KafkaConfig struct {
	Brokers  []string      `mapstructure:"brokers"`
	GroupID  string        `mapstructure:"group_id"`
	Topics   kafka.Topics  `mapstructure:"topics"`
	DedupTTL time.Duration `mapstructure:"dedup_ttl"`
}

// FeesConfig holds the fee fraction per payment type (0.01 = 1%).
type FeesConfig struct {
	DepositPercent    float64 `mapstructure:"deposit_percent"`
	WithdrawalPercent float64 `mapstructure:"withdrawal_percent"`
	TransferPercent   float64 `mapstructure:"transfer_percent"`
}

type InitCacheConfig struct {
	TTL           time.Duration `mapstructure:"ttl"`
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
}

type JWTConfig struct {
	Secret string `mapstructure:"secret"`
	Issuer string `mapstructure:"issuer"`
}

type PersonServiceConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: WTE_ (Wallet
// Transaction Engine). Nested keys use underscore: WTE_REDIS_HOST,
// WTE_JWT_SECRET, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "10s")
	v.SetDefault("server.write_timeout", "10s")
	v.SetDefault("server.shutdown_timeout", "15s")
	v.SetDefault("sharding.algorithm", sharding.AlgorithmHashMod)
	v.SetDefault("sharding.sharded_tables", []string{"wallets", "transactions"})
	v.SetDefault("sharding.broadcast_tables", []string{"wallet_types"})
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("kafka.brokers", []string{"localhost:9092"})
	v.SetDefault("kafka.group_id", "wallet-transaction-engine")
	v.SetDefault("kafka.topics.deposit_requested", "payments.deposit.requested")
	v.SetDefault("kafka.topics.withdrawal_requested", "payments.withdrawal.requested")
	v.SetDefault("kafka.topics.deposit_completed", "payments.deposit.completed")
	v.SetDefault("kafka.topics.withdrawal_completed", "payments.withdrawal.completed")
	v.SetDefault("kafka.topics.withdrawal_failed", "payments.withdrawal.failed")
	v.SetDefault("kafka.dedup_ttl", "24h")
	v.SetDefault("fees.deposit_percent", 0.0)
	v.SetDefault("fees.withdrawal_percent", 0.01)
	v.SetDefault("fees.transfer_percent", 0.005)
	v.SetDefault("init_cache.ttl", "15m")
	v.SetDefault("init_cache.sweep_interval", "1m")
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.issuer", "wallet-transaction-engine")
	v.SetDefault("person_service.base_url", "http://localhost:8081")
	v.SetDefault("person_service.timeout", "5s")
	v.SetDefault("identity.base_url", "http://localhost:8082")
	v.SetDefault("identity.realm", "wallet")
	v.SetDefault("identity.client_id", "wallet-transaction-engine")
	v.SetDefault("identity.client_secret", "")
	v.SetDefault("identity.timeout", "5s")
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

	// Environment variables: WTE_REDIS_HOST -> redis.host
	v.SetEnvPrefix("WTE")
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
