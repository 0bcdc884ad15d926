package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// DBPoolSize caps the connection pool; it is the process-wide bound on
	// concurrent store operations.
	DBPoolSize int32

	// StatementMaxRecords is how many recent transactions a statement returns.
	StatementMaxRecords int

	// RateLimitRPS is the per-IP request rate limit. Zero disables limiting.
	RateLimitRPS int64

	// KafkaBrokers is a comma-separated broker list. Empty disables event
	// publishing.
	KafkaBrokers []string
	KafkaTopic   string
}

// LoadConfig loads configuration from environment variables and a .env file
// if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("POOL_SIZE", 25)
	viper.SetDefault("STATEMENT_MAX_RECORDS", 10)
	viper.SetDefault("RATE_LIMIT_RPS", 0)
	viper.SetDefault("KAFKA_BROKERS", "")
	viper.SetDefault("KAFKA_TOPIC", "transaction_completed")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.DBPoolSize = viper.GetInt32("POOL_SIZE")
	if cfg.DBPoolSize <= 0 {
		cfg.DBPoolSize = 25
		log.Printf("Warning: Invalid POOL_SIZE. Defaulting to %d.\n", cfg.DBPoolSize)
	}

	cfg.StatementMaxRecords = viper.GetInt("STATEMENT_MAX_RECORDS")
	if cfg.StatementMaxRecords <= 0 {
		cfg.StatementMaxRecords = 10
		log.Printf("Warning: Invalid STATEMENT_MAX_RECORDS. Defaulting to %d.\n", cfg.StatementMaxRecords)
	}

	cfg.RateLimitRPS = viper.GetInt64("RATE_LIMIT_RPS")

	if brokers := viper.GetString("KAFKA_BROKERS"); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}
	cfg.KafkaTopic = viper.GetString("KAFKA_TOPIC")

	return cfg, nil
}
