package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	AWS     AWSConfig     `mapstructure:"aws"`
	Market  MarketConfig  `mapstructure:"market"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Logger  LoggerConfig  `mapstructure:"logger"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// AWSConfig holds DynamoDB connection configuration. Endpoint is only set
// for local DynamoDB.
type AWSConfig struct {
	Region           string `mapstructure:"region"`
	AccessKeyID      string `mapstructure:"access_key_id"`
	SecretAccessKey  string `mapstructure:"secret_access_key"`
	DynamoDBEndpoint string `mapstructure:"dynamodb_endpoint"`
	RulesTable       string `mapstructure:"rules_table"`
}

// MarketConfig selects the market data source. Only the built-in mock feed
// is implemented today.
type MarketConfig struct {
	Source string `mapstructure:"source"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load loads configuration from an optional yaml file and environment
// variables. A missing file is not an error when no explicit path was given.
func Load(configPath string) (*Config, error) {
	if configPath != "" {
		viper.SetConfigFile(configPath)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	bindEnvVars()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)

	viper.SetDefault("aws.region", "us-east-1")
	viper.SetDefault("aws.access_key_id", "local")
	viper.SetDefault("aws.secret_access_key", "local")
	viper.SetDefault("aws.rules_table", "pricing_rules")

	viper.SetDefault("market.source", "mock")

	viper.SetDefault("metrics.enabled", true)

	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.format", "json")
}

// bindEnvVars maps the conventional environment variables onto config keys.
func bindEnvVars() {
	_ = viper.BindEnv("server.port", "PORT")
	_ = viper.BindEnv("aws.region", "AWS_REGION")
	_ = viper.BindEnv("aws.access_key_id", "AWS_ACCESS_KEY_ID")
	_ = viper.BindEnv("aws.secret_access_key", "AWS_SECRET_ACCESS_KEY")
	_ = viper.BindEnv("aws.dynamodb_endpoint", "DYNAMODB_ENDPOINT")
	_ = viper.BindEnv("aws.rules_table", "PRICING_RULES_TABLE")
	_ = viper.BindEnv("market.source", "MARKET_DATA_SOURCE")
	_ = viper.BindEnv("logger.level", "LOG_LEVEL")
}

// Validate checks the configuration for obvious misconfiguration.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	if c.AWS.Region == "" {
		return fmt.Errorf("aws.region is required")
	}
	if c.AWS.RulesTable == "" {
		return fmt.Errorf("aws.rules_table is required")
	}
	return nil
}
