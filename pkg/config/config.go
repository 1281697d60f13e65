package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	// API settings
	APIHost   string `mapstructure:"api_host"`
	APIPort   int    `mapstructure:"api_port"`
	APIPrefix string `mapstructure:"api_prefix"`

	// Database settings
	DBType string `mapstructure:"db_type"`
	DBPath string `mapstructure:"db_path"`

	// Optional CORS settings
	CORSOrigins []string `mapstructure:"cors_origins"`

	// Optional logging settings
	LogLevel string `mapstructure:"log_level"`
}

const (
	DefaultAPIHost   = "0.0.0.0"
	DefaultAPIPort   = 3000
	DefaultAPIPrefix = "api"
	DefaultDBType    = "sqlite"
	DefaultDBPath    = "data/userapi.db"
	DefaultLogLevel  = "info"
)

func Load(configPath string) (*Config, error) {
	// Optional .env file, real environment wins
	_ = godotenv.Load()

	v := viper.New()

	// Set defaults
	v.SetDefault("api_host", DefaultAPIHost)
	v.SetDefault("api_port", DefaultAPIPort)
	v.SetDefault("api_prefix", DefaultAPIPrefix)
	v.SetDefault("db_type", DefaultDBType)
	v.SetDefault("db_path", DefaultDBPath)
	v.SetDefault("log_level", DefaultLogLevel)

	// Allow environment variable overrides
	v.AutomaticEnv()
	v.SetEnvPrefix("USERAPI")

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		_ = v.ReadInConfig() // optional file
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.DBType != "sqlite" {
		return fmt.Errorf("db_type must be 'sqlite', got %q", c.DBType)
	}

	if c.DBPath == "" {
		return fmt.Errorf("db_path is required")
	}

	if c.APIPrefix == "" {
		return fmt.Errorf("api_prefix is required")
	}

	return nil
}

func (c *Config) IsDevMode() bool {
	return os.Getenv("USERAPI_DEV_MODE") == "1"
}
