package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the full service configuration, sourced from the environment
// with an optional .env file for local development
type Config struct {
	Env        string `mapstructure:"env"`
	Port       string `mapstructure:"port"`
	LogLevel   string `mapstructure:"log_level"`
	RedisURL   string `mapstructure:"redis_url"`
	OffenseURL string `mapstructure:"offense_url"`
	DefenseURL string `mapstructure:"defense_url"`
	SalaryCSV  string `mapstructure:"salary_csv"`
}

// LoadConfig reads configuration from the environment. A missing .env file is
// fine; explicit environment variables win over it either way.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("DKLINEUP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("env", "development")
	v.SetDefault("port", "8080")
	v.SetDefault("log_level", "")
	v.SetDefault("redis_url", "")
	v.SetDefault("offense_url", "")
	v.SetDefault("defense_url", "")
	v.SetDefault("salary_csv", "")

	// Bind explicitly so AutomaticEnv sees keys that were never Set
	for _, key := range []string{"env", "port", "log_level", "redis_url", "offense_url", "defense_url", "salary_csv"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind env key %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// IsDevelopment reports whether the service runs in a development environment
func (c *Config) IsDevelopment() bool {
	return c.Env != "production"
}
