package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Database struct {
		DSN string `mapstructure:"dsn"`
	} `mapstructure:"database"`

	Server struct {
		Addr string `mapstructure:"addr"`
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`

	Annotation struct {
		Provider       string `mapstructure:"provider"` // "gemini" or "openai"
		Model          string `mapstructure:"model"`
		GoogleApiKey   string `mapstructure:"google_api_key"`
		OpenaiApiKey   string `mapstructure:"openai_api_key"`
		TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	} `mapstructure:"annotation"`
}

// Timeout returns the per-invocation model timeout.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Annotation.TimeoutSeconds) * time.Second
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".") // Look for config.yaml in the current directory

	viper.SetDefault("database.dsn", "prompts.db")
	viper.SetDefault("server.addr", "0.0.0.0")
	viper.SetDefault("server.port", "8000")
	viper.SetDefault("annotation.provider", "gemini")
	viper.SetDefault("annotation.model", "gemini-2.5-flash")
	viper.SetDefault("annotation.timeout_seconds", 15)

	// Allow Viper to read environment variables. The API keys are bound
	// explicitly so the conventional variable names work without a prefix.
	viper.AutomaticEnv()
	viper.BindEnv("annotation.google_api_key", "GEMINI_API_KEY")
	viper.BindEnv("annotation.openai_api_key", "OPENAI_API_KEY")

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine; defaults and env vars carry it.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}
	return &config, nil
}
