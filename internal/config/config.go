package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the application configuration loaded from the environment
// and an optional .env file. Webhook credentials are secrets and must come
// from outside the binary.
type Config struct {
	AppName  string `mapstructure:"app_name"`
	Env      string `mapstructure:"app_env"`
	LogLevel string `mapstructure:"log_level"`

	BaseURL        string        `mapstructure:"b24_base_url"`
	UserID         string        `mapstructure:"b24_user_id"`
	WebhookSecret  string        `mapstructure:"b24_webhook_secret"`
	TimeoutSeconds int64         `mapstructure:"b24_timeout_seconds"`
	Timeout        time.Duration `mapstructure:"-"`
	TLSVerify      bool          `mapstructure:"b24_tls_verify"`
}

// Load reads configuration from environment variables and configs/.env.
func Load() (*Config, error) {
	_ = godotenv.Load("configs/.env")

	v := viper.New()

	v.SetDefault("app_name", "bitrix24-go")
	v.SetDefault("app_env", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("b24_base_url", "")
	v.SetDefault("b24_user_id", "")
	v.SetDefault("b24_webhook_secret", "")
	v.SetDefault("b24_timeout_seconds", 30)
	v.SetDefault("b24_tls_verify", true)

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("b24_base_url is required")
	}
	if cfg.UserID == "" || cfg.WebhookSecret == "" {
		return nil, fmt.Errorf("b24_user_id and b24_webhook_secret are required")
	}
	if cfg.TimeoutSeconds <= 0 {
		return nil, fmt.Errorf("invalid b24_timeout_seconds (must be positive seconds)")
	}
	cfg.Timeout = time.Duration(cfg.TimeoutSeconds) * time.Second

	return &cfg, nil
}
