package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"

	sharedConfig "marketplace/internal/shared/config"
)

type Config struct {
	Server     sharedConfig.ServerConfig     `mapstructure:"server"`
	Database   sharedConfig.DatabaseConfig   `mapstructure:"database"`
	Logger     sharedConfig.LoggerConfig     `mapstructure:"logger"`
	Auth       sharedConfig.AuthConfig       `mapstructure:"auth"`
	OAuth      sharedConfig.OAuthConfig      `mapstructure:"oauth"`
	Email      sharedConfig.EmailConfig      `mapstructure:"email"`
	Redis      sharedConfig.RedisConfig      `mapstructure:"redis"`
	Stripe     sharedConfig.StripeConfig     `mapstructure:"stripe"`
	Upload     sharedConfig.UploadConfig     `mapstructure:"upload"`
	SuperAdmin sharedConfig.SuperAdminConfig `mapstructure:"super_admin"`
	RateLimit  sharedConfig.RateLimitConfig  `mapstructure:"rate_limit"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load reads configs/config.yaml (when present) and MARKETPLACE_* environment variables.
// configPath, when set, points at an explicit file.
func Load(env string, configPath ...string) (*Config, error) {
	v := viper.New()

	if len(configPath) > 0 && configPath[0] != "" {
		v.SetConfigFile(configPath[0])
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath("../configs")
		v.AddConfigPath("../../configs")
	}

	v.SetEnvPrefix("MARKETPLACE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if env != "" && env != "default" {
		v.Set("server.mode", env)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if config.Auth.JWT.RefreshSecret == "" {
		config.Auth.JWT.RefreshSecret = config.Auth.JWT.Secret
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 5005)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.base_url", "http://localhost:5005")
	v.SetDefault("server.frontend_url", "http://localhost:3000")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("server.timezone", "UTC")

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.username", "root")
	v.SetDefault("database.password", "password")
	v.SetDefault("database.database", "marketplace")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 100)
	v.SetDefault("database.conn_max_lifetime", 60)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stdout")

	v.SetDefault("auth.password.bcrypt_cost", 12)
	v.SetDefault("auth.jwt.secret", "change-me-in-production")
	v.SetDefault("auth.jwt.refresh_secret", "")
	v.SetDefault("auth.jwt.access_exp_minutes", 60*24)
	v.SetDefault("auth.jwt.refresh_exp_days", 30)
	v.SetDefault("auth.jwt.link_exp_minutes", 60)
	v.SetDefault("auth.otp.ttl_minutes", 10)
	v.SetDefault("auth.verify_email_url", "http://localhost:3000/verify-email")
	v.SetDefault("auth.reset_password_url", "http://localhost:3000/reset-password")

	v.SetDefault("oauth.google.client_ids", []string{})
	v.SetDefault("oauth.google.client_secret", "")
	v.SetDefault("oauth.google.redirect_url", "postmessage")
	v.SetDefault("oauth.apple.client_ids", []string{})

	v.SetDefault("email.smtp_host", "smtp-relay.brevo.com")
	v.SetDefault("email.smtp_port", 587)
	v.SetDefault("email.smtp_user", "")
	v.SetDefault("email.smtp_password", "")
	v.SetDefault("email.from_address", "noreply@marketplace.local")
	v.SetDefault("email.from_name", "Marketplace")
	v.SetDefault("email.contact_inbox", "support@marketplace.local")

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("stripe.secret_key", "")
	v.SetDefault("stripe.webhook_secret", "")
	v.SetDefault("stripe.currency", "usd")

	v.SetDefault("upload.dir", "uploads")
	v.SetDefault("upload.public_base_url", "http://localhost:5005")

	v.SetDefault("super_admin.email", "")
	v.SetDefault("super_admin.password", "")

	v.SetDefault("rate_limit.requests", 20)
	v.SetDefault("rate_limit.window_seconds", 60)
}
