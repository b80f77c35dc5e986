package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Token TTL bounds in hours. Values outside this range are clamped.
const (
	minTokenTTLHours     = 8
	maxTokenTTLHours     = 24
	defaultTokenTTLHours = 12
)

// ErrMissingSigningKey makes a missing secret a startup failure, not a
// per-request one.
var ErrMissingSigningKey = errors.New("auth.signingkey is required")

// Config is loaded once at startup and treated as immutable afterwards.
type Config struct {
	Port     string
	LogLevel string
	DB       struct {
		Path string
	}
	Auth struct {
		SigningKey    string
		TokenTTLHours int
	}
	CORS struct {
		AllowedOrigins []string
	}
	Cookie struct {
		Secure bool
	}
}

// TokenTTL returns the session token lifetime, clamped to the allowed range.
func (c Config) TokenTTL() time.Duration {
	h := c.Auth.TokenTTLHours
	if h < minTokenTTLHours {
		h = minTokenTTLHours
	}
	if h > maxTokenTTLHours {
		h = maxTokenTTLHours
	}
	return time.Duration(h) * time.Hour
}

// Load reads configs/config.yml with NOTES_AUTH_* environment overrides
// (e.g. NOTES_AUTH_AUTH_SIGNINGKEY).
func Load() (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("NOTES_AUTH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", "3000")
	v.SetDefault("loglevel", "info")
	v.SetDefault("db.path", "notes_auth.db")
	v.SetDefault("auth.signingkey", "")
	v.SetDefault("auth.tokenttlhours", defaultTokenTTLHours)
	v.SetDefault("cors.allowedorigins", []string{})
	v.SetDefault("cookie.secure", false)

	v.SetConfigName("config")
	v.AddConfigPath("configs")
	_ = v.ReadInConfig() // optional file; env alone is enough

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if strings.TrimSpace(cfg.Auth.SigningKey) == "" {
		return Config{}, ErrMissingSigningKey
	}
	return cfg, nil
}
