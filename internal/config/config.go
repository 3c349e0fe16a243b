package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/ibuchix/auto-strada001testing-sub006/internal/bidding"
)

// IncrementConfig selects the minimum bid increment policy.
type IncrementConfig struct {
	Policy  string `mapstructure:"policy"`
	Step    int64  `mapstructure:"step"`
	Percent int64  `mapstructure:"percent"`
}

// LifecycleConfig governs bid-driven auction extension. Extension recomputes
// from "now" on each late bid and the total is capped so auctions stay
// bounded.
type LifecycleConfig struct {
	ExtensionWindow time.Duration `mapstructure:"extension_window"`
	ExtensionStep   time.Duration `mapstructure:"extension_step"`
	MaxExtension    time.Duration `mapstructure:"max_extension"`
}

// RetryConfig bounds the transaction wrapper's retry budget.
type RetryConfig struct {
	MaxAttempts int           `mapstructure:"max_attempts"`
	BaseBackoff time.Duration `mapstructure:"base_backoff"`
}

// StreamConfig sizes the change-stream subscriptions and the fan-out
// reconnect backoff.
type StreamConfig struct {
	SubscriberBuffer int           `mapstructure:"subscriber_buffer"`
	ReconnectBase    time.Duration `mapstructure:"reconnect_base"`
	ReconnectMax     time.Duration `mapstructure:"reconnect_max"`
}

// Config is the full service configuration.
type Config struct {
	Port      string          `mapstructure:"port"`
	Increment IncrementConfig `mapstructure:"increment"`
	Lifecycle LifecycleConfig `mapstructure:"lifecycle"`
	Retry     RetryConfig     `mapstructure:"retry"`
	Stream    StreamConfig    `mapstructure:"stream"`
}

// Load reads configuration from the environment (prefix AUCTION, dots as
// underscores) over built-in defaults.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("port", "8080")
	v.SetDefault("increment.policy", string(bidding.PolicyFixed))
	v.SetDefault("increment.step", 100)
	v.SetDefault("increment.percent", 5)
	v.SetDefault("lifecycle.extension_window", 2*time.Minute)
	v.SetDefault("lifecycle.extension_step", 2*time.Minute)
	v.SetDefault("lifecycle.max_extension", 30*time.Minute)
	v.SetDefault("retry.max_attempts", 3)
	v.SetDefault("retry.base_backoff", 50*time.Millisecond)
	v.SetDefault("stream.subscriber_buffer", 256)
	v.SetDefault("stream.reconnect_base", 250*time.Millisecond)
	v.SetDefault("stream.reconnect_max", 10*time.Second)

	v.SetEnvPrefix("AUCTION")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if cfg.Increment.Policy != string(bidding.PolicyFixed) && cfg.Increment.Policy != string(bidding.PolicyPercent) {
		return Config{}, fmt.Errorf("unknown increment policy %q", cfg.Increment.Policy)
	}
	return cfg, nil
}

// IncrementPolicy converts the raw config into the validator's policy type.
func (c Config) IncrementPolicy() bidding.IncrementPolicy {
	return bidding.IncrementPolicy{
		Kind:    bidding.PolicyKind(c.Increment.Policy),
		Step:    c.Increment.Step,
		Percent: c.Increment.Percent,
	}
}
