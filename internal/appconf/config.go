package appconf

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all the configuration settings for the application.
type Config struct {
	Port            int           `mapstructure:"port"`
	Env             Environment   `mapstructure:"-"`
	EnvName         string        `mapstructure:"env"`
	ApiKeys         []string      `mapstructure:"api_keys"`
	RateLimit       int           `mapstructure:"rate_limit"`
	LogLevel        string        `mapstructure:"log_level"`
	LogFormat       string        `mapstructure:"log_format"`
	SessionTTL      time.Duration `mapstructure:"session_ttl"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Load reads configuration from defaults, an optional config.yaml and
// QIBLA_* environment variables, in increasing order of precedence.
func Load() (Config, error) {
	return load(viper.New())
}

// LoadFile is Load with an explicit config file path. A missing file is an error.
func LoadFile(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return load(v)
}

func load(v *viper.Viper) (Config, error) {
	v.SetDefault("port", 4000)
	v.SetDefault("env", "development")
	v.SetDefault("api_keys", []string{"test"})
	v.SetDefault("rate_limit", 100)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("session_ttl", 30*time.Minute)
	v.SetDefault("shutdown_timeout", 10*time.Second)

	if v.ConfigFileUsed() == "" {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		_ = v.ReadInConfig() // OK if missing
	}

	// QIBLA_API_KEYS → api_keys
	v.SetEnvPrefix("QIBLA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.ApiKeys = SplitAPIKeys(strings.Join(cfg.ApiKeys, ","))
	cfg.Env = EnvFlagToEnvironment(cfg.EnvName)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// SplitAPIKeys splits a comma separated key list, dropping blanks.
func SplitAPIKeys(raw string) []string {
	keys := []string{}
	for _, k := range strings.Split(raw, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

// Validate checks that configuration values are present and sane.
func (c Config) Validate() error {
	var errs []string

	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Sprintf("port must be 1-65535, got %d", c.Port))
	}
	if len(c.ApiKeys) == 0 {
		errs = append(errs, "at least one api key is required")
	}
	if c.RateLimit <= 0 {
		errs = append(errs, fmt.Sprintf("rate_limit must be positive, got %d", c.RateLimit))
	}
	switch strings.ToLower(c.LogFormat) {
	case "json", "text":
	default:
		errs = append(errs, fmt.Sprintf("log_format must be json or text, got %q", c.LogFormat))
	}
	if c.SessionTTL < 0 {
		errs = append(errs, "session_ttl must not be negative")
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, "shutdown_timeout must be positive")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
