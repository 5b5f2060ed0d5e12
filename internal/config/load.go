package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from environment variables and an optional
// config.yaml in the working directory. Environment variables take
// precedence over values from the config file, which in turn take
// precedence over defaults. Returns a populated Config struct or an
// error if loading or validation fails.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	// Optional config file; absence is not an error.
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Environment variables use the MINERAL_ prefix with underscores for
	// nesting, e.g. MINERAL_SERVER_PORT, MINERAL_LLM_GEMINI_API_KEY.
	v.SetEnvPrefix("MINERAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// setDefaults registers default values for every setting that has a
// sensible one. Secrets (API keys, database URL) have no defaults and
// must be provided by the environment.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")

	v.SetDefault("task.igv_percentage", 18.0)
	v.SetDefault("task.default_location", "Trujillo")

	v.SetDefault("llm.model_name", "gemini-2.0-flash")
	v.SetDefault("llm.temperature", 0.7)
	v.SetDefault("llm.max_retries", 3)
	v.SetDefault("llm.retry_delay_seconds", 2)

	v.SetDefault("lookup.ruc_api_url", "https://api.apis.net.pe/v1/ruc")
	v.SetDefault("lookup.timeout_seconds", 10)

	// Bind nested keys explicitly so AutomaticEnv sees them even when the
	// config file does not mention them.
	for _, key := range []string{
		"server.port", "server.log_level",
		"database.url",
		"task.igv_percentage", "task.default_location",
		"llm.gemini_api_key", "llm.model_name", "llm.temperature",
		"llm.max_retries", "llm.retry_delay_seconds",
		"lookup.ruc_api_url", "lookup.api_token", "lookup.timeout_seconds",
	} {
		if err := v.BindEnv(key); err != nil {
			// BindEnv only fails on an empty key, which cannot happen here.
			continue
		}
	}
}
