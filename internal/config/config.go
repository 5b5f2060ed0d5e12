package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Task     TaskConfig     `mapstructure:"task"     validate:"required"`
	LLM      LLMConfig      `mapstructure:"llm"      validate:"required"`
	Lookup   LookupConfig   `mapstructure:"lookup"   validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
// The database only backs the commodity price store; task state is
// in-memory by design.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// TaskConfig contains defaults injected by the submission convenience layer
// when a request omits the corresponding parameter.
type TaskConfig struct {
	// IGVPercentage is the value-added-tax rate the buy-budget calculator
	// applies when a submission does not carry igv_percentage.
	IGVPercentage float64 `mapstructure:"igv_percentage" validate:"gte=0,lte=100"`

	// DefaultLocation is used by the buyer-search convenience endpoint
	// when no location is given.
	DefaultLocation string `mapstructure:"default_location" validate:"required"`
}

// LLMConfig contains all settings for the generative-AI collaborator.
type LLMConfig struct {
	GeminiAPIKey      string  `mapstructure:"gemini_api_key"      validate:"required"`
	ModelName         string  `mapstructure:"model_name"          validate:"required"`
	Temperature       float64 `mapstructure:"temperature"         validate:"gte=0,lte=2"`
	MaxRetries        int     `mapstructure:"max_retries"         validate:"gte=0,lte=10"`
	RetryDelaySeconds int     `mapstructure:"retry_delay_seconds" validate:"gte=1,lte=60"`
}

// LookupConfig contains settings for the SUNAT company registry lookup.
type LookupConfig struct {
	RUCAPIURL      string `mapstructure:"ruc_api_url"     validate:"required,url"`
	APIToken       string `mapstructure:"api_token"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"gte=1,lte=120"`
}
