package config

import "fmt"

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks the configuration for errors
func Validate(cfg *Config) []error {
	var errs []error

	// Validate embedding config
	if cfg.Embedding.Primary.Provider == "" {
		errs = append(errs, ValidationError{"embedding.primary.provider", "required"})
	} else if cfg.Embedding.Primary.Provider != "gemini" && cfg.Embedding.Primary.Provider != "openai" {
		errs = append(errs, ValidationError{"embedding.primary.provider", "must be 'gemini' or 'openai'"})
	}

	if cfg.Embedding.Primary.APIKey == "" {
		errs = append(errs, ValidationError{"embedding.primary.api_key", "required"})
	}

	if cfg.Embedding.Fallback.Provider != "" &&
		cfg.Embedding.Fallback.Provider != "gemini" && cfg.Embedding.Fallback.Provider != "openai" {
		errs = append(errs, ValidationError{"embedding.fallback.provider", "must be 'gemini' or 'openai'"})
	}

	// Validate search settings
	if cfg.Search.TopPerKeyword < 1 || cfg.Search.TopPerKeyword > 100 {
		errs = append(errs, ValidationError{"search.top_per_keyword", "must be between 1 and 100"})
	}

	if cfg.Search.RequestTimeoutSeconds < 1 {
		errs = append(errs, ValidationError{"search.request_timeout_seconds", "must be at least 1"})
	}

	// Validate defaults
	if cfg.Defaults.TopK < 1 {
		errs = append(errs, ValidationError{"defaults.top_k", "must be at least 1"})
	}

	return errs
}
