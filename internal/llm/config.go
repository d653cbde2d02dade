package llm

import (
	"os"
	"strconv"
)

// ChatConfig holds all configuration for the chat subsystem.
type ChatConfig struct {
	Enabled     bool
	LogCalls    bool
	Endpoint    string
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int
	TimeoutMs   int
	MaxRetries  int
	MaxHistory  int // user/assistant turns kept when building requests
}

// DefaultConfig returns a ChatConfig with sensible defaults. The chat
// backend stays disabled until an API key is configured.
func DefaultConfig() ChatConfig {
	return ChatConfig{
		Enabled:     false,
		LogCalls:    false,
		Endpoint:    "https://api.groq.com/openai/v1",
		Model:       "llama-3.3-70b-versatile",
		Temperature: 0.7,
		MaxTokens:   1024,
		TimeoutMs:   30000,
		MaxRetries:  1,
		MaxHistory:  10,
	}
}

// LoadConfig reads chat configuration from environment variables,
// falling back to defaults for any unset values. Setting an API key
// enables the backend unless SECGUARD_CHAT_ENABLED says otherwise.
func LoadConfig() ChatConfig {
	cfg := DefaultConfig()

	if v := os.Getenv("SECGUARD_CHAT_API_KEY"); v != "" {
		cfg.APIKey = v
		cfg.Enabled = true
	}
	if v := os.Getenv("SECGUARD_CHAT_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("SECGUARD_CHAT_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("SECGUARD_CHAT_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("SECGUARD_CHAT_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("SECGUARD_CHAT_TEMPERATURE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && f <= 2 {
			cfg.Temperature = f
		}
	}
	if v := os.Getenv("SECGUARD_CHAT_MAX_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxTokens = n
		}
	}
	if v := os.Getenv("SECGUARD_CHAT_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("SECGUARD_CHAT_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}
	if v := os.Getenv("SECGUARD_CHAT_MAX_HISTORY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxHistory = n
		}
	}

	return cfg
}
