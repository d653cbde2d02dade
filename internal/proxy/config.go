package proxy

import (
	"os"
	"strconv"
	"strings"
)

// Config holds the proxy's runtime settings. The API key never reaches
// clients; the whole point of the proxy is keeping it server-side.
type Config struct {
	Addr           string
	UpstreamURL    string
	APIKey         string
	DefaultModel   string
	MaxTokens      int
	AllowedOrigins []string
}

// DefaultConfig returns a Config with production defaults. The origin
// allowlist covers the site's deployed hosts plus local development.
func DefaultConfig() Config {
	return Config{
		Addr:         ":8787",
		UpstreamURL:  "https://api.groq.com/openai/v1/chat/completions",
		DefaultModel: "llama-3.3-70b-versatile",
		MaxTokens:    1024,
		AllowedOrigins: []string{
			"https://jvkuechen.github.io",
			"https://jvkuechen.com",
			"https://www.jvkuechen.com",
			"https://setcookie.dev",
			"https://www.setcookie.dev",
			"http://localhost:8000",
			"http://127.0.0.1:8000",
		},
	}
}

// LoadConfig reads proxy configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("SECGUARD_PROXY_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("SECGUARD_PROXY_UPSTREAM"); v != "" {
		cfg.UpstreamURL = v
	}
	if v := os.Getenv("GROQ_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("SECGUARD_PROXY_MODEL"); v != "" {
		cfg.DefaultModel = v
	}
	if v := os.Getenv("SECGUARD_PROXY_MAX_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxTokens = n
		}
	}
	if v := os.Getenv("SECGUARD_PROXY_ALLOWED_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		if len(origins) > 0 {
			cfg.AllowedOrigins = origins
		}
	}

	return cfg
}

// OriginAllowed reports whether the Origin header value matches the
// allowlist. An absent origin is rejected.
func (c Config) OriginAllowed(origin string) bool {
	if origin == "" {
		return false
	}
	for _, allowed := range c.AllowedOrigins {
		if strings.HasPrefix(origin, allowed) {
			return true
		}
	}
	return false
}
