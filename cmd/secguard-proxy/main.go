package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/jvkuechen/secguard/internal/proxy"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Optional .env for local development; production sets real env vars.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("loading .env: %w", err)
	}

	cfg := proxy.LoadConfig()
	if cfg.APIKey == "" {
		return fmt.Errorf("GROQ_API_KEY is required")
	}

	srv := proxy.NewServer(cfg)
	log.Printf("chat proxy listening on %s", cfg.Addr)
	return http.ListenAndServe(cfg.Addr, srv.Router())
}
