package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/jvkuechen/secguard/internal/chat"
	"github.com/jvkuechen/secguard/internal/cli"
	"github.com/jvkuechen/secguard/internal/db"
	"github.com/jvkuechen/secguard/internal/github"
	"github.com/jvkuechen/secguard/internal/llm"
	"github.com/jvkuechen/secguard/internal/repository"
	"github.com/jvkuechen/secguard/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.secguard/secguard.db
	dbPath := os.Getenv("SECGUARD_DB")
	dataDir := ""
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".secguard")
		dbPath = filepath.Join(dataDir, "secguard.db")
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			return fmt.Errorf("creating data directory: %w", err)
		}
	} else {
		dataDir = filepath.Dir(dbPath)
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories and services
	stateRepo := repository.NewSQLiteStateRepo(database)
	assessmentRepo := repository.NewSQLiteAssessmentRepo(database)

	chatCfg := llm.LoadConfig()
	var observer llm.Observer = llm.NoopObserver{}
	if chatCfg.LogCalls {
		observer = llm.NewLogObserver(os.Stderr)
	}
	chatClient := llm.NewGroqClient(chatCfg, observer)

	ghCache := github.NewCache(dataDir, github.DefaultCacheTTL)

	app := &cli.App{
		Assessment: service.NewAssessmentService(stateRepo, assessmentRepo),
		Tasks:      service.NewTaskService(stateRepo),
		Status:     service.NewStatusService(stateRepo, assessmentRepo),
		Chat:       chat.NewService(chatClient, chatCfg),
		GitHub:     github.NewClient(github.WithCache(ghCache)),
	}

	// Detect interactive terminal for form and checklist entrypoints.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
