package cli

import (
	"github.com/spf13/cobra"

	"github.com/jvkuechen/secguard/internal/chat"
	"github.com/jvkuechen/secguard/internal/github"
	"github.com/jvkuechen/secguard/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Assessment service.AssessmentService
	Tasks      service.TaskService
	Status     service.StatusService
	Chat       *chat.Service
	GitHub     *github.Client

	// IsInteractive reports whether stdin is a terminal. Interactive
	// commands refuse to run without one.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "secguard" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "secguard",
		Short: "Personal security self-assessment and task tracker",
	}

	root.AddCommand(
		newAssessCmd(app),
		newStatusCmd(app),
		newTasksCmd(app),
		newProjectsCmd(app),
		newChatCmd(app),
		newResetCmd(app),
	)

	return root
}

func interactive(app *App) bool {
	return app.IsInteractive != nil && app.IsInteractive()
}
