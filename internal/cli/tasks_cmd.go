package cli

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jvkuechen/secguard/internal/cli/formatter"
	"github.com/jvkuechen/secguard/internal/repository"
)

func newTasksCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Review and work through recommended security tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !interactive(app) {
				return listTasks(app)
			}
			return runTaskChecklist(app)
		},
	}

	cmd.AddCommand(
		newTasksListCmd(app),
		newTasksDoneCmd(app),
		newTasksReopenCmd(app),
		newTasksDismissCmd(app),
		newTasksTopCmd(app),
	)

	return cmd
}

func newTasksListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all tasks with their status",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listTasks(app)
		},
	}
}

func listTasks(app *App) error {
	ctx := context.Background()
	tasks, err := app.Tasks.AllWithStatus(ctx)
	if err != nil {
		return err
	}
	progress, err := app.Tasks.Progress(ctx)
	if err != nil {
		return err
	}
	fmt.Print(formatter.FormatTaskList(tasks, progress))
	return nil
}

func newTasksDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done <task-id>",
		Short: "Mark a task completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Tasks.Complete(context.Background(), args[0]); err != nil {
				return taskErr(args[0], err)
			}
			fmt.Println(formatter.StyleGreen.Render("✓ " + args[0]))
			return nil
		},
	}
}

func newTasksReopenCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reopen <task-id>",
		Short: "Clear a task's completed or dismissed mark",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Tasks.Reopen(context.Background(), args[0]); err != nil {
				return taskErr(args[0], err)
			}
			fmt.Println("Reopened " + args[0])
			return nil
		},
	}
}

func newTasksDismissCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dismiss <task-id>",
		Short: "Hide a task without completing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Tasks.Dismiss(context.Background(), args[0]); err != nil {
				return taskErr(args[0], err)
			}
			fmt.Println(formatter.Dim("Dismissed " + args[0]))
			return nil
		},
	}
}

func newTasksTopCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "top",
		Short: "Show the single highest-priority task",
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := app.Tasks.TopPriority(context.Background())
			if err != nil {
				return err
			}
			if task == nil {
				fmt.Println(formatter.Dim("No open tasks. Run `secguard assess` or enjoy the quiet."))
				return nil
			}
			fmt.Print(formatter.FormatTask(*task))
			return nil
		},
	}
}

func taskErr(id string, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("unknown task %q; run `secguard tasks list` to see task IDs", id)
	}
	return err
}

func runTaskChecklist(app *App) error {
	model, err := newChecklistModel(app)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(model).Run()
	return err
}
