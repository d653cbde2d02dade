package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jvkuechen/secguard/internal/chat"
	"github.com/jvkuechen/secguard/internal/cli/formatter"
	"github.com/jvkuechen/secguard/internal/llm"
)

func newChatCmd(app *App) *cobra.Command {
	var action string

	cmd := &cobra.Command{
		Use:   "chat [message]",
		Short: "Ask the security advisor a question",
		Long: "Ask the security advisor a question. Without a message, starts an " +
			"interactive session. Quick actions answer locally without calling the model.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if action != "" {
				return runQuickAction(ctx, app, action)
			}

			if len(args) > 0 {
				return askOnce(ctx, app, strings.Join(args, " "))
			}

			if !interactive(app) {
				return errors.New("chat without a message needs an interactive terminal")
			}
			return chatLoop(ctx, app)
		},
	}

	cmd.Flags().StringVar(&action, "action", "", "Run a quick action by ID (see `secguard chat actions`)")
	cmd.AddCommand(newChatActionsCmd(app))

	return cmd
}

func newChatActionsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "actions",
		Short: "List available quick actions",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, a := range chat.Actions() {
				fmt.Printf("%s  %s\n", formatter.Bold(a.ID), formatter.Dim(a.Label))
			}
			return nil
		},
	}
}

func runQuickAction(ctx context.Context, app *App, id string) error {
	state, err := app.Assessment.State(ctx)
	if err != nil {
		return err
	}
	out, ok := chat.Execute(id, chat.Context{State: state})
	if !ok {
		return fmt.Errorf("unknown quick action %q", id)
	}
	fmt.Println(out)
	return nil
}

func askOnce(ctx context.Context, app *App, message string) error {
	reply, err := app.Chat.Ask(ctx, message)
	if err != nil {
		return chatFriendlyErr(err)
	}
	fmt.Println(reply)
	return nil
}

func chatLoop(ctx context.Context, app *App) error {
	if !app.Chat.Available(ctx) {
		fmt.Println(formatter.Dim("Chat backend not configured (set SECGUARD_CHAT_API_KEY). " +
			"Quick actions still work:"))
	}
	fmt.Println(formatter.Dim("Type a question, a quick action ID, or \"quit\" to leave."))
	for _, a := range chat.Actions() {
		fmt.Printf("  %s  %s\n", formatter.Bold(a.ID), formatter.Dim(a.Label))
	}
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(formatter.StyleHeader.Render("> "))
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return nil
		}

		if _, ok := chat.ActionByID(line); ok {
			if err := runQuickAction(ctx, app, line); err != nil {
				fmt.Println(formatter.StyleRed.Render(err.Error()))
			}
			continue
		}

		reply, err := app.Chat.Ask(ctx, line)
		if err != nil {
			fmt.Println(formatter.StyleRed.Render(chatFriendlyErr(err).Error()))
			continue
		}
		fmt.Println(reply)
	}
}

func chatFriendlyErr(err error) error {
	switch {
	case errors.Is(err, llm.ErrDisabled):
		return errors.New("chat backend not configured; set SECGUARD_CHAT_API_KEY")
	case errors.Is(err, llm.ErrUnavailable), errors.Is(err, llm.ErrTimeout):
		return errors.New("the advisor is unreachable right now; try again later")
	case errors.Is(err, llm.ErrRateLimited):
		return errors.New("the advisor is rate limited; wait a minute and retry")
	default:
		return err
	}
}
