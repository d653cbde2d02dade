package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/jvkuechen/secguard/internal/cli/formatter"
)

func newResetCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Wipe all answers, task marks, and history",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				if !interactive(app) {
					return errors.New("refusing to reset without --force on a non-interactive terminal")
				}

				confirmed := false
				form := huh.NewForm(
					huh.NewGroup(
						huh.NewConfirm().
							Title("Delete all assessment data?").
							Description("Answers, completed tasks, and assessment history will be wiped.").
							Affirmative("Wipe it").
							Negative("Keep it").
							Value(&confirmed),
					),
				).WithTheme(secguardHuhTheme()).WithShowHelp(false)

				if err := form.Run(); err != nil {
					if errors.Is(err, huh.ErrUserAborted) {
						return nil
					}
					return err
				}
				if !confirmed {
					fmt.Println(formatter.Dim("Nothing deleted."))
					return nil
				}
			}

			if err := app.Assessment.Reset(context.Background()); err != nil {
				return err
			}
			fmt.Println("All assessment data deleted.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip the confirmation prompt")

	return cmd
}
