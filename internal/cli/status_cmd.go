package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jvkuechen/secguard/internal/cli/formatter"
)

func newStatusCmd(app *App) *cobra.Command {
	var legend bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show your security score and breakdown",
		RunE: func(cmd *cobra.Command, args []string) error {
			if legend {
				fmt.Print(formatter.FormatLevelLegend())
				return nil
			}

			report, err := app.Status.GetStatus(context.Background())
			if err != nil {
				return err
			}

			fmt.Println(formatter.FormatStatus(report))
			return nil
		},
	}

	cmd.Flags().BoolVar(&legend, "legend", false, "Show the score bands instead of the status")

	return cmd
}
