package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/jvkuechen/secguard/internal/catalog"
	"github.com/jvkuechen/secguard/internal/cli/formatter"
	"github.com/jvkuechen/secguard/internal/domain"
)

func newAssessCmd(app *App) *cobra.Command {
	var full bool
	var quick bool

	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Run the interactive security questionnaire",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !interactive(app) {
				return errors.New("assess needs an interactive terminal")
			}
			if full && quick {
				return errors.New("--full and --quick are mutually exclusive")
			}

			ctx := context.Background()

			state, err := app.Assessment.State(ctx)
			if err != nil {
				return err
			}

			mode := state.Mode
			if full {
				mode = domain.ModeFull
			} else if quick {
				mode = domain.ModeQuick
			}
			if mode != state.Mode {
				if err := app.Assessment.SetMode(ctx, mode); err != nil {
					return err
				}
			}

			if err := runQuestionnaire(ctx, app, mode, state.Answers); err != nil {
				if errors.Is(err, huh.ErrUserAborted) {
					fmt.Println(formatter.Dim("Assessment paused. Your answers so far are saved."))
					return nil
				}
				return err
			}

			snapshot, err := app.Assessment.CompleteRun(ctx, mode)
			if err != nil {
				return err
			}

			fmt.Println()
			fmt.Println(assessSummary(snapshot))
			return nil
		},
	}

	cmd.Flags().BoolVar(&full, "full", false, "Ask all three tiers")
	cmd.Flags().BoolVar(&quick, "quick", false, "Ask the critical tier only")

	return cmd
}

// assessSummary is the closing line after a run. Skipping every question
// leaves nothing to score, so there is no percentage to show.
func assessSummary(snapshot *domain.AssessmentSnapshot) string {
	if snapshot.Answered == 0 && snapshot.Percentage == 0 {
		return formatter.Dim("No questions answered, so there is no score yet. Run `secguard assess` again when ready.")
	}
	level := domain.LevelForPercentage(snapshot.Percentage)
	return fmt.Sprintf("%s %s\n%s",
		formatter.Bold(fmt.Sprintf("Your score: %d%%", snapshot.Percentage)),
		formatter.LevelStyle(level).Render(level.Label),
		formatter.Dim("Run `secguard status` for the breakdown, `secguard tasks` for next steps."))
}

func runQuestionnaire(ctx context.Context, app *App, mode domain.AssessmentMode, existing domain.AnswerSet) error {
	for _, tier := range domain.TierOrder {
		questions := tierQuestions(mode, tier)
		if len(questions) == 0 {
			continue
		}

		info := tier.Meta()
		fmt.Println()
		fmt.Println(formatter.Header(info.Label))
		fmt.Println(formatter.Dim(info.Description))
		fmt.Println()

		for _, q := range questions {
			answer, err := askQuestion(q, existing[q.ID])
			if err != nil {
				return err
			}
			if err := app.Assessment.Answer(ctx, q.ID, answer); err != nil {
				return err
			}
			if answer == "unsure" && q.Tooltip != "" {
				fmt.Println(formatter.Dim(q.Tooltip))
			}

			followUp, ok := catalog.FollowUpFor(q.ID, answer)
			if !ok {
				continue
			}
			fuAnswer, err := askQuestion(*followUp, existing[followUp.ID])
			if err != nil {
				return err
			}
			if err := app.Assessment.Answer(ctx, followUp.ID, fuAnswer); err != nil {
				return err
			}
		}
	}
	return nil
}

func tierQuestions(mode domain.AssessmentMode, tier domain.Tier) []domain.Question {
	if mode == domain.ModeQuick && tier != domain.TierCritical {
		return nil
	}
	return catalog.QuestionsByTier(tier)
}

// askQuestion runs a single-select form for one question. A blank choice
// clears any stored answer.
func askQuestion(q domain.Question, current string) (string, error) {
	options := make([]huh.Option[string], 0, len(q.Options)+1)
	for _, opt := range q.Options {
		options = append(options, huh.NewOption(opt.Label, opt.Value))
	}
	options = append(options, huh.NewOption("(skip)", ""))

	answer := current
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(q.Text).
				Description(q.HelpText).
				Options(options...).
				Value(&answer),
		),
	).WithTheme(secguardHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return "", err
	}
	return answer, nil
}
