package formatter

import (
	"fmt"
	"strings"

	"github.com/jvkuechen/secguard/internal/domain"
	"github.com/jvkuechen/secguard/internal/scoring"
	"github.com/jvkuechen/secguard/internal/service"
)

const tierBarWidth = 10

// FormatStatus renders the full dashboard: score banner, tier breakdown,
// completion, recommendations, and task progress.
func FormatStatus(report *service.StatusReport) string {
	var b strings.Builder

	b.WriteString(formatScoreBanner(report))
	b.WriteString("\n")
	b.WriteString(formatTiers(report.Tiers))

	if len(report.Score.Breakdown) > 0 {
		b.WriteString("\n")
		b.WriteString(formatBreakdown(report.Score.Breakdown))
	}

	if len(report.Recommendations) > 0 {
		b.WriteString("\n")
		b.WriteString(formatRecommendations(report.Recommendations))
	}

	b.WriteString("\n")
	b.WriteString(formatFooter(report))

	return RenderBox("Security Status", strings.TrimRight(b.String(), "\n"))
}

func formatScoreBanner(report *service.StatusReport) string {
	if !report.Score.HasAnswers {
		return Dim("No assessment yet. Run `secguard assess` to get your score.") + "\n"
	}

	level := report.Score.Level
	banner := fmt.Sprintf("%d%%  %s", report.Score.Percentage, LevelStyle(level).Render(level.Label))

	completion := report.Completion
	var scope string
	switch {
	case completion.Full.Complete:
		scope = "full assessment"
	case completion.Quick.Complete:
		scope = fmt.Sprintf("quick assessment (answer %d more for the full picture)",
			completion.Full.Total-completion.Full.Answered)
	default:
		scope = fmt.Sprintf("%d of %d questions answered", completion.Full.Answered, completion.Full.Total)
	}

	return StyleBold.Render(banner) + "\n" + Dim(scope) + "\n"
}

func formatTiers(tiers []scoring.TierScore) string {
	var b strings.Builder
	b.WriteString(Header("By Tier"))
	b.WriteString("\n")

	for _, t := range tiers {
		info := t.Tier.Meta()
		pct := 0.0
		if t.MaxScore > 0 {
			pct = t.Score / float64(t.MaxScore)
		}
		bar := RenderProgress(pct, tierBarWidth)
		if len(t.Items) == 0 {
			bar = RenderCompactBar(0, tierBarWidth, true) + " " + Dim(" --%")
		}
		b.WriteString(fmt.Sprintf("%-16s %s\n", info.Label, bar))
	}
	return b.String()
}

func formatBreakdown(breakdown []scoring.QuestionScore) string {
	headers := []string{"QUESTION", "ANSWER", "SCORE"}
	rows := make([][]string, 0, len(breakdown))

	for _, qs := range breakdown {
		score := fmt.Sprintf("%d%%", qs.Percentage)
		switch {
		case qs.Complete:
			score = StyleGreen.Render(score)
		case qs.Percentage == 0:
			score = StyleRed.Render(score)
		default:
			score = StyleYellow.Render(score)
		}
		rows = append(rows, []string{qs.Label, qs.AnswerLabel, score})
	}

	return Header("Breakdown") + "\n" + RenderTable(headers, rows)
}

func formatRecommendations(recs []scoring.Recommendation) string {
	var b strings.Builder
	b.WriteString(Header("Recommended Next"))
	b.WriteString("\n")

	for i, r := range recs {
		urgency := Dim(string(r.Urgency))
		switch r.Urgency {
		case scoring.UrgencyCritical:
			urgency = StyleRed.Render(string(r.Urgency))
		case scoring.UrgencyHigh:
			urgency = StyleYellow.Render(string(r.Urgency))
		}
		b.WriteString(fmt.Sprintf("%d. %s  %s %s\n", i+1, Bold(r.Title), urgency, Dim(Minutes(r.EstimatedMin))))
	}
	return b.String()
}

func formatFooter(report *service.StatusReport) string {
	var b strings.Builder

	progress := report.Progress
	if progress.Total > 0 {
		b.WriteString(fmt.Sprintf("Tasks: %d/%d done %s\n",
			progress.Completed, progress.Total,
			RenderProgress(float64(progress.Percentage)/100, tierBarWidth)))
	}

	if report.TopTask != nil {
		b.WriteString(fmt.Sprintf("Next task: %s %s\n",
			Bold(report.TopTask.Title), SeverityIndicator(report.TopTask.Severity)))
	}

	if report.LastAssessment != nil {
		b.WriteString(Dim("Last assessment: "+HumanTimestamp(*report.LastAssessment)) + "\n")
	}
	if report.Latest != nil && report.LastAssessment == nil {
		b.WriteString(Dim("Last assessment: "+HumanTimestamp(report.Latest.TakenAt)) + "\n")
	}

	return b.String()
}

// FormatLevelLegend lists the five score bands with their colors.
func FormatLevelLegend() string {
	var b strings.Builder
	for _, l := range domain.ScoreLevels {
		b.WriteString(fmt.Sprintf("%s  %d-%d\n", LevelStyle(l).Render(l.Label), l.Min, l.Max))
	}
	return b.String()
}
