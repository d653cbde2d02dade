package formatter

import (
	"fmt"
	"strings"

	"github.com/jvkuechen/secguard/internal/domain"
	"github.com/jvkuechen/secguard/internal/recommend"
)

// FormatTaskList renders all tasks with status markers, incomplete first.
func FormatTaskList(tasks []domain.TaskStatus, progress recommend.Progress) string {
	var b strings.Builder

	headers := []string{"", "TASK", "SEVERITY", "TIME", "ID"}
	rows := make([][]string, 0, len(tasks))

	for _, t := range tasks {
		marker := Dim("○")
		title := Bold(t.Title)
		if t.Completed {
			marker = StyleGreen.Render("✓")
			title = Dim(t.Title)
		} else if t.Dismissed {
			marker = Dim("−")
			title = Dim(t.Title)
		}
		rows = append(rows, []string{
			marker,
			title,
			SeverityIndicator(t.Severity),
			Dim(TimeEstimate(t.EstimatedTime)),
			Dim(t.ID),
		})
	}

	b.WriteString(RenderTable(headers, rows))

	if progress.Total > 0 {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%d/%d done %s\n",
			progress.Completed, progress.Total,
			RenderProgress(float64(progress.Percentage)/100, 10)))
	}

	return b.String()
}

// FormatTask renders one task with its full description.
func FormatTask(t domain.Task) string {
	var b strings.Builder
	b.WriteString(Bold(t.Title) + "  " + SeverityIndicator(t.Severity) + "\n")
	b.WriteString(t.Description + "\n")
	b.WriteString(Dim(fmt.Sprintf("%s · %s · %s", t.Category, TimeEstimate(t.EstimatedTime), t.ID)) + "\n")
	if t.ArticleSlug != "" {
		b.WriteString(Dim("Guide: "+t.ArticleSlug) + "\n")
	}
	return b.String()
}
