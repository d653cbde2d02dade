package formatter

import (
	"fmt"
	"strings"

	"github.com/jvkuechen/secguard/internal/github"
)

// FormatProjects renders GitHub repos as terminal project cards.
func FormatProjects(repos []github.Repo) string {
	if len(repos) == 0 {
		return Dim("No projects to show. Repos appear here once they have a description on GitHub.") + "\n"
	}

	var b strings.Builder
	for i, r := range repos {
		if i > 0 {
			b.WriteString("\n")
		}

		title := Bold(r.Name)
		if r.Language != "" {
			title += "  " + StyleBlue.Render(r.Language)
		}
		if r.Stars > 0 {
			title += "  " + StyleYellow.Render(fmt.Sprintf("★ %d", r.Stars))
		}
		b.WriteString(title + "\n")
		b.WriteString(r.Description + "\n")

		meta := r.URL
		if !r.PushedAt.IsZero() {
			meta += " · updated " + HumanTimestamp(r.PushedAt)
		}
		if len(r.Topics) > 0 {
			meta += " · " + strings.Join(r.Topics, ", ")
		}
		b.WriteString(Dim(meta) + "\n")
	}
	return b.String()
}
