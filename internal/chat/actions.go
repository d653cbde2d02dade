package chat

import (
	"strings"

	"github.com/jvkuechen/secguard/internal/domain"
	"github.com/jvkuechen/secguard/internal/scoring"
)

// Context carries the state a computed quick action may consult.
type Context struct {
	State *domain.DashboardState
}

func (c Context) answers() domain.AnswerSet {
	if c.State == nil {
		return nil
	}
	return c.State.Answers
}

// Response is the reply a quick action produces. It is either a fixed
// piece of text or a function of the current context; exactly one of
// the two is set.
type Response struct {
	static   string
	computed func(Context) string
}

// Static returns a Response that always renders the given text.
func Static(text string) Response {
	return Response{static: text}
}

// Computed returns a Response rendered from the context at execution time.
func Computed(fn func(Context) string) Response {
	return Response{computed: fn}
}

// Render produces the reply text for the given context.
func (r Response) Render(ctx Context) string {
	if r.computed != nil {
		return r.computed(ctx)
	}
	return r.static
}

// QuickAction is a deterministic canned reply, answered locally without
// calling the chat backend.
type QuickAction struct {
	ID       string
	Label    string
	Response Response
}

var quickActions = []QuickAction{
	{
		ID:       "security-status",
		Label:    "My security status",
		Response: Computed(securityStatus),
	},
	{
		ID:       "top-task",
		Label:    "What should I do first?",
		Response: Computed(topTask),
	},
	{
		ID:    "how-scoring-works",
		Label: "How is my score calculated?",
		Response: Static("Your score is a weighted average over three tiers: " +
			"critical security basics count for half of the total, important protections " +
			"for about a third, and good practices for the rest. Only answered questions " +
			"count, so an empty assessment shows no score rather than a zero."),
	},
	{
		ID:    "what-is-this",
		Label: "What is this tool?",
		Response: Static("This is a personal security self-assessment. Run `secguard assess` " +
			"to answer a short questionnaire, `secguard status` to see your score, and " +
			"`secguard tasks` to work through the recommended fixes."),
	},
}

// Actions returns the quick actions in display order.
func Actions() []QuickAction {
	out := make([]QuickAction, len(quickActions))
	copy(out, quickActions)
	return out
}

// ActionByID looks up a quick action, reporting whether it exists.
func ActionByID(id string) (QuickAction, bool) {
	for _, a := range quickActions {
		if a.ID == id {
			return a, true
		}
	}
	return QuickAction{}, false
}

// Execute renders the identified action against the context. The second
// return is false when no such action exists.
func Execute(id string, ctx Context) (string, bool) {
	a, ok := ActionByID(id)
	if !ok {
		return "", false
	}
	return a.Response.Render(ctx), true
}

// statusChecks maps answers onto "good" and "needs attention" labels for
// the security-status summary.
var statusChecks = []struct {
	questionID string
	goodValues map[string]string // answer -> label
	badValues  map[string]string
}{
	{
		questionID: "passwordManager",
		goodValues: map[string]string{"dedicated": "Password manager", "browser": "Browser passwords"},
		badValues:  map[string]string{"memory": "No password manager", "reuse": "Reused passwords"},
	},
	{
		questionID: "emailTwoFactor",
		goodValues: map[string]string{"yes": "Email 2FA"},
		badValues:  map[string]string{"no": "Email 2FA not enabled", "unsure": "Email 2FA not enabled"},
	},
	{
		questionID: "financialTwoFactor",
		goodValues: map[string]string{"all": "Banking 2FA"},
		badValues:  map[string]string{"some": "Banking 2FA (only some accounts)", "no": "Banking 2FA not enabled", "unsure": "Banking 2FA not enabled"},
	},
	{
		questionID: "softwareUpdates",
		goodValues: map[string]string{"auto": "Auto updates", "prompt": "Manual updates"},
		badValues:  map[string]string{"delay": "Software updates not regular", "unsure": "Software updates not regular"},
	},
	{
		questionID: "phoneLock",
		goodValues: map[string]string{"biometric": "Phone lock", "pin": "Phone lock"},
		badValues:  map[string]string{"none": "No phone lock"},
	},
	{
		questionID: "backupStatus",
		goodValues: map[string]string{"auto": "Backups"},
		badValues:  map[string]string{"some": "Backups incomplete", "none": "Backups incomplete"},
	},
}

func securityStatus(ctx Context) string {
	answers := ctx.answers()
	if len(answers) == 0 {
		return "You haven't completed a security assessment yet. " +
			"Run `secguard assess` to check your security posture."
	}

	var good, issues []string
	for _, check := range statusChecks {
		answer, ok := answers[check.questionID]
		if !ok {
			continue
		}
		if label, ok := check.goodValues[answer]; ok {
			good = append(good, label)
		} else if label, ok := check.badValues[answer]; ok {
			issues = append(issues, label)
		}
	}

	result := scoring.CalculateScore(answers)

	var b strings.Builder
	b.WriteString("Your security status: ")
	b.WriteString(result.Level.Label)
	b.WriteString("\n\n")
	if len(good) > 0 {
		b.WriteString("Good: " + strings.Join(good, ", ") + "\n\n")
	}
	if len(issues) > 0 {
		b.WriteString("Needs attention: " + strings.Join(issues, ", ") + "\n\n")
		b.WriteString("Run `secguard tasks` to see recommended actions.")
	} else if len(good) > 0 {
		b.WriteString("Great job! Your basic security is in good shape.")
	}
	return strings.TrimRight(b.String(), "\n")
}

func topTask(ctx Context) string {
	answers := ctx.answers()
	recs := scoring.TopRecommendations(answers)
	if len(recs) == 0 {
		if len(answers) == 0 {
			return "Run `secguard assess` first so I can tell what needs attention."
		}
		return "Nothing urgent. Your answers look solid; check `secguard tasks` for " +
			"remaining good-practice items."
	}

	// TopRecommendations already sorts by priority.
	lines := make([]string, 0, len(recs))
	for _, r := range recs {
		lines = append(lines, "- "+r.Title+" ("+string(r.Urgency)+")")
	}
	return "Start here:\n\n" + strings.Join(lines, "\n")
}
