package scoring

import (
	"sort"
	"strings"
	"unicode"

	"github.com/jvkuechen/secguard/internal/catalog"
	"github.com/jvkuechen/secguard/internal/domain"
)

// riskMultipliers weight each answer value by how urgent fixing it is.
// Answers not listed carry a neutral 1.0.
var riskMultipliers = map[string]float64{
	"no":            2.0,
	"none":          2.0,
	"reuse":         2.0,
	"delay":         1.8,
	"unsure":        1.5,
	"never_thought": 1.5,
	"casual":        1.3,
	"some":          1.0,
	"mixed":         1.0,
	"public":        1.2,
	"normal":        1.3,
	"maybe":         1.2,
	"sleep":         0.8,
	"prompt":        0.5,
	"browser":       0.6,
	"memory":        0.8,
	"pin":           0.5,
	"sms":           0.5,
}

// questionMinutes estimates how long fixing each question's gap takes.
var questionMinutes = map[string]int{
	"emailTwoFactor":     15,
	"passwordManager":    30,
	"financialTwoFactor": 15,
	"phoneLock":          5,
	"computerLock":       5,
	"softwareUpdates":    10,
	"backupStatus":       20,
	"publicWifi":         10,
	"phishingAwareness":  15,
	"socialPrivacy":      15,
	"accountRecovery":    20,
}

const (
	defaultMinutes = 15
	// secureThreshold: answers scoring at least this are not worth nagging about.
	secureThreshold = 0.8
)

// PriorityItem is one answered-but-weak question ranked for remediation.
// Priority = weight * riskMultiplier / (minutes/15), so quick high-impact
// fixes rank first.
type PriorityItem struct {
	QuestionID     string
	Tier           domain.Tier
	Weight         int
	Answer         string
	RiskMultiplier float64
	EstimatedMin   int
	Priority       float64
	CurrentScore   float64
}

// TaskPriorities ranks answered questions whose option score is below the
// secure threshold, highest priority first. Ties keep catalog order.
func TaskPriorities(answers domain.AnswerSet) []PriorityItem {
	var items []PriorityItem

	for _, q := range catalog.Questions() {
		answer, ok := answers[q.ID]
		if !ok {
			continue
		}
		opt, ok := q.OptionByValue(answer)
		if !ok || opt.Score >= secureThreshold {
			continue
		}

		risk, ok := riskMultipliers[answer]
		if !ok {
			risk = 1.0
		}
		minutes, ok := questionMinutes[q.ID]
		if !ok {
			minutes = defaultMinutes
		}

		items = append(items, PriorityItem{
			QuestionID:     q.ID,
			Tier:           q.Tier,
			Weight:         q.Weight,
			Answer:         answer,
			RiskMultiplier: risk,
			EstimatedMin:   minutes,
			Priority:       float64(q.Weight) * risk / (float64(minutes) / 15.0),
			CurrentScore:   opt.Score,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Priority > items[j].Priority
	})
	return items
}

// Urgency labels a recommendation for display.
type Urgency string

const (
	UrgencyNormal   Urgency = "normal"
	UrgencyHigh     Urgency = "high"
	UrgencyCritical Urgency = "critical"
)

// Recommendation is a personalized next step derived from a weak answer.
type Recommendation struct {
	QuestionID   string
	Title        string
	Description  string
	Urgency      Urgency
	EstimatedMin int
	Tier         domain.Tier
}

const maxRecommendations = 3

// TopRecommendations turns the highest-priority gaps into actionable
// recommendations, at most three.
func TopRecommendations(answers domain.AnswerSet) []Recommendation {
	var recs []Recommendation
	for _, item := range TaskPriorities(answers) {
		if len(recs) == maxRecommendations {
			break
		}
		q, ok := catalog.QuestionByID(item.QuestionID)
		if !ok {
			continue
		}

		urgency := UrgencyNormal
		if item.Tier == domain.TierCritical {
			urgency = UrgencyHigh
		}
		if item.RiskMultiplier >= 2.0 {
			urgency = UrgencyCritical
		}

		recs = append(recs, Recommendation{
			QuestionID:   item.QuestionID,
			Title:        recommendationTitle(item.QuestionID, item.Answer),
			Description:  q.HelpText,
			Urgency:      urgency,
			EstimatedMin: item.EstimatedMin,
			Tier:         item.Tier,
		})
	}
	return recs
}

// recommendationTitles maps question ID and answer value to a specific call
// to action.
var recommendationTitles = map[string]map[string]string{
	"emailTwoFactor": {
		"no":     "Enable 2FA on your email",
		"unsure": "Learn about and enable email 2FA",
	},
	"passwordManager": {
		"reuse":   "Stop reusing passwords - set up a password manager",
		"memory":  "Set up a password manager for better security",
		"browser": "Consider upgrading to a dedicated password manager",
	},
	"financialTwoFactor": {
		"no":     "Enable 2FA on your bank accounts",
		"some":   "Enable 2FA on all financial accounts",
		"unsure": "Check and enable 2FA on financial accounts",
	},
	"phoneLock": {
		"none": "Enable screen lock on your phone",
	},
	"computerLock": {
		"none":  "Set up a password on your computer",
		"sleep": "Enable immediate lock when stepping away",
	},
	"softwareUpdates": {
		"delay":  "Enable automatic updates",
		"unsure": "Check your update settings",
	},
	"backupStatus": {
		"none":   "Set up automatic backups immediately",
		"some":   "Improve your backup coverage",
		"unsure": "Check your backup settings",
	},
	"publicWifi": {
		"normal": "Be more cautious on public WiFi",
	},
	"phishingAwareness": {
		"casual": "Learn to spot phishing attempts",
		"unsure": "Learn how to identify phishing emails",
	},
	"socialPrivacy": {
		"public": "Review your social media privacy settings",
		"mixed":  "Make all social profiles private",
	},
	"accountRecovery": {
		"no":            "Set up backup codes for your accounts",
		"never_thought": "Plan for account recovery",
		"maybe":         "Verify your recovery methods",
	},
}

func recommendationTitle(questionID, answer string) string {
	if byAnswer, ok := recommendationTitles[questionID]; ok {
		if title, ok := byAnswer[answer]; ok {
			return title
		}
	}
	return "Improve your " + camelToWords(questionID)
}

// camelToWords turns "emailTwoFactor" into "email two factor".
func camelToWords(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsUpper(r) {
			b.WriteByte(' ')
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
