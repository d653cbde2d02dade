// Package catalog holds the static question and task definitions the
// scoring and recommendation engines operate on. Nothing here mutates at
// runtime; weights and scores are fixed constants.
package catalog

import "github.com/jvkuechen/secguard/internal/domain"

// Tooltip explanations shown alongside "unsure" answers.
const (
	tooltipTwoFactor       = "2FA adds a second step when logging in, like a code sent to your phone. It stops attackers even if they have your password."
	tooltipPasswordManager = "A password manager stores all your passwords securely, so you only need to remember one master password. It can also generate strong, unique passwords for each site."
	tooltipBackups         = "Backups are copies of your important files stored separately from your device. If your phone breaks, gets stolen, or is hit by ransomware, backups let you recover your photos and data."
	tooltipVPN             = "A VPN (Virtual Private Network) encrypts your internet connection, hiding your activity from others on the same network. Useful on public WiFi."
	tooltipPhishing        = "Phishing is when attackers send fake emails pretending to be from trusted companies, trying to trick you into clicking malicious links or entering your password on fake websites."
	tooltipRecovery        = "Backup codes or recovery methods let you get back into your accounts if you lose your phone or forget your password. Without them, you could be permanently locked out."
)

func answerIs(values ...string) func(string) bool {
	return func(answer string) bool {
		for _, v := range values {
			if answer == v {
				return true
			}
		}
		return false
	}
}

// questions is declared in tier order: critical, important, good practices.
// Declaration order within a tier is the display order.
var questions = []domain.Question{
	{
		ID:       "emailTwoFactor",
		Tier:     domain.TierCritical,
		Text:     "Is two-factor authentication enabled on your primary email?",
		HelpText: "Email is the recovery method for all other accounts. Compromise here = compromise everywhere.",
		Weight:   20,
		Options: []domain.Option{
			{Value: "yes", Label: "Yes", Score: 1.0},
			{Value: "no", Label: "No", Score: 0},
			{Value: "unsure", Label: "Unsure / What's that?", Score: 0.25},
		},
		Tooltip: tooltipTwoFactor,
		FollowUp: &domain.FollowUp{
			Condition: answerIs("yes"),
			Question: domain.Question{
				ID:   "emailTwoFactorMethod",
				Tier: domain.TierCritical,
				Text: "What type of 2FA do you use?",
				Options: []domain.Option{
					{Value: "app", Label: "Authenticator app (Google/Microsoft Authenticator, etc.)", Score: 1.0},
					{Value: "sms", Label: "Text message (SMS)", Score: 0.7},
					{Value: "key", Label: "Security key (YubiKey, etc.)", Score: 1.0},
					{Value: "unsure", Label: "Not sure", Score: 0.5},
				},
			},
		},
	},
	{
		ID:       "passwordManager",
		Tier:     domain.TierCritical,
		Text:     "How do you manage your passwords?",
		HelpText: "Password reuse is the #1 way accounts get compromised after data breaches.",
		Weight:   15,
		Options: []domain.Option{
			{Value: "dedicated", Label: "Password manager (1Password, Bitwarden, etc.)", Score: 1.0},
			{Value: "browser", Label: "Browser's built-in password saving", Score: 0.7},
			{Value: "memory", Label: "I remember them / write them down", Score: 0.3},
			{Value: "reuse", Label: "I reuse the same passwords across sites", Score: 0},
		},
		Tooltip: tooltipPasswordManager,
		FollowUp: &domain.FollowUp{
			Condition: answerIs("dedicated"),
			Question: domain.Question{
				ID:   "passwordManagerGenerates",
				Tier: domain.TierCritical,
				Text: "Does it generate random passwords for new accounts?",
				Options: []domain.Option{
					{Value: "yes", Label: "Yes", Score: 1.0},
					{Value: "no", Label: "No, I create my own", Score: 0.5},
					{Value: "unsure", Label: "Not sure", Score: 0.5},
				},
			},
		},
	},
	{
		ID:       "financialTwoFactor",
		Tier:     domain.TierCritical,
		Text:     "Is two-factor authentication enabled on your bank/financial accounts?",
		HelpText: "Direct financial impact from compromise.",
		Weight:   15,
		Options: []domain.Option{
			{Value: "all", Label: "Yes, on all of them", Score: 1.0},
			{Value: "some", Label: "Yes, on some of them", Score: 0.5},
			{Value: "no", Label: "No", Score: 0},
			{Value: "unsure", Label: "I don't know how to check", Score: 0.25},
		},
		Tooltip: tooltipTwoFactor,
	},

	{
		ID:       "phoneLock",
		Tier:     domain.TierImportant,
		Text:     "Does your phone have a screen lock?",
		HelpText: "Physical access to unlocked devices bypasses all other security.",
		Weight:   5,
		Options: []domain.Option{
			{Value: "biometric", Label: "Yes, biometric (fingerprint/face)", Score: 1.0},
			{Value: "pin", Label: "Yes, PIN or pattern", Score: 0.8},
			{Value: "none", Label: "No / I disabled it", Score: 0},
		},
	},
	{
		ID:       "computerLock",
		Tier:     domain.TierImportant,
		Text:     "Does your computer require a password to log in?",
		HelpText: "An unlocked computer exposes everything: email, files, saved passwords.",
		Weight:   5,
		Options: []domain.Option{
			{Value: "always", Label: "Yes, always", Score: 1.0},
			{Value: "sleep", Label: "Yes, but only after sleep/away", Score: 0.7},
			{Value: "none", Label: "No", Score: 0},
		},
	},
	{
		ID:       "softwareUpdates",
		Tier:     domain.TierImportant,
		Text:     "How do you handle software updates on your devices?",
		HelpText: "Known vulnerabilities are actively exploited; updates patch them.",
		Weight:   10,
		Options: []domain.Option{
			{Value: "auto", Label: "They install automatically", Score: 1.0},
			{Value: "prompt", Label: "I install them within a few days", Score: 0.8},
			{Value: "delay", Label: "I often delay or skip them", Score: 0.2},
			{Value: "unsure", Label: "I'm not sure", Score: 0.3},
		},
	},
	{
		ID:       "backupStatus",
		Tier:     domain.TierImportant,
		Text:     "If your phone was lost/stolen today, would you lose important photos or data?",
		HelpText: "Ransomware and device loss are common; backups are the recovery path.",
		Weight:   10,
		Options: []domain.Option{
			{Value: "auto", Label: "No, everything is backed up automatically", Score: 1.0},
			{Value: "some", Label: "I'd lose some things", Score: 0.5},
			{Value: "none", Label: "I'd lose a lot", Score: 0},
			{Value: "unsure", Label: "I'm not sure", Score: 0.3},
		},
		Tooltip: tooltipBackups,
		FollowUp: &domain.FollowUp{
			Condition: answerIs("auto"),
			Question: domain.Question{
				ID:   "backupTested",
				Tier: domain.TierImportant,
				Text: "Have you ever tested restoring from backup?",
				Options: []domain.Option{
					{Value: "yes", Label: "Yes", Score: 1.0},
					{Value: "no", Label: "No", Score: 0.5},
				},
			},
		},
	},

	{
		ID:       "publicWifi",
		Tier:     domain.TierGoodPractices,
		Text:     "When using public WiFi (coffee shops, airports), do you:",
		HelpText: "Public WiFi can be monitored by others on the same network.",
		Weight:   4,
		Options: []domain.Option{
			{Value: "avoid", Label: "Avoid sensitive activities (banking, email)", Score: 0.8},
			{Value: "vpn", Label: "Use a VPN", Score: 1.0},
			{Value: "normal", Label: "Use it normally without concern", Score: 0.2},
			{Value: "never", Label: "I don't use public WiFi", Score: 1.0},
		},
		Tooltip: tooltipVPN,
	},
	{
		ID:       "phishingAwareness",
		Tier:     domain.TierGoodPractices,
		Text:     "When you receive an unexpected email asking you to click a link or log in:",
		HelpText: "Phishing attacks are the most common way accounts get compromised.",
		Weight:   4,
		Options: []domain.Option{
			{Value: "careful", Label: "I check the sender and URL carefully before clicking", Score: 1.0},
			{Value: "casual", Label: "I usually click if it looks legitimate", Score: 0.3},
			{Value: "unsure", Label: "I'm not sure what to look for", Score: 0.2},
		},
		Tooltip: tooltipPhishing,
	},
	{
		ID:       "socialPrivacy",
		Tier:     domain.TierGoodPractices,
		Text:     "Are your social media profiles set to private/friends-only?",
		HelpText: "Public profiles expose personal info useful for targeted attacks and identity theft.",
		Weight:   3,
		Options: []domain.Option{
			{Value: "private", Label: "Yes, all of them", Score: 1.0},
			{Value: "mixed", Label: "Some are, some aren't", Score: 0.5},
			{Value: "public", Label: "No, they're public", Score: 0.2},
			{Value: "none", Label: "I don't use social media", Score: 1.0},
		},
	},
	{
		ID:       "accountRecovery",
		Tier:     domain.TierGoodPractices,
		Text:     "If you forgot your email password and lost your phone, could you recover your accounts?",
		HelpText: "Without backup recovery methods, you could be permanently locked out.",
		Weight:   4,
		Options: []domain.Option{
			{Value: "yes", Label: "Yes, I have backup codes or a secondary method", Score: 1.0},
			{Value: "maybe", Label: "I think so, but I'm not sure", Score: 0.5},
			{Value: "no", Label: "Probably not", Score: 0.2},
			{Value: "never_thought", Label: "I've never thought about this", Score: 0},
		},
		Tooltip: tooltipRecovery,
	},
}

// questionLabels are short names for breakdown display.
var questionLabels = map[string]string{
	"emailTwoFactor":     "Email 2FA",
	"passwordManager":    "Password Management",
	"financialTwoFactor": "Financial 2FA",
	"phoneLock":          "Phone Lock",
	"computerLock":       "Computer Lock",
	"softwareUpdates":    "Software Updates",
	"backupStatus":       "Backups",
	"publicWifi":         "Public WiFi",
	"phishingAwareness":  "Phishing Awareness",
	"socialPrivacy":      "Social Privacy",
	"accountRecovery":    "Account Recovery",
}

// Questions returns every top-level question in tier order.
func Questions() []domain.Question {
	return questions
}

// QuestionsForMode returns the questions presented in the given assessment
// mode: quick is the critical tier only, full is everything.
func QuestionsForMode(mode domain.AssessmentMode) []domain.Question {
	if mode == domain.ModeFull {
		return questions
	}
	return QuestionsByTier(domain.TierCritical)
}

// QuestionsByTier returns the questions in a single tier, in declaration order.
func QuestionsByTier(tier domain.Tier) []domain.Question {
	var out []domain.Question
	for _, q := range questions {
		if q.Tier == tier {
			out = append(out, q)
		}
	}
	return out
}

// QuestionByID finds a question by ID, searching both top-level questions
// and nested follow-ups. The second return is false when no question matches.
func QuestionByID(id string) (*domain.Question, bool) {
	for i := range questions {
		if questions[i].ID == id {
			return &questions[i], true
		}
		if fu := questions[i].FollowUp; fu != nil && fu.Question.ID == id {
			return &fu.Question, true
		}
	}
	return nil, false
}

// QuestionLabel returns the short breakdown label for a question ID, falling
// back to the full question text.
func QuestionLabel(id string) string {
	if label, ok := questionLabels[id]; ok {
		return label
	}
	if q, ok := QuestionByID(id); ok {
		return q.Text
	}
	return id
}

// FollowUpFor returns the follow-up question of parentID when its condition
// holds for the given answer. The second return is false when the parent has
// no follow-up or the condition does not hold.
func FollowUpFor(parentID, answer string) (*domain.Question, bool) {
	q, ok := QuestionByID(parentID)
	if !ok || q.FollowUp == nil {
		return nil, false
	}
	if !q.FollowUp.Condition(answer) {
		return nil, false
	}
	return &q.FollowUp.Question, true
}
