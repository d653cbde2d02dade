package catalog

import "github.com/jvkuechen/secguard/internal/domain"

func answered(id string, values ...string) func(domain.AnswerSet) bool {
	return func(answers domain.AnswerSet) bool {
		got, ok := answers[id]
		if !ok {
			return false
		}
		for _, v := range values {
			if got == v {
				return true
			}
		}
		return false
	}
}

func always(domain.AnswerSet) bool { return true }

// tasks is declared in tier order. Declaration order is the tie-break for
// the severity sort, so it is part of the contract.
var tasks = []domain.Task{
	{
		ID:            "enable-2fa-email",
		Title:         "Enable 2FA on Your Email",
		Description:   "Your email is the master key to all other accounts. If compromised, attackers can reset passwords for everything.",
		Severity:      domain.SeverityCritical,
		Category:      "2fa",
		ArticleSlug:   "2fa-email",
		EstimatedTime: "10-15 min",
		QuestionID:    "emailTwoFactor",
		Applies:       answered("emailTwoFactor", "no", "unsure"),
	},
	{
		ID:            "setup-password-manager",
		Title:         "Set Up a Password Manager",
		Description:   "Using unique passwords for every account is impossible to remember. A password manager makes it easy and secure.",
		Severity:      domain.SeverityCritical,
		Category:      "passwords",
		ArticleSlug:   "password-manager",
		EstimatedTime: "20-30 min",
		QuestionID:    "passwordManager",
		Applies:       answered("passwordManager", "memory", "reuse"),
	},
	{
		ID:            "upgrade-password-manager",
		Title:         "Consider a Dedicated Password Manager",
		Description:   "Browser password managers are convenient but dedicated managers offer better security, sharing, and cross-platform support.",
		Severity:      domain.SeverityMedium,
		Category:      "passwords",
		ArticleSlug:   "password-manager",
		EstimatedTime: "20-30 min",
		QuestionID:    "passwordManager",
		Applies:       answered("passwordManager", "browser"),
	},
	{
		ID:            "enable-2fa-banking",
		Title:         "Enable 2FA on All Financial Accounts",
		Description:   "Protect your financial accounts with an extra layer of security beyond just a password.",
		Severity:      domain.SeverityCritical,
		Category:      "2fa",
		ArticleSlug:   "2fa-banking",
		EstimatedTime: "10-15 min",
		QuestionID:    "financialTwoFactor",
		Applies:       answered("financialTwoFactor", "no", "some", "unsure"),
	},

	{
		ID:            "enable-phone-lock",
		Title:         "Enable Phone Screen Lock",
		Description:   "Physical access to an unlocked phone exposes everything: email, banking apps, photos, and messages.",
		Severity:      domain.SeverityHigh,
		Category:      "device",
		ArticleSlug:   "device-security",
		EstimatedTime: "5 min",
		QuestionID:    "phoneLock",
		Applies:       answered("phoneLock", "none"),
	},
	{
		ID:            "enable-computer-lock",
		Title:         "Set Up Computer Password Lock",
		Description:   "An unlocked computer exposes all your files, saved passwords, and active login sessions.",
		Severity:      domain.SeverityHigh,
		Category:      "device",
		ArticleSlug:   "device-security",
		EstimatedTime: "5 min",
		QuestionID:    "computerLock",
		Applies:       answered("computerLock", "none", "sleep"),
	},
	{
		ID:            "enable-auto-updates",
		Title:         "Enable Automatic Updates",
		Description:   "Security patches fix vulnerabilities that attackers actively exploit. Staying updated protects you.",
		Severity:      domain.SeverityHigh,
		Category:      "updates",
		ArticleSlug:   "enable-updates",
		EstimatedTime: "5-10 min",
		QuestionID:    "softwareUpdates",
		Applies:       answered("softwareUpdates", "delay", "unsure"),
	},
	{
		ID:            "setup-backups",
		Title:         "Set Up Automatic Backups",
		Description:   "Ransomware and device loss are common threats. Automatic backups ensure you never lose important files.",
		Severity:      domain.SeverityHigh,
		Category:      "backups",
		ArticleSlug:   "backup-basics",
		EstimatedTime: "15-20 min",
		QuestionID:    "backupStatus",
		Applies:       answered("backupStatus", "none", "some", "unsure"),
	},
	{
		ID:            "test-backup-restore",
		Title:         "Test Your Backup Recovery",
		Description:   "A backup you have never tested might not work when you need it most. Verify you can actually restore.",
		Severity:      domain.SeverityMedium,
		Category:      "backups",
		ArticleSlug:   "backup-basics",
		EstimatedTime: "10-15 min",
		QuestionID:    "backupTested",
		Applies: func(answers domain.AnswerSet) bool {
			return answers["backupStatus"] == "auto" && answers["backupTested"] == "no"
		},
	},

	{
		ID:            "public-wifi-safety",
		Title:         "Practice Public WiFi Safety",
		Description:   "Public networks can be monitored. Learn how to protect yourself when connecting outside your home.",
		Severity:      domain.SeverityMedium,
		Category:      "network",
		ArticleSlug:   "network-security",
		EstimatedTime: "10 min",
		QuestionID:    "publicWifi",
		Applies:       answered("publicWifi", "normal"),
	},
	{
		ID:            "learn-phishing",
		Title:         "Learn to Spot Phishing Attacks",
		Description:   "Phishing is the most common way accounts get compromised. Learn the warning signs.",
		Severity:      domain.SeverityMedium,
		Category:      "awareness",
		ArticleSlug:   "phishing-awareness",
		EstimatedTime: "10-15 min",
		QuestionID:    "phishingAwareness",
		Applies:       answered("phishingAwareness", "casual", "unsure"),
	},
	{
		ID:            "social-privacy",
		Title:         "Review Social Media Privacy Settings",
		Description:   "Public profiles expose personal info useful for targeted attacks and identity theft.",
		Severity:      domain.SeverityLow,
		Category:      "privacy",
		ArticleSlug:   "social-media-privacy",
		EstimatedTime: "15 min",
		QuestionID:    "socialPrivacy",
		Applies:       answered("socialPrivacy", "public", "mixed"),
	},
	{
		ID:            "setup-recovery",
		Title:         "Set Up Account Recovery Options",
		Description:   "Without backup recovery methods, you could be permanently locked out of your accounts.",
		Severity:      domain.SeverityMedium,
		Category:      "recovery",
		ArticleSlug:   "account-recovery",
		EstimatedTime: "15-20 min",
		QuestionID:    "accountRecovery",
		Applies:       answered("accountRecovery", "no", "never_thought", "maybe"),
	},

	// Evergreen tasks with no diagnostic basis.
	{
		ID:            "check-breaches",
		Title:         "Check for Data Breaches",
		Description:   "Your credentials may have been exposed in past breaches. Find out and change compromised passwords.",
		Severity:      domain.SeverityMedium,
		Category:      "passwords",
		ArticleSlug:   "check-breaches",
		EstimatedTime: "5-10 min",
		Applies:       always,
	},
	{
		ID:            "browser-security",
		Title:         "Secure Your Browser",
		Description:   "Your browser is your window to the internet. A few settings can significantly improve your privacy and security.",
		Severity:      domain.SeverityLow,
		Category:      "browser",
		ArticleSlug:   "browser-security",
		EstimatedTime: "10-15 min",
		Applies:       always,
	},
}

// Tasks returns every task in declaration order.
func Tasks() []domain.Task {
	return tasks
}

// TaskByID finds a task by ID. The second return is false when no task
// matches.
func TaskByID(id string) (*domain.Task, bool) {
	for i := range tasks {
		if tasks[i].ID == id {
			return &tasks[i], true
		}
	}
	return nil, false
}
