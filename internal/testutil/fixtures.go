package testutil

import "github.com/jvkuechen/secguard/internal/domain"

// PerfectAnswers answers every top-level question with its best option.
func PerfectAnswers() domain.AnswerSet {
	return domain.AnswerSet{
		"emailTwoFactor":     "yes",
		"passwordManager":    "dedicated",
		"financialTwoFactor": "all",
		"phoneLock":          "biometric",
		"computerLock":       "always",
		"softwareUpdates":    "auto",
		"backupStatus":       "auto",
		"publicWifi":         "vpn",
		"phishingAwareness":  "careful",
		"socialPrivacy":      "private",
		"accountRecovery":    "yes",
	}
}

// WeakAnswers answers every critical question with its worst option.
func WeakAnswers() domain.AnswerSet {
	return domain.AnswerSet{
		"emailTwoFactor":     "no",
		"passwordManager":    "reuse",
		"financialTwoFactor": "no",
	}
}

// PartialAnswers covers the quick (critical) mode only, mixed quality.
func PartialAnswers() domain.AnswerSet {
	return domain.AnswerSet{
		"emailTwoFactor":     "yes",
		"passwordManager":    "browser",
		"financialTwoFactor": "some",
	}
}
