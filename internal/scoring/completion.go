package scoring

import (
	"github.com/jvkuechen/secguard/internal/catalog"
	"github.com/jvkuechen/secguard/internal/domain"
)

// ModeCompletion counts answered questions within one assessment mode.
type ModeCompletion struct {
	Answered int
	Total    int
	Complete bool
}

// CompletionStats reports questionnaire progress for both modes at once,
// so the caller can prompt a quick-mode user to continue to the full set.
type CompletionStats struct {
	Quick ModeCompletion
	Full  ModeCompletion
}

// Completion counts answered top-level questions per mode. Follow-up
// answers do not count toward completion.
func Completion(answers domain.AnswerSet) CompletionStats {
	return CompletionStats{
		Quick: modeCompletion(answers, domain.ModeQuick),
		Full:  modeCompletion(answers, domain.ModeFull),
	}
}

// IsComplete reports whether every question of the given mode is answered.
func IsComplete(answers domain.AnswerSet, mode domain.AssessmentMode) bool {
	return modeCompletion(answers, mode).Complete
}

func modeCompletion(answers domain.AnswerSet, mode domain.AssessmentMode) ModeCompletion {
	qs := catalog.QuestionsForMode(mode)
	answered := 0
	for _, q := range qs {
		if _, ok := answers[q.ID]; ok {
			answered++
		}
	}
	return ModeCompletion{
		Answered: answered,
		Total:    len(qs),
		Complete: answered == len(qs),
	}
}
