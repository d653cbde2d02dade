package domain

// Task is a remediation action recommended from the questionnaire. Applies
// is a pure predicate over an AnswerSet: it must be total (safe on an empty
// or partial set) and must not consult completed/dismissed state, which is
// applied as an external filter.
type Task struct {
	ID            string
	Title         string
	Description   string
	Severity      Severity
	Category      string
	ArticleSlug   string
	EstimatedTime string
	// QuestionID links the task to the question whose answer drives its
	// applicability. Empty for evergreen tasks that always apply.
	QuestionID string
	Applies    func(answers AnswerSet) bool
}

// TaskStatus is a task annotated with its completion state for display.
// Completed tasks stay visible (struck through) rather than disappearing.
type TaskStatus struct {
	Task
	Completed bool
	Dismissed bool
}
