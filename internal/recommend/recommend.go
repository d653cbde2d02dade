// Package recommend derives the remediation task list from the task catalog
// and the user's current answers. Severity is the only sort key: task
// priority stays legible and independent of the numeric score tuning.
package recommend

import (
	"math"
	"sort"

	"github.com/jvkuechen/secguard/internal/catalog"
	"github.com/jvkuechen/secguard/internal/domain"
)

// Tasks filters the catalog to applicable tasks the user has neither
// completed nor dismissed, sorted by severity. The sort is stable: ties
// keep catalog declaration order.
func Tasks(answers domain.AnswerSet, completed, dismissed map[string]bool) []domain.Task {
	var out []domain.Task
	for _, t := range catalog.Tasks() {
		if completed[t.ID] || dismissed[t.ID] {
			continue
		}
		if !t.Applies(answers) {
			continue
		}
		out = append(out, t)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Severity.Rank() < out[j].Severity.Rank()
	})
	return out
}

// AllWithStatus is like Tasks but retains completed tasks so the caller can
// show them struck through. A completed task stays listed even when its
// predicate no longer holds, so finishing work is never silently undone by
// editing an earlier answer. Incomplete tasks sort first, each group by
// severity.
func AllWithStatus(answers domain.AnswerSet, completed, dismissed map[string]bool) []domain.TaskStatus {
	var out []domain.TaskStatus
	for _, t := range catalog.Tasks() {
		if !t.Applies(answers) && !completed[t.ID] {
			continue
		}
		out = append(out, domain.TaskStatus{
			Task:      t,
			Completed: completed[t.ID],
			Dismissed: dismissed[t.ID],
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Completed != out[j].Completed {
			return !out[i].Completed
		}
		return out[i].Severity.Rank() < out[j].Severity.Rank()
	})
	return out
}

// TopPriority returns the highest-severity open task, or false when every
// applicable task is resolved.
func TopPriority(answers domain.AnswerSet, completed, dismissed map[string]bool) (domain.Task, bool) {
	tasks := Tasks(answers, completed, dismissed)
	if len(tasks) == 0 {
		return domain.Task{}, false
	}
	return tasks[0], true
}

// Progress summarizes task completion. Applicable counts tasks whose
// predicate holds plus tasks already completed, so progress never regresses
// when an answer changes back.
type Progress struct {
	Completed  int
	Total      int
	Percentage int
}

// Stats computes completion progress over the applicable task set.
func Stats(answers domain.AnswerSet, completed, dismissed map[string]bool) Progress {
	var total, done int
	for _, t := range catalog.Tasks() {
		if !t.Applies(answers) && !completed[t.ID] {
			continue
		}
		total++
		if completed[t.ID] {
			done++
		}
	}
	p := Progress{Completed: done, Total: total}
	if total > 0 {
		p.Percentage = int(math.Round(float64(done) / float64(total) * 100))
	}
	return p
}

// BySeverity groups the status-annotated task list by severity for display,
// in severity order.
func BySeverity(answers domain.AnswerSet, completed, dismissed map[string]bool) map[domain.Severity][]domain.TaskStatus {
	out := make(map[domain.Severity][]domain.TaskStatus, 4)
	for _, t := range AllWithStatus(answers, completed, dismissed) {
		out[t.Severity] = append(out[t.Severity], t)
	}
	return out
}
