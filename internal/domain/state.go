package domain

import "time"

// StateVersion is the current persisted-state schema version. Version 1
// predates the three-tier catalog and is migrated on load.
const StateVersion = 2

// DashboardState is everything the dashboard persists between runs.
type DashboardState struct {
	Version        int
	Mode           AssessmentMode
	Answers        AnswerSet
	CompletedTasks map[string]bool
	DismissedTasks map[string]bool
	LastAssessment *time.Time
}

// NewDashboardState returns an empty state at the current schema version.
func NewDashboardState() *DashboardState {
	return &DashboardState{
		Version:        StateVersion,
		Mode:           ModeQuick,
		Answers:        AnswerSet{},
		CompletedTasks: map[string]bool{},
		DismissedTasks: map[string]bool{},
	}
}

// AssessmentSnapshot records the outcome of one scored assessment run.
type AssessmentSnapshot struct {
	ID         string
	Mode       AssessmentMode
	Percentage int
	LevelKey   string
	Answered   int
	TakenAt    time.Time
}
