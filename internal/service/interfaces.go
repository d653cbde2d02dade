package service

import (
	"context"
	"time"

	"github.com/jvkuechen/secguard/internal/domain"
	"github.com/jvkuechen/secguard/internal/recommend"
	"github.com/jvkuechen/secguard/internal/scoring"
)

// AssessmentService owns answer-state mutation. The engines themselves are
// pure; every mutation goes through here and is persisted immediately.
type AssessmentService interface {
	State(ctx context.Context) (*domain.DashboardState, error)
	// Answer validates and stores a selection. An empty value clears the
	// stored answer, removing the key entirely.
	Answer(ctx context.Context, questionID, value string) error
	SetMode(ctx context.Context, mode domain.AssessmentMode) error
	// CompleteRun snapshots the current score and stamps the state.
	CompleteRun(ctx context.Context, mode domain.AssessmentMode) (*domain.AssessmentSnapshot, error)
	Reset(ctx context.Context) error
}

// TaskService exposes the recommendation engine over the persisted state.
type TaskService interface {
	Recommended(ctx context.Context) ([]domain.Task, error)
	AllWithStatus(ctx context.Context) ([]domain.TaskStatus, error)
	TopPriority(ctx context.Context) (*domain.Task, error)
	Progress(ctx context.Context) (recommend.Progress, error)
	Complete(ctx context.Context, taskID string) error
	Reopen(ctx context.Context, taskID string) error
	Dismiss(ctx context.Context, taskID string) error
}

// StatusReport aggregates everything the status display needs in one load.
type StatusReport struct {
	Mode            domain.AssessmentMode
	Score           scoring.Result
	Tiers           []scoring.TierScore
	Completion      scoring.CompletionStats
	Recommendations []scoring.Recommendation
	TopTask         *domain.Task
	Progress        recommend.Progress
	LastAssessment  *time.Time
	Latest          *domain.AssessmentSnapshot
}

// StatusService derives the full dashboard report from the current state.
type StatusService interface {
	GetStatus(ctx context.Context) (*StatusReport, error)
}
