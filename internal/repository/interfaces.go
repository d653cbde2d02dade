package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jvkuechen/secguard/internal/domain"
)

// ErrNotFound signals a lookup that matched no row. Callers are expected to
// handle it rather than treat it as fatal.
var ErrNotFound = errors.New("not found")

// StateRepo persists the dashboard state: answers, task marks, assessment
// mode, and the last-assessment timestamp.
type StateRepo interface {
	Load(ctx context.Context) (*domain.DashboardState, error)
	SetAnswer(ctx context.Context, questionID, value string) error
	ClearAnswer(ctx context.Context, questionID string) error
	SetMode(ctx context.Context, mode domain.AssessmentMode) error
	MarkCompleted(ctx context.Context, taskID string) error
	MarkDismissed(ctx context.Context, taskID string) error
	ClearMark(ctx context.Context, taskID string) error
	SetLastAssessment(ctx context.Context, t time.Time) error
	Reset(ctx context.Context) error
}

// AssessmentRepo records scored assessment runs.
type AssessmentRepo interface {
	Record(ctx context.Context, s *domain.AssessmentSnapshot) error
	Latest(ctx context.Context) (*domain.AssessmentSnapshot, error)
	List(ctx context.Context, limit int) ([]*domain.AssessmentSnapshot, error)
	Clear(ctx context.Context) error
}
