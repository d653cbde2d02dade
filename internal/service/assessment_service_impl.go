package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jvkuechen/secguard/internal/catalog"
	"github.com/jvkuechen/secguard/internal/domain"
	"github.com/jvkuechen/secguard/internal/repository"
	"github.com/jvkuechen/secguard/internal/scoring"
)

type assessmentService struct {
	state       repository.StateRepo
	assessments repository.AssessmentRepo
}

// NewAssessmentService creates an AssessmentService over the given repos.
func NewAssessmentService(state repository.StateRepo, assessments repository.AssessmentRepo) AssessmentService {
	return &assessmentService{state: state, assessments: assessments}
}

func (s *assessmentService) State(ctx context.Context) (*domain.DashboardState, error) {
	return s.state.Load(ctx)
}

func (s *assessmentService) Answer(ctx context.Context, questionID, value string) error {
	q, ok := catalog.QuestionByID(questionID)
	if !ok {
		return fmt.Errorf("question %s: %w", questionID, repository.ErrNotFound)
	}
	if value == "" {
		return s.state.ClearAnswer(ctx, questionID)
	}
	if _, ok := q.OptionByValue(value); !ok {
		return fmt.Errorf("question %s has no option %q", questionID, value)
	}
	return s.state.SetAnswer(ctx, questionID, value)
}

func (s *assessmentService) SetMode(ctx context.Context, mode domain.AssessmentMode) error {
	if mode != domain.ModeQuick && mode != domain.ModeFull {
		return fmt.Errorf("unknown assessment mode %q", mode)
	}
	return s.state.SetMode(ctx, mode)
}

func (s *assessmentService) CompleteRun(ctx context.Context, mode domain.AssessmentMode) (*domain.AssessmentSnapshot, error) {
	state, err := s.state.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading state: %w", err)
	}

	result := scoring.CalculateScore(state.Answers)
	completion := scoring.Completion(state.Answers)
	answered := completion.Full.Answered
	if mode == domain.ModeQuick {
		answered = completion.Quick.Answered
	}

	snap := &domain.AssessmentSnapshot{
		ID:         uuid.New().String(),
		Mode:       mode,
		Percentage: result.Percentage,
		LevelKey:   result.Level.Key,
		Answered:   answered,
		TakenAt:    time.Now().UTC(),
	}
	if err := s.assessments.Record(ctx, snap); err != nil {
		return nil, err
	}
	if err := s.state.SetLastAssessment(ctx, snap.TakenAt); err != nil {
		return nil, err
	}
	return snap, nil
}

func (s *assessmentService) Reset(ctx context.Context) error {
	if err := s.state.Reset(ctx); err != nil {
		return err
	}
	return s.assessments.Clear(ctx)
}
