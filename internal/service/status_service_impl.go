package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jvkuechen/secguard/internal/recommend"
	"github.com/jvkuechen/secguard/internal/repository"
	"github.com/jvkuechen/secguard/internal/scoring"
)

type statusService struct {
	state       repository.StateRepo
	assessments repository.AssessmentRepo
}

// NewStatusService creates a StatusService over the given repos.
func NewStatusService(state repository.StateRepo, assessments repository.AssessmentRepo) StatusService {
	return &statusService{state: state, assessments: assessments}
}

func (s *statusService) GetStatus(ctx context.Context) (*StatusReport, error) {
	st, err := s.state.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading state: %w", err)
	}

	report := &StatusReport{
		Mode:            st.Mode,
		Score:           scoring.CalculateScore(st.Answers),
		Tiers:           scoring.ScoreByTier(st.Answers),
		Completion:      scoring.Completion(st.Answers),
		Recommendations: scoring.TopRecommendations(st.Answers),
		Progress:        recommend.Stats(st.Answers, st.CompletedTasks, st.DismissedTasks),
		LastAssessment:  st.LastAssessment,
	}

	if task, ok := recommend.TopPriority(st.Answers, st.CompletedTasks, st.DismissedTasks); ok {
		report.TopTask = &task
	}

	latest, err := s.assessments.Latest(ctx)
	switch {
	case err == nil:
		report.Latest = latest
	case errors.Is(err, repository.ErrNotFound):
		// No runs recorded yet.
	default:
		return nil, fmt.Errorf("loading latest assessment: %w", err)
	}

	return report, nil
}
