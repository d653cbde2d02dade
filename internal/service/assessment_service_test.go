package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jvkuechen/secguard/internal/domain"
	"github.com/jvkuechen/secguard/internal/repository"
	"github.com/jvkuechen/secguard/internal/testutil"
)

func newAssessmentService(t *testing.T) (AssessmentService, repository.StateRepo, repository.AssessmentRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	state := repository.NewSQLiteStateRepo(database)
	assessments := repository.NewSQLiteAssessmentRepo(database)
	return NewAssessmentService(state, assessments), state, assessments
}

func TestAssessmentService_Answer(t *testing.T) {
	svc, _, _ := newAssessmentService(t)
	ctx := context.Background()

	require.NoError(t, svc.Answer(ctx, "emailTwoFactor", "yes"))

	state, err := svc.State(ctx)
	require.NoError(t, err)
	assert.Equal(t, "yes", state.Answers["emailTwoFactor"])
}

func TestAssessmentService_AnswerUnknownQuestion(t *testing.T) {
	svc, _, _ := newAssessmentService(t)

	err := svc.Answer(context.Background(), "nonexistent", "yes")
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestAssessmentService_AnswerUnknownOption(t *testing.T) {
	svc, _, _ := newAssessmentService(t)

	err := svc.Answer(context.Background(), "emailTwoFactor", "maybe")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no option")
}

func TestAssessmentService_EmptyValueClears(t *testing.T) {
	svc, _, _ := newAssessmentService(t)
	ctx := context.Background()

	require.NoError(t, svc.Answer(ctx, "emailTwoFactor", "yes"))
	require.NoError(t, svc.Answer(ctx, "emailTwoFactor", ""))

	state, err := svc.State(ctx)
	require.NoError(t, err)
	_, ok := state.Answers["emailTwoFactor"]
	assert.False(t, ok)
}

func TestAssessmentService_AnswerFollowUp(t *testing.T) {
	svc, _, _ := newAssessmentService(t)
	ctx := context.Background()

	require.NoError(t, svc.Answer(ctx, "backupTested", "no"))

	state, err := svc.State(ctx)
	require.NoError(t, err)
	assert.Equal(t, "no", state.Answers["backupTested"])
}

func TestAssessmentService_SetMode(t *testing.T) {
	svc, _, _ := newAssessmentService(t)
	ctx := context.Background()

	require.NoError(t, svc.SetMode(ctx, domain.ModeFull))

	state, err := svc.State(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ModeFull, state.Mode)

	assert.Error(t, svc.SetMode(ctx, domain.AssessmentMode("turbo")))
}

func TestAssessmentService_CompleteRun(t *testing.T) {
	svc, _, assessments := newAssessmentService(t)
	ctx := context.Background()

	for id, value := range testutil.PerfectAnswers() {
		require.NoError(t, svc.Answer(ctx, id, value))
	}

	snap, err := svc.CompleteRun(ctx, domain.ModeFull)
	require.NoError(t, err)
	assert.NotEmpty(t, snap.ID)
	assert.Equal(t, domain.ModeFull, snap.Mode)
	assert.Equal(t, 100, snap.Percentage)
	assert.Equal(t, "EXCELLENT", snap.LevelKey)
	assert.Equal(t, 11, snap.Answered)

	latest, err := assessments.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, snap.ID, latest.ID)

	state, err := svc.State(ctx)
	require.NoError(t, err)
	require.NotNil(t, state.LastAssessment)
}

func TestAssessmentService_CompleteRunQuickCountsCriticalOnly(t *testing.T) {
	svc, _, _ := newAssessmentService(t)
	ctx := context.Background()

	for id, value := range testutil.PerfectAnswers() {
		require.NoError(t, svc.Answer(ctx, id, value))
	}

	snap, err := svc.CompleteRun(ctx, domain.ModeQuick)
	require.NoError(t, err)
	assert.Equal(t, 3, snap.Answered)
}

func TestAssessmentService_ResetClearsHistory(t *testing.T) {
	svc, state, assessments := newAssessmentService(t)
	ctx := context.Background()

	require.NoError(t, svc.Answer(ctx, "emailTwoFactor", "yes"))
	require.NoError(t, state.MarkCompleted(ctx, "check-breaches"))
	_, err := svc.CompleteRun(ctx, domain.ModeQuick)
	require.NoError(t, err)

	require.NoError(t, svc.Reset(ctx))

	st, err := svc.State(ctx)
	require.NoError(t, err)
	assert.Empty(t, st.Answers)
	assert.Empty(t, st.CompletedTasks)
	assert.Nil(t, st.LastAssessment)

	_, err = assessments.Latest(ctx)
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}
