package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jvkuechen/secguard/internal/domain"
	"github.com/jvkuechen/secguard/internal/repository"
	"github.com/jvkuechen/secguard/internal/testutil"
)

func newStatusService(t *testing.T) (StatusService, AssessmentService, repository.StateRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	state := repository.NewSQLiteStateRepo(database)
	assessments := repository.NewSQLiteAssessmentRepo(database)
	return NewStatusService(state, assessments), NewAssessmentService(state, assessments), state
}

func TestStatusService_FreshDatabase(t *testing.T) {
	svc, _, _ := newStatusService(t)

	report, err := svc.GetStatus(context.Background())
	require.NoError(t, err)

	assert.Equal(t, domain.ModeQuick, report.Mode)
	assert.False(t, report.Score.HasAnswers)
	assert.Nil(t, report.Latest)
	assert.Nil(t, report.LastAssessment)
	assert.Len(t, report.Tiers, 3)

	// Evergreen tasks still surface on an empty state.
	require.NotNil(t, report.TopTask)
	assert.Equal(t, 2, report.Progress.Total)
}

func TestStatusService_AfterFullRun(t *testing.T) {
	svc, assessSvc, state := newStatusService(t)
	ctx := context.Background()

	seedAnswers(t, state, testutil.WeakAnswers())
	snap, err := assessSvc.CompleteRun(ctx, domain.ModeQuick)
	require.NoError(t, err)

	report, err := svc.GetStatus(ctx)
	require.NoError(t, err)

	assert.True(t, report.Score.HasAnswers)
	assert.Equal(t, snap.Percentage, report.Score.Percentage)
	require.NotNil(t, report.Latest)
	assert.Equal(t, snap.ID, report.Latest.ID)
	require.NotNil(t, report.LastAssessment)
	assert.NotEmpty(t, report.Recommendations)
	require.NotNil(t, report.TopTask)
	assert.Equal(t, domain.SeverityCritical, report.TopTask.Severity)
}

func TestStatusService_CompletionTracksMode(t *testing.T) {
	svc, _, state := newStatusService(t)
	ctx := context.Background()

	seedAnswers(t, state, testutil.WeakAnswers())

	report, err := svc.GetStatus(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, report.Completion.Quick.Answered)
	assert.True(t, report.Completion.Quick.Complete)
	assert.Equal(t, 3, report.Completion.Full.Answered)
	assert.False(t, report.Completion.Full.Complete)
}
