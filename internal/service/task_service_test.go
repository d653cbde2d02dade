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

func newTaskService(t *testing.T) (TaskService, repository.StateRepo) {
	t.Helper()
	state := repository.NewSQLiteStateRepo(testutil.NewTestDB(t))
	return NewTaskService(state), state
}

func seedAnswers(t *testing.T, state repository.StateRepo, answers domain.AnswerSet) {
	t.Helper()
	for id, value := range answers {
		require.NoError(t, state.SetAnswer(context.Background(), id, value))
	}
}

func TestTaskService_RecommendedReflectsAnswers(t *testing.T) {
	svc, state := newTaskService(t)
	ctx := context.Background()

	seedAnswers(t, state, testutil.WeakAnswers())

	tasks, err := svc.Recommended(ctx)
	require.NoError(t, err)

	ids := map[string]bool{}
	for _, task := range tasks {
		ids[task.ID] = true
	}
	assert.True(t, ids["enable-2fa-email"])
	assert.True(t, ids["setup-password-manager"])
	assert.True(t, ids["enable-2fa-banking"])
}

func TestTaskService_CompleteAndReopen(t *testing.T) {
	svc, _ := newTaskService(t)
	ctx := context.Background()

	require.NoError(t, svc.Complete(ctx, "check-breaches"))

	statuses, err := svc.AllWithStatus(ctx)
	require.NoError(t, err)
	assert.True(t, findStatus(t, statuses, "check-breaches").Completed)

	require.NoError(t, svc.Reopen(ctx, "check-breaches"))

	statuses, err = svc.AllWithStatus(ctx)
	require.NoError(t, err)
	assert.False(t, findStatus(t, statuses, "check-breaches").Completed)
}

func TestTaskService_Dismiss(t *testing.T) {
	svc, _ := newTaskService(t)
	ctx := context.Background()

	require.NoError(t, svc.Dismiss(ctx, "browser-security"))

	tasks, err := svc.Recommended(ctx)
	require.NoError(t, err)
	for _, task := range tasks {
		assert.NotEqual(t, "browser-security", task.ID)
	}
}

func TestTaskService_UnknownTaskID(t *testing.T) {
	svc, _ := newTaskService(t)
	ctx := context.Background()

	for _, op := range []func(context.Context, string) error{svc.Complete, svc.Reopen, svc.Dismiss} {
		err := op(ctx, "nonexistent")
		assert.True(t, errors.Is(err, repository.ErrNotFound))
	}
}

func TestTaskService_TopPriority(t *testing.T) {
	svc, state := newTaskService(t)
	ctx := context.Background()

	seedAnswers(t, state, testutil.WeakAnswers())

	top, err := svc.TopPriority(ctx)
	require.NoError(t, err)
	require.NotNil(t, top)
	assert.Equal(t, domain.SeverityCritical, top.Severity)
}

func TestTaskService_Progress(t *testing.T) {
	svc, _ := newTaskService(t)
	ctx := context.Background()

	require.NoError(t, svc.Complete(ctx, "check-breaches"))

	progress, err := svc.Progress(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, progress.Completed)
	assert.Equal(t, 2, progress.Total)
}

func findStatus(t *testing.T, statuses []domain.TaskStatus, id string) domain.TaskStatus {
	t.Helper()
	for _, s := range statuses {
		if s.Task.ID == id {
			return s
		}
	}
	t.Fatalf("task %s not in status list", id)
	return domain.TaskStatus{}
}
