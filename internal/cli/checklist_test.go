package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jvkuechen/secguard/internal/repository"
	"github.com/jvkuechen/secguard/internal/service"
	"github.com/jvkuechen/secguard/internal/teatest"
	"github.com/jvkuechen/secguard/internal/testutil"
)

func newChecklistApp(t *testing.T) *App {
	t.Helper()
	state := repository.NewSQLiteStateRepo(testutil.NewTestDB(t))
	for id, value := range testutil.WeakAnswers() {
		require.NoError(t, state.SetAnswer(context.Background(), id, value))
	}
	return &App{Tasks: service.NewTaskService(state)}
}

func newChecklistDriver(t *testing.T) *teatest.Driver {
	t.Helper()
	model, err := newChecklistModel(newChecklistApp(t))
	require.NoError(t, err)
	return teatest.New(t, model)
}

func TestChecklist_RendersTasks(t *testing.T) {
	d := newChecklistDriver(t)

	view := d.View()
	assert.Contains(t, view, "Security Tasks")
	assert.Contains(t, view, "Enable 2FA on Your Email")
	assert.Contains(t, view, "[ ]")
}

func TestChecklist_ToggleCompletes(t *testing.T) {
	d := newChecklistDriver(t)

	d.Press(' ')

	view := d.View()
	assert.Contains(t, view, "[✓]")
	assert.Contains(t, view, "1/")
}

func TestChecklist_ToggleTwiceReopens(t *testing.T) {
	d := newChecklistDriver(t)

	d.Press(' ')
	// Completed tasks sort last, so follow the task to the bottom.
	for i := 0; i < 10; i++ {
		d.PressDown()
	}
	d.Press(' ')

	assert.NotContains(t, d.View(), "[✓]")
}

func TestChecklist_Dismiss(t *testing.T) {
	d := newChecklistDriver(t)

	d.Press('d')

	assert.Contains(t, d.View(), "[−]")
}

func TestChecklist_CursorMoves(t *testing.T) {
	d := newChecklistDriver(t)

	// The description follows the cursor line.
	first := d.View()
	d.Press('j')
	second := d.View()
	assert.NotEqual(t, first, second)

	d.Press('k')
	assert.Equal(t, first, d.View())
}

func TestChecklist_QuitKeys(t *testing.T) {
	d := newChecklistDriver(t)

	d.Press('q')
	assert.True(t, d.Quit)
}
