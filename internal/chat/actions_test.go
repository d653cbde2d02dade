package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jvkuechen/secguard/internal/domain"
)

func TestResponse_StaticAndComputed(t *testing.T) {
	s := Static("fixed")
	assert.Equal(t, "fixed", s.Render(Context{}))

	c := Computed(func(ctx Context) string {
		if ctx.State == nil {
			return "empty"
		}
		return "loaded"
	})
	assert.Equal(t, "empty", c.Render(Context{}))
	assert.Equal(t, "loaded", c.Render(Context{State: domain.NewDashboardState()}))
}

func TestExecute_UnknownAction(t *testing.T) {
	_, ok := Execute("no-such-action", Context{})
	assert.False(t, ok)
}

func TestSecurityStatus_NoAnswers(t *testing.T) {
	out, ok := Execute("security-status", Context{State: domain.NewDashboardState()})
	require.True(t, ok)
	assert.Contains(t, out, "haven't completed")
	assert.Contains(t, out, "secguard assess")
}

func TestSecurityStatus_MixedAnswers(t *testing.T) {
	state := domain.NewDashboardState()
	state.Answers["passwordManager"] = "dedicated"
	state.Answers["emailTwoFactor"] = "no"
	state.Answers["phoneLock"] = "none"
	state.Answers["backupStatus"] = "auto"

	out, ok := Execute("security-status", Context{State: state})
	require.True(t, ok)
	assert.Contains(t, out, "Good: Password manager, Backups")
	assert.Contains(t, out, "Needs attention: Email 2FA not enabled, No phone lock")
	assert.Contains(t, out, "secguard tasks")
}

func TestSecurityStatus_AllGood(t *testing.T) {
	state := domain.NewDashboardState()
	state.Answers["passwordManager"] = "dedicated"
	state.Answers["emailTwoFactor"] = "yes"
	state.Answers["financialTwoFactor"] = "all"

	out, ok := Execute("security-status", Context{State: state})
	require.True(t, ok)
	assert.Contains(t, out, "Great job!")
	assert.NotContains(t, out, "Needs attention")
}

func TestTopTask_RanksWeakAnswers(t *testing.T) {
	state := domain.NewDashboardState()
	state.Answers["passwordManager"] = "reuse"
	state.Answers["emailTwoFactor"] = "no"

	out, ok := Execute("top-task", Context{State: state})
	require.True(t, ok)
	assert.Contains(t, out, "Start here:")
	assert.Contains(t, out, "(critical)")
}

func TestTopTask_NoGaps(t *testing.T) {
	state := domain.NewDashboardState()
	state.Answers["passwordManager"] = "dedicated"
	state.Answers["emailTwoFactor"] = "yes"

	out, ok := Execute("top-task", Context{State: state})
	require.True(t, ok)
	assert.Contains(t, out, "Nothing urgent")
}

func TestActions_StableOrderAndUniqueIDs(t *testing.T) {
	actions := Actions()
	require.NotEmpty(t, actions)
	assert.Equal(t, "security-status", actions[0].ID)

	seen := make(map[string]bool)
	for _, a := range actions {
		assert.False(t, seen[a.ID], "duplicate action id %s", a.ID)
		seen[a.ID] = true
		assert.NotEmpty(t, a.Label)
		assert.NotEmpty(t, a.Response.Render(Context{}))
	}
}
