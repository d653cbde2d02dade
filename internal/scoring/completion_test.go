package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jvkuechen/secguard/internal/domain"
	"github.com/jvkuechen/secguard/internal/testutil"
)

func TestCompletion_Empty(t *testing.T) {
	stats := Completion(domain.AnswerSet{})

	assert.Equal(t, 0, stats.Quick.Answered)
	assert.Equal(t, 3, stats.Quick.Total)
	assert.False(t, stats.Quick.Complete)
	assert.Equal(t, 11, stats.Full.Total)
	assert.False(t, stats.Full.Complete)
}

func TestCompletion_QuickDoneFullNot(t *testing.T) {
	stats := Completion(testutil.PartialAnswers())

	assert.True(t, stats.Quick.Complete)
	assert.Equal(t, 3, stats.Quick.Answered)
	assert.False(t, stats.Full.Complete)
	assert.Equal(t, 3, stats.Full.Answered)
}

func TestCompletion_FollowUpsDoNotCount(t *testing.T) {
	answers := domain.AnswerSet{
		"emailTwoFactor":       "yes",
		"emailTwoFactorMethod": "app",
	}
	stats := Completion(answers)
	assert.Equal(t, 1, stats.Quick.Answered)
	assert.Equal(t, 1, stats.Full.Answered)
}

func TestIsComplete(t *testing.T) {
	assert.True(t, IsComplete(testutil.PartialAnswers(), domain.ModeQuick))
	assert.False(t, IsComplete(testutil.PartialAnswers(), domain.ModeFull))
	assert.True(t, IsComplete(testutil.PerfectAnswers(), domain.ModeFull))
}
