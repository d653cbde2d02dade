package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jvkuechen/secguard/internal/domain"
)

func TestAssessSummary_Scored(t *testing.T) {
	out := assessSummary(&domain.AssessmentSnapshot{
		Mode:       domain.ModeFull,
		Percentage: 72,
		Answered:   11,
	})

	assert.Contains(t, out, "Your score: 72%")
	assert.Contains(t, out, "Good Foundation")
}

func TestAssessSummary_NothingAnswered(t *testing.T) {
	out := assessSummary(&domain.AssessmentSnapshot{
		Mode:       domain.ModeFull,
		Percentage: 0,
		Answered:   0,
	})

	assert.NotContains(t, out, "%")
	assert.Contains(t, out, "no score")
}
