package scoring

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jvkuechen/secguard/internal/catalog"
	"github.com/jvkuechen/secguard/internal/domain"
	"github.com/jvkuechen/secguard/internal/testutil"
)

func TestCalculateScore_EmptyAnswers(t *testing.T) {
	result := CalculateScore(domain.AnswerSet{})

	assert.False(t, result.HasAnswers)
	assert.Equal(t, 0, result.Score)
	assert.Equal(t, 0, result.MaxScore)
	assert.Equal(t, 0, result.Percentage)
	assert.Empty(t, result.Breakdown)
}

func TestCalculateScore_NilAnswers(t *testing.T) {
	result := CalculateScore(nil)
	assert.False(t, result.HasAnswers)
	assert.Equal(t, 0, result.Percentage)
}

func TestCalculateScore_AllBestAnswersIsHundred(t *testing.T) {
	result := CalculateScore(testutil.PerfectAnswers())

	assert.True(t, result.HasAnswers)
	assert.Equal(t, 100, result.Percentage)
	assert.Equal(t, "EXCELLENT", result.Level.Key)
	assert.Len(t, result.Breakdown, len(catalog.Questions()))
}

func TestCalculateScore_CriticalOnlyAllBest(t *testing.T) {
	answers := domain.AnswerSet{
		"emailTwoFactor":     "yes",
		"passwordManager":    "dedicated",
		"financialTwoFactor": "all",
	}
	result := CalculateScore(answers)

	// Unanswered questions are excluded from both accumulators, so three
	// perfect answers still score 100.
	assert.Equal(t, 100, result.Percentage)
	assert.Equal(t, "EXCELLENT", result.Level.Key)
	assert.Len(t, result.Breakdown, 3)
}

func TestCalculateScore_OneWeakCriticalAnswer(t *testing.T) {
	answers := domain.AnswerSet{
		"emailTwoFactor":     "yes",      // 20 of 20
		"passwordManager":    "dedicated", // 15 of 15
		"financialTwoFactor": "no",        // 0 of 15
	}
	result := CalculateScore(answers)

	// 35 of 50 weighted points = 70%.
	assert.Equal(t, 70, result.Percentage)
	assert.Equal(t, "GOOD_FOUNDATION", result.Level.Key)
}

func TestCalculateScore_FollowUpAnswersNeverScored(t *testing.T) {
	base := domain.AnswerSet{"emailTwoFactor": "yes"}
	withFollowUp := domain.AnswerSet{
		"emailTwoFactor":       "yes",
		"emailTwoFactorMethod": "sms",
	}

	assert.Equal(t, CalculateScore(base).Percentage, CalculateScore(withFollowUp).Percentage)
	assert.Len(t, CalculateScore(withFollowUp).Breakdown, 1)
}

func TestCalculateScore_UnknownAnswerValueIgnored(t *testing.T) {
	answers := domain.AnswerSet{
		"emailTwoFactor": "not-a-real-option",
	}
	result := CalculateScore(answers)
	assert.False(t, result.HasAnswers)
	assert.Empty(t, result.Breakdown)
}

// TestCalculateScore_Monotonicity property-tests that upgrading any single
// answer to a better-scoring option never lowers the percentage.
func TestCalculateScore_Monotonicity(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	questions := catalog.Questions()

	for trial := 0; trial < 200; trial++ {
		answers := domain.AnswerSet{}
		for _, q := range questions {
			if rng.Intn(2) == 0 {
				continue
			}
			answers[q.ID] = q.Options[rng.Intn(len(q.Options))].Value
		}

		before := CalculateScore(answers).Percentage

		// Upgrade one answered question to its best option.
		for _, q := range questions {
			current, ok := answers[q.ID]
			if !ok {
				continue
			}
			opt, _ := q.OptionByValue(current)
			best := q.Options[0]
			for _, o := range q.Options {
				if o.Score > best.Score {
					best = o
				}
			}
			if best.Score <= opt.Score {
				continue
			}

			upgraded := answers.Clone()
			upgraded[q.ID] = best.Value
			after := CalculateScore(upgraded).Percentage
			assert.GreaterOrEqual(t, after, before,
				"trial %d: upgrading %s from %s to %s must not lower the score",
				trial, q.ID, current, best.Value)
		}
	}
}

// TestLevelForPercentage_BandsPartition checks that every percentage from
// 0 to 100 maps to exactly one level and boundaries land where published.
func TestLevelForPercentage_BandsPartition(t *testing.T) {
	for pct := 0; pct <= 100; pct++ {
		level := domain.LevelForPercentage(pct)
		require.GreaterOrEqual(t, pct, level.Min, "pct %d below its band", pct)
		require.LessOrEqual(t, pct, level.Max, "pct %d above its band", pct)
	}

	assert.Equal(t, "NEEDS_ATTENTION", domain.LevelForPercentage(0).Key)
	assert.Equal(t, "NEEDS_ATTENTION", domain.LevelForPercentage(39).Key)
	assert.Equal(t, "GETTING_THERE", domain.LevelForPercentage(40).Key)
	assert.Equal(t, "GOOD_FOUNDATION", domain.LevelForPercentage(60).Key)
	assert.Equal(t, "WELL_PROTECTED", domain.LevelForPercentage(80).Key)
	assert.Equal(t, "WELL_PROTECTED", domain.LevelForPercentage(94).Key)
	assert.Equal(t, "EXCELLENT", domain.LevelForPercentage(95).Key)
	assert.Equal(t, "EXCELLENT", domain.LevelForPercentage(100).Key)

	// Out-of-range inputs clamp to the outer bands.
	assert.Equal(t, "NEEDS_ATTENTION", domain.LevelForPercentage(-5).Key)
	assert.Equal(t, "EXCELLENT", domain.LevelForPercentage(130).Key)
}

func TestScoreByTier_FixedOrderAndTotals(t *testing.T) {
	tiers := ScoreByTier(testutil.PerfectAnswers())

	require.Len(t, tiers, 3)
	assert.Equal(t, domain.TierCritical, tiers[0].Tier)
	assert.Equal(t, domain.TierImportant, tiers[1].Tier)
	assert.Equal(t, domain.TierGoodPractices, tiers[2].Tier)

	for _, ts := range tiers {
		assert.Equal(t, 100, ts.Percentage)
		assert.NotEmpty(t, ts.Items)
	}
}

func TestScoreByTier_EmptyTiersPresent(t *testing.T) {
	tiers := ScoreByTier(domain.AnswerSet{"emailTwoFactor": "yes"})

	require.Len(t, tiers, 3)
	assert.NotEmpty(t, tiers[0].Items)
	assert.Empty(t, tiers[1].Items)
	assert.Empty(t, tiers[2].Items)
	assert.Equal(t, 0, tiers[1].MaxScore)
}

func TestQuestionScore_CompleteThreshold(t *testing.T) {
	result := CalculateScore(domain.AnswerSet{
		"phoneLock":      "pin", // 0.8 >= threshold
		"emailTwoFactor": "unsure",
	})

	byID := map[string]QuestionScore{}
	for _, qs := range result.Breakdown {
		byID[qs.ID] = qs
	}
	assert.True(t, byID["phoneLock"].Complete)
	assert.False(t, byID["emailTwoFactor"].Complete)
}
