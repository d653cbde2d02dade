// Package scoring computes the weighted security score from an answer set.
// Every function is pure and recomputes from scratch: the answer set is
// small, and full recomputation rules out incremental-update bugs.
package scoring

import (
	"math"

	"github.com/jvkuechen/secguard/internal/catalog"
	"github.com/jvkuechen/secguard/internal/domain"
)

// completeThreshold separates "adequate" answers from ones that still need
// work in the breakdown display.
const completeThreshold = 0.7

// QuestionScore is one answered question's contribution to the score.
type QuestionScore struct {
	ID          string
	Tier        domain.Tier
	Label       string
	Weight      int
	Score       float64 // option score * weight
	MaxScore    int     // the question weight
	Percentage  int     // option score as a percentage
	Answer      string
	AnswerLabel string
	Complete    bool
}

// Result is the outcome of scoring an answer set. HasAnswers distinguishes
// "no data yet" from a genuine 0% score.
type Result struct {
	Score      int
	MaxScore   int
	Percentage int
	Breakdown  []QuestionScore
	Level      domain.ScoreLevel
	HasAnswers bool
}

// CalculateScore computes the weighted percentage score over all answered
// top-level questions. Unanswered questions contribute nothing to either
// accumulator; follow-up answers are tracked elsewhere but never scored.
func CalculateScore(answers domain.AnswerSet) Result {
	if len(answers) == 0 {
		return Result{}
	}

	var totalScore float64
	var totalWeight int
	var breakdown []QuestionScore

	for _, q := range catalog.Questions() {
		entry, ok := scoreQuestion(q, answers)
		if !ok {
			continue
		}
		totalScore += entry.Score
		totalWeight += q.Weight
		breakdown = append(breakdown, entry)
	}

	if totalWeight == 0 {
		// Keys present but none matched a scorable question.
		return Result{}
	}

	pct := roundPct(totalScore, float64(totalWeight))
	return Result{
		Score:      int(math.Round(totalScore)),
		MaxScore:   totalWeight,
		Percentage: pct,
		Breakdown:  breakdown,
		Level:      domain.LevelForPercentage(pct),
		HasAnswers: true,
	}
}

// scoreQuestion resolves one question against the answer set. Returns false
// when the question is unanswered or the stored value matches no option.
func scoreQuestion(q domain.Question, answers domain.AnswerSet) (QuestionScore, bool) {
	answer, ok := answers[q.ID]
	if !ok {
		return QuestionScore{}, false
	}
	opt, ok := q.OptionByValue(answer)
	if !ok {
		return QuestionScore{}, false
	}
	return QuestionScore{
		ID:          q.ID,
		Tier:        q.Tier,
		Label:       catalog.QuestionLabel(q.ID),
		Weight:      q.Weight,
		Score:       opt.Score * float64(q.Weight),
		MaxScore:    q.Weight,
		Percentage:  int(math.Round(opt.Score * 100)),
		Answer:      answer,
		AnswerLabel: opt.Label,
		Complete:    opt.Score >= completeThreshold,
	}, true
}

// TierScore is the breakdown of one tier, scored the same way as the total
// but over that tier's answered questions only.
type TierScore struct {
	Tier       domain.Tier
	Score      float64
	MaxScore   int
	Percentage int
	Items      []QuestionScore
}

// ScoreByTier partitions the breakdown by tier, in the fixed tier order.
// Tiers with no answered questions appear with zero totals.
func ScoreByTier(answers domain.AnswerSet) []TierScore {
	byTier := make(map[domain.Tier]*TierScore, len(domain.TierOrder))
	out := make([]TierScore, 0, len(domain.TierOrder))
	for _, t := range domain.TierOrder {
		byTier[t] = &TierScore{Tier: t}
	}

	for _, q := range catalog.Questions() {
		entry, ok := scoreQuestion(q, answers)
		if !ok {
			continue
		}
		ts := byTier[q.Tier]
		ts.Score += entry.Score
		ts.MaxScore += q.Weight
		ts.Items = append(ts.Items, entry)
	}

	for _, t := range domain.TierOrder {
		ts := byTier[t]
		if ts.MaxScore > 0 {
			ts.Percentage = roundPct(ts.Score, float64(ts.MaxScore))
		}
		out = append(out, *ts)
	}
	return out
}

func roundPct(score, max float64) int {
	return int(math.Round(score / max * 100))
}
