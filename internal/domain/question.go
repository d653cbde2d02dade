package domain

// Option is one selectable answer for a question. Score rates how well the
// answer satisfies the security property the question tests, from 0 (not at
// all) to 1 (fully).
type Option struct {
	Value string
	Label string
	Score float64
}

// FollowUp is a conditional nested question shown when the parent's answer
// matches the condition. Follow-up answers are tracked for context but never
// contribute to the weighted score.
type FollowUp struct {
	Condition func(answer string) bool
	Question  Question
}

// Question is a single assessable item. Weight is a fixed relative
// importance constant used as the multiplier in the score formula.
// Follow-up questions carry weight 0.
type Question struct {
	ID       string
	Tier     Tier
	Text     string
	HelpText string
	Weight   int
	Options  []Option
	Tooltip  string
	FollowUp *FollowUp
}

// OptionByValue returns the option with the given value, or false when the
// value matches none of the question's options.
func (q *Question) OptionByValue(value string) (Option, bool) {
	for _, o := range q.Options {
		if o.Value == value {
			return o, true
		}
	}
	return Option{}, false
}
