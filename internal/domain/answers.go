package domain

// AnswerSet maps question IDs (including follow-up IDs) to the selected
// option value. A missing key means "unanswered", which is distinct from any
// option value. Engines treat an AnswerSet as read-only.
type AnswerSet map[string]string

// Clone returns an independent copy of the answer set.
func (a AnswerSet) Clone() AnswerSet {
	out := make(AnswerSet, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}
