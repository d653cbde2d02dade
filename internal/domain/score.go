package domain

// ScoreLevel is one of five percentage bands with a qualitative label.
// The bands partition [0,100]: every integer percentage falls in exactly
// one band.
type ScoreLevel struct {
	Key   string
	Min   int
	Max   int
	Label string
	Color string
}

// ScoreLevels in ascending band order.
var ScoreLevels = []ScoreLevel{
	{Key: "NEEDS_ATTENTION", Min: 0, Max: 39, Label: "Needs Attention", Color: "#dc2626"},
	{Key: "GETTING_THERE", Min: 40, Max: 59, Label: "Getting There", Color: "#ea580c"},
	{Key: "GOOD_FOUNDATION", Min: 60, Max: 79, Label: "Good Foundation", Color: "#ca8a04"},
	{Key: "WELL_PROTECTED", Min: 80, Max: 94, Label: "Well Protected", Color: "#22c55e"},
	{Key: "EXCELLENT", Min: 95, Max: 100, Label: "Excellent", Color: "#16a34a"},
}

// LevelForPercentage maps an integer percentage to its band. Values outside
// [0,100] clamp to the nearest band.
func LevelForPercentage(pct int) ScoreLevel {
	for _, l := range ScoreLevels {
		if pct >= l.Min && pct <= l.Max {
			return l
		}
	}
	if pct < 0 {
		return ScoreLevels[0]
	}
	return ScoreLevels[len(ScoreLevels)-1]
}
