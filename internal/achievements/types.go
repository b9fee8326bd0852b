package achievements

import "time"

// Definition is the static description of one awardable milestone.
type Definition struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	XP          int    `json:"xp"`
}

// Record is a queued "you just earned X" notification.
type Record struct {
	Definition
	EarnedAt time.Time `json:"earnedAt"`
}

// Metric identifies a family of progress counters.
type Metric string

const (
	MetricWords    Metric = "words"
	MetricStreak   Metric = "streak"
	MetricXP       Metric = "xp"
	MetricArticles Metric = "articles"
	MetricPractice Metric = "practice"
)

// AllMetrics returns all metric families in evaluation order.
func AllMetrics() []Metric {
	return []Metric{MetricWords, MetricStreak, MetricXP, MetricArticles, MetricPractice}
}

// DisplayName returns a human-readable label for the metric.
func (m Metric) DisplayName() string {
	switch m {
	case MetricWords:
		return "Words learned"
	case MetricStreak:
		return "Day streak"
	case MetricXP:
		return "XP"
	case MetricArticles:
		return "Articles read"
	case MetricPractice:
		return "Practice sessions"
	default:
		return string(m)
	}
}

// Metrics is a point-in-time summary of the learner's progress counters.
type Metrics struct {
	WordsLearned      int `json:"wordsLearned" yaml:"wordsLearned"`
	Streak            int `json:"streak" yaml:"streak"`
	XP                int `json:"xp" yaml:"xp"`
	ArticlesRead      int `json:"articlesRead" yaml:"articlesRead"`
	PracticeCompleted int `json:"practiceCompleted" yaml:"practiceCompleted"`
}

// Value returns the counter for the given metric family.
func (s Metrics) Value(m Metric) int {
	switch m {
	case MetricWords:
		return s.WordsLearned
	case MetricStreak:
		return s.Streak
	case MetricXP:
		return s.XP
	case MetricArticles:
		return s.ArticlesRead
	case MetricPractice:
		return s.PracticeCompleted
	default:
		return 0
	}
}

// Threshold awards ID once Metric reaches Min.
type Threshold struct {
	Metric Metric
	Min    int
	ID     string
}

// Progress summarizes how much of the catalog has been earned.
type Progress struct {
	Earned     int `json:"earned"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
	Remaining  int `json:"remaining"`
}

// Milestone is the next unearned threshold of one metric family.
type Milestone struct {
	Metric     Metric
	Definition Definition
	Target     int
	Current    int
}

// Remaining returns how far Current is from Target, never negative.
func (m Milestone) Remaining() int {
	return max(m.Target-m.Current, 0)
}

// Fraction returns Current/Target clamped to [0, 1].
func (m Milestone) Fraction() float64 {
	if m.Target <= 0 {
		return 1
	}
	f := float64(m.Current) / float64(m.Target)
	return min(max(f, 0), 1)
}

// TotalXP sums the XP of defs.
func TotalXP(defs []Definition) int {
	total := 0
	for _, d := range defs {
		total += d.XP
	}
	return total
}
