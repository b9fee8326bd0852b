package achievements

var catalog = []Definition{
	{ID: "first_word", Title: "First Word", Description: "Learn your first word", Icon: "🌱", XP: 10},
	{ID: "words_10", Title: "Word Collector", Description: "Learn 10 words", Icon: "📝", XP: 25},
	{ID: "words_50", Title: "Vocabulary Builder", Description: "Learn 50 words", Icon: "📚", XP: 50},
	{ID: "words_100", Title: "Word Master", Description: "Learn 100 words", Icon: "🎓", XP: 100},
	{ID: "words_500", Title: "Lexicon Legend", Description: "Learn 500 words", Icon: "👑", XP: 250},

	{ID: "streak_3", Title: "On a Roll", Description: "Study 3 days in a row", Icon: "🔥", XP: 30},
	{ID: "streak_7", Title: "Week Warrior", Description: "Study 7 days in a row", Icon: "⚡", XP: 70},
	{ID: "streak_30", Title: "Unstoppable", Description: "Study 30 days in a row", Icon: "💎", XP: 300},

	{ID: "xp_100", Title: "Rising Star", Description: "Earn 100 XP", Icon: "⭐", XP: 10},
	{ID: "xp_500", Title: "High Achiever", Description: "Earn 500 XP", Icon: "🌟", XP: 50},
	{ID: "xp_1000", Title: "XP Champion", Description: "Earn 1000 XP", Icon: "🏆", XP: 100},

	{ID: "first_article", Title: "First Read", Description: "Read your first article", Icon: "📰", XP: 15},
	{ID: "articles_10", Title: "Avid Reader", Description: "Read 10 articles", Icon: "📖", XP: 50},
	{ID: "articles_50", Title: "Bookworm", Description: "Read 50 articles", Icon: "🐛", XP: 150},

	{ID: "first_practice", Title: "Warm Up", Description: "Complete your first practice session", Icon: "🎯", XP: 10},
	{ID: "practice_10", Title: "Dedicated Learner", Description: "Complete 10 practice sessions", Icon: "💪", XP: 50},
	{ID: "practice_50", Title: "Practice Makes Perfect", Description: "Complete 50 practice sessions", Icon: "🥇", XP: 150},
}

// thresholds is evaluated top to bottom: metric families in AllMetrics order,
// ascending Min within a family.
var thresholds = []Threshold{
	{MetricWords, 1, "first_word"},
	{MetricWords, 10, "words_10"},
	{MetricWords, 50, "words_50"},
	{MetricWords, 100, "words_100"},
	{MetricWords, 500, "words_500"},

	{MetricStreak, 3, "streak_3"},
	{MetricStreak, 7, "streak_7"},
	{MetricStreak, 30, "streak_30"},

	{MetricXP, 100, "xp_100"},
	{MetricXP, 500, "xp_500"},
	{MetricXP, 1000, "xp_1000"},

	{MetricArticles, 1, "first_article"},
	{MetricArticles, 10, "articles_10"},
	{MetricArticles, 50, "articles_50"},

	{MetricPractice, 1, "first_practice"},
	{MetricPractice, 10, "practice_10"},
	{MetricPractice, 50, "practice_50"},
}

var byID = func() map[string]Definition {
	m := make(map[string]Definition, len(catalog))
	for _, d := range catalog {
		m[d.ID] = d
	}
	return m
}()

// Catalog returns every known achievement definition in display order.
func Catalog() []Definition {
	out := make([]Definition, len(catalog))
	copy(out, catalog)
	return out
}

// Thresholds returns the award table in evaluation order.
func Thresholds() []Threshold {
	out := make([]Threshold, len(thresholds))
	copy(out, thresholds)
	return out
}

// Lookup returns the definition for id.
func Lookup(id string) (Definition, bool) {
	d, ok := byID[id]
	return d, ok
}
