package achievements

import "testing"

func TestCatalog_UniqueIDs(t *testing.T) {
	seen := map[string]bool{}
	for _, d := range Catalog() {
		if seen[d.ID] {
			t.Errorf("duplicate achievement ID %q", d.ID)
		}
		seen[d.ID] = true
		if d.Title == "" || d.Description == "" || d.Icon == "" {
			t.Errorf("%s: incomplete display text %+v", d.ID, d)
		}
		if d.XP < 0 {
			t.Errorf("%s: negative XP %d", d.ID, d.XP)
		}
	}
}

func TestThresholds_ReferenceCatalog(t *testing.T) {
	for _, th := range Thresholds() {
		if _, ok := Lookup(th.ID); !ok {
			t.Errorf("threshold %s>=%d names unknown achievement %q", th.Metric, th.Min, th.ID)
		}
	}
	if len(Thresholds()) != len(Catalog()) {
		t.Errorf("thresholds = %d, catalog = %d; every achievement should be reachable",
			len(Thresholds()), len(Catalog()))
	}
}

func TestThresholds_StableOrder(t *testing.T) {
	family := map[Metric]int{}
	for i, m := range AllMetrics() {
		family[m] = i
	}

	prev := Thresholds()[0]
	for _, th := range Thresholds()[1:] {
		switch {
		case family[th.Metric] < family[prev.Metric]:
			t.Errorf("%s listed after %s; families out of order", th.ID, prev.ID)
		case th.Metric == prev.Metric && th.Min <= prev.Min:
			t.Errorf("%s (>=%d) not ascending after %s (>=%d)", th.ID, th.Min, prev.ID, prev.Min)
		}
		prev = th
	}
}

func TestCatalog_ReturnsCopy(t *testing.T) {
	c := Catalog()
	c[0].Title = "mutated"
	if d, _ := Lookup(c[0].ID); d.Title == "mutated" {
		t.Error("Catalog() exposed internal definitions")
	}
	if Catalog()[0].Title == "mutated" {
		t.Error("Catalog() returned shared slice")
	}
}

func TestMetricsValue(t *testing.T) {
	m := Metrics{WordsLearned: 1, Streak: 2, XP: 3, ArticlesRead: 4, PracticeCompleted: 5}
	want := map[Metric]int{
		MetricWords: 1, MetricStreak: 2, MetricXP: 3, MetricArticles: 4, MetricPractice: 5,
	}
	for metric, v := range want {
		if got := m.Value(metric); got != v {
			t.Errorf("Value(%s) = %d, want %d", metric, got, v)
		}
	}
	if got := m.Value(Metric("bogus")); got != 0 {
		t.Errorf("Value(bogus) = %d, want 0", got)
	}
}

func TestTotalXP(t *testing.T) {
	if got := TotalXP(nil); got != 0 {
		t.Errorf("TotalXP(nil) = %d, want 0", got)
	}
	first, _ := Lookup("first_word")
	ten, _ := Lookup("words_10")
	if got := TotalXP([]Definition{first, ten}); got != first.XP+ten.XP {
		t.Errorf("TotalXP = %d, want %d", got, first.XP+ten.XP)
	}
}
