package trend

import (
	"testing"
	"time"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// series builds n log entries inside the window, hours apart, with
// correctness decided per index.
func series(n int, correct func(i int) bool) []LogEntry {
	logs := make([]LogEntry, n)
	start := now.Add(-48 * time.Hour)
	for i := range logs {
		logs[i] = LogEntry{
			UserID:     "u1",
			ModuleName: "addition",
			IsCorrect:  correct(i),
			Timestamp:  start.Add(time.Duration(i) * time.Hour),
		}
	}
	return logs
}

func TestAnalyze_InsufficientData(t *testing.T) {
	for n := 0; n < MinEntries; n++ {
		logs := series(n, func(int) bool { return true })
		got := Analyze(logs, now, 7)
		if got.Trend != InsufficientData {
			t.Errorf("Analyze with %d entries: trend = %s, want insufficient-data", n, got.Trend)
		}
		if got.ImprovementPct != nil {
			t.Errorf("Analyze with %d entries: improvement = %v, want nil", n, *got.ImprovementPct)
		}
	}
}

func TestAnalyze_DecliningCollapse(t *testing.T) {
	// First five all correct, last five all wrong: improvement −100.
	logs := series(10, func(i int) bool { return i < 5 })
	got := Analyze(logs, now, 7)
	if got.Trend != Declining {
		t.Errorf("trend = %s, want declining", got.Trend)
	}
	if got.ImprovementPct == nil || *got.ImprovementPct != -100 {
		t.Errorf("improvement = %v, want -100", got.ImprovementPct)
	}
	if got.RecentAccuracyPct != 0 {
		t.Errorf("recentAccuracy = %d, want 0", got.RecentAccuracyPct)
	}
	if got.SuggestedAction != ActionReduce {
		t.Errorf("suggestedAction = %q, want %q", got.SuggestedAction, ActionReduce)
	}
}

func TestAnalyze_Improving(t *testing.T) {
	logs := series(10, func(i int) bool { return i >= 5 })
	got := Analyze(logs, now, 7)
	if got.Trend != Improving {
		t.Errorf("trend = %s, want improving", got.Trend)
	}
	if got.SuggestedAction != ActionIncrease {
		t.Errorf("suggestedAction = %q, want %q", got.SuggestedAction, ActionIncrease)
	}
}

func TestAnalyze_StableInsideBand(t *testing.T) {
	// 3/5 in each half: zero delta.
	logs := series(10, func(i int) bool { return i%5 < 3 })
	got := Analyze(logs, now, 7)
	if got.Trend != Stable {
		t.Errorf("trend = %s, want stable", got.Trend)
	}
	if got.SuggestedAction != ActionContinue {
		t.Errorf("suggestedAction = %q, want %q", got.SuggestedAction, ActionContinue)
	}
}

func TestAnalyze_BandBoundaries(t *testing.T) {
	// 5/10 → 6/10 is +10: inside the band, stable.
	logs := series(20, func(i int) bool {
		if i < 10 {
			return i < 5
		}
		return i-10 < 6
	})
	got := Analyze(logs, now, 7)
	if got.Trend != Stable {
		t.Errorf("+10 delta: trend = %s, want stable (band is exclusive)", got.Trend)
	}
}

func TestAnalyze_WindowExcludesOldEntries(t *testing.T) {
	logs := series(10, func(int) bool { return true })
	// Push the first six outside the 7-day window.
	for i := range 6 {
		logs[i].Timestamp = now.AddDate(0, 0, -9)
	}
	got := Analyze(logs, now, 7)
	if got.Trend != InsufficientData {
		t.Errorf("trend = %s, want insufficient-data with only 4 in window", got.Trend)
	}
}

func TestAnalyze_Idempotent(t *testing.T) {
	logs := series(9, func(i int) bool { return i%2 == 0 })
	first := Analyze(logs, now, 7)
	second := Analyze(logs, now, 7)
	if first.Trend != second.Trend || *first.ImprovementPct != *second.ImprovementPct {
		t.Errorf("repeated analysis diverged: %+v vs %+v", first, second)
	}
}
