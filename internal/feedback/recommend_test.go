package feedback

import (
	"testing"

	"github.com/abhisek/mathpal/internal/difficulty"
	"github.com/abhisek/mathpal/internal/mastery"
)

func record(acc, sessions int, level difficulty.Level) *mastery.Record {
	r := mastery.NewRecord("u1", "addition")
	r.AccuracyPct = acc
	r.CompletedSessions = sessions
	r.CurrentDifficulty = level
	r.MasteryLevel = mastery.LevelFor(acc)
	return r
}

func TestRecommend_NilRecord(t *testing.T) {
	rec := Recommend(nil)
	if rec.Difficulty != difficulty.Easy {
		t.Errorf("difficulty = %s, want easy", rec.Difficulty)
	}
	if !rec.HintsEnabled || !rec.GuidedMode {
		t.Error("new learner should get hints and guided mode")
	}
	if rec.EncouragementLevel != EncourageHigh {
		t.Errorf("encouragement = %s, want high", rec.EncouragementLevel)
	}
	if len(rec.FocusAreas) != 0 {
		t.Errorf("focus areas = %v, want empty", rec.FocusAreas)
	}
}

func TestRecommend_SupportGates(t *testing.T) {
	tests := []struct {
		name      string
		acc       int
		hints     bool
		guided    bool
		encourage EncouragementLevel
	}{
		{"struggling", 40, true, true, EncourageHigh},
		{"below guided cutoff", 59, true, true, EncourageMedium},
		{"guided off at 60", 60, true, false, EncourageMedium},
		{"hints off at 70", 70, false, false, EncourageMedium},
		{"standard at 75", 75, false, false, EncourageStandard},
		{"strong", 92, false, false, EncourageStandard},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := Recommend(record(tc.acc, 5, difficulty.Medium))
			if rec.HintsEnabled != tc.hints {
				t.Errorf("hints = %v, want %v", rec.HintsEnabled, tc.hints)
			}
			if rec.GuidedMode != tc.guided {
				t.Errorf("guided = %v, want %v", rec.GuidedMode, tc.guided)
			}
			if rec.EncouragementLevel != tc.encourage {
				t.Errorf("encouragement = %s, want %s", rec.EncouragementLevel, tc.encourage)
			}
		})
	}
}

func TestRecommend_FocusAreasWeakestFirst(t *testing.T) {
	r := record(80, 5, difficulty.Medium)
	r.WeakAreas = []mastery.ConceptStat{
		{Concept: "carrying", AccuracyPct: 20, Attempts: 3},
		{Concept: "borrowing", AccuracyPct: 35, Attempts: 2},
		{Concept: "place-value", AccuracyPct: 40, Attempts: 1},
		{Concept: "estimation", AccuracyPct: 45, Attempts: 1},
	}
	rec := Recommend(r)
	want := []string{"carrying", "borrowing", "place-value"}
	if len(rec.FocusAreas) != len(want) {
		t.Fatalf("focus areas = %v, want %v", rec.FocusAreas, want)
	}
	for i, c := range want {
		if rec.FocusAreas[i] != c {
			t.Errorf("focus[%d] = %s, want %s", i, rec.FocusAreas[i], c)
		}
	}
}

func TestSessionParameters_NilRecord(t *testing.T) {
	p := SessionParameters(nil)
	if p.Difficulty != difficulty.Easy || p.NumberOfQuestions != 5 {
		t.Errorf("got %s/%d questions, want easy/5", p.Difficulty, p.NumberOfQuestions)
	}
	if p.TimeLimitMs != nil {
		t.Errorf("time limit = %d, want untimed", *p.TimeLimitMs)
	}
	if p.HintsAvailable != 3 || !p.VisualAidsEnabled || !p.GuidedModeEnabled {
		t.Error("new learner should get full supports")
	}
}

func TestSessionParameters_QuestionCountTracksMastery(t *testing.T) {
	tests := []struct {
		acc  int
		want int
	}{
		{30, 5},  // beginner
		{60, 7},  // developing
		{80, 10}, // proficient
		{95, 10}, // mastered
	}
	for _, tc := range tests {
		p := SessionParameters(record(tc.acc, 5, difficulty.Easy))
		if p.NumberOfQuestions != tc.want {
			t.Errorf("acc %d: questions = %d, want %d", tc.acc, p.NumberOfQuestions, tc.want)
		}
	}
}

func TestSessionParameters_TimeLimit(t *testing.T) {
	r := record(80, 5, difficulty.Medium)

	r.AverageResponseTimeMs = 4000
	p := SessionParameters(r)
	if p.TimeLimitMs == nil || *p.TimeLimitMs != 8000 {
		t.Errorf("time limit = %v, want 8000", p.TimeLimitMs)
	}

	// Slow responders and learners with no timing data are untimed.
	r.AverageResponseTimeMs = 12000
	if p = SessionParameters(r); p.TimeLimitMs != nil {
		t.Errorf("slow responder time limit = %d, want nil", *p.TimeLimitMs)
	}
	r.AverageResponseTimeMs = 0
	if p = SessionParameters(r); p.TimeLimitMs != nil {
		t.Errorf("no-data time limit = %d, want nil", *p.TimeLimitMs)
	}
}

func TestSessionParameters_HintsLadder(t *testing.T) {
	tests := []struct {
		acc  int
		want int
	}{
		{69, 3},
		{70, 2},
		{84, 2},
		{85, 1},
	}
	for _, tc := range tests {
		p := SessionParameters(record(tc.acc, 5, difficulty.Medium))
		if p.HintsAvailable != tc.want {
			t.Errorf("acc %d: hints = %d, want %d", tc.acc, p.HintsAvailable, tc.want)
		}
	}
}

func TestSessionParameters_VisualAidsOffWhenMastered(t *testing.T) {
	p := SessionParameters(record(95, 10, difficulty.Hard))
	if p.VisualAidsEnabled {
		t.Error("mastered learner should not get visual aids")
	}
	p = SessionParameters(record(80, 10, difficulty.Hard))
	if !p.VisualAidsEnabled {
		t.Error("proficient learner should still get visual aids")
	}
}
