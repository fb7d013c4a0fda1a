package mastery

import (
	"testing"
	"time"

	"github.com/abhisek/mathpal/internal/difficulty"
)

var now = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func TestApplySession_AccuracyAndMastery(t *testing.T) {
	r := NewRecord("u1", "addition")
	r.ApplySession(SessionSummary{Correct: 9, Total: 10, AverageResponseTimeMs: 4000}, now)

	if r.AccuracyPct != 90 {
		t.Errorf("AccuracyPct = %d, want 90", r.AccuracyPct)
	}
	if r.MasteryLevel != Mastered {
		t.Errorf("MasteryLevel = %s, want mastered, must be restamped with accuracy", r.MasteryLevel)
	}
	if r.CompletedSessions != 1 || r.TotalQuestions != 10 || r.CorrectAnswers != 9 {
		t.Errorf("counters = %d/%d/%d, want 1/10/9",
			r.CompletedSessions, r.TotalQuestions, r.CorrectAnswers)
	}
	if !r.LastSessionAt.Equal(now) {
		t.Errorf("LastSessionAt = %v, want %v", r.LastSessionAt, now)
	}
}

func TestApplySession_MasteryNeverStale(t *testing.T) {
	r := NewRecord("u1", "counting")
	r.ApplySession(SessionSummary{Correct: 10, Total: 10}, now)
	if r.MasteryLevel != Mastered {
		t.Fatalf("MasteryLevel = %s, want mastered", r.MasteryLevel)
	}

	// A disastrous second session must drag the stamped level down with
	// the cumulative accuracy.
	r.ApplySession(SessionSummary{Correct: 0, Total: 20}, now.Add(time.Hour))
	if r.AccuracyPct != 33 {
		t.Errorf("AccuracyPct = %d, want 33", r.AccuracyPct)
	}
	if r.MasteryLevel != Beginner {
		t.Errorf("MasteryLevel = %s, want beginner after accuracy collapse", r.MasteryLevel)
	}
}

func TestApplySession_RollingResponseTime(t *testing.T) {
	r := NewRecord("u1", "subtraction")
	r.ApplySession(SessionSummary{Correct: 5, Total: 10, AverageResponseTimeMs: 4000}, now)
	r.ApplySession(SessionSummary{Correct: 5, Total: 10, AverageResponseTimeMs: 6000}, now)
	if r.AverageResponseTimeMs != 5000 {
		t.Errorf("AverageResponseTimeMs = %f, want 5000", r.AverageResponseTimeMs)
	}
}

func TestApplySession_ConceptDrift(t *testing.T) {
	r := NewRecord("u1", "money")
	outcome := func(name string, correct bool) ConceptOutcome {
		return ConceptOutcome{Name: name, Correct: correct}
	}

	r.ApplySession(SessionSummary{
		Correct: 1, Total: 2,
		Concepts: []ConceptOutcome{outcome("coins", true), outcome("change", false)},
	}, now)

	if len(r.Strengths) != 1 || r.Strengths[0].AccuracyPct != 70 {
		t.Fatalf("Strengths = %+v, want one entry seeded at 70", r.Strengths)
	}
	if len(r.WeakAreas) != 1 || r.WeakAreas[0].AccuracyPct != 30 || r.WeakAreas[0].Attempts != 1 {
		t.Fatalf("WeakAreas = %+v, want one entry seeded at 30 with 1 attempt", r.WeakAreas)
	}

	r.ApplySession(SessionSummary{
		Correct: 1, Total: 2,
		Concepts: []ConceptOutcome{outcome("coins", true), outcome("change", false)},
	}, now)

	if r.Strengths[0].AccuracyPct != 75 {
		t.Errorf("strength accuracy = %d, want 75 after drift", r.Strengths[0].AccuracyPct)
	}
	if r.WeakAreas[0].AccuracyPct != 25 || r.WeakAreas[0].Attempts != 2 {
		t.Errorf("weak area = %+v, want accuracy 25 attempts 2", r.WeakAreas[0])
	}
}

func TestApplySession_WeakAreasSortedWeakestFirst(t *testing.T) {
	r := NewRecord("u1", "time")
	r.WeakAreas = []ConceptStat{
		{Concept: "half-hours", AccuracyPct: 40, Attempts: 2},
		{Concept: "quarter-hours", AccuracyPct: 10, Attempts: 5},
	}
	r.ApplySession(SessionSummary{Correct: 0, Total: 1,
		Concepts: []ConceptOutcome{{Name: "reading-clocks", Correct: false}}}, now)

	if r.WeakAreas[0].Concept != "quarter-hours" {
		t.Errorf("weakest first = %s, want quarter-hours", r.WeakAreas[0].Concept)
	}
	got := r.WeakConcepts(2)
	if len(got) != 2 || got[0] != "quarter-hours" || got[1] != "reading-clocks" {
		t.Errorf("WeakConcepts(2) = %v, want [quarter-hours reading-clocks]", got)
	}
}

func TestApplySession_DifficultyOnlyWhenValid(t *testing.T) {
	r := NewRecord("u1", "geometry")
	r.ApplySession(SessionSummary{Correct: 1, Total: 1, Difficulty: difficulty.Medium}, now)
	if r.CurrentDifficulty != difficulty.Medium {
		t.Errorf("CurrentDifficulty = %s, want medium", r.CurrentDifficulty)
	}
	r.ApplySession(SessionSummary{Correct: 1, Total: 1}, now)
	if r.CurrentDifficulty != difficulty.Medium {
		t.Errorf("CurrentDifficulty = %s, want medium preserved when absent", r.CurrentDifficulty)
	}
}
