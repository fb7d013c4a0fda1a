package trend

import (
	"testing"
	"time"
)

func conceptEntry(concept string, correct bool, responseMs int64, offsetMin int) LogEntry {
	return LogEntry{
		UserID:         "u1",
		ModuleName:     "addition",
		IsCorrect:      correct,
		ResponseTimeMs: responseMs,
		ConceptTags:    []string{concept},
		Timestamp:      time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC).Add(time.Duration(offsetMin) * time.Minute),
	}
}

func TestAssessConcept_TooFewAttempts(t *testing.T) {
	logs := []LogEntry{
		conceptEntry("carrying", true, 3000, 0),
		conceptEntry("carrying", true, 3000, 1),
	}
	got := AssessConcept(logs, "carrying")
	if got.Mastered {
		t.Error("two attempts must not count as mastered")
	}
	if got.Confidence != "low" {
		t.Errorf("confidence = %q, want low", got.Confidence)
	}
	if got.Attempts != 2 {
		t.Errorf("attempts = %d, want 2", got.Attempts)
	}
}

func TestAssessConcept_IgnoresOtherTags(t *testing.T) {
	logs := []LogEntry{
		conceptEntry("carrying", true, 3000, 0),
		conceptEntry("borrowing", false, 3000, 1),
		conceptEntry("carrying", true, 3000, 2),
	}
	got := AssessConcept(logs, "carrying")
	if got.Attempts != 2 {
		t.Errorf("attempts = %d, want only the carrying entries", got.Attempts)
	}
}

func TestAssessConcept_Mastered(t *testing.T) {
	var logs []LogEntry
	for i := 0; i < 6; i++ {
		logs = append(logs, conceptEntry("carrying", true, 4000, i))
	}
	got := AssessConcept(logs, "carrying")
	if !got.Mastered {
		t.Error("6/6 correct should be mastered")
	}
	if got.AccuracyPct != 100 || got.Confidence != "high" {
		t.Errorf("accuracy = %d confidence = %q, want 100 high", got.AccuracyPct, got.Confidence)
	}
	if got.AvgResponseTimeMs != 4000 {
		t.Errorf("avgResponseTime = %v, want 4000", got.AvgResponseTimeMs)
	}
}

func TestAssessConcept_AccurateButTooFewForMastery(t *testing.T) {
	// 4 attempts clear the accuracy bar but not the attempt floor.
	var logs []LogEntry
	for i := 0; i < 4; i++ {
		logs = append(logs, conceptEntry("carrying", true, 4000, i))
	}
	got := AssessConcept(logs, "carrying")
	if got.Mastered {
		t.Error("mastery requires at least 5 attempts")
	}
	if got.Confidence != "high" {
		t.Errorf("confidence = %q, want high at 100%% accuracy", got.Confidence)
	}
}

func TestAssessConcept_MediumConfidence(t *testing.T) {
	logs := []LogEntry{
		conceptEntry("carrying", true, 4000, 0),
		conceptEntry("carrying", true, 4000, 1),
		conceptEntry("carrying", true, 4000, 2),
		conceptEntry("carrying", false, 4000, 3),
	}
	got := AssessConcept(logs, "carrying")
	if got.Mastered {
		t.Error("75% should not be mastered")
	}
	if got.AccuracyPct != 75 || got.Confidence != "medium" {
		t.Errorf("accuracy = %d confidence = %q, want 75 medium", got.AccuracyPct, got.Confidence)
	}
}

func TestAssessConcept_WindowKeepsMostRecent(t *testing.T) {
	// 25 attempts: the first 5 wrong, the last 20 correct. Only the
	// trailing window counts, so the early misses drop out.
	var logs []LogEntry
	for i := 0; i < 5; i++ {
		logs = append(logs, conceptEntry("carrying", false, 4000, i))
	}
	for i := 5; i < 25; i++ {
		logs = append(logs, conceptEntry("carrying", true, 4000, i))
	}
	got := AssessConcept(logs, "carrying")
	if got.Attempts != 20 {
		t.Errorf("attempts = %d, want window of 20", got.Attempts)
	}
	if got.AccuracyPct != 100 || !got.Mastered {
		t.Errorf("accuracy = %d mastered = %v, want 100 true", got.AccuracyPct, got.Mastered)
	}
}

func TestAssessConcept_UnknownConcept(t *testing.T) {
	got := AssessConcept([]LogEntry{conceptEntry("carrying", true, 3000, 0)}, "fractions")
	if got.Attempts != 0 || got.Mastered || got.Confidence != "low" {
		t.Errorf("unexpected assessment for unseen concept: %+v", got)
	}
}
