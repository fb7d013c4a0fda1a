package telemetry

import (
	"testing"
	"time"
)

var base = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func at(offsetMs int64) time.Time {
	return base.Add(time.Duration(offsetMs) * time.Millisecond)
}

func ev(t EventType, offsetMs int64) Event {
	return Event{
		UserID:     "u1",
		SessionID:  "s1",
		ModuleName: "addition",
		QuestionID: "q1",
		Type:       t,
		Timestamp:  at(offsetMs),
	}
}

func answerEv(offsetMs int64, reactionMs int64, correct bool) Event {
	e := ev(TypeAnswerSelected, offsetMs)
	e.Payload.ReactionTime = &reactionMs
	e.Payload.IsCorrect = &correct
	return e
}

func hoverEv(t EventType, offsetMs int64, choice int, durationMs int64) Event {
	e := ev(t, offsetMs)
	e.Payload.ChoiceIndex = &choice
	if durationMs > 0 {
		e.Payload.HoverDuration = &durationMs
	}
	return e
}

func idleEv(offsetMs int64, durationMs int64) Event {
	e := ev(TypeIdleDetected, offsetMs)
	e.Payload.Duration = &durationMs
	return e
}

func TestAggregate_Empty(t *testing.T) {
	m, skipped := Aggregate(nil)
	if m != nil {
		t.Fatalf("Aggregate(nil) = %+v, want nil sentinel", m)
	}
	if skipped != 0 {
		t.Errorf("skipped = %d, want 0", skipped)
	}
}

func TestAggregate_SingleEvent(t *testing.T) {
	m, _ := Aggregate([]Event{ev(TypeMouseMove, 0)})
	if m == nil {
		t.Fatal("expected metrics for one event")
	}
	if m.TotalEvents != 1 {
		t.Errorf("TotalEvents = %d, want 1", m.TotalEvents)
	}
	if m.TotalDurationMs != 0 {
		t.Errorf("TotalDurationMs = %d, want 0 for a single event", m.TotalDurationMs)
	}
}

func TestAggregate_ReactionTimes(t *testing.T) {
	events := []Event{
		ev(TypeQuestionDisplayed, 0),
		answerEv(1500, 1500, true), // rapid
		ev(TypeQuestionDisplayed, 2000),
		answerEv(11000, 9000, false), // hesitant
		ev(TypeQuestionDisplayed, 12000),
		answerEv(16000, 4000, true), // neither
	}
	m, skipped := Aggregate(events)
	if skipped != 0 {
		t.Fatalf("skipped = %d, want 0", skipped)
	}
	if m.RapidResponseCount != 1 {
		t.Errorf("RapidResponseCount = %d, want 1", m.RapidResponseCount)
	}
	if m.HesitationCount != 1 {
		t.Errorf("HesitationCount = %d, want 1", m.HesitationCount)
	}
	// (1500 + 9000 + 4000) / 3
	want := (1500.0 + 9000.0 + 4000.0) / 3.0
	if m.AverageReactionTimeMs != want {
		t.Errorf("AverageReactionTimeMs = %f, want %f", m.AverageReactionTimeMs, want)
	}
}

func TestAggregate_AnswerWithoutQuestionIgnored(t *testing.T) {
	m, _ := Aggregate([]Event{answerEv(100, 100, true)})
	if m.AverageReactionTimeMs != 0 {
		t.Errorf("AverageReactionTimeMs = %f, want 0 without a displayed question", m.AverageReactionTimeMs)
	}
	if m.RapidResponseCount != 0 {
		t.Errorf("RapidResponseCount = %d, want 0", m.RapidResponseCount)
	}
}

func TestAggregate_HoverPatterns(t *testing.T) {
	events := []Event{
		hoverEv(TypeChoiceHoverStart, 0, 2, 0),
		hoverEv(TypeChoiceHoverEnd, 400, 2, 0),
		hoverEv(TypeChoiceHoverStart, 500, 2, 0),
		hoverEv(TypeChoiceHoverEnd, 1100, 2, 0),
		hoverEv(TypeChoiceHoverStart, 1200, 3, 0), // unmatched open, discarded
	}
	m, _ := Aggregate(events)
	p, ok := m.HoverPatterns[2]
	if !ok {
		t.Fatal("expected hover pattern for choice 2")
	}
	if p.HoverCount != 2 {
		t.Errorf("HoverCount = %d, want 2", p.HoverCount)
	}
	// (400 + 600) / 2
	if p.AverageHoverDurationMs != 500 {
		t.Errorf("AverageHoverDurationMs = %f, want 500", p.AverageHoverDurationMs)
	}
	if _, ok := m.HoverPatterns[3]; ok {
		t.Error("unmatched hover open must not produce a pattern")
	}
}

func TestAggregate_SkipsMalformed(t *testing.T) {
	badType := ev("teleport", 0)
	badAnswer := ev(TypeAnswerSelected, 100) // missing reactionTime/isCorrect
	badHover := ev(TypeChoiceHoverStart, 200) // missing choiceIndex
	events := []Event{badType, badAnswer, badHover, ev(TypeMouseMove, 300), idleEv(400, 5000)}

	m, skipped := Aggregate(events)
	if skipped != 3 {
		t.Errorf("skipped = %d, want 3", skipped)
	}
	if m.TotalEvents != 2 {
		t.Errorf("TotalEvents = %d, want 2", m.TotalEvents)
	}
	if m.IdleCount != 1 {
		t.Errorf("IdleCount = %d, want 1", m.IdleCount)
	}
}

func TestAggregate_AllMalformed(t *testing.T) {
	m, skipped := Aggregate([]Event{ev("warp", 0), ev("blink", 10)})
	if m != nil {
		t.Errorf("expected nil sentinel when every record is malformed, got %+v", m)
	}
	if skipped != 2 {
		t.Errorf("skipped = %d, want 2", skipped)
	}
}

func TestAggregate_TotalDuration(t *testing.T) {
	events := []Event{
		ev(TypeMouseMove, 0),
		ev(TypeMouseMove, 2500),
		ev(TypeKeyDown, 9000),
	}
	m, _ := Aggregate(events)
	if m.TotalDurationMs != 9000 {
		t.Errorf("TotalDurationMs = %d, want 9000", m.TotalDurationMs)
	}
	if m.MouseMovementCount != 2 || m.KeyboardInteractionCount != 1 {
		t.Errorf("counts = %d mouse / %d keyboard, want 2/1",
			m.MouseMovementCount, m.KeyboardInteractionCount)
	}
}
