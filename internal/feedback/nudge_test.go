package feedback

import (
	"testing"
	"time"

	"github.com/abhisek/mathpal/internal/telemetry"
)

var nudgeNow = time.Date(2026, 3, 1, 9, 0, 30, 0, time.UTC)

func tev(typ telemetry.EventType) telemetry.Event {
	return telemetry.Event{
		UserID:    "u1",
		SessionID: "s1",
		Type:      typ,
		Timestamp: nudgeNow.Add(-5 * time.Second),
	}
}

func idle(durationMs int64) telemetry.Event {
	e := tev(telemetry.TypeIdleDetected)
	e.Payload.Duration = &durationMs
	return e
}

func hover(choice int) telemetry.Event {
	e := tev(telemetry.TypeChoiceHoverStart)
	e.Payload.ChoiceIndex = &choice
	return e
}

func question(displayedAgo time.Duration) telemetry.Event {
	e := tev(telemetry.TypeQuestionDisplayed)
	ms := nudgeNow.Add(-displayedAgo).UnixMilli()
	e.Payload.Timestamp = &ms
	return e
}

func TestDecideNudge_Empty(t *testing.T) {
	n := DecideNudge(nil, nudgeNow)
	if n.RecommendedAction != ActionContinue {
		t.Errorf("action = %s, want continue", n.RecommendedAction)
	}
	if n.ShouldProvideHint || n.ShouldEncourage || n.ShouldHighlightVisual || n.ShouldPlayAudioCue || n.ShouldSimplify {
		t.Error("empty input should set no flags")
	}
	if n.Message != "" {
		t.Errorf("message = %q, want empty", n.Message)
	}
}

func TestDecideNudge_LongIdle(t *testing.T) {
	n := DecideNudge([]telemetry.Event{idle(6000), idle(5000)}, nudgeNow)
	if !n.ShouldEncourage || !n.ShouldPlayAudioCue {
		t.Error("11s cumulative idle should encourage with audio cue")
	}
	if n.RecommendedAction != ActionPrompt {
		t.Errorf("action = %s, want prompt", n.RecommendedAction)
	}
	if n.Message != "Take your time! Try selecting an answer." {
		t.Errorf("unexpected message %q", n.Message)
	}

	// Exactly at the threshold is not over it.
	n = DecideNudge([]telemetry.Event{idle(10000)}, nudgeNow)
	if n.RecommendedAction != ActionContinue {
		t.Errorf("10s idle action = %s, want continue", n.RecommendedAction)
	}
}

func TestDecideNudge_RepeatedHover(t *testing.T) {
	events := []telemetry.Event{hover(2), hover(2), hover(2), hover(2), hover(1)}
	n := DecideNudge(events, nudgeNow)
	if !n.ShouldHighlightVisual {
		t.Error("4 hovers on one choice should highlight")
	}
	if n.RecommendedAction != ActionVisualCue {
		t.Errorf("action = %s, want visualCue", n.RecommendedAction)
	}

	// Hovers spread across choices don't count together.
	events = []telemetry.Event{hover(0), hover(1), hover(2), hover(3), hover(0)}
	n = DecideNudge(events, nudgeNow)
	if n.ShouldHighlightVisual {
		t.Error("scattered hovers should not highlight")
	}
}

func TestDecideNudge_StuckOnQuestion(t *testing.T) {
	n := DecideNudge([]telemetry.Event{question(16 * time.Second)}, nudgeNow)
	if !n.ShouldProvideHint {
		t.Error("16s since display should offer a hint")
	}
	if n.RecommendedAction != ActionHint {
		t.Errorf("action = %s, want hint", n.RecommendedAction)
	}
	if n.Message != "Would you like a hint?" {
		t.Errorf("unexpected message %q", n.Message)
	}

	n = DecideNudge([]telemetry.Event{question(5 * time.Second)}, nudgeNow)
	if n.ShouldProvideHint {
		t.Error("5s since display should not offer a hint")
	}
}

func TestDecideNudge_LaterRuleOverwritesAction(t *testing.T) {
	events := []telemetry.Event{
		idle(11000),
		question(20 * time.Second),
	}
	n := DecideNudge(events, nudgeNow)
	if !n.ShouldEncourage || !n.ShouldProvideHint {
		t.Error("both flags should be set when both rules fire")
	}
	if n.RecommendedAction != ActionHint {
		t.Errorf("action = %s, want hint to win", n.RecommendedAction)
	}
	if n.Message != "Would you like a hint?" {
		t.Errorf("message = %q, want hint message to win", n.Message)
	}
}

func TestDecideNudge_QuestionWithoutClientTimestamp(t *testing.T) {
	// Without a payload timestamp the server receipt time is used.
	e := tev(telemetry.TypeQuestionDisplayed)
	e.Timestamp = nudgeNow.Add(-20 * time.Second)
	n := DecideNudge([]telemetry.Event{e}, nudgeNow)
	if !n.ShouldProvideHint {
		t.Error("server timestamp fallback should still trigger the hint rule")
	}
}
