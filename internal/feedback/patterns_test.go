package feedback

import (
	"testing"

	"github.com/abhisek/mathpal/internal/telemetry"
)

func reaction(typ telemetry.EventType, reactionMs int64) telemetry.Event {
	e := tev(typ)
	e.Payload.ReactionTime = &reactionMs
	return e
}

func TestAnalyzePatterns_Empty(t *testing.T) {
	a := AnalyzePatterns(nil)
	if a.EngagementLevel != TendencyUnknown || a.HesitationTendency != TendencyUnknown {
		t.Errorf("got %s/%s, want unknown/unknown", a.EngagementLevel, a.HesitationTendency)
	}
	if a.PreferredInteractionMode != ModeUnknown {
		t.Errorf("mode = %s, want unknown", a.PreferredInteractionMode)
	}
	if len(a.EventTypeCounts) != 0 {
		t.Errorf("counts = %v, want empty", a.EventTypeCounts)
	}
}

func TestAnalyzePatterns_EngagementBuckets(t *testing.T) {
	mk := func(n int) []telemetry.Event {
		events := make([]telemetry.Event, n)
		for i := range events {
			events[i] = tev(telemetry.TypeMouseMove)
		}
		return events
	}
	tests := []struct {
		n    int
		want Tendency
	}{
		{50, TendencyLow},
		{100, TendencyLow},
		{101, TendencyMedium},
		{200, TendencyMedium},
		{201, TendencyHigh},
	}
	for _, tc := range tests {
		if got := AnalyzePatterns(mk(tc.n)).EngagementLevel; got != tc.want {
			t.Errorf("%d events: engagement = %s, want %s", tc.n, got, tc.want)
		}
	}
}

func TestAnalyzePatterns_HesitationTendency(t *testing.T) {
	hesitant := reaction(telemetry.TypeAnswerSelected, 9000)
	rapid := reaction(telemetry.TypeAnswerSelected, 1000)
	middling := reaction(telemetry.TypeAnswerSelected, 5000)

	tests := []struct {
		name   string
		events []telemetry.Event
		want   Tendency
	}{
		{"more slow answers", []telemetry.Event{hesitant, hesitant, rapid}, TendencyHigh},
		{"more rapid answers", []telemetry.Event{hesitant, rapid, rapid}, TendencyLow},
		{"balanced", []telemetry.Event{hesitant, rapid}, TendencyMedium},
		{"middling counts neither way", []telemetry.Event{middling, middling}, TendencyMedium},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := AnalyzePatterns(tc.events)
			if a.HesitationTendency != tc.want {
				t.Errorf("tendency = %s, want %s", a.HesitationTendency, tc.want)
			}
		})
	}
}

func TestAnalyzePatterns_InteractionModeAndCounts(t *testing.T) {
	events := []telemetry.Event{
		tev(telemetry.TypeMouseMove),
		tev(telemetry.TypeMouseMove),
		tev(telemetry.TypeMouseClick),
		tev(telemetry.TypeKeyDown),
		tev(telemetry.TypeQuestionDisplayed),
	}
	a := AnalyzePatterns(events)
	if a.PreferredInteractionMode != ModeMouse {
		t.Errorf("mode = %s, want mouse", a.PreferredInteractionMode)
	}
	if a.EventTypeCounts["mouse_move"] != 2 || a.EventTypeCounts["key_down"] != 1 {
		t.Errorf("unexpected counts %v", a.EventTypeCounts)
	}

	events = append(events, tev(telemetry.TypeKeyUp), tev(telemetry.TypeKeyDown), tev(telemetry.TypeKeyUp))
	if got := AnalyzePatterns(events).PreferredInteractionMode; got != ModeKeyboard {
		t.Errorf("mode = %s, want keyboard", got)
	}

	events = append(events, tev(telemetry.TypeMouseHover))
	if got := AnalyzePatterns(events).PreferredInteractionMode; got != ModeMixed {
		t.Errorf("mode = %s, want mixed", got)
	}
}
