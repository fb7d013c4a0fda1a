package behavior

import (
	"math"
	"testing"
	"time"

	"github.com/abhisek/mathpal/internal/telemetry"
)

const epsilon = 0.001

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func ev(t telemetry.EventType, offsetMs int64) telemetry.Event {
	return telemetry.Event{
		UserID:    "u1",
		SessionID: "s1",
		Type:      t,
		Timestamp: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC).Add(time.Duration(offsetMs) * time.Millisecond),
	}
}

func answerEv(reactionMs int64, correct bool) telemetry.Event {
	e := ev(telemetry.TypeAnswerSelected, reactionMs)
	e.Payload.ReactionTime = &reactionMs
	e.Payload.IsCorrect = &correct
	return e
}

func hoverStartEv(choice int, durationMs int64) telemetry.Event {
	e := ev(telemetry.TypeChoiceHoverStart, 0)
	e.Payload.ChoiceIndex = &choice
	e.Payload.HoverDuration = &durationMs
	return e
}

func hoverEndEv(choice int) telemetry.Event {
	e := ev(telemetry.TypeChoiceHoverEnd, 0)
	e.Payload.ChoiceIndex = &choice
	return e
}

func idleEv(durationMs int64) telemetry.Event {
	e := ev(telemetry.TypeIdleDetected, 0)
	e.Payload.Duration = &durationMs
	return e
}

func TestScore_EmptyInput(t *testing.T) {
	p, skipped := Score(nil)
	if skipped != 0 {
		t.Errorf("skipped = %d, want 0", skipped)
	}
	if p.Engagement != 0 || p.Hesitation != 0 {
		t.Errorf("engagement/hesitation = %f/%f, want 0/0", p.Engagement, p.Hesitation)
	}
	if !almostEqual(p.Confidence, NeutralConfidence) {
		t.Errorf("Confidence = %f, want neutral %f", p.Confidence, NeutralConfidence)
	}
	if p.PreferredLearningMode != ModeVisual {
		t.Errorf("mode = %s, want default visual", p.PreferredLearningMode)
	}
	if p.NeedsSupport {
		t.Error("NeedsSupport = true, want false for no data")
	}
}

func TestScore_RangesAlwaysBounded(t *testing.T) {
	// A pile of heavy hesitation and fast perfect answers tries to push
	// scores past their bounds in both directions.
	var events []telemetry.Event
	for range 50 {
		events = append(events, idleEv(20000))
	}
	events = append(events, answerEv(100, true)) // single fast+correct answer

	p, _ := Score(events)
	for name, v := range map[string]float64{
		"engagement": p.Engagement,
		"hesitation": p.Hesitation,
		"confidence": p.Confidence,
	} {
		if math.IsNaN(v) || v < 0 || v > 1 {
			t.Errorf("%s = %f, want within [0,1]", name, v)
		}
	}
}

func TestScore_ConfidenceSingleFastCorrect(t *testing.T) {
	// 1 (fast) + 0.5 (correct) over 1·1.5 is exactly 1.0; the clamp must
	// hold it there rather than trusting the arithmetic.
	p, _ := Score([]telemetry.Event{answerEv(1000, true)})
	if !almostEqual(p.Confidence, 1.0) {
		t.Errorf("Confidence = %f, want 1.0", p.Confidence)
	}
}

func TestScore_ConfidenceSlowWrong(t *testing.T) {
	p, _ := Score([]telemetry.Event{answerEv(9000, false)})
	if !almostEqual(p.Confidence, 0) {
		t.Errorf("Confidence = %f, want 0", p.Confidence)
	}
}

func TestScore_HesitationWeights(t *testing.T) {
	// idle(2) + long hover(1) + slow reaction answer(1.5, plus nothing
	// for confidence weighting here) over 4 events.
	events := []telemetry.Event{
		idleEv(5000),
		hoverStartEv(1, 4000),
		answerEv(12000, false),
	}
	for range 6 {
		events = append(events, ev(telemetry.TypeMouseMove, 10))
	}
	p, _ := Score(events)
	want := (2.0 + 1.0 + 1.5) / 9.0
	if !almostEqual(p.Hesitation, want) {
		t.Errorf("Hesitation = %f, want %f", p.Hesitation, want)
	}
}

func TestScore_LearningMode(t *testing.T) {
	tests := []struct {
		name     string
		mouse    int
		keyboard int
		want     LearningMode
	}{
		{"mouse dominant", 4, 2, ModeVisual},
		{"keyboard dominant", 2, 4, ModeAuditory},
		{"balanced", 3, 3, ModeMultimodal},
		{"neither", 0, 0, ModeMultimodal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var events []telemetry.Event
			for range tt.mouse {
				events = append(events, ev(telemetry.TypeMouseClick, 0))
			}
			for range tt.keyboard {
				events = append(events, ev(telemetry.TypeKeyDown, 0))
			}
			if len(events) == 0 {
				events = append(events, ev(telemetry.TypeVisualFocus, 0))
			}
			p, _ := Score(events)
			if p.PreferredLearningMode != tt.want {
				t.Errorf("mode = %s, want %s", p.PreferredLearningMode, tt.want)
			}
		})
	}
}

func TestScore_RepeatedLongHovers(t *testing.T) {
	// Four 4s hover cycles on one choice: 4 weighted indicators over 8
	// events puts hesitation at 0.5, which must surface visual hints.
	var events []telemetry.Event
	for range 4 {
		events = append(events, hoverStartEv(1, 4000), hoverEndEv(1))
	}
	p, _ := Score(events)
	if !almostEqual(p.Hesitation, 0.5) {
		t.Errorf("Hesitation = %f, want 0.5", p.Hesitation)
	}
	if len(p.RecommendedScaffolding) == 0 || p.RecommendedScaffolding[0] != ScaffoldVisualHints {
		t.Errorf("scaffolding = %v, want visual-hints first", p.RecommendedScaffolding)
	}
}

func TestScore_SkipsMalformed(t *testing.T) {
	events := []telemetry.Event{
		ev("unknown_kind", 0),
		ev(telemetry.TypeAnswerSelected, 1), // no payload
		answerEv(1000, true),
	}
	p, skipped := Score(events)
	if skipped != 2 {
		t.Errorf("skipped = %d, want 2", skipped)
	}
	if !almostEqual(p.Confidence, 1.0) {
		t.Errorf("Confidence = %f, want 1.0 from the surviving answer", p.Confidence)
	}
}

func TestRecommendScaffolding_Ladder(t *testing.T) {
	tests := []struct {
		name       string
		hesitation float64
		confidence float64
		first      Scaffold
		count      int
	}{
		{"heavy hesitation", 0.8, 0.9, ScaffoldStepByStepGuidance, 3},
		{"very low confidence", 0.1, 0.2, ScaffoldSimplifiedProblems, 3},
		{"mild hesitation", 0.55, 0.9, ScaffoldVisualHints, 2},
		{"boundary hesitation", 0.5, 0.9, ScaffoldVisualHints, 2},
		{"mild low confidence", 0.1, 0.45, ScaffoldVisualHints, 2},
		{"comfortable", 0.1, 0.9, ScaffoldMinimalGuidance, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RecommendScaffolding(tt.hesitation, tt.confidence)
			if len(got) != tt.count || got[0] != tt.first {
				t.Errorf("RecommendScaffolding(%f, %f) = %v, want %d entries starting %s",
					tt.hesitation, tt.confidence, got, tt.count, tt.first)
			}
		})
	}
}
