// Package behavior derives bounded behavioral signals (engagement,
// hesitation, confidence) and a learning-mode preference from raw
// interaction events. All scores are deterministic functions of their
// input and always land in [0,1].
package behavior

import "github.com/abhisek/mathpal/internal/telemetry"

const (
	// LongHoverMs is the hover duration above which a choice hover
	// counts as a hesitation indicator.
	LongHoverMs = 3000

	// SlowReactionMs is the reaction time above which any event counts
	// as a hesitation indicator.
	SlowReactionMs = 10000

	// FastAnswerMs is the reaction time below which an answer counts
	// toward confidence.
	FastAnswerMs = 5000

	// NeutralConfidence is the prior used when no decision events exist.
	// Absence of data must not read as "no confidence".
	NeutralConfidence = 0.5
)

// LearningMode is the inferred preferred learning channel.
type LearningMode string

const (
	ModeVisual     LearningMode = "visual"
	ModeAuditory   LearningMode = "auditory"
	ModeMultimodal LearningMode = "multimodal"
)

// Scores holds the three behavioral signals, each in [0,1].
type Scores struct {
	Engagement float64 `json:"engagementScore"`
	Hesitation float64 `json:"hesitationScore"`
	Confidence float64 `json:"confidenceScore"`
}

// Profile is the full behavioral read on a learner's recent interaction.
type Profile struct {
	Scores
	PreferredLearningMode  LearningMode `json:"preferredLearningMode"`
	NeedsSupport           bool         `json:"needsSupport"`
	RecommendedScaffolding []Scaffold   `json:"recommendedScaffolding"`
}

// Score computes the behavioral profile for a raw event sequence.
// Malformed records are skipped and counted in the second return value.
// An empty (or fully malformed) sequence yields the documented neutral
// profile: zero engagement and hesitation, confidence 0.5, visual mode.
func Score(events []telemetry.Event) (Profile, int) {
	wellFormed := events[:0:0]
	skipped := 0
	for i := range events {
		if events[i].WellFormed() {
			wellFormed = append(wellFormed, events[i])
		} else {
			skipped++
		}
	}

	if len(wellFormed) == 0 {
		p := Profile{
			Scores:                Scores{Confidence: NeutralConfidence},
			PreferredLearningMode: ModeVisual,
		}
		p.RecommendedScaffolding = RecommendScaffolding(p.Hesitation, p.Confidence)
		return p, skipped
	}

	s := Scores{
		Engagement: engagementScore(wellFormed),
		Hesitation: hesitationScore(wellFormed),
		Confidence: confidenceScore(wellFormed),
	}

	p := Profile{
		Scores:                 s,
		PreferredLearningMode:  learningMode(wellFormed),
		NeedsSupport:           s.Hesitation > 0.6 || s.Confidence < 0.4,
		RecommendedScaffolding: RecommendScaffolding(s.Hesitation, s.Confidence),
	}
	return p, skipped
}

// engagementScore rewards both volume and variety of interaction,
// capped at 1: 0.5·(distinctTypes/10) + 0.5·(count/100).
func engagementScore(events []telemetry.Event) float64 {
	types := make(map[telemetry.EventType]struct{})
	for i := range events {
		types[events[i].Type] = struct{}{}
	}
	score := 0.5*(float64(len(types))/10.0) + 0.5*(float64(len(events))/100.0)
	return clamp(score, 0, 1)
}

// hesitationScore weighs indecision indicators against total activity:
// idle periods weigh 2, long choice hovers 1, very slow reactions 1.5.
func hesitationScore(events []telemetry.Event) float64 {
	indicators := 0.0
	for i := range events {
		ev := &events[i]
		if ev.Type == telemetry.TypeIdleDetected {
			indicators += 2
		}
		if ev.Type == telemetry.TypeChoiceHoverStart {
			if h, ok := ev.Hover(); ok && h.HoverDurationMs > LongHoverMs {
				indicators += 1
			}
		}
		if ev.Payload.ReactionTime != nil && *ev.Payload.ReactionTime > SlowReactionMs {
			indicators += 1.5
		}
	}
	return clamp(indicators/float64(len(events)), 0, 1)
}

// confidenceScore looks only at decision points (answers): a fast answer
// weighs 1, a correct one another 0.5, normalized by count·1.5. The
// explicit clamp matters; a single fast correct answer reaches 1.0
// exactly, and rounding must never push any input past the bound.
func confidenceScore(events []telemetry.Event) float64 {
	sum := 0.0
	decisions := 0
	for i := range events {
		a, ok := events[i].Answer()
		if !ok {
			continue
		}
		decisions++
		if a.ReactionTimeMs < FastAnswerMs {
			sum += 1
		}
		if a.Correct {
			sum += 0.5
		}
	}
	if decisions == 0 {
		return NeutralConfidence
	}
	return clamp(sum/(float64(decisions)*1.5), 0, 1)
}

// learningMode compares mouse-class and keyboard-class event counts.
func learningMode(events []telemetry.Event) LearningMode {
	mouse, keyboard := 0, 0
	for i := range events {
		if events[i].Type.IsMouse() {
			mouse++
		}
		if events[i].Type.IsKeyboard() {
			keyboard++
		}
	}
	switch {
	case float64(mouse) > float64(keyboard)*1.5:
		return ModeVisual
	case float64(keyboard) > float64(mouse)*1.5:
		return ModeAuditory
	default:
		return ModeMultimodal
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
