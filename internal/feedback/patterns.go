package feedback

import "github.com/abhisek/mathpal/internal/telemetry"

const (
	// patternRapidMs and patternHesitantMs classify reaction times when
	// summarizing historical interaction patterns.
	patternRapidMs    int64 = 2000
	patternHesitantMs int64 = 8000

	// Event-count thresholds for the coarse engagement grade.
	highEngagementEvents   = 200
	mediumEngagementEvents = 100
)

// Tendency grades a pattern with "unknown" reserved for no data.
type Tendency string

const (
	TendencyHigh    Tendency = "high"
	TendencyMedium  Tendency = "medium"
	TendencyLow     Tendency = "low"
	TendencyUnknown Tendency = "unknown"
)

// InteractionMode names the dominant input device over a history.
type InteractionMode string

const (
	ModeMouse    InteractionMode = "mouse"
	ModeKeyboard InteractionMode = "keyboard"
	ModeMixed    InteractionMode = "mixed"
	ModeUnknown  InteractionMode = "unknown"
)

// PatternAnalysis is the coarse summary of a learner's interaction
// history, attached to pattern queries alongside the raw events.
type PatternAnalysis struct {
	EngagementLevel          Tendency           `json:"engagementLevel"`
	HesitationTendency       Tendency           `json:"hesitationTendency"`
	PreferredInteractionMode InteractionMode    `json:"preferredInteractionMode"`
	EventTypeCounts          map[string]int     `json:"eventTypeCounts"`
	HesitationCount          int                `json:"hesitationCount"`
	RapidResponseCount       int                `json:"rapidResponseCount"`
}

// AnalyzePatterns summarizes a slice of historical events. Unlike the
// behavioral scores this works on raw counts, so it stays meaningful
// over long histories where normalized scores would saturate.
func AnalyzePatterns(events []telemetry.Event) PatternAnalysis {
	if len(events) == 0 {
		return PatternAnalysis{
			EngagementLevel:          TendencyUnknown,
			HesitationTendency:       TendencyUnknown,
			PreferredInteractionMode: ModeUnknown,
			EventTypeCounts:          map[string]int{},
		}
	}

	a := PatternAnalysis{EventTypeCounts: map[string]int{}}
	mouse, keyboard := 0, 0

	for i := range events {
		ev := &events[i]
		a.EventTypeCounts[string(ev.Type)]++
		if ev.Type.IsMouse() {
			mouse++
		}
		if ev.Type.IsKeyboard() {
			keyboard++
		}
		if rt := ev.Payload.ReactionTime; rt != nil {
			if *rt > patternHesitantMs {
				a.HesitationCount++
			} else if *rt < patternRapidMs {
				a.RapidResponseCount++
			}
		}
	}

	switch {
	case len(events) > highEngagementEvents:
		a.EngagementLevel = TendencyHigh
	case len(events) > mediumEngagementEvents:
		a.EngagementLevel = TendencyMedium
	default:
		a.EngagementLevel = TendencyLow
	}

	switch {
	case a.HesitationCount > a.RapidResponseCount:
		a.HesitationTendency = TendencyHigh
	case a.HesitationCount < a.RapidResponseCount:
		a.HesitationTendency = TendencyLow
	default:
		a.HesitationTendency = TendencyMedium
	}

	switch {
	case mouse > keyboard:
		a.PreferredInteractionMode = ModeMouse
	case keyboard > mouse:
		a.PreferredInteractionMode = ModeKeyboard
	default:
		a.PreferredInteractionMode = ModeMixed
	}

	return a
}
