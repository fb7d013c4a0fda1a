package feedback

import (
	"time"

	"github.com/abhisek/mathpal/internal/telemetry"
)

const (
	// nudgeIdleMs triggers an encouragement prompt.
	nudgeIdleMs int64 = 10000
	// nudgeHoverRepeats triggers a visual cue when exceeded.
	nudgeHoverRepeats = 3
	// nudgeStuckMs since the last displayed question triggers a hint.
	nudgeStuckMs int64 = 15000
)

// NudgeAction names the single action the client should take next.
type NudgeAction string

const (
	ActionContinue  NudgeAction = "continue"
	ActionPrompt    NudgeAction = "prompt"
	ActionVisualCue NudgeAction = "visualCue"
	ActionHint      NudgeAction = "hint"
)

// Nudge is the realtime in-question intervention decision. It is
// computed purely from the events the client sends along; nothing is
// read from or written to storage.
type Nudge struct {
	ShouldProvideHint     bool        `json:"shouldProvideHint"`
	ShouldSimplify        bool        `json:"shouldSimplify"`
	ShouldEncourage       bool        `json:"shouldEncourage"`
	ShouldHighlightVisual bool        `json:"shouldHighlightVisual"`
	ShouldPlayAudioCue    bool        `json:"shouldPlayAudioCue"`
	RecommendedAction     NudgeAction `json:"recommendedAction"`
	Message               string      `json:"message,omitempty"`
}

// DecideNudge evaluates the recent in-question events against the
// three intervention rules. Rules are checked in fixed order and a
// later match overwrites the action and message of an earlier one, so
// a learner who is both idle and stuck is offered the hint. An empty
// slice means no intervention.
func DecideNudge(recent []telemetry.Event, now time.Time) Nudge {
	n := Nudge{RecommendedAction: ActionContinue}
	if len(recent) == 0 {
		return n
	}

	var idleMs int64
	hoverRepeats := map[int]int{}
	var lastQuestionAt time.Time

	for _, ev := range recent {
		switch ev.Type {
		case telemetry.TypeQuestionDisplayed:
			lastQuestionAt = ev.DisplayedAt()
		case telemetry.TypeIdleDetected:
			if idle, ok := ev.Idle(); ok {
				idleMs += idle.DurationMs
			}
		case telemetry.TypeChoiceHoverStart:
			if ev.Payload.ChoiceIndex != nil {
				hoverRepeats[*ev.Payload.ChoiceIndex]++
			}
		}
	}

	if idleMs > nudgeIdleMs {
		n.ShouldEncourage = true
		n.ShouldPlayAudioCue = true
		n.RecommendedAction = ActionPrompt
		n.Message = "Take your time! Try selecting an answer."
	}

	maxHovers := 0
	for _, count := range hoverRepeats {
		if count > maxHovers {
			maxHovers = count
		}
	}
	if maxHovers > nudgeHoverRepeats {
		n.ShouldHighlightVisual = true
		n.RecommendedAction = ActionVisualCue
		n.Message = "Let me highlight the important parts for you."
	}

	if !lastQuestionAt.IsZero() && now.Sub(lastQuestionAt) > time.Duration(nudgeStuckMs)*time.Millisecond {
		n.ShouldProvideHint = true
		n.RecommendedAction = ActionHint
		n.Message = "Would you like a hint?"
	}

	return n
}
