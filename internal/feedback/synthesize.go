package feedback

import (
	"github.com/abhisek/mathpal/internal/behavior"
	"github.com/abhisek/mathpal/internal/trend"
)

// SignalLevel buckets a [0,1] score into three coarse grades.
type SignalLevel string

const (
	LevelHigh   SignalLevel = "high"
	LevelMedium SignalLevel = "medium"
	LevelLow    SignalLevel = "low"
)

// HintType names the presentation style for hints in the next session.
type HintType string

const (
	HintVisualDiagram HintType = "visual-diagram"
	HintStepByStep    HintType = "step-by-step"
	HintText          HintType = "text-hint"
)

// PaceAdjustment tells the client whether to speed up or slow down
// question delivery.
type PaceAdjustment string

const (
	PaceSlower   PaceAdjustment = "slower"
	PaceFaster   PaceAdjustment = "faster"
	PaceMaintain PaceAdjustment = "maintain"
)

// Adaptive is the combined feedback object: the baseline
// recommendations enriched with behavioral and trend insight.
type Adaptive struct {
	Recommendations
	PerformanceTrend    trend.Trend    `json:"performanceTrend"`
	EngagementLevel     SignalLevel    `json:"engagementLevel"`
	ConfidenceLevel     SignalLevel    `json:"confidenceLevel"`
	NeedsEncouragement  bool           `json:"needsEncouragement"`
	NeedsVisualSupport  bool           `json:"needsVisualSupport"`
	RecommendedHintType HintType       `json:"recommendedHintType"`
	PaceAdjustment      PaceAdjustment `json:"paceAdjustment"`
}

// Synthesize merges the three independent signal sources into one
// adaptive feedback object. It is a pure combination step: each input
// already carries its own fallback semantics, so Synthesize never
// needs one of its own.
func Synthesize(rec Recommendations, profile behavior.Profile, tr trend.Result) Adaptive {
	return Adaptive{
		Recommendations:     rec,
		PerformanceTrend:    tr.Trend,
		EngagementLevel:     bucket(profile.Engagement),
		ConfidenceLevel:     bucket(profile.Confidence),
		NeedsEncouragement:  profile.Hesitation > 0.7,
		NeedsVisualSupport:  profile.PreferredLearningMode == behavior.ModeVisual,
		RecommendedHintType: hintType(profile),
		PaceAdjustment:      pace(profile, tr),
	}
}

func bucket(score float64) SignalLevel {
	switch {
	case score > 0.7:
		return LevelHigh
	case score > 0.4:
		return LevelMedium
	default:
		return LevelLow
	}
}

func hintType(p behavior.Profile) HintType {
	if p.PreferredLearningMode == behavior.ModeVisual {
		return HintVisualDiagram
	}
	if p.Hesitation > 0.6 {
		return HintStepByStep
	}
	return HintText
}

func pace(p behavior.Profile, tr trend.Result) PaceAdjustment {
	if p.Hesitation > 0.7 {
		return PaceSlower
	}
	if tr.Trend == trend.Improving && p.Confidence > 0.7 {
		return PaceFaster
	}
	return PaceMaintain
}
