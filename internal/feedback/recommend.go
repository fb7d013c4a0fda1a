// Package feedback turns the independent engine signals (behavioral
// profile, performance trend, progress record) into the recommendation
// objects returned to callers. Every function here is total: missing
// data produces the documented conservative defaults, never an error.
package feedback

import (
	"github.com/abhisek/mathpal/internal/difficulty"
	"github.com/abhisek/mathpal/internal/mastery"
)

const (
	// hintsEnabledBelowPct and guidedModeBelowPct gate the pedagogical
	// supports on cumulative accuracy.
	hintsEnabledBelowPct = 70
	guidedModeBelowPct   = 60

	// focusAreaCap limits how many weak concepts a recommendation names.
	focusAreaCap = 3
	// paramFocusCap limits the weak areas in session parameters.
	paramFocusCap = 2

	// longResponseMs: beyond this average, no time limit is imposed.
	longResponseMs = 10000
)

// EncouragementLevel grades how much cheering a learner needs.
type EncouragementLevel string

const (
	EncourageHigh     EncouragementLevel = "high"
	EncourageMedium   EncouragementLevel = "medium"
	EncourageStandard EncouragementLevel = "standard"
)

// Recommendations is the baseline per-learner recommendation set.
type Recommendations struct {
	Difficulty         difficulty.Level   `json:"difficulty"`
	HintsEnabled       bool               `json:"hintsEnabled"`
	GuidedMode         bool               `json:"guidedMode"`
	FocusAreas         []string           `json:"focusAreas"`
	EncouragementLevel EncouragementLevel `json:"encouragementLevel"`
}

// Recommend derives the baseline recommendations from a progress
// record. A nil record (new learner) gets the most conservative stance:
// easy, hints and guided mode on, high encouragement.
func Recommend(r *mastery.Record) Recommendations {
	if r == nil {
		return Recommendations{
			Difficulty:         difficulty.Easy,
			HintsEnabled:       true,
			GuidedMode:         true,
			FocusAreas:         []string{},
			EncouragementLevel: EncourageHigh,
		}
	}
	return Recommendations{
		Difficulty:         difficulty.Next(r.CompletedSessions, r.AccuracyPct, r.CurrentDifficulty),
		HintsEnabled:       r.AccuracyPct < hintsEnabledBelowPct,
		GuidedMode:         r.AccuracyPct < guidedModeBelowPct,
		FocusAreas:         r.WeakConcepts(focusAreaCap),
		EncouragementLevel: encouragementFor(r.AccuracyPct),
	}
}

func encouragementFor(accuracyPct int) EncouragementLevel {
	switch {
	case accuracyPct < 50:
		return EncourageHigh
	case accuracyPct < 75:
		return EncourageMedium
	default:
		return EncourageStandard
	}
}

// Parameters configures the next practice session for a learner.
type Parameters struct {
	Difficulty        difficulty.Level `json:"difficulty"`
	NumberOfQuestions int              `json:"numberOfQuestions"`
	TimeLimitMs       *int64           `json:"timeLimit"` // nil means untimed
	HintsAvailable    int              `json:"hintsAvailable"`
	VisualAidsEnabled bool             `json:"visualAidsEnabled"`
	GuidedModeEnabled bool             `json:"guidedModeEnabled"`
	WeakAreasToFocus  []string         `json:"weakAreasToFocus,omitempty"`
}

// SessionParameters derives adaptive session parameters from a progress
// record. A nil record gets the new-learner defaults: easy, five
// questions, untimed, all supports on.
func SessionParameters(r *mastery.Record) Parameters {
	if r == nil {
		return Parameters{
			Difficulty:        difficulty.Easy,
			NumberOfQuestions: mastery.Beginner.QuestionCount(),
			HintsAvailable:    3,
			VisualAidsEnabled: true,
			GuidedModeEnabled: true,
		}
	}

	p := Parameters{
		Difficulty:        difficulty.Next(r.CompletedSessions, r.AccuracyPct, r.CurrentDifficulty),
		NumberOfQuestions: r.MasteryLevel.QuestionCount(),
		HintsAvailable:    hintsAvailableFor(r.AccuracyPct),
		VisualAidsEnabled: r.MasteryLevel != mastery.Mastered,
		GuidedModeEnabled: r.AccuracyPct < guidedModeBelowPct,
		WeakAreasToFocus:  r.WeakConcepts(paramFocusCap),
	}

	// Slow responders get no timer at all; a zero average means no data
	// yet, which is also untimed.
	if r.AverageResponseTimeMs > 0 && r.AverageResponseTimeMs <= longResponseMs {
		limit := int64(r.AverageResponseTimeMs * 2)
		p.TimeLimitMs = &limit
	}
	return p
}

func hintsAvailableFor(accuracyPct int) int {
	switch {
	case accuracyPct < 70:
		return 3
	case accuracyPct < 85:
		return 2
	default:
		return 1
	}
}
