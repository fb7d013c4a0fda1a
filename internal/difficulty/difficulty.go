// Package difficulty implements the one-step difficulty ratchet with a
// hysteresis band. Levels only ever move a single ordinal step per
// decision; a band between the raise and lower thresholds holds the
// current level to avoid oscillation at a single boundary.
package difficulty

// Level is a difficulty tier, ordered easy < medium < hard.
type Level string

const (
	Easy   Level = "easy"
	Medium Level = "medium"
	Hard   Level = "hard"
)

const (
	// RaiseThreshold is the accuracy (inclusive) at which difficulty
	// ratchets up one step.
	RaiseThreshold = 85

	// LowerThreshold is the accuracy (exclusive) below which difficulty
	// ratchets down one step.
	LowerThreshold = 60

	// MinSessionsForAdjustment guards new learners: below this session
	// count the decision is always Easy, regardless of accuracy.
	MinSessionsForAdjustment = 3
)

// Valid reports whether l is a known level.
func (l Level) Valid() bool {
	switch l {
	case Easy, Medium, Hard:
		return true
	}
	return false
}

// Next decides the difficulty for the next session. The result never
// differs from current by more than one step; Easy never lowers and
// Hard never raises.
func Next(completedSessions int, accuracyPct int, current Level) Level {
	if completedSessions < MinSessionsForAdjustment {
		return Easy
	}
	if !current.Valid() {
		current = Easy
	}

	switch {
	case accuracyPct >= RaiseThreshold:
		return stepUp(current)
	case accuracyPct < LowerThreshold:
		return stepDown(current)
	default:
		return current
	}
}

func stepUp(l Level) Level {
	switch l {
	case Easy:
		return Medium
	case Medium:
		return Hard
	default:
		return Hard
	}
}

func stepDown(l Level) Level {
	switch l {
	case Hard:
		return Medium
	case Medium:
		return Easy
	default:
		return Easy
	}
}
