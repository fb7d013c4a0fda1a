// Package mastery holds the mastery tier classification and the
// progress record whose derived fields it governs.
package mastery

// Level is a mastery tier, ordered beginner < developing < proficient <
// mastered. A learner's level is always a pure function of cumulative
// accuracy and is never stored independently.
type Level string

const (
	Beginner   Level = "beginner"
	Developing Level = "developing"
	Proficient Level = "proficient"
	Mastered   Level = "mastered"
)

const (
	// DevelopingThreshold is the accuracy (inclusive) for the developing tier.
	DevelopingThreshold = 50
	// ProficientThreshold is the accuracy (inclusive) for the proficient tier.
	ProficientThreshold = 75
	// MasteredThreshold is the accuracy (inclusive) for the mastered tier.
	MasteredThreshold = 90
)

// LevelFor classifies a cumulative accuracy percentage into a mastery
// tier. Monotonic non-decreasing in its argument.
func LevelFor(accuracyPct int) Level {
	switch {
	case accuracyPct >= MasteredThreshold:
		return Mastered
	case accuracyPct >= ProficientThreshold:
		return Proficient
	case accuracyPct >= DevelopingThreshold:
		return Developing
	default:
		return Beginner
	}
}

// QuestionCount returns how many questions a session at this tier
// should serve.
func (l Level) QuestionCount() int {
	switch l {
	case Developing:
		return 7
	case Proficient, Mastered:
		return 10
	default:
		return 5
	}
}
