// Package trend classifies recent answer-log history into performance
// trends. Everything here is a pure function of log slice and clock
// argument; re-running on the same slice yields the same answer.
package trend

import (
	"math"
	"time"

	"github.com/abhisek/mathpal/internal/difficulty"
)

// LogEntry is one immutable answer record from the performance log.
type LogEntry struct {
	UserID          string           `json:"userId"`
	ModuleName      string           `json:"moduleName"`
	SessionID       string           `json:"sessionId"`
	QuestionType    string           `json:"questionType"`
	IsCorrect       bool             `json:"isCorrect"`
	ResponseTimeMs  int64            `json:"responseTime"`
	DifficultyLevel difficulty.Level `json:"difficultyLevel"`
	HintsUsed       int              `json:"hintsUsed"`
	ConceptTags     []string         `json:"conceptTags"`
	Timestamp       time.Time        `json:"timestamp"`
}

// Trend labels the direction of recent performance.
type Trend string

const (
	Improving Trend = "improving"
	Stable    Trend = "stable"
	Declining Trend = "declining"

	// InsufficientData flags a window with too few answers to judge.
	// It is a sentinel, not an error: the learner simply hasn't done
	// enough yet.
	InsufficientData Trend = "insufficient-data"
)

const (
	// MinEntries is the smallest log count a trend can be computed from.
	MinEntries = 5

	// DefaultWindowDays is the trailing window when the caller doesn't
	// specify one.
	DefaultWindowDays = 7

	// shiftThresholdPct is the half-to-half accuracy delta beyond which
	// performance counts as improving or declining.
	shiftThresholdPct = 10
)

// Suggested actions surfaced with a trend result.
const (
	ActionReduce   = "Reduce difficulty and enable guided mode"
	ActionIncrease = "Consider increasing difficulty level"
	ActionContinue = "Continue with current difficulty"
)

// Result is the outcome of a trend analysis.
type Result struct {
	Trend             Trend  `json:"trend"`
	ImprovementPct    *int   `json:"improvement"` // nil when insufficient data
	RecentAccuracyPct int    `json:"recentAccuracy,omitempty"`
	SuggestedAction   string `json:"suggestedAction,omitempty"`
}

// Analyze computes the trend over the logs that fall inside the
// trailing window, chronologically ascending. Fewer than MinEntries in
// the window yields the insufficient-data sentinel. The split is at
// floor(n/2); the classification compares rounded half accuracies
// against the ±10 point band.
func Analyze(logs []LogEntry, now time.Time, windowDays int) Result {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	cutoff := now.AddDate(0, 0, -windowDays)

	var recent []LogEntry
	for _, l := range logs {
		if !l.Timestamp.Before(cutoff) {
			recent = append(recent, l)
		}
	}

	if len(recent) < MinEntries {
		return Result{Trend: InsufficientData}
	}

	mid := len(recent) / 2
	firstAcc := accuracyPct(recent[:mid])
	secondAcc := accuracyPct(recent[mid:])
	improvement := secondAcc - firstAcc

	var t Trend
	switch {
	case improvement > shiftThresholdPct:
		t = Improving
	case improvement < -shiftThresholdPct:
		t = Declining
	default:
		t = Stable
	}

	return Result{
		Trend:             t,
		ImprovementPct:    &improvement,
		RecentAccuracyPct: secondAcc,
		SuggestedAction:   suggestedAction(t, secondAcc),
	}
}

func suggestedAction(t Trend, recentAccuracy int) string {
	if t == Declining || recentAccuracy < 50 {
		return ActionReduce
	}
	if t == Improving && recentAccuracy > 85 {
		return ActionIncrease
	}
	return ActionContinue
}

func accuracyPct(logs []LogEntry) int {
	if len(logs) == 0 {
		return 0
	}
	correct := 0
	for _, l := range logs {
		if l.IsCorrect {
			correct++
		}
	}
	return int(math.Round(float64(correct) / float64(len(logs)) * 100))
}
