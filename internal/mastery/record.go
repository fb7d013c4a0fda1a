package mastery

import (
	"math"
	"sort"
	"time"

	"github.com/abhisek/mathpal/internal/difficulty"
)

const (
	// strengthEntryAccuracy seeds a newly observed strong concept.
	strengthEntryAccuracy = 70
	// weakEntryAccuracy seeds a newly observed weak concept.
	weakEntryAccuracy = 30
	// conceptDriftStep is how far one session outcome moves a tracked
	// concept's accuracy.
	conceptDriftStep = 5
)

// ConceptStat tracks per-concept accuracy inside a progress record.
type ConceptStat struct {
	Concept     string `json:"concept"`
	AccuracyPct int    `json:"accuracy"`
	Attempts    int    `json:"attemptsCount,omitempty"`
}

// Record is the mutable per-user×module progress state. The engine only
// ever computes next values; persistence and write serialization belong
// to the calling layer.
type Record struct {
	UserID                string           `json:"userId"`
	ModuleName            string           `json:"moduleName"`
	AccuracyPct           int              `json:"accuracy"`
	MasteryLevel          Level            `json:"masteryLevel"`
	CompletedSessions     int              `json:"completedSessions"`
	TotalQuestions        int              `json:"totalQuestions"`
	CorrectAnswers        int              `json:"correctAnswers"`
	CurrentDifficulty     difficulty.Level `json:"currentDifficulty"`
	Strengths             []ConceptStat    `json:"strengths"`
	WeakAreas             []ConceptStat    `json:"weakAreas"`
	AverageResponseTimeMs float64          `json:"averageResponseTime"`
	TotalTimeSpentSecs    int              `json:"totalTimeSpent"`
	LastSessionAt         time.Time        `json:"lastSessionDate"`
}

// NewRecord creates the default record for a first-time learner on a
// module: beginner, easy, nothing attempted.
func NewRecord(userID, moduleName string) *Record {
	return &Record{
		UserID:            userID,
		ModuleName:        moduleName,
		MasteryLevel:      Beginner,
		CurrentDifficulty: difficulty.Easy,
	}
}

// ConceptOutcome reports how one concept fared in a session.
type ConceptOutcome struct {
	Name    string `json:"name"`
	Correct bool   `json:"correct"`
}

// SessionSummary is the caller-supplied result of one completed session.
type SessionSummary struct {
	Correct               int              `json:"correct"`
	Total                 int              `json:"total"`
	AverageResponseTimeMs float64          `json:"responseTime"`
	Difficulty            difficulty.Level `json:"difficulty,omitempty"`
	Concepts              []ConceptOutcome `json:"concepts,omitempty"`
	TimeSpentSecs         int              `json:"timeSpent,omitempty"`
}

// ApplySession folds a session summary into the record and recomputes
// every derived field synchronously. MasteryLevel is restamped from the
// new accuracy on every call and must never drift from it.
func (r *Record) ApplySession(s SessionSummary, now time.Time) {
	r.CompletedSessions++
	r.TotalQuestions += s.Total
	r.CorrectAnswers += s.Correct
	if r.TotalQuestions > 0 {
		r.AccuracyPct = roundPct(r.CorrectAnswers, r.TotalQuestions)
	}
	r.LastSessionAt = now

	// Rolling average over completed sessions.
	n := float64(r.CompletedSessions)
	r.AverageResponseTimeMs = (r.AverageResponseTimeMs*(n-1) + s.AverageResponseTimeMs) / n

	if s.Difficulty.Valid() {
		r.CurrentDifficulty = s.Difficulty
	}

	for _, c := range s.Concepts {
		if c.Correct {
			r.reinforceStrength(c.Name)
		} else {
			r.recordWeakness(c.Name)
		}
	}
	sort.SliceStable(r.WeakAreas, func(i, j int) bool {
		return r.WeakAreas[i].AccuracyPct < r.WeakAreas[j].AccuracyPct
	})

	r.TotalTimeSpentSecs += s.TimeSpentSecs
	r.MasteryLevel = LevelFor(r.AccuracyPct)
}

func (r *Record) reinforceStrength(concept string) {
	for i := range r.Strengths {
		if r.Strengths[i].Concept == concept {
			r.Strengths[i].AccuracyPct = min(100, r.Strengths[i].AccuracyPct+conceptDriftStep)
			return
		}
	}
	r.Strengths = append(r.Strengths, ConceptStat{Concept: concept, AccuracyPct: strengthEntryAccuracy})
}

func (r *Record) recordWeakness(concept string) {
	for i := range r.WeakAreas {
		if r.WeakAreas[i].Concept == concept {
			r.WeakAreas[i].Attempts++
			r.WeakAreas[i].AccuracyPct = max(0, r.WeakAreas[i].AccuracyPct-conceptDriftStep)
			return
		}
	}
	r.WeakAreas = append(r.WeakAreas, ConceptStat{Concept: concept, AccuracyPct: weakEntryAccuracy, Attempts: 1})
}

// WeakConcepts returns up to n weakest concept names, weakest first.
func (r *Record) WeakConcepts(n int) []string {
	if n > len(r.WeakAreas) {
		n = len(r.WeakAreas)
	}
	out := make([]string, 0, n)
	for _, w := range r.WeakAreas[:n] {
		out = append(out, w.Concept)
	}
	return out
}

func roundPct(part, whole int) int {
	return int(math.Round(float64(part) / float64(whole) * 100))
}
