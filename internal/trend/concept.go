package trend

import "slices"

const (
	// conceptWindow caps how many recent attempts feed a concept
	// assessment.
	conceptWindow = 20

	// minConceptAttempts is the floor below which an assessment is a
	// low-confidence "not mastered yet".
	minConceptAttempts = 3

	// conceptMasteredPct is the accuracy bar for concept mastery.
	conceptMasteredPct = 85

	// conceptMasteredAttempts is the attempt floor for concept mastery.
	conceptMasteredAttempts = 5
)

// ConceptAssessment is the mastery read on a single concept tag.
type ConceptAssessment struct {
	Mastered          bool    `json:"mastered"`
	AccuracyPct       int     `json:"accuracy,omitempty"`
	AvgResponseTimeMs float64 `json:"avgResponseTime,omitempty"`
	Attempts          int     `json:"attempts"`
	Confidence        string  `json:"confidence"`
}

// AssessConcept judges mastery of one concept from its most recent
// attempts (logs chronologically ascending; at most the last 20
// matching entries are considered). Fewer than 3 tagged attempts yields
// the documented low-confidence default rather than an error.
func AssessConcept(logs []LogEntry, concept string) ConceptAssessment {
	var matching []LogEntry
	for _, l := range logs {
		if slices.Contains(l.ConceptTags, concept) {
			matching = append(matching, l)
		}
	}
	if len(matching) > conceptWindow {
		matching = matching[len(matching)-conceptWindow:]
	}

	if len(matching) < minConceptAttempts {
		return ConceptAssessment{Mastered: false, Confidence: "low", Attempts: len(matching)}
	}

	acc := accuracyPct(matching)
	var totalMs int64
	for _, l := range matching {
		totalMs += l.ResponseTimeMs
	}

	confidence := "low"
	switch {
	case acc >= conceptMasteredPct:
		confidence = "high"
	case acc >= 70:
		confidence = "medium"
	}

	return ConceptAssessment{
		Mastered:          acc >= conceptMasteredPct && len(matching) >= conceptMasteredAttempts,
		AccuracyPct:       acc,
		AvgResponseTimeMs: float64(totalMs) / float64(len(matching)),
		Attempts:          len(matching),
		Confidence:        confidence,
	}
}
