package behavior

// Scaffold names a pedagogical support the UI can enable.
type Scaffold string

const (
	ScaffoldStepByStepGuidance Scaffold = "step-by-step-guidance"
	ScaffoldVisualHints        Scaffold = "visual-hints"
	ScaffoldAudioEncouragement Scaffold = "audio-encouragement"
	ScaffoldSimplifiedProblems Scaffold = "simplified-problems"
	ScaffoldWorkedExamples     Scaffold = "worked-examples"
	ScaffoldFrequentFeedback   Scaffold = "frequent-feedback"
	ScaffoldOccasionalPrompts  Scaffold = "occasional-prompts"
	ScaffoldMinimalGuidance    Scaffold = "minimal-guidance"
)

// RecommendScaffolding returns the priority-ordered support list for a
// hesitation/confidence pair. Heavier hesitation wins over low
// confidence; the mild rung includes the 0.5 hesitation boundary so a
// learner sitting exactly on it still gets visual hints.
func RecommendScaffolding(hesitation, confidence float64) []Scaffold {
	switch {
	case hesitation > 0.7:
		return []Scaffold{ScaffoldStepByStepGuidance, ScaffoldVisualHints, ScaffoldAudioEncouragement}
	case confidence < 0.3:
		return []Scaffold{ScaffoldSimplifiedProblems, ScaffoldWorkedExamples, ScaffoldFrequentFeedback}
	case hesitation >= 0.5 || confidence < 0.5:
		return []Scaffold{ScaffoldVisualHints, ScaffoldOccasionalPrompts}
	default:
		return []Scaffold{ScaffoldMinimalGuidance}
	}
}
