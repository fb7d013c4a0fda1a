package telemetry

import "time"

const (
	// RapidResponseMs is the reaction time below which an answer counts
	// as a rapid response.
	RapidResponseMs = 2000

	// HesitantResponseMs is the reaction time above which an answer
	// counts as a hesitation.
	HesitantResponseMs = 8000
)

// HoverPattern summarizes the hovers a learner made over one answer choice.
type HoverPattern struct {
	HoverCount             int     `json:"hoverCount"`
	AverageHoverDurationMs float64 `json:"averageHoverDuration"`
}

// EngagementMetrics is the aggregated view of one session's (or window's)
// interaction events.
type EngagementMetrics struct {
	TotalEvents              int                  `json:"totalEvents"`
	TotalDurationMs          int64                `json:"totalDuration"`
	AverageReactionTimeMs    float64              `json:"averageReactionTime"`
	HoverPatterns            map[int]HoverPattern `json:"hoverPatterns"`
	HesitationCount          int                  `json:"hesitationCount"`
	RapidResponseCount       int                  `json:"rapidResponseCount"`
	IdleCount                int                  `json:"idleCount"`
	MouseMovementCount       int                  `json:"mouseMovementCount"`
	KeyboardInteractionCount int                  `json:"keyboardInteractionCount"`
}

// hoverAccumulator tracks in-flight and completed hovers for one choice.
type hoverAccumulator struct {
	count           int
	totalDurationMs int64
	openedAt        time.Time
	open            bool
}

// Aggregate collapses an ordered event sequence into engagement metrics
// in a single pass. It returns nil for an empty sequence, so callers must
// treat that as "no data", not an error. The second return value counts
// records skipped as malformed (unknown type, or a payload missing a
// field its type requires).
func Aggregate(events []Event) (*EngagementMetrics, int) {
	if len(events) == 0 {
		return nil, 0
	}

	m := &EngagementMetrics{
		HoverPatterns: make(map[int]HoverPattern),
	}
	skipped := 0

	var reactionTimes []int64
	hovers := make(map[int]*hoverAccumulator)
	var questionShownAt time.Time
	questionPending := false
	var first, last time.Time

	for i := range events {
		ev := &events[i]
		if !ev.WellFormed() {
			skipped++
			continue
		}

		if first.IsZero() || ev.Timestamp.Before(first) {
			first = ev.Timestamp
		}
		if ev.Timestamp.After(last) {
			last = ev.Timestamp
		}

		switch ev.Type {
		case TypeMouseMove:
			m.MouseMovementCount++

		case TypeKeyDown, TypeKeyUp:
			m.KeyboardInteractionCount++

		case TypeIdleDetected:
			m.IdleCount++

		case TypeQuestionDisplayed:
			questionShownAt = ev.Timestamp
			questionPending = true

		case TypeAnswerSelected:
			if questionPending {
				rt := ev.Timestamp.Sub(questionShownAt).Milliseconds()
				reactionTimes = append(reactionTimes, rt)
				if rt < RapidResponseMs {
					m.RapidResponseCount++
				}
				if rt > HesitantResponseMs {
					m.HesitationCount++
				}
				questionPending = false
			}

		case TypeChoiceHoverStart:
			h, _ := ev.Hover()
			acc := hovers[h.ChoiceIndex]
			if acc == nil {
				acc = &hoverAccumulator{}
				hovers[h.ChoiceIndex] = acc
			}
			acc.openedAt = ev.Timestamp
			acc.open = true

		case TypeChoiceHoverEnd:
			h, _ := ev.Hover()
			if acc := hovers[h.ChoiceIndex]; acc != nil && acc.open {
				acc.count++
				acc.totalDurationMs += ev.Timestamp.Sub(acc.openedAt).Milliseconds()
				acc.open = false
			}
		}

		m.TotalEvents++
	}

	if m.TotalEvents == 0 {
		// Every record was malformed.
		return nil, skipped
	}

	if len(reactionTimes) > 0 {
		var sum int64
		for _, rt := range reactionTimes {
			sum += rt
		}
		m.AverageReactionTimeMs = float64(sum) / float64(len(reactionTimes))
	}

	// Unmatched hover opens are discarded: only completed cycles count.
	for idx, acc := range hovers {
		if acc.count == 0 {
			continue
		}
		m.HoverPatterns[idx] = HoverPattern{
			HoverCount:             acc.count,
			AverageHoverDurationMs: float64(acc.totalDurationMs) / float64(acc.count),
		}
	}

	// Zero when the window holds a single event.
	m.TotalDurationMs = last.Sub(first).Milliseconds()
	return m, skipped
}
