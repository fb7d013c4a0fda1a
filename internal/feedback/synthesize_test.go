package feedback

import (
	"testing"

	"github.com/abhisek/mathpal/internal/behavior"
	"github.com/abhisek/mathpal/internal/trend"
)

func profile(eng, hes, conf float64, mode behavior.LearningMode) behavior.Profile {
	return behavior.Profile{
		Scores:                behavior.Scores{Engagement: eng, Hesitation: hes, Confidence: conf},
		PreferredLearningMode: mode,
	}
}

func TestSynthesize_Buckets(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		want  SignalLevel
	}{
		{"low", 0.3, LevelLow},
		{"boundary stays low", 0.4, LevelLow},
		{"medium", 0.5, LevelMedium},
		{"boundary stays medium", 0.7, LevelMedium},
		{"high", 0.8, LevelHigh},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := Synthesize(Recommendations{}, profile(tc.score, 0, tc.score, behavior.ModeMultimodal), trend.Result{Trend: trend.Stable})
			if a.EngagementLevel != tc.want {
				t.Errorf("engagement level = %s, want %s", a.EngagementLevel, tc.want)
			}
			if a.ConfidenceLevel != tc.want {
				t.Errorf("confidence level = %s, want %s", a.ConfidenceLevel, tc.want)
			}
		})
	}
}

func TestSynthesize_HintType(t *testing.T) {
	tests := []struct {
		name string
		p    behavior.Profile
		want HintType
	}{
		{"visual learner gets diagrams", profile(0.5, 0.9, 0.5, behavior.ModeVisual), HintVisualDiagram},
		{"hesitant gets step by step", profile(0.5, 0.7, 0.5, behavior.ModeAuditory), HintStepByStep},
		{"default text hint", profile(0.5, 0.6, 0.5, behavior.ModeMultimodal), HintText},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := Synthesize(Recommendations{}, tc.p, trend.Result{Trend: trend.Stable})
			if a.RecommendedHintType != tc.want {
				t.Errorf("hint type = %s, want %s", a.RecommendedHintType, tc.want)
			}
		})
	}
}

func TestSynthesize_Pace(t *testing.T) {
	tests := []struct {
		name string
		p    behavior.Profile
		tr   trend.Trend
		want PaceAdjustment
	}{
		{"hesitation wins over improvement", profile(0.5, 0.8, 0.9, behavior.ModeMultimodal), trend.Improving, PaceSlower},
		{"confident and improving", profile(0.5, 0.2, 0.8, behavior.ModeMultimodal), trend.Improving, PaceFaster},
		{"improving but unsure", profile(0.5, 0.2, 0.5, behavior.ModeMultimodal), trend.Improving, PaceMaintain},
		{"confident but stable", profile(0.5, 0.2, 0.8, behavior.ModeMultimodal), trend.Stable, PaceMaintain},
		{"insufficient data maintains", profile(0.5, 0.2, 0.8, behavior.ModeMultimodal), trend.InsufficientData, PaceMaintain},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := Synthesize(Recommendations{}, tc.p, trend.Result{Trend: tc.tr})
			if a.PaceAdjustment != tc.want {
				t.Errorf("pace = %s, want %s", a.PaceAdjustment, tc.want)
			}
		})
	}
}

func TestSynthesize_SupportFlags(t *testing.T) {
	a := Synthesize(Recommendations{}, profile(0.5, 0.75, 0.5, behavior.ModeVisual), trend.Result{Trend: trend.Declining})
	if !a.NeedsEncouragement {
		t.Error("hesitation 0.75 should need encouragement")
	}
	if !a.NeedsVisualSupport {
		t.Error("visual learner should need visual support")
	}
	if a.PerformanceTrend != trend.Declining {
		t.Errorf("trend = %s, want declining", a.PerformanceTrend)
	}

	a = Synthesize(Recommendations{}, profile(0.5, 0.7, 0.5, behavior.ModeAuditory), trend.Result{Trend: trend.Stable})
	if a.NeedsEncouragement {
		t.Error("hesitation at exactly 0.7 should not need encouragement")
	}
	if a.NeedsVisualSupport {
		t.Error("auditory learner should not need visual support")
	}
}
