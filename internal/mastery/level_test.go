package mastery

import "testing"

func TestLevelFor_Boundaries(t *testing.T) {
	tests := []struct {
		accuracy int
		want     Level
	}{
		{0, Beginner},
		{49, Beginner},
		{50, Developing},
		{74, Developing},
		{75, Proficient},
		{89, Proficient},
		{90, Mastered},
		{100, Mastered},
	}
	for _, tt := range tests {
		if got := LevelFor(tt.accuracy); got != tt.want {
			t.Errorf("LevelFor(%d) = %s, want %s", tt.accuracy, got, tt.want)
		}
	}
}

func TestLevelFor_Monotonic(t *testing.T) {
	order := map[Level]int{Beginner: 0, Developing: 1, Proficient: 2, Mastered: 3}
	prev := Beginner
	for acc := 0; acc <= 100; acc++ {
		got := LevelFor(acc)
		if order[got] < order[prev] {
			t.Fatalf("LevelFor(%d) = %s decreases from %s", acc, got, prev)
		}
		prev = got
	}
}

func TestQuestionCount(t *testing.T) {
	tests := []struct {
		level Level
		want  int
	}{
		{Beginner, 5},
		{Developing, 7},
		{Proficient, 10},
		{Mastered, 10},
	}
	for _, tt := range tests {
		if got := tt.level.QuestionCount(); got != tt.want {
			t.Errorf("%s.QuestionCount() = %d, want %d", tt.level, got, tt.want)
		}
	}
}
