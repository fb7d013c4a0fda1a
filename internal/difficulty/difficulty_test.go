package difficulty

import "testing"

func TestNext_Table(t *testing.T) {
	tests := []struct {
		name     string
		sessions int
		accuracy int
		current  Level
		want     Level
	}{
		{"guard overrides high accuracy", 1, 95, Hard, Easy},
		{"guard at boundary minus one", 2, 95, Medium, Easy},
		{"guard lifts at three sessions", 3, 95, Easy, Medium},
		{"raise easy to medium", 5, 90, Easy, Medium},
		{"raise medium to hard", 5, 85, Medium, Hard},
		{"hard saturates", 5, 100, Hard, Hard},
		{"lower hard to medium", 5, 40, Hard, Medium},
		{"lower medium to easy", 5, 59, Medium, Easy},
		{"easy saturates", 5, 0, Easy, Easy},
		{"hold inside band low edge", 5, 60, Medium, Medium},
		{"hold inside band high edge", 5, 84, Medium, Medium},
		{"raise boundary inclusive", 5, 85, Easy, Medium},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Next(tt.sessions, tt.accuracy, tt.current)
			if got != tt.want {
				t.Errorf("Next(%d, %d, %s) = %s, want %s",
					tt.sessions, tt.accuracy, tt.current, got, tt.want)
			}
		})
	}
}

func TestNext_NeverSkipsALevel(t *testing.T) {
	levels := []Level{Easy, Medium, Hard}
	order := map[Level]int{Easy: 0, Medium: 1, Hard: 2}
	for _, current := range levels {
		for accuracy := 0; accuracy <= 100; accuracy += 5 {
			next := Next(10, accuracy, current)
			delta := order[next] - order[current]
			if delta < -1 || delta > 1 {
				t.Errorf("Next(10, %d, %s) = %s jumps %d levels", accuracy, current, next, delta)
			}
		}
	}
}
