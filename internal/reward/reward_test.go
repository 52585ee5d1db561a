package reward

import "testing"

func TestParseGame(t *testing.T) {
	for _, id := range []string{"snake", "flappy", "2048", "tap"} {
		if _, err := ParseGame(id); err != nil {
			t.Fatalf("expected %q to parse, got %v", id, err)
		}
	}
	if _, err := ParseGame("tetris"); err == nil {
		t.Fatal("expected unknown game to be rejected")
	}
	if _, err := ParseGame(""); err == nil {
		t.Fatal("expected empty game id to be rejected")
	}
}

func TestCalculate(t *testing.T) {
	flappy := Rate{PerScore: 2, MaxDaily: 1000}

	tests := []struct {
		name        string
		rate        Rate
		score       int64
		dailyEarned float64
		want        float64
	}{
		{name: "flappy ten points", rate: flappy, score: 10, dailyEarned: 0, want: 20},
		{name: "zero score zero reward", rate: flappy, score: 0, dailyEarned: 0, want: 0},
		{name: "clamped to remaining cap", rate: flappy, score: 100, dailyEarned: 950, want: 50},
		{name: "cap already reached", rate: flappy, score: 10, dailyEarned: 1000, want: 0},
		{name: "cap overshot by prior bug stays zero", rate: flappy, score: 10, dailyEarned: 1200, want: 0},
		{name: "fractional rate rounds to micro", rate: Rate{PerScore: 0.1, MaxDaily: 500}, score: 7, dailyEarned: 0, want: 0.7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Calculate(tt.rate, tt.score, tt.dailyEarned)
			if got != tt.want {
				t.Fatalf("Calculate(%+v, %d, %v) = %v, want %v", tt.rate, tt.score, tt.dailyEarned, got, tt.want)
			}
		})
	}
}

func TestCalculateMonotonicInScore(t *testing.T) {
	r := Rate{PerScore: 0.5, MaxDaily: 100}
	prev := 0.0
	for score := int64(0); score <= 300; score += 7 {
		got := Calculate(r, score, 0)
		if got < prev {
			t.Fatalf("reward decreased: score=%d got=%v prev=%v", score, got, prev)
		}
		if got > r.MaxDaily {
			t.Fatalf("reward exceeded daily cap: %v", got)
		}
		prev = got
	}
}
