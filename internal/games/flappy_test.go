package games

import "testing"

func TestFlappyFallsToGround(t *testing.T) {
	var over []Result
	g := NewFlappy(fixedOptions(&over))
	g.Start()

	// Never flap: gravity pulls the bird out of bounds in well under 100
	// frames from the centre of a 500px field.
	for i := 0; i < 100 && g.State() == StatePlaying; i++ {
		g.Step()
	}
	if g.State() != StateGameOver {
		t.Fatalf("bird should have hit the ground")
	}
	if len(over) != 1 {
		t.Fatalf("game over callback fired %d times, want 1", len(over))
	}
	if over[0].Score != 0 {
		t.Fatalf("score = %d, want 0 without passing a pipe", over[0].Score)
	}
}

func TestFlappyFlapPushesUp(t *testing.T) {
	var over []Result
	g := NewFlappy(fixedOptions(&over))
	g.Start()

	start := g.BirdY()
	g.Flap()
	g.Step()
	if g.BirdY() >= start {
		t.Fatalf("flap should move the bird up: %v -> %v", start, g.BirdY())
	}
}

func TestFlappyScoresPerPipePassed(t *testing.T) {
	var over []Result
	g := NewFlappy(fixedOptions(&over))
	g.Start()

	// Hold the bird inside every gap so pipes scroll past and score.
	frames := 0
	for g.State() == StatePlaying && g.Score() < 3 && frames < 2000 {
		target := g.nextGapCenter()
		if g.birdY > target && g.velY >= 0 {
			g.Flap()
		}
		g.Step()
		frames++
	}
	if g.Score() < 3 {
		t.Fatalf("expected at least 3 pipes passed, got %d (state=%v)", g.Score(), g.State())
	}
}

// nextGapCenter is a test helper that finds the gap centre of the nearest
// pipe still ahead of the bird.
func (g *Flappy) nextGapCenter() float64 {
	for _, p := range g.pipes {
		if p.x+flappyPipeWidth >= flappyBirdX {
			return p.gapTop + flappyPipeGap/2
		}
	}
	return flappyHeight / 2
}

func TestFlappyIgnoresInputWhenIdle(t *testing.T) {
	var over []Result
	g := NewFlappy(fixedOptions(&over))
	g.Flap()
	g.Step()
	if g.State() != StateIdle {
		t.Fatalf("engine advanced before Start")
	}
	if len(over) != 0 {
		t.Fatalf("callback fired before any session")
	}
}
