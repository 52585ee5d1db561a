package games

import (
	"math/rand"
	"time"
)

const (
	flappyWidth     = 600.0
	flappyHeight    = 500.0
	flappyBirdX     = 100.0
	flappyBirdSize  = 40.0
	flappyGravity   = 0.6
	flappyJump      = -10.0
	flappyPipeWidth = 80.0
	flappyPipeGap   = 180.0
	flappyPipeSpeed = 3.0
	flappyPipeLead  = 300.0
	flappyGapMargin = 60.0
	FlappyFrameRate = 60
)

// FlappyFrameInterval is how often a driver should call Step.
const FlappyFrameInterval = time.Second / FlappyFrameRate

type pipe struct {
	x      float64
	gapTop float64
	passed bool
}

// Flappy simulates the side-scrolling bird at 60 frames per second.
// One point is scored per pipe cleared.
type Flappy struct {
	session
	rng *rand.Rand

	birdY float64
	velY  float64
	pipes []pipe
	score int64
}

func NewFlappy(o Options) *Flappy {
	o = o.withDefaults()
	return &Flappy{session: newSession(o), rng: o.Rand}
}

func (g *Flappy) Start() {
	if g.state == StatePlaying {
		return
	}
	g.begin()
	g.birdY = flappyHeight / 2
	g.velY = 0
	g.pipes = nil
	g.score = 0
	g.spawnPipe()
}

// Flap gives the bird an upward impulse.
func (g *Flappy) Flap() {
	if g.state != StatePlaying {
		return
	}
	g.velY = flappyJump
}

// Step advances the world by one frame.
func (g *Flappy) Step() {
	if g.state != StatePlaying {
		return
	}
	g.velY += flappyGravity
	g.birdY += g.velY

	if g.birdY < 0 || g.birdY+flappyBirdSize > flappyHeight {
		g.finish(g.score)
		return
	}

	kept := g.pipes[:0]
	for i := range g.pipes {
		p := g.pipes[i]
		p.x -= flappyPipeSpeed
		if g.birdCollides(p) {
			g.finish(g.score)
			return
		}
		if !p.passed && p.x+flappyPipeWidth < flappyBirdX {
			p.passed = true
			g.score++
		}
		if p.x+flappyPipeWidth > 0 {
			kept = append(kept, p)
		}
	}
	g.pipes = kept

	if len(g.pipes) == 0 || g.pipes[len(g.pipes)-1].x < flappyWidth-flappyPipeLead {
		g.spawnPipe()
	}
}

func (g *Flappy) Score() int64   { return g.score }
func (g *Flappy) BirdY() float64 { return g.birdY }

func (g *Flappy) spawnPipe() {
	span := flappyHeight - flappyPipeGap - 2*flappyGapMargin
	gapTop := flappyGapMargin + g.rng.Float64()*span
	g.pipes = append(g.pipes, pipe{x: flappyWidth, gapTop: gapTop})
}

func (g *Flappy) birdCollides(p pipe) bool {
	if flappyBirdX+flappyBirdSize < p.x || flappyBirdX > p.x+flappyPipeWidth {
		return false
	}
	return g.birdY < p.gapTop || g.birdY+flappyBirdSize > p.gapTop+flappyPipeGap
}
