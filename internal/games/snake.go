package games

import (
	"math/rand"
	"time"
)

const (
	snakeGridSize    = 20
	snakeFoodPoints  = 10
	snakeBaseTick    = 150 * time.Millisecond
	snakeMinTick     = 50 * time.Millisecond
	snakeTickSpeedup = 0.98
)

type Point struct {
	X int
	Y int
}

// Snake is the classic grid snake. The caller paces the loop by calling
// Step once per TickInterval; eating food shortens the interval.
type Snake struct {
	session
	rng *rand.Rand

	body []Point
	dir  Point
	next Point
	food Point

	score int64
	tick  time.Duration
}

func NewSnake(o Options) *Snake {
	o = o.withDefaults()
	return &Snake{session: newSession(o), rng: o.Rand}
}

func (g *Snake) Start() {
	if g.state == StatePlaying {
		return
	}
	g.begin()
	head := Point{X: snakeGridSize / 2, Y: snakeGridSize / 2}
	g.body = []Point{head, {X: head.X - 1, Y: head.Y}, {X: head.X - 2, Y: head.Y}}
	g.dir = Point{X: 1, Y: 0}
	g.next = g.dir
	g.score = 0
	g.tick = snakeBaseTick
	g.placeFood()
}

// SetDirection queues the direction applied at the next step. A reversal
// onto the snake's own neck is ignored.
func (g *Snake) SetDirection(d Point) {
	if g.state != StatePlaying {
		return
	}
	if d.X == -g.dir.X && d.Y == -g.dir.Y {
		return
	}
	if abs(d.X)+abs(d.Y) != 1 {
		return
	}
	g.next = d
}

// Step advances the simulation by one tick.
func (g *Snake) Step() {
	if g.state != StatePlaying {
		return
	}
	g.dir = g.next
	head := Point{X: g.body[0].X + g.dir.X, Y: g.body[0].Y + g.dir.Y}

	if head.X < 0 || head.X >= snakeGridSize || head.Y < 0 || head.Y >= snakeGridSize {
		g.finish(g.score)
		return
	}
	for _, p := range g.body {
		if p == head {
			g.finish(g.score)
			return
		}
	}

	g.body = append([]Point{head}, g.body...)
	if head == g.food {
		g.score += snakeFoodPoints
		g.tick = time.Duration(float64(g.tick) * snakeTickSpeedup)
		if g.tick < snakeMinTick {
			g.tick = snakeMinTick
		}
		g.placeFood()
	} else {
		g.body = g.body[:len(g.body)-1]
	}
}

func (g *Snake) Score() int64                { return g.score }
func (g *Snake) TickInterval() time.Duration { return g.tick }
func (g *Snake) Body() []Point               { return g.body }
func (g *Snake) Food() Point                 { return g.food }

func (g *Snake) placeFood() {
	for {
		p := Point{X: g.rng.Intn(snakeGridSize), Y: g.rng.Intn(snakeGridSize)}
		occupied := false
		for _, b := range g.body {
			if b == p {
				occupied = true
				break
			}
		}
		if !occupied {
			g.food = p
			return
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
