// Package games holds the four arcade engines. Each engine is a headless
// simulation: the caller drives it with ticks or discrete inputs, and the
// engine reports the finished session through a single game-over callback.
// Engines never convert scores to OPTIK; that belongs to the reward
// calculator on the server side.
package games

import (
	"math/rand"
	"time"
)

type State int

const (
	StateIdle State = iota
	StatePlaying
	StateGameOver
)

// Result is what an engine hands over when a session terminates.
type Result struct {
	Score           int64
	DurationSeconds int
}

// Options configure an engine. Zero values get sane defaults: wall clock
// time and a time-seeded RNG.
type Options struct {
	Rand       *rand.Rand
	Now        func() time.Time
	OnGameOver func(Result)
}

func (o Options) withDefaults() Options {
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.OnGameOver == nil {
		o.OnGameOver = func(Result) {}
	}
	return o
}

// session is the state machine every engine embeds. It guards the
// idle → playing → gameOver transitions and guarantees the game-over
// callback fires exactly once per session, whatever condition ended it.
type session struct {
	state      State
	startedAt  time.Time
	now        func() time.Time
	onGameOver func(Result)
	reported   bool
}

func newSession(o Options) session {
	return session{now: o.Now, onGameOver: o.OnGameOver}
}

func (s *session) State() State { return s.state }

func (s *session) begin() {
	s.state = StatePlaying
	s.startedAt = s.now()
	s.reported = false
}

func (s *session) finish(score int64) {
	if s.state != StatePlaying {
		return
	}
	s.state = StateGameOver
	if s.reported {
		return
	}
	s.reported = true
	duration := int(s.now().Sub(s.startedAt).Seconds())
	if duration < 0 {
		duration = 0
	}
	s.onGameOver(Result{Score: score, DurationSeconds: duration})
}
