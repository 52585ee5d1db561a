// Package reward holds the pure OPTIK reward arithmetic. Rates and daily
// caps come from the arcade_games catalog; nothing here touches storage or
// trusts client-supplied totals.
package reward

import (
	"fmt"
	"math"
)

type Game string

const (
	GameSnake  Game = "snake"
	GameFlappy Game = "flappy"
	Game2048   Game = "2048"
	GameTap    Game = "tap"
)

// ParseGame validates a client-supplied game id. Unknown ids are an error,
// never a zero-rate fallback.
func ParseGame(s string) (Game, error) {
	switch Game(s) {
	case GameSnake, GameFlappy, Game2048, GameTap:
		return Game(s), nil
	}
	return "", fmt.Errorf("unknown game %q", s)
}

// Rate is one game's reward configuration.
type Rate struct {
	PerScore float64
	MaxDaily float64
}

// Calculate maps a session score to an OPTIK amount: score times the
// per-point rate, clamped to what remains of the wallet's daily cap.
// dailyEarned must be the persisted total for the wallet/game/day, read
// under the same transaction that records the session. Duration is an
// anti-abuse signal only and does not scale the reward.
func Calculate(r Rate, score int64, dailyEarned float64) float64 {
	if score <= 0 {
		return 0
	}
	potential := float64(score) * r.PerScore
	remaining := r.MaxDaily - dailyEarned
	if remaining <= 0 {
		return 0
	}
	if potential > remaining {
		potential = remaining
	}
	return roundOptik(potential)
}

// roundOptik keeps amounts on the NUMERIC(18,6) grid the ledger stores.
func roundOptik(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}
