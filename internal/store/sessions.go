package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"optik-arcade/internal/reward"
)

// RecordSession persists one finished play-through: the immutable session
// row, its pending reward (when the amount is positive), and the daily
// aggregate, all in one transaction. The wallet/game/day row is locked
// before the daily total is read so concurrent submissions from the same
// wallet serialize on the cap check and cannot jointly exceed it.
func (s *Store) RecordSession(ctx context.Context, wallet, gameID string, score int64, durationSeconds int, rewardExpiry time.Duration) (*GameSession, error) {
	tx, err := s.DB.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var rate reward.Rate
	var active bool
	row := tx.QueryRowContext(ctx, `SELECT reward_per_score, max_daily_reward, is_active FROM arcade_games WHERE id = $1`, gameID)
	if err := row.Scan(&rate.PerScore, &rate.MaxDaily, &active); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUnknownGame
		}
		return nil, err
	}
	if !active {
		return nil, ErrUnknownGame
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO daily_rewards (wallet_address, game_id, day)
		VALUES ($1, $2, CURRENT_DATE)
		ON CONFLICT (wallet_address, game_id, day) DO NOTHING
	`, wallet, gameID)
	if err != nil {
		return nil, err
	}
	var dailyEarned float64
	row = tx.QueryRowContext(ctx, `
		SELECT total_optik_earned FROM daily_rewards
		WHERE wallet_address = $1 AND game_id = $2 AND day = CURRENT_DATE
		FOR UPDATE
	`, wallet, gameID)
	if err := row.Scan(&dailyEarned); err != nil {
		return nil, err
	}

	earned := reward.Calculate(rate, score, dailyEarned)

	sessionID := NewID()
	var createdAt time.Time
	row = tx.QueryRowContext(ctx, `
		INSERT INTO game_sessions (id, wallet_address, game_id, score, duration_seconds, optik_earned)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING created_at
	`, sessionID, wallet, gameID, score, durationSeconds, earned)
	if err := row.Scan(&createdAt); err != nil {
		return nil, err
	}

	if earned > 0 {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO pending_rewards (id, wallet_address, amount, source, source_id, expires_at)
			VALUES ($1,$2,$3,'game_session',$4,$5)
		`, NewID(), wallet, earned, sessionID, time.Now().UTC().Add(rewardExpiry))
		if err != nil {
			return nil, err
		}
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE daily_rewards
		SET total_optik_earned = total_optik_earned + $1,
		    games_played = games_played + 1,
		    best_score = GREATEST(best_score, $2),
		    updated_at = now()
		WHERE wallet_address = $3 AND game_id = $4 AND day = CURRENT_DATE
	`, earned, score, wallet, gameID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &GameSession{
		ID:              sessionID,
		WalletAddress:   wallet,
		GameID:          gameID,
		Score:           score,
		DurationSeconds: durationSeconds,
		OptikEarned:     earned,
		CreatedAt:       createdAt,
	}, nil
}

func (s *Store) ListSessions(ctx context.Context, wallet string, limit int) ([]GameSession, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, wallet_address, game_id, score, duration_seconds, optik_earned, created_at
		FROM game_sessions
		WHERE wallet_address = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, wallet, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []GameSession{}
	for rows.Next() {
		var gs GameSession
		if err := rows.Scan(&gs.ID, &gs.WalletAddress, &gs.GameID, &gs.Score, &gs.DurationSeconds, &gs.OptikEarned, &gs.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, gs)
	}
	return out, rows.Err()
}

// GetDailyStat returns today's aggregate for one wallet/game pair. Missing
// rows read as zeros, not as an error.
func (s *Store) GetDailyStat(ctx context.Context, wallet, gameID string) (*DailyStat, error) {
	row := s.DB.QueryRowContext(ctx, `
		SELECT wallet_address, game_id, day, total_optik_earned, games_played, best_score
		FROM daily_rewards
		WHERE wallet_address = $1 AND game_id = $2 AND day = CURRENT_DATE
	`, wallet, gameID)
	var d DailyStat
	if err := row.Scan(&d.WalletAddress, &d.GameID, &d.Day, &d.TotalOptikEarned, &d.GamesPlayed, &d.BestScore); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &DailyStat{WalletAddress: wallet, GameID: gameID}, nil
		}
		return nil, err
	}
	return &d, nil
}

func (s *Store) ListDailyStats(ctx context.Context, wallet string) ([]DailyStat, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT wallet_address, game_id, day, total_optik_earned, games_played, best_score
		FROM daily_rewards
		WHERE wallet_address = $1 AND day = CURRENT_DATE
	`, wallet)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []DailyStat{}
	for rows.Next() {
		var d DailyStat
		if err := rows.Scan(&d.WalletAddress, &d.GameID, &d.Day, &d.TotalOptikEarned, &d.GamesPlayed, &d.BestScore); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
