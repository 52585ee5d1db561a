package store

import (
	"context"
	"database/sql"
)

// RefreshLeaderboard rebuilds the ranked snapshot from the session audit
// trail. The arcade page reads the snapshot, never the raw sessions, so a
// refresh failure leaves the previous ranking intact.
func (s *Store) RefreshLeaderboard(ctx context.Context) error {
	tx, err := s.DB.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM arcade_leaderboard`); err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO arcade_leaderboard
			(wallet_address, rank, total_score, total_optik_earned, games_played, achievements_unlocked, highest_score, refreshed_at)
		SELECT
			gs.wallet_address,
			RANK() OVER (ORDER BY SUM(gs.optik_earned) DESC, SUM(gs.score) DESC),
			SUM(gs.score),
			SUM(gs.optik_earned),
			COUNT(1),
			(SELECT COUNT(1) FROM user_achievements ua WHERE ua.wallet_address = gs.wallet_address),
			MAX(gs.score),
			now()
		FROM game_sessions gs
		GROUP BY gs.wallet_address
	`)
	if err != nil {
		return err
	}
	return tx.Commit()
}

func (s *Store) ListLeaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.DB.QueryContext(ctx, `
		SELECT rank, wallet_address, total_score, total_optik_earned, games_played, achievements_unlocked, highest_score
		FROM arcade_leaderboard
		ORDER BY rank ASC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []LeaderboardEntry{}
	for rows.Next() {
		var e LeaderboardEntry
		if err := rows.Scan(&e.Rank, &e.WalletAddress, &e.TotalScore, &e.TotalOptikEarned, &e.GamesPlayed, &e.AchievementsUnlocked, &e.HighestScore); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
