package store

import (
	"context"
	"database/sql"
	"errors"

	"optik-arcade/internal/reward"
)

func (s *Store) ListGames(ctx context.Context) ([]ArcadeGame, error) {
	rows, err := s.DB.QueryContext(ctx, `SELECT id, name, description, reward_per_score, max_daily_reward, difficulty, is_active FROM arcade_games WHERE is_active ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []ArcadeGame{}
	for rows.Next() {
		var g ArcadeGame
		if err := rows.Scan(&g.ID, &g.Name, &g.Description, &g.RewardPerScore, &g.MaxDailyReward, &g.Difficulty, &g.IsActive); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (s *Store) GetGame(ctx context.Context, id string) (*ArcadeGame, error) {
	row := s.DB.QueryRowContext(ctx, `SELECT id, name, description, reward_per_score, max_daily_reward, difficulty, is_active FROM arcade_games WHERE id = $1`, id)
	var g ArcadeGame
	if err := row.Scan(&g.ID, &g.Name, &g.Description, &g.RewardPerScore, &g.MaxDailyReward, &g.Difficulty, &g.IsActive); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &g, nil
}

func (s *Store) CountGames(ctx context.Context) (int, error) {
	row := s.DB.QueryRowContext(ctx, `SELECT COUNT(1) FROM arcade_games`)
	var c int
	if err := row.Scan(&c); err != nil {
		return 0, err
	}
	return c, nil
}

// EnsureDefaultGames seeds the catalog on first boot. Rates and caps live
// here, not in the game engines.
func (s *Store) EnsureDefaultGames(ctx context.Context) error {
	c, err := s.CountGames(ctx)
	if err != nil {
		return err
	}
	if c > 0 {
		return nil
	}
	defaults := []ArcadeGame{
		{ID: string(reward.GameSnake), Name: "Neon Snake", Description: "Classic snake, 10 points per food", RewardPerScore: 0.5, MaxDailyReward: 500, Difficulty: "easy"},
		{ID: string(reward.GameFlappy), Name: "Flappy OptiK", Description: "One-tap pipe dodging", RewardPerScore: 2, MaxDailyReward: 1000, Difficulty: "medium"},
		{ID: string(reward.Game2048), Name: "2048 Crypto", Description: "Merge tiles, score-based rewards", RewardPerScore: 0.1, MaxDailyReward: 500, Difficulty: "medium"},
		{ID: string(reward.GameTap), Name: "Tap to Earn", Description: "Tap mining with upgrades", RewardPerScore: 0.01, MaxDailyReward: 250, Difficulty: "easy"},
	}
	for _, g := range defaults {
		_, err := s.DB.ExecContext(ctx, `
			INSERT INTO arcade_games (id, name, description, reward_per_score, max_daily_reward, difficulty, is_active)
			VALUES ($1,$2,$3,$4,$5,$6,TRUE)
			ON CONFLICT (id) DO NOTHING
		`, g.ID, g.Name, g.Description, g.RewardPerScore, g.MaxDailyReward, g.Difficulty)
		if err != nil {
			return err
		}
	}
	return nil
}
