package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Requirement types the unlock check understands.
const (
	RequirementTotalSessions = "total_sessions"
	RequirementTotalScore    = "total_score"
	RequirementTotalOptik    = "total_optik"
	RequirementBestScore     = "best_score"
)

type AchievementStatus struct {
	Achievement
	Unlocked   bool
	UnlockedAt *time.Time
	Claimed    bool
}

func (s *Store) EnsureDefaultAchievements(ctx context.Context) error {
	defaults := []Achievement{
		{ID: 1, Name: "First Steps", Description: "Finish your first arcade session", Icon: "baby", RequirementType: RequirementTotalSessions, RequirementValue: 1, RewardOptik: 10},
		{ID: 2, Name: "Regular", Description: "Finish 50 sessions", Icon: "calendar", RequirementType: RequirementTotalSessions, RequirementValue: 50, RewardOptik: 100},
		{ID: 3, Name: "Score Hunter", Description: "Accumulate 10,000 points across all games", Icon: "target", RequirementType: RequirementTotalScore, RequirementValue: 10000, RewardOptik: 250},
		{ID: 4, Name: "High Roller", Description: "Score 1,000 in a single session", Icon: "flame", RequirementType: RequirementBestScore, RequirementValue: 1000, RewardOptik: 50},
		{ID: 5, Name: "Token Collector", Description: "Earn 1,000 OPTIK from the arcade", Icon: "coins", RequirementType: RequirementTotalOptik, RequirementValue: 1000, RewardOptik: 100},
	}
	for _, a := range defaults {
		_, err := s.DB.ExecContext(ctx, `
			INSERT INTO achievements (id, name, description, icon, requirement_type, requirement_value, reward_optik, is_active)
			VALUES ($1,$2,$3,$4,$5,$6,$7,TRUE)
			ON CONFLICT (id) DO NOTHING
		`, a.ID, a.Name, a.Description, a.Icon, a.RequirementType, a.RequirementValue, a.RewardOptik)
		if err != nil {
			return err
		}
	}
	return nil
}

// ListAchievements joins the static catalog against the wallet's unlock
// rows so every entry carries its unlock status.
func (s *Store) ListAchievements(ctx context.Context, wallet string) ([]AchievementStatus, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT a.id, a.name, a.description, a.icon, a.requirement_type, a.requirement_value, a.reward_optik, a.is_active,
		       ua.unlocked_at, COALESCE(ua.claimed, FALSE)
		FROM achievements a
		LEFT JOIN user_achievements ua
		  ON ua.achievement_id = a.id AND ua.wallet_address = $1
		WHERE a.is_active
		ORDER BY a.id
	`, wallet)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []AchievementStatus{}
	for rows.Next() {
		var st AchievementStatus
		if err := rows.Scan(&st.ID, &st.Name, &st.Description, &st.Icon, &st.RequirementType, &st.RequirementValue, &st.RewardOptik, &st.IsActive, &st.UnlockedAt, &st.Claimed); err != nil {
			return nil, err
		}
		st.Unlocked = st.UnlockedAt != nil
		out = append(out, st)
	}
	return out, rows.Err()
}

type walletTotals struct {
	Sessions   int64
	TotalScore int64
	TotalOptik float64
	BestScore  int64
}

func (s *Store) walletTotals(ctx context.Context, wallet string) (walletTotals, error) {
	var t walletTotals
	row := s.DB.QueryRowContext(ctx, `
		SELECT COUNT(1), COALESCE(SUM(score), 0), COALESCE(SUM(optik_earned), 0), COALESCE(MAX(score), 0)
		FROM game_sessions
		WHERE wallet_address = $1
	`, wallet)
	err := row.Scan(&t.Sessions, &t.TotalScore, &t.TotalOptik, &t.BestScore)
	return t, err
}

// EvaluateAchievements checks the wallet's cumulative totals against every
// active catalog entry and unlocks the ones newly crossed. The unlock row
// and its achievement pending reward commit in one transaction, so no
// unlock can ever exist without its reward; both inserts stay
// conflict-guarded so re-evaluation after every session is idempotent.
func (s *Store) EvaluateAchievements(ctx context.Context, wallet string, rewardExpiry time.Duration) ([]Achievement, error) {
	totals, err := s.walletTotals(ctx, wallet)
	if err != nil {
		return nil, err
	}
	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, name, description, icon, requirement_type, requirement_value, reward_optik, is_active
		FROM achievements WHERE is_active ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	catalog := []Achievement{}
	for rows.Next() {
		var a Achievement
		if err := rows.Scan(&a.ID, &a.Name, &a.Description, &a.Icon, &a.RequirementType, &a.RequirementValue, &a.RewardOptik, &a.IsActive); err != nil {
			rows.Close()
			return nil, err
		}
		catalog = append(catalog, a)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	tx, err := s.DB.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	unlocked := []Achievement{}
	for _, a := range catalog {
		if !requirementMet(a, totals) {
			continue
		}
		res, err := tx.ExecContext(ctx, `
			INSERT INTO user_achievements (wallet_address, achievement_id)
			VALUES ($1, $2)
			ON CONFLICT (wallet_address, achievement_id) DO NOTHING
		`, wallet, a.ID)
		if err != nil {
			return nil, err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return nil, err
		}
		if n == 0 {
			continue
		}
		sourceID := fmt.Sprintf("%d:%s", a.ID, wallet)
		_, err = tx.ExecContext(ctx, `
			INSERT INTO pending_rewards (id, wallet_address, amount, source, source_id, expires_at)
			VALUES ($1,$2,$3,'achievement',$4,$5)
			ON CONFLICT (source, source_id) DO NOTHING
		`, NewID(), wallet, a.RewardOptik, sourceID, time.Now().UTC().Add(rewardExpiry))
		if err != nil {
			return nil, err
		}
		unlocked = append(unlocked, a)
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return unlocked, nil
}

func requirementMet(a Achievement, t walletTotals) bool {
	switch a.RequirementType {
	case RequirementTotalSessions:
		return t.Sessions >= a.RequirementValue
	case RequirementTotalScore:
		return t.TotalScore >= a.RequirementValue
	case RequirementTotalOptik:
		return t.TotalOptik >= float64(a.RequirementValue)
	case RequirementBestScore:
		return t.BestScore >= a.RequirementValue
	}
	return false
}
