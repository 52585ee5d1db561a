package arcade

import "time"

type SubmitSessionInput struct {
	WalletAddress   string `json:"wallet_address"`
	GameID          string `json:"game_id"`
	Score           int64  `json:"score"`
	DurationSeconds int64  `json:"duration_seconds"`
}

type SubmitSessionResponse struct {
	SessionID   string  `json:"session_id"`
	OptikEarned float64 `json:"optik_earned"`
}

type PendingRewardItem struct {
	ID        string    `json:"id"`
	Amount    float64   `json:"amount"`
	Source    string    `json:"source"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

type PendingRewardsResponse struct {
	Items []PendingRewardItem `json:"items"`
	Total float64             `json:"total"`
}

type ClaimInput struct {
	WalletAddress string `json:"wallet_address"`
}

type ClaimResponse struct {
	Amount               float64 `json:"amount"`
	RewardsClaimed       int     `json:"rewards_claimed"`
	TransactionSignature string  `json:"transaction_signature"`
}

type SessionItem struct {
	ID              string    `json:"id"`
	GameID          string    `json:"game_id"`
	Score           int64     `json:"score"`
	DurationSeconds int64     `json:"duration_seconds"`
	OptikEarned     float64   `json:"optik_earned"`
	CreatedAt       time.Time `json:"created_at"`
}

type SessionsResponse struct {
	Items  []SessionItem `json:"items"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
}

type DailyStatItem struct {
	GameID           string  `json:"game_id"`
	Day              string  `json:"day"`
	TotalOptikEarned float64 `json:"total_optik_earned"`
	GamesPlayed      int64   `json:"games_played"`
	BestScore        int64   `json:"best_score"`
}

type DailyStatsResponse struct {
	Items []DailyStatItem `json:"items"`
}

type AchievementItem struct {
	ID               int        `json:"id"`
	Name             string     `json:"name"`
	Description      string     `json:"description"`
	Icon             string     `json:"icon"`
	RequirementType  string     `json:"requirement_type"`
	RequirementValue int64      `json:"requirement_value"`
	RewardOptik      float64    `json:"reward_optik"`
	Unlocked         bool       `json:"unlocked"`
	UnlockedAt       *time.Time `json:"unlocked_at,omitempty"`
}

type AchievementsResponse struct {
	Items []AchievementItem `json:"items"`
}
