package public

type GameItem struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	RewardPerScore float64 `json:"reward_per_score"`
	MaxDailyReward float64 `json:"max_daily_reward"`
	Difficulty     string  `json:"difficulty"`
}

type GamesResponse struct {
	Items []GameItem `json:"items"`
}

type LeaderboardItem struct {
	Rank                 int     `json:"rank"`
	WalletAddress        string  `json:"wallet_address"`
	TotalScore           int64   `json:"total_score"`
	TotalOptikEarned     float64 `json:"total_optik_earned"`
	GamesPlayed          int     `json:"games_played"`
	AchievementsUnlocked int     `json:"achievements_unlocked"`
	HighestScore         int64   `json:"highest_score"`
}

type LeaderboardResponse struct {
	Items []LeaderboardItem `json:"items"`
}
