package store

import "time"

type ArcadeGame struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	RewardPerScore float64 `json:"reward_per_score"`
	MaxDailyReward float64 `json:"max_daily_reward"`
	Difficulty     string  `json:"difficulty"`
	IsActive       bool    `json:"is_active"`
}

type GameSession struct {
	ID              string
	WalletAddress   string
	GameID          string
	Score           int64
	DurationSeconds int
	OptikEarned     float64
	CreatedAt       time.Time
}

type PendingReward struct {
	ID            string
	WalletAddress string
	Amount        float64
	Source        string
	SourceID      string
	Claimed       bool
	ClaimedAt     *time.Time
	ExpiresAt     time.Time
	CreatedAt     time.Time
}

type RewardClaim struct {
	ID                   string
	WalletAddress        string
	Amount               float64
	RewardsClaimed       int
	TransactionSignature string
	Status               string
	CompletedAt          *time.Time
	CreatedAt            time.Time
}

type DailyStat struct {
	WalletAddress    string
	GameID           string
	Day              time.Time
	TotalOptikEarned float64
	GamesPlayed      int
	BestScore        int64
}

type Achievement struct {
	ID               int
	Name             string
	Description      string
	Icon             string
	RequirementType  string
	RequirementValue int64
	RewardOptik      float64
	IsActive         bool
}

type UserAchievement struct {
	WalletAddress string
	AchievementID int
	UnlockedAt    time.Time
	Claimed       bool
}

type LeaderboardEntry struct {
	Rank                 int
	WalletAddress        string
	TotalScore           int64
	TotalOptikEarned     float64
	GamesPlayed          int
	AchievementsUnlocked int
	HighestScore         int64
}

type Payment struct {
	ID                  string
	StripeSessionID     string
	StripePaymentIntent string
	AmountCents         int64
	Currency            string
	Status              string
	CreatedAt           time.Time
}
