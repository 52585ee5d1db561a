// Package arcade is the wallet-facing reward pipeline: session submission,
// pending rewards, claims, daily stats and achievements.
package arcade

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"optik-arcade/internal/config"
	"optik-arcade/internal/reward"
	"optik-arcade/internal/store"
)

type Service struct {
	store *store.Store
	cfg   config.ServerConfig
}

func NewService(st *store.Store, cfg config.ServerConfig) *Service {
	return &Service{store: st, cfg: cfg}
}

const base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// ValidWallet reports whether s looks like a Solana wallet address:
// base58, 32 to 44 characters. Ownership is verified by the wallet layer
// above; this only rejects garbage input.
func ValidWallet(s string) bool {
	if len(s) < 32 || len(s) > 44 {
		return false
	}
	for _, r := range s {
		if !strings.ContainsRune(base58Alphabet, r) {
			return false
		}
	}
	return true
}

// SubmitSession records one finished play-through and returns the credited
// amount. Achievement evaluation runs after the session commits; a failure
// there is logged and does not fail the submission.
func (s *Service) SubmitSession(ctx context.Context, in SubmitSessionInput) (*SubmitSessionResponse, error) {
	if !ValidWallet(in.WalletAddress) {
		return nil, ErrInvalidWallet
	}
	if _, err := reward.ParseGame(in.GameID); err != nil {
		return nil, ErrUnknownGame
	}
	if in.Score < 0 || in.DurationSeconds < 0 {
		return nil, ErrInvalidRequest
	}

	expiry := time.Duration(s.cfg.SessionRewardExpiryDays) * 24 * time.Hour
	sess, err := s.store.RecordSession(ctx, in.WalletAddress, in.GameID, in.Score, int(in.DurationSeconds), expiry)
	if err != nil {
		if errors.Is(err, store.ErrUnknownGame) {
			return nil, ErrUnknownGame
		}
		return nil, err
	}

	if unlocked, err := s.store.EvaluateAchievements(ctx, in.WalletAddress, expiry); err != nil {
		log.Error().Err(err).Str("wallet", in.WalletAddress).Msg("achievement evaluation failed")
	} else {
		for _, a := range unlocked {
			log.Info().Str("wallet", in.WalletAddress).Str("achievement", a.Name).Msg("achievement unlocked")
		}
	}

	return &SubmitSessionResponse{SessionID: sess.ID, OptikEarned: sess.OptikEarned}, nil
}

func (s *Service) PendingRewards(ctx context.Context, wallet string) (*PendingRewardsResponse, error) {
	if !ValidWallet(wallet) {
		return nil, ErrInvalidWallet
	}
	items, err := s.store.ListPendingRewards(ctx, wallet)
	if err != nil {
		return nil, err
	}
	resp := &PendingRewardsResponse{Items: make([]PendingRewardItem, 0, len(items))}
	for _, it := range items {
		resp.Total += it.Amount
		resp.Items = append(resp.Items, PendingRewardItem{
			ID:        it.ID,
			Amount:    it.Amount,
			Source:    it.Source,
			ExpiresAt: it.ExpiresAt,
			CreatedAt: it.CreatedAt,
		})
	}
	return resp, nil
}

// Claim marks every claimable pending reward for the wallet in one shot.
func (s *Service) Claim(ctx context.Context, in ClaimInput) (*ClaimResponse, error) {
	if !ValidWallet(in.WalletAddress) {
		return nil, ErrInvalidWallet
	}
	claim, err := s.store.ClaimRewards(ctx, in.WalletAddress)
	if err != nil {
		if errors.Is(err, store.ErrNothingToClaim) {
			return nil, ErrNothingToClaim
		}
		return nil, err
	}
	return &ClaimResponse{
		Amount:               claim.Amount,
		RewardsClaimed:       claim.RewardsClaimed,
		TransactionSignature: claim.TransactionSignature,
	}, nil
}

func (s *Service) Sessions(ctx context.Context, wallet string, limit, offset int) (*SessionsResponse, error) {
	if !ValidWallet(wallet) {
		return nil, ErrInvalidWallet
	}
	items, err := s.store.ListSessions(ctx, wallet, limit+offset)
	if err != nil {
		return nil, err
	}
	if offset < len(items) {
		items = items[offset:]
	} else {
		items = nil
	}
	resp := &SessionsResponse{Items: make([]SessionItem, 0, len(items)), Limit: limit, Offset: offset}
	for _, it := range items {
		resp.Items = append(resp.Items, SessionItem{
			ID:              it.ID,
			GameID:          it.GameID,
			Score:           it.Score,
			DurationSeconds: int64(it.DurationSeconds),
			OptikEarned:     it.OptikEarned,
			CreatedAt:       it.CreatedAt,
		})
	}
	return resp, nil
}

func (s *Service) DailyStats(ctx context.Context, wallet string) (*DailyStatsResponse, error) {
	if !ValidWallet(wallet) {
		return nil, ErrInvalidWallet
	}
	items, err := s.store.ListDailyStats(ctx, wallet)
	if err != nil {
		return nil, err
	}
	resp := &DailyStatsResponse{Items: make([]DailyStatItem, 0, len(items))}
	for _, it := range items {
		resp.Items = append(resp.Items, DailyStatItem{
			GameID:           it.GameID,
			Day:              it.Day.Format("2006-01-02"),
			TotalOptikEarned: it.TotalOptikEarned,
			GamesPlayed:      int64(it.GamesPlayed),
			BestScore:        it.BestScore,
		})
	}
	return resp, nil
}

func (s *Service) Achievements(ctx context.Context, wallet string) (*AchievementsResponse, error) {
	if !ValidWallet(wallet) {
		return nil, ErrInvalidWallet
	}
	items, err := s.store.ListAchievements(ctx, wallet)
	if err != nil {
		return nil, err
	}
	resp := &AchievementsResponse{Items: make([]AchievementItem, 0, len(items))}
	for _, it := range items {
		resp.Items = append(resp.Items, AchievementItem{
			ID:               it.ID,
			Name:             it.Name,
			Description:      it.Description,
			Icon:             it.Icon,
			RequirementType:  it.RequirementType,
			RequirementValue: it.RequirementValue,
			RewardOptik:      it.RewardOptik,
			Unlocked:         it.Unlocked,
			UnlockedAt:       it.UnlockedAt,
		})
	}
	return resp, nil
}
