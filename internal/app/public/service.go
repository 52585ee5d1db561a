// Package public serves the unauthenticated read side: the game catalog,
// the leaderboard snapshot and the token price.
package public

import (
	"context"
	"errors"

	"optik-arcade/internal/oracle"
	"optik-arcade/internal/store"
)

type Service struct {
	store  *store.Store
	prices oracle.PriceSource
}

const leaderboardMaxRows = 100

func NewService(st *store.Store, prices oracle.PriceSource) *Service {
	return &Service{store: st, prices: prices}
}

func (s *Service) Games(ctx context.Context) (*GamesResponse, error) {
	items, err := s.store.ListGames(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]GameItem, 0, len(items))
	for _, it := range items {
		out = append(out, GameItem{
			ID:             it.ID,
			Name:           it.Name,
			Description:    it.Description,
			RewardPerScore: it.RewardPerScore,
			MaxDailyReward: it.MaxDailyReward,
			Difficulty:     it.Difficulty,
		})
	}
	return &GamesResponse{Items: out}, nil
}

func (s *Service) Game(ctx context.Context, id string) (*GameItem, error) {
	if id == "" {
		return nil, ErrInvalidRequest
	}
	g, err := s.store.GetGame(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrGameNotFound
	}
	if err != nil {
		return nil, err
	}
	return &GameItem{
		ID:             g.ID,
		Name:           g.Name,
		Description:    g.Description,
		RewardPerScore: g.RewardPerScore,
		MaxDailyReward: g.MaxDailyReward,
		Difficulty:     g.Difficulty,
	}, nil
}

func (s *Service) Leaderboard(ctx context.Context, limit int) (*LeaderboardResponse, error) {
	if limit <= 0 || limit > leaderboardMaxRows {
		limit = leaderboardMaxRows
	}
	items, err := s.store.ListLeaderboard(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]LeaderboardItem, 0, len(items))
	for _, it := range items {
		out = append(out, LeaderboardItem{
			Rank:                 it.Rank,
			WalletAddress:        it.WalletAddress,
			TotalScore:           it.TotalScore,
			TotalOptikEarned:     it.TotalOptikEarned,
			GamesPlayed:          it.GamesPlayed,
			AchievementsUnlocked: it.AchievementsUnlocked,
			HighestScore:         it.HighestScore,
		})
	}
	return &LeaderboardResponse{Items: out}, nil
}

func (s *Service) Price(ctx context.Context, pair string) (*oracle.Quote, error) {
	if pair == "" {
		pair = "OPTIK/USD"
	}
	return s.prices.Price(ctx, pair)
}
