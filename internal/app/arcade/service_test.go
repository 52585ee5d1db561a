package arcade

import (
	"context"
	"errors"
	"strings"
	"testing"

	"optik-arcade/internal/config"
	"optik-arcade/internal/testutil"
)

const testWallet = "7f9kQmPxVbNcR2tYwLs8dGhJ4uE6aZ3vXnMoB5CiKrT1"

func TestValidWallet(t *testing.T) {
	tests := []struct {
		name   string
		wallet string
		want   bool
	}{
		{"valid", testWallet, true},
		{"too short", "abc", false},
		{"too long", strings.Repeat("A", 45), false},
		{"zero is not base58", "0" + testWallet[1:], false},
		{"uppercase O is not base58", "O" + testWallet[1:], false},
		{"lowercase l is not base58", "l" + testWallet[1:], false},
		{"whitespace", testWallet[:43] + " ", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidWallet(tt.wallet); got != tt.want {
				t.Errorf("ValidWallet(%q) = %v, want %v", tt.wallet, got, tt.want)
			}
		})
	}
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	st, cleanup := testutil.OpenTestStore(t)
	t.Cleanup(cleanup)
	if err := st.EnsureDefaultGames(context.Background()); err != nil {
		t.Fatalf("seed games: %v", err)
	}
	if err := st.EnsureDefaultAchievements(context.Background()); err != nil {
		t.Fatalf("seed achievements: %v", err)
	}
	return NewService(st, config.ServerConfig{
		SessionRewardExpiryDays:  30,
		PurchaseRewardExpiryDays: 365,
	})
}

func TestSubmitSessionValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	cases := []struct {
		name string
		in   SubmitSessionInput
		want error
	}{
		{"bad wallet", SubmitSessionInput{WalletAddress: "nope", GameID: "snake", Score: 10}, ErrInvalidWallet},
		{"bad game", SubmitSessionInput{WalletAddress: testWallet, GameID: "pong", Score: 10}, ErrUnknownGame},
		{"negative score", SubmitSessionInput{WalletAddress: testWallet, GameID: "snake", Score: -1}, ErrInvalidRequest},
		{"negative duration", SubmitSessionInput{WalletAddress: testWallet, GameID: "snake", Score: 1, DurationSeconds: -5}, ErrInvalidRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.SubmitSession(ctx, tc.in)
			if !errors.Is(err, tc.want) {
				t.Errorf("err = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestSubmitClaimRoundTrip(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	sub, err := svc.SubmitSession(ctx, SubmitSessionInput{
		WalletAddress:   testWallet,
		GameID:          "flappy",
		Score:           10,
		DurationSeconds: 42,
	})
	if err != nil {
		t.Fatalf("SubmitSession: %v", err)
	}
	if sub.OptikEarned != 20 {
		t.Fatalf("earned = %v, want 20 at 2 OPTIK per point", sub.OptikEarned)
	}

	// The first session also unlocks First Steps, so two rewards are
	// pending: 20 from the session plus the 10 OPTIK achievement bonus.
	pending, err := svc.PendingRewards(ctx, testWallet)
	if err != nil {
		t.Fatalf("PendingRewards: %v", err)
	}
	if len(pending.Items) != 2 || pending.Total != 30 {
		t.Fatalf("pending = %+v, want 2 items totalling 30", pending)
	}

	claim, err := svc.Claim(ctx, ClaimInput{WalletAddress: testWallet})
	if err != nil {
		t.Fatalf("Claim: %v", err)
	}
	if claim.Amount != 30 || claim.RewardsClaimed != 2 {
		t.Fatalf("claim = %+v, want amount 30 over 2 rewards", claim)
	}
	if !strings.HasPrefix(claim.TransactionSignature, "mock_tx_") {
		t.Fatalf("signature = %q", claim.TransactionSignature)
	}

	if _, err := svc.Claim(ctx, ClaimInput{WalletAddress: testWallet}); !errors.Is(err, ErrNothingToClaim) {
		t.Fatalf("second claim err = %v, want ErrNothingToClaim", err)
	}
}

func TestAchievementsListing(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	before, err := svc.Achievements(ctx, testWallet)
	if err != nil {
		t.Fatalf("Achievements: %v", err)
	}
	for _, a := range before.Items {
		if a.Unlocked {
			t.Fatalf("achievement %q unlocked before any session", a.Name)
		}
	}

	if _, err := svc.SubmitSession(ctx, SubmitSessionInput{
		WalletAddress: testWallet, GameID: "snake", Score: 100, DurationSeconds: 30,
	}); err != nil {
		t.Fatalf("SubmitSession: %v", err)
	}

	after, err := svc.Achievements(ctx, testWallet)
	if err != nil {
		t.Fatalf("Achievements: %v", err)
	}
	var firstSteps *AchievementItem
	for i := range after.Items {
		if after.Items[i].Name == "First Steps" {
			firstSteps = &after.Items[i]
		}
	}
	if firstSteps == nil || !firstSteps.Unlocked || firstSteps.UnlockedAt == nil {
		t.Fatalf("First Steps should be unlocked after one session: %+v", firstSteps)
	}
}

func TestDailyStatsAggregates(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for _, score := range []int64{50, 120, 80} {
		if _, err := svc.SubmitSession(ctx, SubmitSessionInput{
			WalletAddress: testWallet, GameID: "snake", Score: score, DurationSeconds: 20,
		}); err != nil {
			t.Fatalf("SubmitSession: %v", err)
		}
	}

	stats, err := svc.DailyStats(ctx, testWallet)
	if err != nil {
		t.Fatalf("DailyStats: %v", err)
	}
	if len(stats.Items) != 1 {
		t.Fatalf("stats rows = %d, want 1", len(stats.Items))
	}
	got := stats.Items[0]
	if got.GamesPlayed != 3 || got.BestScore != 120 {
		t.Fatalf("stats = %+v, want 3 games best 120", got)
	}
	if got.TotalOptikEarned != 125 {
		t.Fatalf("earned = %v, want 125 at 0.5 per point", got.TotalOptikEarned)
	}
}
