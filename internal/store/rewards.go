package store

import (
	"context"
	"database/sql"
	"time"
)

// InsertPendingReward credits a wallet with an unclaimed reward, keyed by
// the originating event. The (source, source_id) unique constraint makes a
// replayed event a no-op: the second insert affects zero rows and the
// caller sees inserted=false rather than a double credit.
func (s *Store) InsertPendingReward(ctx context.Context, wallet string, amount float64, source, sourceID string, expiresAt time.Time) (bool, error) {
	res, err := s.DB.ExecContext(ctx, `
		INSERT INTO pending_rewards (id, wallet_address, amount, source, source_id, expires_at)
		VALUES ($1,$2,$3,$4,$5,$6)
		ON CONFLICT (source, source_id) DO NOTHING
	`, NewID(), wallet, amount, source, sourceID, expiresAt)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *Store) ListPendingRewards(ctx context.Context, wallet string) ([]PendingReward, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, wallet_address, amount, source, source_id, claimed, claimed_at, expires_at, created_at
		FROM pending_rewards
		WHERE wallet_address = $1 AND claimed = FALSE AND expires_at >= now()
		ORDER BY created_at ASC
	`, wallet)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []PendingReward{}
	for rows.Next() {
		var p PendingReward
		if err := rows.Scan(&p.ID, &p.WalletAddress, &p.Amount, &p.Source, &p.SourceID, &p.Claimed, &p.ClaimedAt, &p.ExpiresAt, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// ClaimRewards flips every claimable row for the wallet to claimed and
// records one claim-history entry, atomically. The conditional UPDATE is
// the select-and-mark step in one statement: a concurrent claim for the
// same wallet matches zero rows and gets ErrNothingToClaim, so each
// pending reward pays out at most once no matter how calls race or retry.
func (s *Store) ClaimRewards(ctx context.Context, wallet string) (*RewardClaim, error) {
	tx, err := s.DB.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	rows, err := tx.QueryContext(ctx, `
		UPDATE pending_rewards
		SET claimed = TRUE, claimed_at = now()
		WHERE wallet_address = $1 AND claimed = FALSE AND expires_at >= now()
		RETURNING amount
	`, wallet)
	if err != nil {
		return nil, err
	}
	total := 0.0
	count := 0
	for rows.Next() {
		var amount float64
		if err := rows.Scan(&amount); err != nil {
			rows.Close()
			return nil, err
		}
		total += amount
		count++
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()
	if count == 0 {
		return nil, ErrNothingToClaim
	}

	claim := &RewardClaim{
		ID:                   NewID(),
		WalletAddress:        wallet,
		Amount:               total,
		RewardsClaimed:       count,
		TransactionSignature: "mock_tx_" + NewID(),
		Status:               "completed",
	}
	var createdAt time.Time
	row := tx.QueryRowContext(ctx, `
		INSERT INTO reward_claims (id, wallet_address, amount, rewards_claimed, transaction_signature, status, completed_at)
		VALUES ($1,$2,$3,$4,$5,$6,now())
		RETURNING created_at
	`, claim.ID, claim.WalletAddress, claim.Amount, claim.RewardsClaimed, claim.TransactionSignature, claim.Status)
	if err := row.Scan(&createdAt); err != nil {
		return nil, err
	}
	claim.CreatedAt = createdAt

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return claim, nil
}

// RecordPayment writes the checkout audit row. Replayed webhook deliveries
// collide on stripe_session_id and are dropped.
func (s *Store) RecordPayment(ctx context.Context, p Payment) error {
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO payments (id, stripe_session_id, stripe_payment_intent, amount_cents, currency, status)
		VALUES ($1,$2,$3,$4,$5,$6)
		ON CONFLICT (stripe_session_id) DO NOTHING
	`, NewID(), p.StripeSessionID, p.StripePaymentIntent, p.AmountCents, p.Currency, p.Status)
	return err
}
