// Package payments turns Stripe checkout webhooks into purchase rewards.
// A completed checkout credits the buyer's wallet with a pending reward
// keyed by the Stripe session id, so redelivered webhooks never
// double-credit.
package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/webhook"

	"optik-arcade/internal/config"
	"optik-arcade/internal/store"
)

type Service struct {
	store *store.Store
	cfg   config.ServerConfig
}

func NewService(st *store.Store, cfg config.ServerConfig) *Service {
	return &Service{store: st, cfg: cfg}
}

type WebhookResult struct {
	Handled       bool
	Duplicate     bool
	WalletAddress string
	OptikAmount   float64
}

// HandleWebhook verifies the Stripe signature and processes the event.
// Events other than checkout.session.completed are acknowledged untouched.
func (s *Service) HandleWebhook(ctx context.Context, payload []byte, sigHeader string) (*WebhookResult, error) {
	event, err := webhook.ConstructEvent(payload, sigHeader, s.cfg.StripeWebhookSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
	if event.Type != "checkout.session.completed" {
		return &WebhookResult{}, nil
	}

	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return nil, fmt.Errorf("decode checkout session: %w", err)
	}
	return s.processCheckout(ctx, &sess)
}

func (s *Service) processCheckout(ctx context.Context, sess *stripe.CheckoutSession) (*WebhookResult, error) {
	// Payment Links carry the wallet in client_reference_id, API checkouts
	// in metadata.
	wallet := sess.ClientReferenceID
	if v, ok := sess.Metadata["walletAddress"]; ok && v != "" {
		wallet = v
	}
	if wallet == "" {
		return nil, ErrMissingWallet
	}

	amount := s.optikAmount(sess)

	paymentIntent := ""
	if sess.PaymentIntent != nil {
		paymentIntent = sess.PaymentIntent.ID
	}
	if err := s.store.RecordPayment(ctx, store.Payment{
		StripeSessionID:     sess.ID,
		StripePaymentIntent: paymentIntent,
		AmountCents:         sess.AmountTotal,
		Currency:            string(sess.Currency),
		Status:              "completed",
	}); err != nil {
		return nil, fmt.Errorf("record payment: %w", err)
	}

	expiry := time.Duration(s.cfg.PurchaseRewardExpiryDays) * 24 * time.Hour
	inserted, err := s.store.InsertPendingReward(ctx, wallet, amount, "purchase", sess.ID, time.Now().Add(expiry))
	if err != nil {
		return nil, fmt.Errorf("insert purchase reward: %w", err)
	}
	if !inserted {
		log.Info().Str("stripe_session", sess.ID).Msg("purchase already credited, skipping")
		return &WebhookResult{Handled: true, Duplicate: true, WalletAddress: wallet, OptikAmount: amount}, nil
	}

	log.Info().
		Str("wallet", wallet).
		Str("stripe_session", sess.ID).
		Float64("optik", amount).
		Msg("purchase credited")
	return &WebhookResult{Handled: true, WalletAddress: wallet, OptikAmount: amount}, nil
}

// optikAmount prefers the explicit metadata amount; Payment Links without
// metadata fall back to the configured OPTIK-per-USD conversion of the
// amount paid.
func (s *Service) optikAmount(sess *stripe.CheckoutSession) float64 {
	if v, ok := sess.Metadata["optikAmount"]; ok && v != "" {
		if amount, err := strconv.ParseFloat(v, 64); err == nil && amount > 0 {
			return amount
		}
	}
	return float64(sess.AmountTotal) / 100 * s.cfg.OptikPerUSD
}
