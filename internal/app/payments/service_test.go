package payments

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stripe/stripe-go/v79"

	"optik-arcade/internal/config"
	"optik-arcade/internal/testutil"
)

const (
	testSecret = "whsec_test_secret"
	testWallet = "7f9kQmPxVbNcR2tYwLs8dGhJ4uE6aZ3vXnMoB5CiKrT1"
)

func signPayload(payload []byte, secret string) string {
	ts := time.Now().Unix()
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", ts, payload)
	return fmt.Sprintf("t=%d,v1=%s", ts, hex.EncodeToString(mac.Sum(nil)))
}

func checkoutEvent(sessionID, wallet, optikAmount string, amountTotal int64) []byte {
	meta := "{}"
	if wallet != "" || optikAmount != "" {
		meta = "{"
		if wallet != "" {
			meta += fmt.Sprintf("%q:%q", "walletAddress", wallet)
		}
		if optikAmount != "" {
			if wallet != "" {
				meta += ","
			}
			meta += fmt.Sprintf("%q:%q", "optikAmount", optikAmount)
		}
		meta += "}"
	}
	return []byte(fmt.Sprintf(`{
		"api_version": %q,
		"type": "checkout.session.completed",
		"data": {
			"object": {
				"id": %q,
				"amount_total": %d,
				"currency": "usd",
				"metadata": %s
			}
		}
	}`, stripe.APIVersion, sessionID, amountTotal, meta))
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	st, cleanup := testutil.OpenTestStore(t)
	t.Cleanup(cleanup)
	cfg := config.ServerConfig{
		StripeWebhookSecret:      testSecret,
		OptikPerUSD:              20,
		PurchaseRewardExpiryDays: 365,
	}
	return NewService(st, cfg)
}

func TestWebhookRejectsBadSignature(t *testing.T) {
	svc := newTestService(t)
	payload := checkoutEvent("cs_sig_1", testWallet, "500", 2500)
	_, err := svc.HandleWebhook(context.Background(), payload, signPayload(payload, "whsec_wrong"))
	if !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("err = %v, want ErrInvalidSignature", err)
	}
}

func TestWebhookCreditsPurchase(t *testing.T) {
	svc := newTestService(t)
	payload := checkoutEvent("cs_credit_1", testWallet, "500", 2500)

	res, err := svc.HandleWebhook(context.Background(), payload, signPayload(payload, testSecret))
	if err != nil {
		t.Fatalf("HandleWebhook: %v", err)
	}
	if !res.Handled || res.Duplicate {
		t.Fatalf("result = %+v, want handled non-duplicate", res)
	}
	if res.OptikAmount != 500 {
		t.Fatalf("amount = %v, want metadata amount 500", res.OptikAmount)
	}

	pending, err := svc.store.ListPendingRewards(context.Background(), testWallet)
	if err != nil {
		t.Fatalf("ListPendingRewards: %v", err)
	}
	if len(pending) != 1 || pending[0].Source != "purchase" || pending[0].SourceID != "cs_credit_1" {
		t.Fatalf("unexpected pending rewards %+v", pending)
	}
}

func TestWebhookRedeliveryIsNoop(t *testing.T) {
	svc := newTestService(t)
	payload := checkoutEvent("cs_dup_1", testWallet, "500", 2500)

	if _, err := svc.HandleWebhook(context.Background(), payload, signPayload(payload, testSecret)); err != nil {
		t.Fatalf("first delivery: %v", err)
	}
	res, err := svc.HandleWebhook(context.Background(), payload, signPayload(payload, testSecret))
	if err != nil {
		t.Fatalf("redelivery: %v", err)
	}
	if !res.Duplicate {
		t.Fatalf("redelivery should be flagged duplicate")
	}
	pending, err := svc.store.ListPendingRewards(context.Background(), testWallet)
	if err != nil {
		t.Fatalf("ListPendingRewards: %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("pending rows = %d after redelivery, want 1", len(pending))
	}
}

func TestWebhookFallbackConversion(t *testing.T) {
	svc := newTestService(t)
	// $25 at 20 OPTIK per USD.
	payload := checkoutEvent("cs_conv_1", testWallet, "", 2500)

	res, err := svc.HandleWebhook(context.Background(), payload, signPayload(payload, testSecret))
	if err != nil {
		t.Fatalf("HandleWebhook: %v", err)
	}
	if res.OptikAmount != 500 {
		t.Fatalf("fallback amount = %v, want 500", res.OptikAmount)
	}
}

func TestWebhookMissingWallet(t *testing.T) {
	svc := newTestService(t)
	payload := checkoutEvent("cs_nowallet_1", "", "500", 2500)

	_, err := svc.HandleWebhook(context.Background(), payload, signPayload(payload, testSecret))
	if !errors.Is(err, ErrMissingWallet) {
		t.Fatalf("err = %v, want ErrMissingWallet", err)
	}
}

func TestWebhookIgnoresOtherEvents(t *testing.T) {
	svc := newTestService(t)
	payload := []byte(fmt.Sprintf(`{"api_version":%q,"type":"invoice.paid","data":{"object":{}}}`, stripe.APIVersion))

	res, err := svc.HandleWebhook(context.Background(), payload, signPayload(payload, testSecret))
	if err != nil {
		t.Fatalf("HandleWebhook: %v", err)
	}
	if res.Handled {
		t.Fatalf("unrelated event should not be handled")
	}
}
