package httptransport

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	apppayments "optik-arcade/internal/app/payments"
)

// Stripe retries webhooks aggressively, so anything already processed
// must come back 200.
type WebhookHandlers struct {
	svc *apppayments.Service
}

func NewWebhookHandlers(svc *apppayments.Service) *WebhookHandlers {
	return &WebhookHandlers{svc: svc}
}

const maxWebhookBodyBytes = 65536

func (h *WebhookHandlers) Stripe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBodyBytes))
		if err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_body")
			return
		}
		metricWebhookTotal.Add(1)
		res, err := h.svc.HandleWebhook(r.Context(), payload, r.Header.Get("Stripe-Signature"))
		if err != nil {
			metricWebhookErrors.Add(1)
			switch {
			case errors.Is(err, apppayments.ErrInvalidSignature):
				WriteHTTPError(w, http.StatusBadRequest, "invalid_signature")
			case errors.Is(err, apppayments.ErrMissingWallet):
				WriteHTTPError(w, http.StatusBadRequest, "missing_wallet")
			default:
				WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			}
			return
		}
		if res.Duplicate {
			metricWebhookDuplicate.Add(1)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"received": true, "handled": res.Handled})
	}
}
