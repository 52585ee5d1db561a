package httptransport

import (
	"encoding/json"
	"errors"
	"net/http"

	apparcade "optik-arcade/internal/app/arcade"
)

type ArcadeHandlers struct {
	svc *apparcade.Service
}

func NewArcadeHandlers(svc *apparcade.Service) *ArcadeHandlers {
	return &ArcadeHandlers{svc: svc}
}

func (h *ArcadeHandlers) SubmitSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body apparcade.SubmitSessionInput
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		metricSessionSubmitTotal.Add(1)
		resp, err := h.svc.SubmitSession(r.Context(), body)
		if err != nil {
			metricSessionSubmitErrors.Add(1)
			switch {
			case errors.Is(err, apparcade.ErrInvalidWallet):
				WriteHTTPError(w, http.StatusBadRequest, "invalid_wallet")
			case errors.Is(err, apparcade.ErrUnknownGame):
				WriteHTTPError(w, http.StatusBadRequest, "unknown_game")
			case errors.Is(err, apparcade.ErrInvalidRequest):
				WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
			default:
				WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			}
			return
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func (h *ArcadeHandlers) PendingRewards() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := h.svc.PendingRewards(r.Context(), r.URL.Query().Get("wallet"))
		if err != nil {
			if errors.Is(err, apparcade.ErrInvalidWallet) {
				WriteHTTPError(w, http.StatusBadRequest, "invalid_wallet")
				return
			}
			WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func (h *ArcadeHandlers) Claim() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body apparcade.ClaimInput
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		metricClaimTotal.Add(1)
		resp, err := h.svc.Claim(r.Context(), body)
		if err != nil {
			switch {
			case errors.Is(err, apparcade.ErrInvalidWallet):
				metricClaimErrors.Add(1)
				WriteHTTPError(w, http.StatusBadRequest, "invalid_wallet")
			case errors.Is(err, apparcade.ErrNothingToClaim):
				metricClaimEmpty.Add(1)
				WriteHTTPError(w, http.StatusBadRequest, "nothing_to_claim")
			default:
				metricClaimErrors.Add(1)
				WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			}
			return
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func (h *ArcadeHandlers) Sessions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, offset := ParsePagination(r)
		resp, err := h.svc.Sessions(r.Context(), r.URL.Query().Get("wallet"), limit, offset)
		if err != nil {
			if errors.Is(err, apparcade.ErrInvalidWallet) {
				WriteHTTPError(w, http.StatusBadRequest, "invalid_wallet")
				return
			}
			WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func (h *ArcadeHandlers) DailyStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := h.svc.DailyStats(r.Context(), r.URL.Query().Get("wallet"))
		if err != nil {
			if errors.Is(err, apparcade.ErrInvalidWallet) {
				WriteHTTPError(w, http.StatusBadRequest, "invalid_wallet")
				return
			}
			WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func (h *ArcadeHandlers) Achievements() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := h.svc.Achievements(r.Context(), r.URL.Query().Get("wallet"))
		if err != nil {
			if errors.Is(err, apparcade.ErrInvalidWallet) {
				WriteHTTPError(w, http.StatusBadRequest, "invalid_wallet")
				return
			}
			WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}
