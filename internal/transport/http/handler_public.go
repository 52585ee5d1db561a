package httptransport

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	apppublic "optik-arcade/internal/app/public"

	"github.com/go-chi/chi/v5"
)

type PublicHandlers struct {
	svc *apppublic.Service
}

func NewPublicHandlers(svc *apppublic.Service) *PublicHandlers {
	return &PublicHandlers{svc: svc}
}

func (h *PublicHandlers) Games() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := h.svc.Games(r.Context())
		if err != nil {
			WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func (h *PublicHandlers) Game() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := h.svc.Game(r.Context(), chi.URLParam(r, "game_id"))
		if errors.Is(err, apppublic.ErrGameNotFound) {
			WriteHTTPError(w, http.StatusNotFound, "game_not_found")
			return
		}
		if err != nil {
			WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func (h *PublicHandlers) Leaderboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if v := r.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				limit = n
			}
		}
		resp, err := h.svc.Leaderboard(r.Context(), limit)
		if err != nil {
			WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func (h *PublicHandlers) Price() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := h.svc.Price(r.Context(), r.URL.Query().Get("pair"))
		if err != nil {
			WriteHTTPError(w, http.StatusBadGateway, "price_unavailable")
			return
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}
