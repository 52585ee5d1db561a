package httptransport

import (
	"encoding/json"
	"net/http"

	"optik-arcade/internal/store"
)

type AdminHandlers struct {
	store *store.Store
}

func NewAdminHandlers(st *store.Store) *AdminHandlers {
	return &AdminHandlers{store: st}
}

func (h *AdminHandlers) Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.store.Ping(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(map[string]any{"ok": false, "db": "down"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true, "db": "up"})
	}
}

// RefreshLeaderboard forces a snapshot rebuild outside the scheduled
// interval.
func (h *AdminHandlers) RefreshLeaderboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.store.RefreshLeaderboard(r.Context()); err != nil {
			WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true})
	}
}
