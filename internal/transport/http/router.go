package httptransport

import (
	"expvar"
	"fmt"
	"net/http"
	"sort"
	"strings"

	apparcade "optik-arcade/internal/app/arcade"
	apppayments "optik-arcade/internal/app/payments"
	apppublic "optik-arcade/internal/app/public"
	"optik-arcade/internal/config"
	"optik-arcade/internal/oracle"
	"optik-arcade/internal/store"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

func NewRouter(st *store.Store, cfg config.ServerConfig, prices oracle.PriceSource) *chi.Mux {
	arcadeSvc := apparcade.NewService(st, cfg)
	publicSvc := apppublic.NewService(st, prices)
	paymentsSvc := apppayments.NewService(st, cfg)

	arcadeHandlers := NewArcadeHandlers(arcadeSvc)
	publicHandlers := NewPublicHandlers(publicSvc)
	webhookHandlers := NewWebhookHandlers(paymentsSvc)
	adminHandlers := NewAdminHandlers(st)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)

	r.With(APILogMiddleware()).Get("/healthz", adminHandlers.Health())

	r.Route("/api", func(r chi.Router) {
		r.Use(APILogMiddleware())
		r.Get("/public/games", publicHandlers.Games())
		r.Get("/public/games/{game_id}", publicHandlers.Game())
		r.Get("/public/leaderboard", publicHandlers.Leaderboard())
		r.Get("/public/price", publicHandlers.Price())

		r.Post("/arcade/sessions", arcadeHandlers.SubmitSession())
		r.Get("/arcade/sessions", arcadeHandlers.Sessions())
		r.Get("/arcade/rewards", arcadeHandlers.PendingRewards())
		r.Post("/arcade/rewards/claim", arcadeHandlers.Claim())
		r.Get("/arcade/stats/daily", arcadeHandlers.DailyStats())
		r.Get("/arcade/achievements", arcadeHandlers.Achievements())

		r.Post("/webhooks/stripe", webhookHandlers.Stripe())

		r.Group(func(r chi.Router) {
			r.Use(AdminAuthMiddleware(cfg.AdminAPIKey))
			r.Post("/admin/leaderboard/refresh", adminHandlers.RefreshLeaderboard())

			r.Route("/debug", func(r chi.Router) {
				r.Use(BodyCaptureMiddleware(4096))
				r.Get("/vars", expvar.Handler().ServeHTTP)
			})
		})
	})

	return r
}

func LogRoutes(r chi.Router) {
	type routeDef struct {
		Method string
		Path   string
	}
	routes := make([]routeDef, 0, 64)
	err := chi.Walk(r, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		routes = append(routes, routeDef{Method: method, Path: route})
		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("walk routes failed")
		return
	}
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path == routes[j].Path {
			return routes[i].Method < routes[j].Method
		}
		return routes[i].Path < routes[j].Path
	})
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Registered routes (%d):\n", len(routes)))
	for _, rt := range routes {
		b.WriteString(fmt.Sprintf("  %-6s %s\n", rt.Method, rt.Path))
	}
	fmt.Print(b.String())
}
