package main

import (
	"context"
	"net/http"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"optik-arcade/internal/config"
	"optik-arcade/internal/logging"
	"optik-arcade/internal/oracle"
	"optik-arcade/internal/store"
	httptransport "optik-arcade/internal/transport/http"
)

func main() {
	_ = godotenv.Load()

	appCfg, err := config.LoadApp()
	if err != nil {
		panic(err)
	}
	logging.Init(appCfg.Log)
	cfg := appCfg.Server

	st, err := store.New(cfg.PostgresDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("store init failed")
	}
	if err := st.Ping(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("db ping failed")
	}

	if err := st.EnsureDefaultGames(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("ensure default games failed")
	}
	if err := st.EnsureDefaultAchievements(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("ensure default achievements failed")
	}

	prices, err := oracle.FromConfig(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("price source init failed")
	}

	scheduler := startLeaderboardRefresher(st, cfg)
	defer func() { _ = scheduler.Shutdown() }()

	r := httptransport.NewRouter(st, cfg, prices)
	httptransport.LogRoutes(r)

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	log.Info().Str("addr", cfg.HTTPAddr).Msg("http listening")
	log.Fatal().Err(server.ListenAndServe()).Msg("server stopped")
}

// startLeaderboardRefresher rebuilds the ranked snapshot on a fixed
// interval, with one immediate run so a fresh deploy does not serve an
// empty board until the first tick.
func startLeaderboardRefresher(st *store.Store, cfg config.ServerConfig) gocron.Scheduler {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		log.Fatal().Err(err).Msg("scheduler init failed")
	}
	interval := time.Duration(cfg.LeaderboardRefreshMins) * time.Minute
	if interval <= 0 {
		interval = 15 * time.Minute
	}
	_, err = scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := st.RefreshLeaderboard(ctx); err != nil {
				log.Error().Err(err).Msg("leaderboard refresh failed")
				return
			}
			log.Debug().Msg("leaderboard refreshed")
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("schedule leaderboard refresh failed")
	}
	scheduler.Start()
	return scheduler
}
