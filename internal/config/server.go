package config

import "github.com/caarlos0/env/v11"

type ServerConfig struct {
	PostgresDSN string `env:"POSTGRES_DSN,required,notEmpty"`
	HTTPAddr    string `env:"HTTP_ADDR" envDefault:":8080"`

	StripeWebhookSecret string `env:"STRIPE_WEBHOOK_SECRET"`
	AdminAPIKey         string `env:"ADMIN_API_KEY"`

	// OPTIK credited per USD paid when a checkout session carries no
	// explicit amount in its metadata.
	OptikPerUSD float64 `env:"OPTIK_PER_USD" envDefault:"20"`

	SessionRewardExpiryDays  int `env:"SESSION_REWARD_EXPIRY_DAYS" envDefault:"30"`
	PurchaseRewardExpiryDays int `env:"PURCHASE_REWARD_EXPIRY_DAYS" envDefault:"365"`

	PriceSource   string `env:"PRICE_SOURCE" envDefault:"static"`
	PriceEndpoint string `env:"PRICE_ENDPOINT"`

	LeaderboardRefreshMins int `env:"LEADERBOARD_REFRESH_MINUTES" envDefault:"15"`
}

func LoadServer() (ServerConfig, error) {
	var cfg ServerConfig
	err := env.Parse(&cfg)
	return cfg, err
}
