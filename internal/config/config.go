package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

const (
	LogFormatText = "text"
	LogFormatJSON = "json"

	// MaxDigestSize keeps a digest well inside one Telegram message.
	MaxDigestSize = 20
)

type Config struct {
	App     App
	Log     Log
	HTTP    HTTP
	Metrics Metrics
	Probe   Probe
	Tarkov  Tarkov
	Catalog Catalog
	Bot     Bot
}

type App struct {
	Name    string `env:"APP_NAME" envDefault:"tarkov-trader"`
	Version string `env:"APP_VERSION" envDefault:"dev"`
}

type Log struct {
	Level          slog.Level `env:"LOG_LEVEL" envDefault:"info"`
	Format         string     `env:"LOG_FORMAT" envDefault:"text"`
	FieldMaxLength int        `env:"LOG_FIELD_MAX_LENGTH" envDefault:"4096"`
}

type HTTP struct {
	ListenAddress   string        `env:"HTTP_LISTEN_ADDRESS" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s"`
}

type Metrics struct {
	ListenAddress string `env:"METRICS_LISTEN_ADDRESS" envDefault:":9090"`
}

type Probe struct {
	ListenAddress string `env:"PROBE_LISTEN_ADDRESS" envDefault:":8081"`
}

type Tarkov struct {
	APIURL string `env:"TARKOV_API_URL" envDefault:"https://api.tarkov.dev/graphql"`
	// Timeout of one provider request. Zero means no timeout.
	Timeout time.Duration `env:"TARKOV_TIMEOUT" envDefault:"0s"`
}

type Catalog struct {
	// RefreshInterval enables periodic reloads when positive.
	RefreshInterval time.Duration `env:"CATALOG_REFRESH_INTERVAL" envDefault:"0s"`
	TrendTTL        time.Duration `env:"CATALOG_TREND_TTL" envDefault:"10m"`
}

type Bot struct {
	// Token enables the Telegram bot and notifier when set.
	Token       string `env:"BOT_TOKEN" json:"-"`
	ChatID      int64  `env:"BOT_CHAT_ID"`
	AdminChatID int64  `env:"BOT_ADMIN_CHAT_ID"`
	DigestSize  int    `env:"BOT_DIGEST_SIZE" envDefault:"5"`
}

func (b Bot) Enabled() bool {
	return b.Token != ""
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	if config.Log.Format != LogFormatText && config.Log.Format != LogFormatJSON {
		return Config{}, fmt.Errorf("unknown LOG_FORMAT %q", config.Log.Format)
	}

	config.Bot.DigestSize = min(config.Bot.DigestSize, MaxDigestSize)

	return config, nil
}
