package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Telegram struct {
		BotToken           string `yaml:"bot_token"`
		ChatID             string `yaml:"chat_id"`
		ReplaceColdMessage bool   `yaml:"replace_cold_message"`
	} `yaml:"telegram"`
	Feed struct {
		URL          string `yaml:"url"`
		ItemSelector string `yaml:"item_selector"`
		Window       int    `yaml:"window"`
	} `yaml:"feed"`
	Schedule struct {
		TickCron string `yaml:"tick_cron"`
		IdleCron string `yaml:"idle_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	HTTP struct {
		Addr string `yaml:"addr"`
	} `yaml:"http"`
	Log struct {
		Level  string `yaml:"level"`
		Pretty bool   `yaml:"pretty"`
	} `yaml:"log"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies .env and environment variable overrides.
func Load(path string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := firstEnv("TELEGRAM_BOT_TOKEN", "BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := firstEnv("TELEGRAM_CHAT_ID", "CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("FEED_URL"); v != "" {
		cfg.Feed.URL = v
	}
	if v := os.Getenv("FEED_WINDOW"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Feed.Window = n
		}
	}
	if v := os.Getenv("CRON_TICK"); v != "" {
		cfg.Schedule.TickCron = v
	}
	if v := os.Getenv("CRON_IDLE"); v != "" {
		cfg.Schedule.IdleCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("HTTP_ADDR"); v != "" {
		cfg.HTTP.Addr = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Feed.URL == "" {
		cfg.Feed.URL = "https://casinoscores.com/es/bac-bo/"
	}
	if cfg.Feed.ItemSelector == "" {
		cfg.Feed.ItemSelector = ".last-result-item"
	}
	if cfg.Feed.Window == 0 {
		cfg.Feed.Window = 20
	}
	if cfg.Schedule.TickCron == "" {
		cfg.Schedule.TickCron = "@every 6s"
	}
	if cfg.Schedule.IdleCron == "" {
		cfg.Schedule.IdleCron = "@every 30s"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/bacbo_sentinel.db"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return cfg, nil
}

// Validate checks that all fields hold usable values.
func (c *Config) Validate() error {
	if (c.Telegram.BotToken == "") != (c.Telegram.ChatID == "") {
		return fmt.Errorf("telegram.bot_token and telegram.chat_id must be set together")
	}
	if c.Feed.URL == "" {
		return fmt.Errorf("feed.url is required")
	}
	if c.Feed.Window < 4 || c.Feed.Window > 20 {
		return fmt.Errorf("feed.window must be between 4 and 20, got %d", c.Feed.Window)
	}
	if c.Schedule.TickCron == "" || c.Schedule.IdleCron == "" {
		return fmt.Errorf("schedule.tick_cron and schedule.idle_cron are required")
	}
	return nil
}

// TelegramEnabled reports whether chat delivery is configured.
func (c *Config) TelegramEnabled() bool {
	return c.Telegram.BotToken != "" && c.Telegram.ChatID != ""
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}
