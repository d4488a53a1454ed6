package core

import (
	"fmt"
	"os"
	"strings"
)

// Config carries every runtime setting; loaded once in main and passed
// explicitly to services and scheduler jobs.
type Config struct {
	DatabaseURL     string
	XBearerToken    string
	OCRAPIKey       string
	DiscordToken    string
	PicksChannelID  string
	CapperUsernames []string
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		XBearerToken:   os.Getenv("X_BEARER_TOKEN"),
		OCRAPIKey:      os.Getenv("OCR_API_KEY"),
		DiscordToken:   os.Getenv("DISCORD_BOT_TOKEN"),
		PicksChannelID: os.Getenv("PICKS_CHANNEL_ID"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL not set in environment variables")
	}
	if cfg.XBearerToken == "" {
		return nil, fmt.Errorf("X_BEARER_TOKEN not set in environment variables")
	}

	for _, name := range strings.Split(os.Getenv("TARGET_CAPPER_USERNAMES"), ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			cfg.CapperUsernames = append(cfg.CapperUsernames, name)
		}
	}

	return cfg, nil
}
