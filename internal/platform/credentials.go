package platform

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// DefaultTokenFile is the token file looked up in the data directory.
const DefaultTokenFile = "token.txt"

// Token environment variables, in lookup order.
const (
	EnvToken         = "BOT_TOKEN"
	EnvTelegramToken = "TELEGRAM_BOT_TOKEN"
)

// ErrNoToken is returned when no bot token could be found.
var ErrNoToken = errors.New("bot token not found")

// ResolveToken looks for the bot token in BOT_TOKEN, then TELEGRAM_BOT_TOKEN,
// then the token file of cfg. The first non-empty value wins.
func ResolveToken(cfg *Config) (string, error) {
	v := newViper(cfg.Dir)
	if err := v.BindEnv("token", EnvToken, EnvTelegramToken); err != nil {
		return "", err
	}
	if token := strings.TrimSpace(v.GetString("token")); token != "" {
		return token, nil
	}

	path := resolve(cfg.Dir, cfg.TokenFile)
	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("failed to read token file: %w", err)
	}
	if token := strings.TrimSpace(string(data)); token != "" {
		return token, nil
	}

	return "", fmt.Errorf("%w (looked in %s, %s, %s)", ErrNoToken, EnvToken, EnvTelegramToken, path)
}
