package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
	"github.com/ratel-online/uno/consts"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Players  int           `env:"UNO_PLAYERS,default=4"`
	Names    Names         `env:"UNO_PLAYER_NAMES"`
	HandSize int           `env:"UNO_HAND_SIZE,default=7"`
	Seed     int64         `env:"UNO_SEED,default=0"`
	Pause    time.Duration `env:"UNO_PAUSE,default=0s"`
	Journal  string        `env:"UNO_JOURNAL"`
	LogLevel string        `env:"UNO_LOG_LEVEL,default=info"`
}

// Names is a comma separated list of player names, filling seats from the first.
type Names []string

func (n *Names) Decode(value string) error {
	*n = nil
	for _, name := range strings.Split(value, ",") {
		if name = strings.TrimSpace(name); name != "" {
			*n = append(*n, name)
		}
	}
	return nil
}

// Load reads path as a .env file when it exists, then decodes the environment.
// Variables already set in the environment win over the file.
func Load(path string) (*Config, error) {
	if path != "" {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read %s: %v: %w", path, err, consts.ErrorsConfigInvalid)
		}
	}

	cfg := &Config{}
	if err := envdecode.StrictDecode(cfg); err != nil {
		return nil, fmt.Errorf("%v: %w", err, consts.ErrorsConfigInvalid)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Players < consts.MinPlayers || c.Players > consts.MaxPlayers {
		return invalid("UNO_PLAYERS must be between %d and %d, got %d", consts.MinPlayers, consts.MaxPlayers, c.Players)
	}
	if len(c.Names) > c.Players {
		return invalid("UNO_PLAYER_NAMES has %d names for %d players", len(c.Names), c.Players)
	}
	seen := make(map[string]bool, len(c.Names))
	for _, name := range c.Names {
		if seen[name] {
			return invalid("UNO_PLAYER_NAMES repeats '%s'", name)
		}
		seen[name] = true
	}
	if maxHandSize := consts.MaxHandSize(c.Players); c.HandSize < 1 || c.HandSize > maxHandSize {
		return invalid("UNO_HAND_SIZE must be between 1 and %d for %d players, got %d", maxHandSize, c.Players, c.HandSize)
	}
	if c.Pause < 0 {
		return invalid("UNO_PAUSE can't be negative")
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return invalid("UNO_LOG_LEVEL: %v", err)
	}
	return nil
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), consts.ErrorsConfigInvalid)
}
