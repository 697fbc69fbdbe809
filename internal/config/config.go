// Package config holds the server settings. Every flag falls back to an
// environment variable, then to a built-in default.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Addr            string
	AllowOrigins    string
	Player1Name     string
	Player2Name     string
	HighlightMoves  bool
	LogLevel        string
	ReadBufferSize  int
	WriteBufferSize int
}

func Default() Config {
	return Config{
		Addr:            ":3000",
		AllowOrigins:    "http://localhost:5173",
		Player1Name:     "P1",
		Player2Name:     "P2",
		HighlightMoves:  true,
		LogLevel:        "info",
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}
}

// Load parses args (without the program name) on top of the environment.
func Load(args []string) (Config, error) {
	def := Default()
	cfg := Config{}

	fs := flag.NewFlagSet("chess-server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.Addr, "addr", getenv("CHESS_ADDR", def.Addr), "listen address")
	fs.StringVar(&cfg.AllowOrigins, "allow-origins", getenv("CHESS_ALLOW_ORIGINS", def.AllowOrigins), "comma-separated CORS origins")
	fs.StringVar(&cfg.Player1Name, "player1", getenv("CHESS_PLAYER1", def.Player1Name), "default name for white")
	fs.StringVar(&cfg.Player2Name, "player2", getenv("CHESS_PLAYER2", def.Player2Name), "default name for black")
	fs.BoolVar(&cfg.HighlightMoves, "highlight", getenb("CHESS_HIGHLIGHT", def.HighlightMoves), "highlight legal destinations of a selected piece")
	fs.StringVar(&cfg.LogLevel, "log-level", getenv("CHESS_LOG_LEVEL", def.LogLevel), "debug, info, warn or error")
	fs.IntVar(&cfg.ReadBufferSize, "ws-read-buffer", def.ReadBufferSize, "websocket read buffer size")
	fs.IntVar(&cfg.WriteBufferSize, "ws-write-buffer", def.WriteBufferSize, "websocket write buffer size")
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case strings.TrimSpace(c.Addr) == "":
		return fmt.Errorf("%w: empty listen address", ErrInvalidConfig)
	case strings.TrimSpace(c.Player1Name) == "" || strings.TrimSpace(c.Player2Name) == "":
		return fmt.Errorf("%w: empty default player name", ErrInvalidConfig)
	case c.ReadBufferSize <= 0 || c.WriteBufferSize <= 0:
		return fmt.Errorf("%w: websocket buffer sizes must be positive", ErrInvalidConfig)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level maps LogLevel to a slog level.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.LogLevel)
	}
	return level, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenb(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "t", "yes", "y", "on":
			return true
		case "0", "false", "f", "no", "n", "off":
			return false
		}
	}
	return def
}
