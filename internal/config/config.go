// Package config holds the server settings and loads them from the
// environment and command-line flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"
)

var ErrInvalidConfig = errors.New("invalid configuration")

const envPrefix = "CAPTURECHESS_"

type Config struct {
	// Addr is the listen address of the HTTP server.
	Addr string
	// AllowOrigins is passed to the CORS and websocket origin checks.
	AllowOrigins string
	// MatchmakingInterval is how often queued players are paired.
	MatchmakingInterval time.Duration

	ReadBufferSize  int
	WriteBufferSize int

	LogPrefix string
}

func Default() Config {
	return Config{
		Addr:                ":3000",
		AllowOrigins:        "http://localhost:5173",
		MatchmakingInterval: time.Second,
		ReadBufferSize:      1024,
		WriteBufferSize:     1024,
		LogPrefix:           "capturechess: ",
	}
}

// Load starts from Default, applies CAPTURECHESS_* environment variables and
// then the flags in args. Flags win over the environment.
func Load(args []string) (Config, error) {
	return load(args, os.LookupEnv)
}

func load(args []string, lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	if err := cfg.applyEnv(lookup); err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
	fs.StringVar(&cfg.AllowOrigins, "origins", cfg.AllowOrigins, "comma separated allowed origins")
	fs.DurationVar(&cfg.MatchmakingInterval, "matchmaking-interval", cfg.MatchmakingInterval, "how often to pair queued players")
	fs.IntVar(&cfg.ReadBufferSize, "ws-read-buffer", cfg.ReadBufferSize, "websocket read buffer size")
	fs.IntVar(&cfg.WriteBufferSize, "ws-write-buffer", cfg.WriteBufferSize, "websocket write buffer size")
	fs.StringVar(&cfg.LogPrefix, "log-prefix", cfg.LogPrefix, "log line prefix")
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (cfg *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(envPrefix + "ADDR"); ok {
		cfg.Addr = v
	}
	if v, ok := lookup(envPrefix + "ALLOW_ORIGINS"); ok {
		cfg.AllowOrigins = v
	}
	if v, ok := lookup(envPrefix + "LOG_PREFIX"); ok {
		cfg.LogPrefix = v
	}
	if v, ok := lookup(envPrefix + "MATCHMAKING_INTERVAL"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: %sMATCHMAKING_INTERVAL: %v", ErrInvalidConfig, envPrefix, err)
		}
		cfg.MatchmakingInterval = d
	}
	for name, dst := range map[string]*int{
		"WS_READ_BUFFER":  &cfg.ReadBufferSize,
		"WS_WRITE_BUFFER": &cfg.WriteBufferSize,
	} {
		v, ok := lookup(envPrefix + name)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s%s: %v", ErrInvalidConfig, envPrefix, name, err)
		}
		*dst = n
	}
	return nil
}

func (cfg Config) Validate() error {
	if cfg.Addr == "" {
		return fmt.Errorf("%w: empty listen address", ErrInvalidConfig)
	}
	if cfg.MatchmakingInterval <= 0 {
		return fmt.Errorf("%w: matchmaking interval must be positive", ErrInvalidConfig)
	}
	if cfg.ReadBufferSize <= 0 || cfg.WriteBufferSize <= 0 {
		return fmt.Errorf("%w: websocket buffer sizes must be positive", ErrInvalidConfig)
	}
	return nil
}
