package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the title-fetch proxy settings. Everything comes from the
// environment with local-first defaults; the proxy is meant to sit on
// loopback next to the start page.
type Config struct {
	ListenAddr      string        // ex: "127.0.0.1:3001"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	FetchTimeout time.Duration // timeout for one outbound title fetch
	MaxRedirects int           // redirect cap per fetch
	UserAgent    string        // identifying User-Agent on outbound requests
}

// Load reads the configuration from the environment.
func Load() *Config {
	return &Config{
		ListenAddr:      getenv("YOHOO_LISTEN_ADDR", "127.0.0.1:3001"),
		ShutdownTimeout: mustDuration("YOHOO_SHUTDOWN_TIMEOUT", 5*time.Second),

		LogLevel:  getenv("YOHOO_LOG_LEVEL", "warn"),
		PrettyLog: mustBool("YOHOO_PRETTY_LOG", true),

		FetchTimeout: mustDuration("YOHOO_FETCH_TIMEOUT", 10*time.Second),
		MaxRedirects: getenvInt("YOHOO_MAX_REDIRECTS", 5),
		UserAgent:    getenv("YOHOO_USER_AGENT", "YohooProxy/1.0"),
	}
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
