package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

// Environment keys
const (
	KeyAddr            = "TIKLOADER_ADDR"
	KeyStaticDir       = "TIKLOADER_STATIC_DIR"
	KeyTempDir         = "TIKLOADER_TEMP_DIR"
	KeyProbeTimeout    = "TIKLOADER_PROBE_TIMEOUT"
	KeyDownloadTimeout = "TIKLOADER_DOWNLOAD_TIMEOUT"
	KeySkipInstall     = "TIKLOADER_SKIP_INSTALL"
)

// Default values
const (
	DefaultAddr            = ":8000"
	DefaultStaticDir       = "./static"
	DefaultProbeTimeout    = 60 * time.Second
	DefaultDownloadTimeout = 10 * time.Minute
)

// Settings holds the process configuration resolved from the environment.
type Settings struct {
	Addr            string
	StaticDir       string
	TempDir         string // empty means the system temp directory
	ProbeTimeout    time.Duration
	DownloadTimeout time.Duration
	SkipInstall     bool
}

// Load resolves settings from the environment. Unset or unparsable values
// fall back to the defaults.
func Load() *Settings {
	return &Settings{
		Addr:            stringOr(KeyAddr, DefaultAddr),
		StaticDir:       stringOr(KeyStaticDir, DefaultStaticDir),
		TempDir:         os.Getenv(KeyTempDir),
		ProbeTimeout:    durationOr(KeyProbeTimeout, DefaultProbeTimeout),
		DownloadTimeout: durationOr(KeyDownloadTimeout, DefaultDownloadTimeout),
		SkipInstall:     boolOr(KeySkipInstall, false),
	}
}

func stringOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func durationOr(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := time.ParseDuration(raw)
	if err != nil || value <= 0 {
		log.Printf("invalid %s=%q, using %s", key, raw, fallback)
		return fallback
	}
	return value
}

func boolOr(key string, fallback bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		log.Printf("invalid %s=%q, using %v", key, raw, fallback)
		return fallback
	}
	return value
}
