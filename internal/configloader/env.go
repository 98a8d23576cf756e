package configloader

import (
	"os"
	"strconv"

	"github.com/shkm/rubyfmt/pkg/config"
)

// Environment variable names recognized by rubyfmt.
const (
	EnvColor      = "RUBYFMT_COLOR"
	EnvLogLevel   = "RUBYFMT_LOG_LEVEL"
	EnvBackup     = "RUBYFMT_BACKUP"
	EnvDetectRuby = "RUBYFMT_DETECT_RUBY"
	EnvJobs       = "RUBYFMT_JOBS"
)

// applyEnv overlays RUBYFMT_* environment variables onto cfg.
// Unparseable values are ignored rather than failing the run.
func applyEnv(cfg *config.Config) {
	if v := os.Getenv(EnvColor); v != "" {
		cfg.Color = config.Color(v)
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(EnvBackup); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Backup = b
		}
	}
	if v := os.Getenv(EnvDetectRuby); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.DetectRuby = b
		}
	}
	if v := os.Getenv(EnvJobs); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.Jobs = n
		}
	}
}
