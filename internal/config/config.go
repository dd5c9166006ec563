package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Configuration keys.
const (
	KeyDatabasePath  = "database.path"
	KeyLogLevel      = "logging.level"
	KeyLogFormat     = "logging.format"
	KeyHistoryBackup = "history.backup_on_clear"
)

// Defaults.
const (
	DefaultDatabasePath = "$HOME/.local/share/prep/prep.db"
	DefaultConfigDir    = "$HOME/.config/prep"
	EnvPrefix           = "PREP"
	// MemoryDatabase selects a throwaway in-memory store.
	MemoryDatabase = ":memory:"
)

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyDatabasePath, DefaultDatabasePath)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
	v.SetDefault(KeyHistoryBackup, true)
}

// LoadDotEnv loads environment variables from the given .env files, or from
// ./.env when none are given. A missing file is not an error and variables
// already set in the environment win.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				slog.Debug("No .env file found", "path", file)
				continue
			}
			return fmt.Errorf("failed to load %s: %w", file, err)
		}
	}
	return nil
}

// DatabasePath returns the configured database path with ~ and environment
// variables expanded.
func DatabasePath(v *viper.Viper) string {
	path := v.GetString(KeyDatabasePath)
	if path == "" {
		path = DefaultDatabasePath
	}
	return ExpandPath(path)
}
