// Package config resolves runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvDB        = "INFOQUIZ_DB"
	EnvCatalog   = "INFOQUIZ_CATALOG"
	EnvLog       = "INFOQUIZ_LOG"
	EnvEphemeral = "INFOQUIZ_EPHEMERAL"
)

// Config holds the resolved settings. Empty paths mean "use the default".
type Config struct {
	DBPath      string
	CatalogPath string
	LogPath     string
	Ephemeral   bool
}

// LoadDotEnv loads variables from the given files (default ".env") without
// overriding ones already set. Missing files are not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// FromEnv reads the configuration from the process environment.
func FromEnv() Config {
	return Config{
		DBPath:      strings.TrimSpace(os.Getenv(EnvDB)),
		CatalogPath: strings.TrimSpace(os.Getenv(EnvCatalog)),
		LogPath:     strings.TrimSpace(os.Getenv(EnvLog)),
		Ephemeral:   envBool(EnvEphemeral, false),
	}
}

func envBool(k string, def bool) bool {
	switch strings.ToLower(os.Getenv(k)) {
	case "1", "true", "yes":
		return true
	case "0", "false", "no":
		return false
	default:
		return def
	}
}
