// Package where implements a cross-platform resolver for application-specific filesystem paths.
package where

import (
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/youngoor/youngoor/constant"
	"github.com/youngoor/youngoor/filesystem"
)

// EnvConfigPath is the environment variable used to override the default configuration directory.
const EnvConfigPath = "YOUNGOOR_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the configuration directory.
// It follows os.UserConfigDir unless EnvConfigPath is set.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.Youngoor))
}

// Cache resolves the persistent cache directory.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.Youngoor))
}

// Logs resolves the directory of dated log files.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Sources resolves the directory scanned for Lua sources.
func Sources() string {
	return ensureDir(filepath.Join(Config(), "sources"))
}

// History resolves the file of remembered page URLs.
func History() string {
	return filepath.Join(Cache(), "history.json")
}

// Versions resolves the file caching the latest release lookup.
func Versions() string {
	return filepath.Join(Cache(), "version.json")
}

// Temp resolves a directory for transient artifacts.
func Temp() string {
	return ensureDir(filepath.Join(os.TempDir(), constant.Youngoor))
}
