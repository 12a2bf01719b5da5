// Package paths resolves loom's application-private storage directories,
// creating them on first use.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// AppName names the application support directory on macOS.
const AppName = "Loom"

// WorkingDir returns loom's application support directory, creating it
// if absent. On macOS this is ~/Library/Application Support/Loom; other
// platforms use the user config directory (e.g. $XDG_CONFIG_HOME/loom).
func WorkingDir() (string, error) {
	dir, err := baseDir()
	if err != nil {
		return "", fmt.Errorf("resolving working directory: %w", err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating working directory %s: %w", dir, err)
	}
	return dir, nil
}

// DatabaseDir returns the database directory under WorkingDir, creating
// it if absent.
func DatabaseDir() (string, error) {
	base, err := WorkingDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(base, "db")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating database directory %s: %w", dir, err)
	}
	return dir, nil
}

func baseDir() (string, error) {
	if runtime.GOOS == "darwin" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, "Library", "Application Support", AppName), nil
	}
	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfg, "loom"), nil
}
