package main

import (
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/benaskins/loom/internal/config"
	"github.com/benaskins/loom/internal/keychain"
	"github.com/benaskins/loom/internal/paths"
	"github.com/benaskins/loom/internal/prefs"
)

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}

// openStore resolves the database path (config override, else the
// default application support location) and opens the preference store.
// Callers must Close the returned store on every exit path.
func openStore(cmd *cobra.Command) (*prefs.Store, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	path := cfg.DatabasePath
	if path == "" {
		dir, err := paths.DatabaseDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, prefs.DBFilename)
	}

	slog.Debug("opening preference store", "path", path)
	return prefs.Open(path)
}

// newSecretStore picks the Keychain service name: --service flag, then
// config, then the package default.
func newSecretStore(cmd *cobra.Command) (keychain.Store, error) {
	service, _ := cmd.Flags().GetString("service")
	if service == "" {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return nil, err
		}
		service = cfg.KeychainService
	}
	slog.Debug("using keychain service", "service", service)
	return keychain.NewSystemStore(service), nil
}
