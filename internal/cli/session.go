package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/dirmap/internal/config"
	"github.com/vvka-141/dirmap/internal/logging"
	"github.com/vvka-141/dirmap/pkg/dirmap"
)

// session is the resolved state a command runs against.
type session struct {
	dm       *dirmap.DirectoryMap
	settings config.Settings
	logger   dirmap.Logger
}

// openSession resolves settings and opens the root directory map.
// Priority (highest to lowest): flags > environment > config file > defaults.
func openSession(cmd *cobra.Command) (*session, error) {
	if err := config.LoadEnvFile(rootFlags.envFile); err != nil {
		return nil, err
	}

	cfg, err := loadConfig(rootFlags.configPath)
	if err != nil {
		return nil, err
	}

	settings, err := config.Resolve(cfg, os.LookupEnv)
	if err != nil {
		return nil, err
	}
	if rootFlags.dir != "" {
		settings.Root = rootFlags.dir
	}
	if rootFlags.verbose {
		settings.Verbose = true
	}

	logger := logging.NewConsoleLoggerTo(cmd.ErrOrStderr(), settings.Verbose)
	logger.Verbose("settings: root=%q show_hidden=%t", settings.Root, settings.ShowHidden)

	dm, err := dirmap.New(settings.Root, dirmap.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	return &session{dm: dm, settings: settings, logger: logger}, nil
}

// loadConfig loads an explicit config file, or ./dirmap.yaml when present.
// Returns nil config if no file is in use (not an error).
func loadConfig(configPath string) (*config.Config, error) {
	if configPath != "" {
		cfg, err := config.LoadFile(configPath)
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("%w: config file %s not found", dirmap.ErrInvalidConfig, configPath)
		}
		return cfg, err
	}

	cfg, err := config.Load(".")
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load %s: %w", config.ConfigFileName, err)
	}
	return cfg, nil
}
