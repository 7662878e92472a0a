// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/janvolk/commitlint/internal/config"
)

// loadConfig resolves the active configuration: an explicit --config
// path wins, otherwise the tree above the working directory is probed,
// and without a file the built-in defaults apply.
func loadConfig(flagPath string) (*config.Config, error) {
	if flagPath != "" {
		return config.Load(flagPath)
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("resolving working directory: %w", err)
	}

	path, err := config.Discover(wd)
	if err != nil {
		return nil, err
	}
	if path == "" {
		slog.Debug("no config file found, using defaults")
		return config.Default(), nil
	}

	return config.Load(path)
}
