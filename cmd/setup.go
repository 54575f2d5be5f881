package main

import (
	"context"
	"os"

	"github.com/streamix/streamix-cli/internal/shared"
	"github.com/urfave/cli/v3"
)

// Setup writes a config.toml from the bundled template so the service URLs
// and player command can be edited in place.
func (r *Runner) Setup(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	if _, err := os.Stat(configPath); err == nil {
		r.logger.Info("config file already exists", "path", configPath)
		return r.writePlain("Config already exists at %s\n", configPath)
	}

	if err := shared.CreateConfigFile(configPath); err != nil {
		return err
	}
	r.logger.Info("config file created", "path", configPath)

	r.writePlain("✓ Config created at %s\n", configPath)
	r.writePlainln("Next steps:")
	r.writePlain("1. Edit the [services] URLs to point at your gateway\n")
	r.writePlain("2. Set [player] command to your embed-capable player (optional)\n")
	r.writePlain("3. Run 'streamix auth login' to sign in\n")
	return nil
}
