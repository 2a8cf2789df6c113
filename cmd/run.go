package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/songquiz/internal/app"
)

// runApp resolves configuration and runs the quiz on the command's stdio.
func runApp(cmd *cobra.Command) error {
	cfg, log, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	defer func() { _ = log.Sync() }()

	return app.Run(cmd.Context(), app.Options{
		Config: cfg,
		In:     cmd.InOrStdin(),
		Out:    cmd.OutOrStdout(),
		Logger: log,
	})
}
