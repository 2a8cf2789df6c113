package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/songquiz/internal/config"
	"github.com/abhisek/songquiz/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "songquiz",
	Short: "Guess the song from a comment",
	Long:  "songquiz — terminal quiz that shows comments left on songs and asks which song they were written about.",
	// Errors are reported by Execute's caller; usage is noise for a missing file.
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	config.RegisterFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(artistsCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig resolves the configuration from the command's flags and builds
// the logger for the run.
func loadConfig(cmd *cobra.Command) (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, nil, err
	}
	log, err := logger.New(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}
