package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/songquiz/internal/songs"
)

var artistsCmd = &cobra.Command{
	Use:   "artists",
	Short: "List the artists in the song file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		defer func() { _ = log.Sync() }()

		st, err := songs.Load(cfg.SongsPath, log)
		if err != nil {
			return fmt.Errorf("load songs: %w", err)
		}

		out := cmd.OutOrStdout()
		for _, artist := range st.Artists() {
			fmt.Fprintf(out, "%-30s %d\n", artist, len(st.Comments(artist)))
		}
		fmt.Fprintf(out, "\n%d records, %d artists", st.Len(), len(st.Artists()))
		if n := len(st.Skipped()); n > 0 {
			fmt.Fprintf(out, ", %d lines skipped", n)
		}
		fmt.Fprintln(out)
		return nil
	},
}
