package commands

import (
	"time"

	"github.com/llegomark/better-nginx-cache/internal/app"
	"github.com/spf13/cobra"
)

const defaultStatsMaxAge = 5 * time.Minute

func (c *CLI) newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show the number of cached files and their total size",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fresh, _ := cmd.Flags().GetBool("fresh")
			maxAge, _ := cmd.Flags().GetDuration("max-age")

			stats, err := c.app.Stats(cmd.Context(), app.StatsOptions{
				Fresh:  fresh,
				MaxAge: maxAge,
			})
			if err != nil {
				return err
			}
			newView(cmd.OutOrStdout()).stats(stats)
			return nil
		},
	}
	cmd.Flags().Bool("fresh", false, "Rescan the cache even if a recent snapshot exists")
	cmd.Flags().Duration("max-age", defaultStatsMaxAge, "Oldest snapshot served without rescanning")
	return cmd
}
