package commands

import (
	"github.com/llegomark/better-nginx-cache/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <dir>",
		Short: "Process event batch files dropped into a spool directory",
		Long: "Watch processes every YAML or JSON batch file written to dir as one unit of work.\n" +
			"Files move to processed/ or failed/ once handled. Stop with Ctrl+C.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schedule, _ := cmd.Flags().GetString("stats-schedule")
			metricsFile, _ := cmd.Flags().GetString("metrics-file")

			return c.app.Watch(cmd.Context(), args[0], app.WatchOptions{
				StatsSchedule: schedule,
				MetricsFile:   metricsFile,
			})
		},
	}
	cmd.Flags().String("stats-schedule", "", "Cron expression for refreshing statistics, e.g. \"*/10 * * * *\"")
	cmd.Flags().String("metrics-file", "", "node_exporter textfile to rewrite after every batch")
	return cmd
}
