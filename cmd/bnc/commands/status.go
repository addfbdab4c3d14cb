package commands

import (
	"strings"

	"github.com/spf13/cobra"
)

func (c *CLI) newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status [file|-]",
		Short: "Report the cache status from response headers",
		Long: "Status reads a raw header dump (as printed by curl -I) and prints the\n" +
			"Fastcgi-Cache value: HIT, MISS, BYPASS, EXPIRED, STALE, UPDATING, REVALIDATED or UNKNOWN.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v := newView(cmd.OutOrStdout())
			if cmd.Flags().Changed("header") {
				header, _ := cmd.Flags().GetString("header")
				v.line("%s", c.app.CacheStatusValue(header))
				return nil
			}

			name := "-"
			if len(args) == 1 {
				name = args[0]
			}
			data, err := readInput(cmd, name)
			if err != nil {
				return err
			}
			lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
			v.line("%s", c.app.CacheStatus(lines))
			return nil
		},
	}
	cmd.Flags().String("header", "", "Fastcgi-Cache header value to normalize")
	return cmd
}
