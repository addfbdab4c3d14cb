package commands

import (
	"github.com/llegomark/better-nginx-cache/internal/ui/style"
	"github.com/spf13/cobra"
)

func (c *CLI) newPurgeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "purge",
		Short: "Purge the whole cache now",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			outcome, err := c.app.Purge(cmd.Context())
			if err != nil {
				return err
			}
			newView(cmd.OutOrStdout()).outcome(outcome)
			return nil
		},
	}
}

func (c *CLI) newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the configured cache path without purging",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := c.app.Validate(cmd.Context())
			if err != nil {
				return err
			}
			v := newView(cmd.OutOrStdout())
			v.line("%s %s looks like an Nginx cache directory", v.ok.Render(style.Check), path)
			return nil
		},
	}
}
