package commands

import (
	"github.com/llegomark/better-nginx-cache/internal/ui/style"
	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

var errResetNotConfirmed = zerr.New("refusing to reset settings without --yes")

func (c *CLI) newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Read and change settings",
	}
	cmd.AddCommand(c.newConfigGetCmd())
	cmd.AddCommand(c.newConfigSetCmd())
	cmd.AddCommand(c.newConfigInitCmd())
	cmd.AddCommand(c.newConfigResetCmd())
	cmd.AddCommand(c.newConfigPathCmd())
	return cmd
}

func (c *CLI) newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get [key]",
		Short: "Print one setting, or all of them",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v := newView(cmd.OutOrStdout())
			if len(args) == 1 {
				value, err := c.app.GetSetting(args[0])
				if err != nil {
					return err
				}
				v.line("%v", value)
				return nil
			}
			for _, s := range c.app.Settings() {
				v.line("%s = %v", s.Key, s.Value)
			}
			return nil
		},
	}
}

func (c *CLI) newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Store a setting",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := c.app.SetSetting(args[0], args[1])
			if err != nil {
				return err
			}
			newView(cmd.OutOrStdout()).line("%s = %v", args[0], value)
			return nil
		},
	}
}

func (c *CLI) newConfigInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write default values for settings that are not set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			written, err := c.app.InitSettings()
			v := newView(cmd.OutOrStdout())
			for _, key := range written {
				v.line("%s %s", v.ok.Render(style.Check), key)
			}
			if err != nil {
				return err
			}
			if len(written) == 0 {
				v.line("%s", v.muted.Render("settings already initialized"))
			}
			return nil
		},
	}
}

func (c *CLI) newConfigResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Remove every setting and statistics snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if yes, _ := cmd.Flags().GetBool("yes"); !yes {
				return errResetNotConfirmed
			}
			if err := c.app.ResetSettings(); err != nil {
				return err
			}
			v := newView(cmd.OutOrStdout())
			v.line("%s settings reset", v.ok.Render(style.Check))
			return nil
		},
	}
	cmd.Flags().BoolP("yes", "y", false, "Confirm the reset")
	return cmd
}

func (c *CLI) newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print where settings are stored",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			newView(cmd.OutOrStdout()).line("%s", c.app.SettingsPath())
		},
	}
}
