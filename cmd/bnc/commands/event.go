package commands

import (
	"github.com/llegomark/better-nginx-cache/internal/core/domain"
	"github.com/spf13/cobra"
)

func (c *CLI) newEventCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "event",
		Short: "Deliver a single event in its own unit of work",
	}
	cmd.AddCommand(c.newEventTransitionCmd())
	cmd.AddCommand(c.newEventDeleteCmd())
	cmd.AddCommand(c.newEventStructuralCmd())
	return cmd
}

func (c *CLI) newEventTransitionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transition",
		Short: "Report a content status change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			newStatus, _ := cmd.Flags().GetString("new")
			oldStatus, _ := cmd.Flags().GetString("old")

			tr := domain.NewTransition(newStatus, oldStatus, itemFromFlags(cmd))
			return c.dispatch(cmd, domain.Event{Name: domain.EventStatusTransitioned, Transition: &tr})
		},
	}
	cmd.Flags().String("new", "", "Status after the change")
	cmd.Flags().String("old", "", "Status before the change")
	addItemFlags(cmd)
	_ = cmd.MarkFlagRequired("new")
	_ = cmd.MarkFlagRequired("old")
	return cmd
}

func (c *CLI) newEventDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Report that a content item was deleted or trashed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			status, _ := cmd.Flags().GetString("status")
			name := domain.EventContentDeleted
			if trash, _ := cmd.Flags().GetBool("trash"); trash {
				name = domain.EventContentTrashed
			}
			return c.dispatch(cmd, domain.Event{Name: name, Item: itemFromFlags(cmd), Status: status})
		},
	}
	cmd.Flags().String("status", domain.StatusPublish, "Status of the item before it was removed")
	cmd.Flags().Bool("trash", false, "The item was moved to the trash instead of deleted")
	addItemFlags(cmd)
	return cmd
}

func (c *CLI) newEventStructuralCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "structural <name>",
		Short: "Report a site wide change such as a theme switch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			option, _ := cmd.Flags().GetString("option")
			return c.dispatch(cmd, domain.Event{Name: args[0], Option: option})
		},
	}
	cmd.Flags().String("option", "", "Name of the updated site option")
	return cmd
}

func addItemFlags(cmd *cobra.Command) {
	cmd.Flags().Int64("id", 0, "Content item ID; 0 means no item")
	cmd.Flags().String("type", "post", "Content type of the item")
	cmd.Flags().Bool("revision", false, "The item is a revision")
	cmd.Flags().Bool("autosave", false, "The item is an autosave")
}

func itemFromFlags(cmd *cobra.Command) *domain.ContentItem {
	id, _ := cmd.Flags().GetInt64("id")
	if id == 0 {
		return nil
	}
	contentType, _ := cmd.Flags().GetString("type")
	revision, _ := cmd.Flags().GetBool("revision")
	autosave, _ := cmd.Flags().GetBool("autosave")
	return &domain.ContentItem{
		ID:          id,
		ContentType: contentType,
		IsRevision:  revision,
		IsAutosave:  autosave,
	}
}

func (c *CLI) dispatch(cmd *cobra.Command, events ...domain.Event) error {
	report, err := c.app.Dispatch(cmd.Context(), events)
	newView(cmd.OutOrStdout()).report(report)
	return err
}
