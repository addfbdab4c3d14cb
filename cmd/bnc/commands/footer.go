package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newFooterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "footer",
		Short: "Print the diagnostic footer, or append it to a document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			wrap, _ := cmd.Flags().GetString("wrap")
			if wrap == "" {
				if comment, enabled := c.app.Footer(); enabled {
					_, _ = out.Write([]byte(comment))
				}
				return nil
			}

			doc, err := readInput(cmd, wrap)
			if err != nil {
				return err
			}
			contentType, _ := cmd.Flags().GetString("content-type")
			result, _ := c.app.AppendFooter(string(doc), contentType)
			_, _ = out.Write([]byte(result))
			return nil
		},
	}
	cmd.Flags().String("wrap", "", "Document to append the footer to (- reads stdin)")
	cmd.Flags().String("content-type", "text/html", "Content type of the wrapped document")
	return cmd
}
