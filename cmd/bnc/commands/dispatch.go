package commands

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

var errReadInput = zerr.New("failed to read input")

func (c *CLI) newDispatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dispatch <file|->",
		Short: "Deliver a YAML or JSON batch of events as one unit of work",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			report, err := c.app.DispatchBatch(cmd.Context(), data)
			newView(cmd.OutOrStdout()).report(report)
			return err
		},
	}
}

// readInput reads name, or the command's input stream when name is "-".
func readInput(cmd *cobra.Command, name string) ([]byte, error) {
	if name == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, zerr.Wrap(err, errReadInput.Error())
		}
		return data, nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, errReadInput.Error()), "file", name)
	}
	return data, nil
}
