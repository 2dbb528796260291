package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRemoveCommand creates the remove command.
func NewRemoveCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <item> <qty>",
		Short: "Remove stock for an item",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			qty, err := parseQty(args[1])
			if err != nil {
				return err
			}

			svc, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			if err := svc.Remove(args[0], qty); err != nil {
				return err
			}
			if err := svc.Save(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "removed %d of %q\n", qty, args[0])
			return nil
		},
	}
}
