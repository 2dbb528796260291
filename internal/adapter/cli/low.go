package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// LowOptions holds flags for the low command.
type LowOptions struct {
	*RootOptions
	Threshold int
}

// NewLowCommand creates the low command.
func NewLowCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LowOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "low",
		Short: "List items with stock below a threshold",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			threshold := opts.Config.LowStockThreshold
			if cmd.Flags().Changed("threshold") {
				threshold = opts.Threshold
			}

			svc, err := openStore(opts.RootOptions)
			if err != nil {
				return err
			}
			items, err := svc.LowStock(threshold)
			if err != nil {
				return err
			}

			if len(items) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "no items below %d\n", threshold)
				return nil
			}
			for _, item := range items {
				fmt.Fprintf(cmd.OutOrStdout(), "%s -> %d\n", item.Name, item.Quantity)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.Threshold, "threshold", 0, "low stock threshold (defaults to the configured value)")

	return cmd
}
