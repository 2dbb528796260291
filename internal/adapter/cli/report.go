package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"stockroom/internal/core/domain"
)

// NewReportCommand creates the report command.
func NewReportCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Print the full inventory, sorted by item name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openStore(rootOpts)
			if err != nil {
				return err
			}

			renderReport(cmd.OutOrStdout(), svc.Report())
			return nil
		},
	}
}

// renderReport writes the human-readable inventory listing.
func renderReport(w io.Writer, items []domain.Item) {
	fmt.Fprintln(w, "Items Report")
	for _, item := range items {
		fmt.Fprintf(w, "%s -> %d\n", item.Name, item.Quantity)
	}
}
