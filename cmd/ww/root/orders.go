package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"workwise/internal/ui"
)

func newOrdersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "orders",
		Short: "List recorded orders (newest first)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, "")
			if err != nil {
				return err
			}
			defer cleanup()

			orders, err := svc.Orders(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconCart, "Orders"))
			if len(orders) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("(none)"))
				return nil
			}
			for _, o := range orders {
				payer := ""
				if o.Payer != nil && o.Payer.Name != "" {
					payer = " by " + o.Payer.Name
				}
				fmt.Fprintf(cmd.OutOrStdout(), "- %s  %s via %s (%s)%s\n",
					o.CreatedAt.Format("2006-01-02 15:04"),
					ui.Gold.Render(o.AmountDisplay),
					o.Provider,
					ui.StatusText(o.Status),
					payer)
			}
			return nil
		},
	}
}
