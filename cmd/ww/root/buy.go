package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"workwise/internal/engine"
	"workwise/internal/storage"
	"workwise/internal/ui"
)

func newBuyCmd() *cobra.Command {
	var provider string
	var preorder bool

	cmd := &cobra.Command{
		Use:   "buy",
		Short: "Buy the Mini Guide eBook",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, provider)
			if err != nil {
				return err
			}
			defer cleanup()

			order, err := checkout(ctx, svc, preorder)
			if errors.Is(err, engine.ErrPaymentUnavailable) {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconWarn+" Payments are unavailable right now; everything else still works."))
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s for %s via %s (%s)\n",
				ui.Good.Render(ui.IconCart+" Order recorded:"),
				order.Items[0].Title,
				ui.Gold.Render(order.AmountDisplay),
				order.Provider,
				ui.StatusText(order.Status))
			if order.Payer != nil && order.Payer.Name != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "%s Payment completed by %s. You'll receive your eBook shortly.\n",
					ui.Good.Render(ui.IconDone), order.Payer.Name)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&provider, "provider", "simulated", "Payment provider (simulated|paypal|none)")
	cmd.Flags().BoolVar(&preorder, "preorder", false, "Reserve instead of paying")
	return cmd
}

func checkout(ctx context.Context, svc *engine.Service, preorder bool) (*storage.Order, error) {
	if preorder {
		return svc.Preorder(ctx)
	}
	return svc.Checkout(ctx)
}
