package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"workwise/internal/ui"
)

func newCurrencyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "currency [code|AUTO]",
		Short: "Show the Mini Guide price, or set the display currency",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, "")
			if err != nil {
				return err
			}
			defer cleanup()

			if len(args) == 1 {
				code := strings.ToUpper(args[0])
				if err := svc.SetCurrency(ctx, code); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s Display currency set to %s\n", ui.Good.Render(ui.IconDone), ui.Key.Render(code))
			}

			price, err := svc.Price(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Mini Guide", ui.Gold.Render(price)))
			return nil
		},
	}
	return cmd
}
