package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"workwise/internal/ui"
)

func newBookCmd() *cobra.Command {
	var customer, date string

	cmd := &cobra.Command{
		Use:   "book <worker-id>",
		Short: "Book a worker",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("worker id is required")
			}
			if _, err := strconv.Atoi(args[0]); err != nil {
				return errors.New("worker id must be an integer")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, "")
			if err != nil {
				return err
			}
			defer cleanup()

			workerID, _ := strconv.Atoi(args[0])
			b, err := svc.Book(ctx, workerID, customer, date)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s on %s (%s)\n",
				ui.Good.Render(ui.IconDone+" Booked"),
				ui.Key.Render(b.WorkerName),
				b.Date,
				ui.StatusText(b.Status))
			return nil
		},
	}

	cmd.Flags().StringVarP(&customer, "name", "n", "", "Customer name")
	cmd.Flags().StringVarP(&date, "date", "d", "", "Booking date (YYYY-MM-DD)")
	return cmd
}

func newBookingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bookings",
		Short: "List booking requests",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, "")
			if err != nil {
				return err
			}
			defer cleanup()

			bookings, err := svc.Bookings(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconWorker, "Bookings"))
			if len(bookings) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("(none)"))
				return nil
			}
			// Stored oldest-first; show newest-first.
			for i := len(bookings) - 1; i >= 0; i-- {
				b := bookings[i]
				fmt.Fprintf(cmd.OutOrStdout(), "- %s → %s on %s, %s ($%.0f)\n",
					b.Customer, ui.Key.Render(b.WorkerName), b.Date, ui.StatusText(b.Status), b.PriceUSD)
			}
			return nil
		},
	}
}
