package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"workwise/internal/ui"
)

func newWishCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wish",
		Short: "Show or edit the wishlist",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, "")
			if err != nil {
				return err
			}
			defer cleanup()

			ids, err := svc.Wishlist(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconHeart, "Wishlist"))
			if len(ids) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("(empty)"))
				return nil
			}
			for _, id := range ids {
				fmt.Fprintf(cmd.OutOrStdout(), "- %s\n", id)
			}
			return nil
		},
	}

	cmd.AddCommand(newWishAddCmd(), newWishRemoveCmd())
	return cmd
}

func requireID(args []string) error {
	if len(args) != 1 {
		return errors.New("product id is required")
	}
	return nil
}

func newWishAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <product-id>",
		Short: "Save a product to the wishlist",
		Args:  func(cmd *cobra.Command, args []string) error { return requireID(args) },
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, "")
			if err != nil {
				return err
			}
			defer cleanup()

			added, err := svc.AddToWishlist(ctx, args[0])
			if err != nil {
				return err
			}
			if !added {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Already in the wishlist."))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Added to wishlist"))
			return nil
		},
	}
}

func newWishRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <product-id>",
		Short: "Remove a product from the wishlist",
		Args:  func(cmd *cobra.Command, args []string) error { return requireID(args) },
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, "")
			if err != nil {
				return err
			}
			defer cleanup()

			removed, err := svc.RemoveFromWishlist(ctx, args[0])
			if err != nil {
				return err
			}
			if !removed {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Not in the wishlist."))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Removed"))
			return nil
		},
	}
}
