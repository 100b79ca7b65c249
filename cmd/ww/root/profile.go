package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"workwise/internal/engine"
	"workwise/internal/ui"
)

func newSigninCmd() *cobra.Command {
	var country string

	cmd := &cobra.Command{
		Use:   "signin <name>",
		Short: "Create (or refresh) the demo profile",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("name is required")
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

			p, err := svc.SignIn(ctx, args[0], country)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Signed in as %s\n", ui.Good.Render(ui.IconSparkle+" Welcome"), ui.Key.Render(p.DisplayName()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&country, "country", "c", "", "Country")
	return cmd
}

func newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or edit the demo profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, "")
			if err != nil {
				return err
			}
			defer cleanup()
			return showProfile(ctx, cmd, svc)
		},
	}

	cmd.AddCommand(newProfileSetCmd(), newProfilePhotoCmd(), newSignoutCmd())
	return cmd
}

func showProfile(ctx context.Context, cmd *cobra.Command, svc *engine.Service) error {
	p, err := svc.Profile(ctx)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ui.Heading(ui.IconStore, "Profile"))
	if p == nil {
		fmt.Fprintln(out, ui.Muted.Render("Guest — run `ww signin <name>` to create a demo profile."))
		return nil
	}
	fmt.Fprintln(out, ui.LabelValue("Name", p.DisplayName()))
	if p.Country != "" {
		fmt.Fprintln(out, ui.LabelValue("Country", p.Country))
	}
	if p.DOB != "" {
		fmt.Fprintln(out, ui.LabelValue("DOB", p.DOB))
	}
	fmt.Fprintln(out, ui.LabelValue("Bookings", p.Bookings))
	fmt.Fprintln(out, ui.LabelValue("Completed", p.Completed))
	fmt.Fprintln(out, ui.LabelValue("Earnings", fmt.Sprintf("$%.2f", p.Earnings)))
	if p.Photo != "" {
		fmt.Fprintln(out, ui.LabelValue("Photo", fmt.Sprintf("embedded (%d bytes)", len(p.Photo))))
	}
	if len(p.Activities) > 0 {
		fmt.Fprintln(out, ui.H2.Render("Recent activity"))
		for i, act := range p.Activities {
			if i == 5 {
				break
			}
			fmt.Fprintf(out, "- %s\n", ui.Muted.Render(act))
		}
	}
	return nil
}

func newProfileSetCmd() *cobra.Command {
	var name, country, dob string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update profile fields (unset flags keep their value)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, "")
			if err != nil {
				return err
			}
			defer cleanup()

			var upd engine.ProfileUpdate
			if cmd.Flags().Changed("name") {
				upd.Name = &name
			}
			if cmd.Flags().Changed("country") {
				upd.Country = &country
			}
			if cmd.Flags().Changed("dob") {
				upd.DOB = &dob
			}
			p, err := svc.SaveProfile(ctx, upd)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Profile saved (%s)\n", ui.Good.Render(ui.IconDone), p.UpdatedAt.Format("15:04:05"))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&country, "country", "", "Country")
	cmd.Flags().StringVar(&dob, "dob", "", "Date of birth (YYYY-MM-DD)")
	return cmd
}

func newProfilePhotoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "photo <file>",
		Short: "Embed a profile photo",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("photo file is required")
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

			if _, err := svc.AttachPhoto(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Photo attached"))
			return nil
		},
	}
	return cmd
}

func newSignoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "signout",
		Short: "Clear the demo profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, "")
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.ClearProfile(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Signed out."))
			return nil
		},
	}
	return cmd
}
