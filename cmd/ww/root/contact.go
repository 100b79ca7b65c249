package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"workwise/internal/ui"
)

func newContactCmd() *cobra.Command {
	var name, email, message string

	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Send a contact message",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, "")
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.SendMessage(ctx, name, email, message); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconMail+" Message sent. We'll reply soon!"))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Your name")
	cmd.Flags().StringVar(&email, "email", "", "Your email")
	cmd.Flags().StringVarP(&message, "message", "m", "", "Message body")
	return cmd
}

func newSubscribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "subscribe <email>",
		Short: "Get the Free Mini Guide by email",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("email is required")
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

			if err := svc.CaptureLead(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconMail+" Check your inbox for the Free Mini Guide."))
			return nil
		},
	}
}
