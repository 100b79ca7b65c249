package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"workwise/internal/ui"
)

const Version = "0.1.0"

var (
	flagVerbose bool
	flagLocale  string
)

var rootCmd = &cobra.Command{
	Use:           "ww",
	Short:         "WorkWise — local-first storefront & worker directory",
	Long:          "WorkWise is a local-first CLI for a demo storefront: wishlist, orders, worker bookings, a daily tracker, and a currency-aware price display, all persisted on this device.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Log payment diagnostics")
	rootCmd.PersistentFlags().StringVar(&flagLocale, "locale", "", "Locale tag for currency detection (defaults to the environment)")

	rootCmd.AddCommand(
		newSigninCmd(),
		newProfileCmd(),
		newWishCmd(),
		newWorkersCmd(),
		newBookCmd(),
		newBookingsCmd(),
		newBuyCmd(),
		newOrdersCmd(),
		newTrackCmd(),
		newContactCmd(),
		newSubscribeCmd(),
		newCurrencyCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
