package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"workwise/internal/ui"
)

func newWorkersCmd() *cobra.Command {
	var city, skill string

	cmd := &cobra.Command{
		Use:   "workers [query]",
		Short: "Search the worker directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, "")
			if err != nil {
				return err
			}
			defer cleanup()

			query := strings.Join(args, " ")
			results := svc.SearchWorkers(query, city, skill)

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconWorker, "Workers"))
			if len(results) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No workers match."))
				return nil
			}
			for _, w := range results {
				fmt.Fprintf(cmd.OutOrStdout(), "#%d %s — %s, %s  %s  %s\n",
					w.ID,
					ui.Key.Render(w.Name),
					w.Skill,
					w.City,
					ui.Gold.Render(fmt.Sprintf("★%.1f", w.Rating)),
					ui.Muted.Render(fmt.Sprintf("$%.0f/hr", w.PriceUSD)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&city, "city", "", "Filter by city")
	cmd.Flags().StringVar(&skill, "skill", "", "Filter by skill")
	return cmd
}
