package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"pawmate/internal/game"
	"pawmate/internal/ui"
)

func newClosetCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "closet",
		Short: "Show your decoration collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			inv := svc.Inventory(ctx)
			stats := game.Stats(inv)

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconCloset, "Closet"))
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n\n",
				ui.LabelValue("Unlocked", fmt.Sprintf("%d/%d (%d%%)", stats.Unlocked, stats.Total, stats.CompletionPercent)),
				ui.LabelValue("Equipped", stats.Equipped))

			for _, rarity := range game.Rarities {
				printed := false
				for i := range inv {
					d := &inv[i]
					if d.Rarity != rarity {
						continue
					}
					if !d.IsUnlocked && !all {
						continue
					}
					if !printed {
						fmt.Fprintf(cmd.OutOrStdout(), "%s\n", ui.Rarity(string(rarity)))
						printed = true
					}
					mark := ui.Muted.Render("locked")
					if d.IsEquipped {
						mark = ui.Good.Render("equipped")
					} else if d.IsUnlocked {
						mark = ui.Dim.Render("owned")
					}
					fmt.Fprintf(cmd.OutOrStdout(), "  %s %s %s %s\n",
						d.Emoji, d.Name, ui.Muted.Render("("+d.ID+")"), mark)
				}
				if printed {
					fmt.Fprintln(cmd.OutOrStdout(), "")
				}
			}

			goal := game.LegendaryGoal(inv)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", goal.Title, ui.Muted.Render(goal.Description))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include locked decorations")

	return cmd
}
