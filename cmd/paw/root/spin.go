package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"pawmate/internal/game"
	"pawmate/internal/ui"
)

func newSpinCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spin",
		Short: fmt.Sprintf("Spin the reward roulette (%d coins)", game.SpinCost),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out, err := svc.Spin(ctx)
			if err != nil {
				return err
			}

			if !out.Success {
				fmt.Fprintf(cmd.OutOrStdout(), "%s Not enough coins — you need %d more %s\n",
					ui.Warn.Render(ui.IconWarn), out.CoinsNeeded, ui.IconCoin)
				return nil
			}

			prize := out.Prize
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconSpin, "The roulette spins…"))
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s %s %s\n",
				prize.Emoji,
				ui.Title.Render(prize.Name),
				ui.Rarity(string(prize.Rarity)),
				ui.Muted.Render("— "+prize.Description))
			fmt.Fprintln(cmd.OutOrStdout(), out.Message)
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", ui.LabelValue("Coins", fmt.Sprintf("%d (-%d)", out.Coins, out.CoinsSpent)))
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", ui.Muted.Render(fmt.Sprintf("Equip it: paw equip %s", prize.ID)))
			return nil
		},
	}

	return cmd
}
