package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"pawmate/internal/game"
	"pawmate/internal/ui"
)

func newTodayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show today's missions, wallet and pet",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			state, err := svc.Today(ctx)
			if err != nil {
				return err
			}
			inv := svc.Inventory(ctx)
			display := game.DisplayPet(state.Pet, inv)

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconPaw, "Pawmate — "+state.CurrentDate))
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s %s\n", display.Full, ui.Muted.Render(state.Pet.Name+","), ui.Muted.Render(state.Pet.StatusText()))
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d   %s %d   care %s\n\n",
				ui.IconCoin, state.Coins,
				ui.IconHeart, state.Hearts,
				ui.ProgressHearts(state.PetVisualState, game.MaxPetVisualState))

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.H2.Render("Missions"), ui.Muted.Render(fmt.Sprintf("(%d%% done)", state.TodayCompletionPercentage())))
			printMissions(cmd, state.DailyMissions)

			if !state.HasCompletedOnboarding {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("\n💡 Run `paw onboard` to get missions tailored to you."))
			}
			return nil
		},
	}

	return cmd
}

func printMissions(cmd *cobra.Command, missions []game.Mission) {
	for i := range missions {
		m := &missions[i]
		mark := "☐"
		if m.Completed() {
			mark = ui.Good.Render("☑")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d. %s %s %s\n   %s\n",
			i+1, mark, m.Title,
			ui.Muted.Render(fmt.Sprintf("(%d min, %s)", m.Duration, m.Category)),
			ui.Dim.Render(m.Description))
	}
}
