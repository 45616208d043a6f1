package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"pawmate/internal/game"
	"pawmate/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show progress, streak and collection stats",
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
			stats := svc.CollectionStats(ctx)

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconSparkle, "Progress"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Perfect days", state.DaysCompleted))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Missions completed", state.TotalMissionsCompleted))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Today", fmt.Sprintf("%d%%", state.TodayCompletionPercentage())))
			fmt.Fprintln(cmd.OutOrStdout(), "")

			fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render(ui.IconPaw+" Pet"))
			fmt.Fprintf(cmd.OutOrStdout(), "- %s, lvl %d (%d xp), %s\n", state.Pet.Name, state.Pet.Level, state.Pet.Experience, state.Pet.StatusText())
			fmt.Fprintf(cmd.OutOrStdout(), "- care today: %s\n", ui.ProgressHearts(state.PetVisualState, game.MaxPetVisualState))
			fmt.Fprintln(cmd.OutOrStdout(), "")

			fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render(ui.IconSpin+" Collection"))
			fmt.Fprintf(cmd.OutOrStdout(), "- unlocked: %d/%d (%d%%)\n", stats.Unlocked, stats.Total, stats.CompletionPercent)
			for _, rarity := range game.Rarities {
				fmt.Fprintf(cmd.OutOrStdout(), "- %s: %d\n", ui.Rarity(string(rarity)), stats.UnlockedByRarity[rarity])
			}
			fmt.Fprintln(cmd.OutOrStdout(), "")

			if state.UserPreferences.IsComplete() {
				p := state.UserPreferences
				fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render("🧭 Preferences"))
				fmt.Fprintf(cmd.OutOrStdout(), "- goal %s · time %s · intensity %s · style %s\n", p.Goal, p.Availability, p.Intensity, p.Style)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("💡 Run `paw onboard` to personalize your missions."))
			}
			return nil
		},
	}

	return cmd
}
