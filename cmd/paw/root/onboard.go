package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"pawmate/internal/game"
	"pawmate/internal/ui"
)

func newOnboardCmd() *cobra.Command {
	var goal string
	var availability string
	var intensity string
	var style string

	cmd := &cobra.Command{
		Use:   "onboard",
		Short: "Answer the four onboarding questions and generate your first missions",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			g, ok := game.ParseCategory(goal)
			if !ok {
				return fmt.Errorf("invalid --goal %q (energy|stress|movement)", goal)
			}
			a, ok := game.ParseAvailability(availability)
			if !ok {
				return fmt.Errorf("invalid --time %q (low|medium|high)", availability)
			}
			i, ok := game.ParseIntensity(intensity)
			if !ok {
				return fmt.Errorf("invalid --intensity %q (gentle|normal|active)", intensity)
			}
			st, ok := game.ParseStyle(style)
			if !ok {
				return fmt.Errorf("invalid --style %q (reflective|active|social|personal)", style)
			}

			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			state, err := svc.CompleteOnboarding(ctx, game.UserPreferences{
				Goal:         g,
				Availability: a,
				Intensity:    i,
				Style:        st,
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconPaw, "Welcome to Pawmate!"))
			fmt.Fprintf(cmd.OutOrStdout(), "%s is waiting for you. Today's missions:\n\n", state.Pet.Name)
			printMissions(cmd, state.DailyMissions)
			return nil
		},
	}

	cmd.Flags().StringVarP(&goal, "goal", "g", "", "Wellness goal (energy|stress|movement)")
	cmd.Flags().StringVarP(&availability, "time", "t", "", "Daily availability (low|medium|high)")
	cmd.Flags().StringVarP(&intensity, "intensity", "i", "", "Preferred intensity (gentle|normal|active)")
	cmd.Flags().StringVarP(&style, "style", "s", "", "Mission style (reflective|active|social|personal)")
	_ = cmd.MarkFlagRequired("goal")
	_ = cmd.MarkFlagRequired("time")
	_ = cmd.MarkFlagRequired("intensity")
	_ = cmd.MarkFlagRequired("style")

	return cmd
}
