package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"pawmate/internal/game"
	"pawmate/internal/ui"
)

func newFeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Feed your pet (costs 1 heart)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.FeedPet(ctx)
			if err != nil {
				return err
			}

			if !res.Fed {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Warn.Render(ui.IconWarn), res.Reason)
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s enjoyed the meal! %s\n",
				ui.Good.Render(ui.IconHeart+" Fed"),
				res.Pet.Name,
				res.Pet.MoodEmoji())
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n",
				ui.LabelValue("Hearts", res.Hearts),
				ui.LabelValue("Care today", ui.ProgressHearts(res.PetVisualState, game.MaxPetVisualState)))
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", ui.LabelValue("Pet", fmt.Sprintf("lvl %d (%d xp)", res.Pet.Level, res.Pet.Experience)))
			return nil
		},
	}

	return cmd
}
