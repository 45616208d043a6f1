package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"pawmate/internal/game"
	"pawmate/internal/ui"
)

func newDoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "do <mission>",
		Short: "Complete a mission (by list number or ID)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("mission number or id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.CompleteMission(ctx, args[0])
			if err != nil {
				return err
			}

			if !res.Rewarded {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Warn.Render(ui.IconInfo+" Already completed:"), res.Mission.Title)
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Good.Render(ui.IconDone+" Completed"),
				res.Mission.Title,
				ui.Muted.Render(fmt.Sprintf("(+%d %s, +%d %s)", game.MissionRewardCoins, ui.IconCoin, game.MissionRewardHearts, ui.IconHeart)))
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", ui.LabelValue("Today", fmt.Sprintf("%d%% done", res.CompletionPercent)))
			if res.DayCompleted {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Gold.Render(ui.IconTrophy+" All missions done — perfect day!"))
			}
			return nil
		},
	}

	return cmd
}
