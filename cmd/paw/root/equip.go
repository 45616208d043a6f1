package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"pawmate/internal/game"
	"pawmate/internal/ui"
)

func newEquipCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "equip <decoration_id>",
		Short: "Equip an unlocked decoration on your pet",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("decoration_id is required")
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

			inv, err := svc.Equip(ctx, args[0])
			if err != nil {
				return err
			}

			for i := range inv {
				if inv[i].ID == args[0] {
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s equipped\n",
						ui.Good.Render(ui.IconDone), inv[i].Emoji, inv[i].Name)
					break
				}
			}

			state, err := svc.Today(ctx)
			if err != nil {
				return err
			}
			display := game.DisplayPet(state.Pet, inv)
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", ui.LabelValue("Your pet", display.Full))
			return nil
		},
	}

	return cmd
}
