package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"pawmate/internal/ui"
)

func newResetCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Erase all saved data (state, preferences, inventory)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("this erases everything; re-run with --yes to confirm")
			}

			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.Reset(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconTrash+" All data erased. A fresh pet awaits."))
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm erasing all data")

	return cmd
}
