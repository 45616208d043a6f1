package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pawmate/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "paw",
	Short:         "Pawmate — a virtual pet that rewards your wellness habits",
	Long:          "Pawmate is a local-first CLI wellness companion: complete short daily missions, earn coins and hearts, feed your pet and spin the roulette for decorations.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newOnboardCmd(),
		newTodayCmd(),
		newDoCmd(),
		newFeedCmd(),
		newSpinCmd(),
		newEquipCmd(),
		newClosetCmd(),
		newStatusCmd(),
		newRemindCmd(),
		newBoardCmd(),
		newResetCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
